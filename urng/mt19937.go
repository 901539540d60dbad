// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Original C program copyright Takuji Nishimura and Makoto Matsumoto 2002.
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/MT2002/CODES/mt19937ar.c

package urng

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtDefault   = 5489
)

// MT19937 implements the 32-bit Mersenne Twister PRNG as a Stream. It is
// UNURAN's own default PRNG (original_source/src/uniform/urng_prng.c
// binds the library's PRNG package, whose default generator is this
// Mersenne Twister); it also doubles as the process-wide default URNG
// referenced by spec.md §6.
//
// MT19937 additionally implements Resetter, Seeder and
// SubstreamAdvancer: Reset reseeds from the stored seed, and
// NextSubstream reseeds from the stored seed mixed with a substream
// counter, so each substream starts from its own seed without needing
// a jump-ahead table.
type MT19937 struct {
	mt       [mtN]uint32
	mti      int
	seed     uint64
	anti     bool
	nSubstrm uint64
}

// NewMT19937 returns a Stream seeded with seed.
func NewMT19937(seed uint64) *MT19937 {
	m := &MT19937{}
	m.SetSeed(seed)
	return m
}

// SetSeed reinitializes the generator from seed, discarding all state.
func (m *MT19937) SetSeed(seed uint64) {
	m.seed = seed
	m.nSubstrm = 0
	m.reseed(seed)
}

func (m *MT19937) reseed(seed uint64) {
	m.mt[0] = uint32(seed)
	for m.mti = 1; m.mti < mtN; m.mti++ {
		prev := m.mt[m.mti-1]
		m.mt[m.mti] = 1812433253*(prev^(prev>>30)) + uint32(m.mti)
	}
	m.mti = mtN
}

// Reset rewinds the stream to the state immediately after the last
// SetSeed call, reproducing the same output sequence from the start
// (spec.md §8, invariant 4).
func (m *MT19937) Reset() {
	m.nSubstrm = 0
	m.reseed(m.seed)
}

// NextSubstream jumps to a fresh, independent-in-practice substream
// derived from the original seed and a substream counter, without
// altering the original seed (spec.md §6 set_aux_urng discussion:
// substreams let a method request extra independent draws without
// colliding with the primary stream's sequence).
func (m *MT19937) NextSubstream() {
	m.nSubstrm++
	m.reseed(m.seed ^ (m.nSubstrm * 0x9e3779b97f4a7c15))
}

// SetAntithetic toggles antithetic sampling: once enabled, Uniform
// returns 1-u instead of u.
func (m *MT19937) SetAntithetic(on bool) { m.anti = on }

func (m *MT19937) uint32() uint32 {
	var mag01 = [2]uint32{0, mtMatrixA}
	if m.mti >= mtN {
		var kk int
		for ; kk < mtN-mtM; kk++ {
			y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
			m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
			m.mt[kk] = m.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y := (m.mt[mtN-1] & mtUpperMask) | (m.mt[0] & mtLowerMask)
		m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		m.mti = 0
	}
	y := m.mt[m.mti]
	m.mti++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 returns a pseudo-random 64-bit unsigned integer, combining two
// 32-bit draws as mathext/prng.MT19937.Uint64 does.
func (m *MT19937) Uint64() uint64 {
	h := uint64(m.uint32())
	l := uint64(m.uint32())
	return h<<32 | l
}

// Uniform implements Stream, returning a double in [0,1).
func (m *MT19937) Uniform() float64 {
	u := fromSource64(m)
	if m.anti {
		return 1 - u
	}
	return u
}
