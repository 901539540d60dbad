// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PRNG algorithms from Dipartimento di Informatica, Università degli
// Studi di Milano. David Blackman and Sebastiano Vigna, CC0 1.0.
// http://creativecommons.org/publicdomain/zero/1.0/

package urng

import "math/bits"

// SplitMix64 is the splitmix64 PRNG, usable directly as a lightweight
// Stream and used internally to seed the Xoshiro256StarStar generator
// below, which is the auxiliary default NewDefaultAux returns.
type SplitMix64 struct {
	state uint64
	seed  uint64
	anti  bool
}

// NewSplitMix64 returns a Stream seeded with seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	s := &SplitMix64{}
	s.SetSeed(seed)
	return s
}

// SetSeed implements Seeder.
func (s *SplitMix64) SetSeed(seed uint64) {
	s.seed = seed
	s.state = seed
}

// Reset implements Resetter.
func (s *SplitMix64) Reset() { s.state = s.seed }

// SetAntithetic implements Antithetic.
func (s *SplitMix64) SetAntithetic(on bool) { s.anti = on }

// Uint64 returns the next raw 64-bit output.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uniform implements Stream.
func (s *SplitMix64) Uniform() float64 {
	u := fromSource64(s)
	if s.anti {
		return 1 - u
	}
	return u
}

// Xoshiro256StarStar is the xoshiro256** 1.0 PRNG, the auxiliary Stream
// NewDefaultAux returns: a second, statistically independent source
// that does not pay for a second Mersenne Twister's 2.5KB state.
type Xoshiro256StarStar struct {
	state [4]uint64
	seed  uint64
	anti  bool
}

// NewXoshiro256StarStar returns a Stream seeded with seed.
func NewXoshiro256StarStar(seed uint64) *Xoshiro256StarStar {
	x := &Xoshiro256StarStar{}
	x.SetSeed(seed)
	return x
}

// SetSeed implements Seeder; the 256-bit internal state is bootstrapped
// from seed via SplitMix64, as recommended by the algorithm's authors.
func (x *Xoshiro256StarStar) SetSeed(seed uint64) {
	x.seed = seed
	boot := SplitMix64{state: seed}
	for i := range x.state {
		x.state[i] = boot.Uint64()
	}
}

// Reset implements Resetter.
func (x *Xoshiro256StarStar) Reset() { x.SetSeed(x.seed) }

// SetAntithetic implements Antithetic.
func (x *Xoshiro256StarStar) SetAntithetic(on bool) { x.anti = on }

// Uint64 returns the next raw 64-bit output.
func (x *Xoshiro256StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(x.state[1]*5, 7) * 9

	t := x.state[1] << 17

	x.state[2] ^= x.state[0]
	x.state[3] ^= x.state[1]
	x.state[1] ^= x.state[2]
	x.state[0] ^= x.state[3]

	x.state[2] ^= t
	x.state[3] = bits.RotateLeft64(x.state[3], 45)

	return result
}

// Uniform implements Stream.
func (x *Xoshiro256StarStar) Uniform() float64 {
	u := fromSource64(x)
	if x.anti {
		return 1 - u
	}
	return u
}
