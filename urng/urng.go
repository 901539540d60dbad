// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package urng provides the uniform random number stream abstraction
// consumed by every generation method in this module (spec.md §3, §6).
//
// A Stream produces i.i.d. U(0,1) doubles and, where the underlying
// source supports it, exposes reset, independent substreams, and
// antithetic sampling. Each generator draws from the Stream held in its
// own parameter object rather than from a process-wide default, so that
// two Generators never race on shared state (spec.md §5). The methods in
// unuran/tdr, unuran/pinv and unuran/rou draw every uniform from their
// primary Stream; none of them reads the auxiliary one.
package urng

import "math/rand/v2"

// Stream is the uniform random number generator abstraction. It mirrors
// the URNG handle of spec.md §6: a mandatory uniform draw, plus optional
// stream-management operations a concrete source may or may not support.
type Stream interface {
	// Uniform returns the next pseudo-random number in [0,1).
	Uniform() float64
}

// Resetter is implemented by streams that can rewind to their initial
// state, reproducing the exact sequence of a fresh stream with the same
// seed (spec.md §8, invariant 4).
type Resetter interface {
	Reset()
}

// Seeder is implemented by streams whose state can be set directly.
type Seeder interface {
	SetSeed(seed uint64)
}

// SubstreamAdvancer is implemented by streams that can jump to an
// independent substream without restarting from the beginning.
type SubstreamAdvancer interface {
	NextSubstream()
}

// Antithetic is implemented by streams that support toggling antithetic
// sampling, i.e. returning 1-u instead of u for every subsequent draw.
type Antithetic interface {
	SetAntithetic(on bool)
}

// ArraySampler is implemented by streams that can fill a slice with
// uniforms more efficiently than one call per element.
type ArraySampler interface {
	SampleArray(dst []float64)
}

// FillArray draws len(dst) uniforms into dst, using the stream's native
// batch operation when available.
func FillArray(s Stream, dst []float64) {
	if a, ok := s.(ArraySampler); ok {
		a.SampleArray(dst)
		return
	}
	for i := range dst {
		dst[i] = s.Uniform()
	}
}

// source64 is the subset of math/rand/v2.Source that every adapter in
// this package is built from (spec.md's DOMAIN STACK: math/rand/v2 is
// the wiring point for every concrete URNG, matching distuv/norm.go's
// and distmv/normal.go's Source field pattern in the teacher corpus).
type source64 interface {
	Uint64() uint64
}

// fromSource64 adapts a 64-bit integer source into a Stream by taking
// the top 53 bits, matching the conversion math/rand/v2 itself uses for
// Float64.
func fromSource64(s source64) float64 {
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}

// Rand64 wraps any math/rand/v2 Source as a Stream. It is the bridge
// used when a caller already has a stdlib source (e.g. rand.NewPCG) and
// wants to drive a generator with it.
type Rand64 struct {
	src rand.Source
	r   *rand.Rand
}

// NewRand64 returns a Stream backed by src.
func NewRand64(src rand.Source) *Rand64 {
	return &Rand64{src: src, r: rand.New(src)}
}

// Uniform implements Stream.
func (s *Rand64) Uniform() float64 { return s.r.Float64() }
