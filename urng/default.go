// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urng

import (
	"crypto/rand"
	"encoding/binary"
)

// NewDefault returns a fresh MT19937 Stream, seeded from the operating
// system's entropy source. It backs the library-wide default URNG of
// spec.md §6; callers that need reproducibility should construct their
// own Stream with an explicit seed instead.
func NewDefault() *MT19937 {
	return NewMT19937(randomSeed())
}

// NewDefaultAux returns a fresh Xoshiro256StarStar Stream, independent
// of NewDefault's algorithm and entropy draw. It backs the "auxiliary
// default" URNG spec.md §6 calls for: a stream distinct from whatever
// the caller is using as the primary one.
func NewDefaultAux() *Xoshiro256StarStar {
	return NewXoshiro256StarStar(randomSeed())
}

func randomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable, but a
		// zero-entropy fallback keeps construction infallible rather
		// than threading an error through every generator's default
		// path.
		return mtDefault
	}
	return binary.LittleEndian.Uint64(buf[:])
}
