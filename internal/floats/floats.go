// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floats is a small slice-arithmetic helper set in the spirit of
// the teacher's root-level floats package: a handful of allocation-free
// operations on []float64, used where rou shifts coordinate vectors by
// its center.
package floats

// Sum returns the sum of the elements of xs.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Dot returns the dot product of a and b. It panics if the lengths
// differ.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("floats: length mismatch")
	}
	var s float64
	for i, v := range a {
		s += v * b[i]
	}
	return s
}

// AddScaledTo sets dst[i] = y[i] + alpha*s[i] and returns dst. It panics
// if dst, y, and s do not all have the same length.
func AddScaledTo(dst, y []float64, alpha float64, s []float64) []float64 {
	if len(dst) != len(y) || len(dst) != len(s) {
		panic("floats: length mismatch")
	}
	for i, v := range s {
		dst[i] = y[i] + alpha*v
	}
	return dst
}

// Scale multiplies every element of dst by c in place.
func Scale(c float64, dst []float64) {
	for i := range dst {
		dst[i] *= c
	}
}
