// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package root provides the bisection and Newton root finders PINV's
// Stage A boundary search and Stage C tail cut-off (spec.md §4.2) build
// on. The iterative bracket/refine shape is adapted from the
// teacher's bisection.go linesearch (there specialised to the strong
// Wolfe conditions); here it is generalised to a plain f(x)=0 solve.
package root

import "math"

// Bisect finds a root of f in [lo,hi], where f(lo) and f(hi) must have
// opposite signs, to within absolute tolerance tol or maxIter
// iterations, whichever comes first.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) float64 {
	flo := f(lo)
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if math.Abs(hi-lo) < tol || fmid == 0 {
			return mid
		}
		if (fmid < 0) == (flo < 0) {
			lo = mid
			flo = fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// Newton finds a root of f near x0 using Newton's method with the
// supplied derivative df, for at most maxIter iterations or until the
// step shrinks below tol. It is used by PINV's tail cut-off search
// (spec.md §4.2 Stage C), which drives the tail-area estimate's
// reciprocal to a target via Newton iteration.
func Newton(f, df func(float64) float64, x0, tol float64, maxIter int) float64 {
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		dfx := df(x)
		if dfx == 0 {
			break
		}
		step := fx / dfx
		x -= step
		if math.Abs(step) < tol {
			break
		}
	}
	return x
}
