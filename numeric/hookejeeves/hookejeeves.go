// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hookejeeves implements the Hooke-Jeeves pattern-search
// optimizer NROU and MROU use to find the bounding box of the
// ratio-of-uniforms region (spec.md §4.3, §2 L0 "Hooke-Jeeves pattern
// search"). It is a direct-search, derivative-free method: well suited
// to the non-smooth objectives (f raised to a fractional power, often
// with a kink at the mode) that arise from the ratio-of-uniforms
// transform.
//
// The Init/Iterate/Location shape follows the teacher's optimize
// package method interfaces (optimize/types.go, optimize/local.go,
// neldermead.go); the convergence constants (Rho, Epsilon, MaxIter) and
// the exploratory-move-then-pattern-move structure reproduce UNURAN's
// own C implementation in original_source/trunk/src/utils/
// rou_rectangle.c (ROU_HOOKE_RHO=0.5, ROU_HOOKE_EPSILON=1e-7,
// ROU_HOOKE_MAXITER=10000).
package hookejeeves

import "math"

// Default convergence parameters, reproduced from UNURAN's
// rou_rectangle.c / mrou_rectangle.c.
const (
	DefaultRho     = 0.5
	DefaultEpsilon = 1e-7
	DefaultMaxIter = 10000
)

// Settings configures a Hooke-Jeeves run.
type Settings struct {
	Rho     float64 // step-shrink factor per failed round, in (0,1)
	Epsilon float64 // stop when the step size falls below this
	MaxIter int     // budget of objective evaluations (2*dim per exploratory move, 1 per pattern move)
	Step    float64 // initial step size per coordinate
}

// DefaultSettings returns the UNURAN-derived defaults.
func DefaultSettings(dim int) Settings {
	return Settings{Rho: DefaultRho, Epsilon: DefaultEpsilon, MaxIter: DefaultMaxIter, Step: 1}
}

// Result is the outcome of a Minimize call.
type Result struct {
	X        []float64
	F        float64
	Iters    int
	Converged bool // false if MaxIter was hit before Epsilon was reached
}

// Minimize finds a local minimum of f starting at x0 using the
// Hooke-Jeeves pattern search: alternating "exploratory moves" along
// each coordinate axis and "pattern moves" that extrapolate along the
// direction of recent improvement.
func Minimize(f func([]float64) float64, x0 []float64, s Settings) Result {
	if s.Rho <= 0 || s.Rho >= 1 {
		s.Rho = DefaultRho
	}
	if s.Epsilon <= 0 {
		s.Epsilon = DefaultEpsilon
	}
	if s.MaxIter <= 0 {
		s.MaxIter = DefaultMaxIter
	}
	if s.Step <= 0 {
		s.Step = 1
	}

	dim := len(x0)
	xCur := append([]float64(nil), x0...)
	xBase := append([]float64(nil), x0...)
	fCur := f(xCur)
	step := s.Step

	iters := 0
	converged := false
	for iters < s.MaxIter {
		xTry, fTry := exploratoryMove(f, xCur, fCur, step)
		iters += 2 * dim
		if fTry < fCur {
			// Pattern move: extrapolate from the base point through
			// the newly found point.
			xPattern := make([]float64, dim)
			for i := range xPattern {
				xPattern[i] = 2*xTry[i] - xBase[i]
			}
			fPattern := f(xPattern)
			iters++
			xBase = xTry
			fCur = fTry
			xCur = xTry
			if fPattern < fCur {
				xBase = xPattern
				fCur = fPattern
				xCur = xPattern
			}
			continue
		}
		if step < s.Epsilon {
			converged = true
			break
		}
		step *= s.Rho
	}
	return Result{X: xCur, F: fCur, Iters: iters, Converged: converged}
}

func exploratoryMove(f func([]float64) float64, base []float64, fBase, step float64) ([]float64, float64) {
	x := append([]float64(nil), base...)
	fx := fBase
	for i := range x {
		orig := x[i]
		x[i] = orig + step
		fPlus := f(x)
		if fPlus < fx {
			fx = fPlus
			continue
		}
		x[i] = orig - step
		fMinus := f(x)
		if fMinus < fx {
			fx = fMinus
			continue
		}
		x[i] = orig
	}
	return x, fx
}

// MinimizeWithRestart runs Minimize, and if it exits without converging
// (iteration cap hit), reruns once with a tighter epsilon and the
// previous optimum as a warm start, matching spec.md §4.3's setup
// contract: "If the optimizer exits on its iteration cap, re-run with a
// tighter per-step epsilon and the previous optimum as a warm start; if
// still not converged, emit a warning but proceed with the best bound
// found." The returned bool reports whether the second attempt (if any)
// converged; false means the caller should record a warning.
func MinimizeWithRestart(f func([]float64) float64, x0 []float64, s Settings) (Result, bool) {
	res := Minimize(f, x0, s)
	if res.Converged {
		return res, true
	}
	tighter := s
	tighter.Epsilon /= 100
	res2 := Minimize(f, res.X, tighter)
	if res2.F < res.F {
		res = res2
	}
	return res, res2.Converged
}

// IsFinite reports whether v is neither ±Inf nor NaN, used by callers to
// detect the SetupInfinite failure mode of spec.md §4.3.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
