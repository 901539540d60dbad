// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "errors"

// newtonPoly is a Newton divided-difference polynomial interpolant,
// implementing the teacher's interp.FittablePredictor idiom (Fit then
// Predict) for PINV's Stage D inverse-CDF approximation (spec.md §4.2):
// "build a Newton divided-difference table producing an interpolating
// polynomial x = x_i + chi(u) of degree g in u, anchored so chi(0)=0."
//
// xs holds the u-offsets (always starting at 0) and ys the
// corresponding x-offsets from the interval's left endpoint; Predict
// evaluates chi at a u-offset via Horner-style nested multiplication
// over the divided-difference coefficients.
type newtonPoly struct {
	nodes  []float64 // u-offsets, xs[0] == 0
	coeffs []float64 // divided-difference coefficients
}

// Fit builds the divided-difference table for the points (xs[i],
// ys[i]). It requires at least 2 points and strictly increasing xs.
func (p *newtonPoly) Fit(xs, ys []float64) error {
	n := len(xs)
	if n != len(ys) {
		return errors.New("pinv: newtonPoly.Fit: mismatched slice lengths")
	}
	if n < 2 {
		return errors.New("pinv: newtonPoly.Fit: need at least 2 points")
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return errors.New("pinv: newtonPoly.Fit: xs must be strictly increasing")
		}
	}
	table := make([]float64, n)
	copy(table, ys)
	coeffs := make([]float64, n)
	coeffs[0] = table[0]
	for k := 1; k < n; k++ {
		for i := n - 1; i >= k; i-- {
			table[i] = (table[i] - table[i-1]) / (xs[i] - xs[i-k])
		}
		coeffs[k] = table[k]
	}
	p.nodes = append([]float64(nil), xs...)
	p.coeffs = coeffs
	return nil
}

// Predict evaluates chi(u) via nested multiplication.
func (p *newtonPoly) Predict(u float64) float64 {
	n := len(p.coeffs)
	result := p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		result = result*(u-p.nodes[i]) + p.coeffs[i]
	}
	return result
}
