// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"math"
	"testing"
)

func TestFactorizeIdentity(t *testing.T) {
	a := NewDense(2, []float64{1, 0, 0, 1})
	var c Cholesky
	if !c.Factorize(a) {
		t.Fatal("identity matrix should be positive definite")
	}
	if math.Abs(c.LogDet()) > 1e-12 {
		t.Errorf("LogDet(I) = %v, want 0", c.LogDet())
	}
}

func TestFactorizeNotPositiveDefinite(t *testing.T) {
	a := NewDense(2, []float64{1, 2, 2, 1})
	var c Cholesky
	if c.Factorize(a) {
		t.Fatal("expected factorization failure for indefinite matrix")
	}
}

func TestSolveVecRecoversX(t *testing.T) {
	// A = [[4,2],[2,3]], x = [1,2] => b = [8,8]
	a := NewDense(2, []float64{4, 2, 2, 3})
	var c Cholesky
	if !c.Factorize(a) {
		t.Fatal("expected positive definite")
	}
	x := c.SolveVec([]float64{8, 8})
	if math.Abs(x[0]-1) > 1e-9 || math.Abs(x[1]-2) > 1e-9 {
		t.Errorf("SolveVec = %v, want [1,2]", x)
	}
}

func TestMahalanobisZeroAtMean(t *testing.T) {
	a := NewDense(2, []float64{1, 0.2, 0.2, 1})
	var c Cholesky
	c.Factorize(a)
	mean := []float64{1, 2}
	if q := c.Mahalanobis(mean, mean); q != 0 {
		t.Errorf("Mahalanobis(mean,mean) = %v, want 0", q)
	}
}
