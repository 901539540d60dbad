// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "testing"

func TestCVecSetCovarRejectsIndefinite(t *testing.T) {
	c := NewCVec("bad", 2)
	if err := c.SetCovar([]float64{1, 2, 2, 1}); err == nil {
		t.Error("expected error for non positive-definite covariance")
	}
}

func TestCVecSetCovarComputesInverse(t *testing.T) {
	c := NewCVec("identity", 2)
	if err := c.SetCovar([]float64{1, 0, 0, 1}); err != nil {
		t.Fatalf("SetCovar: %v", err)
	}
	_, chol, inv, err := c.Covar()
	if err != nil {
		t.Fatalf("Covar: %v", err)
	}
	if chol.LogDet() != 0 {
		t.Errorf("LogDet(I) = %v, want 0", chol.LogDet())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := inv.Data[i*2+j]; got != want {
				t.Errorf("inv[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestCVecCenterPrefersMode(t *testing.T) {
	c := NewCVec("test", 2)
	c.SetMean([]float64{1, 1})
	c.SetMode([]float64{2, 2})
	center := c.Center()
	if center[0] != 2 || center[1] != 2 {
		t.Errorf("Center() = %v, want [2 2] (mode preferred over mean)", center)
	}
}

func TestCVecCenterFallsBackToMean(t *testing.T) {
	c := NewCVec("test", 2)
	c.SetMean([]float64{1, 1})
	center := c.Center()
	if center[0] != 1 || center[1] != 1 {
		t.Errorf("Center() = %v, want [1 1]", center)
	}
}
