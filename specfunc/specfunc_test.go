// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfunc

import "testing"

func TestNormalCDFQuantileRoundTrip(t *testing.T) {
	for _, p := range []float64{0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999} {
		z := NormalQuantile(p)
		got := NormalCDF(z)
		if diff := got - p; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("NormalCDF(NormalQuantile(%v)) = %v, want %v", p, got, p)
		}
	}
}

func TestNormalQuantileStandard(t *testing.T) {
	if z := NormalQuantile(0.5); z != 0 {
		t.Errorf("NormalQuantile(0.5) = %v, want 0", z)
	}
}

func TestIncGammaBounds(t *testing.T) {
	if v := IncGamma(2, 0); v != 0 {
		t.Errorf("IncGamma(2,0) = %v, want 0", v)
	}
	got := IncGamma(1, 1)
	want := 1 - 1/2.718281828459045
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("IncGamma(1,1) = %v, want %v", got, want)
	}
}

func TestIncGammaComplement(t *testing.T) {
	for _, a := range []float64{0.5, 1, 2.5, 10} {
		for _, x := range []float64{0.1, 1, 5, 20} {
			sum := IncGamma(a, x) + IncGammaComp(a, x)
			if diff := sum - 1; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("IncGamma(%v,%v)+IncGammaComp = %v, want 1", a, x, sum)
			}
		}
	}
}

func TestIncBetaSymmetry(t *testing.T) {
	// I_x(a,b) = 1 - I_{1-x}(b,a)
	a, b, x := 2.0, 3.0, 0.3
	got := IncBeta(a, b, x) + IncBeta(b, a, 1-x)
	if diff := got - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("IncBeta(%v,%v,%v)+IncBeta(%v,%v,%v) = %v, want 1", a, b, x, b, a, 1-x, got)
	}
}
