// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stddist

import (
	"math"
	"testing"
)

func TestNormalPDFAreaAndMode(t *testing.T) {
	d, err := New(Normal, nil)
	if err != nil {
		t.Fatalf("New(Normal): %v", err)
	}
	if got := d.PDF(0); math.Abs(got-1/math.Sqrt(2*math.Pi)) > 1e-12 {
		t.Errorf("PDF(0) = %v", got)
	}
	mode, _ := d.Mode()
	if mode != 0 {
		t.Errorf("Mode() = %v, want 0", mode)
	}
}

func TestExponentialRequiresRate(t *testing.T) {
	if _, err := New(Exponential, nil); err == nil {
		t.Error("expected DistrNParams error when rate is missing")
	}
	d, err := New(Exponential, []float64{2})
	if err != nil {
		t.Fatalf("New(Exponential): %v", err)
	}
	cdf, _ := d.CDF(0.5)
	want := 1 - math.Exp(-1)
	if math.Abs(cdf-want) > 1e-12 {
		t.Errorf("CDF(0.5) = %v, want %v", cdf, want)
	}
}

func TestCauchyRejectsNonPositiveScale(t *testing.T) {
	if _, err := New(Cauchy, []float64{0, -1}); err == nil {
		t.Error("expected DistrDomain error for non-positive scale")
	}
}

func TestGammaMatchesNormalizationAtMode(t *testing.T) {
	d, err := New(Gamma, []float64{3, 2})
	if err != nil {
		t.Fatalf("New(Gamma): %v", err)
	}
	mode, _ := d.Mode()
	if math.Abs(mode-1) > 1e-12 {
		t.Errorf("Mode() = %v, want 1 ((shape-1)/rate)", mode)
	}
	cdf, _ := d.CDF(1e9)
	if math.Abs(cdf-1) > 1e-6 {
		t.Errorf("CDF(large x) = %v, want close to 1", cdf)
	}
}

func TestUnknownKindReturnsError(t *testing.T) {
	if _, err := New(Kind(999), nil); err == nil {
		t.Error("expected DistrUnknown error for an unregistered kind")
	}
}
