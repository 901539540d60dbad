// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rou

import (
	"math"
	"testing"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/urng"
)

func TestNROUStandardNormal(t *testing.T) {
	d := distr.NewCont("normal")
	d.SetPDF(func(x float64) float64 { return math.Exp(-x * x / 2) })
	d.SetMode(0)
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)}}
	g, err := NewNROU(d, p)
	if err != nil {
		t.Fatalf("NewNROU: %v", err)
	}
	const n = 100000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x, err := g.Sample1()
		if err != nil {
			t.Fatalf("Sample1: %v", err)
		}
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.02 {
		t.Errorf("mean = %v, want near 0", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Errorf("variance = %v, want near 1", variance)
	}
}

func TestMROUBivariateNormal(t *testing.T) {
	d := distr.NewCVec("bivariate-normal", 2)
	d.SetPDF(func(x []float64) float64 {
		return math.Exp(-(x[0]*x[0] + x[1]*x[1]) / 2)
	})
	d.SetMode([]float64{0, 0})
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(2)}}
	g, err := NewMROU(d, p)
	if err != nil {
		t.Fatalf("NewMROU: %v", err)
	}
	const n = 50000
	var sum0, sum1, cov float64
	for i := 0; i < n; i++ {
		x, err := g.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		sum0 += x[0]
		sum1 += x[1]
		cov += x[0] * x[1]
	}
	mean0 := sum0 / n
	mean1 := sum1 / n
	corr := cov/n - mean0*mean1
	if math.Abs(mean0) > 0.03 || math.Abs(mean1) > 0.03 {
		t.Errorf("means = (%v,%v), want near (0,0)", mean0, mean1)
	}
	if math.Abs(corr) > 0.03 {
		t.Errorf("empirical correlation = %v, want near 0", corr)
	}
}

func TestReinitRebuildsBoundingBox(t *testing.T) {
	d := distr.NewCont("normal")
	d.SetPDF(func(x float64) float64 { return math.Exp(-x * x / 2) })
	d.SetMode(0)
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)}}
	g, err := NewNROU(d, p)
	if err != nil {
		t.Fatalf("NewNROU: %v", err)
	}
	if err := g.Reinit(Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(6)}, R: 2}); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if g.State() != unuran.Initialized {
		t.Errorf("State() after Reinit = %v, want Initialized", g.State())
	}
	for i := 0; i < 1000; i++ {
		if _, err := g.Sample1(); err != nil {
			t.Fatalf("Sample1 after Reinit: %v", err)
		}
	}
}

func TestSetupInfiniteOnUnboundedDensity(t *testing.T) {
	d := distr.NewCont("runaway")
	d.SetPDF(func(x float64) float64 { return math.Exp(x) })
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)}}
	if _, err := NewNROU(d, p); err == nil {
		t.Error("expected SetupInfinite-style failure for a density with no finite bounding box")
	}
}
