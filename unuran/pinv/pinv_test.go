// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"math"
	"testing"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/urng"
)

func exponential() *distr.Cont {
	c := distr.NewCont("exponential")
	c.SetPDF(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return math.Exp(-x)
	})
	c.SetDomain(0, math.Inf(1))
	c.SetMode(0)
	return c
}

func TestNewtonPolyFitIdentity(t *testing.T) {
	var p newtonPoly
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}
	if err := p.Fit(xs, ys); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, x := range []float64{0, 1, 2, 3} {
		got := p.Predict(x)
		want := x * x
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Predict(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestExponentialIntervalTableMatchesCDF(t *testing.T) {
	d := exponential()
	x0 := 0.5
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)}, X0: &x0, UResolution: 1e-10}
	g, err := New(d, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// median of Exp(1) is ln(2) ~ 0.6931; approximate by sampling a
	// generator seeded so the first draw lands near u=0.5 is brittle,
	// so instead check the interval table reproduces F at its own
	// node boundaries to within u_resolution-scale tolerance.
	cdfAt := func(x float64) float64 {
		v, _ := quadCDF(d, x)
		return v
	}
	for _, iv := range g.intervals {
		got := cdfAt(iv.xLeft)
		if math.Abs(got-iv.uLeft) > 1e-4 {
			t.Errorf("interval at x=%v: cdf=%v, cumulative u=%v", iv.xLeft, got, iv.uLeft)
		}
	}
}

func quadCDF(d *distr.Cont, x float64) (float64, error) {
	lo, _ := d.Domain()
	if math.IsInf(lo, -1) {
		lo = 0
	}
	const n = 2000
	if x <= lo {
		return 0, nil
	}
	h := (x - lo) / n
	sum := 0.5 * (d.PDF(lo) + d.PDF(x))
	for i := 1; i < n; i++ {
		sum += d.PDF(lo + float64(i)*h)
	}
	return sum * h, nil
}

func TestSampleWithinCutoffRange(t *testing.T) {
	d := exponential()
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(2)}}
	g, err := New(d, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 5000; i++ {
		x, err := g.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if x < g.leftCutoff || x > g.rightCutoff {
			t.Fatalf("Sample() = %v, want within [%v,%v]", x, g.leftCutoff, g.rightCutoff)
		}
	}
}

func TestReinitWithHeavyTail(t *testing.T) {
	d := exponential()
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(4)}}
	g, err := New(d, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Reinit(d, Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(5)}, HeavyTail: true}); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if g.State() != unuran.Initialized {
		t.Errorf("State() after Reinit = %v, want Initialized", g.State())
	}
	for i := 0; i < 1000; i++ {
		if _, err := g.Sample(); err != nil {
			t.Fatalf("Sample after Reinit: %v", err)
		}
	}
}

func TestSampleMeanNearOne(t *testing.T) {
	d := exponential()
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(9)}}
	g, err := New(d, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		x, _ := g.Sample()
		sum += x
	}
	mean := sum / n
	if math.Abs(mean-1) > 0.05 {
		t.Errorf("mean = %v, want near 1", mean)
	}
}
