// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/urng"
)

func stdNormal() *distr.Cont {
	c := distr.NewCont("normal")
	c.SetPDF(func(x float64) float64 { return math.Exp(-x * x / 2) })
	c.SetDPDF(func(x float64) float64 { return -x * math.Exp(-x*x/2) })
	c.SetDomain(math.Inf(-1), math.Inf(1))
	c.SetMode(0)
	return c
}

func newParam() Param {
	return Param{
		ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)},
		C:         0,
		CPoints:   []float64{-1, 1},
	}
}

func TestGWSampleMeanVariance(t *testing.T) {
	d := stdNormal()
	g, err := New(GW, d, newParam())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x, err := g.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
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

func TestPSSampleMeanVariance(t *testing.T) {
	d := stdNormal()
	g, err := New(PS, d, newParam())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x, _ := g.Sample()
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

func TestSampleStaysWithinBoundedDomain(t *testing.T) {
	c := distr.NewCont("truncated-exp")
	c.SetPDF(func(x float64) float64 { return math.Exp(-x) })
	c.SetDPDF(func(x float64) float64 { return -math.Exp(-x) })
	c.SetDomain(0, 5)
	c.SetMode(0)
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(7)}, CPoints: []float64{0.5, 2}}
	g, err := New(GW, c, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 5000; i++ {
		x, err := g.Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if x < 0 || x > 5 {
			t.Fatalf("Sample() = %v, want within [0,5]", x)
		}
	}
}

func TestDeterministicWithResetURNG(t *testing.T) {
	d := stdNormal()
	r1 := urng.NewMT19937(42)
	g1, _ := New(GW, d, Param{ParamBase: unuran.ParamBase{URNG: r1}, CPoints: []float64{-1, 1}})
	r2 := urng.NewMT19937(42)
	g2, _ := New(GW, d, Param{ParamBase: unuran.ParamBase{URNG: r2}, CPoints: []float64{-1, 1}})
	const n = 1000
	seq1 := make([]float64, n)
	seq2 := make([]float64, n)
	for i := 0; i < n; i++ {
		seq1[i], _ = g1.Sample()
		seq2[i], _ = g2.Sample()
	}
	if diff := cmp.Diff(seq1, seq2); diff != "" {
		t.Fatalf("sample sequences diverged from identically-seeded URNGs (-seq1 +seq2):\n%s", diff)
	}
}

func TestVerifyModeFlagsKink(t *testing.T) {
	c := distr.NewCont("kinked-normal")
	c.SetPDF(func(x float64) float64 {
		v := math.Exp(-x * x / 2)
		if x > 0.45 && x < 0.55 {
			v *= 1.3
		}
		return v
	})
	c.SetDPDF(func(x float64) float64 { return -x * math.Exp(-x*x/2) })
	c.SetDomain(-4, 4)
	c.SetMode(0)
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(3), Verify: true}, CPoints: []float64{-1, 1}}
	g, err := New(GW, c, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 20000 && g.Recent.Last() == nil; i++ {
		if _, err := g.Sample(); err != nil {
			t.Fatalf("Sample: %v", err)
		}
	}
	if g.Recent.Last() == nil {
		t.Error("expected verify mode to flag the planted kink at least once")
	}
}

func TestReinitPicksUpNewConstructionPoints(t *testing.T) {
	d := stdNormal()
	g, err := New(GW, d, newParam())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	nBefore := len(g.intervals)
	if err := g.Reinit(Param{
		ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)},
		CPoints:   []float64{-2, -0.5, 0.5, 2},
	}); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if g.State() != unuran.Initialized {
		t.Errorf("State() after Reinit = %v, want Initialized", g.State())
	}
	if len(g.intervals) == nBefore {
		t.Errorf("Reinit did not rebuild intervals: still %d", nBefore)
	}
	for i := 0; i < 1000; i++ {
		if _, err := g.Sample(); err != nil {
			t.Fatalf("Sample after Reinit: %v", err)
		}
	}
}

func TestReinitRejectsAfterFree(t *testing.T) {
	d := stdNormal()
	g, err := New(GW, d, newParam())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Free()
	if err := g.Reinit(newParam()); err == nil {
		t.Error("expected Reinit on a destroyed generator to fail")
	}
}

func TestOuterIntervalSqueezeStaysBelowPDF(t *testing.T) {
	d := stdNormal()
	x := -3.0
	fx := d.PDF(x)
	for _, variant := range []Variant{PS, GW} {
		g, err := New(variant, d, newParam())
		if err != nil {
			t.Fatalf("New(%v): %v", variant, err)
		}
		iv := &g.intervals[0]
		if x < iv.left || x >= iv.right {
			t.Fatalf("%v: x=%v not in leftmost interval [%v,%v)", variant, x, iv.left, iv.right)
		}
		if sq := g.squeezeAt(iv, x); sq > fx {
			t.Errorf("%v: squeeze(%v) = %v, want <= pdf(%v) = %v", variant, x, sq, x, fx)
		}
	}
}

func TestSetupConditionOnNonConcave(t *testing.T) {
	c := distr.NewCont("bimodal")
	c.SetPDF(func(x float64) float64 { return math.Exp(-(x-3)*(x-3)/2) + math.Exp(-(x+3)*(x+3)/2) })
	c.SetDPDF(func(x float64) float64 {
		return -(x-3)*math.Exp(-(x-3)*(x-3)/2) - (x+3)*math.Exp(-(x+3)*(x+3)/2)
	})
	c.SetDomain(-10, 10)
	p := Param{ParamBase: unuran.ParamBase{URNG: urng.NewMT19937(1)}, CPoints: []float64{-3, 0, 3}}
	if _, err := New(GW, c, p); err == nil {
		t.Error("expected SetupCondition-style failure for a non-T-concave density")
	}
}
