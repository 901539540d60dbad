// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rou implements the ratio-of-uniforms methods of spec.md §4.3:
// NROU for a univariate CONT distribution (d=1) and MROU for a
// multivariate CVEC distribution (d>1). Both build a bounding box
// around the ratio-of-uniforms region A_f via Hooke-Jeeves pattern
// search (numeric/hookejeeves), then sample by rejection from that
// box.
//
// NROU and MROU are exported as two constructors over one shared
// Generator, mirroring the PS/GW split in package tdr: the dimension
// changes which distribution type the generator pulls its density from
// and how many bounding coordinates it searches for, but the box
// construction and the accept/reject sampling loop are identical code
// parametrized over d.
package rou

import (
	"fmt"
	"math"
	"time"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/internal/floats"
	"github.com/unuran-go/unuran/numeric/hookejeeves"
	"github.com/unuran-go/unuran/unulog"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/unurerr"
)

// Param collects NROU/MROU's setup knobs (spec.md §4.3).
type Param struct {
	unuran.ParamBase

	// R is the ratio-of-uniforms tuning exponent; defaults to 1.
	R float64
}

func (p Param) r() float64 {
	if p.R <= 0 {
		return 1
	}
	return p.R
}

// density is the minimal interface both NROU's Cont and MROU's CVec
// expose: an unnormalized non-negative density of a length-d point, a
// center to shift around, and an optional mode to seed v_max directly.
type density interface {
	dim() int
	pdf(x []float64) float64
	center() []float64
	mode() ([]float64, bool)
}

type contDensity struct{ d *distr.Cont }

func (c contDensity) dim() int               { return 1 }
func (c contDensity) pdf(x []float64) float64 { return c.d.PDF(x[0]) }
func (c contDensity) center() []float64 {
	if m, err := c.d.Mode(); err == nil {
		return []float64{m}
	}
	return []float64{0}
}
func (c contDensity) mode() ([]float64, bool) {
	if m, err := c.d.Mode(); err == nil {
		return []float64{m}, true
	}
	return nil, false
}

type cvecDensity struct{ d *distr.CVec }

func (c cvecDensity) dim() int                { return c.d.Dim() }
func (c cvecDensity) pdf(x []float64) float64 { return c.d.PDF(x) }
func (c cvecDensity) center() []float64       { return c.d.Center() }
func (c cvecDensity) mode() ([]float64, bool) {
	if c.d.HasMode() {
		m, _ := c.d.Mode()
		return m, true
	}
	return nil, false
}

// Generator is a ratio-of-uniforms sampler: the bounding box [0,
// vMax] x prod [uMin[k], uMax[k]], the density and its center, and the
// lifecycle state of spec.md §4.5.
type Generator struct {
	unuran.Lifecycle

	dens   density
	center []float64
	r      float64

	vMax       float64
	uMin, uMax []float64
	param      Param
	Recent     unurerr.Recent
	log        unulog.Recorder
}

func (g *Generator) logEvent(stage, detail string) {
	g.log.Record(unulog.Event{Time: time.Now(), Method: "rou", Stage: stage, Detail: detail})
}

// NewNROU builds an NROU generator over a univariate continuous
// distribution.
func NewNROU(d *distr.Cont, p Param) (*Generator, error) {
	if !d.HasPDF() {
		return nil, unurerr.New("rou.NewNROU", unurerr.DistrRequired)
	}
	return build(contDensity{d}, p, "rou.NewNROU")
}

// NewMROU builds an MROU generator over a multivariate continuous
// distribution.
func NewMROU(d *distr.CVec, p Param) (*Generator, error) {
	return build(cvecDensity{d}, p, "rou.NewMROU")
}

// Reinit rebuilds the bounding box from p over the same density this
// generator was built with, closing the Stale->Initialized loop of
// spec.md §4.5.
func (g *Generator) Reinit(p Param) error {
	op := "rou.Reinit"
	if err := g.RequireNotDestroyed(op); err != nil {
		return err
	}
	fresh, err := build(g.dens, p, op)
	if err != nil {
		return err
	}
	*g = *fresh
	g.logEvent("reinit", fmt.Sprintf("vMax=%.6g", g.vMax))
	return nil
}

// build implements the shared setup contract of spec.md §4.3.
func build(dens density, p Param, op string) (*Generator, error) {
	d := dens.dim()
	r := p.r()
	center := dens.center()
	power := 1.0 / (r*float64(d) + 1)

	shift := make([]float64, d)
	negFPow := func(x []float64) float64 {
		floats.AddScaledTo(shift, center, 1, x)
		fv := dens.pdf(shift)
		if !(fv > 0) {
			return 0
		}
		return -math.Pow(fv, power)
	}

	var vMax float64
	var notConverged bool
	if m, ok := dens.mode(); ok {
		fm := dens.pdf(m)
		vMax = math.Pow(fm, power)
	} else {
		settings := hookejeeves.DefaultSettings(d)
		x0 := make([]float64, d)
		res, converged := hookejeeves.MinimizeWithRestart(negFPow, x0, settings)
		notConverged = notConverged || !converged
		vMax = -res.F
	}
	if !hookejeeves.IsFinite(vMax) || vMax <= 0 {
		return nil, unurerr.New(op, unurerr.GenInvalid)
	}

	uMin := make([]float64, d)
	uMax := make([]float64, d)
	rPow := r / (r*float64(d) + 1)
	for k := 0; k < d; k++ {
		shifted := make([]float64, d)
		objLow := func(x []float64) float64 {
			floats.AddScaledTo(shifted, center, 1, x)
			fv := dens.pdf(shifted)
			if !(fv > 0) {
				return 0
			}
			return x[k] * math.Pow(fv, rPow)
		}
		objHigh := func(x []float64) float64 { return -objLow(x) }

		settings := hookejeeves.DefaultSettings(d)
		x0 := make([]float64, d)
		lowRes, lowConv := hookejeeves.MinimizeWithRestart(objLow, x0, settings)
		highRes, highConv := hookejeeves.MinimizeWithRestart(objHigh, x0, settings)
		notConverged = notConverged || !lowConv || !highConv
		uMin[k] = lowRes.F
		uMax[k] = -highRes.F
		if !hookejeeves.IsFinite(uMin[k]) || !hookejeeves.IsFinite(uMax[k]) {
			return nil, unurerr.New(op, unurerr.GenInvalid)
		}
	}

	const margin = 1e-4
	vMax *= 1 + margin
	for k := range uMin {
		width := uMax[k] - uMin[k]
		uMin[k] -= width * margin
		uMax[k] += width * margin
	}

	if p.URNG == nil {
		return nil, unurerr.New(op, unurerr.Null)
	}
	g := &Generator{
		dens:   dens,
		center: center,
		r:      r,
		vMax:   vMax,
		uMin:   uMin,
		uMax:   uMax,
		param:  p,
		log:    p.Log(),
	}
	if notConverged {
		g.Recent.Record(unurerr.New(op, unurerr.GenCondition))
	}
	g.MarkInitialized()
	g.logEvent("setup", fmt.Sprintf("vMax=%.6g", g.vMax))
	return g, nil
}

// Sample draws one variate (NROU returns a length-1 slice; callers of
// NewNROU typically take Sample()[0]).
func (g *Generator) Sample() ([]float64, error) {
	const op = "rou.Sample"
	if err := g.RequireInitialized(op); err != nil {
		return nil, err
	}
	d := g.dens.dim()
	u := g.param.URNG
	x := make([]float64, d)
	for {
		v := u.Uniform() * g.vMax
		for k := 0; k < d; k++ {
			x[k] = g.uMin[k] + u.Uniform()*(g.uMax[k]-g.uMin[k])
		}
		if v <= 0 {
			continue
		}
		shifted := make([]float64, d)
		vPow := math.Pow(v, g.r)
		floats.AddScaledTo(shifted, g.center, 1/vPow, x)
		lhs := math.Pow(v, g.r*float64(d)+1)
		fv := g.dens.pdf(shifted)
		if lhs <= fv {
			return shifted, nil
		}
	}
}

// Sample1 is a convenience wrapper for NROU (d=1) returning a scalar.
func (g *Generator) Sample1() (float64, error) {
	x, err := g.Sample()
	if err != nil {
		return 0, err
	}
	return x[0], nil
}

// Free releases the generator (spec.md §3.3's destructor).
func (g *Generator) Free() { g.MarkDestroyed() }
