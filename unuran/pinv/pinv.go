// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinv implements Polynomial Inversion (spec.md §4.2): turn a
// density into an approximate inverse CDF by numerically integrating it
// (package quad's Gauss-Lobatto marching integrator) and fitting
// piecewise Newton polynomials (newton.go) to the result, so that
// sampling is a guide-table lookup plus one polynomial evaluation —
// no rejection loop, no PDF evaluation at sample time.
//
// The staged setup (boundary search, area estimation, tail cutoff,
// adaptive interpolation, guide table) follows spec.md §4.2's five
// stages directly; the root-finding inside each stage is grounded on
// numeric/root's bisection and Newton solvers, the same way the
// teacher's optimize package composes a line search out of a smaller
// numeric/ primitive rather than re-deriving one per caller.
package pinv

import (
	"fmt"
	"math"
	"time"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/numeric/quad"
	"github.com/unuran-go/unuran/numeric/root"
	"github.com/unuran-go/unuran/unulog"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/unurerr"
	"github.com/unuran-go/unuran/urng"
)

// Param collects PINV's setup knobs (spec.md §4.2).
type Param struct {
	unuran.ParamBase

	// UResolution bounds |F(sample(u))-u|; defaults to 1e-10.
	UResolution float64
	// X0 is an optional hint where f is non-tiny, used to seed the
	// boundary search; defaults to the distribution's mode, or 0. A hint
	// at or beyond a domain endpoint is moved one unit inside it.
	X0 *float64
	// Degree is the Newton interpolation polynomial degree g; defaults
	// to 5.
	Degree int
	// MaxIntervals caps Stage D's interval count; defaults to 10000.
	MaxIntervals int
	// HeavyTail raises the tail-cutoff area factor from 0.1 to 0.5
	// (spec.md §4.2 Stage C), appropriate for distributions like
	// Cauchy whose tails carry more relative mass near the cutoff.
	HeavyTail bool
}

func (p Param) uResolution() float64 {
	if p.UResolution <= 0 {
		return 1e-10
	}
	return p.UResolution
}

func (p Param) degree() int {
	if p.Degree <= 0 {
		return 5
	}
	return p.Degree
}

func (p Param) maxIntervals() int {
	if p.MaxIntervals <= 0 {
		return 10000
	}
	return p.MaxIntervals
}

func (p Param) tailFactor() float64 {
	if p.HeavyTail {
		return 0.5
	}
	return 0.1
}

// pinvInterval is one Stage D trial interval, holding the Newton
// polynomial chi(u-offset) = x-offset and the bookkeeping needed for
// guide-table lookup (spec.md §3.4).
type pinvInterval struct {
	xLeft   float64 // x_i
	uLeft   float64 // cumulative u at x_i (before scaling by umax)
	uWidth  float64 // local area captured by this interval
	poly    newtonPoly
}

// Generator is a PINV sampler: the left/right tail cutoffs, total
// captured area, the Stage D interval table, and its guide table.
type Generator struct {
	unuran.Lifecycle

	dist *distr.Cont
	pdf  func(float64) float64
	urng urng.Stream

	leftCutoff, rightCutoff float64
	totalArea               float64 // A, spec.md §4.2 Stage B
	umax                    float64 // area under f summed over the Stage D intervals, i.e. between the cutoffs

	intervals []pinvInterval
	guide     []int

	uResolution float64
	Recent      unurerr.Recent
	log         unulog.Recorder
}

func (g *Generator) logEvent(stage, detail string) {
	g.log.Record(unulog.Event{Time: time.Now(), Method: "pinv", Stage: stage, Detail: detail})
}

// New runs PINV's full staged setup on d and returns a ready Generator.
func New(d *distr.Cont, p Param) (*Generator, error) {
	const op = "pinv.Init"
	if !d.HasPDF() {
		return nil, unurerr.New(op, unurerr.DistrRequired)
	}
	if p.URNG == nil {
		return nil, unurerr.New(op, unurerr.Null)
	}
	g := &Generator{dist: d, pdf: d.PDF, urng: p.URNG, log: p.Log()}
	if err := g.runSetup(d, p, op); err != nil {
		return nil, err
	}
	g.MarkInitialized()
	g.logEvent("setup", fmt.Sprintf("%d intervals, umax=%.6g", len(g.intervals), g.umax))
	return g, nil
}

// Reinit reruns PINV's staged setup on d with p, closing the
// Stale->Initialized loop of spec.md §4.5.
func (g *Generator) Reinit(d *distr.Cont, p Param) error {
	const op = "pinv.Reinit"
	if err := g.RequireNotDestroyed(op); err != nil {
		return err
	}
	if !d.HasPDF() {
		return unurerr.New(op, unurerr.DistrRequired)
	}
	if p.URNG == nil {
		return unurerr.New(op, unurerr.Null)
	}
	g.dist = d
	g.pdf = d.PDF
	g.urng = p.URNG
	g.log = p.Log()
	if err := g.runSetup(d, p, op); err != nil {
		return err
	}
	g.MarkInitialized()
	g.logEvent("reinit", fmt.Sprintf("%d intervals, umax=%.6g", len(g.intervals), g.umax))
	return nil
}

// runSetup runs the five-stage construction shared by New and Reinit,
// populating every field of g except the lifecycle state.
func (g *Generator) runSetup(d *distr.Cont, p Param, op string) error {
	lo, hi := d.Domain()
	pdf := d.PDF

	x0 := 0.0
	switch {
	case p.X0 != nil:
		x0 = *p.X0
	default:
		if m, err := d.Mode(); err == nil {
			x0 = m
		}
	}
	if x0 <= lo {
		x0 = lo + 1
	}
	if x0 >= hi {
		x0 = hi - 1
	}
	fx0 := pdf(x0)
	if !(fx0 > 0) {
		return unurerr.Newf(op, unurerr.GenCondition, "pdf(%v)=%v is not positive at hint point", x0, fx0)
	}

	// Stage A: boundary search.
	boundLo := boundarySearch(pdf, x0, fx0, lo, -1)
	boundHi := boundarySearch(pdf, x0, fx0, hi, 1)

	// Stage B: area estimation, integrating outward from x0.
	const initStep = 0.1
	const quadTarget = 1e-10
	areaLeft, _, _ := quad.Integrate(pdf, boundLo, x0, initStep, quadTarget, 40)
	areaRight, _, _ := quad.Integrate(pdf, x0, boundHi, initStep, quadTarget, 40)
	total := areaLeft + areaRight
	if !(total > 0) {
		return unurerr.New(op, unurerr.GenCondition)
	}

	// Stage C: tail cutoff, refining the Stage A boundary toward a
	// target tail area of uResolution*A*tailFactor.
	uRes := p.uResolution()
	targetTail := uRes * total * p.tailFactor()
	cutLo := boundLo
	cutHi := boundHi
	if math.IsInf(lo, -1) {
		cutLo = tailCutoff(pdf, boundLo, x0, targetTail, -1)
	}
	if math.IsInf(hi, 1) {
		cutHi = tailCutoff(pdf, boundHi, x0, targetTail, 1)
	}
	if cutLo < lo {
		cutLo = lo
	}
	if cutHi > hi {
		cutHi = hi
	}

	// Recompute area over the final cutoff range.
	areaLeft, _, _ = quad.Integrate(pdf, cutLo, x0, initStep, quadTarget, 40)
	areaRight, _, _ = quad.Integrate(pdf, x0, cutHi, initStep, quadTarget, 40)
	total = areaLeft + areaRight

	g.leftCutoff = cutLo
	g.rightCutoff = cutHi
	g.totalArea = total
	g.uResolution = uRes

	if err := g.buildIntervals(cutLo, cutHi, total, p, op); err != nil {
		return err
	}
	g.buildGuide(p.GuideFactor())
	return nil
}

// boundarySearch implements spec.md §4.2 Stage A: expand/contract by
// doubling from x0 in direction dir (-1 left, +1 right) until f drops
// below fx0*1e-13 or the domain limit is hit, then refine by
// bisection.
func boundarySearch(f func(float64) float64, x0, fx0, domainLimit float64, dir float64) float64 {
	const thresholdFactor = 1e-13
	threshold := fx0 * thresholdFactor
	step := 1.0
	prev := x0
	cur := x0
	for i := 0; i < 200; i++ {
		cur = x0 + dir*step
		if (dir > 0 && !math.IsInf(domainLimit, 0) && cur >= domainLimit) ||
			(dir < 0 && !math.IsInf(domainLimit, 0) && cur <= domainLimit) {
			cur = domainLimit
			return cur
		}
		if f(cur) <= threshold {
			break
		}
		prev = cur
		step *= 2
	}
	lo, hi := prev, cur
	if dir < 0 {
		lo, hi = cur, prev
	}
	x := root.Bisect(func(x float64) float64 { return f(x) - threshold }, lo, hi, 1e-10*math.Max(1, math.Abs(x0)), 200)
	return x
}

// tailCutoff implements spec.md §4.2 Stage C: refine the Stage-A
// boundary w0 so the tail area beyond it approximates targetArea,
// using the approximation tailArea(w) ~= f(w)^2/((L_f(w)+1)*|f'(w)|)
// with f' and the local convexity L_f estimated by finite differences,
// driven by Newton iteration on the reciprocal.
func tailCutoff(f func(float64) float64, w0, x0, targetArea float64, dir float64) float64 {
	if targetArea <= 0 {
		return w0
	}
	h := math.Max(1e-4, math.Abs(w0-x0)*1e-4)
	estimate := func(w float64) float64 {
		fw := f(w)
		if fw <= 0 {
			return 1e-300
		}
		fprime := (f(w+h) - f(w-h)) / (2 * h)
		second := (f(w+h) - 2*fw + f(w-h)) / (h * h)
		lconv := math.Abs(second) / fw
		denom := (lconv + 1) * math.Max(math.Abs(fprime), 1e-300)
		return fw * fw / denom
	}
	recipTarget := 1 / targetArea
	g := func(w float64) float64 { return 1/estimate(w) - recipTarget }
	dg := func(w float64) float64 {
		const eps = 1e-6
		return (g(w+eps) - g(w-eps)) / (2 * eps)
	}
	w := root.Newton(g, dg, w0, 1e-8*math.Max(1, math.Abs(w0)), 50)
	// Newton can overshoot past x0 for pathological densities; clamp
	// back toward the Stage-A boundary on the correct side.
	if dir < 0 && w > w0 {
		return w0
	}
	if dir > 0 && w < w0 {
		return w0
	}
	return w
}

// buildIntervals implements spec.md §4.2 Stage D: walk left to right
// from cutLo, building one Newton-polynomial interval per accepted
// trial step.
func (g *Generator) buildIntervals(cutLo, cutHi, total float64, p Param, op string) error {
	deg := p.degree()
	maxInt := p.maxIntervals()
	target := g.uResolution * total
	if target <= 0 {
		target = 1e-12
	}

	var ivs []pinvInterval
	x := cutLo
	h := (cutHi - cutLo) / 64
	if h <= 0 {
		return unurerr.New(op, unurerr.GenCondition)
	}
	floor := (cutHi - cutLo) / math.Pow(2, 40)
	cumU := 0.0

	for x < cutHi {
		if x+h > cutHi {
			h = cutHi - x
		}
		nodes, uOffsets := chebyshevStageD(g.pdf, x, h, deg)
		var poly newtonPoly
		if err := poly.Fit(uOffsets, subOffsets(nodes, x)); err != nil {
			return unurerr.Newf(op, unurerr.ShouldNotHappen, "%v", err)
		}
		localArea := uOffsets[len(uOffsets)-1]

		errEst := stageDError(g.pdf, x, h, &poly, localArea)
		if errEst > target {
			if h <= floor {
				return unurerr.Newf(op, unurerr.GenCondition, "Stage D interval width shrank below floor at x=%v", x)
			}
			h *= math.Max(0.9*0.9, math.Pow(target/errEst, 1.0/9.0))
			continue
		}
		ivs = append(ivs, pinvInterval{xLeft: x, uLeft: cumU, uWidth: localArea, poly: poly})
		cumU += localArea
		x += h
		factor := 2.0
		if errEst > 0 {
			factor = math.Min(2.0, math.Pow(target/errEst, 1.0/9.0))
		}
		h *= factor
		if len(ivs) > maxInt {
			return unurerr.Newf(op, unurerr.GenCondition, "interval count exceeded %d", maxInt)
		}
	}
	if len(ivs) == 0 {
		return unurerr.New(op, unurerr.GenCondition)
	}
	g.intervals = ivs
	g.umax = cumU
	return nil
}

// chebyshevStageD computes deg+1 Chebyshev-Lobatto-spaced sub-nodes
// inside [x,x+h] via the sin/cos formula spec.md §4.2 Stage D
// describes, then integrates f between consecutive nodes (Lobatto5)
// to get the cumulative u-offsets.
func chebyshevStageD(f func(float64) float64, x, h float64, deg int) (nodes []float64, uOffsets []float64) {
	n := deg + 1
	nodes = make([]float64, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * float64(k) / float64(deg)
		nodes[k] = x + h/2*(1-math.Cos(theta))
	}
	uOffsets = make([]float64, n)
	cum := 0.0
	for k := 1; k < n; k++ {
		cum += quad.Lobatto5(f, nodes[k-1], nodes[k])
		uOffsets[k] = cum
	}
	return nodes, uOffsets
}

func subOffsets(nodes []float64, x float64) []float64 {
	out := make([]float64, len(nodes))
	for i, v := range nodes {
		out[i] = v - x
	}
	return out
}

// stageDError estimates the interpolation error at the test points
// between table nodes by comparing the polynomial's predicted
// x-offset against an independently-integrated Lobatto estimate of the
// u value the polynomial claims to reach, implementing spec.md §4.2
// Stage D's maxerror check.
func stageDError(f func(float64) float64, x, h float64, poly *newtonPoly, localArea float64) float64 {
	const samples = 4
	maxErr := 0.0
	for i := 1; i <= samples; i++ {
		u := localArea * float64(i) / float64(samples+1)
		xOff := poly.Predict(u)
		indep := quad.Lobatto5(f, x, x+xOff)
		err := math.Abs(indep - u)
		if err > maxErr {
			maxErr = err
		}
	}
	return maxErr
}

// buildGuide builds the length-ni guide table of spec.md §4.2 Stage E,
// mapping floor(u*ni/umax) to the largest interval index whose
// cumulative u-value does not exceed it.
func (g *Generator) buildGuide(factor float64) {
	if factor <= 0 {
		factor = 1
	}
	ni := int(float64(len(g.intervals)) * factor)
	if ni < 1 {
		ni = 1
	}
	g.guide = make([]int, ni)
	j := 0
	for i := 0; i < ni; i++ {
		target := float64(i) / float64(ni) * g.umax
		for j < len(g.intervals)-1 && g.intervals[j+1].uLeft <= target {
			j++
		}
		g.guide[i] = j
	}
}

// Sample draws one variate (spec.md §4.2's sampling contract): no
// rejection, no PDF evaluation.
func (g *Generator) Sample() (float64, error) {
	const op = "pinv.Sample"
	if err := g.RequireInitialized(op); err != nil {
		return 0, err
	}
	u := g.urng.Uniform()
	if u >= 1-3e-16 {
		u = 1 - 3e-16
	}
	un := u * g.umax
	ni := len(g.guide)
	idx := g.guide[int(u*float64(ni))]
	for idx < len(g.intervals)-1 && g.intervals[idx+1].uLeft <= un {
		idx++
	}
	iv := &g.intervals[idx]
	offset := un - iv.uLeft
	x := iv.xLeft + iv.poly.Predict(offset)
	if x < g.leftCutoff {
		x = g.leftCutoff
	}
	if x > g.rightCutoff {
		x = g.rightCutoff
	}
	return x, nil
}

// Free releases the generator (spec.md §3.3's destructor).
func (g *Generator) Free() { g.MarkDestroyed() }
