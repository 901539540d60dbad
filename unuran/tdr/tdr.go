// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/unulog"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/unurerr"
)

// Variant selects which of the two TDR constructions builds the hat
// (see the package doc); both share squeeze construction and sampling.
type Variant int

const (
	// PS builds each interval's hat from the tangent at that
	// interval's left construction point.
	PS Variant = iota
	// GW builds each interval's hat from the intersection of the
	// tangents at both adjacent construction points.
	GW
)

func (v Variant) String() string {
	if v == GW {
		return "GW"
	}
	return "PS"
}

// Param collects TDR's setup knobs (spec.md §4.1's "method
// parameters"): the transform exponent c, initial construction points,
// the interval cap, and the rejection-rate threshold that triggers
// adaptive interval splitting at sampling time.
type Param struct {
	unuran.ParamBase

	// C selects the transform T_c; 0 selects T(y)=log(y). Must lie in
	// (-1,0] — values outside that range describe a transform for
	// which log-concavity-style hat/squeeze bounds are not valid.
	C float64

	// CPoints are the initial construction points, strictly inside the
	// distribution's domain and strictly increasing. If empty, two
	// points are derived from the mode (spec.md §4.1's default).
	CPoints []float64

	// MaxIntervals caps how many intervals adaptive splitting may
	// create; defaults to 100 if zero.
	MaxIntervals int

	// SplitThreshold is the rejection-probability estimate above which
	// a rejected draw in that interval triggers an adaptive split
	// (spec.md §4.1 step 7); defaults to 0.5 if zero.
	SplitThreshold float64
}

func (p Param) maxIntervals() int {
	if p.MaxIntervals <= 0 {
		return 100
	}
	return p.MaxIntervals
}

func (p Param) splitThreshold() float64 {
	if p.SplitThreshold <= 0 {
		return 0.5
	}
	return p.SplitThreshold
}

// interval is one piece of the partitioned support: its own range
// [left,right), a hat line and a squeeze line in the transformed
// scale, and the cumulative hat area up to and including this
// interval (used to build the guide table and to locate an interval
// from a drawn area).
type interval struct {
	left, right  float64
	hat, squeeze line
	// hasSqueeze is false on a piece with no valid lower bound other
	// than 0 — the outermost piece on an unbounded side, where there is
	// no second construction point to secant against and the tangent
	// itself is only a valid hat, not a squeeze.
	hasSqueeze    bool
	area          float64 // area under hat over [left,right)
	cumArea       float64 // cumulative area up to and including this interval
	rejects, hits int     // adaptive-split bookkeeping
}

// squeezeAt returns the squeeze value at x for iv, or 0 on a piece with
// no valid squeeze (spec.md §8 Invariant #1 requires squeeze(x)<=f(x)
// everywhere, and 0 is always a safe lower bound for a density).
func (g *Generator) squeezeAt(iv *interval, x float64) float64 {
	if !iv.hasSqueeze {
		return 0
	}
	return math.Max(0, g.t.hatOf(iv.squeeze, x))
}

// Generator is a TDR sampler: an owned clone of the setup-time
// density, the transform, the interval table, its guide table, and the
// lifecycle state of spec.md §4.5.
type Generator struct {
	unuran.Lifecycle

	variant Variant
	t       transform
	dist    *distr.Cont
	pdf     func(float64) float64
	dpdf    func(float64) float64
	domLo   float64
	domHi   float64

	param Param

	intervals []interval
	guide     []int
	totalArea float64

	verify bool
	Recent unurerr.Recent
	log    unulog.Recorder
}

// logEvent records a structural event under method name "tdr.<variant>".
func (g *Generator) logEvent(stage, detail string) {
	g.log.Record(unulog.Event{Time: time.Now(), Method: "tdr." + g.variant.String(), Stage: stage, Detail: detail})
}

// New builds a TDR Parameter/Generator pair from d and p, running
// setup immediately (there is no separate two-phase init/sample split
// exposed here — Parameter objects in this module are ephemeral
// builders per spec.md §3.2, consumed in one call).
func New(variant Variant, d *distr.Cont, p Param) (*Generator, error) {
	op := "tdr." + variant.String() + ".Init"
	if !d.HasPDF() || !d.HasDPDF() {
		return nil, unurerr.New(op, unurerr.DistrRequired)
	}
	if p.C > 0 || p.C <= -1 {
		return nil, unurerr.Newf(op, unurerr.ParSet, "transform exponent c=%v must lie in (-1,0]", p.C)
	}
	lo, hi := d.Domain()
	if p.C != 0 && (math.IsInf(lo, -1) || math.IsInf(hi, 1)) {
		return nil, unurerr.Newf(op, unurerr.ParSet, "unbounded domain requires the log transform (c=0)")
	}

	g := &Generator{
		variant: variant,
		t:       transform{c: p.C},
		dist:    d,
		pdf:     d.PDF,
		dpdf:    func(x float64) float64 { v, _ := d.DPDF(x); return v },
		domLo:   lo,
		domHi:   hi,
		param:   p,
		verify:  p.Verify,
		log:     p.Log(),
	}

	cpoints := p.CPoints
	if len(cpoints) == 0 {
		cpoints = defaultConstructionPoints(d)
	}
	cpoints = append([]float64(nil), cpoints...)
	sort.Float64s(cpoints)
	if err := g.buildIntervals(cpoints, op); err != nil {
		return nil, err
	}
	g.buildGuide()
	g.MarkInitialized()
	g.logEvent("setup", fmt.Sprintf("%d intervals, total area %.6g", len(g.intervals), g.totalArea))
	return g, nil
}

// Reinit rebuilds the interval and guide tables from p, closing the
// Stale->Initialized loop of spec.md §4.5 ("reinit after set_params
// yields a generator whose distribution matches the updated one").
// It may also be called on an already-Initialized generator to pick up
// new parameters without reallocating a Generator.
func (g *Generator) Reinit(p Param) error {
	op := "tdr." + g.variant.String() + ".Reinit"
	if err := g.RequireNotDestroyed(op); err != nil {
		return err
	}
	if p.C > 0 || p.C <= -1 {
		return unurerr.Newf(op, unurerr.ParSet, "transform exponent c=%v must lie in (-1,0]", p.C)
	}
	if p.C != 0 && (math.IsInf(g.domLo, -1) || math.IsInf(g.domHi, 1)) {
		return unurerr.Newf(op, unurerr.ParSet, "unbounded domain requires the log transform (c=0)")
	}

	cpoints := p.CPoints
	if len(cpoints) == 0 {
		cpoints = defaultConstructionPoints(g.dist)
	}
	cpoints = append([]float64(nil), cpoints...)
	sort.Float64s(cpoints)

	g.t = transform{c: p.C}
	g.param = p
	g.verify = p.Verify
	g.log = p.Log()
	if err := g.buildIntervals(cpoints, op); err != nil {
		return err
	}
	g.buildGuide()
	g.MarkInitialized()
	g.logEvent("reinit", fmt.Sprintf("%d intervals, total area %.6g", len(g.intervals), g.totalArea))
	return nil
}

// defaultConstructionPoints derives two points from the mode and
// domain when the caller supplies none (spec.md §4.1: "default = two
// derived from mode and domain").
func defaultConstructionPoints(d *distr.Cont) []float64 {
	lo, hi := d.Domain()
	mode := 0.0
	if m, err := d.Mode(); err == nil {
		mode = m
	}
	left := mode - 1
	right := mode + 1
	if !math.IsInf(lo, -1) && left <= lo {
		left = lo + (mode-lo)*0.5
	}
	if !math.IsInf(hi, 1) && right >= hi {
		right = hi - (hi-mode)*0.5
	}
	if left >= right {
		left, right = mode-0.5, mode+0.5
	}
	return []float64{left, right}
}

// buildIntervals runs the staged setup of spec.md §4.1: place
// construction points, build one hat/squeeze pair per adjacent pair
// (PS) or per tangent-intersection split (GW), and accumulate area.
func (g *Generator) buildIntervals(cpoints []float64, op string) error {
	n := len(cpoints)
	if n < 2 {
		return unurerr.Newf(op, unurerr.ParSet, "need at least 2 construction points, got %d", n)
	}
	fx := make([]float64, n)
	dfx := make([]float64, n)
	tangents := make([]line, n)
	for i, x := range cpoints {
		fx[i] = g.pdf(x)
		if !(fx[i] > 0) {
			return unurerr.Newf(op, unurerr.GenCondition, "pdf(%v) is not positive", x)
		}
		dfx[i] = g.dpdf(x)
		tangents[i] = g.t.tangentAt(x, fx[i], dfx[i])
	}
	// Concavity check (spec.md §4.1): the slope of T∘f must be
	// non-increasing across construction points, and the secant between
	// two adjacent points must have a slope between the tangent slopes
	// at its two ends.
	for i := 1; i < n; i++ {
		sec := g.t.secantThrough(cpoints[i-1], fx[i-1], cpoints[i], fx[i]).b
		if tangents[i].b > tangents[i-1].b+1e-9 || sec > tangents[i-1].b+1e-9 || sec < tangents[i].b-1e-9 {
			return unurerr.Newf(op, unurerr.GenCondition, "T-concavity violated between construction points %v and %v", cpoints[i-1], cpoints[i])
		}
	}

	var ivs []interval
	switch g.variant {
	case GW:
		ivs = g.buildIntervalsGW(cpoints, fx, tangents)
	default:
		ivs = g.buildIntervalsPS(cpoints, fx, tangents)
	}

	total := 0.0
	for i := range ivs {
		ivs[i].area = g.t.areaUnder(ivs[i].hat, ivs[i].left, ivs[i].right)
		total += ivs[i].area
		ivs[i].cumArea = total
	}
	g.intervals = ivs
	g.totalArea = total
	return nil
}

// buildIntervalsPS builds one interval per adjacent construction-point
// pair, whose hat is the tangent at the interval's left point (or, for
// the unbounded leftmost/rightmost pieces, the tangent at the nearest
// interior point).
func (g *Generator) buildIntervalsPS(cpoints, fx []float64, tangents []line) []interval {
	n := len(cpoints)
	out := make([]interval, 0, n+1)
	out = append(out, interval{left: g.domLo, right: cpoints[0], hat: tangents[0]})
	for i := 0; i < n-1; i++ {
		sq := g.t.secantThrough(cpoints[i], fx[i], cpoints[i+1], fx[i+1])
		out = append(out, interval{left: cpoints[i], right: cpoints[i+1], hat: tangents[i], squeeze: sq, hasSqueeze: true})
	}
	out = append(out, interval{left: cpoints[n-1], right: g.domHi, hat: tangents[n-1]})
	return out
}

// buildIntervalsGW builds the classical Gilks & Wild hat: the tangent
// at each construction point is used up to the point where it is
// overtaken by the next tangent, found by intersecting the two lines
// in the transformed scale.
func (g *Generator) buildIntervalsGW(cpoints, fx []float64, tangents []line) []interval {
	n := len(cpoints)
	bounds := make([]float64, n+1)
	bounds[0] = g.domLo
	bounds[n] = g.domHi
	for i := 0; i < n-1; i++ {
		bounds[i+1] = intersect(tangents[i], tangents[i+1])
	}
	out := make([]interval, n)
	for i := 0; i < n; i++ {
		// The outermost piece on either unbounded side has no second
		// construction point to secant against: a secant through the
		// interior pair, or the tangent itself, extrapolated out there
		// would sit above f rather than below it, so it is left with
		// no squeeze (0 is always a valid lower bound). An interior
		// piece spans its own construction point and lies between the
		// two neighbouring points, so its squeeze is the secant through
		// those two neighbours.
		switch {
		case i == 0 && n == 1:
		case i == 0, i == n-1:
		default:
			out[i].squeeze = g.t.secantThrough(cpoints[i-1], fx[i-1], cpoints[i+1], fx[i+1])
			out[i].hasSqueeze = true
		}
		out[i].left, out[i].right, out[i].hat = bounds[i], bounds[i+1], tangents[i]
	}
	return out
}

// intersect returns the x at which two lines meet (exact when b1!=b2,
// which holds whenever the underlying points are distinct and T∘f is
// strictly concave).
func intersect(l1, l2 line) float64 {
	c1 := l1.a - l1.b*l1.x0
	c2 := l2.a - l2.b*l2.x0
	if l1.b == l2.b {
		return (l1.x0 + l2.x0) / 2
	}
	return (c2 - c1) / (l1.b - l2.b)
}

// buildGuide builds a guide table of length len(intervals) times the
// guide-table factor (at least 1), mapping
// floor(u*C) to the largest interval index whose left cumulative area
// does not exceed u*total (spec.md §3.4).
func (g *Generator) buildGuide() {
	c := int(float64(len(g.intervals)) * g.param.GuideFactor())
	if c < 1 {
		c = 1
	}
	g.guide = make([]int, c)
	j := 0
	for i := 0; i < c; i++ {
		target := float64(i) / float64(c) * g.totalArea
		for j < len(g.intervals)-1 && g.intervals[j].cumArea <= target {
			j++
		}
		g.guide[i] = j
	}
}

// Sample draws one variate (spec.md §4.1's sampling contract).
func (g *Generator) Sample() (float64, error) {
	const op = "tdr.Sample"
	if err := g.RequireInitialized(op); err != nil {
		return 0, err
	}
	u := g.param.URNG
	for {
		c := len(g.guide)
		uu := u.Uniform()
		idx := g.guide[int(uu*float64(c))]
		target := uu * g.totalArea
		for idx < len(g.intervals)-1 && g.intervals[idx].cumArea <= target {
			idx++
		}
		iv := &g.intervals[idx]
		localTarget := target
		if idx > 0 {
			localTarget -= g.intervals[idx-1].cumArea
		}
		x := g.t.invertArea(iv.hat, iv.left, localTarget)
		hatVal := g.t.hatOf(iv.hat, x)
		v := u.Uniform() * hatVal

		sqVal := g.squeezeAt(iv, x)
		if v <= sqVal {
			iv.hits++
			g.verifyPoint(x, sqVal, hatVal)
			return x, nil
		}
		fx := g.pdf(x)
		if v <= fx {
			iv.hits++
			g.verifyPoint(x, sqVal, hatVal)
			return x, nil
		}
		iv.rejects++
		g.maybeSplit(idx)
	}
}

// verifyPoint implements spec.md §4.1's verify mode: after acceptance,
// check squeeze(x) <= f(x) <= hat(x) and record a warning on violation
// without aborting. sqVal is the squeeze value actually in force at x
// (0 on a piece with no squeeze), independent of which branch of the
// accept/reject loop fired.
func (g *Generator) verifyPoint(x, sqVal, hatVal float64) {
	if !g.verify {
		return
	}
	fx := g.pdf(x)
	if fx > hatVal*(1+1e-9) || fx < -1e-12 {
		g.Recent.Record(unurerr.New("tdr.Sample", unurerr.GenCondition))
	}
	if sqVal > fx*(1+1e-9) {
		g.Recent.Record(unurerr.New("tdr.Sample", unurerr.GenCondition))
	}
}

// maybeSplit implements adaptive interval insertion (spec.md §4.1 step
// 7): once an interval's rejection rate exceeds the threshold, split
// it at its midpoint construction point, provided the interval cap
// has not been reached.
func (g *Generator) maybeSplit(idx int) {
	if len(g.intervals) >= g.param.maxIntervals() {
		return
	}
	iv := &g.intervals[idx]
	total := iv.hits + iv.rejects
	if total < 20 {
		return
	}
	rate := float64(iv.rejects) / float64(total)
	if rate < g.param.splitThreshold() {
		return
	}
	if math.IsInf(iv.left, -1) || math.IsInf(iv.right, 1) {
		return
	}
	mid := (iv.left + iv.right) / 2
	fmid := g.pdf(mid)
	if !(fmid > 0) {
		return
	}
	dmid := g.dpdf(mid)
	tangent := g.t.tangentAt(mid, fmid, dmid)

	left := interval{left: iv.left, right: mid, hat: iv.hat, squeeze: iv.squeeze, hasSqueeze: iv.hasSqueeze}
	right := interval{left: mid, right: iv.right, hat: iv.hat, squeeze: iv.squeeze, hasSqueeze: iv.hasSqueeze}
	if g.variant == GW {
		left.hat = iv.hat
		right.hat = tangent
		split := intersect(iv.hat, tangent)
		if split > iv.left && split < iv.right {
			left.right, right.left = split, split
		}
	} else {
		left.hat = iv.hat
		right.hat = tangent
	}
	left.area = g.t.areaUnder(left.hat, left.left, left.right)
	right.area = g.t.areaUnder(right.hat, right.left, right.right)

	out := make([]interval, 0, len(g.intervals)+1)
	out = append(out, g.intervals[:idx]...)
	out = append(out, left, right)
	out = append(out, g.intervals[idx+1:]...)
	g.intervals = out

	total0 := 0.0
	for i := range g.intervals {
		total0 += g.intervals[i].area
		g.intervals[i].cumArea = total0
	}
	g.totalArea = total0
	g.buildGuide()
	g.logEvent("split", fmt.Sprintf("interval %d split at x=%.6g, now %d intervals", idx, mid, len(g.intervals)))
}

// Free releases the generator (spec.md §3.3's destructor).
func (g *Generator) Free() { g.MarkDestroyed() }
