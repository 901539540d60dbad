// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tdr implements Transformed Density Rejection (spec.md §4.1):
// adaptive hat/squeeze construction for univariate continuous
// T-concave densities, with guide-table-accelerated sampling.
//
// PS and GW are two values of Variant passed to the one constructor,
// New, over one shared Generator type; the interval-construction step
// at setup and the split point of an adaptively split interval differ
// between them — PS builds each interval's hat from the tangent at
// that interval's left construction point, GW builds each interval's
// hat by combining the tangents from both adjacent construction points
// and splitting at their intersection (the classical Gilks & Wild 1992
// construction). Both variants take the squeeze from a secant through
// two construction points, in the transformed scale (PS: the
// interval's own two points; GW: the two neighbours of the piece's
// construction point), and share the same sampling loop.
//
// The design follows the teacher's builder/embed idiom (stat/distuv's
// parameter structs, optimize's Settings) generalized to carry a
// transform family T_c(y) = -y^c for c ∈ (-1,0), with T_0(y)=log(y) as
// the c→0 limit (the only transform the original library calls "log
// concave" outright, and the one this package fully supports over
// unbounded domains — see New's domain check).
package tdr

import "math"

// transform is the strictly increasing concave map T_c used to bound a
// T-concave density, alongside its inverse and first derivative. c=0
// selects T(y)=log(y); c∈(-1,0) selects T(y)=-y^c.
type transform struct {
	c float64
}

// T returns T_c(y) for y>0.
func (t transform) T(y float64) float64 {
	if t.c == 0 {
		return math.Log(y)
	}
	return -math.Pow(y, t.c)
}

// Tinv returns T_c^{-1}(z).
func (t transform) Tinv(z float64) float64 {
	if t.c == 0 {
		return math.Exp(z)
	}
	// z = -y^c  =>  y = (-z)^(1/c)
	return math.Pow(-z, 1/t.c)
}

// dT returns dT_c/dy at y>0, the factor that turns a density slope
// f'(x) into the slope of T(f(x)) at the same x (chain rule).
func (t transform) dT(y float64) float64 {
	if t.c == 0 {
		return 1 / y
	}
	return -t.c * math.Pow(y, t.c-1)
}

// line is a linear function in the transformed scale, z(x) = a +
// b*(x-x0), used for both hat and squeeze pieces.
type line struct {
	x0, a, b float64
}

// at evaluates the line at x.
func (l line) at(x float64) float64 { return l.a + l.b*(x-l.x0) }

// tangentAt builds the tangent line to T∘f at point x where the
// density value is fx and the density derivative is dfx.
func (t transform) tangentAt(x, fx, dfx float64) line {
	return line{x0: x, a: t.T(fx), b: t.dT(fx) * dfx}
}

// secantThrough builds the line through (x1, T(f(x1))) and (x2,
// T(f(x2))), the universal squeeze piece (valid since T∘f is
// concave, a secant between two points on its graph lies on or below
// it everywhere between them).
func (t transform) secantThrough(x1, f1, x2, f2 float64) line {
	z1, z2 := t.T(f1), t.T(f2)
	if x2 == x1 {
		return line{x0: x1, a: z1, b: 0}
	}
	return line{x0: x1, a: z1, b: (z2 - z1) / (x2 - x1)}
}

// hatOf evaluates Tinv(l(x)), the hat or squeeze value in the original
// density scale.
func (t transform) hatOf(l line, x float64) float64 {
	return t.Tinv(l.at(x))
}

// areaUnder returns the integral of Tinv(l(x)) dx over [lo,hi], the
// exact area under one hat or squeeze piece (spec.md §4.1: "Compute
// each interval's area under the hat"). l.b must have the sign that
// makes the integral converge when lo or hi is infinite.
func (t transform) areaUnder(l line, lo, hi float64) float64 {
	if l.b == 0 {
		v := t.Tinv(l.a)
		return v * (hi - lo)
	}
	if t.c == 0 {
		top := evalExpTail(l, hi)
		bot := evalExpTail(l, lo)
		return (top - bot) / l.b
	}
	p := 1 / t.c
	return integralPower(t, l, lo, hi, p)
}

// evalExpTail evaluates exp(l(x)), treating x=±Inf as the 0 limit that
// an exponential tail decays to (only reached when l.b has the
// converging sign for that side).
func evalExpTail(l line, x float64) float64 {
	if math.IsInf(x, 0) {
		return 0
	}
	return math.Exp(l.at(x))
}

// powTail and integralPower implement the closed-form antiderivative
// of Tinv(l(x)) = (-l(x))^p for the power-transform family, treating
// an infinite endpoint as the 0 limit reached when l.b's sign makes
// -l(x) -> +Inf with p<0 (tail vanishes) — callers are expected to
// restrict infinite domains to the log transform (c=0); see New.
func powTail(t transform, l line, x float64, p float64) float64 {
	if math.IsInf(x, 0) {
		return 0
	}
	v := -l.at(x)
	return math.Pow(v, p+1)
}

func integralPower(t transform, l line, lo, hi float64, p float64) float64 {
	top := powTail(t, l, hi, p)
	bot := powTail(t, l, lo, p)
	return (bot - top) / (l.b * (p + 1))
}

// invertArea solves for x such that areaUnder(l, lo, x) == target,
// the analytic "invert the hat area equation" step of spec.md §4.1.
func (t transform) invertArea(l line, lo float64, target float64) float64 {
	if l.b == 0 {
		v := t.Tinv(l.a)
		return lo + target/v
	}
	if t.c == 0 {
		base := evalExpTail(l, lo)
		val := base + target*l.b
		return l.x0 + (math.Log(val)-l.a)/l.b
	}
	p := 1 / t.c
	base := powTail(t, l, lo, p)
	// area = (base - R)/(b*(p+1)) where R = (-l(x))^(p+1)
	r := base - target*l.b*(p+1)
	signed := math.Pow(r, 1/(p+1))
	return l.x0 + (-signed-l.a)/l.b
}
