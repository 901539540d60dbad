// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"

	"github.com/unuran-go/unuran/unurerr"
)

type contSet uint32

const (
	setPDF contSet = 1 << iota
	setDPDF
	setCDF
	setHazard
	setDomain
	setMode
	setArea
)

// Cont is a univariate continuous distribution object (spec.md §3.1
// CONT): a PDF and optionally its derivative, a CDF, a hazard rate, a
// bounded-or-unbounded real interval, a mode, and an area under the
// PDF (which may be an unnormalized constant — "whatever scale the PDF
// returns", per spec.md §3.1).
//
// Cont is a builder: NewCont returns an empty object, setters validate
// and record presence in a bitmask, and the zero value of every
// optional field is never read until its bit is set. Construct via
// NewCont; do not build a Cont literal directly; the set bitmask is
// unexported and the two assembled from a literal will always report
// every optional field missing, even if the func fields are non-nil.
type Cont struct {
	name string
	set  contSet

	pdf    func(float64) float64
	dpdf   func(float64) float64
	cdf    func(float64) float64
	hazard func(float64) float64

	a, b float64
	mode float64
	area float64

	base *Cont
}

// NewCont returns an empty continuous distribution object with domain
// (-Inf, Inf).
func NewCont(name string) *Cont {
	return &Cont{name: name, a: math.Inf(-1), b: math.Inf(1)}
}

// Name returns the distribution's human-readable name.
func (c *Cont) Name() string { return c.name }

// Clone returns a deep-enough copy of c: function fields are shared (they
// are pure per spec.md §3.1), scalar fields are copied. This is what a
// Generator uses to own an independent snapshot of the distribution at
// init time (spec.md §9, "Ownership of the distribution").
func (c *Cont) Clone() *Cont {
	cp := *c
	return &cp
}

// SetPDF installs the density function. f must be defined (returning a
// non-negative value) everywhere on the eventual domain.
func (c *Cont) SetPDF(f func(float64) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Cont.SetPDF"), unurerr.Null)
	}
	c.pdf = f
	c.set |= setPDF
	return nil
}

// SetDPDF installs the derivative of the density. TDR (spec.md §4.1)
// requires this, or a log-PDF derivative supplied the same way by the
// caller.
func (c *Cont) SetDPDF(f func(float64) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Cont.SetDPDF"), unurerr.Null)
	}
	c.dpdf = f
	c.set |= setDPDF
	return nil
}

// SetCDF installs the cumulative distribution function.
func (c *Cont) SetCDF(f func(float64) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Cont.SetCDF"), unurerr.Null)
	}
	c.cdf = f
	c.set |= setCDF
	return nil
}

// SetHazard installs the hazard rate function.
func (c *Cont) SetHazard(f func(float64) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Cont.SetHazard"), unurerr.Null)
	}
	c.hazard = f
	c.set |= setHazard
	return nil
}

// SetDomain sets the support to [a,b], a < b (either may be infinite).
// If a mode was previously set and now falls outside [a,b], it is moved
// to the nearest endpoint (spec.md §8, "Boundary behaviour": "Changing
// the domain to exclude the mode moves the stored mode to the new
// nearest endpoint").
func (c *Cont) SetDomain(a, b float64) error {
	if !(a < b) {
		return unurerr.Newf(errOp("distr", "Cont.SetDomain"), unurerr.DistrDomain, "left endpoint %v must be less than right endpoint %v", a, b)
	}
	c.a, c.b = a, b
	c.set |= setDomain
	if c.set&setMode != 0 {
		if c.mode < a {
			c.mode = a
		} else if c.mode > b {
			c.mode = b
		}
	}
	return nil
}

// SetMode records m as the distribution's mode. It is clamped into the
// current domain if one has been set.
func (c *Cont) SetMode(m float64) error {
	if c.set&setDomain != 0 {
		if m < c.a {
			m = c.a
		} else if m > c.b {
			m = c.b
		}
	}
	c.mode = m
	c.set |= setMode
	return nil
}

// SetPDFArea records the (possibly unnormalized) area under the PDF.
// A must be strictly positive.
func (c *Cont) SetPDFArea(area float64) error {
	if !(area > 0) {
		return unurerr.Newf(errOp("distr", "Cont.SetPDFArea"), unurerr.DistrDomain, "area %v must be positive", area)
	}
	c.area = area
	c.set |= setArea
	return nil
}

// SetBase records d as the distribution c was derived from (truncation,
// order statistics, ...), per spec.md §3.1's "optionally a pointer to a
// base distribution".
func (c *Cont) SetBase(d *Cont) { c.base = d }

// Base returns the base distribution, or nil if none was set.
func (c *Cont) Base() *Cont { return c.base }

// HasPDF reports whether a PDF is available. All other Has* methods
// follow the same shape, one per optional field in the set bitmask.
func (c *Cont) HasPDF() bool    { return c.set&setPDF != 0 }
func (c *Cont) HasDPDF() bool   { return c.set&setDPDF != 0 }
func (c *Cont) HasCDF() bool    { return c.set&setCDF != 0 }
func (c *Cont) HasHazard() bool { return c.set&setHazard != 0 }
func (c *Cont) HasDomain() bool { return c.set&setDomain != 0 }
func (c *Cont) HasMode() bool   { return c.set&setMode != 0 }
func (c *Cont) HasArea() bool   { return c.set&setArea != 0 }

// PDF evaluates the density at x, returning 0 outside the domain
// (spec.md §4.4).
func (c *Cont) PDF(x float64) float64 {
	if c.set&setDomain != 0 && (x < c.a || x > c.b) {
		return 0
	}
	return c.pdf(x)
}

// DPDF evaluates the derivative of the density at x, or returns
// DistrData if none was supplied.
func (c *Cont) DPDF(x float64) (float64, error) {
	if c.set&setDPDF == 0 {
		return 0, unurerr.New(errOp("distr", "Cont.DPDF"), unurerr.DistrData)
	}
	if c.set&setDomain != 0 && (x < c.a || x > c.b) {
		return 0, nil
	}
	return c.dpdf(x), nil
}

// CDF evaluates the cumulative distribution function at x, or returns
// DistrData if none was supplied.
func (c *Cont) CDF(x float64) (float64, error) {
	if c.set&setCDF == 0 {
		return 0, unurerr.New(errOp("distr", "Cont.CDF"), unurerr.DistrData)
	}
	return c.cdf(x), nil
}

// Hazard evaluates the hazard rate at x, or returns DistrData if none
// was supplied.
func (c *Cont) Hazard(x float64) (float64, error) {
	if c.set&setHazard == 0 {
		return 0, unurerr.New(errOp("distr", "Cont.Hazard"), unurerr.DistrData)
	}
	return c.hazard(x), nil
}

// Domain returns the support (a,b).
func (c *Cont) Domain() (float64, float64) { return c.a, c.b }

// Mode returns the mode, or DistrData if none was supplied and no
// updater exists (this object never installs an updater itself; that is
// the standard-distribution catalogue's job, per spec.md §9).
func (c *Cont) Mode() (float64, error) {
	if c.set&setMode == 0 {
		return 0, unurerr.New(errOp("distr", "Cont.Mode"), unurerr.DistrData)
	}
	return c.mode, nil
}

// Area returns the area under the PDF, or DistrData if none was
// supplied.
func (c *Cont) Area() (float64, error) {
	if c.set&setArea == 0 {
		return 0, unurerr.New(errOp("distr", "Cont.Area"), unurerr.DistrData)
	}
	return c.area, nil
}
