// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "github.com/unuran-go/unuran/unurerr"

type discrSet uint32

const (
	setPMF discrSet = 1 << iota
	setProbVec
	setDiscrCDF
	setDiscrDomain
	setDiscrMode
	setSum
)

// Discr is a univariate discrete distribution object (spec.md §3.1
// DISCR): a PMF and/or a finite probability vector anchored at a
// starting index, an optional CDF, an integer interval, an optional
// mode, and an optional sum over the PMF. This module does not build a
// discrete sampling method (TDR/PINV/NROU/MROU are all continuous, per
// spec.md §1's chosen representative methods) but the type is specified
// in full so that distr satisfies the complete data model of spec.md
// §3.1.
type Discr struct {
	name string
	set  discrSet

	pmf func(int) float64
	cdf func(int) float64

	probVec []float64
	start   int

	lo, hi int
	mode   int
	sum    float64
}

// NewDiscr returns an empty discrete distribution object with domain
// covering every int.
func NewDiscr(name string) *Discr {
	return &Discr{name: name, lo: minInt, hi: maxInt}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// SetPMF installs the probability mass function.
func (d *Discr) SetPMF(f func(int) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Discr.SetPMF"), unurerr.Null)
	}
	d.pmf = f
	d.set |= setPMF
	return nil
}

// SetProbVector installs an explicit, finite probability vector
// anchored at index start: probVec[i] is the probability of start+i.
func (d *Discr) SetProbVector(probVec []float64, start int) error {
	if len(probVec) == 0 {
		return unurerr.New(errOp("distr", "Discr.SetProbVector"), unurerr.DistrNParams)
	}
	d.probVec = append([]float64(nil), probVec...)
	d.start = start
	d.set |= setProbVec
	return nil
}

// SetCDF installs the cumulative distribution function.
func (d *Discr) SetCDF(f func(int) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "Discr.SetCDF"), unurerr.Null)
	}
	d.cdf = f
	d.set |= setDiscrCDF
	return nil
}

// SetDomain sets the integer support [lo,hi], lo <= hi.
func (d *Discr) SetDomain(lo, hi int) error {
	if lo > hi {
		return unurerr.Newf(errOp("distr", "Discr.SetDomain"), unurerr.DistrDomain, "lo %d must not exceed hi %d", lo, hi)
	}
	d.lo, d.hi = lo, hi
	d.set |= setDiscrDomain
	if d.set&setDiscrMode != 0 {
		if d.mode < lo {
			d.mode = lo
		} else if d.mode > hi {
			d.mode = hi
		}
	}
	return nil
}

// SetMode records the mode, clamped into the domain if one is set.
func (d *Discr) SetMode(m int) error {
	if d.set&setDiscrDomain != 0 {
		if m < d.lo {
			m = d.lo
		} else if m > d.hi {
			m = d.hi
		}
	}
	d.mode = m
	d.set |= setDiscrMode
	return nil
}

// SetSum records the sum over the PMF (typically 1 for a normalized
// distribution, but spec.md §3.1 allows an unnormalized scale).
func (d *Discr) SetSum(sum float64) error {
	if !(sum > 0) {
		return unurerr.Newf(errOp("distr", "Discr.SetSum"), unurerr.DistrDomain, "sum %v must be positive", sum)
	}
	d.sum = sum
	d.set |= setSum
	return nil
}

// PMF evaluates the probability mass at k, preferring an explicit PMF
// function and falling back to the probability vector if that is all
// that was supplied.
func (d *Discr) PMF(k int) float64 {
	if d.set&setDiscrDomain != 0 && (k < d.lo || k > d.hi) {
		return 0
	}
	if d.set&setPMF != 0 {
		return d.pmf(k)
	}
	if d.set&setProbVec != 0 {
		i := k - d.start
		if i < 0 || i >= len(d.probVec) {
			return 0
		}
		return d.probVec[i]
	}
	return 0
}

// CDF evaluates the CDF at k, or returns DistrData if none was
// supplied.
func (d *Discr) CDF(k int) (float64, error) {
	if d.set&setDiscrCDF == 0 {
		return 0, unurerr.New(errOp("distr", "Discr.CDF"), unurerr.DistrData)
	}
	return d.cdf(k), nil
}

// Domain returns the integer support [lo,hi].
func (d *Discr) Domain() (int, int) { return d.lo, d.hi }

// Mode returns the mode, or DistrData if none was supplied.
func (d *Discr) Mode() (int, error) {
	if d.set&setDiscrMode == 0 {
		return 0, unurerr.New(errOp("distr", "Discr.Mode"), unurerr.DistrData)
	}
	return d.mode, nil
}

// Sum returns the sum over the PMF, or DistrData if none was supplied.
func (d *Discr) Sum() (float64, error) {
	if d.set&setSum == 0 {
		return 0, unurerr.New(errOp("distr", "Discr.Sum"), unurerr.DistrData)
	}
	return d.sum, nil
}
