// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"github.com/unuran-go/unuran/numeric/matrix"
	"github.com/unuran-go/unuran/unurerr"
)

type cvecSet uint32

const (
	setCVecPDF cvecSet = 1 << iota
	setGrad
	setMean
	setCovar
	setRankCorr
	setCVecMode
	setVolume
)

// CVec is a multivariate continuous distribution object (spec.md §3.1
// CVEC): the density of a vector, optionally its gradient, a mean
// vector, a covariance matrix with its Cholesky factor and inverse
// precomputed on set, an optional rank-correlation matrix, an optional
// mode vector, and an optional volume under the PDF.
//
// MROU (spec.md §4.3) consumes Dim, PDF, and Mean as the `center` of
// the ratio-of-uniforms transform when no mode is given.
type CVec struct {
	name string
	set  cvecSet
	dim  int

	pdf  func([]float64) float64
	grad func([]float64) []float64

	mean []float64

	covar    *matrix.Dense
	chol     matrix.Cholesky
	cholOK   bool
	covInv   *matrix.Dense
	rankCorr *matrix.Dense

	mode   []float64
	volume float64
}

// NewCVec returns an empty multivariate continuous distribution object
// of dimension dim (dim must be >= 1).
func NewCVec(name string, dim int) *CVec {
	return &CVec{name: name, dim: dim}
}

// Dim returns the distribution's dimension.
func (c *CVec) Dim() int { return c.dim }

// SetPDF installs the density function, which must accept a slice of
// length Dim().
func (c *CVec) SetPDF(f func([]float64) float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "CVec.SetPDF"), unurerr.Null)
	}
	c.pdf = f
	c.set |= setCVecPDF
	return nil
}

// SetGradient installs the gradient of the density.
func (c *CVec) SetGradient(f func([]float64) []float64) error {
	if f == nil {
		return unurerr.New(errOp("distr", "CVec.SetGradient"), unurerr.Null)
	}
	c.grad = f
	c.set |= setGrad
	return nil
}

// SetMean installs the mean vector, which must have length Dim().
func (c *CVec) SetMean(mean []float64) error {
	if len(mean) != c.dim {
		return unurerr.Newf(errOp("distr", "CVec.SetMean"), unurerr.DistrNParams, "mean has length %d, want %d", len(mean), c.dim)
	}
	c.mean = append([]float64(nil), mean...)
	c.set |= setMean
	return nil
}

// SetCovar installs the covariance matrix, a dim×dim symmetric positive
// definite matrix given in row-major order. Its Cholesky factor and
// inverse are computed eagerly, matching spec.md §3.1's CVEC data model
// ("covariance matrix plus its Cholesky factor and inverse"). Returns
// DistrDomain if the matrix is not positive definite.
func (c *CVec) SetCovar(rowMajor []float64) error {
	if len(rowMajor) != c.dim*c.dim {
		return unurerr.Newf(errOp("distr", "CVec.SetCovar"), unurerr.DistrNParams, "covariance has %d entries, want %d", len(rowMajor), c.dim*c.dim)
	}
	m := matrix.NewDense(c.dim, rowMajor)
	var chol matrix.Cholesky
	if !chol.Factorize(m) {
		return unurerr.New(errOp("distr", "CVec.SetCovar"), unurerr.DistrDomain)
	}
	c.covar = m
	c.chol = chol
	c.cholOK = true
	c.covInv = chol.Inverse()
	c.set |= setCovar
	return nil
}

// SetRankCorr installs a rank-correlation matrix (row-major, dim×dim).
func (c *CVec) SetRankCorr(rowMajor []float64) error {
	if len(rowMajor) != c.dim*c.dim {
		return unurerr.Newf(errOp("distr", "CVec.SetRankCorr"), unurerr.DistrNParams, "rank-correlation matrix has %d entries, want %d", len(rowMajor), c.dim*c.dim)
	}
	c.rankCorr = matrix.NewDense(c.dim, rowMajor)
	c.set |= setRankCorr
	return nil
}

// SetMode installs the mode vector.
func (c *CVec) SetMode(mode []float64) error {
	if len(mode) != c.dim {
		return unurerr.Newf(errOp("distr", "CVec.SetMode"), unurerr.DistrNParams, "mode has length %d, want %d", len(mode), c.dim)
	}
	c.mode = append([]float64(nil), mode...)
	c.set |= setCVecMode
	return nil
}

// SetVolume installs the (possibly unnormalized) volume under the PDF.
func (c *CVec) SetVolume(v float64) error {
	if !(v > 0) {
		return unurerr.Newf(errOp("distr", "CVec.SetVolume"), unurerr.DistrDomain, "volume %v must be positive", v)
	}
	c.volume = v
	c.set |= setVolume
	return nil
}

// PDF evaluates the density at x.
func (c *CVec) PDF(x []float64) float64 { return c.pdf(x) }

// Gradient evaluates the gradient of the density at x, or returns
// DistrData if none was supplied.
func (c *CVec) Gradient(x []float64) ([]float64, error) {
	if c.set&setGrad == 0 {
		return nil, unurerr.New(errOp("distr", "CVec.Gradient"), unurerr.DistrData)
	}
	return c.grad(x), nil
}

// Mean returns the mean vector, or DistrData if none was supplied.
func (c *CVec) Mean() ([]float64, error) {
	if c.set&setMean == 0 {
		return nil, unurerr.New(errOp("distr", "CVec.Mean"), unurerr.DistrData)
	}
	return c.mean, nil
}

// Covar returns the covariance matrix, its Cholesky factor, and its
// inverse, or DistrData if none was supplied.
func (c *CVec) Covar() (covar *matrix.Dense, chol *matrix.Cholesky, inv *matrix.Dense, err error) {
	if c.set&setCovar == 0 {
		return nil, nil, nil, unurerr.New(errOp("distr", "CVec.Covar"), unurerr.DistrData)
	}
	return c.covar, &c.chol, c.covInv, nil
}

// Mode returns the mode vector, or DistrData if none was supplied.
func (c *CVec) Mode() ([]float64, error) {
	if c.set&setCVecMode == 0 {
		return nil, unurerr.New(errOp("distr", "CVec.Mode"), unurerr.DistrData)
	}
	return c.mode, nil
}

// Volume returns the volume under the PDF, or DistrData if none was
// supplied.
func (c *CVec) Volume() (float64, error) {
	if c.set&setVolume == 0 {
		return 0, unurerr.New(errOp("distr", "CVec.Volume"), unurerr.DistrData)
	}
	return c.volume, nil
}

// HasMode reports whether a mode vector was supplied.
func (c *CVec) HasMode() bool { return c.set&setCVecMode != 0 }

// HasMean reports whether a mean vector was supplied.
func (c *CVec) HasMean() bool { return c.set&setMean != 0 }

// Center returns the mode if known, else the mean, else a zero vector;
// this is the `center` shift MROU's ratio-of-uniforms transform uses
// (spec.md §4.3) when neither is required to be set explicitly.
func (c *CVec) Center() []float64 {
	if c.HasMode() {
		v, _ := c.Mode()
		return v
	}
	if c.HasMean() {
		v, _ := c.Mean()
		return v
	}
	return make([]float64, c.dim)
}
