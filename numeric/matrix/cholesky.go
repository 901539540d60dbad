// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix provides the small dense-matrix and Cholesky-factor
// support the CVEC distribution object needs for its covariance matrix,
// its Cholesky factor, and its inverse (spec.md §3.1). MROU does not
// use this package; it takes its `center` from distr.CVec.Center.
//
// The factorization algorithm follows the shape of the teacher's
// mat64.Cholesky (mat64/cholesky.go: Factorize/SolveVec/LogDet), but is
// reimplemented directly over a row-major []float64 instead of riding
// on blas64/lapack64. UNURAN's distribution objects carry covariance
// matrices sized to the method's own dimension d (MROU's d, not a
// general numerical-linear-algebra workload), so pulling in a full
// BLAS/LAPACK backing for an n×n matrix with n rarely above a handful
// is not worth the dependency weight; this is the one piece of
// SPEC_FULL.md's DOMAIN STACK built on the standard library instead of
// an adapted teacher package (see DESIGN.md).
package matrix

import (
	"errors"
	"math"
)

// ErrNotPositiveDefinite is returned by Factorize when the input matrix
// is not symmetric positive definite.
var ErrNotPositiveDefinite = errors.New("matrix: not positive definite")

// Dense is a small row-major dense matrix.
type Dense struct {
	N    int
	Data []float64 // row-major, length N*N
}

// NewDense returns an N×N matrix initialized from data (row-major,
// copied), or zeroed if data is nil.
func NewDense(n int, data []float64) *Dense {
	d := &Dense{N: n, Data: make([]float64, n*n)}
	if data != nil {
		copy(d.Data, data)
	}
	return d
}

func (d *Dense) at(i, j int) float64     { return d.Data[i*d.N+j] }
func (d *Dense) set(i, j int, v float64) { d.Data[i*d.N+j] = v }

// Cholesky is the lower-triangular factor L of a symmetric positive
// definite matrix A = L L^T.
type Cholesky struct {
	n   int
	l   []float64 // lower triangular, row-major, N*N (upper part zero)
	ok  bool
	det float64 // log|det(A)| = 2*sum(log(L_ii))
}

// Factorize computes the Cholesky factorization of sym (an N×N
// symmetric matrix; only the lower triangle of sym.Data is read). It
// reports false if sym is not positive definite.
func (c *Cholesky) Factorize(sym *Dense) bool {
	n := sym.N
	c.n = n
	c.l = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := sym.at(i, j)
			for k := 0; k < j; k++ {
				sum -= c.l[i*n+k] * c.l[j*n+k]
			}
			if i == j {
				if sum <= 0 {
					c.ok = false
					return false
				}
				c.l[i*n+j] = math.Sqrt(sum)
			} else {
				c.l[i*n+j] = sum / c.l[j*n+j]
			}
		}
	}
	c.ok = true
	var logDet float64
	for i := 0; i < n; i++ {
		logDet += math.Log(c.l[i*n+i])
	}
	c.det = 2 * logDet
	return true
}

// LogDet returns log(det(A)) for the factorized matrix A.
func (c *Cholesky) LogDet() float64 { return c.det }

// At returns L[i][j].
func (c *Cholesky) At(i, j int) float64 {
	if j > i {
		return 0
	}
	return c.l[i*c.n+j]
}

// SolveVec solves A x = b given the Cholesky factor of A, via forward
// and backward substitution against L and L^T.
func (c *Cholesky) SolveVec(b []float64) []float64 {
	n := c.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= c.l[i*n+k] * y[k]
		}
		y[i] = sum / c.l[i*n+i]
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= c.l[k*n+i] * x[k]
		}
		x[i] = sum / c.l[i*n+i]
	}
	return x
}

// Mahalanobis returns (x-mean)^T A^-1 (x-mean) given the Cholesky factor
// of A, the quadratic form the multivariate normal density needs.
func (c *Cholesky) Mahalanobis(x, mean []float64) float64 {
	n := c.n
	d := make([]float64, n)
	for i := range d {
		d[i] = x[i] - mean[i]
	}
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := d[i]
		for k := 0; k < i; k++ {
			sum -= c.l[i*n+k] * z[k]
		}
		z[i] = sum / c.l[i*n+i]
	}
	var q float64
	for _, v := range z {
		q += v * v
	}
	return q
}

// Inverse returns A^-1 as a dense matrix, computed column-by-column via
// SolveVec against unit basis vectors.
func (c *Cholesky) Inverse() *Dense {
	n := c.n
	inv := NewDense(n, nil)
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		col := c.SolveVec(e)
		for i := 0; i < n; i++ {
			inv.set(i, j, col[i])
		}
	}
	return inv
}
