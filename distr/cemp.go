// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "github.com/unuran-go/unuran/unurerr"

// Cemp is an empirical sample of real scalars (spec.md §3.1 CEMP). No
// method in unuran/{tdr,pinv,rou} consumes it directly — it exists so
// the data model is complete and so a future empirical-density method
// (e.g. a kernel-density front end) has a place to plug in, per
// spec.md §1's framing of the method layer as "generic methods that
// each accept any distribution satisfying a set of structural
// requirements".
type Cemp struct {
	name   string
	sample []float64
}

// NewCemp returns an empirical distribution object over sample.
func NewCemp(name string, sample []float64) (*Cemp, error) {
	if len(sample) == 0 {
		return nil, unurerr.New(errOp("distr", "NewCemp"), unurerr.DistrNParams)
	}
	return &Cemp{name: name, sample: append([]float64(nil), sample...)}, nil
}

// Sample returns the raw observations.
func (c *Cemp) Sample() []float64 { return c.sample }

// CVemp is the vector-valued analogue of Cemp (spec.md §3.1 CVEMP): a
// raw sample of real vectors, each of the same dimension.
type CVemp struct {
	name   string
	dim    int
	sample [][]float64
}

// NewCVemp returns an empirical distribution object over sample, a
// slice of equal-length vectors.
func NewCVemp(name string, sample [][]float64) (*CVemp, error) {
	if len(sample) == 0 {
		return nil, unurerr.New(errOp("distr", "NewCVemp"), unurerr.DistrNParams)
	}
	dim := len(sample[0])
	for _, v := range sample {
		if len(v) != dim {
			return nil, unurerr.New(errOp("distr", "NewCVemp"), unurerr.DistrNParams)
		}
	}
	out := make([][]float64, len(sample))
	for i, v := range sample {
		out[i] = append([]float64(nil), v...)
	}
	return &CVemp{name: name, dim: dim, sample: out}, nil
}

// Dim returns the dimension of each vector in the sample.
func (c *CVemp) Dim() int { return c.dim }

// Sample returns the raw observations.
func (c *CVemp) Sample() [][]float64 { return c.sample }
