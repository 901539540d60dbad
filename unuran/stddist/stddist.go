// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stddist is the small standard-distribution catalogue spec.md
// §9's Design Notes call for: "Structure it as a registry keyed by an
// enum... mapping to a constructor that sets PDF, dPDF, CDF, mode/area
// updaters, and a parameter validator. Do not implement all ~30 at
// once; the three or four needed for the §8 scenarios suffice."
//
// The four built here — Normal, Exponential, Cauchy, Gamma — cover
// spec.md §8's concrete scenarios (TDR on N(0,1), PINV on Exp(1) and
// Cauchy(0,1)) plus Gamma as the one extra family exercising
// specfunc's incomplete gamma function outside of a direct spec
// scenario.
package stddist

import (
	"math"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/specfunc"
	"github.com/unuran-go/unuran/unurerr"
)

// Kind enumerates the registered standard distributions.
type Kind int

const (
	Normal Kind = iota
	Exponential
	Cauchy
	Gamma
)

// ctor builds a distr.Cont from a parameter vector, after validating
// it. The UNURAN original silently truncates extra optional parameters
// for some families (spec.md §9's open question, "whether this is
// intended or a bug is unclear... preserve the behaviour with a
// documented warning"); ctor does the same: it reads only the leading
// parameters a family needs and ignores any trailing ones.
type ctor struct {
	nParams int // minimum required parameter count
	build   func(params []float64) (*distr.Cont, error)
}

var registry = map[Kind]ctor{
	Normal:      {nParams: 0, build: buildNormal},
	Exponential: {nParams: 1, build: buildExponential},
	Cauchy:      {nParams: 0, build: buildCauchy},
	Gamma:       {nParams: 1, build: buildGamma},
}

// New builds the standard distribution named by kind with the given
// parameters, validating the parameter count against the family's
// requirement.
func New(kind Kind, params []float64) (*distr.Cont, error) {
	c, ok := registry[kind]
	if !ok {
		return nil, unurerr.New("stddist.New", unurerr.DistrUnknown)
	}
	if len(params) < c.nParams {
		return nil, unurerr.Newf("stddist.New", unurerr.DistrNParams, "need at least %d parameters, got %d", c.nParams, len(params))
	}
	return c.build(params)
}

// buildNormal is N(mean,std); params = [mean, std], both optional
// (default 0, 1).
func buildNormal(params []float64) (*distr.Cont, error) {
	mean, std := 0.0, 1.0
	if len(params) > 0 {
		mean = params[0]
	}
	if len(params) > 1 {
		std = params[1]
	}
	if !(std > 0) {
		return nil, unurerr.Newf("stddist.Normal", unurerr.DistrDomain, "std=%v must be positive", std)
	}
	d := distr.NewCont("normal")
	d.SetPDF(func(x float64) float64 {
		z := (x - mean) / std
		return math.Exp(-z*z/2) / (std * math.Sqrt(2*math.Pi))
	})
	d.SetDPDF(func(x float64) float64 {
		z := (x - mean) / std
		pdf := math.Exp(-z*z/2) / (std * math.Sqrt(2*math.Pi))
		return -z / std * pdf
	})
	d.SetCDF(func(x float64) float64 { return specfunc.NormalCDF((x - mean) / std) })
	d.SetMode(mean)
	d.SetPDFArea(1)
	return d, nil
}

// buildExponential is Exp(rate); params = [rate].
func buildExponential(params []float64) (*distr.Cont, error) {
	rate := params[0]
	if !(rate > 0) {
		return nil, unurerr.Newf("stddist.Exponential", unurerr.DistrDomain, "rate=%v must be positive", rate)
	}
	d := distr.NewCont("exponential")
	d.SetPDF(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return rate * math.Exp(-rate*x)
	})
	d.SetDPDF(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return -rate * rate * math.Exp(-rate*x)
	})
	d.SetCDF(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return 1 - math.Exp(-rate*x)
	})
	d.SetDomain(0, math.Inf(1))
	d.SetMode(0)
	d.SetPDFArea(1)
	return d, nil
}

// buildCauchy is Cauchy(location,scale); params = [location, scale],
// both optional (default 0, 1).
func buildCauchy(params []float64) (*distr.Cont, error) {
	loc, scale := 0.0, 1.0
	if len(params) > 0 {
		loc = params[0]
	}
	if len(params) > 1 {
		scale = params[1]
	}
	if !(scale > 0) {
		return nil, unurerr.Newf("stddist.Cauchy", unurerr.DistrDomain, "scale=%v must be positive", scale)
	}
	d := distr.NewCont("cauchy")
	d.SetPDF(func(x float64) float64 {
		z := (x - loc) / scale
		return 1 / (math.Pi * scale * (1 + z*z))
	})
	d.SetDPDF(func(x float64) float64 {
		z := (x - loc) / scale
		onePlusZ2 := 1 + z*z
		return -2 * z / (math.Pi * scale * scale * onePlusZ2 * onePlusZ2)
	})
	d.SetCDF(func(x float64) float64 {
		z := (x - loc) / scale
		return 0.5 + math.Atan(z)/math.Pi
	})
	d.SetMode(loc)
	d.SetPDFArea(1)
	return d, nil
}

// buildGamma is Gamma(shape,rate); params = [shape, rate]; rate
// defaults to 1.
func buildGamma(params []float64) (*distr.Cont, error) {
	shape := params[0]
	rate := 1.0
	if len(params) > 1 {
		rate = params[1]
	}
	if !(shape > 0) || !(rate > 0) {
		return nil, unurerr.Newf("stddist.Gamma", unurerr.DistrDomain, "shape=%v, rate=%v must both be positive", shape, rate)
	}
	logNorm := shape*math.Log(rate) - specfunc.LogGamma(shape)
	d := distr.NewCont("gamma")
	d.SetPDF(func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return math.Exp(logNorm + (shape-1)*math.Log(x) - rate*x)
	})
	d.SetDPDF(func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		pdf := math.Exp(logNorm + (shape-1)*math.Log(x) - rate*x)
		return pdf * ((shape-1)/x - rate)
	})
	d.SetCDF(func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return specfunc.IncGamma(shape, rate*x)
	})
	d.SetDomain(0, math.Inf(1))
	if shape >= 1 {
		d.SetMode((shape - 1) / rate)
	} else {
		d.SetMode(0)
	}
	d.SetPDFArea(1)
	return d, nil
}
