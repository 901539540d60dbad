// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// unuran-demo drives a handful of the generator methods over a few
// standard distributions and prints summary statistics, in the spirit
// of the teacher's main/main.go.
package main

import (
	"fmt"
	"math"

	"github.com/unuran-go/unuran/distr"
	"github.com/unuran-go/unuran/unuran/pinv"
	"github.com/unuran-go/unuran/unuran/rou"
	"github.com/unuran-go/unuran/unuran/stddist"
	"github.com/unuran-go/unuran/unuran/tdr"
	"github.com/unuran-go/unuran/unuran"
	"github.com/unuran-go/unuran/urng"
)

func main() {
	demoTDR()
	demoPINV()
	demoNROU()
}

func demoTDR() {
	normal, err := stddist.New(stddist.Normal, nil)
	if err != nil {
		fmt.Println("tdr: build normal:", err)
		return
	}
	p := tdr.Param{
		ParamBase: unuran.ParamBase{URNG: urng.NewDefault()},
		CPoints:   []float64{-1, 1},
	}
	g, err := tdr.New(tdr.GW, normal, p)
	if err != nil {
		fmt.Println("tdr: init:", err)
		return
	}
	mean, variance := sampleStats(g.Sample, 200000)
	fmt.Printf("TDR/GW  N(0,1): mean=%.4f variance=%.4f\n", mean, variance)
}

func demoPINV() {
	expo, err := stddist.New(stddist.Exponential, []float64{1})
	if err != nil {
		fmt.Println("pinv: build exponential:", err)
		return
	}
	p := pinv.Param{ParamBase: unuran.ParamBase{URNG: urng.NewDefault()}}
	g, err := pinv.New(expo, p)
	if err != nil {
		fmt.Println("pinv: init:", err)
		return
	}
	mean, variance := sampleStats(g.Sample, 200000)
	fmt.Printf("PINV    Exp(1): mean=%.4f variance=%.4f (want 1, 1)\n", mean, variance)
}

func demoNROU() {
	c := distr.NewCont("unnormalized-normal")
	c.SetPDF(func(x float64) float64 { return math.Exp(-x * x / 2) })
	c.SetMode(0)
	p := rou.Param{ParamBase: unuran.ParamBase{URNG: urng.NewDefault()}}
	g, err := rou.NewNROU(c, p)
	if err != nil {
		fmt.Println("nrou: init:", err)
		return
	}
	mean, variance := sampleStats(g.Sample1, 200000)
	fmt.Printf("NROU    N(0,1): mean=%.4f variance=%.4f\n", mean, variance)
}

func sampleStats(sample func() (float64, error), n int) (mean, variance float64) {
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x, err := sample()
		if err != nil {
			fmt.Println("sample:", err)
			return
		}
		sum += x
		sumSq += x * x
	}
	mean = sum / float64(n)
	variance = sumSq/float64(n) - mean*mean
	return mean, variance
}
