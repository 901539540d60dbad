// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"
)

func TestLobatto5Polynomial(t *testing.T) {
	// Gauss-Lobatto with 5 nodes is exact for polynomials up to degree 7.
	f := func(x float64) float64 { return x*x*x*x*x*x + 2*x*x - 1 }
	got := Lobatto5(f, -1, 1)
	want := 2.0/7.0 + 4.0/3.0 - 2.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Lobatto5 = %v, want %v", got, want)
	}
}

func TestIntegrateStandardNormalArea(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x * x / 2) / math.Sqrt(2*math.Pi) }
	total, xs, cum := Integrate(f, -8, 8, 0.5, 1e-10, 40)
	if math.Abs(total-1) > 1e-6 {
		t.Errorf("Integrate total = %v, want ~1", total)
	}
	if len(xs) != len(cum) {
		t.Fatalf("xs and cum length mismatch: %d vs %d", len(xs), len(cum))
	}
	if cum[len(cum)-1] != total {
		t.Errorf("last cumulative value = %v, want %v", cum[len(cum)-1], total)
	}
}
