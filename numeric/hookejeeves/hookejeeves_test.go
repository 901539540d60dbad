// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hookejeeves

import (
	"math"
	"testing"
)

func TestMinimizeQuadratic(t *testing.T) {
	f := func(x []float64) float64 {
		return (x[0]-3)*(x[0]-3) + (x[1]+1)*(x[1]+1)
	}
	res := Minimize(f, []float64{0, 0}, DefaultSettings(2))
	if math.Abs(res.X[0]-3) > 1e-3 || math.Abs(res.X[1]+1) > 1e-3 {
		t.Errorf("Minimize found x=%v, want near (3,-1)", res.X)
	}
	if !res.Converged {
		t.Errorf("expected convergence on a smooth quadratic")
	}
}

func TestMinimizeWithRestartConverges(t *testing.T) {
	f := func(x []float64) float64 { return x[0] * x[0] }
	res, ok := MinimizeWithRestart(f, []float64{5}, DefaultSettings(1))
	if !ok {
		t.Errorf("expected convergence")
	}
	if math.Abs(res.X[0]) > 1e-2 {
		t.Errorf("Minimize found x=%v, want near 0", res.X)
	}
}
