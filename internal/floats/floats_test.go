// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floats

import "testing"

func TestSum(t *testing.T) {
	if got := Sum([]float64{1, 2, 3}); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
}

func TestDot(t *testing.T) {
	if got := Dot([]float64{1, 2, 3}, []float64{4, 5, 6}); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestAddScaledTo(t *testing.T) {
	dst := make([]float64, 3)
	y := []float64{1, 1, 1}
	s := []float64{2, 4, 6}
	AddScaledTo(dst, y, 0.5, s)
	want := []float64{2, 3, 4}
	for i, v := range want {
		if dst[i] != v {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}

func TestScale(t *testing.T) {
	dst := []float64{1, 2, 3}
	Scale(2, dst)
	want := []float64{2, 4, 6}
	for i, v := range want {
		if dst[i] != v {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}
