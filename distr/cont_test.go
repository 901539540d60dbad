// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"
	"testing"
)

func TestContSetDomainInvalid(t *testing.T) {
	c := NewCont("test")
	if err := c.SetDomain(1, 1); err == nil {
		t.Error("expected error for a==b domain")
	}
	if err := c.SetDomain(2, 1); err == nil {
		t.Error("expected error for a>b domain")
	}
}

func TestContPDFOutsideDomainIsZero(t *testing.T) {
	c := NewCont("unit")
	c.SetPDF(func(x float64) float64 { return 1 })
	c.SetDomain(0, 1)
	if got := c.PDF(-1); got != 0 {
		t.Errorf("PDF(-1) = %v, want 0 (outside domain)", got)
	}
	if got := c.PDF(0.5); got != 1 {
		t.Errorf("PDF(0.5) = %v, want 1", got)
	}
}

func TestContModeClampedByDomainChange(t *testing.T) {
	c := NewCont("test")
	c.SetPDF(func(x float64) float64 { return 1 })
	c.SetMode(5)
	if err := c.SetDomain(0, 2); err != nil {
		t.Fatalf("SetDomain: %v", err)
	}
	mode, err := c.Mode()
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if mode != 2 {
		t.Errorf("Mode() = %v, want 2 (clamped to new right endpoint)", mode)
	}
}

func TestContMissingDataReturnsError(t *testing.T) {
	c := NewCont("test")
	if _, err := c.CDF(0); err == nil {
		t.Error("expected error for missing CDF")
	}
	if _, err := c.DPDF(0); err == nil {
		t.Error("expected error for missing dPDF")
	}
	if _, err := c.Area(); err == nil {
		t.Error("expected error for missing area")
	}
}

func TestContSetPDFAreaRejectsNonPositive(t *testing.T) {
	c := NewCont("test")
	if err := c.SetPDFArea(0); err == nil {
		t.Error("expected error for zero area")
	}
	if err := c.SetPDFArea(-1); err == nil {
		t.Error("expected error for negative area")
	}
	if err := c.SetPDFArea(1); err != nil {
		t.Errorf("SetPDFArea(1): %v", err)
	}
}

func TestContCloneIsIndependent(t *testing.T) {
	c := NewCont("test")
	c.SetPDF(func(x float64) float64 { return math.Exp(-x) })
	c.SetDomain(0, math.Inf(1))
	clone := c.Clone()
	clone.SetDomain(0, 1)
	a, b := c.Domain()
	if a != 0 || !math.IsInf(b, 1) {
		t.Errorf("original domain mutated by clone: got (%v,%v)", a, b)
	}
}
