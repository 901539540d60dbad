// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unuran holds the L2 scaffolding shared by every method
// package (unuran/tdr, unuran/pinv, unuran/rou): the parameter-object
// base embedded by each method's own Parameter type, and the generator
// state machine of spec.md §4.5.
//
// Per the Design Notes in spec.md §9 ("Dispatch... Do not attempt a
// single generator trait with dynamic dispatch across methods — the
// per-method data differs too much and allocation discipline differs
// too"), this package does not define one polymorphic Generator
// interface that tdr/pinv/rou all implement. Each method package
// defines its own concrete Generator type with a Sample method whose
// signature matches what that method actually produces (a scalar for
// TDR/PINV/NROU, a vector for MROU). What is shared is the *shape*
// every one of them follows: ParamBase for setup-time knobs common to
// every method, and State for the lifecycle of spec.md §4.5.
package unuran

import (
	"github.com/unuran-go/unuran/unulog"
	"github.com/unuran-go/unuran/urng"
)

// ParamBase is the common header every method's Parameter type embeds:
// the primary and optional auxiliary URNG handles spec.md §3.2
// describes ("Carries a URNG handle and an auxiliary URNG handle -
// some methods need two independent streams").
//
// ParamBase mirrors the builder idiom of the teacher's optimize
// package Settings structs (functional defaults filled in by each
// method's own Init), generalized to carry the URNG plumbing that is
// specific to this domain rather than to numerical optimization.
type ParamBase struct {
	URNG    urng.Stream // primary stream; required
	AuxURNG urng.Stream // optional; Aux() falls back to urng.NewDefaultAux(); tdr, pinv and rou do not read it

	// Verify enables TDR's post-acceptance hat/squeeze check of spec.md
	// §4.1's "Verify mode", at the cost of an extra PDF evaluation per
	// sample. The pinv and rou generators do not read it.
	Verify bool

	// GuideTableFactor scales the length of a method's guide table
	// relative to its interval count (spec.md §3.4); 1 gives
	// expected-O(1) lookup with minimal memory, larger values trade
	// memory for fewer linear-scan steps.
	GuideTableFactor float64

	// Logger receives structural setup/reinit events (spec.md §6's L4
	// diagnostic stream). Defaults to unulog.Discard when nil.
	Logger unulog.Recorder
}

// Log returns p.Logger, defaulting to unulog.Discard if none was set.
func (p *ParamBase) Log() unulog.Recorder {
	if p.Logger != nil {
		return p.Logger
	}
	return unulog.Discard
}

// Aux returns p.AuxURNG, defaulting to a fresh process-seeded auxiliary
// stream if none was set explicitly (spec.md §6: "the default aux URNG
// is a process-wide auxiliary default distinct from the primary one").
func (p *ParamBase) Aux() urng.Stream {
	if p.AuxURNG != nil {
		return p.AuxURNG
	}
	return urng.NewDefaultAux()
}

// GuideFactor returns p.GuideTableFactor, defaulting to 1.
func (p *ParamBase) GuideFactor() float64 {
	if p.GuideTableFactor <= 0 {
		return 1
	}
	return p.GuideTableFactor
}
