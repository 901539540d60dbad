// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran

import "github.com/unuran-go/unuran/unurerr"

// State is a generator's position in the lifecycle of spec.md §4.5:
//
//	Configuring -> Initialized -> Stale -> Destroyed
//	                   ^              |
//	                   +--- Reinit ---+
//
// A generator starts Configuring while its Parameter is being built,
// moves to Initialized once setup succeeds, moves to Stale when a
// change_* call mutates data the setup computed from (so the next
// Sample must reinit first), and ends at Destroyed once freed, after
// which every method on it must fail rather than touch stale pointers.
type State int

const (
	// Configuring is the zero value: parameters are still being set,
	// no setup has run, Sample is not callable yet.
	Configuring State = iota
	// Initialized means setup ran successfully; Sample is callable.
	Initialized
	// Stale means a change_* call invalidated setup-derived data;
	// Sample must not be called until Reinit succeeds.
	Stale
	// Destroyed means Free was called; every operation must fail.
	Destroyed
)

// String returns a lowercase name for s, used in error messages and
// log events.
func (s State) String() string {
	switch s {
	case Configuring:
		return "configuring"
	case Initialized:
		return "initialized"
	case Stale:
		return "stale"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Lifecycle is embedded by every method's Generator type to implement
// the state machine uniformly. It is not exported as a generic
// Generator interface (see the package doc) — just a small reusable
// component each concrete generator wires its own transitions through.
type Lifecycle struct {
	state State
}

// State returns the current state.
func (l *Lifecycle) State() State { return l.state }

// MarkInitialized transitions Configuring/Stale -> Initialized. It is
// called by a method's setup routine on success.
func (l *Lifecycle) MarkInitialized() { l.state = Initialized }

// MarkStale transitions Initialized -> Stale. It is called by a
// method's change_* routines after mutating setup-derived data.
func (l *Lifecycle) MarkStale() { l.state = Stale }

// MarkDestroyed transitions any state -> Destroyed.
func (l *Lifecycle) MarkDestroyed() { l.state = Destroyed }

// RequireInitialized returns GenData if the generator was destroyed and
// GenCondition if it is otherwise not in the Initialized state — the
// check every Sample method starts with.
func (l *Lifecycle) RequireInitialized(op string) error {
	switch l.state {
	case Initialized:
		return nil
	case Destroyed:
		return unurerr.New(op, unurerr.GenData)
	default:
		return unurerr.Newf(op, unurerr.GenCondition, "generator is %s, not initialized", l.state)
	}
}

// RequireNotDestroyed returns GenData if the generator was freed — the
// check every change_*/reinit method starts with.
func (l *Lifecycle) RequireNotDestroyed(op string) error {
	if l.state == Destroyed {
		return unurerr.New(op, unurerr.GenData)
	}
	return nil
}
