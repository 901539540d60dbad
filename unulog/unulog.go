// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unulog is the L4 diagnostic stream of spec.md §2 and §6: an
// append-only log of structural setup events, kept intentionally coarse
// per the Open Questions of spec.md §9 ("log only the structural
// events ... and omit byte-level traces unless a consumer explicitly
// asks for them"). Byte-level UNUR_DEBUG_* traces are not implemented.
package unulog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Event is one structural log entry.
type Event struct {
	Time   time.Time
	Method string // e.g. "tdr", "pinv", "rou"
	Stage  string // e.g. "setup", "split", "reinit"
	Detail string
}

// Recorder receives structural events. The default implementation
// writes one line per event to an io.Writer; tests and callers that
// want programmatic access can supply their own.
type Recorder interface {
	Record(Event)
}

// Writer is a Recorder that formats events as single lines written to
// an underlying io.Writer, mirroring the one-line-per-diagnostic shape
// of the C library's default error handler (spec.md §7).
type Writer struct {
	W io.Writer
}

// NewWriter returns a Writer logging to w. If w is nil, os.Stderr is
// used.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = os.Stderr
	}
	return &Writer{W: w}
}

// Record implements Recorder.
func (lw *Writer) Record(e Event) {
	fmt.Fprintf(lw.W, "%s [%s] %s: %s\n", e.Time.Format(time.RFC3339), e.Method, e.Stage, e.Detail)
}

// Discard is a Recorder that drops every event; it is the default when
// logging is disabled (spec.md §6 compile-time toggle "enable/disable
// logging").
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Event) {}
