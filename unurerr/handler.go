// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unurerr

// Handler is called by Recent.Record for every error recorded in that
// Recent slot; errors that are only returned to the caller do not reach
// it. It is the injectable replacement for the C library's default
// error handler (spec.md §7, "a replacement handler may upgrade to
// abort or convert to exceptions").
type Handler func(*Error)

// Recent is a small, explicitly-owned "last error" slot. Unlike the C
// library's process-global unur_errno (spec.md §5 flags this as a known,
// non-thread-safe limitation we do not repeat), a Recent value is meant
// to be held by whatever object wants C-style polling — typically one
// per Generator — so that two generators on two goroutines never race
// on the same slot.
type Recent struct {
	last    *Error
	handler Handler
}

// SetHandler installs h as the callback invoked on every recorded
// error. A nil handler disables the callback.
func (r *Recent) SetHandler(h Handler) { r.handler = h }

// Record stores err as the most recent error and invokes the installed
// handler, if any. It returns err unchanged, so callers can write
//
//	return r.Record(unurerr.New(...))
func (r *Recent) Record(err *Error) *Error {
	r.last = err
	if r.handler != nil {
		r.handler(err)
	}
	return err
}

// Last returns the most recently recorded error, or nil if none has
// been recorded (or Reset was called since).
func (r *Recent) Last() *Error { return r.last }

// Reset clears the last-recorded error.
func (r *Recent) Reset() { r.last = nil }
