// Copyright ©2024 The UNURAN-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unurerr

import "testing"

func TestNewSeverity(t *testing.T) {
	err := New("tdr.Init", DistrRequired)
	if err.Sev != Fatal {
		t.Errorf("DistrRequired severity = %v, want Fatal", err.Sev)
	}
	warn := New("tdr.Sample", GenCondition)
	if warn.Sev != Warning {
		t.Errorf("GenCondition severity = %v, want Warning", warn.Sev)
	}
	if !IsWarning(warn) {
		t.Errorf("IsWarning(warn) = false, want true")
	}
	if IsWarning(err) {
		t.Errorf("IsWarning(err) = true, want false")
	}
}

func TestRecentRecordAndHandler(t *testing.T) {
	var r Recent
	var seen *Error
	r.SetHandler(func(e *Error) { seen = e })

	err := r.Record(Newf("pinv.setup", GenData, "interval count exceeded %d", 10000))
	if r.Last() != err {
		t.Errorf("Last() = %v, want %v", r.Last(), err)
	}
	if seen != err {
		t.Errorf("handler saw %v, want %v", seen, err)
	}
	r.Reset()
	if r.Last() != nil {
		t.Errorf("after Reset, Last() = %v, want nil", r.Last())
	}
}
