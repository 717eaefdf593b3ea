/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package flexerr

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"dirpx.dev/flexerr/tracer"
)

type outerDetail interface {
	fmt.Stringer
	isOuterDetail()
}

type innerDetail interface {
	fmt.Stringer
	isInnerDetail()
}

type barRecord struct {
	Code   uint32
	Source error
}

func (barRecord) isInnerDetail()       {}
func (barRecord) ErrorCode() string    { return "unavailable" }
func (barRecord) ErrorFamily() string  { return "FooError" }
func (barRecord) ErrorVariant() string { return "Bar" }
func (barRecord) ErrorReason() string  { return "foo_error.bar" }
func (e barRecord) String() string     { return fmt.Sprintf("Bar error with code %d", e.Code) }

type bazRecord struct{ Extra string }

func (bazRecord) isInnerDetail()   {}
func (e bazRecord) String() string { return "Baz: " + e.Extra }

type fooRecord struct {
	Action string
	Source innerDetail
}

func (fooRecord) isOuterDetail()   {}
func (e fooRecord) String() string { return "error arose from Foo during " + e.Action }

var strs = tracer.Strings{}

func newBar(code uint32, source error) Report[innerDetail, tracer.History] {
	return TraceFrom[innerDetail, error, tracer.History](strs, DisplayError[tracer.History](source),
		func(d error) innerDetail { return barRecord{Code: code, Source: d} })
}

func newFoo(action string, source Report[innerDetail, tracer.History]) Report[outerDetail, tracer.History] {
	return TraceFrom[outerDetail, innerDetail, tracer.History](strs, source,
		func(d innerDetail) outerDetail { return fooRecord{Action: action, Source: d} })
}

func TestNew_SeedsOneMessage(t *testing.T) {
	r := New[innerDetail, tracer.History](strs, bazRecord{Extra: "x"})
	if got := r.TraceMessages(); !reflect.DeepEqual(got, []string{"Baz: x"}) {
		t.Fatalf("trace = %v", got)
	}
	if r.Error() != "Baz: x" {
		t.Fatalf("Error() = %q", r.Error())
	}
}

func TestTraceFrom_OpaqueCauseSeeds(t *testing.T) {
	disk := errors.New("disk full")
	r := newBar(7, disk)

	if got := r.TraceMessages(); !reflect.DeepEqual(got, []string{"Bar error with code 7"}) {
		t.Fatalf("trace = %v", got)
	}
	d, ok := r.Detail().(barRecord)
	if !ok {
		t.Fatalf("detail = %T", r.Detail())
	}
	if d.Code != 7 || d.Source != disk {
		t.Fatalf("detail = %+v", d)
	}
}

func TestTraceFrom_ExtendsReportCause(t *testing.T) {
	inner := newBar(7, errors.New("disk full"))
	outer := newFoo("sync", inner)

	want := []string{"Bar error with code 7", "error arose from Foo during sync"}
	if got := outer.TraceMessages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
	d := outer.Detail().(fooRecord)
	if d.Action != "sync" {
		t.Fatalf("action = %q", d.Action)
	}
	if _, ok := d.Source.(barRecord); !ok {
		t.Fatalf("absorbed detail = %T, want barRecord", d.Source)
	}
	if outer.Error() != "error arose from Foo during sync: Bar error with code 7" {
		t.Fatalf("Error() = %q", outer.Error())
	}
}

func TestTraceFrom_DoesNotMutateCause(t *testing.T) {
	inner := newBar(1, errors.New("boom"))
	before := inner.Error()

	a := newFoo("a", inner)
	b := newFoo("b", inner)

	if inner.Error() != before || len(inner.TraceMessages()) != 1 {
		t.Fatalf("cause mutated: %v", inner.TraceMessages())
	}
	if a.TraceMessages()[1] != "error arose from Foo during a" || b.TraceMessages()[1] != "error arose from Foo during b" {
		t.Fatalf("siblings share history: %v / %v", a.TraceMessages(), b.TraceMessages())
	}
}

func TestReport_ErrorDetailsIsReflexive(t *testing.T) {
	r := newBar(3, errors.New("x"))
	d, tr, ok := r.ErrorDetails()
	if !ok {
		t.Fatal("report must carry its trace")
	}
	if d.(barRecord).Code != 3 || tr.Len() != 1 {
		t.Fatalf("ErrorDetails = %v, %v", d, tr)
	}
}

func TestReport_UnwrapIsTrace(t *testing.T) {
	r := newFoo("sync", newBar(7, errors.New("disk full")))

	var h tracer.History
	if !errors.As(r, &h) {
		t.Fatal("errors.As must find the trace")
	}
	if h.Len() != 2 {
		t.Fatalf("unwrapped trace len = %d", h.Len())
	}

	var target Report[outerDetail, tracer.History]
	var err error = r
	if !errors.As(err, &target) || target.Detail().(fooRecord).Action != "sync" {
		t.Fatal("errors.As must find the report")
	}
}

func TestReport_Format(t *testing.T) {
	r := newFoo("sync", newBar(7, errors.New("disk full")))
	if got := fmt.Sprintf("%v", r); got != r.Error() {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%+v", r); got != "0: Bar error with code 7\n1: error arose from Foo during sync" {
		t.Fatalf("%%+v = %q", got)
	}
}

func TestReport_NoopFallsBackToDetail(t *testing.T) {
	r := New[innerDetail, tracer.None](tracer.Noop{}, bazRecord{Extra: "quiet"})
	if r.Error() != "Baz: quiet" {
		t.Fatalf("Error() = %q", r.Error())
	}
	if fmt.Sprint(r) != "Baz: quiet" {
		t.Fatalf("Sprint = %q", fmt.Sprint(r))
	}
	if r.Unwrap() != nil {
		t.Fatal("None is not an error; Unwrap must be nil")
	}
	if r.TraceMessages() != nil {
		t.Fatal("None keeps no messages")
	}
}

func TestReport_ClassificationForwarding(t *testing.T) {
	r := newBar(7, errors.New("x"))
	if r.ErrorCode() != "unavailable" || r.ErrorFamily() != "FooError" ||
		r.ErrorVariant() != "Bar" || r.ErrorReason() != "foo_error.bar" {
		t.Fatalf("classification = %q %q %q %q", r.ErrorFamily(), r.ErrorVariant(), r.ErrorCode(), r.ErrorReason())
	}
	baz := New[innerDetail, tracer.History](strs, bazRecord{})
	if baz.ErrorCode() != "" || baz.ErrorFamily() != "" {
		t.Fatal("unclassified detail must forward empty strings")
	}
}
