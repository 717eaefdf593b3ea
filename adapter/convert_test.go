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

package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/flexerr"
	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/internal/demo"
	"dirpx.dev/flexerr/mapper"
	"dirpx.dev/flexerr/reason"
	"dirpx.dev/flexerr/tracer"
)

func chain() demo.QuuxError {
	bar := demo.NewBarError(7, demo.ExternalError{Msg: "disk on fire"})
	return demo.NewFooError("sync", bar)
}

func TestToView_Report(t *testing.T) {
	v := ToView(chain())
	want := apis.ErrorView{
		Family:  "QuuxError",
		Variant: "Foo",
		Code:    "dependency_failed",
		Reason:  "quux.foo_failed",
		Message: "error arose from Foo during sync: Bar error with code 7",
		Trace:   []string{"Bar error with code 7", "error arose from Foo during sync"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("ToView:\n got %+v\nwant %+v", v, want)
	}
}

func TestToView_WrappedReport(t *testing.T) {
	err := fmt.Errorf("handler: %w", demo.NewBazError("x"))
	v := ToView(err)
	if v.Family != "FooError" || v.Variant != "Baz" || v.Code != "invalid" || v.Reason != "foo_error.baz" {
		t.Fatalf("classification lost through wrapping: %+v", v)
	}
	if v.Message != "handler: Baz error: x" {
		t.Fatalf("message = %q", v.Message)
	}
	if len(v.Trace) != 1 {
		t.Fatalf("trace = %v", v.Trace)
	}
}

func TestToView_Foreign(t *testing.T) {
	v := ToView(errors.New("boom"))
	if v.Code != "internal" || v.Message != "boom" || v.Family != "" || v.Trace != nil {
		t.Fatalf("foreign view = %+v", v)
	}
}

func TestToView_Nil(t *testing.T) {
	if v := ToView(nil); !reflect.DeepEqual(v, apis.ErrorView{}) {
		t.Fatalf("nil view = %+v", v)
	}
}

func TestClassifyAndResolve(t *testing.T) {
	c, r := Classify(demo.NewBarError(1, demo.ExternalError{}))
	if c != code.Unavailable || r != reason.Reason("foo_error.bar") {
		t.Fatalf("Classify = %q %q", c, r)
	}

	st := Resolve(mapper.Default, chain())
	if st.HTTP != 502 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("Resolve = %+v", st)
	}
	st = Resolve(mapper.Default, errors.New("boom"))
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("Resolve foreign = %+v", st)
	}
}

func TestToDescriptor(t *testing.T) {
	err := chain()
	d := ToDescriptor(err, Resolve(mapper.Default, err))
	if d.Family != "QuuxError" || d.HTTPStatus != 502 || d.GRPCCode != int(codes.FailedPrecondition) || d.TraceDepth != 2 {
		t.Fatalf("descriptor = %+v", d)
	}

	var b strings.Builder
	log := slog.New(slog.NewTextHandler(&b, nil))
	log.Error("request failed", "error", d)
	out := b.String()
	for _, want := range []string{"error.family=QuuxError", "error.code=dependency_failed", "error.http_status=502", "error.trace_depth=2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q misses %q", out, want)
		}
	}

	if d := ToDescriptor(nil, apis.Status{}); d != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil descriptor = %+v", d)
	}
}

func TestToDescriptor_Retryable(t *testing.T) {
	if d := ToDescriptor(chain(), apis.Status{}); d.Retryable {
		t.Fatal("dependency_failed is not retryable")
	}
	bar := demo.NewBarError(7, demo.ExternalError{})
	if d := ToDescriptor(bar, apis.Status{}); !d.Retryable {
		t.Fatal("unavailable is retryable")
	}
}

type note string

func (n note) String() string { return string(n) }

// codedErr is a foreign error that only knows its code.
type codedErr struct{ c string }

func (e codedErr) Error() string     { return "coded " + e.c }
func (e codedErr) ErrorCode() string { return e.c }

func TestToView_ForeignCoded(t *testing.T) {
	v := ToView(fmt.Errorf("lookup: %w", codedErr{c: "not_found"}))
	if v.Code != "not_found" || v.Family != "" || v.Reason != "" {
		t.Fatalf("coded view = %+v", v)
	}
}

func TestIsClassified(t *testing.T) {
	plain := flexerr.New[note, tracer.History](tracer.Strings{}, note("just text"))
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generated report", chain(), true},
		{"wrapped report", fmt.Errorf("ctx: %w", demo.NewBazError("x")), true},
		{"foreign coded", codedErr{c: "not_found"}, true},
		{"foreign invalid code", codedErr{c: "Not Found"}, false},
		{"report of unclassified detail", plain, false},
		{"foreign", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClassified(tt.err); got != tt.want {
				t.Fatalf("IsClassified = %v, want %v", got, tt.want)
			}
		})
	}
}
