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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/flexerr/adapter"
	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/grpcx"
	"dirpx.dev/flexerr/internal/demo"
	"dirpx.dev/flexerr/mapper"
)

func chain() error {
	return demo.NewFooError("sync", demo.NewBarError(7, demo.ExternalError{Msg: "disk on fire"}))
}

func TestWrite_Report(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Mapper: mapper.Default}.Write(rec, chain())

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentType {
		t.Fatalf("content type = %q", ct)
	}

	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, rec.Body)
	}
	if raw["message"] != "error arose from Foo during sync: Bar error with code 7" {
		t.Fatalf("message = %v", raw["message"])
	}
	if details, _ := raw["details"].([]any); len(details) != 2 {
		t.Fatalf("details = %v", raw["details"])
	}

	v, err := Unmarshal(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := apis.ErrorView{
		Family:  "QuuxError",
		Variant: "Foo",
		Code:    "dependency_failed",
		Reason:  "quux.foo_failed",
		Message: "error arose from Foo during sync: Bar error with code 7",
		Trace:   []string{"Bar error with code 7", "error arose from Foo during sync"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("view:\n got %+v\nwant %+v", v, want)
	}
}

func TestWrite_RetryAfterAndOmitTrace(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Writer{Mapper: mapper.Default, OmitTrace: true, RetryAfter: 30}
	w.Write(rec, demo.NewBarError(1, demo.ExternalError{}))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("Retry-After = %q", got)
	}
	v, err := Unmarshal(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Trace != nil || v.Code != string(code.Unavailable) {
		t.Fatalf("view = %+v", v)
	}
}

func TestWrite_ForeignAndNil(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Mapper: mapper.Default}.Write(rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	v, err := Unmarshal(rec.Body.Bytes())
	if err != nil || v.Code != "internal" || v.Message != "boom" {
		t.Fatalf("view = %+v err=%v", v, err)
	}

	rec = httptest.NewRecorder()
	Writer{Mapper: mapper.Default}.Write(rec, nil)
	if rec.Body.Len() != 0 || rec.Code != http.StatusOK {
		t.Fatalf("nil error wrote a response")
	}
}

// The HTTP body carries the same ErrorInfo as the gRPC status, so one client
// decoder serves both transports.
func TestBody_MatchesGRPCErrorInfo(t *testing.T) {
	err := chain()
	body := Writer{Mapper: mapper.Default}.Body(err, adapter.Resolve(mapper.Default, err))
	st := grpcx.Status(err, mapper.Default)

	if body.GetCode() != int32(st.Code()) || body.GetMessage() != st.Message() {
		t.Fatalf("body %d %q, status %d %q", body.GetCode(), body.GetMessage(), st.Code(), st.Message())
	}

	var fromGRPC *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			fromGRPC = info
		}
	}
	fromHTTP := new(errdetails.ErrorInfo)
	if err := body.GetDetails()[0].UnmarshalTo(fromHTTP); err != nil {
		t.Fatalf("first detail: %v", err)
	}
	if fromGRPC == nil || !proto.Equal(fromGRPC, fromHTTP) {
		t.Fatalf("ErrorInfo differs:\nhttp %v\ngrpc %v", fromHTTP, fromGRPC)
	}
	if fromHTTP.GetMetadata()[grpcx.MetaCode] != "dependency_failed" || fromHTTP.GetMetadata()[grpcx.MetaVariant] != "Foo" {
		t.Fatalf("metadata = %v", fromHTTP.GetMetadata())
	}
}
