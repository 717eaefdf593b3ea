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
	"net/http"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/flexerr/adapter"
	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/grpcx"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Writer turns errors into HTTP responses using Mapper.
type Writer struct {
	Mapper apis.Mapper

	// OmitTrace drops the DebugInfo detail.
	OmitTrace bool

	// RetryAfter, when positive, is sent as Retry-After for 429 and 503.
	RetryAfter int
}

// Write writes err to rw. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	st := adapter.Resolve(w.Mapper, err)
	body, merr := Marshal(w.Body(err, st))
	if merr != nil {
		http.Error(rw, http.StatusText(st.HTTP), st.HTTP)
		return
	}

	h := rw.Header()
	h.Set("Content-Type", ContentType)
	h.Set("X-Content-Type-Options", "nosniff")
	if w.RetryAfter > 0 && (st.HTTP == http.StatusTooManyRequests || st.HTTP == http.StatusServiceUnavailable) {
		h.Set("Retry-After", strconv.Itoa(w.RetryAfter))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// Body builds the google.rpc.Status message for err resolved to st.
func (w Writer) Body(err error, st apis.Status) *spb.Status {
	v := adapter.ToView(err)
	msgs := []proto.Message{&errdetails.ErrorInfo{
		Reason:   v.Reason,
		Domain:   v.Family,
		Metadata: map[string]string{grpcx.MetaCode: v.Code, grpcx.MetaVariant: v.Variant},
	}}
	if !w.OmitTrace && len(v.Trace) > 0 {
		msgs = append(msgs, &errdetails.DebugInfo{StackEntries: v.Trace})
	}

	out := &spb.Status{Code: int32(st.GRPC), Message: v.Message}
	for _, m := range msgs {
		a, aerr := anypb.New(m)
		if aerr != nil {
			continue
		}
		out.Details = append(out.Details, a)
	}
	return out
}

// Marshal renders s as JSON with protojson, which is needed for the Any
// details to carry their @type.
func Marshal(s *spb.Status) ([]byte, error) {
	return protojson.MarshalOptions{UseProtoNames: false}.Marshal(s)
}

// Unmarshal parses a body written by Writer and returns the view it carries.
func Unmarshal(b []byte) (apis.ErrorView, error) {
	var s spb.Status
	if err := protojson.Unmarshal(b, &s); err != nil {
		return apis.ErrorView{}, err
	}
	v := apis.ErrorView{Message: s.GetMessage()}
	for _, a := range s.GetDetails() {
		m, err := a.UnmarshalNew()
		if err != nil {
			continue
		}
		switch d := m.(type) {
		case *errdetails.ErrorInfo:
			v.Family = d.GetDomain()
			v.Reason = d.GetReason()
			v.Code = d.GetMetadata()[grpcx.MetaCode]
			v.Variant = d.GetMetadata()[grpcx.MetaVariant]
		case *errdetails.DebugInfo:
			v.Trace = d.GetStackEntries()
		}
	}
	return v, nil
}
