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
	"fmt"

	"dirpx.dev/flexerr/apis"
)

// Report is the unit returned by every constructing operation: a structured
// detail D and a trace T.
//
// Reports are immutable values. The only way to obtain one is New or
// TraceFrom (or a generated constructor calling them), and absorbing a report
// as a cause never changes it.
//
// Rendering is delegated to the trace, which already narrates the whole
// causal chain. The detail is for programmatic inspection.
type Report[D, T any] struct {
	detail D
	trace  T
}

var (
	_ apis.Source[fmt.Stringer, struct{}] = Report[fmt.Stringer, struct{}]{}
	_ apis.VariantError                   = Report[fmt.Stringer, struct{}]{}
	_ apis.CodedError                     = Report[fmt.Stringer, struct{}]{}
	_ apis.ReasonedError                  = Report[fmt.Stringer, struct{}]{}
	_ apis.TracedError                    = Report[fmt.Stringer, struct{}]{}
)

// Detail returns the structured detail.
func (r Report[D, T]) Detail() D { return r.detail }

// Trace returns the trace.
func (r Report[D, T]) Trace() T { return r.trace }

// ErrorDetails implements apis.Source: a report absorbed as a cause hands
// over its detail and its trace.
func (r Report[D, T]) ErrorDetails() (D, T, bool) {
	return r.detail, r.trace, true
}

// Error renders the trace. A trace that renders empty (tracer.None) falls
// back to the detail, so an error never has an empty message.
func (r Report[D, T]) Error() string {
	if s := render(r.trace); s != "" {
		return s
	}
	return render(r.detail)
}

// Format implements fmt.Formatter by forwarding the verb and its flags to
// the trace, so %+v prints the trace's verbose form.
func (r Report[D, T]) Format(s fmt.State, verb rune) {
	if render(r.trace) == "" {
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), render(r.detail))
		return
	}
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), r.trace)
}

// Unwrap returns the trace when it implements error. The trace, not the
// detail, is the underlying cause as far as errors.Is / errors.As go.
func (r Report[D, T]) Unwrap() error {
	if err, ok := any(r.trace).(error); ok {
		return err
	}
	return nil
}

// TraceMessages returns the trace history, oldest first, when the trace
// exposes one (Messages() []string); nil otherwise.
func (r Report[D, T]) TraceMessages() []string {
	if m, ok := any(r.trace).(interface{ Messages() []string }); ok {
		return m.Messages()
	}
	return nil
}

// ErrorFamily forwards to the detail when it implements apis.Classified.
// Reports whose detail classifies nothing return empty strings from all
// four methods, and transports treat them as unclassified.
func (r Report[D, T]) ErrorFamily() string {
	if c, ok := r.classified(); ok {
		return c.ErrorFamily()
	}
	return ""
}

// ErrorVariant forwards to the detail, see ErrorFamily.
func (r Report[D, T]) ErrorVariant() string {
	if c, ok := r.classified(); ok {
		return c.ErrorVariant()
	}
	return ""
}

// ErrorCode forwards to the detail, see ErrorFamily.
func (r Report[D, T]) ErrorCode() string {
	if c, ok := r.classified(); ok {
		return c.ErrorCode()
	}
	return ""
}

// ErrorReason forwards to the detail, see ErrorFamily.
func (r Report[D, T]) ErrorReason() string {
	if c, ok := r.classified(); ok {
		return c.ErrorReason()
	}
	return ""
}

func (r Report[D, T]) classified() (apis.Classified, bool) {
	c, ok := any(r.detail).(apis.Classified)
	return c, ok
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
