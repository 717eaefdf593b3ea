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

package apis

// ErrorView is a minimal, serializable representation of a report.
//
// This is *not* the concrete report type: it is the shape that is safe to
// hand over to transports and loggers. Keeping it here lets HTTP and gRPC
// adapters share one struct.
type ErrorView struct {
	// Family is the error family name, e.g. "QuuxError".
	Family string `json:"family,omitempty"`

	// Variant is the variant name inside the family, e.g. "Foo".
	Variant string `json:"variant,omitempty"`

	// Code is the canonical error code. Never empty in views produced by
	// the adapter package: undeclared codes become "internal".
	Code string `json:"code"`

	// Reason is the more specific sub-classification, e.g. "quux_error.foo".
	Reason string `json:"reason,omitempty"`

	// Message is the rendered error, i.e. the rendering of the trace.
	Message string `json:"message,omitempty"`

	// Trace is the trace history, oldest first. Empty when the trace
	// strategy keeps no messages.
	Trace []string `json:"trace,omitempty"`
}
