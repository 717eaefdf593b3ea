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

import "log/slog"

// ErrorDescriptor is a flat description of a report together with the
// transport statuses it resolved to.
//
// It is meant for structured logging and message bus propagation: every field
// is a plain value, and the type implements slog.LogValuer so it can be passed
// to a logger as a single attribute.
type ErrorDescriptor struct {
	// Family and Variant identify the declared error shape.
	Family  string `json:"family,omitempty"`
	Variant string `json:"variant,omitempty"`

	// Code and Reason are the classification of the variant.
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the rendered report.
	Message string `json:"message,omitempty"`

	// TraceDepth is the number of messages in the trace history.
	TraceDepth int `json:"trace_depth,omitempty"`

	// Retryable is the retry hint of the code.
	Retryable bool `json:"retryable,omitempty"`
}

var _ slog.LogValuer = ErrorDescriptor{}

// LogValue implements slog.LogValuer. Empty fields are omitted.
func (d ErrorDescriptor) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 9)
	if d.Family != "" {
		attrs = append(attrs, slog.String("family", d.Family))
	}
	if d.Variant != "" {
		attrs = append(attrs, slog.String("variant", d.Variant))
	}
	attrs = append(attrs, slog.String("code", d.Code))
	if d.Reason != "" {
		attrs = append(attrs, slog.String("reason", d.Reason))
	}
	if d.HTTPStatus != 0 {
		attrs = append(attrs, slog.Int("http_status", d.HTTPStatus))
	}
	attrs = append(attrs, slog.Int("grpc_code", d.GRPCCode))
	if d.Message != "" {
		attrs = append(attrs, slog.String("message", d.Message))
	}
	if d.TraceDepth > 0 {
		attrs = append(attrs, slog.Int("trace_depth", d.TraceDepth))
	}
	if d.Retryable {
		attrs = append(attrs, slog.Bool("retryable", true))
	}
	return slog.GroupValue(attrs...)
}
