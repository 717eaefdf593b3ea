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

package grpcx

import (
	"context"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/flexerr/adapter"
	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/reason"
)

// Metadata keys of the ErrorInfo detail.
const (
	MetaCode    = "code"
	MetaVariant = "variant"
)

// Option configures Status and the interceptors.
type Option func(*config)

type config struct {
	trace bool
	log   *slog.Logger
}

func newConfig(opts []Option) config {
	c := config{trace: true}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithoutTrace drops the DebugInfo detail, for services that must not expose
// the trace to clients.
func WithoutTrace() Option {
	return func(c *config) { c.trace = false }
}

// WithLogger makes the interceptors log every converted error at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// Status converts err into a gRPC status resolved with m. A nil err gives a
// nil status.
func Status(err error, m apis.Mapper, opts ...Option) *status.Status {
	if err == nil {
		return nil
	}
	return convert(err, m, newConfig(opts))
}

func convert(err error, m apis.Mapper, cfg config) *status.Status {
	v := adapter.ToView(err)
	st := m.Status(code.Code(v.Code), reason.Reason(v.Reason))
	base := status.New(st.GRPC, v.Message)

	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason: v.Reason,
		Domain: v.Family,
		Metadata: map[string]string{
			MetaCode:    v.Code,
			MetaVariant: v.Variant,
		},
	}}
	if cfg.trace && len(v.Trace) > 0 {
		details = append(details, &errdetails.DebugInfo{StackEntries: v.Trace})
	}
	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

// UnaryServerInterceptor converts classified errors returned by handlers
// with Status. Other errors, including ready-made gRPC statuses, pass
// through untouched.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, cfg.intercept(ctx, info.FullMethod, err, m)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	cfg := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return cfg.intercept(ss.Context(), info.FullMethod, err, m)
	}
}

func (c config) intercept(ctx context.Context, method string, err error, m apis.Mapper) error {
	if _, ok := err.(interface{ GRPCStatus() *status.Status }); ok || !adapter.IsClassified(err) {
		return err
	}
	if c.log != nil {
		c.log.WarnContext(ctx, "rpc failed",
			"method", method,
			"error", adapter.ToDescriptor(err, adapter.Resolve(m, err)),
		)
	}
	return convert(err, m, c).Err()
}

// ExtractView rebuilds the view of a report from an error received by a
// client. It reports false when err carries no ErrorInfo detail.
func ExtractView(err error) (apis.ErrorView, bool) {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return apis.ErrorView{}, false
	}
	v := apis.ErrorView{Message: st.Message()}
	found := false
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			found = true
			v.Family = d.GetDomain()
			v.Reason = d.GetReason()
			v.Code = d.GetMetadata()[MetaCode]
			v.Variant = d.GetMetadata()[MetaVariant]
		case *errdetails.DebugInfo:
			v.Trace = d.GetStackEntries()
		}
	}
	return v, found
}
