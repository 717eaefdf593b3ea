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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = gc }
}

// WithHTTPOverride forces the HTTP status of c regardless of the reason.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.overrides[c] = status }
}

// WithGRPCOverride forces the gRPC code of c regardless of the reason.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.overrides[c] = gc }
}

// WithHTTPPrefix adds a reason-prefix rule for c. The prefix is normalized
// like a reason and may contain "*" segments.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) { b.http.addPrefix(c, prefix, status) }
}

// WithGRPCPrefix adds a reason-prefix rule for c.
func WithGRPCPrefix(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) { b.grpc.addPrefix(c, prefix, gc) }
}

// WithFallback sets the statuses used for codes without any rule, including
// the empty code.
func WithFallback(st apis.Status) Option {
	return func(b *builder) {
		b.http.fallback = st.HTTP
		b.grpc.fallback = st.GRPC
	}
}
