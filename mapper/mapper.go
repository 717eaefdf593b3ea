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
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/reason"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// The resulting mapper is safe for concurrent use and meant for long-lived
// reuse. It keeps no reference to the builder or to anything passed in opts.
//
// Build process overview:
//
//  1. Seed a builder with the library defaults for HTTP and gRPC.
//  2. Apply opts in order; a later option for the same key wins.
//  3. Normalize and validate every reason prefix.
//  4. Compile each transport into a table: exact overrides, a segment trie
//     per code for prefix rules, per-code defaults and the fallback.
//
// New fails when a prefix rule is malformed, naming the transport and the
// rule. Resolution then tries, for each transport independently:
//
//	override (code + exact reason) > prefix (longest match) > default (code) > fallback
//
// IMPORTANT: unknown and empty codes never fail resolution. They land on the
// fallback, which is 500 / codes.Internal unless WithFallback says otherwise.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTable, err := b.http.compile("HTTP")
	if err != nil {
		return nil, err
	}
	grpcTable, err := b.grpc.compile("gRPC")
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpTable, grpc: grpcTable}, nil
}

// Default is a Mapper with the library defaults only. Adapters and
// transports use it when the caller has no rules of its own.
var Default = func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}()

type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

var _ apis.Mapper = (*mapper)(nil)

// HTTPStatus resolves the HTTP status of (c, r). It is never zero.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

// GRPCStatus resolves the gRPC code of (c, r).
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain describes how (c, r) was resolved:
//
//	code="unavailable" reason="storage.pg.connect_timeout"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	hv, htier, hpat := m.http.resolve(c, r)
	gv, gtier, gpat := m.grpc.resolve(c, r)

	lines := []string{
		fmt.Sprintf("code=%q reason=%q", string(c), string(r)),
		explain("http", htier, hpat, strconv.Itoa(hv)),
		explain("grpc", gtier, gpat, fmt.Sprintf("%s(%d)", strings.ToUpper(gv.String()), int(gv))),
	}
	return strings.Join(lines, "\n")
}
