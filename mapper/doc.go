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

// Package mapper resolves the classification of a report, its code and
// reason, into HTTP and gRPC statuses.
//
// Generated variants declare a code (code.Unavailable, code.Invalid, ...) and
// a reason derived from their family and variant names ("foo_error.bar")
// unless one is given explicitly. Transports need concrete statuses; a
// Mapper turns the pair into both at once so that HTTP and gRPC answers for
// one report never disagree.
//
// # Resolution
//
// For each transport a Mapper tries, in order:
//
//  1. an exact override for the code;
//  2. the longest reason-prefix rule registered for the code;
//  3. the default for the code (library table or WithHTTPDefault and
//     WithGRPCDefault);
//  4. the fallback, 500 and codes.Internal unless changed with WithFallback.
//
// Prefix rules work on whole segments and "*" matches exactly one of them:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.Unavailable, "foo_error", http.StatusBadGateway),
//	    mapper.WithGRPCPrefix(code.Unavailable, "storage.*.connect", codes.Unavailable),
//	)
//	st := m.Status(code.Unavailable, "foo_error.bar") // 502, Unavailable
//
// A Mapper is an immutable snapshot and safe for concurrent use. Explain shows
// which tier produced each status.
package mapper
