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

package code

// Generic codes.
const (
	Internal    Code = "internal"    // fallback for undeclared codes
	Invalid     Code = "invalid"     // input broke a structural or semantic rule
	Missing     Code = "missing"     // a required value was absent
	Unsupported Code = "unsupported" // the operation or option is not implemented
)

// Runtime and dependency codes.
const (
	Unavailable       Code = "unavailable"
	Timeout           Code = "timeout"
	Canceled          Code = "canceled"
	DependencyFailed  Code = "dependency_failed"
	ResourceExhausted Code = "resource_exhausted"
)

// Resource state codes.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
)

// Access codes.
const (
	Unauthenticated  Code = "unauthenticated"
	PermissionDenied Code = "permission_denied"
	RateLimited      Code = "rate_limited"
)

type entry struct {
	retryable bool
}

var catalog = map[Code]entry{
	Internal:    {},
	Invalid:     {},
	Missing:     {},
	Unsupported: {},

	Unavailable:       {retryable: true},
	Timeout:           {retryable: true},
	Canceled:          {},
	DependencyFailed:  {},
	ResourceExhausted: {retryable: true},

	NotFound:           {},
	AlreadyExists:      {},
	Conflict:           {retryable: true},
	PreconditionFailed: {},

	Unauthenticated:  {},
	PermissionDenied: {},
	RateLimited:      {retryable: true},
}

// order is the declaration order used by All.
var order = []Code{
	Internal, Invalid, Missing, Unsupported,
	Unavailable, Timeout, Canceled, DependencyFailed, ResourceExhausted,
	NotFound, AlreadyExists, Conflict, PreconditionFailed,
	Unauthenticated, PermissionDenied, RateLimited,
}

// All returns the codes declared in this package in declaration order. The
// slice is a copy.
func All() []Code {
	return append([]Code(nil), order...)
}
