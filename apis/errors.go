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

// Classified is implemented by variant records (generated or dynamic).
//
// It describes where a detail comes from (family and variant names) and how
// it is classified for transports (code and reason). Every method may return
// an empty string when the information is not declared.
type Classified interface {
	// ErrorFamily returns the name of the error family, e.g. "FooError".
	ErrorFamily() string

	// ErrorVariant returns the variant (tag) name, e.g. "Bar".
	ErrorVariant() string

	// ErrorCode returns the canonical code declared for the variant, e.g.
	// "unavailable". Empty means "not declared"; adapters treat it as
	// internal.
	ErrorCode() string

	// ErrorReason returns the dot-separated reason of the variant, e.g.
	// "foo_error.bar".
	ErrorReason() string
}

// CodedError represents an error that is classified into a machine-readable
// error code.
//
// Codes are stable, enumerable categories ("invalid", "not_found",
// "unavailable", ...) and are the primary input transports use to pick a
// status. Adapters treat unknown or empty codes as internal errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code, possibly empty.
	ErrorCode() string
}

// ReasonedError represents an error that provides a more specific reason in
// addition to its code. Reasons are hierarchical, dot-separated strings
// validated by the reason package.
type ReasonedError interface {
	error

	// ErrorReason returns the specific error reason. MAY be empty.
	ErrorReason() string
}

// VariantError represents an error that knows which family and variant of a
// declared error hierarchy produced it.
type VariantError interface {
	error

	// ErrorFamily returns the family name. MAY be empty.
	ErrorFamily() string

	// ErrorVariant returns the variant name. MAY be empty.
	ErrorVariant() string
}

// TracedError represents an error that exposes its trace as a list of
// rendered messages, oldest first.
type TracedError interface {
	error

	// TraceMessages returns a copy of the trace history, oldest first.
	// Returns nil when the trace strategy keeps no messages.
	TraceMessages() []string
}
