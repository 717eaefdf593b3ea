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

package define

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidName is returned for names that are not usable Go
	// identifiers (family and variant names must also be exported).
	ErrInvalidName = errors.New("invalid name")

	// ErrReservedField is returned for a field that collides with the cause
	// slot (Source) or with a method of generated records.
	ErrReservedField = errors.New("reserved field name")

	// ErrDuplicateFamily is returned when two families share a name.
	ErrDuplicateFamily = errors.New("duplicate family")

	// ErrDuplicateVariant is returned when two variants of one family share
	// a name.
	ErrDuplicateVariant = errors.New("duplicate variant")

	// ErrDuplicateField is returned when two fields of one variant share a
	// name once exported.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrEmptyFamily is returned for a family without variants.
	ErrEmptyFamily = errors.New("family has no variants")

	// ErrNameCollision is returned when two generated top-level identifiers
	// of one file would clash.
	ErrNameCollision = errors.New("generated name collision")

	// ErrInvalidType is returned when a field or cause type is not a valid
	// Go type expression.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidExpr is returned when a formatter argument or a tracer
	// strategy is not a valid Go expression.
	ErrInvalidExpr = errors.New("invalid expression")

	// ErrMissingFormat is returned for a variant without a formatter.
	ErrMissingFormat = errors.New("missing format")

	// ErrInvalidCause is returned for a cause that declares none or both of
	// display and report, or a detail type without a report.
	ErrInvalidCause = errors.New("invalid cause")

	// ErrUnknownFamily is returned for a report cause that names a family
	// absent from the file without giving its detail type.
	ErrUnknownFamily = errors.New("unknown family")

	// ErrTraceMismatch is returned when a report cause's family uses a
	// different trace type than the absorbing family.
	ErrTraceMismatch = errors.New("trace type mismatch")

	// ErrInvalidTracer is returned for an unknown tracer preset or an
	// incomplete custom tracer.
	ErrInvalidTracer = errors.New("invalid tracer")

	// ErrInvalidClassification is returned for an invalid code or reason.
	ErrInvalidClassification = errors.New("invalid classification")
)

// Error locates a declaration problem. Err wraps one of the sentinels above.
type Error struct {
	Family  string
	Variant string
	Field   string
	Err     error
}

// Error renders "define: family F: variant V: field X: <problem>".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("define")
	if e.Family != "" {
		b.WriteString(": family ")
		b.WriteString(e.Family)
	}
	if e.Variant != "" {
		b.WriteString(": variant ")
		b.WriteString(e.Variant)
	}
	if e.Field != "" {
		b.WriteString(": field ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap returns the underlying problem.
func (e *Error) Unwrap() error { return e.Err }
