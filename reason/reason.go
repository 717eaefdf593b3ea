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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Reason is the canonical, validated representation of a reason.
//
// Valid reasons have one to four segments; each segment starts with a
// lowercase ASCII letter and continues with lowercase letters, digits or
// underscores:
//
//   - "foo_error.bar"
//   - "storage.disk.full"
//   - "auth.jwt.verify"
type Reason string

// Length limits of a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// MaxSegments is the largest number of dot-separated segments in a reason.
const MaxSegments = 4

// reasonFmt is the grammar of a canonical reason.
//
// Pattern breakdown:
//
//	^                      - start of string;
//	[a-z][a-z0-9_]*        - the first segment: a lowercase ASCII letter,
//	                         then lowercase letters, digits or underscores;
//	(\.[a-z][a-z0-9_]*){0,3} - up to three more segments, each introduced
//	                         by a single dot and shaped like the first;
//	$                      - end of string.
//
// IMPORTANT: the quantifier {0,3} is tied to MaxSegments. If you change
// MaxSegments, adjust this pattern as well.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match the
	// segment grammar.
	ErrReasonInvalidFormat = errors.New("flexerr: invalid reason format")

	// ErrReasonInvalidLength is returned when a reason is too short or too
	// long.
	ErrReasonInvalidLength = errors.New("flexerr: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason".
var Empty Reason = ""

// Normalize trims spaces, lowercases, turns '/' into '.' and '-' into '_'.
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s.
//
// Normalization accepts the spellings people actually type:
//
//	Parse(" Storage/PG/connect-timeout ") // "storage.pg.connect_timeout"
//	Parse("quux.foo_failed")              // "quux.foo_failed"
//	Parse("")                             // Empty, nil
//
// Length problems wrap ErrReasonInvalidLength, grammar problems
// ErrReasonInvalidFormat.
//
// IMPORTANT: unlike codes, the empty reason is valid. A variant without a
// reason simply has no sub-classification, and mapper rules keyed on
// reasons never match it.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("flexerr: empty reason in MustParse")
	}
	return r
}

// FromNames derives a reason from Go identifiers, one segment per name, each
// converted from CamelCase to snake_case:
//
//	FromNames("FooError", "Bar")       // "foo_error.bar"
//	FromNames("HTTPError", "IOFailed") // "http_error.io_failed"
//
// Empty names are skipped. The result is validated like Parse.
func FromNames(names ...string) (Reason, error) {
	segs := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		segs = append(segs, Snake(n))
	}
	if len(segs) == 0 {
		return Empty, nil
	}
	s := strings.Join(segs, ".")
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// Snake converts a Go identifier to snake_case. An underscore is inserted
// before an upper-case letter that follows a lower-case letter or a digit,
// or that starts a new word after an acronym ("HTTPError" -> "http_error").
func Snake(name string) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range rs {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && rs[i-1] != '_' {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Segments splits r into its dot-separated segments. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// Validate checks that r is canonical without normalizing it.
//
// IMPORTANT: Empty is valid. A non-empty reason must satisfy both the length
// limits and the segment grammar; "Storage.PG" is rejected here although
// Parse would turn it into "storage.pg".
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the reason as a string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Whitespace-only input
// gives Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
