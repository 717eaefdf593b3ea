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

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Code classifies a variant for transports.
//
// It is a distinct type, not a plain string, so that raw user input and
// canonical values cannot be mixed by accident: values built with Parse,
// MustParse or UnmarshalText are always canonical, and APIs that take a Code
// say so in their signature.
//
// Examples of canonical codes:
//
//   - "unavailable"
//   - "not_found"
//   - "quota_zone" (custom; valid, but not Known)
//
// IMPORTANT: Empty is the "not declared" marker of a variant, never a
// canonical code. Transports substitute Internal for it (see OrInternal).
type Code string

// MinLength and MaxLength bound the length of a canonical code. They are
// exported so that error messages, tests and other packages can mirror the
// same limits.
const (
	// MinLength rejects ultra-short, ambiguous identifiers such as "a" or
	// "x1".
	MinLength = 3

	// MaxLength is enough for descriptive codes like "precondition_failed"
	// while keeping codes short enough for headers and log keys.
	MaxLength = 64
)

// Empty means "not declared". It is never canonical.
const Empty Code = ""

// ErrCodeInvalid is wrapped by every error about a non-canonical code.
var ErrCodeInvalid = errors.New("flexerr: invalid code")

// charset is the character grammar of a canonical code.
//
// Pattern breakdown:
//
//	^         - start of string;
//	[a-z]     - the first character is a lowercase ASCII letter;
//	[a-z0-9_]* - the rest are lowercase letters, digits or underscores;
//	$         - end of string.
//
// The pattern deliberately carries no length quantifier: validate checks
// MinLength / MaxLength first and reports them separately, so a too-long
// code is not described as a bad character.
var charset = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	_ encoding.TextMarshaler   = Empty
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Empty
)

// Normalize trims s, lowercases it and turns dashes into underscores. The
// result may still be invalid.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// Parse normalizes s and returns it as a canonical code.
//
// The steps are:
//
//  1. Normalize s (trim, lowercase, '-' to '_');
//  2. reject the empty result;
//  3. check MinLength / MaxLength;
//  4. check the character grammar.
//
// Every error wraps ErrCodeInvalid and names the offending value:
//
//	Parse("Not-Found")  // "not_found", nil
//	Parse("ab")         // flexerr: invalid code "ab": length 2 outside [3, 64]
//	Parse("1abc")       // flexerr: invalid code "1abc": want a lowercase letter ...
//
// IMPORTANT: Parse never returns Empty with a nil error. Use Empty directly
// to mean "no code declared".
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if err := validate(n); err != nil {
		return Empty, err
	}
	return Code(n), nil
}

// MustParse is Parse for package-level variables. It panics on error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether c is canonical.
//
// IMPORTANT: unlike Parse, Validate does not normalize. It is meant for
// values that claim to be canonical already, such as the code a record
// returns from ErrorCode; Code("Not-Found") is rejected here even though
// Parse would accept the same text.
func Validate(c Code) error {
	return validate(string(c))
}

func validate(s string) error {
	switch n := len(s); {
	case n == 0:
		return fmt.Errorf("%w: empty", ErrCodeInvalid)
	case n < MinLength || n > MaxLength:
		return fmt.Errorf("%w %q: length %d outside [%d, %d]", ErrCodeInvalid, s, n, MinLength, MaxLength)
	case !charset.MatchString(s):
		return fmt.Errorf("%w %q: want a lowercase letter followed by [a-z0-9_]", ErrCodeInvalid, s)
	}
	return nil
}

// OrInternal substitutes Internal for the empty code.
func (c Code) OrInternal() Code {
	if c == Empty {
		return Internal
	}
	return c
}

// Known reports whether c is one of the codes declared in this package.
// Custom codes are valid but have no default transport mapping.
func (c Code) Known() bool {
	_, ok := catalog[c]
	return ok
}

// Retryable reports whether an operation that failed with c may succeed if
// it is tried again unchanged.
func (c Code) Retryable() bool {
	return catalog[c].retryable
}

func (c Code) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler. Only canonical codes
// marshal.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the rules of Parse,
// so declarations may write "Not-Found" for not_found.
func (c *Code) UnmarshalText(text []byte) error {
	v, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
