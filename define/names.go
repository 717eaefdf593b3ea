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
	"go/token"
	"unicode"
	"unicode/utf8"
)

// DetailName is the sealed detail interface of the family: FooErrorDetail.
func (f *Family) DetailName() string { return f.Name + "Detail" }

// KindName is the tag enum type of the family: FooErrorKind.
func (f *Family) KindName() string { return f.Name + "Kind" }

// KindConst is the tag constant of v: FooErrorKindBar.
func (f *Family) KindConst(v Variant) string { return f.KindName() + v.Name }

// TracerVar is the package-level strategy variable: fooErrorTracer.
func (f *Family) TracerVar() string { return LowerFirst(f.Name) + "Tracer" }

// MarkerMethod seals the detail interface: isFooErrorDetail.
func (f *Family) MarkerMethod() string { return "is" + f.DetailName() }

// RecordName is the record type of v: BarSubdetail unless overridden.
func (v Variant) RecordName() string {
	if v.Record != "" {
		return v.Record
	}
	return v.Name + "Subdetail"
}

// ConstructorName is the constructor of v: NewBarError unless overridden.
func (v Variant) ConstructorName() string {
	if v.Constructor != "" {
		return v.Constructor
	}
	return "New" + v.Name + "Error"
}

// GoName is the exported struct field name of f.
func (f Field) GoName() string { return Exported(f.Name) }

// SourceField is the record field holding an absorbed cause detail.
const SourceField = "Source"

// reservedFields collide with the cause slot or with generated methods.
var reservedFields = map[string]bool{
	SourceField:    true,
	"String":       true,
	"Kind":         true,
	"ErrorFamily":  true,
	"ErrorVariant": true,
	"ErrorCode":    true,
	"ErrorReason":  true,
}

// IsReservedField reports whether a field named name is rejected.
func IsReservedField(name string) bool { return reservedFields[Exported(name)] }

// IsIdent reports whether s is a Go identifier other than the blank one.
func IsIdent(s string) bool { return s != "_" && token.IsIdentifier(s) }

// Exported upper-cases the first letter of s.
func Exported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// LowerFirst lower-cases the leading upper-case run of s, keeping the last
// letter of an acronym that starts the next word: "HTTPCode" -> "httpCode",
// "ID" -> "id", "Code" -> "code".
func LowerFirst(s string) string {
	rs := []rune(s)
	i := 0
	for i < len(rs) && unicode.IsUpper(rs[i]) {
		i++
	}
	if i > 1 && i < len(rs) && unicode.IsLower(rs[i]) {
		i--
	}
	for j := 0; j < i; j++ {
		rs[j] = unicode.ToLower(rs[j])
	}
	return string(rs)
}
