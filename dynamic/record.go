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

package dynamic

import (
	"fmt"
	"slices"
)

// Record is the detail of a dynamic report: the tag of its variant, the
// field values in declaration order and, for variants with a cause, the
// absorbed detail.
type Record struct {
	meta      *meta
	tag       int
	values    []any
	source    any
	hasSource bool
}

// Tag returns the declaration index of the variant.
func (r Record) Tag() int { return r.tag }

// Variant returns the variant name. The zero Record has none.
func (r Record) Variant() string {
	if r.meta == nil {
		return ""
	}
	return r.meta.variants[r.tag].Name
}

// Field returns the value of the named field.
func (r Record) Field(name string) (any, bool) {
	if r.meta == nil {
		return nil, false
	}
	i, ok := r.meta.fields[r.tag][name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// MustField is Field for names known to exist, as inside a Format func.
func (r Record) MustField(name string) any {
	v, ok := r.Field(name)
	if !ok {
		panic(fmt.Sprintf("dynamic: %s has no field %q", r.Variant(), name))
	}
	return v
}

// Values returns a copy of the field values in declaration order.
func (r Record) Values() []any { return slices.Clone(r.values) }

// Source returns the absorbed cause detail. ok is false for variants
// without a cause.
func (r Record) Source() (detail any, ok bool) { return r.source, r.hasSource }

// String renders the record with the Format of its variant.
func (r Record) String() string {
	if r.meta == nil {
		return ""
	}
	return r.meta.variants[r.tag].Format(r)
}

// ErrorFamily returns the family name.
func (r Record) ErrorFamily() string {
	if r.meta == nil {
		return ""
	}
	return r.meta.name
}

// ErrorVariant returns the variant name.
func (r Record) ErrorVariant() string { return r.Variant() }

// ErrorCode returns the declared code, possibly empty.
func (r Record) ErrorCode() string {
	if r.meta == nil {
		return ""
	}
	return r.meta.variants[r.tag].Code.String()
}

// ErrorReason returns the declared or derived reason.
func (r Record) ErrorReason() string {
	if r.meta == nil {
		return ""
	}
	return r.meta.variants[r.tag].Reason.String()
}
