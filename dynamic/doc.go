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

// Package dynamic builds error families at run time.
//
// It is the reflective counterpart of the codegen package: the same variant
// specifications, checked by the same rules, but the family is a value and
// its details are Records rather than generated types.
//
//	foo, err := dynamic.New("FooError", tracer.Strings{},
//	    dynamic.Variant{Name: "Bar", Fields: []string{"code"}, Cause: true,
//	        Format: func(r dynamic.Record) string { return fmt.Sprintf("Bar error with code %v", r.MustField("code")) }},
//	)
//	bar, _ := foo.Constructor("Bar")
//	report, err := bar.WrapError(io.ErrUnexpectedEOF, 7)
//
// Arity and cause mistakes that the compiler catches for generated families
// are reported as ErrArity and ErrCause here.
package dynamic
