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

// Package reason provides parsing, normalization and validation of variant
// reasons.
//
// A reason refines a variant's code with a hierarchical, dot-separated
// identifier such as "storage.disk.full". Every generated variant has one:
// either declared explicitly, or derived from the family and variant names
// with FromNames ("FooError", "Bar" gives "foo_error.bar"). Mappers match
// reasons by prefix, so a rule for "foo_error" covers a whole family.
//
// The empty reason is valid and means "no reason".
package reason
