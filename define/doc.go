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

// Package define models the declaration of error families: the ordered list
// of variant specifications that generators consume.
//
// A File declares one Go package worth of families. Each Family has a name,
// a trace strategy and ordered Variants; each Variant has ordered Fields, an
// optional Cause, a formatter (a fmt format string plus argument expressions
// over the record, bound to e) and an optional code and reason.
//
// Declarations are usually written in YAML and read with Load:
//
//	package: demo
//	families:
//	  - name: FooError
//	    variants:
//	      - name: Bar
//	        fields: {code: uint32}
//	        cause: {display: ExternalError}
//	        format: "Bar error with code %d"
//	        args: [e.Code]
//
// Validate rejects every declaration a generator cannot turn into a working
// family: reserved or duplicate names, identifiers that would collide in the
// generated package, malformed Go types or expressions, causes referring to
// unknown families. All problems are reported at once, joined with
// errors.Join; each one wraps a sentinel of this package.
package define
