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

// Package flexerr composes structured error reports with a running trace.
//
// A report pairs two things:
//
//   - a Detail: a structured, programmatically inspectable value describing
//     what went wrong (usually a variant record of a generated family);
//   - a Trace: the human-readable history of what led to it.
//
// A new report can absorb any apis.Source as its cause: another report (of
// any family sharing the trace type) or an opaque foreign error wrapped with
// DisplayError. The cause's detail is moved into the new detail, and the
// cause's trace, when there is one, is extended with the new message instead
// of being re-rendered:
//
//	inner := demo.NewBarError(7, demo.ExternalError{Msg: "disk full"})
//	// inner trace: ["Bar error with code 7"]
//
//	outer := demo.NewFooError("sync", inner)
//	// outer trace: ["Bar error with code 7", "error arose from Foo during sync"]
//
// Formatters of outer variants therefore describe only the additional
// context. Opaque causes have no trace: their text reaches the trace only if
// the outer formatter embeds it.
//
// Families are normally declared in YAML and generated with cmd/flexgen (see
// packages define and codegen); package dynamic builds them at run time.
package flexerr
