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

// Package codegen turns a validated define.File into Go source.
//
// For every family F the generated file holds:
//
//   - the report type, an alias: type F = flexerr.Report[FDetail, T];
//   - the sealed detail interface FDetail and the tag enum FKind;
//   - the family strategy variable fTracer;
//   - one record type per variant (BarSubdetail) implementing FDetail and
//     the classification methods read by transport adapters;
//   - one constructor per variant (NewBarError) that builds the report with
//     flexerr.New, or with flexerr.TraceFrom when a cause is declared.
//
// Output is formatted and its imports grouped with golang.org/x/tools/imports.
package codegen
