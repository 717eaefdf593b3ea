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

// Package apis defines the public Go-level contracts of flexerr.
//
// Two capabilities sit at the bottom of the framework:
//
//   - Tracer: a pluggable strategy that creates and extends a trace, the
//     human-readable history of "what led to what";
//   - Source: anything that can be absorbed as the cause of a new report,
//     decomposed into a structured detail and, optionally, its own trace.
//
// The rest of the package holds small interfaces and view types that
// transport adapters (HTTP, gRPC) and loggers target, so that they never have
// to know the concrete, generated error families.
//
// This package must remain lightweight: interfaces and tiny value types only.
package apis
