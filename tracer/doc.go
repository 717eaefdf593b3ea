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

// Package tracer provides the built-in trace strategies.
//
// A strategy implements apis.Tracer for one trace type:
//
//	+-----------+---------+--------------------------------------------+
//	| Strategy  | Trace   | Entry                                      |
//	+-----------+---------+--------------------------------------------+
//	| Noop      | None    | nothing; zero overhead                     |
//	| Strings   | History | the rendered message                       |
//	| Stacks    | Stack   | the rendered message and the call stack    |
//	+-----------+---------+--------------------------------------------+
//
// Every history is kept oldest first: the message of the innermost cause is
// at index 0 and the outermost context is last. Rendering with Error or %v
// walks the history backwards and joins messages with ": ", the usual Go
// "outer: inner" convention; %+v prints one entry per line, oldest first.
//
// Traces are immutable values. Extending a trace copies its history, so a
// report absorbed as a cause keeps rendering exactly as before.
package tracer
