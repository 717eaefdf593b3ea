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

package apis

import "fmt"

// Tracer is the strategy that represents and grows a trace of type T.
//
// A trace is an appendable history of rendered messages. The strategy decides
// what an entry looks like (a plain string, a string plus a captured stack,
// nothing at all) but the contract is always the same two operations:
//
//   - NewMessage seeds a fresh trace whose history holds exactly one message,
//     the rendering of detail;
//   - AddMessage returns a trace whose history is the history of trace with
//     the rendering of detail appended.
//
// Implementations MUST NOT fail and MUST NOT mutate the trace they extend:
// the returned value owns its history, and the argument stays observable
// unchanged by whoever still holds it. Strategies are expected to be
// stateless values so they can be shared freely between goroutines.
type Tracer[T any] interface {
	// NewMessage creates a trace seeded with the rendering of detail.
	NewMessage(detail fmt.Stringer) T

	// AddMessage extends trace with the rendering of detail.
	AddMessage(trace T, detail fmt.Stringer) T
}

// Source is implemented by values that can be absorbed as the cause of a new
// report.
//
// ErrorDetails decomposes the value into its structured detail of type D and,
// when the value already carries a trace of type T (for example, it is itself
// a report), that trace with ok set to true. Values without a trace return
// the zero T and ok == false.
//
// Two unrelated error families interoperate through this seam alone: a
// generated family accepts any Source whose trace type matches its own.
type Source[D, T any] interface {
	ErrorDetails() (detail D, trace T, ok bool)
}
