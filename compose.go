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

package flexerr

import (
	"fmt"

	"dirpx.dev/flexerr/apis"
)

// New builds a report without a cause. The trace is always seeded fresh with
// the rendering of detail.
func New[D fmt.Stringer, T any](tr apis.Tracer[T], detail D) Report[D, T] {
	return Report[D, T]{detail: detail, trace: tr.NewMessage(detail)}
}

// TraceFrom builds a report that absorbs source as its cause.
//
// The algorithm:
//
//  1. Decompose source into its detail and, possibly, its trace.
//  2. Wrap the inner detail into the outer detail with cont.
//  3. If source had a trace, extend it with the outer detail; the inner
//     message is already part of that history and is not repeated.
//     Otherwise seed a fresh trace from the outer detail.
//
// TraceFrom never fails and never mutates source.
func TraceFrom[D fmt.Stringer, SD, T any](tr apis.Tracer[T], source apis.Source[SD, T], cont func(SD) D) Report[D, T] {
	inner, trace, ok := source.ErrorDetails()
	outer := cont(inner)
	if ok {
		return Report[D, T]{detail: outer, trace: tr.AddMessage(trace, outer)}
	}
	return Report[D, T]{detail: outer, trace: tr.NewMessage(outer)}
}

// DisplayError adapts a foreign value as an opaque cause: its detail is the
// value itself and it carries no trace of type T.
//
// Typical use inside a constructor:
//
//	flexerr.TraceFrom(tr, flexerr.DisplayError[tracer.History](err), wrap)
func DisplayError[T, E any](err E) apis.Source[E, T] {
	return displaySource[E, T]{err: err}
}

type displaySource[E, T any] struct {
	err E
}

func (s displaySource[E, T]) ErrorDetails() (E, T, bool) {
	var zero T
	return s.err, zero, false
}
