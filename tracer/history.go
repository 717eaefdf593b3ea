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

package tracer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"dirpx.dev/flexerr/apis"
)

// Default is the strategy used by families that do not choose one.
var Default apis.Tracer[History] = Strings{}

// History is the trace of the Strings strategy: rendered messages, oldest
// first. The zero value is an empty history.
type History struct {
	msgs []string
}

// Messages returns a copy of the history, oldest first.
func (h History) Messages() []string {
	return slices.Clone(h.msgs)
}

// Len returns the number of messages.
func (h History) Len() int { return len(h.msgs) }

// String renders the history newest first, joined by ": ".
func (h History) String() string {
	return joinNewestFirst(h.msgs)
}

// Error implements error, so a History can be the cause a report unwraps to.
func (h History) Error() string { return h.String() }

// Format implements fmt.Formatter. %+v prints one message per line, oldest
// first, each prefixed with its position in the history.
func (h History) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		for i, m := range h.msgs {
			if i > 0 {
				_, _ = io.WriteString(s, "\n")
			}
			_, _ = fmt.Fprintf(s, "%d: %s", i, m)
		}
	case verb == 'q':
		_, _ = fmt.Fprintf(s, "%q", h.String())
	default:
		_, _ = io.WriteString(s, h.String())
	}
}

// Strings is the default strategy: every entry is the rendered message.
type Strings struct{}

var _ apis.Tracer[History] = Strings{}

// NewMessage returns a history holding the rendering of detail.
func (Strings) NewMessage(detail fmt.Stringer) History {
	return History{msgs: []string{detail.String()}}
}

// AddMessage returns a copy of trace with the rendering of detail appended.
func (Strings) AddMessage(trace History, detail fmt.Stringer) History {
	return History{msgs: appendCopy(trace.msgs, detail.String())}
}

// appendCopy appends v to a fresh copy of s, never to s's backing array.
func appendCopy[E any](s []E, v E) []E {
	out := make([]E, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func joinNewestFirst(msgs []string) string {
	switch len(msgs) {
	case 0:
		return ""
	case 1:
		return msgs[0]
	}
	var b strings.Builder
	for i := len(msgs) - 1; i >= 0; i-- {
		b.WriteString(msgs[i])
		if i > 0 {
			b.WriteString(": ")
		}
	}
	return b.String()
}
