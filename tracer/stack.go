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
	"runtime"
	"slices"

	"dirpx.dev/flexerr/apis"
)

// defaultDepth bounds how many frames are captured per entry.
const defaultDepth = 32

// Frame is one resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Entry is one element of a Stack: the rendered message and the call stack
// observed when it was recorded, most recent call first.
type Entry struct {
	Message string
	Frames  []Frame
}

// Stack is the trace of the Stacks strategy, oldest entry first.
type Stack struct {
	entries []Entry
}

// Entries returns a copy of the entries, oldest first.
func (s Stack) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Messages returns the rendered messages, oldest first.
func (s Stack) Messages() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Message
	}
	return out
}

// Len returns the number of entries.
func (s Stack) Len() int { return len(s.entries) }

// String renders the messages newest first, joined by ": ".
func (s Stack) String() string { return joinNewestFirst(s.Messages()) }

// Error implements error.
func (s Stack) Error() string { return s.String() }

// Format implements fmt.Formatter. %+v prints every entry, oldest first,
// followed by its frames.
func (s Stack) Format(st fmt.State, verb rune) {
	switch {
	case verb == 'v' && st.Flag('+'):
	case verb == 'q':
		_, _ = fmt.Fprintf(st, "%q", s.String())
		return
	default:
		_, _ = io.WriteString(st, s.String())
		return
	}
	for i, e := range s.entries {
		if i > 0 {
			_, _ = io.WriteString(st, "\n")
		}
		_, _ = fmt.Fprintf(st, "%d: %s", i, e.Message)
		for _, fr := range e.Frames {
			_, _ = fmt.Fprintf(st, "\n    %s\n        %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

// Stacks records the call stack alongside every message.
//
// Depth bounds the number of frames per entry (0 means 32). Skip drops that
// many additional frames above the caller of NewMessage / AddMessage, which
// lets wrappers hide themselves.
type Stacks struct {
	Depth int
	Skip  int
}

var _ apis.Tracer[Stack] = Stacks{}

// NewMessage returns a stack holding one entry for detail.
func (st Stacks) NewMessage(detail fmt.Stringer) Stack {
	return Stack{entries: []Entry{st.entry(detail)}}
}

// AddMessage returns a copy of trace with an entry for detail appended.
func (st Stacks) AddMessage(trace Stack, detail fmt.Stringer) Stack {
	return Stack{entries: appendCopy(trace.entries, st.entry(detail))}
}

func (st Stacks) entry(detail fmt.Stringer) Entry {
	return Entry{Message: detail.String(), Frames: capture(st.Skip, st.Depth)}
}

// capture resolves up to depth frames. Skip accounting: runtime.Callers,
// capture, entry and the NewMessage/AddMessage method are always dropped, so
// the first frame is the strategy's caller.
func capture(skip, depth int) []Frame {
	if depth <= 0 {
		depth = defaultDepth
	}
	if skip < 0 {
		skip = 0
	}
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+4, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}
