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

// Package segmenttrie indexes dot-separated reason prefixes for
// longest-prefix matching. A "*" segment matches exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned for an empty prefix, an empty or malformed
// segment, or a prefix made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

const wildcard = "*"

// Trie maps reason prefixes to values. It is not safe for concurrent
// Insert; once built, Match may be called from any goroutine.
type Trie[V any] struct {
	root node[V]
}

type node[V any] struct {
	children map[string]*node[V]
	set      bool
	val      V
	pattern  string
}

// New returns an empty trie.
func New[V any]() *Trie[V] { return &Trie[V]{} }

// Insert associates val with prefix, replacing any previous value.
func (t *Trie[V]) Insert(prefix string, val V) error {
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := &t.root
	for _, s := range segs {
		next, ok := n.children[s]
		if !ok {
			if n.children == nil {
				n.children = make(map[string]*node[V])
			}
			next = &node[V]{}
			n.children[s] = next
		}
		n = next
	}
	n.set, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix of reason, and the prefix as
// it was inserted. At equal depth a concrete segment beats a wildcard. A
// malformed reason matches nothing.
func (t *Trie[V]) Match(reason string) (val V, pattern string, ok bool) {
	if t == nil || reason == "" {
		return val, "", false
	}
	segs := strings.Split(reason, ".")
	for _, s := range segs {
		if !validSegment(s) {
			return val, "", false
		}
	}

	best := -1
	var walk func(n *node[V], depth int)
	walk = func(n *node[V], depth int) {
		if n.set && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if depth == len(segs) {
			return
		}
		if next, found := n.children[segs[depth]]; found {
			walk(next, depth+1)
		}
		if next, found := n.children[wildcard]; found {
			walk(next, depth+1)
		}
	}
	walk(&t.root, 0)
	return val, pattern, best > 0
}

// validSegment reports whether s matches [a-z][a-z0-9_]*.
func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
