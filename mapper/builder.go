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

package mapper

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/mapper/internal/segmenttrie"
	"dirpx.dev/flexerr/reason"
)

type prefixRule[V any] struct {
	prefix string
	val    V
}

// rules collects the configuration of one transport.
type rules[V any] struct {
	defaults  map[code.Code]V
	overrides map[code.Code]V
	prefixes  map[code.Code][]prefixRule[V]
	fallback  V
}

func newRules[V any](fallback V) rules[V] {
	return rules[V]{
		defaults:  make(map[code.Code]V, len(defaults)),
		overrides: make(map[code.Code]V),
		prefixes:  make(map[code.Code][]prefixRule[V]),
		fallback:  fallback,
	}
}

func (r *rules[V]) addPrefix(c code.Code, prefix string, val V) {
	r.prefixes[c] = append(r.prefixes[c], prefixRule[V]{prefix: prefix, val: val})
}

// compile freezes r into a table. Maps are copied so the builder can be
// dropped or reused.
func (r *rules[V]) compile(transport string) (table[V], error) {
	t := table[V]{
		defaults:  maps.Clone(r.defaults),
		overrides: maps.Clone(r.overrides),
		tries:     make(map[code.Code]*segmenttrie.Trie[V], len(r.prefixes)),
		fallback:  r.fallback,
	}
	for c, list := range r.prefixes {
		trie := segmenttrie.New[V]()
		for _, rule := range list {
			p := reason.Normalize(rule.prefix)
			if err := trie.Insert(p, rule.val); err != nil {
				return table[V]{}, fmt.Errorf("mapper: %s prefix %q for code %q: %w", transport, rule.prefix, c, err)
			}
		}
		t.tries[c] = trie
	}
	return t, nil
}

type builder struct {
	http rules[int]
	grpc rules[codes.Code]
}

func newBuilder() *builder {
	b := &builder{
		http: newRules(http.StatusInternalServerError),
		grpc: newRules(codes.Internal),
	}
	for c, st := range defaults {
		b.http.defaults[c] = st.HTTP
		b.grpc.defaults[c] = st.GRPC
	}
	return b
}

// Tier names reported by Explain.
const (
	tierOverride = "override"
	tierPrefix   = "prefix"
	tierDefault  = "default"
	tierFallback = "fallback"
)

// table is the frozen, read-only form of rules.
type table[V any] struct {
	defaults  map[code.Code]V
	overrides map[code.Code]V
	tries     map[code.Code]*segmenttrie.Trie[V]
	fallback  V
}

func (t *table[V]) resolve(c code.Code, r reason.Reason) (val V, tier, pattern string) {
	if v, ok := t.overrides[c]; ok {
		return v, tierOverride, ""
	}
	if v, p, ok := t.tries[c].Match(string(r)); ok {
		return v, tierPrefix, p
	}
	if v, ok := t.defaults[c]; ok {
		return v, tierDefault, ""
	}
	return t.fallback, tierFallback, ""
}

// explain renders one Explain line, e.g.
// `http: source=prefix pattern="storage.pg" -> 503`.
func explain(transport, tier, pattern, val string) string {
	var b strings.Builder
	b.WriteString(transport)
	b.WriteString(": source=")
	b.WriteString(tier)
	if pattern != "" {
		fmt.Fprintf(&b, " pattern=%q", pattern)
	}
	b.WriteString(" -> ")
	b.WriteString(val)
	return b.String()
}
