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

package demo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/flexerr/adapter"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/httpx"
	"dirpx.dev/flexerr/mapper"
	"dirpx.dev/flexerr/reason"
)

func TestScenario_TraceGrowsAcrossFamilies(t *testing.T) {
	e1 := NewBarError(7, ExternalError{Msg: "disk on fire"})
	assert.Equal(t, []string{"Bar error with code 7"}, e1.Trace().Messages())

	e2 := NewFooError("sync", e1)
	assert.Equal(t, []string{
		"Bar error with code 7",
		"error arose from Foo during sync",
	}, e2.Trace().Messages())
	assert.Equal(t, "error arose from Foo during sync: Bar error with code 7", e2.Error())

	assert.Equal(t, []string{"Bar error with code 7"}, e1.Trace().Messages(), "the cause keeps its own trace")
}

func TestScenario_SourceIsRecoverable(t *testing.T) {
	e2 := NewFooError("sync", NewBarError(7, ExternalError{Msg: "disk on fire"}))

	foo, ok := e2.Detail().(FooSubdetail)
	require.True(t, ok)
	assert.Equal(t, "sync", foo.Action)

	switch src := foo.Source.(type) {
	case BarSubdetail:
		assert.Equal(t, uint32(7), src.Code)
		assert.Equal(t, "disk on fire", src.Source.Msg)
	default:
		t.Fatalf("unexpected source %T", src)
	}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, FooErrorKindBar, NewBarError(1, ExternalError{}).Detail().Kind())
	assert.Equal(t, FooErrorKindBaz, NewBazError("x").Detail().Kind())
	assert.Equal(t, QuuxErrorKindFoo, NewFooError("a", NewBazError("x")).Detail().Kind())

	assert.Equal(t, "Bar", FooErrorKindBar.String())
	assert.Equal(t, "Baz", FooErrorKindBaz.String())
	assert.Equal(t, "Foo", QuuxErrorKindFoo.String())
	assert.Equal(t, "FooErrorKind(9)", FooErrorKind(9).String())
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewBazError("bad input"))

	var fe FooError
	require.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, FooErrorKindBaz, fe.Detail().Kind())

	var qe QuuxError
	assert.False(t, errors.As(wrapped, &qe))
}

func TestClassification(t *testing.T) {
	e2 := NewFooError("sync", NewBarError(7, ExternalError{Msg: "x"}))

	c, r := adapter.Classify(e2)
	assert.Equal(t, code.DependencyFailed, c)
	assert.Equal(t, reason.Reason("quux.foo_failed"), r)

	c, r = adapter.Classify(NewBazError("x"))
	assert.Equal(t, code.Invalid, c)
	assert.Equal(t, reason.Reason("foo_error.baz"), r)
}

func TestHTTPRoundTrip(t *testing.T) {
	e2 := NewFooError("sync", NewBarError(7, ExternalError{Msg: "x"}))
	w := httpx.Writer{Mapper: mapper.Default}

	b, err := httpx.Marshal(w.Body(e2, adapter.Resolve(mapper.Default, e2)))
	require.NoError(t, err)

	view, err := httpx.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, "QuuxError", view.Family)
	assert.Equal(t, "Foo", view.Variant)
	assert.Equal(t, "dependency_failed", view.Code)
	assert.Equal(t, e2.TraceMessages(), view.Trace)
}
