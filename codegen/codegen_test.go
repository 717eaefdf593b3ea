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

package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/flexerr/define"
)

func demoFile() *define.File {
	return &define.File{
		Package: "demo",
		Families: []define.Family{
			{
				Name: "FooError",
				Variants: []define.Variant{
					{
						Name:   "Bar",
						Fields: define.Fields{{Name: "code", Type: "uint32"}},
						Cause:  &define.Cause{Display: "ExternalError"},
						Format: "Bar error with code %d",
						Args:   []string{"e.Code"},
						Code:   "unavailable",
					},
					{
						Name:   "Baz",
						Fields: define.Fields{{Name: "extra", Type: "string"}},
						Format: "Baz error: %s",
						Args:   []string{"e.Extra"},
					},
				},
			},
			{
				Name: "QuuxError",
				Variants: []define.Variant{{
					Name:   "Foo",
					Fields: define.Fields{{Name: "action", Type: "string"}},
					Cause:  &define.Cause{Report: "FooError"},
					Format: "error arose from Foo during %s",
					Args:   []string{"e.Action"},
				}},
			},
		},
	}
}

func generate(t *testing.T, f *define.File, opts ...Option) (string, *ast.File) {
	t.Helper()
	out, err := Generate(f, opts...)
	require.NoError(t, err)
	parsed, err := parser.ParseFile(token.NewFileSet(), "errors_gen.go", out, parser.ParseComments)
	require.NoError(t, err, string(out))
	return string(out), parsed
}

// topLevel lists type, const, var and function names, methods as Recv.Name.
func topLevel(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if n.Name != "_" {
							names = append(names, n.Name)
						}
					}
				}
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				name = recvName(d.Recv.List[0].Type) + "." + name
			}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func recvName(e ast.Expr) string {
	if s, ok := e.(*ast.StarExpr); ok {
		e = s.X
	}
	if id, ok := e.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func TestGenerate_Demo(t *testing.T) {
	src, f := generate(t, demoFile())

	assert.Equal(t, "demo", f.Name.Name)
	assert.True(t, strings.HasPrefix(src, "// Code generated by flexgen. DO NOT EDIT."))
	assert.True(t, ast.IsGenerated(f))

	names := topLevel(f)
	for _, want := range []string{
		"FooError", "FooErrorDetail", "FooErrorKind", "FooErrorKindBar", "FooErrorKindBaz",
		"FooErrorKind.String", "fooErrorTracer",
		"BarSubdetail", "BarSubdetail.String", "BarSubdetail.Kind", "BarSubdetail.isFooErrorDetail",
		"BarSubdetail.ErrorFamily", "BarSubdetail.ErrorVariant", "BarSubdetail.ErrorCode", "BarSubdetail.ErrorReason",
		"NewBarError", "BazSubdetail", "NewBazError",
		"QuuxError", "QuuxErrorDetail", "QuuxErrorKindFoo", "FooSubdetail", "NewFooError",
	} {
		assert.Contains(t, names, want)
	}

	for _, want := range []string{
		"type FooError = flexerr.Report[FooErrorDetail, tracer.History]",
		"var fooErrorTracer apis.Tracer[tracer.History] = tracer.Strings{}",
		"FooErrorKindBar FooErrorKind = iota",
		"func NewBarError(code uint32, source ExternalError) FooError {",
		"flexerr.DisplayError[tracer.History, ExternalError](source)",
		"return BarSubdetail{Code: code, Source: inner}",
		`return fmt.Sprintf("Bar error with code %d", e.Code)`,
		`func (BarSubdetail) ErrorCode() string { return "unavailable" }`,
		`func (BarSubdetail) ErrorReason() string { return "foo_error.bar" }`,
		`func (BazSubdetail) ErrorCode() string { return "" }`,
		"return flexerr.New[FooErrorDetail, tracer.History](fooErrorTracer, BazSubdetail{Extra: extra})",
		"func NewFooError(action string, source FooError) QuuxError {",
		"flexerr.TraceFrom[QuuxErrorDetail, FooErrorDetail, tracer.History](",
		"Source FooErrorDetail",
		`"dirpx.dev/flexerr/apis"`,
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenerate_NoFieldsNoCause(t *testing.T) {
	src, _ := generate(t, &define.File{
		Package: "p",
		Families: []define.Family{{
			Name:     "E",
			Tracer:   define.TracerRef{Preset: define.PresetNone},
			Variants: []define.Variant{{Name: "Gone", Format: "gone"}},
		}},
	})
	assert.Contains(t, src, "func NewGoneError() E {")
	assert.Contains(t, src, "return flexerr.New[EDetail, tracer.None](eTracer, GoneSubdetail{})")
	assert.Contains(t, src, "var eTracer apis.Tracer[tracer.None] = tracer.Noop{}")
	assert.Contains(t, src, "func (GoneSubdetail) String() string {\n\treturn fmt.Sprintf(\"gone\")\n}")
}

func TestGenerate_FormatEscapesWithoutArgs(t *testing.T) {
	src, _ := generate(t, &define.File{
		Package: "p",
		Families: []define.Family{{
			Name: "E",
			Variants: []define.Variant{
				{Name: "Full", Format: "disk 100%% full"},
				{
					Name:   "Level",
					Fields: define.Fields{{Name: "n", Type: "int"}},
					Format: "disk %d%% full",
					Args:   []string{"e.N"},
				},
			},
		}},
	})
	assert.Contains(t, src, "func (FullSubdetail) String() string {\n\treturn fmt.Sprintf(\"disk 100%% full\")\n}")
	assert.Contains(t, src, "return fmt.Sprintf(\"disk %d%% full\", e.N)")
	assert.NotContains(t, src, "return \"disk 100%% full\"")
}

func TestGenerate_ParamNamesAvoidShadowing(t *testing.T) {
	src, _ := generate(t, &define.File{
		Package: "p",
		Imports: []string{"time"},
		Families: []define.Family{{
			Name: "E",
			Variants: []define.Variant{{
				Name: "V",
				Fields: define.Fields{
					{Name: "type", Type: "string"},
					{Name: "error", Type: "string"},
					{Name: "time", Type: "time.Duration"},
					{Name: "ID", Type: "int"},
				},
				Cause:  &define.Cause{Display: "error"},
				Format: "%s %s %v %d",
				Args:   []string{"e.Type", "e.Error", "e.Time", "e.ID"},
			}},
		}},
	})
	assert.Contains(t, src, "func NewVError(typeArg string, errorArg string, timeArg time.Duration, id int, source error) E {")
	assert.Contains(t, src, "return VSubdetail{Type: typeArg, Error: errorArg, Time: timeArg, ID: id, Source: inner}")
	assert.Contains(t, src, `"time"`)

	src, _ = generate(t, &define.File{
		Package: "p",
		Families: []define.Family{{
			Name: "FooError",
			Variants: []define.Variant{{
				Name:   "Bar",
				Fields: define.Fields{{Name: "fooErrorTracer", Type: "int"}},
				Format: "%d",
				Args:   []string{"e.FooErrorTracer"},
			}},
		}},
	})
	assert.Contains(t, src, "func NewBarError(fooErrorTracerArg int) FooError {")
	assert.Contains(t, src, "(fooErrorTracer, BarSubdetail{FooErrorTracer: fooErrorTracerArg})")
}

func TestGenerate_CustomTracerAndOverrides(t *testing.T) {
	src, f := generate(t, &define.File{
		Package: "p",
		Imports: []string{"example.com/mytrace", "example.com/other"},
		Families: []define.Family{{
			Name:   "E",
			Tracer: define.TracerRef{Strategy: "mytrace.Lines{}", Trace: "mytrace.Log"},
			Variants: []define.Variant{{
				Name:        "V",
				Format:      "v",
				Record:      "VRecord",
				Constructor: "MakeV",
				Cause:       &define.Cause{Report: "other.Err", Detail: "other.Detail"},
			}},
		}},
	}, WithFormatOnly(true))
	names := topLevel(f)
	assert.Contains(t, names, "VRecord")
	assert.Contains(t, names, "MakeV")
	assert.Contains(t, src, "var eTracer apis.Tracer[mytrace.Log] = mytrace.Lines{}")
	assert.Contains(t, src, "func MakeV(source other.Err) E {")
	assert.NotContains(t, src, "dirpx.dev/flexerr/tracer")
}

func TestGenerate_Header(t *testing.T) {
	file := demoFile()
	file.Header = "Copyright 2025 Example\nAll rights reserved."
	src, _ := generate(t, file)
	assert.True(t, strings.HasPrefix(src, "// Copyright 2025 Example\n// All rights reserved.\n\n// Code generated"), src)

	src, _ = generate(t, file, WithHeader("/* replaced */"))
	assert.True(t, strings.HasPrefix(src, "/* replaced */\n\n// Code generated"), src)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(demoFile())
	require.NoError(t, err)
	b, err := Generate(demoFile())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_InvalidFile(t *testing.T) {
	file := demoFile()
	baz := &file.Families[0].Variants[1]
	baz.Fields = append(baz.Fields, define.Field{Name: "source", Type: "int"})
	_, err := Generate(file)
	assert.ErrorIs(t, err, define.ErrReservedField)
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Generate(demoFile(), WithLogger(log), WithFilename("demo_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "family=FooError")
	assert.Contains(t, buf.String(), "file=demo_gen.go")
	assert.NotContains(t, buf.String(), "custom code")
}

func TestGenerate_WarnsOnCustomCode(t *testing.T) {
	file := demoFile()
	file.Families[0].Variants[1].Code = "quota_zone"

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	_, err := Generate(file, WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "variant=Baz code=quota_zone")
}

// The checked-in demo package is generated from its YAML declaration.
func TestGenerate_MatchesDemoPackage(t *testing.T) {
	decl, err := define.LoadFile("../internal/demo/errors.yaml")
	require.NoError(t, err)
	_, got := generate(t, decl)

	want, err := parser.ParseFile(token.NewFileSet(), "../internal/demo/errors_gen.go", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, topLevel(want), topLevel(got))
}
