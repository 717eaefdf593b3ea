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
	"strconv"
	"strings"
	"text/template"
)

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"comment": comment,
	"quote":   strconv.Quote,
	"join":    strings.Join,
}).Parse(fileText))

const fileText = `
{{- if .Header}}{{.Header}}

{{end -}}
// Code generated by flexgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range $f := .Families}}
{{if $f.Doc}}{{comment $f.Doc}}{{else}}// {{$f.Name}} is a report of the {{$f.Name}} family.{{end}}
type {{$f.Name}} = flexerr.Report[{{$f.Detail}}, {{$f.Trace}}]

// {{$f.Detail}} is implemented by the variant records of {{$f.Name}}.
type {{$f.Detail}} interface {
	fmt.Stringer
	Kind() {{$f.Kind}}
	{{$f.Marker}}()
}

// {{$f.Kind}} tags the variants of {{$f.Name}} in declaration order.
type {{$f.Kind}} int

const (
{{- range $i, $v := $f.Variants}}
	{{$v.KindConst}}{{if eq $i 0}} {{$f.Kind}} = iota{{end}}
{{- end}}
)

// String returns the variant name.
func (k {{$f.Kind}}) String() string {
	switch k {
{{- range $f.Variants}}
	case {{.KindConst}}:
		return {{quote .Name}}
{{- end}}
	}
	return fmt.Sprintf("{{$f.Kind}}(%d)", int(k))
}

var {{$f.TracerVar}} apis.Tracer[{{$f.Trace}}] = {{$f.Strategy}}
{{range $v := $f.Variants}}
{{if $v.Doc}}{{comment $v.Doc}}{{else}}// {{$v.Record}} is the {{$v.Name}} variant of {{$f.Name}}.{{end}}
type {{$v.Record}} struct {
{{- range $v.Fields}}
	{{.GoName}} {{.Type}}
{{- end}}
{{- if $v.HasCause}}
	Source {{$v.CauseDetail}}
{{- end}}
}

var _ {{$f.Detail}} = {{$v.Record}}{}

func ({{$v.Record}}) {{$f.Marker}}() {}

// Kind returns {{$v.KindConst}}.
func ({{$v.Record}}) Kind() {{$f.Kind}} { return {{$v.KindConst}} }

// ErrorFamily returns {{quote $f.Name}}.
func ({{$v.Record}}) ErrorFamily() string { return {{quote $f.Name}} }

// ErrorVariant returns {{quote $v.Name}}.
func ({{$v.Record}}) ErrorVariant() string { return {{quote $v.Name}} }

// ErrorCode returns {{quote $v.Code}}.
func ({{$v.Record}}) ErrorCode() string { return {{quote $v.Code}} }

// ErrorReason returns {{quote $v.Reason}}.
func ({{$v.Record}}) ErrorReason() string { return {{quote $v.Reason}} }
{{if $v.Args}}
func (e {{$v.Record}}) String() string {
	return fmt.Sprintf({{$v.Format}}, {{join $v.Args ", "}})
}
{{else}}
func ({{$v.Record}}) String() string {
	return fmt.Sprintf({{$v.Format}})
}
{{end}}
// {{$v.Constructor}} reports a {{$v.Name}}{{if $v.HasCause}} caused by source{{end}}.
func {{$v.Constructor}}({{$v.Params}}) {{$f.Name}} {
{{- if not $v.HasCause}}
	return flexerr.New[{{$f.Detail}}, {{$f.Trace}}]({{$f.TracerVar}}, {{$v.Record}}{ {{- $v.Inits -}} })
{{- else}}
	return flexerr.TraceFrom[{{$f.Detail}}, {{$v.CauseDetail}}, {{$f.Trace}}](
		{{$f.TracerVar}},
		{{if $v.Display}}flexerr.DisplayError[{{$f.Trace}}, {{$v.CauseDetail}}](source){{else}}source{{end}},
		func(inner {{$v.CauseDetail}}) {{$f.Detail}} {
			return {{$v.Record}}{ {{- $v.Inits}}{{if $v.Inits}}, {{end}}Source: inner}
		},
	)
{{- end}}
}
{{end}}
{{- end}}
`
