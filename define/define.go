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

package define

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/reason"
)

// File is one generated Go file worth of error families.
type File struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`

	// Header is an optional comment block (usually a license) emitted above
	// the package clause. Lines are prefixed with "// " unless they already
	// form a comment.
	Header string `yaml:"header,omitempty"`

	// Imports lists extra import paths needed by field and cause types,
	// optionally prefixed by an alias ("pb example.com/api/v1").
	Imports []string `yaml:"imports,omitempty"`

	Families []Family `yaml:"families"`
}

// Family declares one error family: a closed union of variants sharing a
// trace strategy.
type Family struct {
	Name     string    `yaml:"name"`
	Doc      string    `yaml:"doc,omitempty"`
	Tracer   TracerRef `yaml:"tracer,omitempty"`
	Variants []Variant `yaml:"variants"`
}

// Variant is one variant specification.
type Variant struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`

	// Fields are the payload fields in declaration order.
	Fields Fields `yaml:"fields,omitempty"`

	// Cause, when set, adds the reserved Source field and a trailing source
	// argument to the constructor.
	Cause *Cause `yaml:"cause,omitempty"`

	// Format and Args form the formatter: fmt.Sprintf(Format, Args...) with
	// the record bound to e.
	Format string   `yaml:"format"`
	Args   []string `yaml:"args,omitempty"`

	Code   code.Code     `yaml:"code,omitempty"`
	Reason reason.Reason `yaml:"reason,omitempty"`

	// Record and Constructor override the generated record type name
	// (<Name>Subdetail) and constructor name (New<Name>Error).
	Record      string `yaml:"record,omitempty"`
	Constructor string `yaml:"constructor,omitempty"`
}

// Field is one payload field. Type is a Go type expression.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Fields is an ordered field list. In YAML it is written either as a mapping
// ({code: uint32, path: string}, order kept) or as a list of {name, type}.
type Fields []Field

// UnmarshalYAML implements yaml.Unmarshaler.
func (fs *Fields) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		out := make(Fields, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: field %q: type must be a string", v.Line, k.Value)
			}
			out = append(out, Field{Name: k.Value, Type: v.Value})
		}
		*fs = out
		return nil
	case yaml.SequenceNode:
		var list []Field
		if err := n.Decode(&list); err != nil {
			return err
		}
		*fs = list
		return nil
	default:
		return fmt.Errorf("line %d: fields must be a mapping or a list", n.Line)
	}
}

// Cause declares how a variant absorbs its upstream error.
//
// Exactly one of Display and Report is set. Display names a Go type that is
// absorbed opaquely (its value becomes the detail, the trace is seeded).
// Report names either a family declared in the same file or, together with
// Detail, any Go type implementing apis.Source[Detail, T].
type Cause struct {
	Display string `yaml:"display,omitempty"`
	Report  string `yaml:"report,omitempty"`
	Detail  string `yaml:"detail,omitempty"`
}

// IsDisplay reports whether the cause is absorbed opaquely.
func (c *Cause) IsDisplay() bool { return c != nil && c.Display != "" }

// Tracer presets accepted by TracerRef.
const (
	PresetStrings = "strings"
	PresetNone    = "none"
	PresetStack   = "stack"
)

var presets = map[string][2]string{
	PresetStrings: {"tracer.Strings{}", "tracer.History"},
	PresetNone:    {"tracer.Noop{}", "tracer.None"},
	PresetStack:   {"tracer.Stacks{}", "tracer.Stack"},
}

// TracerRef selects a family's trace strategy: a preset name, or a custom
// strategy expression together with its trace type. The zero value means
// PresetStrings.
type TracerRef struct {
	Preset   string `yaml:"-"`
	Strategy string `yaml:"strategy,omitempty"`
	Trace    string `yaml:"trace,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler: a scalar is a preset name, a
// mapping is {strategy, trace}.
func (t *TracerRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*t = TracerRef{Preset: n.Value}
		return nil
	}
	var custom struct {
		Strategy string `yaml:"strategy"`
		Trace    string `yaml:"trace"`
	}
	if err := n.Decode(&custom); err != nil {
		return err
	}
	*t = TracerRef{Strategy: custom.Strategy, Trace: custom.Trace}
	return nil
}

// Resolve returns the strategy expression and trace type of t.
func (t TracerRef) Resolve() (strategy, trace string, err error) {
	if t.Strategy != "" || t.Trace != "" {
		if t.Preset != "" {
			return "", "", fmt.Errorf("%w: both preset %q and a custom strategy", ErrInvalidTracer, t.Preset)
		}
		if t.Strategy == "" || t.Trace == "" {
			return "", "", fmt.Errorf("%w: custom tracer needs strategy and trace", ErrInvalidTracer)
		}
		return t.Strategy, t.Trace, nil
	}
	name := t.Preset
	if name == "" {
		name = PresetStrings
	}
	p, ok := presets[name]
	if !ok {
		return "", "", fmt.Errorf("%w: unknown preset %q", ErrInvalidTracer, t.Preset)
	}
	return p[0], p[1], nil
}

// Family returns the family declared under name, or nil.
func (f *File) Family(name string) *Family {
	for i := range f.Families {
		if f.Families[i].Name == name {
			return &f.Families[i]
		}
	}
	return nil
}

// ReasonFor returns the declared reason of v, or the one derived from the
// family and variant names.
func (v Variant) ReasonFor(family string) (reason.Reason, error) {
	if v.Reason != reason.Empty {
		return v.Reason, nil
	}
	return reason.FromNames(family, v.Name)
}

// CauseTypes resolves the cause of v: arg is the type of the constructor's
// source argument, detail the type stored in the record's Source field.
func (f *File) CauseTypes(family *Family, v Variant) (arg, detail string, err error) {
	c := v.Cause
	switch {
	case c == nil:
		return "", "", nil
	case c.Display != "" && c.Report != "", c.Display == "" && c.Report == "":
		return "", "", fmt.Errorf("%w: exactly one of display and report must be set", ErrInvalidCause)
	case c.Display != "":
		if c.Detail != "" {
			return "", "", fmt.Errorf("%w: detail is only valid with report", ErrInvalidCause)
		}
		return c.Display, c.Display, nil
	case c.Detail != "":
		return c.Report, c.Detail, nil
	}
	upstream := f.Family(c.Report)
	if upstream == nil {
		return "", "", fmt.Errorf("%w: %q is not declared in this file (set detail for external sources)", ErrUnknownFamily, c.Report)
	}
	_, want, terr := family.Tracer.Resolve()
	_, got, uerr := upstream.Tracer.Resolve()
	if terr == nil && uerr == nil && want != got {
		return "", "", fmt.Errorf("%w: %s uses %s, %s uses %s", ErrTraceMismatch, c.Report, got, family.Name, want)
	}
	return upstream.Name, upstream.DetailName(), nil
}
