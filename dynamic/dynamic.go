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

package dynamic

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/flexerr"
	"dirpx.dev/flexerr/apis"
	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/define"
	"dirpx.dev/flexerr/reason"
)

var (
	// ErrArity is returned when a constructor gets a wrong number of values.
	ErrArity = errors.New("dynamic: wrong number of values")

	// ErrCause is returned when a variant without a cause is given one, or a
	// variant with a cause is built without one.
	ErrCause = errors.New("dynamic: cause mismatch")

	// ErrUnknownVariant is returned by Family.Constructor for names the
	// family does not declare.
	ErrUnknownVariant = errors.New("dynamic: unknown variant")
)

// Variant is one variant specification.
type Variant struct {
	Name   string
	Fields []string
	Cause  bool

	// Format renders a record of this variant. Required.
	Format func(Record) string

	// Code is optional. Reason defaults to one derived from the family and
	// variant names.
	Code   code.Code
	Reason reason.Reason
}

// meta is the part of a family that records point to.
type meta struct {
	name     string
	variants []Variant
	fields   []map[string]int
}

// Family is a closed set of variants sharing the trace strategy of type T.
// It is immutable and safe for concurrent use.
type Family[T any] struct {
	meta   *meta
	tracer apis.Tracer[T]
	index  map[string]int
}

// New validates variants and builds a family. Validation uses the same
// rules as generated families; every problem is reported, joined.
func New[T any](name string, tr apis.Tracer[T], variants ...Variant) (*Family[T], error) {
	shapes := make([]define.Shape, len(variants))
	for i, v := range variants {
		shapes[i] = define.Shape{Name: v.Name, Fields: v.Fields, HasCause: v.Cause}
	}
	errs := []error{define.CheckShapes(name, shapes)}
	if tr == nil {
		errs = append(errs, &define.Error{Family: name, Err: define.ErrInvalidTracer})
	}

	m := &meta{name: name, variants: slices.Clone(variants), fields: make([]map[string]int, len(variants))}
	index := make(map[string]int, len(variants))
	for i := range m.variants {
		v := &m.variants[i]
		v.Fields = slices.Clone(v.Fields)
		if v.Format == nil {
			errs = append(errs, &define.Error{Family: name, Variant: v.Name, Err: define.ErrMissingFormat})
		}
		if v.Code != code.Empty {
			if err := code.Validate(v.Code); err != nil {
				errs = append(errs, &define.Error{Family: name, Variant: v.Name, Err: fmt.Errorf("%w: %w", define.ErrInvalidClassification, err)})
			}
		}
		r, err := define.Variant{Name: v.Name, Reason: v.Reason}.ReasonFor(name)
		if err == nil {
			err = reason.Validate(r)
		}
		if err != nil {
			errs = append(errs, &define.Error{Family: name, Variant: v.Name, Err: fmt.Errorf("%w: %w", define.ErrInvalidClassification, err)})
		}
		v.Reason = r

		m.fields[i] = make(map[string]int, len(v.Fields))
		for j, f := range v.Fields {
			m.fields[i][f] = j
		}
		index[v.Name] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Family[T]{meta: m, tracer: tr, index: index}, nil
}

// Name returns the family name.
func (f *Family[T]) Name() string { return f.meta.name }

// Variants returns the variant names in declaration order.
func (f *Family[T]) Variants() []string {
	out := make([]string, len(f.meta.variants))
	for i, v := range f.meta.variants {
		out[i] = v.Name
	}
	return out
}

// Tracer returns the strategy of the family.
func (f *Family[T]) Tracer() apis.Tracer[T] { return f.tracer }

// Constructor returns the constructor of the named variant.
func (f *Family[T]) Constructor(name string) (Constructor[T], error) {
	tag, ok := f.index[name]
	if !ok {
		return Constructor[T]{}, fmt.Errorf("%w: %s.%s", ErrUnknownVariant, f.meta.name, name)
	}
	return Constructor[T]{family: f, tag: tag}, nil
}

// Constructor builds reports of one variant.
type Constructor[T any] struct {
	family *Family[T]
	tag    int
}

// Variant returns the name of the variant built by c.
func (c Constructor[T]) Variant() string { return c.family.meta.variants[c.tag].Name }

// New builds a report from field values given in declaration order. It
// fails with ErrCause for variants that declare a cause.
func (c Constructor[T]) New(values ...any) (flexerr.Report[Record, T], error) {
	rec, err := c.record(false, values)
	if err != nil {
		return flexerr.Report[Record, T]{}, err
	}
	return flexerr.New(c.family.tracer, rec), nil
}

// WrapError builds a report absorbing err opaquely: err becomes the record's
// source and the trace is seeded.
func (c Constructor[T]) WrapError(err error, values ...any) (flexerr.Report[Record, T], error) {
	return Wrap(c, flexerr.DisplayError[T](err), values...)
}

// Wrap builds a report of the variant of c caused by source, extending the
// trace of source when it has one. It fails with ErrCause for variants that
// declare no cause.
func Wrap[D, T any](c Constructor[T], source apis.Source[D, T], values ...any) (flexerr.Report[Record, T], error) {
	rec, err := c.record(true, values)
	if err != nil {
		return flexerr.Report[Record, T]{}, err
	}
	return flexerr.TraceFrom(c.family.tracer, source, func(detail D) Record {
		rec.source, rec.hasSource = detail, true
		return rec
	}), nil
}

func (c Constructor[T]) record(withCause bool, values []any) (Record, error) {
	v := c.family.meta.variants[c.tag]
	if v.Cause != withCause {
		if v.Cause {
			return Record{}, fmt.Errorf("%w: %s.%s needs a source", ErrCause, c.family.meta.name, v.Name)
		}
		return Record{}, fmt.Errorf("%w: %s.%s takes no source", ErrCause, c.family.meta.name, v.Name)
	}
	if len(values) != len(v.Fields) {
		return Record{}, fmt.Errorf("%w: %s.%s takes %d, got %d", ErrArity, c.family.meta.name, v.Name, len(v.Fields), len(values))
	}
	return Record{meta: c.family.meta, tag: c.tag, values: slices.Clone(values)}, nil
}
