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
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/reason"
)

// Shape is the part of a variant that both generation strategies check the
// same way: its name, its field names and whether it declares a cause.
type Shape struct {
	Name     string
	Fields   []string
	HasCause bool
}

// CheckShapes validates the names of a family and its variants. Every
// problem found is returned, joined with errors.Join.
func CheckShapes(family string, shapes []Shape) error {
	var errs []error
	add := func(variant, field string, err error) {
		errs = append(errs, &Error{Family: family, Variant: variant, Field: field, Err: err})
	}

	if !IsIdent(family) || !token.IsExported(family) {
		add("", "", fmt.Errorf("%w: family name %q must be an exported identifier", ErrInvalidName, family))
	}
	if len(shapes) == 0 {
		add("", "", ErrEmptyFamily)
	}

	variants := make(map[string]bool, len(shapes))
	for _, s := range shapes {
		switch {
		case !IsIdent(s.Name) || !token.IsExported(s.Name):
			add(s.Name, "", fmt.Errorf("%w: variant name %q must be an exported identifier", ErrInvalidName, s.Name))
		case variants[s.Name]:
			add(s.Name, "", ErrDuplicateVariant)
		}
		variants[s.Name] = true

		fields := make(map[string]bool, len(s.Fields))
		for _, name := range s.Fields {
			switch {
			case !IsIdent(Exported(name)):
				add(s.Name, name, fmt.Errorf("%w: field name %q is not an identifier", ErrInvalidName, name))
				continue
			case IsReservedField(name):
				add(s.Name, name, fmt.Errorf("%w: %s", ErrReservedField, Exported(name)))
				continue
			case fields[Exported(name)]:
				add(s.Name, name, ErrDuplicateField)
			}
			fields[Exported(name)] = true
		}
	}
	return errors.Join(errs...)
}

// Validate checks f and returns every problem found, joined with
// errors.Join. A nil error means f can be generated.
func (f *File) Validate() error {
	var errs []error
	at := func(fam, variant, field string, err error) {
		errs = append(errs, &Error{Family: fam, Variant: variant, Field: field, Err: err})
	}

	if !IsIdent(f.Package) {
		at("", "", "", fmt.Errorf("%w: package name %q", ErrInvalidName, f.Package))
	}
	for _, imp := range f.Imports {
		if _, _, err := SplitImport(imp); err != nil {
			at("", "", "", err)
		}
	}

	// Every generated top-level identifier and who owns it.
	owners := make(map[string]string)
	claim := func(fam, variant, name string) {
		if prev, ok := owners[name]; ok {
			at(fam, variant, "", fmt.Errorf("%w: %s is also generated for %s", ErrNameCollision, name, prev))
			return
		}
		owner := fam
		if variant != "" {
			owner += "." + variant
		}
		owners[name] = owner
	}

	families := make(map[string]bool, len(f.Families))
	for i := range f.Families {
		fam := &f.Families[i]
		if families[fam.Name] {
			at(fam.Name, "", "", ErrDuplicateFamily)
			continue
		}
		families[fam.Name] = true

		shapes := make([]Shape, len(fam.Variants))
		for j, v := range fam.Variants {
			names := make([]string, len(v.Fields))
			for k, fld := range v.Fields {
				names[k] = fld.Name
			}
			shapes[j] = Shape{Name: v.Name, Fields: names, HasCause: v.Cause != nil}
		}
		if err := CheckShapes(fam.Name, shapes); err != nil {
			errs = append(errs, err)
		}

		if strategy, trace, err := fam.Tracer.Resolve(); err != nil {
			at(fam.Name, "", "", err)
		} else {
			if err := checkExpr(strategy); err != nil {
				at(fam.Name, "", "", fmt.Errorf("tracer strategy: %w", err))
			}
			if err := checkType(trace); err != nil {
				at(fam.Name, "", "", fmt.Errorf("tracer trace: %w", err))
			}
		}

		claim(fam.Name, "", fam.Name)
		claim(fam.Name, "", fam.DetailName())
		claim(fam.Name, "", fam.KindName())
		claim(fam.Name, "", fam.TracerVar())

		for _, v := range fam.Variants {
			errs = append(errs, f.validateVariant(fam, v)...)
			claim(fam.Name, v.Name, fam.KindConst(v))
			claim(fam.Name, v.Name, v.RecordName())
			claim(fam.Name, v.Name, v.ConstructorName())
		}
	}
	return errors.Join(errs...)
}

func (f *File) validateVariant(fam *Family, v Variant) []error {
	var errs []error
	at := func(field string, err error) {
		errs = append(errs, &Error{Family: fam.Name, Variant: v.Name, Field: field, Err: err})
	}

	for _, fld := range v.Fields {
		if err := checkType(fld.Type); err != nil {
			at(fld.Name, err)
		}
	}
	if v.Format == "" {
		at("", ErrMissingFormat)
	}
	for _, a := range v.Args {
		if err := checkExpr(a); err != nil {
			at("", fmt.Errorf("format argument: %w", err))
		}
	}
	if v.Record != "" && !IsIdent(v.Record) {
		at("", fmt.Errorf("%w: record %q", ErrInvalidName, v.Record))
	}
	if v.Constructor != "" && !IsIdent(v.Constructor) {
		at("", fmt.Errorf("%w: constructor %q", ErrInvalidName, v.Constructor))
	}

	if v.Cause != nil {
		arg, detail, err := f.CauseTypes(fam, v)
		if err != nil {
			at("", err)
		} else {
			if err := checkType(arg); err != nil {
				at("", fmt.Errorf("cause: %w", err))
			}
			if detail != arg {
				if err := checkType(detail); err != nil {
					at("", fmt.Errorf("cause detail: %w", err))
				}
			}
		}
	}

	if v.Code != code.Empty {
		if err := code.Validate(v.Code); err != nil {
			at("", fmt.Errorf("%w: %w", ErrInvalidClassification, err))
		}
	}
	r, err := v.ReasonFor(fam.Name)
	if err == nil && r != reason.Empty {
		err = reason.Validate(r)
	}
	if err != nil {
		at("", fmt.Errorf("%w: %w", ErrInvalidClassification, err))
	}
	return errs
}

// SplitImport parses an import entry, "path" or "alias path", where path may
// be quoted.
func SplitImport(s string) (alias, path string, err error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		path = parts[0]
	case 2:
		alias, path = parts[0], parts[1]
		if !IsIdent(alias) && alias != "_" && alias != "." {
			return "", "", fmt.Errorf("%w: import alias %q", ErrInvalidName, alias)
		}
	default:
		return "", "", fmt.Errorf("%w: import %q", ErrInvalidName, s)
	}
	if unq, uerr := strconv.Unquote(path); uerr == nil {
		path = unq
	}
	if path == "" || strings.ContainsAny(path, "\" \t") {
		return "", "", fmt.Errorf("%w: import path %q", ErrInvalidName, s)
	}
	return alias, path, nil
}

func checkExpr(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidExpr)
	}
	if _, err := parser.ParseExpr(s); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidExpr, s, err)
	}
	return nil
}

func checkType(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidType)
	}
	e, err := parser.ParseExpr(s)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidType, s, err)
	}
	if !isTypeExpr(e) {
		return fmt.Errorf("%w: %q is not a type", ErrInvalidType, s)
	}
	return nil
}

func isTypeExpr(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident, *ast.ArrayType, *ast.MapType, *ast.ChanType,
		*ast.FuncType, *ast.InterfaceType, *ast.StructType:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(t.X)
	case *ast.ParenExpr:
		return isTypeExpr(t.X)
	case *ast.IndexExpr:
		return isTypeExpr(t.X) && isTypeExpr(t.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(t.X) {
			return false
		}
		for _, ix := range t.Indices {
			if !isTypeExpr(ix) {
				return false
			}
		}
		return true
	}
	return false
}
