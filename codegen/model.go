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
	"go/token"
	"go/types"
	"path"
	"strconv"
	"strings"

	"dirpx.dev/flexerr/define"
)

const (
	flexerrPath = "dirpx.dev/flexerr"
	apisPath    = "dirpx.dev/flexerr/apis"
	tracerPath  = "dirpx.dev/flexerr/tracer"
)

type fileModel struct {
	Header   string
	Package  string
	Imports  []string
	Families []familyModel
}

type familyModel struct {
	Name      string
	Doc       string
	Detail    string
	Kind      string
	Marker    string
	TracerVar string
	Strategy  string
	Trace     string
	Variants  []variantModel
}

type variantModel struct {
	Name        string
	Doc         string
	Record      string
	Constructor string
	KindConst   string
	Code        string
	Reason      string
	Format      string
	Args        []string
	Fields      []fieldModel
	Params      string
	Inits       string
	HasCause    bool
	Display     bool
	CauseArg    string
	CauseDetail string
}

type fieldModel struct {
	GoName string
	Type   string
	Param  string
}

// build assumes f has been validated.
func build(f *define.File, header string) (*fileModel, error) {
	m := &fileModel{
		Header:  headerComment(header),
		Package: f.Package,
	}

	taken := reservedParams()
	usesTracer := false
	for _, imp := range f.Imports {
		alias, p, err := define.SplitImport(imp)
		if err != nil {
			return nil, err
		}
		taken[importName(alias, p)] = true
		m.Imports = append(m.Imports, importSpec(alias, p))
	}

	for i := range f.Families {
		fam := &f.Families[i]
		strategy, trace, err := fam.Tracer.Resolve()
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(strategy, "tracer.") || strings.HasPrefix(trace, "tracer.") {
			usesTracer = true
		}
		fm := familyModel{
			Name:      fam.Name,
			Doc:       fam.Doc,
			Detail:    fam.DetailName(),
			Kind:      fam.KindName(),
			Marker:    fam.MarkerMethod(),
			TracerVar: fam.TracerVar(),
			Strategy:  strategy,
			Trace:     trace,
		}
		for _, v := range fam.Variants {
			vm, err := buildVariant(f, fam, v, taken)
			if err != nil {
				return nil, err
			}
			fm.Variants = append(fm.Variants, vm)
		}
		m.Families = append(m.Families, fm)
	}

	core := []string{strconv.Quote("fmt"), "", strconv.Quote(flexerrPath), strconv.Quote(apisPath)}
	if usesTracer {
		core = append(core, strconv.Quote(tracerPath))
	}
	m.Imports = append(core, m.Imports...)
	return m, nil
}

func buildVariant(f *define.File, fam *define.Family, v define.Variant, taken map[string]bool) (variantModel, error) {
	r, err := v.ReasonFor(fam.Name)
	if err != nil {
		return variantModel{}, err
	}
	vm := variantModel{
		Name:        v.Name,
		Doc:         v.Doc,
		Record:      v.RecordName(),
		Constructor: v.ConstructorName(),
		KindConst:   fam.KindConst(v),
		Code:        v.Code.String(),
		Reason:      r.String(),
		Format:      strconv.Quote(v.Format),
		Args:        v.Args,
		HasCause:    v.Cause != nil,
		Display:     v.Cause.IsDisplay(),
	}
	if vm.HasCause {
		vm.CauseArg, vm.CauseDetail, err = f.CauseTypes(fam, v)
		if err != nil {
			return variantModel{}, err
		}
	}

	params := make([]string, 0, len(v.Fields)+1)
	inits := make([]string, 0, len(v.Fields))
	// The body passes the family strategy by name.
	used := map[string]bool{fam.TracerVar(): true}
	for _, fld := range v.Fields {
		fm := fieldModel{
			GoName: fld.GoName(),
			Type:   fld.Type,
			Param:  paramName(fld.Name, taken, used),
		}
		vm.Fields = append(vm.Fields, fm)
		params = append(params, fm.Param+" "+fm.Type)
		inits = append(inits, fm.GoName+": "+fm.Param)
	}
	if vm.HasCause {
		params = append(params, "source "+vm.CauseArg)
	}
	vm.Params = strings.Join(params, ", ")
	vm.Inits = strings.Join(inits, ", ")
	return vm, nil
}

// reservedParams are names a constructor parameter must not shadow: the
// identifiers the constructor body refers to, keywords and predeclared ones.
func reservedParams() map[string]bool {
	taken := map[string]bool{
		"source":  true,
		"inner":   true,
		"fmt":     true,
		"flexerr": true,
		"apis":    true,
		"tracer":  true,
	}
	for _, name := range types.Universe.Names() {
		taken[name] = true
	}
	return taken
}

func paramName(field string, taken, used map[string]bool) string {
	base := define.LowerFirst(field)
	name := base
	for n := 1; token.IsKeyword(name) || taken[name] || used[name]; n++ {
		name = base + "Arg"
		if n > 1 {
			name += strconv.Itoa(n)
		}
	}
	used[name] = true
	return name
}

func importSpec(alias, p string) string {
	if alias == "" {
		return strconv.Quote(p)
	}
	return alias + " " + strconv.Quote(p)
}

// importName guesses the name an import is referred to by.
func importName(alias, p string) string {
	if alias != "" {
		return alias
	}
	base := path.Base(p)
	if len(base) > 1 && base[0] == 'v' && isDigits(base[1:]) {
		base = path.Base(path.Dir(p))
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i > 0 {
		base = base[:i]
	}
	return base
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// headerComment turns free text into a comment block. Text that already is
// a comment is kept as is.
func headerComment(h string) string {
	h = strings.TrimRight(h, "\n")
	if h == "" {
		return ""
	}
	t := strings.TrimSpace(h)
	if strings.HasPrefix(t, "/*") || strings.HasPrefix(t, "//") {
		return h
	}
	return comment(h)
}

func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}
