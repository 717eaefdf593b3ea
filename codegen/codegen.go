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
	"fmt"

	"golang.org/x/tools/imports"

	"dirpx.dev/flexerr/code"
	"dirpx.dev/flexerr/define"
)

// Generate validates f and renders it as a formatted Go file.
func Generate(f *define.File, opts ...Option) ([]byte, error) {
	cfg := defaults()
	for _, o := range opts {
		o(&cfg)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	header := f.Header
	if cfg.header != "" {
		header = cfg.header
	}
	m, err := build(f, header)
	if err != nil {
		return nil, err
	}
	for _, fam := range m.Families {
		cfg.log.Debug("generating family",
			"family", fam.Name,
			"trace", fam.Trace,
			"variants", len(fam.Variants),
		)
	}
	for _, fam := range f.Families {
		for _, v := range fam.Variants {
			if v.Code != code.Empty && !v.Code.Known() {
				cfg.log.Warn("custom code needs explicit mapper rules",
					"family", fam.Name, "variant", v.Name, "code", v.Code.String())
			}
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}

	out, err := imports.Process(cfg.filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: cfg.formatOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("codegen: format %s: %w", cfg.filename, err)
	}
	cfg.log.Info("generated", "file", cfg.filename, "package", f.Package, "families", len(m.Families), "bytes", len(out))
	return out, nil
}
