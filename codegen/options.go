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

import "log/slog"

// Option configures Generate.
type Option func(*config)

type config struct {
	filename   string
	header     string
	formatOnly bool
	log        *slog.Logger
}

func defaults() config {
	return config{
		filename: "errors_gen.go",
		log:      slog.New(slog.DiscardHandler),
	}
}

// WithFilename names the file being generated. The name shows up in
// formatting errors and lets import resolution find the enclosing module.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithHeader replaces the header comment declared in the file.
func WithHeader(header string) Option {
	return func(c *config) { c.header = header }
}

// WithFormatOnly disables removal of unused imports. Only formatting and
// import grouping are applied.
func WithFormatOnly(on bool) Option {
	return func(c *config) { c.formatOnly = on }
}

// WithLogger sets the logger for generation progress. Nil keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
