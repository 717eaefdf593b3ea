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

// Command flexgen renders a YAML declaration of error families into a Go
// source file.
//
// It is meant to be driven by go generate:
//
//	//go:generate go run dirpx.dev/flexerr/cmd/flexgen -in errors.yaml -out errors_gen.go
//
// When the declaration omits the package name, the $GOPACKAGE variable set by
// go generate is used. With -check nothing is written; the command fails when
// the output file differs from what would be generated.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/flexerr/codegen"
	"dirpx.dev/flexerr/define"
)

const filePermissions = 0o644

// errStale is returned in check mode when the output is out of date.
var errStale = errors.New("generated file is out of date")

func main() {
	err := run(os.Args[1:], os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintf(os.Stderr, "flexgen: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in      string
	out     string
	pkg     string
	check   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("flexgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "errors.yaml", "YAML declaration to read")
	fs.StringVar(&o.out, "out", "", "Go file to write (default: <in>_gen.go next to the input)")
	fs.StringVar(&o.pkg, "package", "", "package name, overrides the declaration")
	fs.BoolVar(&o.check, "check", false, "fail if the output is not up to date instead of writing it")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.out == "" {
		o.out = defaultOutput(o.in)
	}
	return o, nil
}

// defaultOutput maps "dir/errors.yaml" to "dir/errors_gen.go".
func defaultOutput(in string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(filepath.Dir(in), base+"_gen.go")
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := decode(o.in)
	if err != nil {
		return err
	}
	switch {
	case o.pkg != "":
		f.Package = o.pkg
	case f.Package == "":
		f.Package = os.Getenv("GOPACKAGE")
	}

	src, err := codegen.Generate(f,
		codegen.WithFilename(o.out),
		codegen.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", o.in, err)
	}

	if o.check {
		return check(o.out, src, log)
	}
	if err := os.WriteFile(o.out, src, filePermissions); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug("wrote output", "file", o.out)
	return nil
}

func decode(path string) (*define.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := define.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func check(path string, want []byte, log *slog.Logger) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("check output: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: %w, run go generate", path, errStale)
	}
	log.Debug("output is up to date", "file", path)
	return nil
}
