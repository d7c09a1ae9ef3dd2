// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command enum generates the String, GoString and lookup boilerplate for
// the small integer enums of this module, such as ast.Kind, ast.BinaryOp and
// sema.Lvalue.
//
// Each enum is described in a YAML file next to the package that owns it:
//
//	- name: BinaryOp
//	  type: int8
//	  docs: BinaryOp is the operator of a [Binary].
//	  total: binaryOpTotal
//	  methods:
//	  - kind: string      # spellings, from each value's string
//	  - kind: go-string   # Go names, for %#v
//	  - kind: from-string # spelling to value; needs a name
//	    name: BinaryOpFromString
//	    skip: [BinaryInvalid]
//	  values:
//	  - {name: BinaryInvalid, string: "<invalid>"}
//	  - {name: BinaryMul, string: "*", docs: "x * y"}
//
// and generated with
//
//	//go:generate go run github.com/bufbuild/cexpr/internal/enum kind.yaml op.yaml
//
// Every file argument produces one Go file, with the .yaml extension replaced
// by .go.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum is one enum type in a YAML file.
type Enum struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"` // The underlying integer type.
	Docs      string   `yaml:"docs"`
	Total     string   `yaml:"total"` // If set, a constant holding the number of values.
	Methods   []Method `yaml:"methods"`
	ValueList []Value  `yaml:"values"`
}

// Values returns the values of e, linked back to e.
func (e *Enum) Values() []Value {
	for i := range e.ValueList {
		e.ValueList[i].parent = e
		e.ValueList[i].idx = i
	}
	return e.ValueList
}

// Value is one value of an [Enum]. Values are numbered from zero in order.
type Value struct {
	Name     string `yaml:"name"`
	Spelling string `yaml:"string"` // Defaults to Name.
	Docs     string `yaml:"docs"`

	parent *Enum
	idx    int
}

// HasSuffixDocs returns whether this value's docs go at the end of its line.
// That is only done for one-line docs whose next neighbor also has docs, so
// that gofmt aligns them in a column.
func (v Value) HasSuffixDocs() bool {
	if v.Docs == "" || strings.Contains(v.Docs, "\n") {
		return false
	}
	next := v.idx + 1
	return next >= len(v.parent.ValueList) || v.parent.ValueList[next].Docs != ""
}

// String returns the spelling of this value.
func (v Value) String() string {
	if v.Spelling == "" {
		return v.Name
	}
	return v.Spelling
}

// MethodKind is the kind of a generated [Method].
type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

// defaults are the name and docs of each method kind that has them.
var defaults = map[MethodKind]struct{ name, docs string }{
	MethodString:   {"String", "String implements [fmt.Stringer]."},
	MethodGoString: {"GoString", "GoString implements [fmt.GoStringer]."},
}

// Method is a method or function generated for an [Enum].
type Method struct {
	Kind   MethodKind `yaml:"kind"`
	NameAs string     `yaml:"name"`
	DocsAs string     `yaml:"docs"`
	Skip   []string   `yaml:"skip"` // Values left out of a from-string table.
}

// Name returns the name of the generated method.
func (m Method) Name() string {
	if m.NameAs != "" {
		return m.NameAs
	}
	return defaults[m.Kind].name
}

// Docs returns the doc comment of the generated method.
func (m Method) Docs() string {
	if m.DocsAs != "" {
		return m.DocsAs
	}
	return defaults[m.Kind].docs
}

// check rejects descriptions that would generate code that does not compile
// or that silently drops values.
func (e *Enum) check() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum requires a name and a type")
	}
	names := make(map[string]bool)
	for _, v := range e.ValueList {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}
	for _, m := range e.Methods {
		switch m.Kind {
		case MethodString, MethodGoString:
		case MethodFromString:
			if m.NameAs == "" {
				return fmt.Errorf("%s: %s method requires a name", e.Name, m.Kind)
			}
			for _, skip := range m.Skip {
				if !names[skip] {
					return fmt.Errorf("%s: %s skips unknown value %s", e.Name, m.NameAs, skip)
				}
			}
			spellings := make(map[string]string)
			for _, v := range e.ValueList {
				if slices.Contains(m.Skip, v.Name) {
					continue
				}
				if prev, ok := spellings[v.String()]; ok {
					return fmt.Errorf("%s: %s and %s are both spelled %q", e.Name, prev, v.Name, v.String())
				}
				spellings[v.String()] = v.Name
			}
		default:
			return fmt.Errorf("%s: unknown method kind %q", e.Name, m.Kind)
		}
	}
	return nil
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts text into doc comments at the given indentation.
func makeDocs(text, indent string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// generate renders the Go source for the enums described by text.
func generate(pkg, binary, config string, text []byte) ([]byte, error) {
	input := struct {
		Binary, Package, Config string
		YAML                    []Enum
	}{Binary: binary, Package: pkg, Config: config}
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return nil, err
	}
	for i := range input.YAML {
		if err := input.YAML[i].check(); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.go.tmpl", input); err != nil {
		return nil, err
	}
	// Alignment of the const block and tables is left to gofmt.
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func run(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}
	pkg := os.Getenv("GOPACKAGE")
	if pkg == "" {
		return errors.New("GOPACKAGE is not set; run from go:generate")
	}
	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}

	out, err := generate(pkg, info.Path, config, text)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", out, 0o644)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: enum file.yaml...")
		os.Exit(2)
	}

	var failed bool
	for _, config := range os.Args[1:] {
		if err := run(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
