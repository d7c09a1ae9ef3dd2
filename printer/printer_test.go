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

package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/exprtest"
	"github.com/bufbuild/cexpr/internal/golden"
	"github.com/bufbuild/cexpr/printer"
)

const prelude = `
	(struct S (a int) (b (array char 4)))
	(var s S)
	(var p (ptr S))
	(var x int)
	(var v (vector float 4))
	(var arr (array int 8))
	(func f (fn int int int))
	(label out)
`

func newBuilder(t *testing.T) *exprtest.Builder {
	b := exprtest.New(ctype.LP64)
	require.NoError(t, b.Declare(prelude))
	return b
}

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr, want string
	}{
		{"(+ 1 (* 2 3))", "1 + 2 * 3"},
		{"(* (paren (+ 1 2)) 3)", "(1 + 2) * 3"},
		{"(- (- x))", "- -x"},
		{"(post++ x)", "x++"},
		{"(++ x)", "++x"},
		{"(& (* p))", "&*p"},
		{"(sizeof x)", "sizeof x"},
		{"(sizeof-type S)", "sizeof(struct S)"},
		{"(alignof-type int)", "__alignof(int)"},
		{"([] arr (+ x 1))", "arr[x + 1]"},
		{"(call f x (paren 2))", "f(x, (2))"},
		{"(. s a)", "s.a"},
		{"(-> p b)", "p->b"},
		{"(swizzle v xy)", "v.xy"},
		{"(cast long x)", "(long)x"},
		{"(implicit long x)", "x"},
		{"(cast (ptr void) 0)", "(void *)0"},
		{"(compound-literal int 1)", "(int){1}"},
		{"(?: x _ 2)", "x ?: 2"},
		{"(?: x 1 2)", "x ? 1 : 2"},
		{"(+= x 1)", "x += 1"},
		{"(, x 1)", "x, 1"},
		{"(stmt (= x 1) x)", "({ x = 1; x; })"},
		{"(choose 1 x 2)", "__builtin_choose_expr(1, x, 2)"},
		{"(types-compatible int long)", "__builtin_types_compatible_p(int, long)"},
		{"(addr-label out)", "&&out"},
		{"(offsetof (. (* (cast (ptr S) 0)) b))", "__builtin_offsetof(struct S, b)"},
		{"(offsetof ([] (-> (cast (ptr S) 0) b) 2))", "__builtin_offsetof(struct S, b[2])"},
		{`"hi\n"`, `"hi\n"`},
		{"'a'", "'a'"},
		{`"\x001"`, `"\0001"`},
		{`"a\"b'\\"`, `"a\"b'\\"`},
		{`"\t\x7f"`, `"\t\177"`},
		{`"é"`, `"\303\251"`},
		{`(wide "hi")`, `L"hi"`},
		{`(wide "é€")`, `L"\351\u20ac"`},
		{`'\''`, `'\''`},
		{`'"'`, `'"'`},
		{`'\x00'`, `'\000'`},
		{`'é'`, `'\351'`},
		{`(wide 'a')`, `L'a'`},
		{`(wide 'é')`, `L'\xe9'`},
		{"42u", "42u"},
		{"7ll", "7ll"},
		{"3ul", "3ul"},
		{"1.5", "1.5"},
		{"2.0f", "2.0f"},
		{"1e10", "1e+10"},
		{"__func__", "__func__"},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			e := newBuilder(t).MustParse(test.expr)
			assert.Equal(t, test.want, printer.Print(e, printer.Options{}))
		})
	}
}

func TestPrintImplicitCasts(t *testing.T) {
	t.Parallel()
	e := newBuilder(t).MustParse("(+ (implicit long x) 1l)")
	assert.Equal(t, "x + 1l", printer.Print(e, printer.Options{}))
	assert.Equal(t, "(long)x + 1l", printer.Print(e, printer.Options{ShowImplicitCasts: true}))
}

func TestDump(t *testing.T) {
	t.Parallel()
	b := newBuilder(t)

	e := b.MustParse("(+ 1 (* 2 x))")
	assert.Equal(t, strings.Join([]string{
		"Binary + 'int' <1:4-1:11>",
		"  IntegerLiteral 1 'int' <1:4>",
		"  Binary * 'int' <1:9-1:11>",
		"    IntegerLiteral 2 'int' <1:9>",
		"    DeclRef x 'int' <1:11>",
		"",
	}, "\n"), printer.Dump(e, printer.Options{Files: b.Files}))

	assert.Equal(t, strings.Join([]string{
		"Binary + 'int'",
		"  IntegerLiteral 1 'int'",
		"  Binary * 'int'",
		"    IntegerLiteral 2 'int'",
		"    DeclRef x 'int'",
		"",
	}, "\n"), printer.Dump(e, printer.Options{}))
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	golden.Corpus{
		Root:      "testdata",
		Extension: "yaml",
		Outputs: []golden.Output{
			{Extension: "c"},
			{Extension: "dump"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var input struct {
				Decls string   `yaml:"decls"`
				Exprs []string `yaml:"exprs"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(text), &input))

			b := exprtest.New(ctype.LP64)
			require.NoError(t, b.Declare(input.Decls))

			var source, dump strings.Builder
			for _, text := range input.Exprs {
				e, err := b.Parse(text)
				require.NoError(t, err)
				source.WriteString(printer.Print(e, printer.Options{}))
				source.WriteByte('\n')
				dump.WriteString(printer.Dump(e, printer.Options{Files: b.Files}))
			}
			return []string{source.String(), dump.String()}
		},
	}.Run(t)
}
