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

package check_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/check"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/exprtest"
	"github.com/bufbuild/cexpr/report"
	"github.com/bufbuild/cexpr/sema"
)

const prelude = `
	(struct C (k (const int)) (n int))
	(struct Inc)
	(var c C)
	(var x int)
	(var cx (const int))
	(var v (vector float 4))
	(var arr (array int 8))
	(var vp (ptr void))
	(var ip (ptr Inc))
	(func f (fn int int int))
`

func setup(t *testing.T) (*exprtest.Builder, *check.Checker) {
	b := exprtest.New(ctype.LP64)
	require.NoError(t, b.Declare(prelude))
	return b, check.New(sema.New(b.Types, b.Decls))
}

// summarize flattens a report into one line per message.
func summarize(r report.Report) []string {
	var out []string
	for _, d := range r {
		out = append(out, d.Level.String()+": "+d.Err.Error())
		for _, note := range d.Notes {
			out = append(out, "note: "+note)
		}
	}
	return out
}

const unused = "warning: expression result unused"

func TestStmt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stmt string
		want []string
	}{
		{stmt: "(= x 1)"},
		{stmt: "(call f 1 2)"},
		{stmt: "(cast void x)"},
		{stmt: "(paren (= x 1))"},
		{stmt: "(+= x 1)"},
		{stmt: "(post++ x)"},

		{"(= (+ x 1) 2)", []string{"error: expression is not assignable"}},
		{"(= 1 2)", []string{"error: expression is not assignable"}},
		{"(= cx 1)", []string{
			"error: read-only variable is not assignable",
			"note: cannot assign to variable with const-qualified type 'const int'",
		}},
		{"(= c c)", []string{
			"error: read-only variable is not assignable",
			"note: cannot assign to a struct containing a const-qualified member",
		}},
		{"(= arr arr)", []string{"error: array type 'int [8]' is not assignable"}},
		{"(= (* ip) (* ip))", []string{"error: incomplete type 'struct Inc' is not assignable"}},
		{"(= (* vp) 1)", []string{"error: 'void' expression is not assignable"}},
		{"(= (swizzle v xx) (swizzle v xy))", []string{"error: vector is not assignable (contains duplicate components)"}},
		{"(++ cx)", []string{
			"error: read-only variable is not assignable",
			"note: cannot assign to variable with const-qualified type 'const int'",
		}},
		{"(post-- (+ x 1))", []string{"error: expression is not assignable"}},
		{"(*= cx 2)", []string{
			"error: read-only variable is not assignable",
			"note: cannot assign to variable with const-qualified type 'const int'",
		}},

		{"(& x)", []string{unused}},
		{"(& f)", []string{unused}},
		{"(& (* vp))", []string{unused}},
		{"(& (+ x 1))", []string{"error: cannot take the address of an rvalue of type 'int'", unused}},
		{"(& (swizzle v x))", []string{"error: address of vector element requested", unused}},

		{"(+ x 1)", []string{unused}},
		{"(paren x)", []string{unused}},
		{"(stmt (+ x 1) (= x 2) x)", []string{unused}},
		{"(, (= x 1) (= (+ x 1) 2))", []string{"error: expression is not assignable"}},
	}

	for _, test := range tests {
		t.Run(test.stmt, func(t *testing.T) {
			t.Parallel()
			b, c := setup(t)

			var r report.Report
			c.Stmt(&r, b.MustParse(test.stmt))
			if diff := cmp.Diff(test.want, summarize(r), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntegerConstant(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	b, c := setup(t)

	var r report.Report
	v, ok := c.IntegerConstant(&r, b.MustParse("(+ 1 2)"))
	assert.True(ok)
	assert.Equal("3", v.String())
	assert.Empty(r)

	e := b.MustParse("(+ x 1)")
	_, ok = c.IntegerConstant(&r, e)
	assert.False(ok)
	require.Len(t, r, 1)
	assert.Equal("expression is not an integer constant expression", r[0].Err.Error())
	require.Len(t, r[0].Annotations, 2)
	assert.Equal("x is not a constant", r[0].Annotations[0].Message)
	assert.True(r[0].Annotations[0].Primary)
	assert.Equal(e.Range(), r[0].Annotations[1].Range)

	out := report.Renderer{Files: b.Files}.RenderString(r)
	assert.Equal(b.Files.Resolve(e.Begin()).String()+": error: expression is not an integer constant expression\n", out)
}

func TestRunner(t *testing.T) {
	t.Parallel()
	b, c := setup(t)

	var stmts []ast.Expr
	for _, text := range []string{
		"(= x 1)",
		"(= cx 1)",
		"(+ x 1)",
		"(& (+ x 1))",
		"(call f 1 2)",
		"(= arr arr)",
	} {
		stmts = append(stmts, b.MustParse(text))
	}

	var want report.Report
	for _, stmt := range stmts {
		c.Stmt(&want, stmt)
	}

	for _, par := range []int{0, 1, 2, 16} {
		runner := check.Runner{Checker: c, MaxParallelism: par}
		got, err := runner.Run(context.Background(), stmts...)
		require.NoError(t, err)
		if diff := cmp.Diff(summarize(want), summarize(got)); diff != "" {
			t.Errorf("parallelism %d (-want +got):\n%s", par, diff)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := check.Runner{Checker: c, MaxParallelism: 1}
	got, err := runner.Run(ctx, stmts...)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.LessOrEqual(t, len(got), len(want))
}

func TestNewPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { check.New(nil) })
}
