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

package sema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/exprtest"
	"github.com/bufbuild/cexpr/sema"
)

const prelude = `
	(struct S (a int) (b (array char 4)))
	(struct C (k (const int)) (n int))
	(struct W (inner C))
	(struct CA (k (array (const int) 2)))
	(struct Inc)
	(union U (i int) (c char))
	(var s S)
	(var cs (const S))
	(var c C)
	(var w W)
	(var ca CA)
	(var p (ptr S))
	(var x int)
	(param q int)
	(var cx (const int))
	(var v (vector float 4))
	(var arr (array int 8))
	(var vp (ptr void))
	(var ip (ptr Inc))
	(var fp (ptr (fn int int)))
	(func f (fn int int int))
	(func g (fn S))
	(enum Color (Red 0) (Green 1) (Blue 7))
	(label out)
`

func setup(t *testing.T) (*exprtest.Builder, *sema.Analyzer) {
	b := exprtest.New(ctype.LP64)
	require.NoError(t, b.Declare(prelude))
	return b, sema.New(b.Types, b.Decls)
}

func TestClassifyLvalue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want sema.Lvalue
	}{
		{"x", sema.LvalueValid},
		{"q", sema.LvalueValid},
		{"(paren x)", sema.LvalueValid},
		{`"str"`, sema.LvalueValid},
		{"([] arr 0)", sema.LvalueValid},
		{"(. s a)", sema.LvalueValid},
		{"(-> p a)", sema.LvalueValid},
		{"(* p)", sema.LvalueValid},
		{"(swizzle v xy)", sema.LvalueValid},

		{"(swizzle v xx)", sema.LvalueDuplicateVectorComponents},
		{"(* vp)", sema.LvalueIncompleteVoidType},
		{"(* (cast (ptr (const void)) vp))", sema.LvalueIncompleteVoidType},
		{"(paren (* (cast (ptr (volatile void)) vp)))", sema.LvalueIncompleteVoidType},

		{"1", sema.LvalueInvalidExpression},
		{"f", sema.LvalueInvalidExpression},
		{"Red", sema.LvalueInvalidExpression},
		{"(* fp)", sema.LvalueInvalidExpression},
		{"(call f 1 2)", sema.LvalueInvalidExpression},
		{"(. (call g) a)", sema.LvalueInvalidExpression},
		{"(+ x 1)", sema.LvalueInvalidExpression},
		{"(= x 1)", sema.LvalueInvalidExpression},
		{"(cast int x)", sema.LvalueInvalidExpression},
		{"(post++ x)", sema.LvalueInvalidExpression},
		{"(& x)", sema.LvalueInvalidExpression},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			b, a := setup(t)
			assert.Equal(t, test.want, a.ClassifyLvalue(b.MustParse(test.expr)))
		})
	}
}

func TestClassifyModifiableLvalue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want sema.Modifiable
	}{
		{"x", sema.ModifiableValid},
		{"(-> p a)", sema.ModifiableValid},
		{"(. c n)", sema.ModifiableValid},
		{"([] arr 3)", sema.ModifiableValid},

		{"arr", sema.ModifiableArrayType},
		{"(. s b)", sema.ModifiableArrayType},
		{"(* ip)", sema.ModifiableIncompleteType},
		{"cx", sema.ModifiableConstQualified},
		{"cs", sema.ModifiableConstQualified},
		{"(. cs a)", sema.ModifiableConstQualified},
		{"c", sema.ModifiableConstQualified},
		{"w", sema.ModifiableConstQualified},
		{"ca", sema.ModifiableConstQualified},

		{"(* vp)", sema.ModifiableIncompleteVoidType},
		{"(* (cast (ptr (const void)) vp))", sema.ModifiableIncompleteVoidType},
		{"(swizzle v yy)", sema.ModifiableDuplicateVectorComponents},
		{"1", sema.ModifiableInvalidExpression},
		{"f", sema.ModifiableInvalidExpression},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			b, a := setup(t)
			assert.Equal(t, test.want, a.ClassifyModifiableLvalue(b.MustParse(test.expr)))
		})
	}
}

func TestEvaluateInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want int64
	}{
		{"42", 42},
		{"'a'", 'a'},
		{"(paren 5)", 5},
		{"(+ 1 (* 2 3))", 7},
		{"(- 5)", -5},
		{"(+ 5)", 5},
		{"(__extension__ 5)", 5},
		{"(~ 0)", -1},
		{"(! 0)", 1},
		{"(! 3)", 0},
		{"(/ 7 2)", 3},
		{"(% (- 7) 2)", -1},
		{"(- 2 9)", -7},
		{"(& 12 10)", 8},
		{"(| 12 10)", 14},
		{"(^ 12 10)", 6},
		{"(<< 1 4)", 16},
		{"(>> (- 16) 2)", -4},
		{"(<< 1 40)", -1 << 31},
		{"(+ 2147483647 1)", -1 << 31},

		{"(< (- 1) 1)", 1},
		{"(< (- 1) 1u)", 0},
		{"(== 2 2)", 1},
		{"(!= 2 2)", 0},
		{"(>= 3 2)", 1},

		{"(&& 1 2)", 1},
		{"(|| 0 0)", 0},
		{"(&& 0 (/ 1 0))", 0},
		{"(|| 1 (/ 1 0))", 1},
		{"(&& 0 (call f 1 2))", 0},

		{"(?: 1 2 (/ 1 0))", 2},
		{"(?: 0 (/ 1 0) 3)", 3},
		{"(?: 5 _ 3)", 5},
		{"(choose 0 1 2)", 2},
		{"(choose 1 1 (call f 1 2))", 1},

		{"Blue", 7},
		{"(+ Red Blue)", 7},

		{"(sizeof-type S)", 8},
		{"(sizeof x)", 4},
		{"(sizeof arr)", 32},
		{"(alignof-type double)", 8},
		{"(sizeof (call f 1 2))", 4},
		{"(offsetof (. (* (cast (ptr S) 0)) b))", 4},
		{"(offsetof (-> (cast (ptr S) 0) b))", 4},
		{"(offsetof ([] (. (* (cast (ptr S) 0)) b) 2))", 6},
		{"(offsetof (. (paren (* (cast (ptr S) (- 1 1)))) b))", 4},
		{"(offsetof (. (. (* (cast (ptr W) 0)) inner) n))", 4},

		{"(types-compatible int int)", 1},
		{"(types-compatible (const int) int)", 1},
		{"(types-compatible int long)", 0},

		{"(cast int 3.9)", 3},
		{"(cast int (paren 2.5))", 2},
		{"(cast bool 0.5)", 1},
		{"(cast bool 2)", 1},
		{"(cast char 300)", 44},
		{"(cast uchar (- 1))", 255},
		{"(implicit long 5)", 5},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)
			b, a := setup(t)

			e := b.MustParse(test.expr)
			v, err := a.EvaluateInteger(e, true)
			require.NoError(t, err)
			got, ok := v.Int64()
			assert.True(ok)
			assert.Equal(test.want, got)
			assert.Equal(b.Types.IntWidth(e.Type()), v.Width())
			assert.True(a.IsIntegerConstantExpr(e))
		})
	}
}

func TestEvaluateIntegerUnsigned(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	b, a := setup(t)

	v, err := a.EvaluateInteger(b.MustParse("(- 0u 1u)"), true)
	require.NoError(t, err)
	assert.True(v.IsUnsigned())
	n, ok := v.Uint64()
	assert.True(ok)
	assert.Equal(uint64(1<<32-1), n)

	v, err = a.EvaluateInteger(b.MustParse("(sizeof-type (array char 3))"), true)
	require.NoError(t, err)
	assert.True(v.IsUnsigned())
	assert.Equal(uint(64), v.Width())
}

func TestNotConstant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr   string
		offset int // Where the error points, in the input text.
	}{
		{"(/ 1 0)", 3},
		{"(+ 1 (/ 1 0))", 8},
		{"(% 4 0)", 3},
		{"(, 1 2)", 3},
		{"(+ x 1)", 3},
		{"(call f 1 2)", 6},
		{"(= x 1)", 3},
		{"(sizeof (* ip))", 1},
		{"(sizeof-type Inc)", 1},
		{"(& x)", 1},
		{"(++ x)", 1},
		{"(cast int (- 2.5))", 11},
		{"1.5", 0},
		{"(?: 1 x 2)", 6},
		{"(choose x 1 2)", 8},
		{"(offsetof x)", 10},
		{"(offsetof (-> p b))", 14},
		{"(offsetof (* (cast (ptr S) 0)))", 11},
		{"(offsetof (. (* (cast (ptr S) 1)) b))", 14},
		{"(offsetof (. (* p) b))", 14},
		{"(offsetof ([] arr 2))", 14},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)
			b, a := setup(t)

			e := b.MustParse(test.expr)
			_, err := a.EvaluateInteger(e, true)
			var nc *sema.NotConstantError
			require.True(t, errors.As(err, &nc), "%v", err)
			assert.False(nc.Expr.IsZero())
			assert.NotEmpty(nc.Reason)
			assert.Equal(test.offset, b.Files.File(nc.Loc).Offset(nc.Loc))
			assert.False(a.IsIntegerConstantExpr(e))
		})
	}
}

func TestEvaluateUnevaluated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want int64
	}{
		{"(/ 1 0)", 1},
		{"(% 9 0)", 9},
		{"(, 1 2)", 2},
		{"(+ 1 (, 5 6))", 7},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			b, a := setup(t)

			v, err := a.EvaluateInteger(b.MustParse(test.expr), false)
			require.NoError(t, err)
			got, _ := v.Int64()
			assert.Equal(t, test.want, got)
		})
	}
}

func TestIsNullPointerConstant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want bool
	}{
		{"0", true},
		{"0l", true},
		{"(- 1 1)", true},
		{"(cast (ptr void) 0)", true},
		{"(paren (cast (ptr void) (paren 0)))", true},
		{"(implicit (ptr int) 0)", true},
		{"(cast int 0)", true},
		{"(sizeof-type (array char 0))", true},

		{"1", false},
		{"x", false},
		{"(cast (ptr void) 1)", false},
		{"(cast (ptr char) 0)", false},
		{"(cast (ptr (const void)) 0)", false},
		{"(cast (ptr void) (cast (ptr void) 0))", false},
		{"(+ (call f 1 2) 1)", false},
		{"0.0", false},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			b, a := setup(t)
			assert.Equal(t, test.want, a.IsNullPointerConstant(b.MustParse(test.expr)))
		})
	}
}

func TestNewPanics(t *testing.T) {
	t.Parallel()
	b, _ := setup(t)

	assert.Panics(t, func() { sema.New(nil, b.Decls) })
	assert.Panics(t, func() { sema.New(b.Types, nil) })

	a := sema.New(b.Types, b.Decls)
	assert.Panics(t, func() { _, _ = a.EvaluateInteger(ast.Expr{}, true) })
}
