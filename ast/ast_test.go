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

package ast_test

import (
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/exprtest"
	"github.com/bufbuild/cexpr/source"
)

const prelude = `
	(struct S (a int) (b (array char 4)))
	(var s S)
	(var cs (const S))
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

func TestRangeContainsChildren(t *testing.T) {
	t.Parallel()

	tests := []string{
		"(+ 1 (* 2 3))",
		"(paren (- x))",
		"(post++ x)",
		"([] arr (+ x 1))",
		"(call f x (paren 2))",
		"(. s a)",
		"(-> p b)",
		"(swizzle v xy)",
		"(cast long (+ x 1))",
		"(implicit long x)",
		"(compound-literal int 1)",
		"(?: x _ 2)",
		"(?: x 1 2)",
		"(+= x 1)",
		"(stmt (= x 1) x)",
		"(choose 1 x 2)",
		"(sizeof-type S)",
		"(types-compatible int long)",
		"(addr-label out)",
		`"hello"`,
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			e := newBuilder(t).MustParse(test)
			r := e.Range()
			assert.True(r.IsValid(), "%v", e)
			assert.LessOrEqual(r.Begin, r.End)
			for child := range e.Children() {
				assert.True(r.Contains(child.Range()), "%v does not contain %v", e, child)
			}
		})
	}
}

func TestExprLoc(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	file := func(e ast.Expr) *source.File { return b.Files.File(e.Begin()) }
	offset := func(e ast.Expr, loc source.Loc) int { return file(e).Offset(loc) }

	// Offsets into each input:   0123456789
	e := b.MustParse("(- x)")
	assert.Equal(1, offset(e, e.ExprLoc()))
	assert.Equal(1, offset(e, e.Begin()))

	e = b.MustParse("(post++ x)")
	assert.Equal(1, offset(e, e.ExprLoc()))
	assert.Equal(1, offset(e, e.Begin()))
	assert.Equal(8, offset(e, e.End()))

	e = b.MustParse("([] arr 0)")
	assert.Equal(9, offset(e, e.ExprLoc()))
	assert.Equal(4, offset(e, e.Begin()))

	e = b.MustParse("(. s a)")
	assert.Equal(5, offset(e, e.ExprLoc()))
	assert.Equal(3, offset(e, e.Begin()))

	e = b.MustParse("(swizzle v xy)")
	assert.Equal(11, offset(e, e.ExprLoc()))

	// Binary operators and conditionals anchor at their start.
	e = b.MustParse("(+ x 1)")
	assert.Equal(e.Begin(), e.ExprLoc())
	e = b.MustParse("(?: x 1 2)")
	assert.Equal(e.Begin(), e.ExprLoc())
}

func TestCommas(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := exprtest.New(ctype.LP64)
	b.MustDeclare(`
		(func f0 (fn int))
		(func f1 (fn int int))
		(func f3 (fn int int int int))
	`)
	for text, want := range map[string]int{
		"(call f0)":       0,
		"(call f1 1)":     0,
		"(call f3 1 2 3)": 2,
	} {
		assert.Equal(want, b.MustParse(text).AsCall().NumCommas(), text)
	}

	call := b.MustParse("(call f3 1 2 3)").AsCall()
	assert.Panics(func() { call.Arg(3) })
	assert.Panics(func() { call.Arg(-1) })
	var args []int
	for i := range call.Args() {
		args = append(args, i)
	}
	assert.Equal([]int{0, 1, 2}, args)
}

func TestConstructionContract(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	nodes := b.AST.Nodes()
	intType := b.Types.Builtin(ctype.KindInt)
	lit := func(v int) ast.Expr {
		return nodes.NewIntegerLiteral(ast.IntegerLiteralArgs{
			Type: intType, Value: apint.From(v, 32, false),
		}).AsAny()
	}

	lhs, rhs := lit(1), lit(2)
	assert.Panics(func() {
		nodes.NewBinary(ast.BinaryArgs{Type: intType, Op: ast.BinaryAddAssign, LHS: lhs, RHS: rhs})
	})
	assert.Panics(func() {
		nodes.NewCompoundAssign(ast.CompoundAssignArgs{
			Type: intType, Op: ast.BinaryAdd, LHS: lhs, RHS: rhs, ComputationType: intType,
		})
	})

	// The rejected constructions above did not consume their operands.
	sum := nodes.NewBinary(ast.BinaryArgs{Type: intType, Op: ast.BinaryAdd, LHS: lhs, RHS: rhs})
	assert.Equal(lhs, sum.LHS())

	// An operand can only have one parent.
	assert.Panics(func() {
		nodes.NewUnary(ast.UnaryArgs{Type: intType, Op: ast.UnaryMinus, Operand: lhs})
	})
	// Nor can it be used twice in the same node.
	twice := lit(3)
	assert.Panics(func() {
		nodes.NewBinary(ast.BinaryArgs{Type: intType, Op: ast.BinaryMul, LHS: twice, RHS: twice})
	})
	assert.NotPanics(func() {
		nodes.NewUnary(ast.UnaryArgs{Type: intType, Op: ast.UnaryMinus, Operand: twice})
	})

	assert.Panics(func() {
		nodes.NewUnary(ast.UnaryArgs{Type: intType, Op: ast.UnaryMinus})
	}, "missing operand")
	assert.Panics(func() {
		nodes.NewUnary(ast.UnaryArgs{Op: ast.UnaryMinus, Operand: lit(4)})
	}, "missing type")
	assert.Panics(func() {
		nodes.NewVectorElement(ast.VectorElementArgs{Type: intType, Base: lit(5), Accessor: "xr"})
	}, "mixed element sets")

	other := exprtest.New(ctype.LP64)
	foreign := other.MustParse("1")
	assert.Panics(func() {
		nodes.NewParen(ast.ParenArgs{Sub: foreign})
	}, "foreign context")
	assert.Panics(func() {
		nodes.NewUnary(ast.UnaryArgs{Type: other.Types.Builtin(ctype.KindInt), Op: ast.UnaryMinus, Operand: lit(6)})
	}, "foreign type")
}

func TestVectorElement(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	xx := b.MustParse("(swizzle v xx)").AsVectorElement()
	assert.True(xx.ContainsDuplicates())
	assert.Equal(2, xx.NumElements())

	xy := b.MustParse("(swizzle v xy)").AsVectorElement()
	assert.False(xy.ContainsDuplicates())

	abgr := b.MustParse("(swizzle v abgr)").AsVectorElement()
	assert.Equal(ast.ElementSetColor, abgr.ElementSet())
	assert.Equal(3, abgr.AccessedField(0))
	assert.Equal(0, abgr.AccessedField(3))
	assert.Equal(uint(0b00_01_10_11), abgr.EncodedAccess())

	assert.Equal(ast.ElementSetTexture, ast.ElementSetOf("stpq"))
	assert.Equal(ast.ElementSetInvalid, ast.ElementSetOf(""))
	assert.Equal(ast.ElementSetInvalid, ast.ElementSetOf("xyzwx"))
	assert.Equal(ast.ElementSetInvalid, ast.ElementSetOf("xq"))
}

func TestDowncasts(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	e := b.MustParse("(+= x 1)")
	assert.True(e.Is(ast.KindCompoundAssign))
	assert.False(e.AsBinary().IsZero(), "compound assignments are binary operators")
	assert.False(e.AsCompoundAssign().IsZero())
	assert.Equal(ast.BinaryAddAssign, e.AsBinary().Op())
	assert.Equal(ast.BinaryAdd, e.AsBinary().Op().Underlying())

	e = b.MustParse("(+ x 1)")
	assert.True(e.AsCompoundAssign().IsZero())
	assert.True(e.AsUnary().IsZero())
	assert.True(e.AsCall().IsZero())
	assert.Equal(e, e.AsBinary().AsAny())

	e = b.MustParse("(implicit long x)")
	assert.True(e.AsCast().IsZero())
	assert.False(e.AsImplicitCast().IsZero())

	var zero ast.Expr
	assert.Equal(ast.KindInvalid, zero.Kind())
	assert.True(zero.AsBinary().IsZero())
	assert.False(zero.Range().IsValid())
	assert.Equal("<nil>", zero.String())
}

func TestSetType(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	e := b.MustParse("(+ x 1)")
	long := b.Types.Builtin(ctype.KindLong)
	e.SetType(long)
	assert.Equal(long, e.Type())
	assert.Equal(long, e.AsBinary().Type())
	assert.Panics(func() { e.SetType(long) })
}

func TestDerivedTypes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	long := b.Types.Builtin(ctype.KindLong)
	double := b.Types.Builtin(ctype.KindDouble)

	// A parenthesized expression always has its operand's type, through any
	// number of parentheses.
	paren := b.MustParse("(paren (paren (+ x 1)))")
	inner := paren.AsParen().Sub()
	sum := inner.AsParen().Sub()
	sum.SetType(long)
	assert.Equal(long, sum.Type())
	assert.Equal(long, inner.Type())
	assert.Equal(long, paren.Type())
	assert.Panics(func() { paren.SetType(double) })
	assert.Panics(func() { inner.SetType(double) })
	assert.Equal(long, paren.Type())

	// A member access has its field's type plus the qualifiers of the object.
	member := b.MustParse("(. s a)")
	assert.Equal("int", member.Type().String())
	assert.Panics(func() { member.SetType(double) })
	assert.Equal("int", member.Type().String())

	s, ok := b.Lookup("s")
	require.True(t, ok)
	member.AsMember().Base().SetType(s.Type().WithQuals(ctype.Const))
	assert.Equal("const int", member.Type().String())
	assert.Equal("const int", member.AsMember().Type().String())

	arrow := b.MustParse("(paren (-> p b))")
	assert.Equal("char [4]", arrow.Type().String())
}

func TestHasLocalSideEffect(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	b.MustDeclare(`
		(var vp (ptr (volatile int)))
		(var vs (volatile S))
	`)
	tests := map[string]bool{
		"(= x 1)":            true,
		"(+= x 1)":           true,
		"(post++ x)":         true,
		"(-- x)":             true,
		"(call f 1 2)":       true,
		"(, x 1)":            true,
		"(* vp)":             true,
		"(. vs a)":           true,
		"(__real (* vp))":    true,
		"(+ (call f 1 2) 1)": false,
		"(paren (= x 1))":    false,
		"(cast long x)":      false,
		"(- x)":              false,
		"(. s a)":            false,
		"x":                  false,
	}
	for text, want := range tests {
		assert.Equal(t, want, b.MustParse(text).HasLocalSideEffect(), text)
	}
}

type kindNamer struct{}

func (kindNamer) VisitDeclRef(ast.DeclRef) string                     { return "ref" }
func (kindNamer) VisitPredefined(ast.Predefined) string               { return "predefined" }
func (kindNamer) VisitIntegerLiteral(ast.IntegerLiteral) string       { return "int" }
func (kindNamer) VisitCharLiteral(ast.CharLiteral) string             { return "char" }
func (kindNamer) VisitFloatLiteral(ast.FloatLiteral) string           { return "float" }
func (kindNamer) VisitStringLiteral(ast.StringLiteral) string         { return "string" }
func (kindNamer) VisitParen(ast.Paren) string                         { return "paren" }
func (kindNamer) VisitUnary(e ast.Unary) string                       { return "unary " + e.Op().String() }
func (kindNamer) VisitSizeOfAlignOfType(ast.SizeOfAlignOfType) string { return "sizeof" }
func (kindNamer) VisitArraySubscript(ast.ArraySubscript) string       { return "subscript" }
func (kindNamer) VisitCall(ast.Call) string                           { return "call" }
func (kindNamer) VisitMember(ast.Member) string                       { return "member" }
func (kindNamer) VisitVectorElement(ast.VectorElement) string         { return "swizzle" }
func (kindNamer) VisitCompoundLiteral(ast.CompoundLiteral) string     { return "compound" }
func (kindNamer) VisitImplicitCast(ast.ImplicitCast) string           { return "implicit" }
func (kindNamer) VisitCast(ast.Cast) string                           { return "cast" }
func (kindNamer) VisitBinary(e ast.Binary) string                     { return "binary " + e.Op().String() }
func (kindNamer) VisitCompoundAssign(e ast.CompoundAssign) string     { return "assign " + e.Op().String() }
func (kindNamer) VisitConditional(ast.Conditional) string             { return "conditional" }
func (kindNamer) VisitAddrLabel(ast.AddrLabel) string                 { return "label" }
func (kindNamer) VisitStmtExpr(ast.StmtExpr) string                   { return "stmt" }
func (kindNamer) VisitTypesCompatible(ast.TypesCompatible) string     { return "compatible" }
func (kindNamer) VisitChoose(ast.Choose) string                       { return "choose" }

func TestVisit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	var got []string
	for _, text := range []string{"(+ 1 2)", "(*= x 2)", "(! x)", "'a'", "1.5", "__func__", "(stmt 1)"} {
		got = append(got, ast.Visit[string](b.MustParse(text), kindNamer{}))
	}
	assert.Equal([]string{"binary +", "assign *=", "unary !", "char", "float", "predefined", "stmt"}, got)
	assert.Panics(func() { ast.Visit[string](ast.Expr{}, kindNamer{}) })
}

func TestChildren(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	kinds := func(text string) []ast.Kind {
		var out []ast.Kind
		for child := range b.MustParse(text).Children() {
			out = append(out, child.Kind())
		}
		return out
	}

	assert.Equal([]ast.Kind{ast.KindDeclRef, ast.KindIntegerLiteral}, kinds("(?: x _ 1)"))
	assert.Equal([]ast.Kind{ast.KindDeclRef, ast.KindDeclRef, ast.KindIntegerLiteral}, kinds("(call f x 1)"))
	assert.Equal([]ast.Kind{ast.KindBinary, ast.KindDeclRef}, kinds("(stmt (= x 1) x)"))
	assert.Empty(kinds("(sizeof-type int)"))

	body := b.MustParse("(stmt 1 2)").AsStmtExpr().Body()
	assert.Equal(2, body.Len())
	assert.Equal(ast.KindIntegerLiteral, body.Last().Kind())
	assert.Len(slices.Collect(body.Exprs()), 2)
}

func TestLiterals(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := newBuilder(t)
	lit := b.MustParse("0x1ffffffffu").AsIntegerLiteral()
	v, _ := lit.Value().Uint64()
	assert.Equal(uint64(0xffffffff), v, "value is truncated to the literal's type")

	f := b.MustParse("0.1").AsFloatLiteral()
	assert.Equal(uint(ast.FloatPrec), f.Value().Prec())
	want, _, _ := big.ParseFloat("0.1", 10, ast.FloatPrec, big.ToNearestEven)
	assert.Zero(want.Cmp(f.Value()))

	s := b.MustParse(`"a\tb"`).AsStringLiteral()
	assert.Equal([]byte("a\tb"), s.Bytes())
	assert.Equal(3, s.Len())
	assert.Equal(int64(4), must(s.Type().ArraySize()))

	assert.Equal(ast.PredefinedPrettyFunction, b.MustParse("__PRETTY_FUNCTION__").AsPredefined().IdentKind())
}

func must[T any](v T, ok bool) T {
	if !ok {
		panic("not ok")
	}
	return v
}
