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

package exprtest

import (
	"math/big"
	"strings"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
)

var unaryOps = map[string]ast.UnaryOp{
	"+":             ast.UnaryPlus,
	"-":             ast.UnaryMinus,
	"~":             ast.UnaryNot,
	"!":             ast.UnaryLNot,
	"*":             ast.UnaryDeref,
	"&":             ast.UnaryAddrOf,
	"++":            ast.UnaryPreInc,
	"--":            ast.UnaryPreDec,
	"post++":        ast.UnaryPostInc,
	"post--":        ast.UnaryPostDec,
	"sizeof":        ast.UnarySizeOf,
	"alignof":       ast.UnaryAlignOf,
	"__real":        ast.UnaryReal,
	"__imag":        ast.UnaryImag,
	"__extension__": ast.UnaryExtension,
	"offsetof":      ast.UnaryOffsetOf,
}

func (in input) nodes() *ast.Nodes {
	return in.AST.Nodes()
}

func (in input) builtin(k ctype.Kind) ctype.QualType {
	return in.Types.Builtin(k)
}

// expr builds an expression.
func (in input) expr(s sexpr) ast.Expr {
	if !s.isList {
		return in.atom(s)
	}

	args := s.args()
	head := s.head()
	switch head {
	case "paren":
		in.arity(s, 1)
		return in.nodes().NewParen(ast.ParenArgs{
			Sub:    in.expr(args[0]),
			LParen: in.loc(s.open),
			RParen: in.loc(s.close),
		}).AsAny()

	case "wide":
		in.arity(s, 1)
		if args[0].quoted == 0 {
			panic(errorf(args[0].open, "wide requires a string or character literal"))
		}
		return in.literal(args[0], true)

	case "typed":
		in.arity(s, 2)
		ty := in.typ(args[0])
		e := in.expr(args[1])
		e.SetType(ty)
		return e

	case "call":
		if len(args) == 0 {
			panic(errorf(s.open, "call requires a callee"))
		}
		callee := in.expr(args[0])
		fn := callee.Type()
		if fn.IsPointerType() {
			fn = fn.Pointee()
		}
		if !fn.IsFunctionType() {
			panic(errorf(args[0].open, "called object has type %s", callee.Type()))
		}
		var actuals []ast.Expr
		for _, a := range args[1:] {
			actuals = append(actuals, in.expr(a))
		}
		return in.nodes().NewCall(ast.CallArgs{
			Type:   fn.Result().Unqualified(),
			Callee: callee,
			Args:   actuals,
			RParen: in.loc(s.close),
		}).AsAny()

	case ".", "->":
		in.arity(s, 2)
		base := in.expr(args[0])
		record := base.Type()
		if head == "->" {
			record = record.Pointee()
		}
		field, ok := in.fields[fieldKey{record.Unqualified(), args[1].atom}]
		if !ok {
			panic(errorf(args[1].open, "%s has no member named %s", record, args[1].atom))
		}
		return in.nodes().NewMember(ast.MemberArgs{
			Base:      base,
			Field:     field,
			MemberLoc: in.loc(args[1].open),
			IsArrow:   head == "->",
		}).AsAny()

	case "swizzle":
		in.arity(s, 2)
		base := in.expr(args[0])
		if !base.Type().IsVectorType() {
			panic(errorf(args[0].open, "swizzle of non-vector type %s", base.Type()))
		}
		ty := base.Type().Element()
		if n := len(args[1].atom); n > 1 {
			ty = in.Types.VectorOf(ty, n)
		}
		if ast.ElementSetOf(args[1].atom) == ast.ElementSetInvalid {
			panic(errorf(args[1].open, "bad vector accessor %s", args[1].atom))
		}
		return in.nodes().NewVectorElement(ast.VectorElementArgs{
			Type:        ty,
			Base:        base,
			Accessor:    args[1].atom,
			AccessorLoc: in.loc(args[1].open),
		}).AsAny()

	case "[]":
		in.arity(s, 2)
		base, index := in.expr(args[0]), in.expr(args[1])
		seq := base.Type()
		if seq.IsIntegerType() {
			seq = index.Type()
		}
		var ty ctype.QualType
		switch {
		case seq.IsArrayType(), seq.IsVectorType():
			ty = seq.Element()
		case seq.IsPointerType():
			ty = seq.Pointee()
		default:
			panic(errorf(s.open, "subscripted value has type %s", seq))
		}
		return in.nodes().NewArraySubscript(ast.ArraySubscriptArgs{
			Type:     ty,
			Base:     base,
			Index:    index,
			RBracket: in.loc(s.close),
		}).AsAny()

	case "cast":
		in.arity(s, 2)
		return in.nodes().NewCast(ast.CastArgs{
			Type:    in.typ(args[0]),
			Operand: in.expr(args[1]),
			LParen:  in.loc(s.open),
		}).AsAny()

	case "implicit":
		in.arity(s, 2)
		return in.nodes().NewImplicitCast(ast.ImplicitCastArgs{
			Type:    in.typ(args[0]),
			Operand: in.expr(args[1]),
		}).AsAny()

	case "compound-literal":
		in.arity(s, 2)
		return in.nodes().NewCompoundLiteral(ast.CompoundLiteralArgs{
			Type:   in.typ(args[0]),
			Init:   in.expr(args[1]),
			LParen: in.loc(s.open),
		}).AsAny()

	case "sizeof-type", "alignof-type":
		in.arity(s, 1)
		return in.nodes().NewSizeOfAlignOfType(ast.SizeOfAlignOfTypeArgs{
			Type:     in.sizeType(),
			IsSizeOf: head == "sizeof-type",
			Arg:      in.typ(args[0]),
			OpLoc:    in.loc(s.list[0].open),
			RParen:   in.loc(s.close),
		}).AsAny()

	case "?:":
		in.arity(s, 3)
		cond := in.expr(args[0])
		var then ast.Expr
		if args[1].isList || args[1].atom != "_" {
			then = in.expr(args[1])
		}
		els := in.expr(args[2])
		other := then
		if other.IsZero() {
			other = cond
		}
		return in.nodes().NewConditional(ast.ConditionalArgs{
			Type: in.branchType(other.Type(), els.Type()),
			Cond: cond,
			Then: then,
			Else: els,
		}).AsAny()

	case "choose":
		in.arity(s, 3)
		cond, then, els := in.expr(args[0]), in.expr(args[1]), in.expr(args[2])
		ty := then.Type()
		if lit := cond.AsIntegerLiteral(); !lit.IsZero() && lit.Value().IsZero() {
			ty = els.Type()
		}
		return in.nodes().NewChoose(ast.ChooseArgs{
			Type:       ty,
			Cond:       cond,
			Then:       then,
			Else:       els,
			BuiltinLoc: in.loc(s.list[0].open),
			RParen:     in.loc(s.close),
		}).AsAny()

	case "types-compatible":
		in.arity(s, 2)
		return in.nodes().NewTypesCompatible(ast.TypesCompatibleArgs{
			Type:       in.builtin(ctype.KindInt),
			Type1:      in.typ(args[0]),
			Type2:      in.typ(args[1]),
			BuiltinLoc: in.loc(s.list[0].open),
			RParen:     in.loc(s.close),
		}).AsAny()

	case "addr-label":
		in.arity(s, 1)
		label, ok := in.labels[args[0].atom]
		if !ok {
			panic(errorf(args[0].open, "unknown label %s", args[0]))
		}
		return in.nodes().NewAddrLabel(ast.AddrLabelArgs{
			Type:      in.Types.VoidPointer(),
			Label:     label,
			AmpAmpLoc: in.loc(s.list[0].open),
			LabelLoc:  in.loc(args[0].open),
		}).AsAny()

	case "stmt":
		stmts := make([]ast.Expr, len(args))
		for i, a := range args {
			stmts[i] = in.expr(a)
		}
		body := in.nodes().NewCompound(ast.CompoundArgs{
			LBrace: in.loc(s.list[0].open),
			RBrace: in.loc(s.close),
			Exprs:  stmts,
		})
		ty := in.builtin(ctype.KindVoid)
		if last := body.Last(); !last.IsZero() {
			ty = last.Type().Unqualified()
		}
		return in.nodes().NewStmtExpr(ast.StmtExprArgs{
			Type:   ty,
			Body:   body,
			LParen: in.loc(s.open),
			RParen: in.loc(s.close),
		}).AsAny()
	}

	if op, ok := unaryOps[head]; ok && len(args) == 1 {
		operand := in.expr(args[0])
		return in.nodes().NewUnary(ast.UnaryArgs{
			Type:    in.unaryType(s, op, operand.Type()),
			Op:      op,
			Operand: operand,
			OpLoc:   in.loc(s.list[0].open),
		}).AsAny()
	}

	if op, ok := ast.BinaryOpFromString(head); ok && len(args) == 2 {
		lhs, rhs := in.expr(args[0]), in.expr(args[1])
		if op.IsCompoundAssignment() {
			return in.nodes().NewCompoundAssign(ast.CompoundAssignArgs{
				Type:            lhs.Type().Unqualified(),
				Op:              op,
				LHS:             lhs,
				RHS:             rhs,
				ComputationType: in.binaryType(op.Underlying(), lhs.Type(), rhs.Type()),
			}).AsAny()
		}
		return in.nodes().NewBinary(ast.BinaryArgs{
			Type: in.binaryType(op, lhs.Type(), rhs.Type()),
			Op:   op,
			LHS:  lhs,
			RHS:  rhs,
		}).AsAny()
	}

	panic(errorf(s.open, "unknown expression %s", s))
}

// atom builds a literal or a reference to a declared name.
func (in input) atom(s sexpr) ast.Expr {
	loc := in.loc(s.open)
	if s.quoted != 0 {
		return in.literal(s, false)
	}

	if kind, ok := ast.PredefinedKindFromName(s.atom); ok {
		return in.nodes().NewPredefined(ast.PredefinedArgs{
			Type: in.Types.ArrayOf(in.builtin(ctype.KindChar).WithQuals(ctype.Const), int64(len(in.FuncName)+1)),
			Kind: kind,
			Loc:  loc,
		}).AsAny()
	}

	if c := s.atom[0]; c >= '0' && c <= '9' || c == '.' {
		return in.number(s)
	}

	id, ok := in.names[s.atom]
	if !ok {
		panic(errorf(s.open, "undeclared identifier %s", s.atom))
	}
	d := in.Decls.Decl(id)
	return in.nodes().NewDeclRef(ast.DeclRefArgs{Type: d.Type(), Decl: id, Loc: loc}).AsAny()
}

// literal builds a string or character literal. Wide literals have int
// elements, which is wchar_t on every supported target.
func (in input) literal(s sexpr, wide bool) ast.Expr {
	loc := in.loc(s.open)
	if s.quoted == '\'' {
		return in.nodes().NewCharLiteral(ast.CharLiteralArgs{
			Type:  in.builtin(ctype.KindInt),
			Value: uint32([]rune(s.atom)[0]),
			Wide:  wide,
			Loc:   loc,
		}).AsAny()
	}

	data := []byte(s.atom)
	elem, n := in.builtin(ctype.KindChar), len(data)
	if wide {
		elem, n = in.builtin(ctype.KindInt), len([]rune(s.atom))
	}
	return in.nodes().NewStringLiteral(ast.StringLiteralArgs{
		Type:     in.Types.ArrayOf(elem, int64(n+1)),
		Data:     data,
		Wide:     wide,
		FirstLoc: loc,
		LastLoc:  loc,
	}).AsAny()
}

// number builds an integer or floating literal. Integers take C's suffixes
// u and l in any combination; floats take f and l.
func (in input) number(s sexpr) ast.Expr {
	text := strings.ToLower(s.atom)
	loc := in.loc(s.open)

	isHex := strings.HasPrefix(text, "0x")
	if strings.ContainsAny(text, ".p") || (!isHex && strings.Contains(text, "e")) {
		kind := ctype.KindDouble
		switch {
		case strings.HasSuffix(text, "f"):
			kind, text = ctype.KindFloat, text[:len(text)-1]
		case strings.HasSuffix(text, "l"):
			kind, text = ctype.KindLongDouble, text[:len(text)-1]
		}
		v, _, err := big.ParseFloat(text, 0, ast.FloatPrec, big.ToNearestEven)
		if err != nil {
			panic(errorf(s.open, "bad floating literal %s", s.atom))
		}
		return in.nodes().NewFloatLiteral(ast.FloatLiteralArgs{Type: in.builtin(kind), Value: v, Loc: loc}).AsAny()
	}

	digits := strings.TrimRight(text, "ul")
	suffix := text[len(digits):]
	v, ok := new(big.Int).SetString(digits, 0)
	if !ok {
		panic(errorf(s.open, "bad integer literal %s", s.atom))
	}

	unsigned := strings.Contains(suffix, "u")
	kind := ctype.KindInt
	switch strings.Count(suffix, "l") {
	case 1:
		kind = ctype.KindLong
	case 2:
		kind = ctype.KindLongLong
	}
	if unsigned {
		kind++ // Each unsigned kind follows its signed counterpart.
	}
	ty := in.builtin(kind)
	width := in.Types.IntWidth(ty)
	return in.nodes().NewIntegerLiteral(ast.IntegerLiteralArgs{
		Type:  ty,
		Value: apint.FromBig(v, width, unsigned),
		Loc:   loc,
	}).AsAny()
}
