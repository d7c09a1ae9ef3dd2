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

package ast

import (
	"fmt"
	"iter"

	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/source"
)

//go:generate go run github.com/bufbuild/cexpr/internal/enum kind.yaml op.yaml

// Expr is any expression node.
//
// It can be converted to one of the concrete node types with its As*
// methods, or dispatched on with [Visit]. Expr is a small value type and
// should be passed by value.
//
// The zero Expr is "no expression", such as the missing middle operand of
// a GNU a ?: b conditional.
type Expr struct {
	withContext
	id exprID
}

func (e Expr) header() *rawExpr {
	return e.ctx.exprs.Deref(e.id)
}

// Kind returns which variant this expression is.
func (e Expr) Kind() Kind {
	if e.IsZero() {
		return KindInvalid
	}
	return e.header().kind
}

// Is returns whether this expression is of the given kind.
func (e Expr) Is(kind Kind) bool {
	return e.Kind() == kind
}

// Type returns the result type of this expression.
//
// The types of [Paren] and [Member] are derived from their operands each time
// they are read; every other node stores its type.
func (e Expr) Type() ctype.QualType {
	switch e.Kind() {
	case KindInvalid:
		return ctype.QualType{}
	case KindParen:
		return e.AsParen().Sub().Type()
	case KindMember:
		return e.AsMember().derivedType()
	default:
		return e.header().ty
	}
}

// SetType replaces the provisional result type of this expression. This may
// be done at most once, by the pass that resolves types, before the tree is
// shared with any other consumer.
//
// Panics on a [Paren] or [Member], whose types are derived: retype the
// parenthesized expression instead.
func (e Expr) SetType(ty ctype.QualType) {
	switch e.Kind() {
	case KindInvalid:
		panic("cexpr/ast: SetType on zero Expr")
	case KindParen, KindMember:
		panic(fmt.Sprintf("cexpr/ast: type of %#v is derived from its operands", e.Kind()))
	}
	(*Nodes)(e.ctx).mustType(ty, e.Kind().GoString())
	h := e.header()
	if h.retyped {
		panic(fmt.Sprintf("cexpr/ast: type of %#v already set", h.kind))
	}
	h.ty = ty
	h.retyped = true
}

// Range returns the source range this expression spans.
func (e Expr) Range() source.Range {
	switch e.Kind() {
	case KindDeclRef:
		return e.AsDeclRef().Range()
	case KindPredefined:
		return e.AsPredefined().Range()
	case KindIntegerLiteral:
		return e.AsIntegerLiteral().Range()
	case KindCharLiteral:
		return e.AsCharLiteral().Range()
	case KindFloatLiteral:
		return e.AsFloatLiteral().Range()
	case KindStringLiteral:
		return e.AsStringLiteral().Range()
	case KindParen:
		return e.AsParen().Range()
	case KindUnary:
		return e.AsUnary().Range()
	case KindSizeOfAlignOfType:
		return e.AsSizeOfAlignOfType().Range()
	case KindArraySubscript:
		return e.AsArraySubscript().Range()
	case KindCall:
		return e.AsCall().Range()
	case KindMember:
		return e.AsMember().Range()
	case KindVectorElement:
		return e.AsVectorElement().Range()
	case KindCompoundLiteral:
		return e.AsCompoundLiteral().Range()
	case KindImplicitCast:
		return e.AsImplicitCast().Range()
	case KindCast:
		return e.AsCast().Range()
	case KindBinary, KindCompoundAssign:
		return e.AsBinary().Range()
	case KindConditional:
		return e.AsConditional().Range()
	case KindAddrLabel:
		return e.AsAddrLabel().Range()
	case KindStmtExpr:
		return e.AsStmtExpr().Range()
	case KindTypesCompatible:
		return e.AsTypesCompatible().Range()
	case KindChoose:
		return e.AsChoose().Range()
	default:
		return source.Range{}
	}
}

// Begin returns the start of this expression's range.
func (e Expr) Begin() source.Loc {
	return e.Range().Begin
}

// End returns the end of this expression's range.
func (e Expr) End() source.Loc {
	return e.Range().End
}

// ExprLoc returns the location a diagnostic about this expression should
// point at.
//
// This is the start of its range, except for unary operators (the
// operator), array subscripts (the closing bracket), and member and vector
// element accesses (the member name).
func (e Expr) ExprLoc() source.Loc {
	switch e.Kind() {
	case KindUnary:
		return e.AsUnary().OpLoc()
	case KindArraySubscript:
		return e.AsArraySubscript().RBracketLoc()
	case KindMember:
		return e.AsMember().MemberLoc()
	case KindVectorElement:
		return e.AsVectorElement().AccessorLoc()
	default:
		return e.Begin()
	}
}

// Children returns the direct subexpressions of this expression, in source
// order. A missing conditional middle operand is skipped.
func (e Expr) Children() iter.Seq[Expr] {
	return func(yield func(Expr) bool) {
		var kids []Expr
		switch e.Kind() {
		case KindParen:
			kids = []Expr{e.AsParen().Sub()}
		case KindUnary:
			kids = []Expr{e.AsUnary().Operand()}
		case KindArraySubscript:
			s := e.AsArraySubscript()
			kids = []Expr{s.Base(), s.Index()}
		case KindCall:
			c := e.AsCall()
			if !yield(c.Callee()) {
				return
			}
			for _, arg := range c.Args() {
				if !yield(arg) {
					return
				}
			}
			return
		case KindMember:
			kids = []Expr{e.AsMember().Base()}
		case KindVectorElement:
			kids = []Expr{e.AsVectorElement().Base()}
		case KindCompoundLiteral:
			kids = []Expr{e.AsCompoundLiteral().Init()}
		case KindImplicitCast:
			kids = []Expr{e.AsImplicitCast().Operand()}
		case KindCast:
			kids = []Expr{e.AsCast().Operand()}
		case KindBinary, KindCompoundAssign:
			b := e.AsBinary()
			kids = []Expr{b.LHS(), b.RHS()}
		case KindConditional:
			c := e.AsConditional()
			kids = []Expr{c.Cond(), c.Then(), c.Else()}
		case KindStmtExpr:
			for e := range e.AsStmtExpr().Body().Exprs() {
				if !yield(e) {
					return
				}
			}
			return
		case KindChoose:
			c := e.AsChoose()
			kids = []Expr{c.Cond(), c.Then(), c.Else()}
		}

		for _, kid := range kids {
			if kid.IsZero() {
				continue
			}
			if !yield(kid) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer], for debugging.
func (e Expr) String() string {
	if e.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%#v@%v", e.Kind(), e.Range())
}

// AsDeclRef converts an Expr into a [DeclRef], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsDeclRef() DeclRef {
	if e.Kind() != KindDeclRef {
		return DeclRef{}
	}
	return DeclRef{wrap(e, &e.ctx.declRefs)}
}

// AsPredefined converts an Expr into a [Predefined], if that is its concrete
// type.
//
// Otherwise, returns zero.
func (e Expr) AsPredefined() Predefined {
	if e.Kind() != KindPredefined {
		return Predefined{}
	}
	return Predefined{wrap(e, &e.ctx.predefineds)}
}

// AsIntegerLiteral converts an Expr into an [IntegerLiteral], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsIntegerLiteral() IntegerLiteral {
	if e.Kind() != KindIntegerLiteral {
		return IntegerLiteral{}
	}
	return IntegerLiteral{wrap(e, &e.ctx.integers)}
}

// AsCharLiteral converts an Expr into a [CharLiteral], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsCharLiteral() CharLiteral {
	if e.Kind() != KindCharLiteral {
		return CharLiteral{}
	}
	return CharLiteral{wrap(e, &e.ctx.chars)}
}

// AsFloatLiteral converts an Expr into a [FloatLiteral], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsFloatLiteral() FloatLiteral {
	if e.Kind() != KindFloatLiteral {
		return FloatLiteral{}
	}
	return FloatLiteral{wrap(e, &e.ctx.floats)}
}

// AsStringLiteral converts an Expr into a [StringLiteral], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsStringLiteral() StringLiteral {
	if e.Kind() != KindStringLiteral {
		return StringLiteral{}
	}
	return StringLiteral{wrap(e, &e.ctx.strings)}
}

// AsParen converts an Expr into a [Paren], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsParen() Paren {
	if e.Kind() != KindParen {
		return Paren{}
	}
	return Paren{wrap(e, &e.ctx.parens)}
}

// AsUnary converts an Expr into a [Unary], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsUnary() Unary {
	if e.Kind() != KindUnary {
		return Unary{}
	}
	return Unary{wrap(e, &e.ctx.unaries)}
}

// AsSizeOfAlignOfType converts an Expr into a [SizeOfAlignOfType], if that
// is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsSizeOfAlignOfType() SizeOfAlignOfType {
	if e.Kind() != KindSizeOfAlignOfType {
		return SizeOfAlignOfType{}
	}
	return SizeOfAlignOfType{wrap(e, &e.ctx.sizeOfs)}
}

// AsArraySubscript converts an Expr into an [ArraySubscript], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsArraySubscript() ArraySubscript {
	if e.Kind() != KindArraySubscript {
		return ArraySubscript{}
	}
	return ArraySubscript{wrap(e, &e.ctx.subscripts)}
}

// AsCall converts an Expr into a [Call], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsCall() Call {
	if e.Kind() != KindCall {
		return Call{}
	}
	return Call{wrap(e, &e.ctx.calls)}
}

// AsMember converts an Expr into a [Member], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsMember() Member {
	if e.Kind() != KindMember {
		return Member{}
	}
	return Member{wrap(e, &e.ctx.members)}
}

// AsVectorElement converts an Expr into a [VectorElement], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsVectorElement() VectorElement {
	if e.Kind() != KindVectorElement {
		return VectorElement{}
	}
	return VectorElement{wrap(e, &e.ctx.vectors)}
}

// AsCompoundLiteral converts an Expr into a [CompoundLiteral], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsCompoundLiteral() CompoundLiteral {
	if e.Kind() != KindCompoundLiteral {
		return CompoundLiteral{}
	}
	return CompoundLiteral{wrap(e, &e.ctx.compoundLiterals)}
}

// AsImplicitCast converts an Expr into an [ImplicitCast], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsImplicitCast() ImplicitCast {
	if e.Kind() != KindImplicitCast {
		return ImplicitCast{}
	}
	return ImplicitCast{wrap(e, &e.ctx.casts)}
}

// AsCast converts an Expr into a [Cast], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsCast() Cast {
	if e.Kind() != KindCast {
		return Cast{}
	}
	return Cast{wrap(e, &e.ctx.casts)}
}

// AsBinary converts an Expr into a [Binary], if it is a binary operator.
// This includes compound assignments, which are a special case of binary
// operators.
//
// Otherwise, returns zero.
func (e Expr) AsBinary() Binary {
	if k := e.Kind(); k != KindBinary && k != KindCompoundAssign {
		return Binary{}
	}
	return Binary{wrap(e, &e.ctx.binaries)}
}

// AsCompoundAssign converts an Expr into a [CompoundAssign], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsCompoundAssign() CompoundAssign {
	if e.Kind() != KindCompoundAssign {
		return CompoundAssign{}
	}
	return CompoundAssign{Binary{wrap(e, &e.ctx.binaries)}}
}

// AsConditional converts an Expr into a [Conditional], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsConditional() Conditional {
	if e.Kind() != KindConditional {
		return Conditional{}
	}
	return Conditional{wrap(e, &e.ctx.conditionals)}
}

// AsAddrLabel converts an Expr into an [AddrLabel], if that is its concrete
// type.
//
// Otherwise, returns zero.
func (e Expr) AsAddrLabel() AddrLabel {
	if e.Kind() != KindAddrLabel {
		return AddrLabel{}
	}
	return AddrLabel{wrap(e, &e.ctx.addrLabels)}
}

// AsStmtExpr converts an Expr into a [StmtExpr], if that is its concrete
// type.
//
// Otherwise, returns zero.
func (e Expr) AsStmtExpr() StmtExpr {
	if e.Kind() != KindStmtExpr {
		return StmtExpr{}
	}
	return StmtExpr{wrap(e, &e.ctx.stmtExprs)}
}

// AsTypesCompatible converts an Expr into a [TypesCompatible], if that is its
// concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsTypesCompatible() TypesCompatible {
	if e.Kind() != KindTypesCompatible {
		return TypesCompatible{}
	}
	return TypesCompatible{wrap(e, &e.ctx.typesCompatibles)}
}

// AsChoose converts an Expr into a [Choose], if that is its concrete type.
//
// Otherwise, returns zero.
func (e Expr) AsChoose() Choose {
	if e.Kind() != KindChoose {
		return Choose{}
	}
	return Choose{wrap(e, &e.ctx.chooses)}
}
