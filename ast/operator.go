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

	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/source"
)

// IsPostfix returns whether this operator is written after its operand.
func (op UnaryOp) IsPostfix() bool {
	return op == UnaryPostInc || op == UnaryPostDec
}

// IsPrefix returns whether this operator is written before its operand.
func (op UnaryOp) IsPrefix() bool {
	return op > UnaryInvalid && int(op) < unaryOpTotal && !op.IsPostfix()
}

// IsIncrementDecrement returns whether this is one of the four ++/-- forms.
func (op UnaryOp) IsIncrementDecrement() bool {
	return op >= UnaryPostInc && op <= UnaryPreDec
}

// IsSizeOfAlignOf returns whether this is sizeof or __alignof.
func (op UnaryOp) IsSizeOfAlignOf() bool {
	return op == UnarySizeOf || op == UnaryAlignOf
}

// IsArithmetic returns whether this is +, -, ~, or !.
func (op UnaryOp) IsArithmetic() bool {
	return op >= UnaryPlus && op <= UnaryLNot
}

// IsMultiplicative returns whether this is *, /, or %.
func (op BinaryOp) IsMultiplicative() bool {
	return op >= BinaryMul && op <= BinaryRem
}

// IsAdditive returns whether this is + or -.
func (op BinaryOp) IsAdditive() bool {
	return op == BinaryAdd || op == BinarySub
}

// IsShift returns whether this is << or >>.
func (op BinaryOp) IsShift() bool {
	return op == BinaryShl || op == BinaryShr
}

// IsBitwise returns whether this is &, ^, or |.
func (op BinaryOp) IsBitwise() bool {
	return op >= BinaryAnd && op <= BinaryOr
}

// IsRelational returns whether this is <, >, <=, or >=.
func (op BinaryOp) IsRelational() bool {
	return op >= BinaryLT && op <= BinaryGE
}

// IsEquality returns whether this is == or !=.
func (op BinaryOp) IsEquality() bool {
	return op == BinaryEQ || op == BinaryNE
}

// IsComparison returns whether this is a relational or equality operator.
func (op BinaryOp) IsComparison() bool {
	return op >= BinaryLT && op <= BinaryNE
}

// IsLogical returns whether this is && or ||.
func (op BinaryOp) IsLogical() bool {
	return op == BinaryLAnd || op == BinaryLOr
}

// IsAssignment returns whether this is = or a compound assignment.
func (op BinaryOp) IsAssignment() bool {
	return op >= BinaryAssign && op <= BinaryOrAssign
}

// IsCompoundAssignment returns whether this is one of *=, /=, and so on.
func (op BinaryOp) IsCompoundAssignment() bool {
	return op > BinaryAssign && op <= BinaryOrAssign
}

// IsShiftAssign returns whether this is <<= or >>=.
func (op BinaryOp) IsShiftAssign() bool {
	return op == BinaryShlAssign || op == BinaryShrAssign
}

// Underlying returns the operator a compound assignment performs before
// storing, such as + for +=. Other operators are returned unchanged.
func (op BinaryOp) Underlying() BinaryOp {
	if !op.IsCompoundAssignment() {
		return op
	}
	return op - BinaryMulAssign + BinaryMul
}

// Paren is a parenthesized expression.
type Paren struct{ node[rawParen] }

// ParenArgs is arguments for [Nodes.NewParen].
type ParenArgs struct {
	Sub            Expr
	LParen, RParen source.Loc
}

type rawParen struct {
	sub            exprID
	lparen, rparen source.Loc
}

// NewParen constructs a new [Paren]. Its type is that of Sub.
func (n *Nodes) NewParen(args ParenArgs) Paren {
	ids := n.adopt("parenthesized expression", required("operand", args.Sub))
	raw := rawParen{sub: ids[0], lparen: args.LParen, rparen: args.RParen}
	return Paren{newNode(n, KindParen, ctype.QualType{}, &n.parens, raw)}
}

// Sub returns the parenthesized expression.
func (e Paren) Sub() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.sub)
}

// LParenLoc returns the location of the (.
func (e Paren) LParenLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.lparen
}

// RParenLoc returns the location of the ).
func (e Paren) RParenLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.rparen
}

// Range returns the source range of this expression.
func (e Paren) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(source.Point(e.raw.lparen), e.Sub().Range(), source.Point(e.raw.rparen))
}

// Unary is a unary operator applied to an expression.
type Unary struct{ node[rawUnary] }

// UnaryArgs is arguments for [Nodes.NewUnary].
type UnaryArgs struct {
	Type    ctype.QualType
	Op      UnaryOp
	Operand Expr
	OpLoc   source.Loc
}

type rawUnary struct {
	op    UnaryOp
	sub   exprID
	opLoc source.Loc
}

// NewUnary constructs a new [Unary].
func (n *Nodes) NewUnary(args UnaryArgs) Unary {
	n.mustType(args.Type, "unary operator")
	if args.Op <= UnaryInvalid || int(args.Op) >= unaryOpTotal {
		panic(fmt.Sprintf("cexpr/ast: invalid unary operator %#v", args.Op))
	}
	ids := n.adopt("unary operator", required("operand", args.Operand))
	raw := rawUnary{op: args.Op, sub: ids[0], opLoc: args.OpLoc}
	return Unary{newNode(n, KindUnary, args.Type, &n.unaries, raw)}
}

// Op returns this expression's operator.
func (e Unary) Op() UnaryOp {
	if e.IsZero() {
		return UnaryInvalid
	}
	return e.raw.op
}

// IsPostfix returns whether the operator is written after the operand.
func (e Unary) IsPostfix() bool {
	return e.Op().IsPostfix()
}

// Operand returns the expression the operator applies to.
func (e Unary) Operand() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.sub)
}

// OpLoc returns the location of the operator.
func (e Unary) OpLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.opLoc
}

// Range returns the source range of this expression.
func (e Unary) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(source.Point(e.raw.opLoc), e.Operand().Range())
}

// SizeOfAlignOfType is sizeof or __alignof applied to a type name rather
// than an expression.
type SizeOfAlignOfType struct{ node[rawSizeOfAlignOfType] }

// SizeOfAlignOfTypeArgs is arguments for [Nodes.NewSizeOfAlignOfType].
type SizeOfAlignOfTypeArgs struct {
	Type     ctype.QualType
	IsSizeOf bool
	Arg      ctype.QualType
	// The location of the keyword and of the closing parenthesis.
	OpLoc, RParen source.Loc
}

type rawSizeOfAlignOfType struct {
	sizeOf        bool
	arg           ctype.QualType
	opLoc, rparen source.Loc
}

// NewSizeOfAlignOfType constructs a new [SizeOfAlignOfType].
func (n *Nodes) NewSizeOfAlignOfType(args SizeOfAlignOfTypeArgs) SizeOfAlignOfType {
	n.mustType(args.Type, "sizeof/alignof")
	n.mustType(args.Arg, "sizeof/alignof argument")
	raw := rawSizeOfAlignOfType{sizeOf: args.IsSizeOf, arg: args.Arg, opLoc: args.OpLoc, rparen: args.RParen}
	return SizeOfAlignOfType{newNode(n, KindSizeOfAlignOfType, args.Type, &n.sizeOfs, raw)}
}

// IsSizeOf returns true for sizeof and false for __alignof.
func (e SizeOfAlignOfType) IsSizeOf() bool {
	return !e.IsZero() && e.raw.sizeOf
}

// ArgType returns the type being measured.
func (e SizeOfAlignOfType) ArgType() ctype.QualType {
	if e.IsZero() {
		return ctype.QualType{}
	}
	return e.raw.arg
}

// OpLoc returns the location of the keyword.
func (e SizeOfAlignOfType) OpLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.opLoc
}

// Range returns the source range of this expression.
func (e SizeOfAlignOfType) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.opLoc, e.raw.rparen)
}

// Binary is a binary operator, other than a compound assignment.
//
// A [CompoundAssign] can also be viewed as a Binary with [Expr.AsBinary].
type Binary struct{ node[rawBinary] }

// BinaryArgs is arguments for [Nodes.NewBinary].
type BinaryArgs struct {
	Type     ctype.QualType
	Op       BinaryOp
	LHS, RHS Expr
}

type rawBinary struct {
	op       BinaryOp
	lhs, rhs exprID
	// Only set for compound assignments.
	computation ctype.QualType
}

// NewBinary constructs a new [Binary].
//
// Panics if Op is a compound assignment; use [Nodes.NewCompoundAssign] for
// those.
func (n *Nodes) NewBinary(args BinaryArgs) Binary {
	n.mustType(args.Type, "binary operator")
	if args.Op <= BinaryInvalid || int(args.Op) >= binaryOpTotal {
		panic(fmt.Sprintf("cexpr/ast: invalid binary operator %#v", args.Op))
	}
	if args.Op.IsCompoundAssignment() {
		panic(fmt.Sprintf("cexpr/ast: %q is a compound assignment; use NewCompoundAssign", args.Op))
	}
	ids := n.adopt("binary operator", required("left operand", args.LHS), required("right operand", args.RHS))
	raw := rawBinary{op: args.Op, lhs: ids[0], rhs: ids[1]}
	return Binary{newNode(n, KindBinary, args.Type, &n.binaries, raw)}
}

// Op returns this expression's operator.
func (e Binary) Op() BinaryOp {
	if e.IsZero() {
		return BinaryInvalid
	}
	return e.raw.op
}

// LHS returns the left operand.
func (e Binary) LHS() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.lhs)
}

// RHS returns the right operand.
func (e Binary) RHS() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.rhs)
}

// Range returns the source range of this expression.
func (e Binary) Range() source.Range {
	return source.Join(e.LHS().Range(), e.RHS().Range())
}

// CompoundAssign is an assignment operator that also performs arithmetic,
// such as +=.
type CompoundAssign struct{ Binary }

// CompoundAssignArgs is arguments for [Nodes.NewCompoundAssign].
type CompoundAssignArgs struct {
	Type     ctype.QualType
	Op       BinaryOp
	LHS, RHS Expr
	// The type the arithmetic is performed in, after promoting both operands
	// and before converting back to the type of LHS.
	ComputationType ctype.QualType
}

// NewCompoundAssign constructs a new [CompoundAssign].
//
// Panics if Op is not a compound assignment.
func (n *Nodes) NewCompoundAssign(args CompoundAssignArgs) CompoundAssign {
	n.mustType(args.Type, "compound assignment")
	n.mustType(args.ComputationType, "compound assignment computation")
	if !args.Op.IsCompoundAssignment() {
		panic(fmt.Sprintf("cexpr/ast: %q is not a compound assignment", args.Op))
	}
	ids := n.adopt("compound assignment", required("left operand", args.LHS), required("right operand", args.RHS))
	raw := rawBinary{op: args.Op, lhs: ids[0], rhs: ids[1], computation: args.ComputationType}
	return CompoundAssign{Binary{newNode(n, KindCompoundAssign, args.Type, &n.binaries, raw)}}
}

// ComputationType returns the type the arithmetic is performed in.
func (e CompoundAssign) ComputationType() ctype.QualType {
	if e.IsZero() {
		return ctype.QualType{}
	}
	return e.raw.computation
}

// Conditional is the ternary operator c ? a : b, or the GNU extension c ?: b
// whose middle operand is omitted.
type Conditional struct{ node[rawConditional] }

// ConditionalArgs is arguments for [Nodes.NewConditional].
type ConditionalArgs struct {
	Type ctype.QualType
	Cond Expr
	// May be zero.
	Then Expr
	Else Expr
}

type rawConditional struct {
	cond, then, els exprID
}

// NewConditional constructs a new [Conditional].
func (n *Nodes) NewConditional(args ConditionalArgs) Conditional {
	n.mustType(args.Type, "conditional operator")
	ids := n.adopt("conditional operator",
		required("condition", args.Cond),
		optional("true branch", args.Then),
		required("false branch", args.Else),
	)
	raw := rawConditional{cond: ids[0], then: ids[1], els: ids[2]}
	return Conditional{newNode(n, KindConditional, args.Type, &n.conditionals, raw)}
}

// Cond returns the condition.
func (e Conditional) Cond() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.cond)
}

// Then returns the true branch. Zero if it was omitted.
func (e Conditional) Then() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.then)
}

// Else returns the false branch.
func (e Conditional) Else() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.els)
}

// Range returns the source range of this expression.
func (e Conditional) Range() source.Range {
	return source.Join(e.Cond().Range(), e.Then().Range(), e.Else().Range())
}
