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
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/source"
)

type rawCast struct {
	sub    exprID
	lparen source.Loc
}

// ImplicitCast is a conversion inserted by semantic analysis, such as array
// decay or integer promotion. It has no syntax of its own.
type ImplicitCast struct{ node[rawCast] }

// ImplicitCastArgs is arguments for [Nodes.NewImplicitCast].
type ImplicitCastArgs struct {
	Type    ctype.QualType
	Operand Expr
}

// NewImplicitCast constructs a new [ImplicitCast].
func (n *Nodes) NewImplicitCast(args ImplicitCastArgs) ImplicitCast {
	n.mustType(args.Type, "implicit conversion")
	ids := n.adopt("implicit conversion", required("operand", args.Operand))
	return ImplicitCast{newNode(n, KindImplicitCast, args.Type, &n.casts, rawCast{sub: ids[0]})}
}

// Operand returns the converted expression.
func (e ImplicitCast) Operand() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.sub)
}

// Range returns the source range of this expression, which is that of its
// operand.
func (e ImplicitCast) Range() source.Range {
	return e.Operand().Range()
}

// Cast is an explicit conversion, (T)x.
type Cast struct{ node[rawCast] }

// CastArgs is arguments for [Nodes.NewCast].
type CastArgs struct {
	Type    ctype.QualType
	Operand Expr
	LParen  source.Loc
}

// NewCast constructs a new [Cast].
func (n *Nodes) NewCast(args CastArgs) Cast {
	n.mustType(args.Type, "cast")
	ids := n.adopt("cast", required("operand", args.Operand))
	return Cast{newNode(n, KindCast, args.Type, &n.casts, rawCast{sub: ids[0], lparen: args.LParen})}
}

// Operand returns the converted expression.
func (e Cast) Operand() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.sub)
}

// LParenLoc returns the location of the ( that opens the type name.
func (e Cast) LParenLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.lparen
}

// Range returns the source range of this expression.
func (e Cast) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(source.Point(e.raw.lparen), e.Operand().Range())
}

// CompoundLiteral is (T){ ... }, an unnamed object initialized in place.
type CompoundLiteral struct{ node[rawCompoundLiteral] }

// CompoundLiteralArgs is arguments for [Nodes.NewCompoundLiteral].
type CompoundLiteralArgs struct {
	Type ctype.QualType
	Init Expr
	// May be invalid, for a literal synthesized without parentheses.
	LParen source.Loc
}

type rawCompoundLiteral struct {
	init   exprID
	lparen source.Loc
}

// NewCompoundLiteral constructs a new [CompoundLiteral].
func (n *Nodes) NewCompoundLiteral(args CompoundLiteralArgs) CompoundLiteral {
	n.mustType(args.Type, "compound literal")
	ids := n.adopt("compound literal", required("initializer", args.Init))
	raw := rawCompoundLiteral{init: ids[0], lparen: args.LParen}
	return CompoundLiteral{newNode(n, KindCompoundLiteral, args.Type, &n.compoundLiterals, raw)}
}

// Init returns the initializer.
func (e CompoundLiteral) Init() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.init)
}

// LParenLoc returns the location of the (, if there is one.
func (e CompoundLiteral) LParenLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.lparen
}

// Range returns the source range of this expression.
func (e CompoundLiteral) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(source.Point(e.raw.lparen), e.Init().Range())
}
