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
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/internal/arena"
	"github.com/bufbuild/cexpr/source"
)

// AddrLabel is the GNU address-of-label extension, &&label.
type AddrLabel struct{ node[rawAddrLabel] }

// AddrLabelArgs is arguments for [Nodes.NewAddrLabel].
type AddrLabelArgs struct {
	Type      ctype.QualType
	Label     decl.LabelID
	AmpAmpLoc source.Loc
	LabelLoc  source.Loc
}

type rawAddrLabel struct {
	label            decl.LabelID
	ampAmp, labelLoc source.Loc
}

// NewAddrLabel constructs a new [AddrLabel].
func (n *Nodes) NewAddrLabel(args AddrLabelArgs) AddrLabel {
	n.mustType(args.Type, "address of label")
	if args.Label == 0 {
		panic("cexpr/ast: address of label requires a label")
	}
	raw := rawAddrLabel{label: args.Label, ampAmp: args.AmpAmpLoc, labelLoc: args.LabelLoc}
	return AddrLabel{newNode(n, KindAddrLabel, args.Type, &n.addrLabels, raw)}
}

// Label returns the label whose address is taken.
func (e AddrLabel) Label() decl.Label {
	if e.IsZero() {
		return decl.Label{}
	}
	return e.ctx.decls.Label(e.raw.label)
}

// AmpAmpLoc returns the location of the &&.
func (e AddrLabel) AmpAmpLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.ampAmp
}

// LabelLoc returns the location of the label name.
func (e AddrLabel) LabelLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.labelLoc
}

// Range returns the source range of this expression.
func (e AddrLabel) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.ampAmp, e.raw.labelLoc)
}

// Compound is a braced block of expression statements. It only appears as
// the body of a [StmtExpr].
type Compound struct {
	withContext
	id  arena.Pointer[rawCompound]
	raw *rawCompound
}

// CompoundArgs is arguments for [Nodes.NewCompound].
type CompoundArgs struct {
	LBrace, RBrace source.Loc
	Exprs          []Expr
}

type rawCompound struct {
	lbrace, rbrace source.Loc
	exprs          []exprID
	adopted        bool
}

// NewCompound constructs a new [Compound]. The statement list is copied.
func (n *Nodes) NewCompound(args CompoundArgs) Compound {
	children := make([]child, len(args.Exprs))
	for i, e := range args.Exprs {
		children[i] = required(fmt.Sprintf("statement %d", i), e)
	}
	ids := n.adopt("compound statement", children...)
	p := n.compounds.NewCompressed(rawCompound{lbrace: args.LBrace, rbrace: args.RBrace, exprs: ids})
	return Compound{withContext{n.Context()}, p, n.compounds.Deref(p)}
}

// Len returns the number of statements.
func (c Compound) Len() int {
	if c.IsZero() {
		return 0
	}
	return len(c.raw.exprs)
}

// Exprs returns an iterator over the statements, in order.
func (c Compound) Exprs() iter.Seq[Expr] {
	return func(yield func(Expr) bool) {
		for i := range c.Len() {
			if !yield(c.ctx.expr(c.raw.exprs[i])) {
				return
			}
		}
	}
}

// Last returns the final statement, whose value is the value of the block.
// Zero if the block is empty.
func (c Compound) Last() Expr {
	if c.Len() == 0 {
		return Expr{}
	}
	return c.ctx.expr(c.raw.exprs[c.Len()-1])
}

// Range returns the source range of the block, brace to brace.
func (c Compound) Range() source.Range {
	if c.IsZero() {
		return source.Range{}
	}
	return source.NewRange(c.raw.lbrace, c.raw.rbrace)
}

// StmtExpr is the GNU statement expression, ({ ... }).
type StmtExpr struct{ node[rawStmtExpr] }

// StmtExprArgs is arguments for [Nodes.NewStmtExpr].
type StmtExprArgs struct {
	Type           ctype.QualType
	Body           Compound
	LParen, RParen source.Loc
}

type rawStmtExpr struct {
	body           arena.Pointer[rawCompound]
	lparen, rparen source.Loc
}

// NewStmtExpr constructs a new [StmtExpr], which takes ownership of Body.
func (n *Nodes) NewStmtExpr(args StmtExprArgs) StmtExpr {
	n.mustType(args.Type, "statement expression")
	switch {
	case args.Body.IsZero():
		panic("cexpr/ast: statement expression requires a body")
	case args.Body.ctx != n.Context():
		panic("cexpr/ast: attempt to mix different contexts in statement expression body")
	case args.Body.raw.adopted:
		panic("cexpr/ast: body of statement expression already has a parent")
	}
	args.Body.raw.adopted = true
	raw := rawStmtExpr{body: args.Body.id, lparen: args.LParen, rparen: args.RParen}
	return StmtExpr{newNode(n, KindStmtExpr, args.Type, &n.stmtExprs, raw)}
}

// Body returns the enclosed block.
func (e StmtExpr) Body() Compound {
	if e.IsZero() {
		return Compound{}
	}
	return Compound{e.withContext, e.raw.body, e.ctx.compounds.Deref(e.raw.body)}
}

// Range returns the source range of this expression.
func (e StmtExpr) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.lparen, e.raw.rparen)
}

// TypesCompatible is __builtin_types_compatible_p(T1, T2).
type TypesCompatible struct{ node[rawTypesCompatible] }

// TypesCompatibleArgs is arguments for [Nodes.NewTypesCompatible].
type TypesCompatibleArgs struct {
	Type         ctype.QualType
	Type1, Type2 ctype.QualType
	BuiltinLoc   source.Loc
	RParen       source.Loc
}

type rawTypesCompatible struct {
	type1, type2    ctype.QualType
	builtin, rparen source.Loc
}

// NewTypesCompatible constructs a new [TypesCompatible].
func (n *Nodes) NewTypesCompatible(args TypesCompatibleArgs) TypesCompatible {
	n.mustType(args.Type, "__builtin_types_compatible_p")
	n.mustType(args.Type1, "__builtin_types_compatible_p first argument")
	n.mustType(args.Type2, "__builtin_types_compatible_p second argument")
	raw := rawTypesCompatible{type1: args.Type1, type2: args.Type2, builtin: args.BuiltinLoc, rparen: args.RParen}
	return TypesCompatible{newNode(n, KindTypesCompatible, args.Type, &n.typesCompatibles, raw)}
}

// Type1 returns the first type argument.
func (e TypesCompatible) Type1() ctype.QualType {
	if e.IsZero() {
		return ctype.QualType{}
	}
	return e.raw.type1
}

// Type2 returns the second type argument.
func (e TypesCompatible) Type2() ctype.QualType {
	if e.IsZero() {
		return ctype.QualType{}
	}
	return e.raw.type2
}

// BuiltinLoc returns the location of the builtin's name.
func (e TypesCompatible) BuiltinLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.builtin
}

// Range returns the source range of this expression.
func (e TypesCompatible) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.builtin, e.raw.rparen)
}

// Choose is __builtin_choose_expr(cond, a, b), which selects a branch at
// compile time. Cond must be an integer constant expression.
type Choose struct{ node[rawChoose] }

// ChooseArgs is arguments for [Nodes.NewChoose].
type ChooseArgs struct {
	Type             ctype.QualType
	Cond, Then, Else Expr
	BuiltinLoc       source.Loc
	RParen           source.Loc
}

type rawChoose struct {
	cond, then, els exprID
	builtin, rparen source.Loc
}

// NewChoose constructs a new [Choose].
func (n *Nodes) NewChoose(args ChooseArgs) Choose {
	n.mustType(args.Type, "__builtin_choose_expr")
	ids := n.adopt("__builtin_choose_expr",
		required("condition", args.Cond),
		required("first branch", args.Then),
		required("second branch", args.Else),
	)
	raw := rawChoose{cond: ids[0], then: ids[1], els: ids[2], builtin: args.BuiltinLoc, rparen: args.RParen}
	return Choose{newNode(n, KindChoose, args.Type, &n.chooses, raw)}
}

// Cond returns the condition.
func (e Choose) Cond() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.cond)
}

// Then returns the branch chosen when the condition is nonzero.
func (e Choose) Then() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.then)
}

// Else returns the branch chosen when the condition is zero.
func (e Choose) Else() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.els)
}

// BuiltinLoc returns the location of the builtin's name.
func (e Choose) BuiltinLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.builtin
}

// Range returns the source range of this expression.
func (e Choose) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.builtin, e.raw.rparen)
}
