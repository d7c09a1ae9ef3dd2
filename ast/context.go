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
	"slices"

	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/internal/arena"
	"github.com/bufbuild/cexpr/source"
)

// Context owns every expression node of a translation unit.
//
// Nodes are allocated into per-variant arenas and refer to their children by
// compressed pointer. Dropping the Context frees the whole tree at once.
//
// A Context is built by a single goroutine; once construction is done, any
// number of goroutines may query it.
type Context struct {
	types *ctype.Context
	decls *decl.Table

	arenas
}

type arenas struct {
	exprs arena.Arena[rawExpr]

	declRefs         arena.Arena[rawDeclRef]
	predefineds      arena.Arena[rawPredefined]
	integers         arena.Arena[rawIntegerLiteral]
	chars            arena.Arena[rawCharLiteral]
	floats           arena.Arena[rawFloatLiteral]
	strings          arena.Arena[rawStringLiteral]
	parens           arena.Arena[rawParen]
	unaries          arena.Arena[rawUnary]
	sizeOfs          arena.Arena[rawSizeOfAlignOfType]
	subscripts       arena.Arena[rawArraySubscript]
	calls            arena.Arena[rawCall]
	members          arena.Arena[rawMember]
	vectors          arena.Arena[rawVectorElement]
	compoundLiterals arena.Arena[rawCompoundLiteral]
	casts            arena.Arena[rawCast]
	binaries         arena.Arena[rawBinary]
	conditionals     arena.Arena[rawConditional]
	addrLabels       arena.Arena[rawAddrLabel]
	stmtExprs        arena.Arena[rawStmtExpr]
	typesCompatibles arena.Arena[rawTypesCompatible]
	chooses          arena.Arena[rawChoose]

	compounds arena.Arena[rawCompound]
}

// rawExpr is the header shared by every node.
type rawExpr struct {
	kind    Kind
	ty      ctype.QualType
	payload arena.Untyped

	adopted, retyped bool
}

type exprID = arena.Pointer[rawExpr]

// Nodes provides storage for the various node types, and can be used to
// construct new ones.
type Nodes Context

// NewContext returns a fresh context whose nodes are typed by types and
// refer to declarations in decls.
func NewContext(types *ctype.Context, decls *decl.Table) *Context {
	if types == nil || decls == nil {
		panic("cexpr/ast: NewContext requires a type context and a declaration table")
	}
	return &Context{types: types, decls: decls}
}

// Types returns the type context that this context's nodes are typed by.
func (c *Context) Types() *ctype.Context {
	return c.types
}

// Decls returns the declaration table that this context's nodes refer to.
func (c *Context) Decls() *decl.Table {
	return c.decls
}

// Len returns the number of nodes allocated in this context.
func (c *Context) Len() int {
	return c.exprs.Len()
}

// Nodes returns the node arena for this context, which can be used to
// allocate new nodes.
func (c *Context) Nodes() *Nodes {
	return (*Nodes)(c)
}

// Context returns the [Context] that this Nodes adds nodes to.
func (n *Nodes) Context() *Context {
	return (*Context)(n)
}

// withContext is embedded in every node handle.
type withContext struct {
	ctx *Context
}

// Context returns the context this node belongs to.
func (c withContext) Context() *Context {
	return c.ctx
}

// IsZero returns whether this is a zero node handle.
func (c withContext) IsZero() bool {
	return c.ctx == nil
}

// node is the representation shared by the typed node views, such as
// [Unary] and [Call].
type node[Raw any] struct {
	withContext
	id  exprID
	raw *Raw
}

// AsAny type-erases this node.
func (n node[Raw]) AsAny() Expr {
	if n.IsZero() {
		return Expr{}
	}
	return Expr{n.withContext, n.id}
}

func wrap[Raw any](e Expr, a *arena.Arena[Raw]) node[Raw] {
	return node[Raw]{e.withContext, e.id, a.At(e.header().payload)}
}

func newNode[Raw any](n *Nodes, kind Kind, ty ctype.QualType, a *arena.Arena[Raw], raw Raw) node[Raw] {
	p := a.NewCompressed(raw)
	id := n.exprs.NewCompressed(rawExpr{kind: kind, ty: ty, payload: p.Untyped()})
	return node[Raw]{withContext{n.Context()}, id, a.Deref(p)}
}

// mustType panics if ty cannot serve as the result type of a node.
func (n *Nodes) mustType(ty ctype.QualType, what string) {
	if ty.IsZero() {
		panic(fmt.Sprintf("cexpr/ast: %s requires a result type", what))
	}
	if !n.types.Owns(ty) {
		panic(fmt.Sprintf("cexpr/ast: %s has a type from a different type context", what))
	}
}

// child is an operand passed to [Nodes.adopt].
type child struct {
	name     string
	expr     Expr
	optional bool
}

func required(name string, e Expr) child {
	return child{name: name, expr: e}
}

func optional(name string, e Expr) child {
	return child{name: name, expr: e, optional: true}
}

// adopt validates a node's children and then marks them as owned. Nothing is
// marked unless every child is valid, so a rejected construction leaves its
// operands free to be used elsewhere.
func (n *Nodes) adopt(what string, children ...child) []exprID {
	ids := make([]exprID, len(children))
	for i, c := range children {
		if c.expr.IsZero() {
			if c.optional {
				continue
			}
			panic(fmt.Sprintf("cexpr/ast: %s requires %s", what, c.name))
		}
		if c.expr.ctx != n.Context() {
			panic(fmt.Sprintf("cexpr/ast: attempt to mix different contexts in %s %s", what, c.name))
		}
		if c.expr.header().adopted {
			panic(fmt.Sprintf("cexpr/ast: %s of %s already has a parent", c.name, what))
		}
		if slices.Contains(ids[:i], c.expr.id) {
			panic(fmt.Sprintf("cexpr/ast: %s of %s appears twice", c.name, what))
		}
		ids[i] = c.expr.id
	}

	for _, id := range ids {
		if !id.Nil() {
			n.exprs.Deref(id).adopted = true
		}
	}
	return ids
}

// expr wraps a child pointer.
func (c *Context) expr(id exprID) Expr {
	if id.Nil() {
		return Expr{}
	}
	return Expr{withContext{c}, id}
}

// Type returns the result type of this node.
func (n node[Raw]) Type() ctype.QualType {
	return n.AsAny().Type()
}

// ExprLoc returns the location diagnostics about this node point at.
func (n node[Raw]) ExprLoc() source.Loc {
	return n.AsAny().ExprLoc()
}
