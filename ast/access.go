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
	"strings"

	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/source"
)

// ArraySubscript is an indexing expression, base[index].
type ArraySubscript struct{ node[rawArraySubscript] }

// ArraySubscriptArgs is arguments for [Nodes.NewArraySubscript].
type ArraySubscriptArgs struct {
	Type        ctype.QualType
	Base, Index Expr
	RBracket    source.Loc
}

type rawArraySubscript struct {
	base, index exprID
	rbracket    source.Loc
}

// NewArraySubscript constructs a new [ArraySubscript].
func (n *Nodes) NewArraySubscript(args ArraySubscriptArgs) ArraySubscript {
	n.mustType(args.Type, "array subscript")
	ids := n.adopt("array subscript", required("base", args.Base), required("index", args.Index))
	raw := rawArraySubscript{base: ids[0], index: ids[1], rbracket: args.RBracket}
	return ArraySubscript{newNode(n, KindArraySubscript, args.Type, &n.subscripts, raw)}
}

// Base returns the expression being indexed. In C, a[i] and i[a] are the
// same expression; this is always the left operand as written.
func (e ArraySubscript) Base() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.base)
}

// Index returns the index.
func (e ArraySubscript) Index() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.index)
}

// RBracketLoc returns the location of the ].
func (e ArraySubscript) RBracketLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.rbracket
}

// Range returns the source range of this expression.
func (e ArraySubscript) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(e.Base().Range(), e.Index().Range(), source.Point(e.raw.rbracket))
}

// Call is a function call.
type Call struct{ node[rawCall] }

// CallArgs is arguments for [Nodes.NewCall].
type CallArgs struct {
	Type   ctype.QualType
	Callee Expr
	Args   []Expr
	RParen source.Loc
}

type rawCall struct {
	callee exprID
	args   []exprID
	rparen source.Loc
}

// NewCall constructs a new [Call]. The argument list is copied; its length
// is fixed from then on.
func (n *Nodes) NewCall(args CallArgs) Call {
	n.mustType(args.Type, "call")
	children := make([]child, 0, len(args.Args)+1)
	children = append(children, required("callee", args.Callee))
	for i, arg := range args.Args {
		children = append(children, required(fmt.Sprintf("argument %d", i), arg))
	}
	ids := n.adopt("call", children...)
	raw := rawCall{callee: ids[0], args: ids[1:len(ids):len(ids)], rparen: args.RParen}
	return Call{newNode(n, KindCall, args.Type, &n.calls, raw)}
}

// Callee returns the expression being called.
func (e Call) Callee() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.callee)
}

// NumArgs returns the number of arguments.
func (e Call) NumArgs() int {
	if e.IsZero() {
		return 0
	}
	return len(e.raw.args)
}

// Arg returns the nth argument.
//
// Panics if n is out of bounds.
func (e Call) Arg(n int) Expr {
	if n < 0 || n >= e.NumArgs() {
		panic(fmt.Sprintf("cexpr/ast: argument index %d out of range for call with %d arguments", n, e.NumArgs()))
	}
	return e.ctx.expr(e.raw.args[n])
}

// Args returns an iterator over the arguments and their indices.
func (e Call) Args() iter.Seq2[int, Expr] {
	return func(yield func(int, Expr) bool) {
		for i := range e.NumArgs() {
			if !yield(i, e.Arg(i)) {
				return
			}
		}
	}
}

// NumCommas returns the number of commas separating the arguments.
func (e Call) NumCommas() int {
	return max(e.NumArgs()-1, 0)
}

// RParenLoc returns the location of the ).
func (e Call) RParenLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.rparen
}

// Range returns the source range of this expression.
func (e Call) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	ranges := []source.Range{e.Callee().Range(), source.Point(e.raw.rparen)}
	for _, arg := range e.Args() {
		ranges = append(ranges, arg.Range())
	}
	return source.Join(ranges...)
}

// Member is a struct or union member access, base.name or base->name.
type Member struct{ node[rawMember] }

// MemberArgs is arguments for [Nodes.NewMember].
type MemberArgs struct {
	Base Expr
	// Must be a field declaration.
	Field     decl.ID
	MemberLoc source.Loc
	IsArrow   bool
}

type rawMember struct {
	base      exprID
	field     decl.ID
	memberLoc source.Loc
	arrow     bool
}

// NewMember constructs a new [Member].
//
// Its type is the declared type of the field, plus any qualifiers of the
// object being accessed: the type of x.f where x is const is const. The type
// is derived from the base and the field whenever it is read, so it cannot be
// changed with [Expr.SetType].
func (n *Nodes) NewMember(args MemberArgs) Member {
	field := n.decls.Decl(args.Field)
	if field.Kind() != decl.KindField {
		panic(fmt.Sprintf("cexpr/ast: member access requires a field, got %v", field))
	}
	if !args.Base.IsZero() {
		n.mustType(memberType(field, args.Base.Type(), args.IsArrow), "member access")
	}

	ids := n.adopt("member access", required("base", args.Base))
	raw := rawMember{base: ids[0], field: args.Field, memberLoc: args.MemberLoc, arrow: args.IsArrow}
	return Member{newNode(n, KindMember, ctype.QualType{}, &n.members, raw)}
}

// memberType is the type of a member access of field on an object of type
// base, or on the pointee of base for ->.
func memberType(field decl.Decl, base ctype.QualType, arrow bool) ctype.QualType {
	if arrow {
		base = base.Pointee()
	}
	return field.Type().WithQuals(base.Quals())
}

// Base returns the expression whose member is being accessed.
func (e Member) Base() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.base)
}

// FieldID returns the handle of the accessed field.
func (e Member) FieldID() decl.ID {
	if e.IsZero() {
		return 0
	}
	return e.raw.field
}

// Field returns the accessed field.
func (e Member) Field() decl.Decl {
	if e.IsZero() {
		return decl.Decl{}
	}
	return e.ctx.decls.Decl(e.raw.field)
}

func (e Member) derivedType() ctype.QualType {
	return memberType(e.Field(), e.Base().Type(), e.raw.arrow)
}

// IsArrow returns whether this is a -> access.
func (e Member) IsArrow() bool {
	return !e.IsZero() && e.raw.arrow
}

// MemberLoc returns the location of the member name.
func (e Member) MemberLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.memberLoc
}

// Range returns the source range of this expression.
func (e Member) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(e.Base().Range(), source.Point(e.raw.memberLoc))
}

// VectorElement is a vector swizzle such as v.xy or v.rgba.
type VectorElement struct{ node[rawVectorElement] }

// VectorElementArgs is arguments for [Nodes.NewVectorElement].
type VectorElementArgs struct {
	Type ctype.QualType
	Base Expr
	// One to four selectors, all from the same [ElementSet].
	Accessor    string
	AccessorLoc source.Loc
}

type rawVectorElement struct {
	base        exprID
	accessor    string
	set         ElementSet
	accessorLoc source.Loc
}

// NewVectorElement constructs a new [VectorElement].
func (n *Nodes) NewVectorElement(args VectorElementArgs) VectorElement {
	n.mustType(args.Type, "vector element access")
	set := ElementSetOf(args.Accessor)
	if set == ElementSetInvalid {
		panic(fmt.Sprintf("cexpr/ast: invalid vector accessor %q", args.Accessor))
	}
	ids := n.adopt("vector element access", required("base", args.Base))
	raw := rawVectorElement{base: ids[0], accessor: args.Accessor, set: set, accessorLoc: args.AccessorLoc}
	return VectorElement{newNode(n, KindVectorElement, args.Type, &n.vectors, raw)}
}

// ElementSetOf returns the set that every selector of accessor is drawn from.
// Returns [ElementSetInvalid] if accessor is empty, longer than four
// selectors, or mixes sets.
func ElementSetOf(accessor string) ElementSet {
	if len(accessor) == 0 || len(accessor) > 4 {
		return ElementSetInvalid
	}
	for set := ElementSetPoint; set <= ElementSetTexture; set++ {
		ok := true
		for _, r := range accessor {
			if !strings.ContainsRune(set.String(), r) {
				ok = false
				break
			}
		}
		if ok {
			return set
		}
	}
	return ElementSetInvalid
}

// Base returns the vector being accessed.
func (e VectorElement) Base() Expr {
	if e.IsZero() {
		return Expr{}
	}
	return e.ctx.expr(e.raw.base)
}

// Accessor returns the accessor as written, such as "xy".
func (e VectorElement) Accessor() string {
	if e.IsZero() {
		return ""
	}
	return e.raw.accessor
}

// ElementSet returns which alphabet the accessor uses.
func (e VectorElement) ElementSet() ElementSet {
	if e.IsZero() {
		return ElementSetInvalid
	}
	return e.raw.set
}

// NumElements returns the number of selectors, which is the number of lanes
// of the result.
func (e VectorElement) NumElements() int {
	return len(e.Accessor())
}

// AccessedField returns the lane selected by the nth selector.
func (e VectorElement) AccessedField(n int) int {
	if n < 0 || n >= e.NumElements() {
		panic(fmt.Sprintf("cexpr/ast: selector index %d out of range for %q", n, e.Accessor()))
	}
	return strings.IndexByte(e.raw.set.String(), e.raw.accessor[n])
}

// EncodedAccess packs the selected lanes two bits apiece, with the first
// selector in the lowest bits.
func (e VectorElement) EncodedAccess() uint {
	var enc uint
	for i := range e.NumElements() {
		enc |= uint(e.AccessedField(i)) << (2 * i)
	}
	return enc
}

// ContainsDuplicates returns whether any lane is selected more than once,
// which makes the expression unusable as an assignment target.
func (e VectorElement) ContainsDuplicates() bool {
	enc, n := e.EncodedAccess(), e.NumElements()
	var seen uint
	for i := range n {
		bit := uint(1) << ((enc >> (2 * i)) & 3)
		if seen&bit != 0 {
			return true
		}
		seen |= bit
	}
	return false
}

// AccessorLoc returns the location of the accessor.
func (e VectorElement) AccessorLoc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.accessorLoc
}

// Range returns the source range of this expression.
func (e VectorElement) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.Join(e.Base().Range(), source.Point(e.raw.accessorLoc))
}
