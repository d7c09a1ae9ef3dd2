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
	"math/big"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/source"
)

// FloatPrec is the mantissa precision, in bits, of floating literal values.
// It is wide enough to hold an IEEE binary128 value, the widest floating type
// of any supported target, exactly.
const FloatPrec = 113

// DeclRef is a reference to a declared name, such as a variable, function,
// or enumerator.
type DeclRef struct{ node[rawDeclRef] }

// DeclRefArgs is arguments for [Nodes.NewDeclRef].
type DeclRefArgs struct {
	Type ctype.QualType
	Decl decl.ID
	Loc  source.Loc
}

type rawDeclRef struct {
	decl decl.ID
	loc  source.Loc
}

// NewDeclRef constructs a new [DeclRef].
func (n *Nodes) NewDeclRef(args DeclRefArgs) DeclRef {
	n.mustType(args.Type, "declaration reference")
	if args.Decl == 0 {
		panic("cexpr/ast: declaration reference requires a declaration")
	}
	return DeclRef{newNode(n, KindDeclRef, args.Type, &n.declRefs, rawDeclRef{args.Decl, args.Loc})}
}

// DeclID returns the handle of the referenced declaration.
func (e DeclRef) DeclID() decl.ID {
	if e.IsZero() {
		return 0
	}
	return e.raw.decl
}

// Decl looks up the referenced declaration.
func (e DeclRef) Decl() decl.Decl {
	if e.IsZero() {
		return decl.Decl{}
	}
	return e.ctx.decls.Decl(e.raw.decl)
}

// Loc returns the location of the name.
func (e DeclRef) Loc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.loc
}

// Range returns the source range of this expression.
func (e DeclRef) Range() source.Range {
	return source.Point(e.Loc())
}

// Predefined is one of the predefined identifiers, such as __func__.
type Predefined struct{ node[rawPredefined] }

// PredefinedArgs is arguments for [Nodes.NewPredefined].
type PredefinedArgs struct {
	Type ctype.QualType
	Kind PredefinedKind
	Loc  source.Loc
}

type rawPredefined struct {
	kind PredefinedKind
	loc  source.Loc
}

// NewPredefined constructs a new [Predefined].
func (n *Nodes) NewPredefined(args PredefinedArgs) Predefined {
	n.mustType(args.Type, "predefined identifier")
	if args.Kind <= PredefinedInvalid || args.Kind > PredefinedPrettyFunction {
		panic(fmt.Sprintf("cexpr/ast: invalid predefined identifier %#v", args.Kind))
	}
	return Predefined{newNode(n, KindPredefined, args.Type, &n.predefineds, rawPredefined{args.Kind, args.Loc})}
}

// IdentKind returns which identifier this is.
func (e Predefined) IdentKind() PredefinedKind {
	if e.IsZero() {
		return PredefinedInvalid
	}
	return e.raw.kind
}

// Loc returns the location of the identifier.
func (e Predefined) Loc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.loc
}

// Range returns the source range of this expression.
func (e Predefined) Range() source.Range {
	return source.Point(e.Loc())
}

// IntegerLiteral is an integer constant such as 42 or 0x10u.
type IntegerLiteral struct{ node[rawIntegerLiteral] }

// IntegerLiteralArgs is arguments for [Nodes.NewIntegerLiteral].
type IntegerLiteralArgs struct {
	// Must be an integer type.
	Type ctype.QualType
	// Converted to the width and signedness of Type.
	Value apint.Int
	Loc   source.Loc
}

type rawIntegerLiteral struct {
	value apint.Int
	loc   source.Loc
}

// NewIntegerLiteral constructs a new [IntegerLiteral].
func (n *Nodes) NewIntegerLiteral(args IntegerLiteralArgs) IntegerLiteral {
	n.mustType(args.Type, "integer literal")
	if !args.Type.IsIntegerType() {
		panic(fmt.Sprintf("cexpr/ast: integer literal with non-integer type %s", args.Type))
	}
	if !args.Value.IsValid() {
		panic("cexpr/ast: integer literal requires a value")
	}
	value := args.Value.Convert(n.types.IntWidth(args.Type), args.Type.IsUnsignedIntegerType())
	return IntegerLiteral{newNode(n, KindIntegerLiteral, args.Type, &n.integers, rawIntegerLiteral{value, args.Loc})}
}

// Value returns the literal's value.
func (e IntegerLiteral) Value() apint.Int {
	if e.IsZero() {
		return apint.Int{}
	}
	return e.raw.value
}

// Loc returns the location of the literal.
func (e IntegerLiteral) Loc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.loc
}

// Range returns the source range of this expression.
func (e IntegerLiteral) Range() source.Range {
	return source.Point(e.Loc())
}

// CharLiteral is a character constant such as 'a' or L'é'.
type CharLiteral struct{ node[rawCharLiteral] }

// CharLiteralArgs is arguments for [Nodes.NewCharLiteral].
type CharLiteralArgs struct {
	Type  ctype.QualType
	Value uint32
	Wide  bool
	Loc   source.Loc
}

type rawCharLiteral struct {
	value uint32
	loc   source.Loc
	wide  bool
}

// NewCharLiteral constructs a new [CharLiteral].
func (n *Nodes) NewCharLiteral(args CharLiteralArgs) CharLiteral {
	n.mustType(args.Type, "character literal")
	return CharLiteral{newNode(n, KindCharLiteral, args.Type, &n.chars, rawCharLiteral{args.Value, args.Loc, args.Wide})}
}

// Value returns the code point of the character.
func (e CharLiteral) Value() uint32 {
	if e.IsZero() {
		return 0
	}
	return e.raw.value
}

// Loc returns the location of the literal.
func (e CharLiteral) Loc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.loc
}

// IsWide returns whether this is a wide (L'x') character constant.
func (e CharLiteral) IsWide() bool {
	return !e.IsZero() && e.raw.wide
}

// Range returns the source range of this expression.
func (e CharLiteral) Range() source.Range {
	return source.Point(e.Loc())
}

// FloatLiteral is a floating constant such as 1.5 or 0x1p-3f.
type FloatLiteral struct{ node[rawFloatLiteral] }

// FloatLiteralArgs is arguments for [Nodes.NewFloatLiteral].
type FloatLiteralArgs struct {
	// Must be a real floating type.
	Type ctype.QualType
	// Copied and rounded to [FloatPrec] bits.
	Value *big.Float
	Loc   source.Loc
}

type rawFloatLiteral struct {
	value *big.Float
	loc   source.Loc
}

// NewFloatLiteral constructs a new [FloatLiteral].
func (n *Nodes) NewFloatLiteral(args FloatLiteralArgs) FloatLiteral {
	n.mustType(args.Type, "floating literal")
	if !args.Type.IsRealFloatingType() {
		panic(fmt.Sprintf("cexpr/ast: floating literal with non-floating type %s", args.Type))
	}
	if args.Value == nil {
		panic("cexpr/ast: floating literal requires a value")
	}
	value := new(big.Float).SetPrec(FloatPrec).Set(args.Value)
	return FloatLiteral{newNode(n, KindFloatLiteral, args.Type, &n.floats, rawFloatLiteral{value, args.Loc})}
}

// Value returns a copy of the literal's value.
func (e FloatLiteral) Value() *big.Float {
	if e.IsZero() {
		return nil
	}
	return new(big.Float).Copy(e.raw.value)
}

// Loc returns the location of the literal.
func (e FloatLiteral) Loc() source.Loc {
	if e.IsZero() {
		return 0
	}
	return e.raw.loc
}

// Range returns the source range of this expression.
func (e FloatLiteral) Range() source.Range {
	return source.Point(e.Loc())
}

// StringLiteral is a string constant, possibly formed by concatenating
// several adjacent string tokens.
type StringLiteral struct{ node[rawStringLiteral] }

// StringLiteralArgs is arguments for [Nodes.NewStringLiteral].
type StringLiteralArgs struct {
	Type ctype.QualType
	// The decoded contents, without a terminating NUL. Copied.
	Data []byte
	Wide bool
	// The first and last string tokens.
	FirstLoc, LastLoc source.Loc
}

type rawStringLiteral struct {
	data              []byte
	wide              bool
	firstLoc, lastLoc source.Loc
}

// NewStringLiteral constructs a new [StringLiteral].
func (n *Nodes) NewStringLiteral(args StringLiteralArgs) StringLiteral {
	n.mustType(args.Type, "string literal")
	raw := rawStringLiteral{
		data:     append(make([]byte, 0, len(args.Data)), args.Data...),
		wide:     args.Wide,
		firstLoc: args.FirstLoc,
		lastLoc:  args.LastLoc,
	}
	return StringLiteral{newNode(n, KindStringLiteral, args.Type, &n.strings, raw)}
}

// Bytes returns the contents of the literal. The returned slice must not
// be modified.
func (e StringLiteral) Bytes() []byte {
	if e.IsZero() {
		return nil
	}
	return e.raw.data
}

// Len returns the length of the contents in bytes.
func (e StringLiteral) Len() int {
	return len(e.Bytes())
}

// IsWide returns whether this is a wide (L"...") string.
func (e StringLiteral) IsWide() bool {
	return !e.IsZero() && e.raw.wide
}

// Range returns the source range of this expression.
func (e StringLiteral) Range() source.Range {
	if e.IsZero() {
		return source.Range{}
	}
	return source.NewRange(e.raw.firstLoc, e.raw.lastLoc)
}
