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

// Package printer renders expression trees as C source and as indented
// debugging dumps.
package printer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/source"
)

// Options configures [Print] and [Dump].
type Options struct {
	// If set, implicit casts are printed as if they were written out.
	ShowImplicitCasts bool

	// Resolves the ranges printed by Dump. If nil, ranges are omitted.
	Files *source.Manager
}

// Print renders e as C source.
//
// Parentheses appear exactly where the tree has [ast.Paren] nodes, so
// printing a tree built from source reproduces its grouping.
func Print(e ast.Expr, opts Options) string {
	if e.IsZero() {
		return ""
	}
	return ast.Visit[string](e, printer{opts})
}

// printer is an [ast.Visitor] that renders each node as a string.
type printer struct {
	opts Options
}

var _ ast.Visitor[string] = printer{}

func (p printer) print(e ast.Expr) string {
	return ast.Visit[string](e, p)
}

func (p printer) VisitDeclRef(e ast.DeclRef) string {
	return e.Decl().Name()
}

func (p printer) VisitPredefined(e ast.Predefined) string {
	return e.IdentKind().String()
}

func (p printer) VisitIntegerLiteral(e ast.IntegerLiteral) string {
	return e.Value().String() + integerSuffix(e.Type())
}

func (p printer) VisitCharLiteral(e ast.CharLiteral) string {
	var out strings.Builder
	if e.IsWide() {
		out.WriteByte('L')
	}
	out.WriteByte('\'')
	switch v := e.Value(); {
	case v < 0x80:
		escape(&out, byte(v), '\'')
	case v <= 0xff && !e.IsWide():
		fmt.Fprintf(&out, "\\%03o", v)
	default:
		// A character constant holds a single escape, so a hex escape
		// cannot run into a following character.
		fmt.Fprintf(&out, "\\x%x", v)
	}
	out.WriteByte('\'')
	return out.String()
}

func (p printer) VisitFloatLiteral(e ast.FloatLiteral) string {
	return formatFloat(e.Value()) + floatSuffix(e.Type())
}

func (p printer) VisitStringLiteral(e ast.StringLiteral) string {
	var out strings.Builder
	if e.IsWide() {
		out.WriteByte('L')
	}
	out.WriteByte('"')
	if !e.IsWide() {
		for _, b := range e.Bytes() {
			escape(&out, b, '"')
		}
		out.WriteByte('"')
		return out.String()
	}

	// Wide strings hold UTF-8; each rune is one element. Every escape used
	// here has a fixed length.
	for _, r := range string(e.Bytes()) {
		switch {
		case r < 0x80:
			escape(&out, byte(r), '"')
		case r < 0x200:
			fmt.Fprintf(&out, "\\%03o", r)
		case r <= 0xffff:
			fmt.Fprintf(&out, "\\u%04x", r)
		default:
			fmt.Fprintf(&out, "\\U%08x", r)
		}
	}
	out.WriteByte('"')
	return out.String()
}

func (p printer) VisitParen(e ast.Paren) string {
	return "(" + p.print(e.Sub()) + ")"
}

func (p printer) VisitUnary(e ast.Unary) string {
	operand := p.print(e.Operand())
	switch op := e.Op(); {
	case op.IsPostfix():
		return operand + op.String()
	case op == ast.UnaryOffsetOf:
		record, path := designator(e.Operand(), p)
		return fmt.Sprintf("%s(%s, %s)", op, record, path)
	case op.IsSizeOfAlignOf(), op == ast.UnaryReal, op == ast.UnaryImag, op == ast.UnaryExtension:
		return op.String() + " " + operand
	default:
		// Keep - -x from becoming --x.
		if s := op.String(); strings.HasPrefix(operand, s[len(s)-1:]) {
			return s + " " + operand
		}
		return op.String() + operand
	}
}

func (p printer) VisitSizeOfAlignOfType(e ast.SizeOfAlignOfType) string {
	op := ast.UnaryAlignOf
	if e.IsSizeOf() {
		op = ast.UnarySizeOf
	}
	return fmt.Sprintf("%s(%s)", op, e.ArgType())
}

func (p printer) VisitArraySubscript(e ast.ArraySubscript) string {
	return p.print(e.Base()) + "[" + p.print(e.Index()) + "]"
}

func (p printer) VisitCall(e ast.Call) string {
	args := make([]string, 0, e.NumArgs())
	for _, arg := range e.Args() {
		args = append(args, p.print(arg))
	}
	return p.print(e.Callee()) + "(" + strings.Join(args, ", ") + ")"
}

func (p printer) VisitMember(e ast.Member) string {
	sep := "."
	if e.IsArrow() {
		sep = "->"
	}
	return p.print(e.Base()) + sep + e.Field().Name()
}

func (p printer) VisitVectorElement(e ast.VectorElement) string {
	return p.print(e.Base()) + "." + e.Accessor()
}

func (p printer) VisitCompoundLiteral(e ast.CompoundLiteral) string {
	return fmt.Sprintf("(%s){%s}", e.Type(), p.print(e.Init()))
}

func (p printer) VisitImplicitCast(e ast.ImplicitCast) string {
	if p.opts.ShowImplicitCasts {
		return fmt.Sprintf("(%s)%s", e.Type(), p.print(e.Operand()))
	}
	return p.print(e.Operand())
}

func (p printer) VisitCast(e ast.Cast) string {
	return fmt.Sprintf("(%s)%s", e.Type(), p.print(e.Operand()))
}

func (p printer) VisitBinary(e ast.Binary) string {
	if e.Op() == ast.BinaryComma {
		return p.print(e.LHS()) + ", " + p.print(e.RHS())
	}
	return p.print(e.LHS()) + " " + e.Op().String() + " " + p.print(e.RHS())
}

func (p printer) VisitCompoundAssign(e ast.CompoundAssign) string {
	return p.VisitBinary(e.Binary)
}

func (p printer) VisitConditional(e ast.Conditional) string {
	if e.Then().IsZero() {
		return p.print(e.Cond()) + " ?: " + p.print(e.Else())
	}
	return p.print(e.Cond()) + " ? " + p.print(e.Then()) + " : " + p.print(e.Else())
}

func (p printer) VisitAddrLabel(e ast.AddrLabel) string {
	return "&&" + e.Label().Name()
}

func (p printer) VisitStmtExpr(e ast.StmtExpr) string {
	var out strings.Builder
	out.WriteString("({ ")
	for stmt := range e.Body().Exprs() {
		out.WriteString(p.print(stmt))
		out.WriteString("; ")
	}
	out.WriteString("})")
	return out.String()
}

func (p printer) VisitTypesCompatible(e ast.TypesCompatible) string {
	return fmt.Sprintf("__builtin_types_compatible_p(%s, %s)", e.Type1(), e.Type2())
}

func (p printer) VisitChoose(e ast.Choose) string {
	return fmt.Sprintf("__builtin_choose_expr(%s, %s, %s)", p.print(e.Cond()), p.print(e.Then()), p.print(e.Else()))
}

// designator recovers the type and member designator of a
// __builtin_offsetof operand, which is a chain of accesses rooted at a null
// object of the record type.
func designator(e ast.Expr, p printer) (record ctype.QualType, path string) {
	switch e.Kind() {
	case ast.KindParen:
		return designator(e.AsParen().Sub(), p)
	case ast.KindImplicitCast:
		return designator(e.AsImplicitCast().Operand(), p)
	case ast.KindMember:
		m := e.AsMember()
		name := m.Field().Name()
		if m.IsArrow() {
			return m.Base().Type().Pointee(), name
		}
		record, path = designator(m.Base(), p)
		if path == "" {
			return record, name
		}
		return record, path + "." + name
	case ast.KindArraySubscript:
		s := e.AsArraySubscript()
		record, path = designator(s.Base(), p)
		return record, path + "[" + p.print(s.Index()) + "]"
	default:
		return e.Type(), ""
	}
}

// escape writes b as it appears inside a C literal delimited by quote.
// Non-printable bytes use three-digit octal escapes, which end after exactly
// three digits regardless of what follows.
func escape(out *strings.Builder, b byte, quote byte) {
	switch b {
	case '\a':
		out.WriteString(`\a`)
	case '\b':
		out.WriteString(`\b`)
	case '\f':
		out.WriteString(`\f`)
	case '\n':
		out.WriteString(`\n`)
	case '\r':
		out.WriteString(`\r`)
	case '\t':
		out.WriteString(`\t`)
	case '\v':
		out.WriteString(`\v`)
	case '\\':
		out.WriteString(`\\`)
	case quote:
		out.WriteByte('\\')
		out.WriteByte(b)
	default:
		if b < 0x20 || b >= 0x7f {
			fmt.Fprintf(out, "\\%03o", b)
			return
		}
		out.WriteByte(b)
	}
}

func integerSuffix(t ctype.QualType) string {
	switch t.Kind() {
	case ctype.KindUInt:
		return "u"
	case ctype.KindLong:
		return "l"
	case ctype.KindULong:
		return "ul"
	case ctype.KindLongLong:
		return "ll"
	case ctype.KindULongLong:
		return "ull"
	default:
		return ""
	}
}

func floatSuffix(t ctype.QualType) string {
	switch t.Kind() {
	case ctype.KindFloat:
		return "f"
	case ctype.KindLongDouble:
		return "l"
	default:
		return ""
	}
}

// formatFloat prints the shortest decimal that reads back as v, always with
// a decimal point or exponent so that it stays a floating literal.
func formatFloat(v *big.Float) string {
	text := v.Text('g', -1)
	if !strings.ContainsAny(text, ".eInf") {
		text += ".0"
	}
	return text
}
