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

package sema

import (
	"fmt"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/source"
)

// NotConstantError is returned by [Analyzer.EvaluateInteger] for an
// expression that is not an integer constant expression.
type NotConstantError struct {
	// The subexpression that could not be folded.
	Expr ast.Expr
	// Where to point at when reporting the failure.
	Loc source.Loc
	// A short description of what went wrong, such as "division by zero".
	Reason string
}

// Error implements [error].
func (e *NotConstantError) Error() string {
	return "not an integer constant expression: " + e.Reason
}

func notConstant(e ast.Expr, loc source.Loc, format string, args ...any) error {
	return &NotConstantError{Expr: e, Loc: loc, Reason: fmt.Sprintf(format, args...)}
}

// IsIntegerConstantExpr returns whether e is an integer constant expression
// in an evaluated context.
func (a *Analyzer) IsIntegerConstantExpr(e ast.Expr) bool {
	_, err := a.EvaluateInteger(e, true)
	return err == nil
}

// EvaluateInteger folds an integer constant expression (C99 6.6p6) to its
// value, with the width and signedness of e's type.
//
// evaluated is false when e appears somewhere its value is never computed,
// such as the unselected side of a conditional. In that case division by zero
// and the comma operator are tolerated.
//
// Failures are reported as a [*NotConstantError].
func (a *Analyzer) EvaluateInteger(e ast.Expr, evaluated bool) (apint.Int, error) {
	if e.IsZero() {
		panic("cexpr/sema: EvaluateInteger of a zero expression")
	}
	v, err := a.eval(e, evaluated)
	if err != nil {
		return apint.Int{}, err
	}
	return a.convert(v, e.Type()), nil
}

func (a *Analyzer) eval(e ast.Expr, evaluated bool) (apint.Int, error) {
	ty := e.Type()
	if !ty.IsIntegerType() {
		return apint.Int{}, notConstant(e, e.ExprLoc(), "expression has type %s", ty)
	}

	switch e.Kind() {
	case ast.KindIntegerLiteral:
		return a.convert(e.AsIntegerLiteral().Value(), ty), nil

	case ast.KindCharLiteral:
		width, unsigned := a.layoutOf(ty)
		return apint.From(e.AsCharLiteral().Value(), width, unsigned), nil

	case ast.KindDeclRef:
		d := a.decls.Decl(e.AsDeclRef().DeclID())
		if !d.InitValue().IsValid() {
			return apint.Int{}, notConstant(e, e.Begin(), "%s is not a constant", d.Name())
		}
		return a.convert(d.InitValue(), ty), nil

	case ast.KindParen:
		return a.eval(e.AsParen().Sub(), evaluated)

	case ast.KindUnary:
		return a.evalUnary(e.AsUnary(), evaluated)

	case ast.KindSizeOfAlignOfType:
		n := e.AsSizeOfAlignOfType()
		return a.sizeOrAlign(e, n.OpLoc(), n.IsSizeOf(), n.ArgType())

	case ast.KindBinary:
		return a.evalBinary(e.AsBinary(), evaluated)

	case ast.KindConditional:
		c := e.AsConditional()
		cond, err := a.eval(c.Cond(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		if !cond.IsZero() {
			if c.Then().IsZero() {
				return a.convert(cond, ty), nil
			}
			v, err := a.eval(c.Then(), evaluated)
			return a.convert(v, ty), err
		}
		v, err := a.eval(c.Else(), evaluated)
		return a.convert(v, ty), err

	case ast.KindChoose:
		c := e.AsChoose()
		cond, err := a.eval(c.Cond(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		chosen := c.Then()
		if cond.IsZero() {
			chosen = c.Else()
		}
		v, err := a.eval(chosen, evaluated)
		return a.convert(v, ty), err

	case ast.KindTypesCompatible:
		tc := e.AsTypesCompatible()
		ok := a.types.Compatible(tc.Type1().Unqualified(), tc.Type2().Unqualified())
		width, unsigned := a.layoutOf(ty)
		return apint.FromBool(ok, width, unsigned), nil

	case ast.KindCast:
		return a.evalCast(e, e.AsCast().Operand(), evaluated)

	case ast.KindImplicitCast:
		return a.evalCast(e, e.AsImplicitCast().Operand(), evaluated)

	default:
		return apint.Int{}, notConstant(e, e.Begin(), "%s is not allowed in a constant expression", describe(e))
	}
}

func (a *Analyzer) evalUnary(u ast.Unary, evaluated bool) (apint.Int, error) {
	e := u.AsAny()
	switch u.Op() {
	case ast.UnaryPlus, ast.UnaryExtension:
		v, err := a.eval(u.Operand(), evaluated)
		return a.convert(v, u.Type()), err

	case ast.UnaryMinus, ast.UnaryNot:
		v, err := a.eval(u.Operand(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		v = a.convert(v, u.Type())
		if u.Op() == ast.UnaryMinus {
			return v.Neg(), nil
		}
		return v.Not(), nil

	case ast.UnaryLNot:
		v, err := a.eval(u.Operand(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		width, unsigned := a.layoutOf(u.Type())
		return apint.FromBool(v.IsZero(), width, unsigned), nil

	case ast.UnarySizeOf, ast.UnaryAlignOf:
		return a.sizeOrAlign(e, u.OpLoc(), u.Op() == ast.UnarySizeOf, u.Operand().Type())

	case ast.UnaryOffsetOf:
		offset, err := a.offsetOf(u.Operand(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		width, unsigned := a.layoutOf(u.Type())
		return apint.From(offset, width, unsigned), nil

	default:
		return apint.Int{}, notConstant(e, u.OpLoc(), "operator %s is not allowed in a constant expression", u.Op())
	}
}

func (a *Analyzer) sizeOrAlign(e ast.Expr, loc source.Loc, isSizeOf bool, arg ctype.QualType) (apint.Int, error) {
	var (
		n  uint64
		ok bool
	)
	if isSizeOf {
		n, ok = a.types.SizeOf(arg)
	} else {
		n, ok = a.types.AlignOf(arg)
	}
	if !ok {
		return apint.Int{}, notConstant(e, loc, "%s does not have a constant size", arg)
	}
	width, unsigned := a.layoutOf(e.Type())
	return apint.From(n, width, unsigned), nil
}

// offsetOf computes the byte offset designated by the operand of
// __builtin_offsetof: a chain of member accesses and subscripts, rooted at a
// null object of the record type, that names at least one member.
func (a *Analyzer) offsetOf(e ast.Expr, evaluated bool) (uint64, error) {
	switch e.Kind() {
	case ast.KindParen:
		return a.offsetOf(e.AsParen().Sub(), evaluated)
	case ast.KindImplicitCast:
		return a.offsetOf(e.AsImplicitCast().Operand(), evaluated)
	case ast.KindMember, ast.KindArraySubscript:
		return a.designator(e, evaluated)
	default:
		return 0, notConstant(e, e.Begin(), "operand of __builtin_offsetof is not a member designator")
	}
}

// designator computes the offset of one step of an offsetof member
// designator from the start of the null object it is rooted at.
func (a *Analyzer) designator(e ast.Expr, evaluated bool) (uint64, error) {
	switch e.Kind() {
	case ast.KindParen:
		return a.designator(e.AsParen().Sub(), evaluated)

	case ast.KindImplicitCast:
		return a.designator(e.AsImplicitCast().Operand(), evaluated)

	case ast.KindUnary:
		// *(T *)0, the root of a chain of . accesses.
		u := e.AsUnary()
		if u.Op() != ast.UnaryDeref || !a.isNullObject(u.Operand()) {
			break
		}
		return 0, nil

	case ast.KindMember:
		m := e.AsMember()
		record := m.Base().Type()
		var base uint64
		if m.IsArrow() {
			if !a.isNullObject(m.Base()) {
				return 0, notConstant(e, m.Base().Begin(), "base of __builtin_offsetof is not a null pointer to a record")
			}
			record = record.Pointee()
		} else {
			var err error
			if base, err = a.designator(m.Base(), evaluated); err != nil {
				return 0, err
			}
		}
		name := a.decls.Decl(m.FieldID()).Name()
		field, ok := a.types.OffsetOf(record.Unqualified(), name)
		if !ok {
			return 0, notConstant(e, m.MemberLoc(), "%s has no member named %s", record, name)
		}
		return base + field, nil

	case ast.KindArraySubscript:
		s := e.AsArraySubscript()
		base, err := a.designator(s.Base(), evaluated)
		if err != nil {
			return 0, err
		}
		index, err := a.eval(s.Index(), evaluated)
		if err != nil {
			return 0, err
		}
		size, ok := a.types.SizeOf(s.Type())
		if !ok {
			return 0, notConstant(e, e.Begin(), "%s does not have a constant size", s.Type())
		}
		i, _ := index.Int64()
		return base + uint64(i)*size, nil
	}
	return 0, notConstant(e, e.Begin(), "operand of __builtin_offsetof is not a member designator")
}

// isNullObject returns whether e is a null pointer constant cast to a
// pointer type, such as (struct S *)0.
func (a *Analyzer) isNullObject(e ast.Expr) bool {
	e = stripParens(e)
	for e.Is(ast.KindImplicitCast) {
		e = stripParens(e.AsImplicitCast().Operand())
	}
	return e.Is(ast.KindCast) && e.Type().IsPointerType() && a.IsNullPointerConstant(e.AsCast().Operand())
}

func (a *Analyzer) evalBinary(b ast.Binary, evaluated bool) (apint.Int, error) {
	e := b.AsAny()
	op := b.Op()
	switch {
	case op.IsAssignment():
		return apint.Int{}, notConstant(e, e.Begin(), "assignment is not allowed in a constant expression")

	case op == ast.BinaryComma:
		if evaluated {
			return apint.Int{}, notConstant(e, e.Begin(), "comma operator in an evaluated context")
		}
		if _, err := a.eval(b.LHS(), evaluated); err != nil {
			return apint.Int{}, err
		}
		v, err := a.eval(b.RHS(), evaluated)
		return a.convert(v, b.Type()), err

	case op.IsLogical():
		lhs, err := a.eval(b.LHS(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		width, unsigned := a.layoutOf(b.Type())
		// The left operand alone decides 0 && x and 1 || x.
		if lhs.IsZero() == (op == ast.BinaryLAnd) {
			return apint.FromBool(op == ast.BinaryLOr, width, unsigned), nil
		}
		rhs, err := a.eval(b.RHS(), evaluated)
		if err != nil {
			return apint.Int{}, err
		}
		return apint.FromBool(!rhs.IsZero(), width, unsigned), nil
	}

	lhs, err := a.eval(b.LHS(), evaluated)
	if err != nil {
		return apint.Int{}, err
	}
	rhs, err := a.eval(b.RHS(), evaluated)
	if err != nil {
		return apint.Int{}, err
	}

	if op.IsComparison() {
		width, unsigned := a.layoutOf(b.Type())
		lhs, rhs = commonValues(lhs, rhs)
		cmp := lhs.Cmp(rhs)
		var result bool
		switch op {
		case ast.BinaryLT:
			result = cmp < 0
		case ast.BinaryGT:
			result = cmp > 0
		case ast.BinaryLE:
			result = cmp <= 0
		case ast.BinaryGE:
			result = cmp >= 0
		case ast.BinaryEQ:
			result = cmp == 0
		case ast.BinaryNE:
			result = cmp != 0
		}
		return apint.FromBool(result, width, unsigned), nil
	}

	ty := b.Type()
	if op.IsShift() {
		lhs = a.convert(lhs, ty)
		amount := lhs.Width() - 1
		if n, ok := rhs.Uint64(); ok && n < uint64(amount) {
			amount = uint(n)
		}
		if op == ast.BinaryShl {
			return lhs.Shl(amount), nil
		}
		return lhs.Shr(amount), nil
	}

	lhs, rhs = a.convert(lhs, ty), a.convert(rhs, ty)
	switch op {
	case ast.BinaryMul:
		return lhs.Mul(rhs), nil
	case ast.BinaryDiv, ast.BinaryRem:
		if rhs.IsZero() {
			if evaluated {
				return apint.Int{}, notConstant(e, e.Begin(), "division by zero")
			}
			return lhs, nil
		}
		if op == ast.BinaryDiv {
			return lhs.Quo(rhs), nil
		}
		return lhs.Rem(rhs), nil
	case ast.BinaryAdd:
		return lhs.Add(rhs), nil
	case ast.BinarySub:
		return lhs.Sub(rhs), nil
	case ast.BinaryAnd:
		return lhs.And(rhs), nil
	case ast.BinaryXor:
		return lhs.Xor(rhs), nil
	case ast.BinaryOr:
		return lhs.Or(rhs), nil
	default:
		return apint.Int{}, notConstant(e, e.Begin(), "operator %s is not allowed in a constant expression", op)
	}
}

// evalCast folds a cast of operand to e's type.
func (a *Analyzer) evalCast(e, operand ast.Expr, evaluated bool) (apint.Int, error) {
	ty := e.Type()
	if lit := stripParens(operand).AsFloatLiteral(); !lit.IsZero() {
		width, unsigned := a.layoutOf(ty)
		if ty.IsBooleanType() {
			return apint.FromBool(lit.Value().Sign() != 0, width, unsigned), nil
		}
		// Int truncates toward zero, and the infinities have no integer value.
		if lit.Value().IsInf() {
			return apint.Int{}, notConstant(e, operand.Begin(), "floating literal is out of range")
		}
		n, _ := lit.Value().Int(nil)
		return apint.FromBig(n, width, unsigned), nil
	}

	v, err := a.eval(operand, evaluated)
	if err != nil {
		return apint.Int{}, err
	}
	return a.convert(v, ty), nil
}

// convert converts v to the integer type t. Conversion to _Bool compares with
// zero rather than truncating.
func (a *Analyzer) convert(v apint.Int, t ctype.QualType) apint.Int {
	if !v.IsValid() {
		return v
	}
	width, unsigned := a.layoutOf(t)
	if t.IsBooleanType() {
		return apint.FromBool(!v.IsZero(), width, unsigned)
	}
	return v.Convert(width, unsigned)
}

func (a *Analyzer) layoutOf(t ctype.QualType) (width uint, unsigned bool) {
	return a.types.IntWidth(t), t.IsUnsignedIntegerType()
}

// commonValues converts two integers to their common type: the wider one, or
// the unsigned one if they are the same width.
func commonValues(a, b apint.Int) (apint.Int, apint.Int) {
	width := max(a.Width(), b.Width())
	var unsigned bool
	switch {
	case a.Width() > b.Width():
		unsigned = a.IsUnsigned()
	case b.Width() > a.Width():
		unsigned = b.IsUnsigned()
	default:
		unsigned = a.IsUnsigned() || b.IsUnsigned()
	}
	return a.Convert(width, unsigned), b.Convert(width, unsigned)
}

func stripParens(e ast.Expr) ast.Expr {
	for e.Kind() == ast.KindParen {
		e = e.AsParen().Sub()
	}
	return e
}

// describe names an expression's form for diagnostics.
func describe(e ast.Expr) string {
	switch e.Kind() {
	case ast.KindCall:
		return "function call"
	case ast.KindMember, ast.KindVectorElement:
		return "member access"
	case ast.KindArraySubscript:
		return "array subscript"
	case ast.KindCompoundLiteral:
		return "compound literal"
	case ast.KindStmtExpr:
		return "statement expression"
	case ast.KindCompoundAssign:
		return "assignment"
	default:
		return "expression"
	}
}
