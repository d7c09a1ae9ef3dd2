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
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
)

// sizeType is the type of sizeof, size_t.
func (in input) sizeType() ctype.QualType {
	return in.builtin(ctype.KindULong)
}

// integer returns the standard integer type with the given width and
// signedness, preferring int over long over long long.
func (in input) integer(width uint, unsigned bool) ctype.QualType {
	for _, k := range []ctype.Kind{ctype.KindInt, ctype.KindLong, ctype.KindLongLong} {
		t := in.builtin(k)
		if in.Types.IntWidth(t) == width {
			if unsigned {
				return in.builtin(k + 1)
			}
			return t
		}
	}
	return in.builtin(ctype.KindLongLong)
}

// promote applies the integer promotions.
func (in input) promote(t ctype.QualType) ctype.QualType {
	t = t.Unqualified()
	if !t.IsIntegerType() {
		return t
	}
	width := in.Types.IntWidth(t)
	intWidth := in.Types.IntWidth(in.builtin(ctype.KindInt))
	if width < intWidth {
		return in.builtin(ctype.KindInt)
	}
	return in.integer(width, t.IsUnsignedIntegerType())
}

// common applies the usual arithmetic conversions.
func (in input) common(a, b ctype.QualType) ctype.QualType {
	a, b = in.promote(a), in.promote(b)
	switch {
	case a.IsRealFloatingType() || b.IsRealFloatingType():
		if !b.IsRealFloatingType() || a.IsRealFloatingType() && in.Types.IntWidth(a) >= in.Types.IntWidth(b) {
			return a
		}
		return b
	case !a.IsIntegerType() || !b.IsIntegerType():
		return a
	}

	wa, wb := in.Types.IntWidth(a), in.Types.IntWidth(b)
	switch {
	case wa > wb:
		return a
	case wb > wa:
		return b
	default:
		return in.integer(wa, a.IsUnsignedIntegerType() || b.IsUnsignedIntegerType())
	}
}

// branchType is the type of a conditional whose branches have types a and b.
func (in input) branchType(a, b ctype.QualType) ctype.QualType {
	if a.IsArithmeticType() && b.IsArithmeticType() {
		return in.common(a, b)
	}
	return a.Unqualified()
}

func (in input) unaryType(s sexpr, op ast.UnaryOp, t ctype.QualType) ctype.QualType {
	switch op {
	case ast.UnaryPlus, ast.UnaryMinus, ast.UnaryNot:
		return in.promote(t)
	case ast.UnaryLNot:
		return in.builtin(ctype.KindInt)
	case ast.UnaryAddrOf:
		return in.Types.PointerTo(t)
	case ast.UnaryDeref:
		if !t.IsPointerType() {
			panic(errorf(s.open, "indirection requires a pointer, got %s", t))
		}
		return t.Pointee()
	case ast.UnarySizeOf, ast.UnaryAlignOf, ast.UnaryOffsetOf:
		return in.sizeType()
	case ast.UnaryPreInc, ast.UnaryPreDec, ast.UnaryPostInc, ast.UnaryPostDec:
		return t.Unqualified()
	default:
		return t
	}
}

func (in input) binaryType(op ast.BinaryOp, a, b ctype.QualType) ctype.QualType {
	switch {
	case op.IsComparison(), op.IsLogical():
		return in.builtin(ctype.KindInt)
	case op == ast.BinaryComma:
		return b.Unqualified()
	case op == ast.BinaryAssign:
		return a.Unqualified()
	case op.IsShift():
		return in.promote(a)
	case op.IsAdditive() && (a.IsPointerType() || b.IsPointerType()):
		if a.IsPointerType() && b.IsPointerType() {
			return in.builtin(ctype.KindLong)
		}
		if b.IsPointerType() {
			return b.Unqualified()
		}
		return a.Unqualified()
	default:
		return in.common(a, b)
	}
}
