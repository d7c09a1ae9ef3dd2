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

import "fmt"

// Visitor is a set of callbacks, one per expression variant, that [Visit]
// dispatches to.
//
// Every variant has a method, so adding a variant breaks every Visitor
// until it is taught about the new one.
type Visitor[R any] interface {
	VisitDeclRef(DeclRef) R
	VisitPredefined(Predefined) R
	VisitIntegerLiteral(IntegerLiteral) R
	VisitCharLiteral(CharLiteral) R
	VisitFloatLiteral(FloatLiteral) R
	VisitStringLiteral(StringLiteral) R
	VisitParen(Paren) R
	VisitUnary(Unary) R
	VisitSizeOfAlignOfType(SizeOfAlignOfType) R
	VisitArraySubscript(ArraySubscript) R
	VisitCall(Call) R
	VisitMember(Member) R
	VisitVectorElement(VectorElement) R
	VisitCompoundLiteral(CompoundLiteral) R
	VisitImplicitCast(ImplicitCast) R
	VisitCast(Cast) R
	VisitBinary(Binary) R
	VisitCompoundAssign(CompoundAssign) R
	VisitConditional(Conditional) R
	VisitAddrLabel(AddrLabel) R
	VisitStmtExpr(StmtExpr) R
	VisitTypesCompatible(TypesCompatible) R
	VisitChoose(Choose) R
}

// Visit calls the method of v that corresponds to e's variant.
//
// Panics if e is zero.
func Visit[R any](e Expr, v Visitor[R]) R {
	switch e.Kind() {
	case KindDeclRef:
		return v.VisitDeclRef(e.AsDeclRef())
	case KindPredefined:
		return v.VisitPredefined(e.AsPredefined())
	case KindIntegerLiteral:
		return v.VisitIntegerLiteral(e.AsIntegerLiteral())
	case KindCharLiteral:
		return v.VisitCharLiteral(e.AsCharLiteral())
	case KindFloatLiteral:
		return v.VisitFloatLiteral(e.AsFloatLiteral())
	case KindStringLiteral:
		return v.VisitStringLiteral(e.AsStringLiteral())
	case KindParen:
		return v.VisitParen(e.AsParen())
	case KindUnary:
		return v.VisitUnary(e.AsUnary())
	case KindSizeOfAlignOfType:
		return v.VisitSizeOfAlignOfType(e.AsSizeOfAlignOfType())
	case KindArraySubscript:
		return v.VisitArraySubscript(e.AsArraySubscript())
	case KindCall:
		return v.VisitCall(e.AsCall())
	case KindMember:
		return v.VisitMember(e.AsMember())
	case KindVectorElement:
		return v.VisitVectorElement(e.AsVectorElement())
	case KindCompoundLiteral:
		return v.VisitCompoundLiteral(e.AsCompoundLiteral())
	case KindImplicitCast:
		return v.VisitImplicitCast(e.AsImplicitCast())
	case KindCast:
		return v.VisitCast(e.AsCast())
	case KindBinary:
		return v.VisitBinary(e.AsBinary())
	case KindCompoundAssign:
		return v.VisitCompoundAssign(e.AsCompoundAssign())
	case KindConditional:
		return v.VisitConditional(e.AsConditional())
	case KindAddrLabel:
		return v.VisitAddrLabel(e.AsAddrLabel())
	case KindStmtExpr:
		return v.VisitStmtExpr(e.AsStmtExpr())
	case KindTypesCompatible:
		return v.VisitTypesCompatible(e.AsTypesCompatible())
	case KindChoose:
		return v.VisitChoose(e.AsChoose())
	default:
		panic(fmt.Sprintf("cexpr/ast: cannot visit %v", e))
	}
}
