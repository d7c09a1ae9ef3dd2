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
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
)

// ClassifyLvalue determines whether e designates an object (C99 6.3.2.1).
//
// Designators are references to variables and parameters, string literals,
// subscripts, dereferences, vector element accesses, member accesses whose
// base is itself a designator (or which go through a pointer), and
// parenthesized designators. A designator of function type is not an
// object, and one of void type, however qualified, is incomplete.
func (a *Analyzer) ClassifyLvalue(e ast.Expr) Lvalue {
	switch result := a.classify(e); {
	case result != LvalueValid:
		return result
	case e.Type().IsFunctionType():
		return LvalueNotObjectType
	case e.Type().IsVoidType():
		return LvalueIncompleteVoidType
	default:
		return LvalueValid
	}
}

// classify applies the per-variant rules of ClassifyLvalue.
func (a *Analyzer) classify(e ast.Expr) Lvalue {
	switch e.Kind() {
	case ast.KindDeclRef:
		switch a.decls.Decl(e.AsDeclRef().DeclID()).Kind() {
		case decl.KindVar, decl.KindParam:
			return LvalueValid
		default:
			return LvalueInvalidExpression
		}

	case ast.KindStringLiteral, ast.KindArraySubscript:
		return LvalueValid

	case ast.KindMember:
		m := e.AsMember()
		if m.IsArrow() {
			return LvalueValid
		}
		return a.ClassifyLvalue(m.Base())

	case ast.KindUnary:
		u := e.AsUnary()
		if u.Op() != ast.UnaryDeref {
			return LvalueInvalidExpression
		}
		if u.Type().IsFunctionType() {
			return LvalueInvalidExpression
		}
		return LvalueValid

	case ast.KindParen:
		return a.ClassifyLvalue(e.AsParen().Sub())

	case ast.KindVectorElement:
		if e.AsVectorElement().ContainsDuplicates() {
			return LvalueDuplicateVectorComponents
		}
		return LvalueValid

	default:
		return LvalueInvalidExpression
	}
}

// ClassifyModifiableLvalue determines whether e designates an object that
// may be assigned to (C99 6.3.2.1p1).
//
// Any failure to be an lvalue at all is reported as is. Otherwise, arrays,
// incomplete types, and const objects are rejected, in that order. A struct
// or union counts as const if any of its members, at any depth, is.
func (a *Analyzer) ClassifyModifiableLvalue(e ast.Expr) Modifiable {
	switch a.ClassifyLvalue(e) {
	case LvalueValid:
	case LvalueNotObjectType:
		return ModifiableNotObjectType
	case LvalueIncompleteVoidType:
		return ModifiableIncompleteVoidType
	case LvalueDuplicateVectorComponents:
		return ModifiableDuplicateVectorComponents
	default:
		return ModifiableInvalidExpression
	}

	ty := e.Type()
	switch {
	case ty.IsArrayType():
		return ModifiableArrayType
	case ty.IsIncompleteType():
		return ModifiableIncompleteType
	case ty.IsConstQualified(), hasConstMember(ty):
		return ModifiableConstQualified
	default:
		return ModifiableValid
	}
}

// hasConstMember returns whether any member of a struct or union, including
// the members of nested records and the elements of array members, is
// const-qualified.
func hasConstMember(t ctype.QualType) bool {
	if !t.IsRecordType() {
		return false
	}
	for _, f := range t.Fields() {
		ft := f.Type
		for ft.IsArrayType() {
			ft = ft.Element()
		}
		if ft.IsConstQualified() || hasConstMember(ft) {
			return true
		}
	}
	return false
}
