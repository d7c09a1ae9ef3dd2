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

import "github.com/bufbuild/cexpr/ast"

// IsNullPointerConstant returns whether e is a null pointer constant (C99
// 6.3.2.3p3): an integer constant expression with value zero, optionally
// cast to void *.
func (a *Analyzer) IsNullPointerConstant(e ast.Expr) bool {
	for {
		switch e.Kind() {
		case ast.KindParen:
			e = e.AsParen().Sub()
			continue
		case ast.KindImplicitCast:
			e = e.AsImplicitCast().Operand()
			continue
		case ast.KindCast:
			// Only (void *) casts of integers are looked through; (char *)0 is
			// a null pointer but not a null pointer constant.
			operand := e.AsCast().Operand()
			if a.types.Compatible(e.Type().Unqualified(), a.types.VoidPointer()) && operand.Type().IsIntegerType() {
				e = operand
				continue
			}
		}
		break
	}

	if !e.Type().IsIntegerType() {
		return false
	}
	v, err := a.EvaluateInteger(e, true)
	return err == nil && v.IsZero()
}
