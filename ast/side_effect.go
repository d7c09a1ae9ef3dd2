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

// HasLocalSideEffect returns whether evaluating this expression's own
// operation, ignoring its operands, may change program state.
//
// This is shallow: f() + 1 has no local side effect even though f() does.
// Assignments, increments and decrements, calls, and the comma operator have
// side effects, as does reading through a volatile-qualified lvalue.
func (e Expr) HasLocalSideEffect() bool {
	switch e.Kind() {
	case KindCall, KindCompoundAssign:
		return true
	case KindBinary:
		op := e.AsBinary().Op()
		return op == BinaryAssign || op == BinaryComma
	case KindUnary:
		u := e.AsUnary()
		switch u.Op() {
		case UnaryPostInc, UnaryPostDec, UnaryPreInc, UnaryPreDec:
			return true
		case UnaryDeref:
			return u.Type().IsVolatileQualified()
		case UnaryReal, UnaryImag:
			return u.Operand().Type().IsVolatileQualified()
		}
		return false
	case KindMember, KindArraySubscript:
		return e.Type().IsVolatileQualified()
	default:
		return false
	}
}
