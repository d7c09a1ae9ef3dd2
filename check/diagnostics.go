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

package check

import (
	"fmt"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/report"
	"github.com/bufbuild/cexpr/sema"
	"github.com/bufbuild/cexpr/source"
)

// ErrNotAssignable diagnoses a store to something that is not a modifiable
// lvalue.
type ErrNotAssignable struct {
	Expr   ast.Expr // The expression being stored to.
	Reason sema.Modifiable
}

// Error implements [error].
func (e ErrNotAssignable) Error() string {
	ty := e.Expr.Type()
	switch e.Reason {
	case sema.ModifiableConstQualified:
		return "read-only variable is not assignable"
	case sema.ModifiableArrayType:
		return fmt.Sprintf("array type '%s' is not assignable", ty)
	case sema.ModifiableIncompleteType:
		return fmt.Sprintf("incomplete type '%s' is not assignable", ty)
	case sema.ModifiableIncompleteVoidType:
		return "'void' expression is not assignable"
	case sema.ModifiableDuplicateVectorComponents:
		return "vector is not assignable (contains duplicate components)"
	case sema.ModifiableNotObjectType:
		return fmt.Sprintf("function type '%s' is not assignable", ty)
	default:
		return "expression is not assignable"
	}
}

// Diagnose implements [report.Diagnose].
func (e ErrNotAssignable) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippet(e.Expr))
	if e.Reason != sema.ModifiableConstQualified {
		return
	}
	if ty := e.Expr.Type(); ty.IsConstQualified() {
		d.With(report.Note("cannot assign to variable with const-qualified type '%s'", ty))
	} else {
		d.With(report.Note("cannot assign to a struct containing a const-qualified member"))
	}
}

// ErrAddressOfRvalue diagnoses & applied to something with no address.
type ErrAddressOfRvalue struct {
	Operand ast.Expr
	// Set if the operand is a vector element, which is an lvalue but not
	// addressable.
	VectorElement bool
}

// Error implements [error].
func (e ErrAddressOfRvalue) Error() string {
	if e.VectorElement {
		return "address of vector element requested"
	}
	return fmt.Sprintf("cannot take the address of an rvalue of type '%s'", e.Operand.Type())
}

// Diagnose implements [report.Diagnose].
func (e ErrAddressOfRvalue) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippet(e.Operand))
}

// ErrNotConstant diagnoses an expression that must be an integer constant
// expression but is not.
type ErrNotConstant struct {
	Expr ast.Expr // The expression required to be constant.
	Err  *sema.NotConstantError
}

// Error implements [error].
func (e ErrNotConstant) Error() string {
	return "expression is not an integer constant expression"
}

// Diagnose implements [report.Diagnose].
func (e ErrNotConstant) Diagnose(d *report.Diagnostic) {
	d.With(
		report.SnippetAtf(source.Point(e.Err.Loc), "%s", e.Err.Reason),
		report.Snippet(e.Expr),
		report.Debugf("offending node: %v", e.Err.Expr.Kind()),
	)
}

// ErrUnusedResult diagnoses an expression statement that computes a value
// and does nothing with it.
type ErrUnusedResult struct {
	Expr ast.Expr
}

// Error implements [error].
func (e ErrUnusedResult) Error() string {
	return "expression result unused"
}

// Diagnose implements [report.Diagnose].
func (e ErrUnusedResult) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippet(e.Expr))
}
