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

// Package check turns the answers of package sema into diagnostics: it
// rejects stores to things that cannot be stored to, addresses of things
// that have none, non-constant expressions where a constant is required, and
// expression statements whose value is thrown away.
package check

import (
	"errors"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/report"
	"github.com/bufbuild/cexpr/sema"
	"github.com/bufbuild/cexpr/walk"
)

// Checker reports diagnostics about expressions.
//
// A Checker holds no state of its own, so it can check many expressions
// concurrently as long as each goroutine uses its own report.
type Checker struct {
	sema *sema.Analyzer
}

// New returns a checker that asks a for semantic facts.
func New(a *sema.Analyzer) *Checker {
	if a == nil {
		panic("cexpr/check: New requires an analyzer")
	}
	return &Checker{sema: a}
}

// Assignable reports an error if e cannot be stored to.
func (c *Checker) Assignable(r *report.Report, e ast.Expr) bool {
	result := c.sema.ClassifyModifiableLvalue(e)
	if result == sema.ModifiableValid {
		return true
	}
	r.Error(ErrNotAssignable{Expr: e, Reason: result})
	return false
}

// AddressOf reports an error if the address of operand cannot be taken.
//
// Function designators and objects of void type are addressable even though
// they are not modifiable.
func (c *Checker) AddressOf(r *report.Report, operand ast.Expr) bool {
	if operand.Type().IsFunctionType() {
		return true
	}
	if stripParens(operand).Is(ast.KindVectorElement) {
		r.Error(ErrAddressOfRvalue{Operand: operand, VectorElement: true})
		return false
	}
	switch c.sema.ClassifyLvalue(operand) {
	case sema.LvalueValid, sema.LvalueNotObjectType, sema.LvalueIncompleteVoidType:
		return true
	default:
		r.Error(ErrAddressOfRvalue{Operand: operand})
		return false
	}
}

// IntegerConstant evaluates e, reporting an error if it is not an integer
// constant expression.
func (c *Checker) IntegerConstant(r *report.Report, e ast.Expr) (apint.Int, bool) {
	v, err := c.sema.EvaluateInteger(e, true)
	if err != nil {
		var nc *sema.NotConstantError
		if !errors.As(err, &nc) {
			panic(err)
		}
		r.Error(ErrNotConstant{Expr: e, Err: nc})
		return apint.Int{}, false
	}
	return v, true
}

// Unused reports a warning if e, used as a statement, has no effect.
// Expressions of void type never warn, since that is how a result is
// discarded on purpose.
func (c *Checker) Unused(r *report.Report, e ast.Expr) bool {
	inner := stripParens(e)
	if e.Type().IsVoidType() || inner.HasLocalSideEffect() || inner.Is(ast.KindStmtExpr) {
		return true
	}
	r.Warn(ErrUnusedResult{Expr: e})
	return false
}

// Expr checks every node of the tree rooted at e: the targets of
// assignments and increments must be assignable, and the operands of & must
// be addressable. Every expression in the body of a statement expression
// other than the last is checked as a statement.
func (c *Checker) Expr(r *report.Report, e ast.Expr) {
	_ = walk.Exprs(e, func(e ast.Expr) error {
		switch e.Kind() {
		case ast.KindBinary, ast.KindCompoundAssign:
			if b := e.AsBinary(); b.Op().IsAssignment() {
				c.Assignable(r, b.LHS())
			}

		case ast.KindUnary:
			u := e.AsUnary()
			switch {
			case u.Op().IsIncrementDecrement():
				c.Assignable(r, u.Operand())
			case u.Op() == ast.UnaryAddrOf:
				c.AddressOf(r, u.Operand())
			}

		case ast.KindStmtExpr:
			body := e.AsStmtExpr().Body()
			last := body.Last()
			for stmt := range body.Exprs() {
				if stmt != last {
					c.Unused(r, stmt)
				}
			}
		}
		return nil
	})
}

// Stmt checks e as an expression statement.
func (c *Checker) Stmt(r *report.Report, e ast.Expr) {
	c.Expr(r, e)
	c.Unused(r, e)
}

func stripParens(e ast.Expr) ast.Expr {
	for e.Is(ast.KindParen) {
		e = e.AsParen().Sub()
	}
	return e
}
