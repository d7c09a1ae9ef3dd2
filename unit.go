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

package cexpr

import (
	"context"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/check"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/printer"
	"github.com/bufbuild/cexpr/report"
	"github.com/bufbuild/cexpr/sema"
	"github.com/bufbuild/cexpr/source"
)

// Unit is a translation unit: the types, declarations, source files and
// expression trees that belong together, plus the analyses that run over
// them.
type Unit struct {
	Types *ctype.Context
	Decls *decl.Table
	AST   *ast.Context
	Files *source.Manager

	sema    *sema.Analyzer
	checker *check.Checker
	par     int
}

// Option configures a [Unit].
type Option func(*config)

type config struct {
	target ctype.Target
	par    int
}

// WithTarget sets the data model types are laid out for. The default is
// [ctype.LP64].
func WithTarget(target ctype.Target) Option {
	return func(c *config) { c.target = target }
}

// WithParallelism sets how many expression statements [Unit.Check] checks
// at once. If n is not positive, min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
// is used.
func WithParallelism(n int) Option {
	return func(c *config) { c.par = n }
}

// New returns an empty translation unit.
func New(opts ...Option) *Unit {
	c := config{target: ctype.LP64}
	for _, opt := range opts {
		opt(&c)
	}

	types := ctype.NewContext(c.target)
	decls := new(decl.Table)
	analyzer := sema.New(types, decls)
	return &Unit{
		Types:   types,
		Decls:   decls,
		AST:     ast.NewContext(types, decls),
		Files:   new(source.Manager),
		sema:    analyzer,
		checker: check.New(analyzer),
		par:     c.par,
	}
}

// Nodes returns the allocator for this unit's expression trees.
func (u *Unit) Nodes() *ast.Nodes {
	return u.AST.Nodes()
}

// Analyzer returns the semantic analyzer for this unit.
func (u *Unit) Analyzer() *sema.Analyzer {
	return u.sema
}

// Checker returns the diagnostic checker for this unit.
func (u *Unit) Checker() *check.Checker {
	return u.checker
}

// Check checks each of stmts as an expression statement, in parallel, and
// returns the diagnostics in statement order.
func (u *Unit) Check(ctx context.Context, stmts ...ast.Expr) (report.Report, error) {
	runner := check.Runner{Checker: u.checker, MaxParallelism: u.par}
	return runner.Run(ctx, stmts...)
}

// Render renders a report against this unit's source files.
func (u *Unit) Render(r report.Report, style report.Style) string {
	return report.Renderer{Files: u.Files, Style: style}.RenderString(r)
}

// Print renders e as C source.
func (u *Unit) Print(e ast.Expr) string {
	return printer.Print(e, printer.Options{})
}

// Dump renders e as an indented tree, with ranges resolved against this
// unit's source files.
func (u *Unit) Dump(e ast.Expr) string {
	return printer.Dump(e, printer.Options{Files: u.Files})
}
