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
// Package walk provides helper functions for traversing expression trees.
package walk

import (
	"github.com/bufbuild/cexpr/ast"
)

// Exprs walks the tree rooted at e in pre-order, calling fn for every node.
// If fn returns an error, the walk stops and that error is returned.
func Exprs(e ast.Expr, fn func(ast.Expr) error) error {
	return ExprsEnterAndExit(e, fn, nil)
}

// ExprsEnterAndExit walks the tree rooted at e, calling enter before visiting
// a node's children and exit after. exit may be nil. If either returns an
// error, the walk stops and that error is returned.
//
// The body of a statement expression is walked as that node's children.
func ExprsEnterAndExit(e ast.Expr, enter, exit func(ast.Expr) error) error {
	if e.IsZero() {
		return nil
	}
	if err := enter(e); err != nil {
		return err
	}
	for child := range e.Children() {
		if err := ExprsEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(e); err != nil {
			return err
		}
	}
	return nil
}
