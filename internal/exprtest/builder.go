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

// Package exprtest builds expression trees from a compact s-expression
// notation, for use in tests.
//
// Declarations are written as
//
//	(var x int)
//	(param p (ptr (const int)))
//	(func f (fn int int ...))
//	(struct S (a int) (b (array char 4)))
//	(union U (i int) (f float))
//	(enum Color (Red 0) (Green 1))
//	(typedef size_t ulong)
//	(label done)
//
// and expressions as
//
//	(+ 1 (* 2 3))
//	(= x (call f 1 2))
//	(?: c _ 0)
//	(. s a)  (-> p a)  ([] arr 0)  (swizzle v xy)
//	(cast (ptr void) 0)  (implicit long x)  (paren x)
//	"text"  'c'  (wide "text")  (wide 'c')
//
// Result types follow C's usual conversions closely enough for tests; a
// node whose type must be something else can be wrapped in (typed T e).
//
// Every location recorded in the tree is the offset of the corresponding
// token in the s-expression text, which is registered with the builder's
// [source.Manager].
package exprtest

import (
	"errors"
	"fmt"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
	"github.com/bufbuild/cexpr/source"
)

// Builder holds a translation unit under construction.
type Builder struct {
	Types *ctype.Context
	Decls *decl.Table
	AST   *ast.Context
	Files *source.Manager

	// The enclosing function's name, for __func__.
	FuncName string

	names    map[string]decl.ID
	labels   map[string]decl.LabelID
	typedefs map[string]ctype.QualType
	fields   map[fieldKey]decl.ID
	files    int
}

type fieldKey struct {
	record ctype.QualType
	name   string
}

// New returns a builder for the given target.
func New(target ctype.Target) *Builder {
	types := ctype.NewContext(target)
	decls := new(decl.Table)
	return &Builder{
		Types:    types,
		Decls:    decls,
		AST:      ast.NewContext(types, decls),
		Files:    new(source.Manager),
		FuncName: "f",
		names:    make(map[string]decl.ID),
		labels:   make(map[string]decl.LabelID),
		typedefs: make(map[string]ctype.QualType),
		fields:   make(map[fieldKey]decl.ID),
	}
}

// input is one s-expression text being built from.
type input struct {
	*Builder
	file *source.File
}

func (b *Builder) open(text string) input {
	b.files++
	return input{b, b.Files.AddFile(fmt.Sprintf("input%d.sexpr", b.files), text)}
}

func (in input) loc(offset int) source.Loc {
	return in.file.Loc(offset)
}

// fail converts a syntax error into an error carrying a file position.
func (in input) fail(err error) error {
	var se *syntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%v: %s", in.file.Position(se.offset), se.msg)
	}
	return err
}

// catch recovers a *syntaxError thrown while building. Anything else keeps
// panicking.
func (in input) catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	se, ok := r.(*syntaxError)
	if !ok {
		panic(r)
	}
	*err = in.fail(se)
}

// Declare adds the declarations in text to the builder's scope.
func (b *Builder) Declare(text string) (err error) {
	in := b.open(text)
	forms, err := read(text)
	if err != nil {
		return in.fail(err)
	}
	defer in.catch(&err)
	for _, form := range forms {
		in.declare(form)
	}
	return nil
}

// MustDeclare is like [Builder.Declare], but panics on error.
func (b *Builder) MustDeclare(text string) {
	if err := b.Declare(text); err != nil {
		panic(err)
	}
}

// Parse builds the single expression in text.
func (b *Builder) Parse(text string) (e ast.Expr, err error) {
	in := b.open(text)
	forms, err := read(text)
	if err != nil {
		return ast.Expr{}, in.fail(err)
	}
	if len(forms) != 1 {
		return ast.Expr{}, fmt.Errorf("%s: want one expression, got %d", in.file.Path(), len(forms))
	}
	defer in.catch(&err)
	return in.expr(forms[0]), nil
}

// MustParse is like [Builder.Parse], but panics on error.
func (b *Builder) MustParse(text string) ast.Expr {
	e, err := b.Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

// Type parses a type.
func (b *Builder) Type(text string) (t ctype.QualType, err error) {
	in := b.open(text)
	forms, err := read(text)
	if err != nil {
		return ctype.QualType{}, in.fail(err)
	}
	if len(forms) != 1 {
		return ctype.QualType{}, fmt.Errorf("%s: want one type, got %d", in.file.Path(), len(forms))
	}
	defer in.catch(&err)
	return in.typ(forms[0]), nil
}

// MustType is like [Builder.Type], but panics on error.
func (b *Builder) MustType(text string) ctype.QualType {
	t, err := b.Type(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the declaration with the given name.
func (b *Builder) Lookup(name string) (decl.Decl, bool) {
	id, ok := b.names[name]
	if !ok {
		return decl.Decl{}, false
	}
	return b.Decls.Decl(id), true
}
