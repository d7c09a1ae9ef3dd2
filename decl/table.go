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

// Package decl is the declaration table that expression nodes refer into.
//
// Declarations are owned by a [Table] and identified by [ID] handles. The
// expression tree never owns a declaration; a reference node only records
// which one it names.
package decl

import (
	"fmt"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/arena"
	"github.com/bufbuild/cexpr/source"
)

//go:generate go run github.com/bufbuild/cexpr/internal/enum kind.yaml

// ID is a handle to a declaration in a [Table]. The zero value is "no
// declaration".
type ID arena.Pointer[rawDecl]

// LabelID is a handle to a label in a [Table]. The zero value is "no label".
type LabelID arena.Pointer[rawLabel]

// Table owns the declarations and labels of a translation unit.
//
// A zero Table is empty and ready to use. Adding declarations is not
// concurrency-safe; looking them up is.
type Table struct {
	decls  arena.Arena[rawDecl]
	labels arena.Arena[rawLabel]
}

type rawDecl struct {
	kind  Kind
	name  string
	ty    ctype.QualType
	loc   source.Loc
	value apint.Int
}

type rawLabel struct {
	name string
	loc  source.Loc
}

// Decl is a view of a declaration.
type Decl struct {
	id  ID
	raw *rawDecl
}

// Label is a view of a label.
type Label struct {
	id  LabelID
	raw *rawLabel
}

// NewVar declares a variable.
func (t *Table) NewVar(name string, ty ctype.QualType, loc source.Loc) Decl {
	return t.new(rawDecl{kind: KindVar, name: name, ty: ty, loc: loc})
}

// NewParam declares a function parameter.
func (t *Table) NewParam(name string, ty ctype.QualType, loc source.Loc) Decl {
	return t.new(rawDecl{kind: KindParam, name: name, ty: ty, loc: loc})
}

// NewFunc declares a function. ty must be a function type.
func (t *Table) NewFunc(name string, ty ctype.QualType, loc source.Loc) Decl {
	if !ty.IsFunctionType() {
		panic(fmt.Sprintf("cexpr/decl: function %s declared with type %s", name, ty))
	}
	return t.new(rawDecl{kind: KindFunc, name: name, ty: ty, loc: loc})
}

// NewEnumConstant declares an enumerator with the given value. ty is the
// type of the enumerator itself, which in C is int.
func (t *Table) NewEnumConstant(name string, ty ctype.QualType, value apint.Int, loc source.Loc) Decl {
	if !ty.IsIntegerType() || !value.IsValid() {
		panic(fmt.Sprintf("cexpr/decl: enumerator %s requires an integer type and value", name))
	}
	return t.new(rawDecl{kind: KindEnumConstant, name: name, ty: ty, loc: loc, value: value})
}

// NewField declares the member name of a complete struct or union. The
// field's type is taken from the record.
func (t *Table) NewField(record ctype.QualType, name string, loc source.Loc) Decl {
	field, ok := record.Field(name)
	if !ok {
		panic(fmt.Sprintf("cexpr/decl: %s has no member named %s", record, name))
	}
	return t.new(rawDecl{kind: KindField, name: name, ty: field.Type, loc: loc})
}

// NewTypedef declares a type alias.
func (t *Table) NewTypedef(name string, ty ctype.QualType, loc source.Loc) Decl {
	return t.new(rawDecl{kind: KindTypedef, name: name, ty: ty, loc: loc})
}

// NewLabel declares a statement label.
func (t *Table) NewLabel(name string, loc source.Loc) Label {
	p := t.labels.NewCompressed(rawLabel{name: name, loc: loc})
	return Label{id: LabelID(p), raw: t.labels.Deref(p)}
}

// Decl looks up a declaration by handle. Returns the zero Decl for the zero
// ID.
func (t *Table) Decl(id ID) Decl {
	if id == 0 {
		return Decl{}
	}
	return Decl{id: id, raw: t.decls.Deref(arena.Pointer[rawDecl](id))}
}

// Label looks up a label by handle.
func (t *Table) Label(id LabelID) Label {
	if id == 0 {
		return Label{}
	}
	return Label{id: id, raw: t.labels.Deref(arena.Pointer[rawLabel](id))}
}

// Len returns the number of declarations in the table.
func (t *Table) Len() int {
	return t.decls.Len()
}

func (t *Table) new(raw rawDecl) Decl {
	if raw.ty.IsZero() {
		panic(fmt.Sprintf("cexpr/decl: %s %s declared without a type", raw.kind, raw.name))
	}
	p := t.decls.NewCompressed(raw)
	return Decl{id: ID(p), raw: t.decls.Deref(p)}
}

// IsZero returns whether this is the zero Decl.
func (d Decl) IsZero() bool {
	return d.raw == nil
}

// ID returns this declaration's handle.
func (d Decl) ID() ID {
	return d.id
}

// Kind returns what sort of declaration this is.
func (d Decl) Kind() Kind {
	if d.IsZero() {
		return KindInvalid
	}
	return d.raw.kind
}

// Name returns the declared name.
func (d Decl) Name() string {
	if d.IsZero() {
		return ""
	}
	return d.raw.name
}

// Type returns the declared type.
func (d Decl) Type() ctype.QualType {
	if d.IsZero() {
		return ctype.QualType{}
	}
	return d.raw.ty
}

// Loc returns the location of the declared name.
func (d Decl) Loc() source.Loc {
	if d.IsZero() {
		return 0
	}
	return d.raw.loc
}

// InitValue returns the value of an enumerator, or an invalid [apint.Int]
// for anything else.
func (d Decl) InitValue() apint.Int {
	if d.Kind() != KindEnumConstant {
		return apint.Int{}
	}
	return d.raw.value
}

// IsVariable returns whether this declares storage: a variable or a
// parameter.
func (d Decl) IsVariable() bool {
	k := d.Kind()
	return k == KindVar || k == KindParam
}

// String implements [fmt.Stringer].
func (d Decl) String() string {
	if d.IsZero() {
		return "<no decl>"
	}
	return fmt.Sprintf("%s %s", d.raw.kind, d.raw.name)
}

// IsZero returns whether this is the zero Label.
func (l Label) IsZero() bool {
	return l.raw == nil
}

// ID returns this label's handle.
func (l Label) ID() LabelID {
	return l.id
}

// Name returns the label's name.
func (l Label) Name() string {
	if l.IsZero() {
		return ""
	}
	return l.raw.name
}

// Loc returns the location of the label's definition.
func (l Label) Loc() source.Loc {
	if l.IsZero() {
		return 0
	}
	return l.raw.loc
}
