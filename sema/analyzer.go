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

// Package sema answers semantic questions about expression trees: whether an
// expression designates an object, whether that object may be assigned to,
// and what value an integer constant expression has.
//
// Every query is read-only, and an [Analyzer] may be shared by any number of
// goroutines once the trees it is asked about are built.
package sema

import (
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/decl"
)

//go:generate go run github.com/bufbuild/cexpr/internal/enum lvalue.yaml

// Types is the part of the type system that semantic queries need.
//
// [*ctype.Context] implements this interface.
type Types interface {
	// Compatible reports whether a and b are compatible types.
	Compatible(a, b ctype.QualType) bool
	// SizeOf and AlignOf return a type's size and alignment in bytes, or
	// false if the type is not constant-size.
	SizeOf(t ctype.QualType) (uint64, bool)
	AlignOf(t ctype.QualType) (uint64, bool)
	// OffsetOf returns the byte offset of a member of a complete struct or
	// union.
	OffsetOf(record ctype.QualType, field string) (uint64, bool)
	// IntWidth returns the width in bits of a scalar type.
	IntWidth(t ctype.QualType) uint
	// VoidPointer returns the type void *.
	VoidPointer() ctype.QualType
}

// Decls is the part of the declaration table that semantic queries need.
//
// [*decl.Table] implements this interface.
type Decls interface {
	Decl(id decl.ID) decl.Decl
}

// Analyzer performs semantic queries on expressions.
type Analyzer struct {
	types Types
	decls Decls
}

var (
	_ Types = (*ctype.Context)(nil)
	_ Decls = (*decl.Table)(nil)
)

// New returns an analyzer that consults the given type system and
// declaration table.
func New(types Types, decls Decls) *Analyzer {
	if types == nil || decls == nil {
		panic("cexpr/sema: New requires a type system and a declaration table")
	}
	return &Analyzer{types: types, decls: decls}
}
