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

// Package ctype is the type system that expression nodes are annotated with.
//
// Types are allocated by a [Context] and referred to through [QualType], a
// pointer to an unqualified [Type] plus a set of [Quals]. Builtin, pointer,
// array, and vector types are uniqued, so two QualTypes spelled the same way
// in the same Context compare equal with ==.
package ctype

import (
	"fmt"
	"strings"
)

//go:generate go run github.com/bufbuild/cexpr/internal/enum kind.yaml

// Quals is a set of C type qualifiers.
type Quals uint8

const (
	Const Quals = 1 << iota
	Volatile
	Restrict
)

// String returns the qualifiers as they would be spelled in C.
func (q Quals) String() string {
	var parts []string
	if q&Const != 0 {
		parts = append(parts, "const")
	}
	if q&Volatile != 0 {
		parts = append(parts, "volatile")
	}
	if q&Restrict != 0 {
		parts = append(parts, "restrict")
	}
	return strings.Join(parts, " ")
}

// Type is an unqualified type.
type Type struct {
	kind Kind

	// The pointee of a pointer, the element of an array or vector, or the
	// result of a function.
	elem QualType
	// The length of an array or vector; -1 for an incomplete array.
	count int64

	params   []QualType
	variadic bool

	// Records and enums.
	name     string
	fields   []Field
	complete bool

	// Scalars. Enums copy these from their underlying type.
	width, align uint
	unsigned     bool
}

// Field is a member of a struct or union.
type Field struct {
	Name string
	Type QualType
}

// QualType is a possibly-qualified type. The zero value is "no type".
type QualType struct {
	ty    *Type
	quals Quals
}

// IsZero returns whether this is the zero QualType.
func (t QualType) IsZero() bool {
	return t.ty == nil
}

// Kind returns the kind of the underlying type.
func (t QualType) Kind() Kind {
	if t.ty == nil {
		return KindInvalid
	}
	return t.ty.kind
}

// Quals returns this type's qualifiers.
func (t QualType) Quals() Quals {
	return t.quals
}

// Unqualified strips all qualifiers.
func (t QualType) Unqualified() QualType {
	return QualType{ty: t.ty}
}

// WithQuals adds qualifiers.
func (t QualType) WithQuals(q Quals) QualType {
	t.quals |= q
	return t
}

// IsConstQualified returns whether t carries const.
func (t QualType) IsConstQualified() bool {
	return t.quals&Const != 0
}

// IsVolatileQualified returns whether t carries volatile.
func (t QualType) IsVolatileQualified() bool {
	return t.quals&Volatile != 0
}

// IsVoidType returns whether t is void.
func (t QualType) IsVoidType() bool {
	return t.Kind() == KindVoid
}

// IsBooleanType returns whether t is _Bool.
func (t QualType) IsBooleanType() bool {
	return t.Kind() == KindBool
}

// IsPointerType returns whether t is a pointer type.
func (t QualType) IsPointerType() bool {
	return t.Kind() == KindPointer
}

// IsArrayType returns whether t is an array type.
func (t QualType) IsArrayType() bool {
	return t.Kind() == KindArray
}

// IsFunctionType returns whether t is a function type.
func (t QualType) IsFunctionType() bool {
	return t.Kind() == KindFunction
}

// IsVectorType returns whether t is a vector type.
func (t QualType) IsVectorType() bool {
	return t.Kind() == KindVector
}

// IsEnumType returns whether t is an enum.
func (t QualType) IsEnumType() bool {
	return t.Kind() == KindEnum
}

// IsRecordType returns whether this is a struct or union.
func (t QualType) IsRecordType() bool {
	k := t.Kind()
	return k == KindStruct || k == KindUnion
}

// IsIntegerType returns whether this is _Bool, a character or integer type,
// or an enum.
func (t QualType) IsIntegerType() bool {
	k := t.Kind()
	return k >= KindBool && k <= KindULongLong || k == KindEnum
}

// IsSignedIntegerType returns whether this is an integer type whose values
// are signed.
func (t QualType) IsSignedIntegerType() bool {
	return t.IsIntegerType() && !t.ty.unsigned
}

// IsUnsignedIntegerType returns whether this is an integer type whose values
// are unsigned. This includes _Bool.
func (t QualType) IsUnsignedIntegerType() bool {
	return t.IsIntegerType() && t.ty.unsigned
}

// IsRealFloatingType returns whether this is float, double, or long double.
func (t QualType) IsRealFloatingType() bool {
	k := t.Kind()
	return k >= KindFloat && k <= KindLongDouble
}

// IsArithmeticType returns whether this is an integer or floating type.
func (t QualType) IsArithmeticType() bool {
	return t.IsIntegerType() || t.IsRealFloatingType()
}

// IsScalarType returns whether this is an arithmetic or pointer type.
func (t QualType) IsScalarType() bool {
	return t.IsArithmeticType() || t.IsPointerType()
}

// IsIncompleteType returns whether the size of objects of this type is
// unknown: void, an array of unknown bound, or a record that was declared
// but never completed.
func (t QualType) IsIncompleteType() bool {
	switch t.Kind() {
	case KindVoid:
		return true
	case KindArray:
		return t.ty.count < 0 || t.ty.elem.IsIncompleteType()
	case KindStruct, KindUnion:
		return !t.ty.complete
	default:
		return false
	}
}

// IsObjectType returns whether this type describes objects: it is neither a
// function type nor incomplete.
func (t QualType) IsObjectType() bool {
	return !t.IsZero() && !t.IsFunctionType() && !t.IsIncompleteType()
}

// IsConstantSizeType returns whether sizeof may be applied to this type.
func (t QualType) IsConstantSizeType() bool {
	return t.IsObjectType()
}

// Pointee returns the type a pointer points to, or zero.
func (t QualType) Pointee() QualType {
	if !t.IsPointerType() {
		return QualType{}
	}
	return t.ty.elem
}

// Element returns the element type of an array or vector, or zero.
func (t QualType) Element() QualType {
	if !t.IsArrayType() && !t.IsVectorType() {
		return QualType{}
	}
	return t.ty.elem
}

// ArraySize returns the bound of an array, and false if it is incomplete or
// t is not an array.
func (t QualType) ArraySize() (int64, bool) {
	if !t.IsArrayType() || t.ty.count < 0 {
		return 0, false
	}
	return t.ty.count, true
}

// VectorSize returns the number of lanes of a vector type, or zero.
func (t QualType) VectorSize() int {
	if !t.IsVectorType() {
		return 0
	}
	return int(t.ty.count)
}

// Result returns the result type of a function type, or zero.
func (t QualType) Result() QualType {
	if !t.IsFunctionType() {
		return QualType{}
	}
	return t.ty.elem
}

// Params returns the parameter types of a function type, and whether it is
// variadic.
func (t QualType) Params() ([]QualType, bool) {
	if !t.IsFunctionType() {
		return nil, false
	}
	return t.ty.params, t.ty.variadic
}

// Fields returns the members of a complete struct or union.
func (t QualType) Fields() []Field {
	if !t.IsRecordType() {
		return nil
	}
	return t.ty.fields
}

// Field looks up a member by name.
func (t QualType) Field(name string) (Field, bool) {
	for _, f := range t.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Name returns the tag of a record or enum.
func (t QualType) Name() string {
	if t.ty == nil {
		return ""
	}
	return t.ty.name
}

// String implements [fmt.Stringer], spelling the type as a C type name.
func (t QualType) String() string {
	if t.IsZero() {
		return "<no type>"
	}
	return t.format("")
}

// format spells t as the declaration of inner, which is what a declarator
// would look like if the type were applied to it.
func (t QualType) format(inner string) string {
	switch t.Kind() {
	case KindPointer:
		decl := "*"
		if t.quals != 0 {
			decl += t.quals.String()
			if inner != "" {
				decl += " "
			}
		}
		decl += inner
		if k := t.ty.elem.Kind(); k == KindArray || k == KindFunction {
			decl = "(" + decl + ")"
		}
		return t.ty.elem.format(decl)

	case KindArray:
		if t.ty.count < 0 {
			return t.ty.elem.format(inner + "[]")
		}
		return t.ty.elem.format(fmt.Sprintf("%s[%d]", inner, t.ty.count))

	case KindFunction:
		var params []string
		for _, p := range t.ty.params {
			params = append(params, p.String())
		}
		if t.ty.variadic {
			params = append(params, "...")
		} else if len(params) == 0 {
			params = append(params, "void")
		}
		return t.ty.elem.format(fmt.Sprintf("%s(%s)", inner, strings.Join(params, ", ")))
	}

	var base string
	switch t.Kind() {
	case KindStruct, KindUnion, KindEnum:
		base = t.Kind().String() + " " + t.ty.name
	case KindVector:
		base = fmt.Sprintf("%s __attribute__((ext_vector_type(%d)))", t.ty.elem, t.ty.count)
	default:
		base = t.Kind().String()
	}
	if t.quals != 0 {
		base = t.quals.String() + " " + base
	}
	if inner != "" {
		base += " " + inner
	}
	return base
}
