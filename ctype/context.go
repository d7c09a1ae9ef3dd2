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

package ctype

import (
	"fmt"
	"slices"

	"github.com/bufbuild/cexpr/internal/arena"
)

// Target describes the data model of the machine being compiled for. All
// widths are in bits.
type Target struct {
	Name string

	CharWidth, ShortWidth, IntWidth, LongWidth, LongLongWidth uint
	PointerWidth                                              uint
	FloatWidth, DoubleWidth, LongDoubleWidth                  uint
	// Alignment of long double, which differs from its width on x86.
	LongDoubleAlign uint

	// Whether plain char is signed.
	CharSigned bool
}

var (
	// LP64 is the data model of 64-bit Unix-like targets.
	LP64 = Target{
		Name:      "lp64",
		CharWidth: 8, ShortWidth: 16, IntWidth: 32, LongWidth: 64, LongLongWidth: 64,
		PointerWidth: 64,
		FloatWidth:   32, DoubleWidth: 64, LongDoubleWidth: 128, LongDoubleAlign: 128,
		CharSigned: true,
	}

	// ILP32 is the data model of 32-bit targets.
	ILP32 = Target{
		Name:      "ilp32",
		CharWidth: 8, ShortWidth: 16, IntWidth: 32, LongWidth: 32, LongLongWidth: 64,
		PointerWidth: 32,
		FloatWidth:   32, DoubleWidth: 64, LongDoubleWidth: 96, LongDoubleAlign: 32,
		CharSigned: true,
	}
)

// Context allocates and uniques types for a single translation unit.
//
// Constructing types is not concurrency-safe; querying them is.
type Context struct {
	target Target
	types  arena.Arena[Type]

	builtins [kindTotal]*Type
	voidPtr  QualType
	pointers map[QualType]*Type
	arrays   map[sequenceKey]*Type
	vectors  map[sequenceKey]*Type
}

type sequenceKey struct {
	elem  QualType
	count int64
}

// NewContext returns a new type context for the given target.
func NewContext(target Target) *Context {
	c := &Context{
		target:   target,
		pointers: make(map[QualType]*Type),
		arrays:   make(map[sequenceKey]*Type),
		vectors:  make(map[sequenceKey]*Type),
	}

	t := target
	scalar := func(k Kind, width, align uint, unsigned bool) {
		c.builtins[k] = c.types.New(Type{kind: k, width: width, align: align, unsigned: unsigned})
	}
	scalar(KindVoid, 0, 8, false)
	scalar(KindBool, 8, 8, true)
	scalar(KindChar, t.CharWidth, t.CharWidth, !t.CharSigned)
	scalar(KindSChar, t.CharWidth, t.CharWidth, false)
	scalar(KindUChar, t.CharWidth, t.CharWidth, true)
	scalar(KindShort, t.ShortWidth, t.ShortWidth, false)
	scalar(KindUShort, t.ShortWidth, t.ShortWidth, true)
	scalar(KindInt, t.IntWidth, t.IntWidth, false)
	scalar(KindUInt, t.IntWidth, t.IntWidth, true)
	scalar(KindLong, t.LongWidth, t.LongWidth, false)
	scalar(KindULong, t.LongWidth, t.LongWidth, true)
	scalar(KindLongLong, t.LongLongWidth, t.LongLongWidth, false)
	scalar(KindULongLong, t.LongLongWidth, t.LongLongWidth, true)
	scalar(KindFloat, t.FloatWidth, t.FloatWidth, false)
	scalar(KindDouble, t.DoubleWidth, t.DoubleWidth, false)
	scalar(KindLongDouble, t.LongDoubleWidth, t.LongDoubleAlign, false)

	// VoidPointer must not allocate: queries call it concurrently.
	c.voidPtr = c.PointerTo(c.Builtin(KindVoid))
	return c
}

// Target returns the target this context was created for.
func (c *Context) Target() Target {
	return c.target
}

// Owns returns whether t was allocated by this context.
func (c *Context) Owns(t QualType) bool {
	return t.ty != nil && !c.types.Compress(t.ty).Nil()
}

// Builtin returns an unqualified builtin type, such as int or void.
//
// Panics if k does not name a builtin type.
func (c *Context) Builtin(k Kind) QualType {
	if k <= KindInvalid || k > KindLongDouble {
		panic(fmt.Sprintf("cexpr/ctype: %#v is not a builtin type", k))
	}
	return QualType{ty: c.builtins[k]}
}

// VoidPointer returns void *. It is safe to call concurrently with other
// queries.
func (c *Context) VoidPointer() QualType {
	return c.voidPtr
}

// PointerTo returns the type of pointers to t.
func (c *Context) PointerTo(t QualType) QualType {
	c.mustOwn(t)
	ty, ok := c.pointers[t]
	if !ok {
		ty = c.types.New(Type{
			kind:     KindPointer,
			elem:     t,
			width:    c.target.PointerWidth,
			align:    c.target.PointerWidth,
			unsigned: true,
		})
		c.pointers[t] = ty
	}
	return QualType{ty: ty}
}

// ArrayOf returns the type of arrays of n elements of type elem.
func (c *Context) ArrayOf(elem QualType, n int64) QualType {
	if n < 0 {
		panic(fmt.Sprintf("cexpr/ctype: negative array bound %d", n))
	}
	return c.array(elem, n)
}

// IncompleteArrayOf returns the type of arrays of unknown bound.
func (c *Context) IncompleteArrayOf(elem QualType) QualType {
	return c.array(elem, -1)
}

func (c *Context) array(elem QualType, n int64) QualType {
	c.mustOwn(elem)
	if elem.IsFunctionType() || elem.IsVoidType() {
		panic(fmt.Sprintf("cexpr/ctype: array of %s", elem))
	}
	key := sequenceKey{elem, n}
	ty, ok := c.arrays[key]
	if !ok {
		ty = c.types.New(Type{kind: KindArray, elem: elem, count: n})
		c.arrays[key] = ty
	}
	return QualType{ty: ty}
}

// VectorOf returns the type of n-lane vectors of an arithmetic element type.
func (c *Context) VectorOf(elem QualType, n int) QualType {
	c.mustOwn(elem)
	if !elem.IsArithmeticType() || n <= 0 {
		panic(fmt.Sprintf("cexpr/ctype: invalid vector of %d %s", n, elem))
	}
	key := sequenceKey{elem.Unqualified(), int64(n)}
	ty, ok := c.vectors[key]
	if !ok {
		ty = c.types.New(Type{kind: KindVector, elem: key.elem, count: key.count})
		c.vectors[key] = ty
	}
	return QualType{ty: ty}
}

// FunctionType returns a new function type. Function types are not uniqued;
// use [Context.Compatible] to compare them.
func (c *Context) FunctionType(result QualType, params []QualType, variadic bool) QualType {
	c.mustOwn(result)
	for _, p := range params {
		c.mustOwn(p)
	}
	if result.IsArrayType() || result.IsFunctionType() {
		panic(fmt.Sprintf("cexpr/ctype: function returning %s", result))
	}
	return QualType{ty: c.types.New(Type{
		kind:     KindFunction,
		elem:     result,
		params:   slices.Clone(params),
		variadic: variadic,
	})}
}

// NewRecord declares a new struct or union. It remains incomplete until
// [Context.Complete] is called on it.
func (c *Context) NewRecord(kind Kind, name string) QualType {
	if kind != KindStruct && kind != KindUnion {
		panic(fmt.Sprintf("cexpr/ctype: %#v is not a record kind", kind))
	}
	return QualType{ty: c.types.New(Type{kind: kind, name: name})}
}

// Complete defines the members of a record declared with [Context.NewRecord].
//
// Panics if the record is already complete or a member has an incomplete or
// function type.
func (c *Context) Complete(record QualType, fields ...Field) {
	c.mustOwn(record)
	if !record.IsRecordType() || record.ty.complete {
		panic(fmt.Sprintf("cexpr/ctype: cannot complete %s", record))
	}
	for _, f := range fields {
		c.mustOwn(f.Type)
		if !f.Type.IsObjectType() {
			panic(fmt.Sprintf("cexpr/ctype: field %s has non-object type %s", f.Name, f.Type))
		}
	}
	record.ty.fields = slices.Clone(fields)
	record.ty.complete = true
}

// NewEnum declares a complete enum whose values are represented as the given
// integer kind.
func (c *Context) NewEnum(name string, underlying Kind) QualType {
	base := c.Builtin(underlying)
	if !base.IsIntegerType() || underlying == KindBool {
		panic(fmt.Sprintf("cexpr/ctype: enum %s cannot have underlying type %s", name, base))
	}
	return QualType{ty: c.types.New(Type{
		kind:     KindEnum,
		name:     name,
		elem:     base,
		complete: true,
		width:    base.ty.width,
		align:    base.ty.align,
		unsigned: base.ty.unsigned,
	})}
}

// IntWidth returns the width in bits of an integer, pointer, or floating type.
//
// Panics on any other type.
func (c *Context) IntWidth(t QualType) uint {
	if !t.IsScalarType() {
		panic(fmt.Sprintf("cexpr/ctype: %s has no width", t))
	}
	return t.ty.width
}

// SizeOf returns the size of t in bytes, or false if t is not constant-size.
func (c *Context) SizeOf(t QualType) (uint64, bool) {
	size, _, ok := c.layout(t)
	return size, ok
}

// AlignOf returns the alignment of t in bytes, or false if t is not
// constant-size.
func (c *Context) AlignOf(t QualType) (uint64, bool) {
	_, align, ok := c.layout(t)
	return align, ok
}

func (c *Context) layout(t QualType) (size, align uint64, ok bool) {
	if !t.IsConstantSizeType() {
		return 0, 0, false
	}

	switch t.Kind() {
	case KindArray:
		size, align, _ := c.layout(t.ty.elem)
		return size * uint64(t.ty.count), align, true

	case KindVector:
		elem, _, _ := c.layout(t.ty.elem)
		size := nextPowerOfTwo(elem * uint64(t.ty.count))
		return size, size, true

	case KindStruct, KindUnion:
		align = 1
		for _, f := range t.ty.fields {
			fsize, falign, _ := c.layout(f.Type)
			align = max(align, falign)
			if t.Kind() == KindUnion {
				size = max(size, fsize)
				continue
			}
			size = alignTo(size, falign) + fsize
		}
		return alignTo(size, align), align, true

	default:
		return uint64(t.ty.width) / 8, uint64(t.ty.align) / 8, true
	}
}

// OffsetOf returns the byte offset of the named member of a complete struct
// or union, or false if there is no such member.
func (c *Context) OffsetOf(record QualType, name string) (uint64, bool) {
	if !record.IsRecordType() || !record.IsConstantSizeType() {
		return 0, false
	}
	var offset uint64
	for _, f := range record.ty.fields {
		fsize, falign, _ := c.layout(f.Type)
		if record.Kind() == KindStruct {
			offset = alignTo(offset, falign)
		}
		if f.Name == name {
			return offset, true
		}
		if record.Kind() == KindStruct {
			offset += fsize
		}
	}
	return 0, false
}

// Compatible returns whether two types are compatible in the sense of C99
// 6.2.7: identically qualified, and structurally the same type.
func (c *Context) Compatible(a, b QualType) bool {
	if a.quals != b.quals {
		return false
	}
	if a.ty == b.ty {
		return true
	}
	if a.IsZero() || b.IsZero() {
		return false
	}

	// An enum is compatible with its underlying integer type.
	if a.IsEnumType() != b.IsEnumType() {
		if a.IsEnumType() {
			a, b = b, a
		}
		return a.ty == b.ty.elem.ty
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindPointer:
		return c.Compatible(a.ty.elem, b.ty.elem)
	case KindArray:
		if a.ty.count >= 0 && b.ty.count >= 0 && a.ty.count != b.ty.count {
			return false
		}
		return c.Compatible(a.ty.elem, b.ty.elem)
	case KindVector:
		return a.ty.count == b.ty.count && c.Compatible(a.ty.elem, b.ty.elem)
	case KindFunction:
		if !c.Compatible(a.ty.elem, b.ty.elem) ||
			a.ty.variadic != b.ty.variadic ||
			len(a.ty.params) != len(b.ty.params) {
			return false
		}
		for i := range a.ty.params {
			if !c.Compatible(a.ty.params[i].Unqualified(), b.ty.params[i].Unqualified()) {
				return false
			}
		}
		return true
	default:
		// Builtins are uniqued and records and enums are nominal, so pointer
		// inequality settles it.
		return false
	}
}

func (c *Context) mustOwn(t QualType) {
	if t.IsZero() {
		panic("cexpr/ctype: missing type")
	}
	if !c.Owns(t) {
		panic(fmt.Sprintf("cexpr/ctype: %s belongs to a different context", t))
	}
}

func alignTo(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

func nextPowerOfTwo(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
