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

package ctype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cexpr/ctype"
)

func TestString(t *testing.T) {
	t.Parallel()

	c := ctype.NewContext(ctype.LP64)
	i := c.Builtin(ctype.KindInt)
	ch := c.Builtin(ctype.KindChar)
	rec := c.NewRecord(ctype.KindStruct, "S")

	tests := []struct {
		ty   ctype.QualType
		want string
	}{
		{i, "int"},
		{i.WithQuals(ctype.Const), "const int"},
		{c.PointerTo(i), "int *"},
		{c.PointerTo(i.WithQuals(ctype.Const)), "const int *"},
		{c.PointerTo(i).WithQuals(ctype.Const), "int *const"},
		{c.PointerTo(c.PointerTo(ch)), "char **"},
		{c.ArrayOf(i, 4), "int [4]"},
		{c.IncompleteArrayOf(ch), "char []"},
		{c.PointerTo(c.ArrayOf(i, 4)), "int (*)[4]"},
		{c.FunctionType(i, []ctype.QualType{i, ch}, false), "int (int, char)"},
		{c.FunctionType(i, nil, false), "int (void)"},
		{c.PointerTo(c.FunctionType(c.Builtin(ctype.KindVoid), []ctype.QualType{i}, true)), "void (*)(int, ...)"},
		{rec, "struct S"},
		{c.NewEnum("E", ctype.KindUInt), "enum E"},
		{c.VectorOf(c.Builtin(ctype.KindFloat), 4), "float __attribute__((ext_vector_type(4)))"},
		{c.Builtin(ctype.KindULongLong).WithQuals(ctype.Volatile | ctype.Const), "const volatile unsigned long long"},
		{ctype.QualType{}, "<no type>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.ty.String())
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := ctype.NewContext(ctype.LP64)
	i := c.Builtin(ctype.KindInt)
	u := c.Builtin(ctype.KindUInt)
	e := c.NewEnum("E", ctype.KindUInt)
	rec := c.NewRecord(ctype.KindUnion, "U")

	assert.True(i.IsIntegerType())
	assert.True(i.IsSignedIntegerType())
	assert.True(u.IsUnsignedIntegerType())
	assert.True(e.IsIntegerType())
	assert.True(e.IsUnsignedIntegerType())
	assert.True(c.Builtin(ctype.KindBool).IsUnsignedIntegerType())
	assert.True(c.Builtin(ctype.KindChar).IsSignedIntegerType())
	assert.False(c.Builtin(ctype.KindDouble).IsIntegerType())
	assert.True(c.Builtin(ctype.KindDouble).IsRealFloatingType())
	assert.True(c.PointerTo(i).IsScalarType())

	assert.True(c.Builtin(ctype.KindVoid).IsIncompleteType())
	assert.True(c.IncompleteArrayOf(i).IsIncompleteType())
	assert.True(rec.IsIncompleteType())
	assert.False(rec.IsObjectType())
	c.Complete(rec, ctype.Field{Name: "a", Type: i})
	assert.False(rec.IsIncompleteType())
	assert.True(rec.IsObjectType())
	assert.False(c.FunctionType(i, nil, false).IsObjectType())
	assert.Panics(func() { c.Complete(rec) })

	f, ok := rec.Field("a")
	assert.True(ok)
	assert.Equal(i, f.Type)
	_, ok = rec.Field("b")
	assert.False(ok)

	n, ok := c.ArrayOf(i, 3).ArraySize()
	assert.True(ok)
	assert.Equal(int64(3), n)
	_, ok = c.IncompleteArrayOf(i).ArraySize()
	assert.False(ok)
	assert.Equal(i, c.PointerTo(i).Pointee())
	assert.Equal(i, c.ArrayOf(i, 3).Element())
	assert.True(c.Builtin(ctype.KindVoid).Pointee().IsZero())

	// Uniquing.
	assert.Equal(c.PointerTo(i), c.PointerTo(i))
	assert.NotEqual(c.PointerTo(i), c.PointerTo(u))
	assert.Equal(c.ArrayOf(i, 2), c.ArrayOf(i, 2))

	other := ctype.NewContext(ctype.LP64)
	assert.True(c.Owns(i))
	assert.False(other.Owns(i))
	assert.Panics(func() { other.PointerTo(i) })
	assert.Panics(func() { c.Builtin(ctype.KindPointer) })
	assert.Panics(func() { c.ArrayOf(c.Builtin(ctype.KindVoid), 1) })
}

func TestCompatible(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := ctype.NewContext(ctype.LP64)
	i := c.Builtin(ctype.KindInt)
	u := c.Builtin(ctype.KindUInt)
	v := c.Builtin(ctype.KindVoid)
	s1 := c.NewRecord(ctype.KindStruct, "S")
	s2 := c.NewRecord(ctype.KindStruct, "S")

	assert.True(c.Compatible(i, i))
	assert.False(c.Compatible(i, u))
	assert.False(c.Compatible(i, i.WithQuals(ctype.Const)))
	assert.True(c.Compatible(c.NewEnum("E", ctype.KindUInt), u))
	assert.True(c.Compatible(u, c.NewEnum("E", ctype.KindUInt)))
	assert.False(c.Compatible(s1, s2))
	assert.True(c.Compatible(c.ArrayOf(i, 3), c.IncompleteArrayOf(i)))
	assert.False(c.Compatible(c.ArrayOf(i, 3), c.ArrayOf(i, 4)))
	assert.True(c.Compatible(c.PointerTo(v), c.VoidPointer()))
	assert.False(c.Compatible(c.PointerTo(v.WithQuals(ctype.Const)), c.VoidPointer()))
	assert.True(c.Compatible(
		c.FunctionType(i, []ctype.QualType{i.WithQuals(ctype.Const)}, false),
		c.FunctionType(i, []ctype.QualType{i}, false),
	))
	assert.False(c.Compatible(
		c.FunctionType(i, []ctype.QualType{i}, true),
		c.FunctionType(i, []ctype.QualType{i}, false),
	))
}

func TestVoidPointer(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := ctype.NewContext(ctype.LP64)
	vp := c.VoidPointer()
	assert.Equal("void *", vp.String())
	assert.Equal(vp, c.VoidPointer())
	assert.Equal(vp, c.PointerTo(c.Builtin(ctype.KindVoid)))
	assert.True(c.Owns(vp))
	assert.True(c.Compatible(vp, c.PointerTo(c.Builtin(ctype.KindVoid))))
}

func TestLayout(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, target := range []ctype.Target{ctype.LP64, ctype.ILP32} {
		c := ctype.NewContext(target)
		ptr := uint64(target.PointerWidth / 8)

		s := c.NewRecord(ctype.KindStruct, "S")
		c.Complete(s,
			ctype.Field{Name: "c", Type: c.Builtin(ctype.KindChar)},
			ctype.Field{Name: "p", Type: c.PointerTo(c.Builtin(ctype.KindChar))},
			ctype.Field{Name: "s", Type: c.Builtin(ctype.KindShort)},
		)
		size, ok := c.SizeOf(s)
		assert.True(ok)
		assert.Equal(3*ptr, size, target.Name)
		align, _ := c.AlignOf(s)
		assert.Equal(ptr, align, target.Name)
		offset, ok := c.OffsetOf(s, "s")
		assert.True(ok)
		assert.Equal(2*ptr, offset, target.Name)
		offset, _ = c.OffsetOf(s, "p")
		assert.Equal(ptr, offset, target.Name)
		_, ok = c.OffsetOf(s, "missing")
		assert.False(ok)

		u := c.NewRecord(ctype.KindUnion, "U")
		c.Complete(u,
			ctype.Field{Name: "c", Type: c.ArrayOf(c.Builtin(ctype.KindChar), 5)},
			ctype.Field{Name: "i", Type: c.Builtin(ctype.KindInt)},
		)
		size, _ = c.SizeOf(u)
		assert.Equal(uint64(8), size, target.Name)
		offset, _ = c.OffsetOf(u, "i")
		assert.Equal(uint64(0), offset)

		size, _ = c.SizeOf(c.ArrayOf(c.Builtin(ctype.KindInt), 10))
		assert.Equal(uint64(40), size)
		size, _ = c.SizeOf(c.VectorOf(c.Builtin(ctype.KindFloat), 3))
		assert.Equal(uint64(16), size)

		_, ok = c.SizeOf(c.Builtin(ctype.KindVoid))
		assert.False(ok)
		_, ok = c.SizeOf(c.FunctionType(c.Builtin(ctype.KindInt), nil, false))
		assert.False(ok)
		_, ok = c.SizeOf(c.NewRecord(ctype.KindStruct, "Incomplete"))
		assert.False(ok)

		assert.Equal(target.LongWidth, c.IntWidth(c.Builtin(ctype.KindLong)))
		assert.Equal(uint(8), c.IntWidth(c.Builtin(ctype.KindBool)))
	}
}
