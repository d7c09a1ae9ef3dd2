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

package exprtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/ctype"
	"github.com/bufbuild/cexpr/internal/exprtest"
)

func TestParse(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	b := exprtest.New(ctype.LP64)
	require.NoError(b.Declare(`
		(struct S (a int) (b (const long)))
		(var s S)
		(var p (ptr S))
		(func f (fn int int ...))
	`))

	e, err := b.Parse("(+ 1 (* 2 3))")
	require.NoError(err)
	add := e.AsBinary()
	assert.Equal(ast.BinaryAdd, add.Op())
	assert.Equal(ctype.KindInt, e.Type().Kind())
	assert.Equal(ast.BinaryMul, add.RHS().AsBinary().Op())
	assert.Equal("input2.sexpr:1:4", b.Files.Resolve(add.LHS().Begin()).String())

	e = b.MustParse("(-> p b)")
	assert.Equal(ast.KindMember, e.Kind())
	assert.True(e.Type().IsConstQualified())
	assert.Equal(ctype.KindLong, e.Type().Kind())

	e = b.MustParse("(call f 1 2ul)")
	assert.Equal(2, e.AsCall().NumArgs())
	assert.Equal(ctype.KindULong, e.AsCall().Arg(1).Type().Kind())

	e = b.MustParse("(?: 1 _ 2u)")
	assert.True(e.AsConditional().Then().IsZero())
	assert.Equal(ctype.KindUInt, e.Type().Kind())

	e = b.MustParse("(typed long 1)")
	assert.Equal(ctype.KindLong, e.Type().Kind())
}

func TestErrors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	b := exprtest.New(ctype.LP64)
	_, err := b.Parse("(+ 1 nope)")
	assert.ErrorContains(err, "undeclared identifier nope")

	_, err = b.Parse("(+ 1")
	assert.ErrorContains(err, "unclosed (")

	_, err = b.Type("(ptr mystery)")
	assert.ErrorContains(err, `unknown type "mystery"`)

	assert.Panics(func() { b.MustDeclare("(frobnicate x)") })
}
