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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cexpr/source"
)

func TestJoin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(source.Range{Begin: 3, End: 9}, source.Join(
		source.Range{Begin: 5, End: 9},
		source.Point(3),
		source.Range{},
	))
	assert.False(source.Join().IsValid())
	assert.False(source.Join(source.Range{}, source.Range{}).IsValid())
	assert.Equal(source.Point(4), source.NewRange(0, 4))
	assert.Equal(source.Point(4), source.NewRange(4, 0))

	outer := source.NewRange(2, 10)
	assert.True(outer.Contains(source.NewRange(2, 10)))
	assert.True(outer.Contains(source.NewRange(4, 5)))
	assert.False(outer.Contains(source.NewRange(1, 5)))
	assert.False(outer.Contains(source.Range{}))
	assert.Equal(source.Loc(0), source.Loc(0).Add(5))
}

func TestManager(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m source.Manager
	a := m.AddFile("a.c", "int x;\n\tx = 1;\n")
	b := m.AddFile("b.c", "y")

	assert.Same(a, m.File(a.Loc(0)))
	assert.Same(a, m.File(a.Loc(len(a.Text()))))
	assert.Same(b, m.File(b.Loc(0)))
	assert.Same(b, m.File(b.Loc(1)))
	assert.Nil(m.File(0))
	assert.Nil(m.File(b.Loc(1) + 1))
	assert.Len(m.Files(), 2)

	pos := m.Resolve(a.Loc(8))
	assert.Equal("a.c", pos.Path)
	assert.Equal(2, pos.Line)
	assert.Equal(5, pos.Column) // After a tab.
	assert.Equal("a.c:2:5", pos.String())

	pos = m.Resolve(b.Loc(0))
	assert.Equal("b.c:1:1", pos.String())
	assert.Equal("<unknown>", m.Resolve(0).String())

	line, col := m.Line(a.Loc(9))
	assert.Equal("\tx = 1;", line)
	assert.Equal(2, col)

	assert.Equal("x = 1", m.Text(a.Range(8, 12)))
	assert.Equal("y", m.Text(b.Range(0, 0)))
	assert.Empty(m.Text(source.Range{Begin: a.Loc(0), End: b.Loc(0)}))

	assert.Panics(func() { a.Loc(100) })
	assert.Panics(func() { b.Offset(a.Loc(0)) })
}

func TestWidth(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(3, source.Width(0, "abc"))
	assert.Equal(4, source.Width(0, "\t"))
	assert.Equal(8, source.Width(2, "ab\t"))
	assert.Equal(4, source.Width(0, "日本"))
}
