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

package source

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
	"github.com/tidwall/btree"
)

// TabstopWidth is the number of columns a tab advances to.
const TabstopWidth = 4

// Manager owns a set of files and assigns each of them a disjoint slice of
// the [Loc] space.
//
// A zero Manager is empty and ready to use. Adding files is not
// concurrency-safe, but resolving locations is.
type Manager struct {
	files []*File
	// Keyed by the last location of each file, so that Seek finds the file
	// that a location falls in.
	byEnd btree.Map[Loc, *File]
}

// File is a file registered with a [Manager].
type File struct {
	path, text string
	base       Loc

	once  sync.Once
	lines []int // Byte offsets of the start of each line.
}

// Position is a resolved [Loc].
type Position struct {
	Path string
	// Byte offset into the file.
	Offset int
	// 1-indexed line and terminal column. Columns count display cells, with
	// tabs advancing to the next multiple of [TabstopWidth].
	Line, Column int
}

// IsValid returns whether this position came from a valid location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if !p.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}

// AddFile registers a file. Every byte offset in text, plus one past the end,
// becomes addressable as a [Loc].
func (m *Manager) AddFile(path, text string) *File {
	next := Loc(1)
	if n := len(m.files); n > 0 {
		last := m.files[n-1]
		next = last.base.Add(len(last.text) + 1)
	}
	if uint64(next)+uint64(len(text)) > math.MaxUint32 {
		panic(fmt.Sprintf("cexpr/source: location space exhausted adding %q", path))
	}

	f := &File{path: path, text: text, base: next}
	m.files = append(m.files, f)
	m.byEnd.Set(f.base.Add(len(text)), f)
	return f
}

// Files returns the files in this manager, in the order they were added.
func (m *Manager) Files() []*File {
	return slices.Clone(m.files)
}

// File returns the file containing loc, or nil.
func (m *Manager) File(loc Loc) *File {
	if !loc.IsValid() {
		return nil
	}
	iter := m.byEnd.Iter()
	if !iter.Seek(loc) || loc < iter.Value().base {
		return nil
	}
	return iter.Value()
}

// Resolve converts a location into a human-readable position. Returns the
// zero Position if loc is invalid or foreign.
func (m *Manager) Resolve(loc Loc) Position {
	f := m.File(loc)
	if f == nil {
		return Position{}
	}
	return f.Position(f.Offset(loc))
}

// Text returns the source text spanned by r, through the end of the last
// token's first byte. Returns "" if the range is invalid or crosses files.
func (m *Manager) Text(r Range) string {
	f := m.File(r.Begin)
	if f == nil || !r.IsValid() || m.File(r.End) != f || r.End < r.Begin {
		return ""
	}
	end := min(f.Offset(r.End)+1, len(f.text))
	return f.text[f.Offset(r.Begin):end]
}

// Line returns the text of the line containing loc, without its terminator,
// along with the offset of loc within it.
func (m *Manager) Line(loc Loc) (line string, col int) {
	f := m.File(loc)
	if f == nil {
		return "", 0
	}
	offset := f.Offset(loc)
	start, end := f.lineBounds(f.lineOf(offset))
	return strings.TrimSuffix(f.text[start:end], "\r"), offset - start
}

// Path returns this file's path.
func (f *File) Path() string {
	return f.path
}

// Text returns this file's contents.
func (f *File) Text() string {
	return f.text
}

// Loc returns the location of the given byte offset. The offset may be one
// past the end of the file.
func (f *File) Loc(offset int) Loc {
	if offset < 0 || offset > len(f.text) {
		panic(fmt.Sprintf("cexpr/source: offset %d out of bounds in %q", offset, f.path))
	}
	return f.base.Add(offset)
}

// Range returns the range between two byte offsets.
func (f *File) Range(begin, end int) Range {
	return Range{f.Loc(begin), f.Loc(end)}
}

// Offset converts a location in this file back into a byte offset.
func (f *File) Offset(loc Loc) int {
	offset := int(loc) - int(f.base)
	if offset < 0 || offset > len(f.text) {
		panic(fmt.Sprintf("cexpr/source: location %d is not in %q", loc, f.path))
	}
	return offset
}

// Position resolves a byte offset.
func (f *File) Position(offset int) Position {
	line := f.lineOf(offset)
	start, _ := f.lineBounds(line)
	return Position{
		Path:   f.path,
		Offset: offset,
		Line:   line + 1,
		Column: Width(0, f.text[start:offset]) + 1,
	}
}

func (f *File) lineOf(offset int) int {
	f.once.Do(f.index)
	// The greatest line start that is <= offset.
	line, found := slices.BinarySearch(f.lines, offset)
	if !found {
		line--
	}
	return line
}

func (f *File) lineBounds(line int) (start, end int) {
	start = f.lines[line]
	end = len(f.text)
	if line+1 < len(f.lines) {
		end = f.lines[line+1] - 1 // Drop the \n.
	}
	return start, min(end, len(f.text))
}

func (f *File) index() {
	f.lines = append(f.lines, 0)
	for i, b := range []byte(f.text) {
		if b == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
}

// Width returns the column reached after printing text starting at column,
// both zero-indexed, treating tabs as advancing to the next tabstop.
func Width(column int, text string) int {
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			column += TabstopWidth - column%TabstopWidth
		}
		column += uniseg.StringWidth(chunk)
	}
	return column
}
