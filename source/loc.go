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

// Package source provides opaque source locations and the [Manager] that maps
// them back to files, lines, and columns.
//
// A [Loc] is a single integer in a space shared by every file added to a
// [Manager]. Expression nodes store only Locs; resolving them to something a
// human can read is deferred until a diagnostic is actually rendered.
package source

import (
	"fmt"
)

// Loc is an opaque source location. The zero value is invalid and is used
// for "no location", such as the missing parenthesis of a compound literal
// spelled without one.
type Loc uint32

// IsValid returns whether this location refers to an actual file position.
func (l Loc) IsValid() bool {
	return l != 0
}

// Add returns the location n bytes after l. Invalid locations stay invalid.
func (l Loc) Add(n int) Loc {
	if !l.IsValid() {
		return l
	}
	return Loc(int(l) + n)
}

// Range is a pair of locations: the first character of the first token and
// the first character of the last token. Both endpoints are inclusive.
//
// The zero value is the invalid range.
type Range struct {
	Begin, End Loc
}

// NewRange returns the range [begin, end].
//
// If one of the two locations is invalid, the range collapses onto the other.
func NewRange(begin, end Loc) Range {
	switch {
	case !begin.IsValid():
		return Range{end, end}
	case !end.IsValid():
		return Range{begin, begin}
	default:
		return Range{begin, end}
	}
}

// Point returns the range containing just loc.
func Point(loc Loc) Range {
	return Range{loc, loc}
}

// IsValid returns whether both endpoints are valid.
func (r Range) IsValid() bool {
	return r.Begin.IsValid() && r.End.IsValid()
}

// Contains returns whether every valid endpoint of that lies within r.
func (r Range) Contains(that Range) bool {
	if !r.IsValid() || !that.IsValid() {
		return false
	}
	return r.Begin <= that.Begin && that.End <= r.End
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	if !r.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("[%d, %d]", r.Begin, r.End)
}

// Join returns the smallest range containing every valid endpoint of ranges.
//
// Invalid endpoints are skipped; if there are none, the result is invalid.
func Join(ranges ...Range) Range {
	var out Range
	for _, r := range ranges {
		for _, loc := range [...]Loc{r.Begin, r.End} {
			if !loc.IsValid() {
				continue
			}
			if !out.Begin.IsValid() || loc < out.Begin {
				out.Begin = loc
			}
			if loc > out.End {
				out.End = loc
			}
		}
	}
	return out
}
