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

// Package arena defines an [Arena] type with compressed pointers.
//
// Every node, type, and declaration in a translation unit lives in an arena
// and refers to its neighbors by four-byte index rather than by Go pointer.
// Such graphs are cheap for the GC to scan and are freed all at once when
// their owner is dropped.
package arena

import (
	"runtime"
	"unsafe"
)

// pointerIndex returns an integer n such that p == &s[n], or -1 if there is
// no such integer.
func pointerIndex[T any](p *T, s []T) int {
	a := unsafe.Pointer(p)
	b := unsafe.Pointer(unsafe.SliceData(s))
	// KeepAlive escapes its argument, so a and b are on the heap and won't
	// be moved.
	runtime.KeepAlive([2]unsafe.Pointer{a, b})

	diff := uintptr(a) - uintptr(b)
	size := unsafe.Sizeof(*p)
	byteLen := uintptr(len(s)) * size

	// A single comparison covers a past-the-end diff, an underflowing
	// subtraction (which wraps to a huge value), an empty s, and a nil p.
	if diff >= byteLen {
		return -1
	}

	return int(diff / size)
}
