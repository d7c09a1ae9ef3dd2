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

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	kind  int8
	begin uint32
	end   uint32
}

func TestPointerIndex(t *testing.T) {
	t.Parallel()

	nodes := make([]record, 4)
	tests := []struct {
		name string
		p    *record
		s    []record
		want int
	}{
		{name: "nil", want: -1},
		{name: "nil pointer", s: nodes, want: -1},
		{name: "foreign", p: new(record), s: nodes, want: -1},
		{name: "first", p: &nodes[0], s: nodes, want: 0},
		{name: "last", p: &nodes[3], s: nodes, want: 3},
		{name: "before window", p: &nodes[0], s: nodes[1:], want: -1},
		{name: "after window", p: &nodes[3], s: nodes[:2], want: -1},
		{name: "offset window", p: &nodes[2], s: nodes[2:], want: 0},
		{name: "empty", p: &nodes[1], s: nodes[1:1], want: -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, pointerIndex(test.p, test.s))
		})
	}
}
