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

package apint_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cexpr/apint"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        int64
		width    uint
		unsigned bool
		want     string
	}{
		{v: 127, width: 8, want: "127"},
		{v: 128, width: 8, want: "-128"},
		{v: 255, width: 8, want: "-1"},
		{v: 255, width: 8, unsigned: true, want: "255"},
		{v: 256, width: 8, unsigned: true, want: "0"},
		{v: -1, width: 32, unsigned: true, want: "4294967295"},
		{v: -1, width: 1, unsigned: true, want: "1"},
		{v: 1, width: 1, want: "-1"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.v, tt.width, tt.unsigned), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, apint.From(tt.v, tt.width, tt.unsigned).String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	i32 := func(v int64) apint.Int { return apint.From(v, 32, false) }
	u32 := func(v int64) apint.Int { return apint.From(v, 32, true) }

	assert.Equal("7", i32(1).Add(i32(2).Mul(i32(3))).String())
	assert.Equal("-2147483648", i32(2147483647).Add(i32(1)).String())
	assert.Equal("4294967295", u32(0).Sub(u32(1)).String())
	assert.Equal("-3", i32(-7).Quo(i32(2)).String())
	assert.Equal("-1", i32(-7).Rem(i32(2)).String())
	assert.Equal("-2147483648", i32(-2147483648).Quo(i32(-1)).String())
	assert.Equal("-4", i32(-7).Shr(1).String())
	assert.Equal("2147483644", u32(-7).Shr(1).String())
	assert.Equal("0", i32(1).Shl(32).String())
	assert.Equal("-2147483648", i32(1).Shl(31).String())
	assert.Equal("-1", i32(0).Not().String())
	assert.Equal("6", i32(-2).And(i32(6)).String())
	assert.Equal("-2", i32(-2).Or(i32(6)).String())
	assert.Equal("-8", i32(-2).Xor(i32(6)).String())
	assert.Equal("-2147483648", i32(-2147483648).Neg().String())

	assert.Panics(func() { i32(1).Quo(i32(0)) })
	assert.Panics(func() { i32(1).Rem(i32(0)) })
	assert.Panics(func() { i32(1).Add(u32(1)) })
	assert.Panics(func() { apint.New(0, false) })
}

func TestConvert(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	n := apint.From(-1, 8, false)
	assert.Equal("-1", n.Convert(32, false).String())
	assert.Equal("4294967295", n.Convert(32, true).String())
	assert.Equal("255", n.Convert(8, true).Convert(32, false).String())
	assert.Equal("44", apint.From(300, 32, false).Convert(8, true).String())

	wide := apint.FromBig(new(big.Int).Lsh(big.NewInt(1), 100), 64, true)
	assert.True(wide.IsZero())
	assert.True(apint.FromBool(true, 32, false).Equal(apint.From(1, 32, false)))
	assert.False(apint.FromBool(true, 32, false).Equal(apint.From(1, 32, true)))
	assert.Equal(-1, apint.From(-5, 32, false).Cmp(apint.From(3, 32, false)))

	v, ok := apint.From(-5, 16, false).Int64()
	assert.True(ok)
	assert.Equal(int64(-5), v)
	assert.False(apint.Int{}.IsValid())
	assert.Equal("0x1f", fmt.Sprintf("%#x", apint.From(31, 8, true)))
}
