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

// Package apint provides [Int], a fixed-width integer of arbitrary bit width
// with explicit signedness.
//
// Every operation wraps modulo 2^width, the way the target machine would.
// Values are immutable: operations return new values and never modify their
// receivers or arguments.
package apint

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Int is a fixed-width integer.
//
// The zero value has width zero and is only useful as a "no value" marker;
// see [Int.IsValid].
type Int struct {
	v        *big.Int
	width    uint
	unsigned bool
}

// New returns zero with the given width and signedness.
//
// Panics if width is zero.
func New(width uint, unsigned bool) Int {
	if width == 0 {
		panic("cexpr/apint: zero width")
	}
	return Int{v: new(big.Int), width: width, unsigned: unsigned}
}

// From converts a Go integer into an Int, wrapping it to width bits.
func From[T constraints.Integer](v T, width uint, unsigned bool) Int {
	n := New(width, unsigned)
	if v < 0 {
		n.v.SetInt64(int64(v))
	} else {
		n.v.SetUint64(uint64(v))
	}
	return n.norm()
}

// FromBig converts a big integer into an Int, wrapping it to width bits.
//
// v is not retained.
func FromBig(v *big.Int, width uint, unsigned bool) Int {
	n := New(width, unsigned)
	n.v.Set(v)
	return n.norm()
}

// FromBool returns one or zero.
func FromBool(b bool, width uint, unsigned bool) Int {
	if b {
		return From(1, width, unsigned)
	}
	return New(width, unsigned)
}

// IsValid returns whether this is a non-zero-width value.
func (n Int) IsValid() bool {
	return n.width != 0
}

// Width returns the width of this value in bits.
func (n Int) Width() uint {
	return n.width
}

// IsUnsigned returns whether this value is interpreted as unsigned.
func (n Int) IsUnsigned() bool {
	return n.unsigned
}

// IsSigned returns whether this value is interpreted as two's complement.
func (n Int) IsSigned() bool {
	return !n.unsigned
}

// Big returns a copy of this value as a big integer.
func (n Int) Big() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.v)
}

// Int64 returns this value as an int64, and whether it fits.
func (n Int) Int64() (int64, bool) {
	if n.v == nil {
		return 0, true
	}
	return n.v.Int64(), n.v.IsInt64()
}

// Uint64 returns this value as a uint64, and whether it fits.
func (n Int) Uint64() (uint64, bool) {
	if n.v == nil {
		return 0, true
	}
	return n.v.Uint64(), n.v.IsUint64()
}

// IsZero returns whether this value is zero.
func (n Int) IsZero() bool {
	return n.v == nil || n.v.Sign() == 0
}

// Sign returns -1, 0, or +1.
func (n Int) Sign() int {
	if n.v == nil {
		return 0
	}
	return n.v.Sign()
}

// Equal returns whether two values have the same width, signedness, and value.
func (n Int) Equal(m Int) bool {
	return n.width == m.width && n.unsigned == m.unsigned && n.Big().Cmp(m.Big()) == 0
}

// Cmp compares the numeric values of n and m, as interpreted by their own
// signedness.
func (n Int) Cmp(m Int) int {
	return n.Big().Cmp(m.Big())
}

// Convert changes the width and signedness of this value.
//
// Narrowing truncates; widening sign-extends signed values and zero-extends
// unsigned ones.
func (n Int) Convert(width uint, unsigned bool) Int {
	return FromBig(n.Big(), width, unsigned)
}

// Add returns n + m.
func (n Int) Add(m Int) Int {
	return n.binary(m, (*big.Int).Add)
}

// Sub returns n - m.
func (n Int) Sub(m Int) Int {
	return n.binary(m, (*big.Int).Sub)
}

// Mul returns n * m.
func (n Int) Mul(m Int) Int {
	return n.binary(m, (*big.Int).Mul)
}

// Quo returns n / m, truncated toward zero.
//
// Panics if m is zero.
func (n Int) Quo(m Int) Int {
	if m.IsZero() {
		panic("cexpr/apint: division by zero")
	}
	return n.binary(m, (*big.Int).Quo)
}

// Rem returns the remainder of n / m, which has the sign of n.
//
// Panics if m is zero.
func (n Int) Rem(m Int) Int {
	if m.IsZero() {
		panic("cexpr/apint: division by zero")
	}
	return n.binary(m, (*big.Int).Rem)
}

// And returns n & m. Bitwise operations act on the two's complement
// representation.
func (n Int) And(m Int) Int {
	return n.binary(m, (*big.Int).And)
}

// Or returns n | m.
func (n Int) Or(m Int) Int {
	return n.binary(m, (*big.Int).Or)
}

// Xor returns n ^ m.
func (n Int) Xor(m Int) Int {
	return n.binary(m, (*big.Int).Xor)
}

// Shl returns n << k.
func (n Int) Shl(k uint) Int {
	out := n.clone()
	out.v.Lsh(out.v, k)
	return out.norm()
}

// Shr returns n >> k. Signed values shift arithmetically.
func (n Int) Shr(k uint) Int {
	out := n.clone()
	out.v.Rsh(out.v, k)
	return out.norm()
}

// Neg returns -n.
func (n Int) Neg() Int {
	out := n.clone()
	out.v.Neg(out.v)
	return out.norm()
}

// Not returns ^n.
func (n Int) Not() Int {
	out := n.clone()
	out.v.Not(out.v)
	return out.norm()
}

// String implements [fmt.Stringer].
func (n Int) String() string {
	if n.v == nil {
		return "<invalid>"
	}
	return n.v.String()
}

// Format implements [fmt.Formatter]; verbs are forwarded to [big.Int].
func (n Int) Format(s fmt.State, verb rune) {
	if n.v == nil {
		fmt.Fprint(s, "<invalid>")
		return
	}
	n.v.Format(s, verb)
}

func (n Int) clone() Int {
	if !n.IsValid() {
		panic("cexpr/apint: operation on invalid Int")
	}
	return Int{v: new(big.Int).Set(n.v), width: n.width, unsigned: n.unsigned}
}

func (n Int) binary(m Int, op func(z, x, y *big.Int) *big.Int) Int {
	n.mustMatch(m)
	out := n.clone()
	op(out.v, n.v, m.v)
	return out.norm()
}

func (n Int) mustMatch(m Int) {
	if n.width != m.width || n.unsigned != m.unsigned {
		panic(fmt.Sprintf("cexpr/apint: mismatched operands: %s and %s", n.describe(), m.describe()))
	}
}

func (n Int) describe() string {
	if n.unsigned {
		return fmt.Sprintf("u%d", n.width)
	}
	return fmt.Sprintf("i%d", n.width)
}

// norm wraps n.v into the range of n's width and signedness, in place.
func (n Int) norm() Int {
	mod := new(big.Int).Lsh(big.NewInt(1), n.width)
	n.v.Mod(n.v, mod) // Euclidean, so now 0 <= v < 2^w.
	if !n.unsigned && n.v.Bit(int(n.width-1)) == 1 {
		n.v.Sub(n.v, mod)
	}
	return n
}
