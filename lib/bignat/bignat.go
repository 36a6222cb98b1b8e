// Copyright 2018 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ----------------

// Package bignat provides an arbitrary-precision non-negative integer, Nat,
// built directly on the standard math/big package: the same dependency
// (and nothing else) that the sibling "interval" style package in the
// upstream codec library uses for its own big-integer arithmetic.
//
// Nat values are immutable: every operation returns a new Nat rather than
// mutating its receiver or arguments, so that Nat can be passed around and
// compared without defensive copying.
package bignat

import (
	"math/big"

	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
)

// Nat is an arbitrary-precision non-negative integer. The zero value is a
// valid Nat equal to zero.
type Nat struct {
	i *big.Int
}

// Zero is the Nat equal to 0.
var Zero = Nat{}

// One is the Nat equal to 1.
var One = FromUint64(1)

// FromUint64 returns the Nat equal to u.
func FromUint64(u uint64) Nat {
	return Nat{i: new(big.Int).SetUint64(u)}
}

func (n Nat) big() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// IsZero reports whether n is zero.
func (n Nat) IsZero() bool {
	return n.big().Sign() == 0
}

// Cmp returns -1, 0 or +1 as n is less than, equal to, or greater than m.
func (n Nat) Cmp(m Nat) int {
	return n.big().Cmp(m.big())
}

// Add returns n+m.
func (n Nat) Add(m Nat) Nat {
	return Nat{i: new(big.Int).Add(n.big(), m.big())}
}

// Sub returns n-m. The caller must guarantee n >= m; Sub does not check and
// will return a Nat wrapping a negative *big.Int otherwise, which violates
// Nat's invariant and is a programmer error, not a runtime one.
func (n Nat) Sub(m Nat) Nat {
	return Nat{i: new(big.Int).Sub(n.big(), m.big())}
}

// Mul returns n*m.
func (n Nat) Mul(m Nat) Nat {
	return Nat{i: new(big.Int).Mul(n.big(), m.big())}
}

// Double returns 2*n.
func (n Nat) Double() Nat {
	return Nat{i: new(big.Int).Lsh(n.big(), 1)}
}

// Halve returns floor(n/2).
func (n Nat) Halve() Nat {
	return Nat{i: new(big.Int).Rsh(n.big(), 1)}
}

// BitLen returns the smallest k such that n < 2^k. BitLen(0) is 0.
func (n Nat) BitLen() int {
	return n.big().BitLen()
}

// TestBit returns the i-th bit of n (0 or 1), i counted from the least
// significant bit.
func (n Nat) TestBit(i int) uint {
	return n.big().Bit(i)
}

// HighestSetBit returns the position p of the most significant set bit
// (0-indexed) and the Nat value 2^p. It is undefined (returns -1, Zero) for
// n == 0.
func (n Nat) HighestSetBit() (pos int, value Nat) {
	bl := n.BitLen()
	if bl == 0 {
		return -1, Zero
	}
	pos = bl - 1
	return pos, Nat{i: new(big.Int).Lsh(big.NewInt(1), uint(pos))}
}

// FromBytesBE parses a raw big-endian byte sequence as an unsigned integer.
// Empty input maps to zero.
func FromBytesBE(b []byte) Nat {
	return Nat{i: new(big.Int).SetBytes(b)}
}

// FromBytesLE parses a raw little-endian byte sequence as an unsigned
// integer. Empty input maps to zero.
func FromBytesLE(b []byte) Nat {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return Nat{i: new(big.Int).SetBytes(rev)}
}

// ToBytesBE renders n as exactly size big-endian bytes, padding with
// leading zeroes as needed. It fails with zeckerr.DecompressedTooLarge if n
// does not fit in size bytes.
func ToBytesBE(n Nat, size int) ([]byte, error) {
	raw := n.big().Bytes()
	if len(raw) > size {
		return nil, zeckerr.New(zeckerr.DecompressedTooLarge,
			"value needs %d bytes, which does not fit in %d", len(raw), size)
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out, nil
}

// ToBytesLE renders n as exactly size little-endian bytes, padding with
// trailing zeroes as needed. It fails with zeckerr.DecompressedTooLarge if n
// does not fit in size bytes.
func ToBytesLE(n Nat, size int) ([]byte, error) {
	raw := n.big().Bytes()
	if len(raw) > size {
		return nil, zeckerr.New(zeckerr.DecompressedTooLarge,
			"value needs %d bytes, which does not fit in %d", len(raw), size)
	}
	out := make([]byte, size)
	for i, c := range raw {
		out[len(raw)-1-i] = c
	}
	return out, nil
}

// String renders n in decimal, for debugging and test-failure messages.
func (n Nat) String() string {
	return n.big().String()
}
