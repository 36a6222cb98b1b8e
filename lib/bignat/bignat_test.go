// Copyright 2019 The Wuffs Authors.
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

package bignat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var z Nat
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Cmp(Zero))
	assert.Equal(t, 0, z.BitLen())
}

func TestFromBytesBEEmpty(t *testing.T) {
	assert.True(t, FromBytesBE(nil).IsZero())
	assert.True(t, FromBytesBE([]byte{}).IsZero())
}

func TestFromToBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		{0x00},
		{0x0c},
		{0x01, 0x00},
		{0xff, 0xff, 0xff, 0xff},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	}
	for _, c := range cases {
		n := FromBytesBE(c)
		got, err := ToBytesBE(n, len(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)

		n = FromBytesLE(c)
		got, err = ToBytesLE(n, len(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestToBytesTooLarge(t *testing.T) {
	n := FromBytesBE([]byte{0x01, 0x00, 0x00})
	_, err := ToBytesBE(n, 2)
	require.Error(t, err)
	_, err = ToBytesLE(n, 2)
	require.Error(t, err)
}

func TestLittleEndianIsByteReversedBigEndian(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	be := FromBytesBE(raw)
	rev := []byte{raw[2], raw[1], raw[0]}
	le := FromBytesLE(raw)
	assert.Equal(t, 0, le.Cmp(FromBytesBE(rev)))
	assert.NotEqual(t, 0, be.Cmp(le))
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := FromUint64(r.Uint64() % 1_000_000)
		b := FromUint64(r.Uint64() % 1_000_000)
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		sum := b.Add(a.Sub(b))
		assert.Equal(t, 0, sum.Cmp(a))
	}
}

func TestDoubleHalve(t *testing.T) {
	n := FromUint64(41)
	assert.Equal(t, 0, n.Double().Cmp(FromUint64(82)))
	assert.Equal(t, 0, n.Halve().Cmp(FromUint64(20)))
}

func TestHighestSetBit(t *testing.T) {
	n := FromUint64(0b1011)
	pos, value := n.HighestSetBit()
	assert.Equal(t, 3, pos)
	assert.Equal(t, 0, value.Cmp(FromUint64(8)))

	pos, value = Zero.HighestSetBit()
	assert.Equal(t, -1, pos)
	assert.True(t, value.IsZero())
}

func TestTestBit(t *testing.T) {
	n := FromUint64(0b1010)
	assert.EqualValues(t, 0, n.TestBit(0))
	assert.EqualValues(t, 1, n.TestBit(1))
	assert.EqualValues(t, 0, n.TestBit(2))
	assert.EqualValues(t, 1, n.TestBit(3))
}

func TestMulMatchesRepeatedAdd(t *testing.T) {
	a := FromUint64(17)
	b := FromUint64(5)
	sum := Zero
	for i := 0; i < 5; i++ {
		sum = sum.Add(a)
	}
	assert.Equal(t, 0, a.Mul(b).Cmp(sum))
}
