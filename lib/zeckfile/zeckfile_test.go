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

package zeckfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
)

func TestWrapParseRoundTrip(t *testing.T) {
	payload := []byte{0x35}
	container, err := Wrap(payload, 1, BigEndian)
	require.NoError(t, err)
	require.Len(t, container, HeaderSize+1)

	header, got, err := Parse(container)
	require.NoError(t, err)
	assert.Equal(t, uint8(Version), header.Version)
	assert.EqualValues(t, 1, header.OriginalSize)
	assert.Equal(t, BigEndian, header.Endianness)
	assert.Equal(t, payload, got)
}

func TestWrapEmptyPayload(t *testing.T) {
	container, err := Wrap(nil, 0, LittleEndian)
	require.NoError(t, err)
	require.Len(t, container, HeaderSize)

	header, got, err := Parse(container)
	require.NoError(t, err)
	assert.EqualValues(t, 0, header.OriginalSize)
	assert.Equal(t, LittleEndian, header.Endianness)
	assert.Empty(t, got)
}

func TestParseBigEndianFlagSetExplicitly(t *testing.T) {
	container := make([]byte, HeaderSize+1)
	container[0] = 1    // version
	container[1] = 1    // original_size LE u64, low byte
	container[9] = 0x01 // flags: big-endian
	container[HeaderSize] = 0x35

	header, payload, err := Parse(container)
	require.NoError(t, err)
	assert.EqualValues(t, 1, header.OriginalSize)
	assert.Equal(t, BigEndian, header.Endianness)
	assert.Equal(t, []byte{0x35}, payload)
}

func TestParseHeaderTooShort(t *testing.T) {
	_, _, err := Parse(make([]byte, HeaderSize-1))
	require.Error(t, err)
	assert.True(t, zeckerr.Is(err, zeckerr.HeaderTooShort))
}

func TestParseUnsupportedVersion(t *testing.T) {
	b := make([]byte, HeaderSize)
	b[0] = 2
	_, _, err := Parse(b)
	require.Error(t, err)
	assert.True(t, zeckerr.Is(err, zeckerr.UnsupportedVersion))
}

func TestParseReservedFlagsSet(t *testing.T) {
	b := make([]byte, HeaderSize)
	b[0] = 1
	b[9] = 0x02 // bit 1 set
	_, _, err := Parse(b)
	require.Error(t, err)
	assert.True(t, zeckerr.Is(err, zeckerr.ReservedFlagsSet))
}

func TestIdempotentSerialization(t *testing.T) {
	for _, endian := range []Endianness{BigEndian, LittleEndian} {
		container, err := ToBytes([]byte{1, 2, 3}, 9, endian)
		require.NoError(t, err)
		header, payload, err := FromBytes(container)
		require.NoError(t, err)
		roundTripped, err := ToBytes(payload, int(header.OriginalSize), header.Endianness)
		require.NoError(t, err)
		assert.Equal(t, container, roundTripped)
	}
}

func TestCompressedSizeHint(t *testing.T) {
	assert.Equal(t, HeaderSize, CompressedSizeHint(0))
	assert.Equal(t, HeaderSize+5, CompressedSizeHint(5))
}
