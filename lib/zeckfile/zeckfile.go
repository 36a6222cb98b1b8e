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

// ----------------

// Package zeckfile provides access to zeck files: the 10-byte-header
// container that wraps a zeckbytes payload with enough metadata (the
// original size and the endianness used at compression time) to recover
// the original bytes exactly.
//
// Unlike the upstream RAC container this package's layout is modeled on,
// a zeck file has no chunk index and no random access: it wraps exactly
// one payload, written in one pass and read in one pass.
package zeckfile

import (
	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
)

// HeaderSize is the fixed size, in bytes, of a zeck file header.
const HeaderSize = 10

// Version is the only header.version value this package knows how to
// produce or parse.
const Version = 1

const (
	flagBigEndian   = 1 << 0
	flagReservedBit = ^uint8(flagBigEndian) // bits 1..7
)

// Endianness records which byte order was used to interpret the original
// input as an integer at compression time.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// Header is the fixed-width metadata of a zeck file.
type Header struct {
	Version      uint8
	OriginalSize uint64
	Endianness   Endianness
}

func putU64LE(b []byte, v uint64) {
	_ = b[7] // bounds check hint, same as the upstream container writer.
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func getU64LE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Wrap concatenates a zeck file header (carrying originalSize and endian)
// with payload, returning the serialized container.
//
// It fails with zeckerr.DataSizeTooLarge if originalSize does not fit in a
// uint64 - which on every current Go platform (where int is at most 64
// bits) only happens when originalSize, passed in as an int, is negative.
func Wrap(payload []byte, originalSize int, endian Endianness) ([]byte, error) {
	if originalSize < 0 {
		return nil, zeckerr.New(zeckerr.DataSizeTooLarge, "original size %d does not fit in a uint64", originalSize)
	}

	out := make([]byte, HeaderSize+len(payload))
	out[0] = Version
	putU64LE(out[1:9], uint64(originalSize))
	flags := uint8(0)
	if endian == BigEndian {
		flags |= flagBigEndian
	}
	out[9] = flags
	copy(out[HeaderSize:], payload)
	return out, nil
}

// Parse splits a serialized container into its Header and payload.
//
// It fails with zeckerr.HeaderTooShort if len(b) < HeaderSize, with
// zeckerr.UnsupportedVersion if header.version != Version, and with
// zeckerr.ReservedFlagsSet if any of flags bits 1..7 is 1.
func Parse(b []byte) (Header, []byte, error) {
	if len(b) < HeaderSize {
		return Header{}, nil, zeckerr.New(zeckerr.HeaderTooShort, "container is %d bytes, need at least %d", len(b), HeaderSize)
	}

	version := b[0]
	if version != Version {
		return Header{}, nil, zeckerr.New(zeckerr.UnsupportedVersion, "header version %d is not supported (want %d)", version, Version)
	}

	flags := b[9]
	if flags&flagReservedBit != 0 {
		return Header{}, nil, zeckerr.New(zeckerr.ReservedFlagsSet, "reserved flag bits are set: %#02x", flags)
	}

	endian := LittleEndian
	if flags&flagBigEndian != 0 {
		endian = BigEndian
	}

	h := Header{
		Version:      version,
		OriginalSize: getU64LE(b[1:9]),
		Endianness:   endian,
	}
	return h, b[HeaderSize:], nil
}

// ToBytes is an alias for Wrap, named to match the external interface
// listed for the container format.
func ToBytes(payload []byte, originalSize int, endian Endianness) ([]byte, error) {
	return Wrap(payload, originalSize, endian)
}

// FromBytes is an alias for Parse, named to match the external interface
// listed for the container format.
func FromBytes(b []byte) (Header, []byte, error) {
	return Parse(b)
}

// CompressedSizeHint returns the container size - HeaderSize plus
// payloadSize - that a compressor would produce for a payload of the given
// size, without allocating or wrapping anything. Callers (including
// zeckbytes.CompressBest) use this, once a payload has been encoded, to
// compare its container size with the original input before wrapping it.
func CompressedSizeHint(payloadSize int) int {
	return HeaderSize + payloadSize
}
