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

// Package zeckbytes is the end-to-end, payload-level codec: raw bytes,
// reinterpreted as a non-negative integer, re-expressed as a Zeckendorf bit
// stream, packed into bytes. It comes in big-endian and little-endian
// flavors (which differ only in how the input bytes are first interpreted
// as an integer, and how the decoded integer is rendered back to bytes),
// plus a CompressBest selector that runs both and reports the smaller.
package zeckbytes

import (
	"github.com/zeckendorf-codec/zeck/lib/bignat"
	"github.com/zeckendorf-codec/zeck/lib/zeckendorf"
	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
	"github.com/zeckendorf-codec/zeck/lib/zeckfile"
)

// HeaderSize is the size, in bytes, of the zeckfile container header that
// wraps a payload produced by this package. CompressBest uses it (via
// zeckfile.CompressedSizeHint) to decide whether compression is worth it
// before a payload is ever wrapped; see zeckfile.Wrap for the authoritative
// header layout.
const HeaderSize = zeckfile.HeaderSize

// EncodeBE interprets b as a big-endian unsigned integer and returns its
// Zeckendorf-coded, LSB-first-packed payload. The integer 0 (including
// empty input) encodes to a zero-length payload.
func EncodeBE(b []byte) ([]byte, error) {
	return encode(bignat.FromBytesBE(b))
}

// EncodeLE interprets b as a little-endian unsigned integer and returns its
// Zeckendorf-coded, LSB-first-packed payload.
func EncodeLE(b []byte) ([]byte, error) {
	return encode(bignat.FromBytesLE(b))
}

func encode(n bignat.Nat) ([]byte, error) {
	zil := zeckendorf.Decompose(n)
	bits, err := zeckendorf.EncodeBits(zil)
	if err != nil {
		return nil, err
	}
	return zeckendorf.PackBits(bits), nil
}

// DecodeBE reverses EncodeBE, rendering the recomposed integer as exactly
// expectedOriginalSize big-endian bytes. It fails with
// zeckerr.DecompressedTooLarge if the recomposed integer doesn't fit.
func DecodeBE(payload []byte, expectedOriginalSize int) ([]byte, error) {
	n, err := decode(payload)
	if err != nil {
		return nil, err
	}
	return bignat.ToBytesBE(n, expectedOriginalSize)
}

// DecodeLE reverses EncodeLE, rendering the recomposed integer as exactly
// expectedOriginalSize little-endian bytes.
func DecodeLE(payload []byte, expectedOriginalSize int) ([]byte, error) {
	n, err := decode(payload)
	if err != nil {
		return nil, err
	}
	return bignat.ToBytesLE(n, expectedOriginalSize)
}

func decode(payload []byte) (bignat.Nat, error) {
	// Pass every unpacked bit, including the zero padding inside the final
	// byte, to zeckendorf.DecodeBits: it is responsible (per the Fibonacci
	// code's self-delimitation rule) for finding the "11" terminator and
	// for rejecting any non-zero bit after it as a malformed payload.
	bits := zeckendorf.UnpackBits(payload, 8*len(payload))
	zil, err := zeckendorf.DecodeBits(bits)
	if err != nil {
		return bignat.Nat{}, err
	}
	return zeckendorf.Recompose(zil), nil
}

// Kind distinguishes the three possible outcomes of CompressBest.
type Kind int

const (
	// BigEndianBest means the BE container is strictly smaller than the
	// original input and no larger than the LE container (BE wins ties).
	BigEndianBest Kind = iota
	// LittleEndianBest means the LE-encoded payload is strictly smaller
	// than both the BE-encoded payload and the original input.
	LittleEndianBest
	// Neither means neither encoded payload beats the original input's
	// size once the container header is accounted for.
	Neither
)

// Decision is the result of CompressBest.
type Decision struct {
	Kind Kind

	// Payload is the winning payload. It is nil when Kind == Neither.
	Payload []byte

	// BESize and LESize are the two encoded payload sizes (pre-header),
	// always populated regardless of Kind.
	BESize int
	LESize int
}

// CompressBest encodes b under both endianness interpretations and reports
// the smaller container, or Neither if neither beats the original size.
//
// "Smaller than input" compares container sizes (payload length +
// zeckbytes.HeaderSize) against len(b), not bare payload sizes. Ties (equal
// BE and LE container sizes, both strictly smaller than the input) prefer
// BE.
func CompressBest(b []byte) (Decision, error) {
	be, err := EncodeBE(b)
	if err != nil {
		return Decision{}, err
	}
	le, err := EncodeLE(b)
	if err != nil {
		return Decision{}, err
	}

	beContainer := zeckfile.CompressedSizeHint(len(be))
	leContainer := zeckfile.CompressedSizeHint(len(le))

	beWins := beContainer < len(b) && beContainer <= leContainer
	leWins := leContainer < len(b) && leContainer < beContainer

	switch {
	case beWins:
		return Decision{Kind: BigEndianBest, Payload: be, BESize: len(be), LESize: len(le)}, nil
	case leWins:
		return Decision{Kind: LittleEndianBest, Payload: le, BESize: len(be), LESize: len(le)}, nil
	default:
		if beContainer >= len(b) && leContainer >= len(b) {
			return Decision{Kind: Neither, BESize: len(be), LESize: len(le)}, nil
		}
		// Defensive: the boolean conditions above are exhaustive for every
		// comparison outcome, so this is unreachable.
		return Decision{}, zeckerr.New(zeckerr.CompressionFailed, "internal error: inconsistent best-of-two comparison")
	}
}
