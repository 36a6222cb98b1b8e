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

// Package zeck is the top-level, end-to-end codec: it composes
// lib/zeckbytes' best-of-two payload codec with lib/zeckfile's container
// format. CLI front-ends, file I/O and the like are external collaborators
// that build on this package; it has none of its own.
package zeck

import (
	"github.com/zeckendorf-codec/zeck/lib/zeckbytes"
	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
	"github.com/zeckendorf-codec/zeck/lib/zeckfile"
)

// Compress runs zeckbytes.CompressBest on b and wraps the winning payload
// in a zeck file container.
//
// It fails with zeckerr.CompressionFailed if neither endianness beats the
// original size, i.e. if (zeckfile.HeaderSize + payload size) >= len(b)
// under both endiannesses.
func Compress(b []byte) ([]byte, error) {
	decision, err := zeckbytes.CompressBest(b)
	if err != nil {
		return nil, err
	}
	switch decision.Kind {
	case zeckbytes.BigEndianBest:
		return zeckfile.Wrap(decision.Payload, len(b), zeckfile.BigEndian)
	case zeckbytes.LittleEndianBest:
		return zeckfile.Wrap(decision.Payload, len(b), zeckfile.LittleEndian)
	default:
		return nil, zeckerr.New(zeckerr.CompressionFailed,
			"neither endianness beats the original %d bytes (be=%d, le=%d, header=%d)",
			len(b), decision.BESize, decision.LESize, zeckfile.HeaderSize)
	}
}

// Decompress parses a zeck file container and decodes its payload back to
// the original bytes.
func Decompress(container []byte) ([]byte, error) {
	header, payload, err := zeckfile.Parse(container)
	if err != nil {
		return nil, err
	}
	size := int(header.OriginalSize)
	if header.Endianness == zeckfile.BigEndian {
		return zeckbytes.DecodeBE(payload, size)
	}
	return zeckbytes.DecodeLE(payload, size)
}
