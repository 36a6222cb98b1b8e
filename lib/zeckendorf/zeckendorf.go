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

// Package zeckendorf converts between an arbitrary-precision non-negative
// integer (bignat.Nat), its Zeckendorf Index List (ZIL) representation, and
// the self-delimiting "use/skip" bit stream that the ZIL packs into.
//
// A Fibonacci Index (FI) names a Fibonacci number with F(0)=0, F(1)=F(2)=1,
// F(3)=2, .... An Effective Fibonacci Index (EFI) is FI-2; it enumerates
// only the Fibonacci values that ever appear in a Zeckendorf decomposition
// (1, 2, 3, 5, 8, ...), skipping the duplicate F(1)=F(2) and the trivial
// F(0)=0.
package zeckendorf

import (
	"sort"

	"github.com/zeckendorf-codec/zeck/lib/bignat"
	"github.com/zeckendorf-codec/zeck/lib/fib"
	"github.com/zeckendorf-codec/zeck/lib/zeckerr"
)

// ZIL is a Zeckendorf Index List: an ordered list of distinct Fibonacci
// Indices, all >= 2, no two adjacent FIs differing by 1. Canonical form is
// descending order. The empty ZIL represents 0.
type ZIL []uint

// EZIL is the same list with each FI replaced by its EFI. It is fully
// interchangeable with a ZIL via ZLToEZL/EZLToZL.
type EZIL []uint

// FIToEFI converts a Fibonacci Index to an Effective Fibonacci Index. It
// fails with zeckerr.OutOfRange if fi < 2.
func FIToEFI(fi uint) (uint, error) {
	if fi < 2 {
		return 0, zeckerr.New(zeckerr.OutOfRange, "FI %d is below the minimum of 2", fi)
	}
	return fi - 2, nil
}

// EFIToFI converts an Effective Fibonacci Index back to a Fibonacci Index.
func EFIToFI(efi uint) uint {
	return efi + 2
}

// ZLToEZL converts a ZIL to an EZIL, preserving order.
func ZLToEZL(zil ZIL) (EZIL, error) {
	out := make(EZIL, len(zil))
	for i, fi := range zil {
		efi, err := FIToEFI(fi)
		if err != nil {
			return nil, err
		}
		out[i] = efi
	}
	return out, nil
}

// EZLToZL converts an EZIL back to a ZIL, preserving order.
func EZLToZL(ezil EZIL) ZIL {
	out := make(ZIL, len(ezil))
	for i, efi := range ezil {
		out[i] = EFIToFI(efi)
	}
	return out
}

// Phi is the golden ratio (1+sqrt(5))/2, the limiting ratio of consecutive
// Fibonacci numbers. PhiSquared is Phi*Phi == Phi+1. Both are exposed for
// callers estimating Fibonacci index magnitudes, e.g. sizing a cache ahead
// of time from an expected input length.
const (
	Phi        = 1.618033988749894848204586834365638117720309179805762862135
	PhiSquared = Phi * Phi
)

// MemoizedEffectiveFibonacci returns F(EFIToFI(efi)), using the memoized
// fast-doubling algorithm, which suits sparse index patterns such as
// AllOnesZeckendorfToBigNat's every-other-EFI walk. Decompose and Recompose
// do not use it; they use the dense fib.SlowIterativeMemo cache.
func MemoizedEffectiveFibonacci(efi uint) bignat.Nat {
	return fib.FastDoublingMemo(EFIToFI(efi))
}

// Decompose converts a bignat.Nat to its canonical ZIL. N == 0 maps to the
// empty ZIL.
//
// Decomposition is the textbook greedy algorithm: repeatedly subtract the
// largest Fibonacci number not exceeding what remains. Greedy selection
// guarantees the Zeckendorf non-adjacency property (no two consecutive
// Fibonacci numbers both selected) and termination.
func Decompose(n bignat.Nat) ZIL {
	if n.IsZero() {
		return nil
	}
	var zil ZIL
	remaining := n
	cursor := uint(2) // shared search cursor, carried across iterations below
	for !remaining.IsZero() {
		k := largestFIAtMost(remaining, &cursor)
		zil = append(zil, k)
		remaining = remaining.Sub(fib.SlowIterativeMemo(k))
	}
	return zil
}

// largestFIAtMost returns the largest FI k such that F(k) <= n, for n >= 1.
// *cursor is the caller's running estimate of k, seeded at 2 and left at k
// afterward: since each successive term in a decomposition is at least two
// less than the one before it, resuming from the previous k and walking down
// (rather than re-ascending the Fibonacci sequence from 2 every call) turns
// what would otherwise be an O(k) rescan per term - O(k^2) for a whole dense
// decomposition - into a single walk whose total length across every call is
// bounded by the first k.
func largestFIAtMost(n bignat.Nat, cursor *uint) uint {
	j := *cursor
	if j < 2 {
		j = 2
	}
	if fib.SlowIterativeMemo(j).Cmp(n) <= 0 {
		for fib.SlowIterativeMemo(j+1).Cmp(n) <= 0 {
			j++
		}
	} else {
		for j > 2 && fib.SlowIterativeMemo(j).Cmp(n) > 0 {
			j--
		}
	}
	*cursor = j
	return j
}

// Recompose sums F(i) over the ZIL's entries, in any order, returning the
// represented bignat.Nat.
func Recompose(zil ZIL) bignat.Nat {
	sum := bignat.Zero
	for _, fi := range zil {
		sum = sum.Add(fib.SlowIterativeMemo(fi))
	}
	return sum
}

// AllOnesZeckendorfToBigNat constructs the bignat.Nat whose canonical ZIL
// consists of the k EFIs {0, 2, 4, ..., 2*(k-1)} - i.e. every other EFI
// starting at 0, the maximally dense non-adjacent selection of k terms.
func AllOnesZeckendorfToBigNat(k uint) bignat.Nat {
	sum := bignat.Zero
	for i := uint(0); i < k; i++ {
		sum = sum.Add(MemoizedEffectiveFibonacci(2 * i))
	}
	return sum
}

// EncodeBits encodes a ZIL as its "Fibonacci code" bit stream: one bit per
// EFI from 0 up to the maximum EFI present (1 if that EFI is in the ZIL,
// else 0), followed by a terminating 1 bit. The empty ZIL encodes to an
// empty bit stream.
//
// bits[i] corresponds to EFI i; bits[maxEFI+1] (the last element) is always
// the terminator.
func EncodeBits(zil ZIL) ([]bool, error) {
	if len(zil) == 0 {
		return nil, nil
	}
	ezil, err := ZLToEZL(zil)
	if err != nil {
		return nil, err
	}
	present := make(map[uint]bool, len(ezil))
	maxEFI := uint(0)
	for _, efi := range ezil {
		present[efi] = true
		if efi > maxEFI {
			maxEFI = efi
		}
	}
	bits := make([]bool, maxEFI+2)
	for i := uint(0); i <= maxEFI; i++ {
		bits[i] = present[i]
	}
	bits[maxEFI+1] = true // terminator
	return bits, nil
}

// DecodeBits decodes a Fibonacci-code bit stream back to a ZIL.
//
// The first pair of consecutive 1-bits always ends the codeword, its second
// bit being the terminator. DecodeBits fails with zeckerr.TruncatedCode if
// the stream ends without such a "11" terminator, and with
// zeckerr.MalformedCode if any 1-bit follows the terminator (only zero
// padding may follow it).
func DecodeBits(bits []bool) (ZIL, error) {
	if len(bits) == 0 {
		return nil, nil
	}
	var ezil EZIL
	prevOne := false
	terminatedAt := -1
	for i, b := range bits {
		if b {
			if prevOne {
				terminatedAt = i
				break
			}
			ezil = append(ezil, uint(i))
			prevOne = true
		} else {
			prevOne = false
		}
	}
	if terminatedAt < 0 {
		return nil, zeckerr.New(zeckerr.TruncatedCode, "bit stream ended without a terminator")
	}
	for i := terminatedAt + 1; i < len(bits); i++ {
		if bits[i] {
			return nil, zeckerr.New(zeckerr.MalformedCode,
				"non-zero bit at position %d after the terminator at %d", i, terminatedAt)
		}
	}
	zil := EZLToZL(ezil)
	sort.Sort(sort.Reverse(uintSlice(zil)))
	return zil, nil
}

type uintSlice []uint

func (s uintSlice) Len() int           { return len(s) }
func (s uintSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s uintSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// PackBits packs a bit stream into bytes, LSB-first within each byte, bytes
// emitted in order (byte 0 carries bits 0..7, byte 1 carries bits 8..15,
// ...). The final byte is zero-padded in its high bits.
func PackBits(bits []bool) []byte {
	if len(bits) == 0 {
		return nil
	}
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// UnpackBits unpacks packed bytes into exactly nbits bits, LSB-first within
// each byte. nbits must be <= 8*len(packed).
func UnpackBits(packed []byte, nbits int) []bool {
	bits := make([]bool, nbits)
	for i := 0; i < nbits; i++ {
		bits[i] = (packed[i/8]>>uint(i%8))&1 == 1
	}
	return bits
}
