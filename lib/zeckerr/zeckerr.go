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

// Package zeckerr defines the closed error taxonomy shared by the zeck
// codec packages (bignat, zeckendorf, zeckbytes, zeckfile, zeck).
package zeckerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a zeck codec error. It is a closed set: every error the
// codec returns carries exactly one of these.
type Kind int

const (
	// HeaderTooShort means a serialized container was shorter than the
	// fixed 10-byte header.
	HeaderTooShort Kind = iota
	// UnsupportedVersion means header.version was not a version this
	// package knows how to parse.
	UnsupportedVersion
	// ReservedFlagsSet means one of the reserved flag bits was 1.
	ReservedFlagsSet
	// DataSizeTooLarge means an input length did not fit in the field
	// meant to carry it (a uint64, or a caller-supplied byte count).
	DataSizeTooLarge
	// CompressionFailed means best-of-two compression could not produce a
	// container smaller than the original input.
	CompressionFailed
	// DecompressedTooLarge means a recomposed integer did not fit in the
	// caller-requested number of bytes.
	DecompressedTooLarge
	// TruncatedCode means a bit stream ended before a terminator was
	// found.
	TruncatedCode
	// MalformedCode means two consecutive 1-bits appeared before the
	// formal terminator context, violating Zeckendorf non-adjacency.
	MalformedCode
	// OutOfRange means an EFI/FI conversion was given an FI below the
	// valid minimum (2).
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case HeaderTooShort:
		return "header too short"
	case UnsupportedVersion:
		return "unsupported version"
	case ReservedFlagsSet:
		return "reserved flags set"
	case DataSizeTooLarge:
		return "data size too large"
	case CompressionFailed:
		return "compression failed"
	case DecompressedTooLarge:
		return "decompressed too large"
	case TruncatedCode:
		return "truncated code"
	case MalformedCode:
		return "malformed code"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown zeck error"
	}
}

// Error is the concrete error type returned by the zeck codec packages. It
// pairs a closed Kind with an optional human-readable cause, so that callers
// can either switch on Kind or read a normal error message.
type Error struct {
	Kind  Kind
	cause error
}

// New returns an *Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap returns an *Error of the given Kind wrapping cause. Wrap returns nil
// if cause is nil, mirroring github.com/pkg/errors.Wrap.
func Wrap(cause error, kind Kind, message string) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.Wrap(cause, message)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("zeck: %s: %v", e.Kind, e.cause)
}

// Unwrap exposes the wrapped cause so that errors.Is/errors.As keep working
// across this package's boundary.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
