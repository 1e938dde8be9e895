/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gocsis/gocsis/utils/comparison"
)

// TLV errors.
var (
	ErrTruncatedLength = errors.New("length field exceeds buffer size")
	ErrTruncatedRecord = errors.New("record value exceeds buffer size")
	ErrLengthOverflow  = errors.New("length value too large to represent")
	ErrValueTooLarge   = errors.New("value too large to encode")
)

// maxErrorPrefix bounds how many input bytes an UnparsableError carries.
const maxErrorPrefix = 32

// UnparsableError reports input that cannot be interpreted as a TLV stream.
// It carries a bounded prefix of the offending input for diagnostics.
type UnparsableError struct {
	Reason string
	Prefix []byte
}

// NewUnparsableError creates an UnparsableError, retaining at most the first
// 32 bytes of in.
func NewUnparsableError(reason string, in []byte) *UnparsableError {
	prefix := make([]byte, comparison.Min(len(in), maxErrorPrefix))
	copy(prefix, in)
	return &UnparsableError{Reason: reason, Prefix: prefix}
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("unparsable input: %s (prefix %s)", e.Reason, hex.EncodeToString(e.Prefix))
}

// Warning is a non-fatal diagnostic produced while decoding or validating.
// Warnings are returned to the caller rather than logged from within the
// codec, which stays free of side effects.
type Warning string
