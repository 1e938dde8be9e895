/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"bytes"
	"fmt"
	"math"
)

// Encode serializes the sequence in order, emitting per record the type byte,
// the canonical minimal length encoding, and the literal value bytes. No
// reordering, no padding insertion, no terminator.
func Encode(seq Sequence) ([]byte, error) {
	return encode(seq, false)
}

// EncodeWithTerminator is Encode followed by a single 0xFF terminator byte.
func EncodeWithTerminator(seq Sequence) ([]byte, error) {
	return encode(seq, true)
}

func encode(seq Sequence, terminate bool) ([]byte, error) {
	var buf bytes.Buffer

	size := 0
	for _, rec := range seq {
		if uint64(len(rec.Value)) > math.MaxUint32 {
			return nil, fmt.Errorf("record type %d with %d value bytes: %w",
				rec.Type, len(rec.Value), ErrValueTooLarge)
		}
		size += 1 + len(EncodeLength(len(rec.Value))) + len(rec.Value)
	}
	if terminate {
		size++
	}
	buf.Grow(size)

	for _, rec := range seq {
		buf.WriteByte(rec.Type)
		buf.Write(EncodeLength(len(rec.Value)))
		buf.Write(rec.Value)
	}
	if terminate {
		buf.WriteByte(TypeTerminator)
	}

	return buf.Bytes(), nil
}
