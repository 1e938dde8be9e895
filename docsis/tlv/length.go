/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"
)

// DecodeLength decodes the variable-length size field at the start of in,
// returning the length value and the number of bytes consumed.
//
// Only 0x81, 0x82 and 0x84 introduce an extended form. Every other byte,
// including 0x80, 0x83 and 0x85-0xFF, is an ordinary one-byte length;
// treating those as extended-length markers misreads files produced by real
// provisioning systems.
func DecodeLength(in []byte) (int, int, error) {
	if len(in) == 0 {
		return 0, 0, ErrTruncatedLength
	}

	switch in[0] {
	case 0x81:
		if len(in) < 2 {
			return 0, 0, ErrTruncatedLength
		}
		return int(in[1]), 2, nil
	case 0x82:
		if len(in) < 3 {
			return 0, 0, ErrTruncatedLength
		}
		return int(binary.BigEndian.Uint16(in[1:3])), 3, nil
	case 0x84:
		if len(in) < 5 {
			return 0, 0, ErrTruncatedLength
		}
		val := binary.BigEndian.Uint32(in[1:5])
		if val > math.MaxInt32 {
			return 0, 0, ErrLengthOverflow
		}
		return int(val), 5, nil
	default:
		return int(in[0]), 1, nil
	}
}

// EncodeLength encodes a length value in its canonical minimal form: a single
// byte for 0-255, otherwise the smallest sufficient extended form.
func EncodeLength(length int) []byte {
	if length <= 0xFF {
		return []byte{byte(length)}
	} else if length <= 0xFFFF {
		out := make([]byte, 3)
		out[0] = 0x82
		binary.BigEndian.PutUint16(out[1:], uint16(length))
		return out
	}
	out := make([]byte, 5)
	out[0] = 0x84
	binary.BigEndian.PutUint32(out[1:], uint32(length))
	return out
}

// lengthFieldSize returns the nominal size of the length field for a value of
// the given length. This is a validation metric used by the sub-TLV resolver
// and is independent of what EncodeLength actually emits.
func lengthFieldSize(length int) int {
	if length <= 127 {
		return 1
	} else if length <= 255 {
		return 2
	} else if length <= 65535 {
		return 3
	}
	return 5
}
