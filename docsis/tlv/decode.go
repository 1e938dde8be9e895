/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "fmt"

// Decode parses wire into a flat sequence of records, stopping at the
// terminator or at trailing padding. It favors availability over strictness:
// stray zero bytes and trailing bytes after the terminator degrade to a
// best-effort parsed prefix plus warnings rather than an error.
//
// The sentinels ErrTruncatedLength, ErrTruncatedRecord and ErrLengthOverflow,
// wrapped with offset context, are Decode's complete error set; every other
// byte pattern either parses or degrades to a warning. UnparsableError is the
// pre-flight classifier's, never Decode's.
//
// Decode never recurses into compound types; that is ResolveSubTLVs's job.
func Decode(wire []byte) (Sequence, []Warning, error) {
	seq := Sequence{}
	var warnings []Warning

	pos := 0
	for pos < len(wire) {
		rest := wire[pos:]
		switch {
		case rest[0] == TypeTerminator:
			trailing := rest[1:]
			if len(trailing) >= 2 && trailing[0] == 0x00 && trailing[1] == 0x00 {
				// Conventional 0xFF 0x00 0x00 end-of-data marker.
				return seq, warnings, nil
			}
			if len(trailing) > 0 {
				warnings = append(warnings, Warning(fmt.Sprintf(
					"%d trailing byte(s) after terminator at offset %d ignored", len(trailing), pos+1)))
			}
			return seq, warnings, nil
		case rest[0] == TypePad:
			if isAllZero(rest) {
				// Padding runs to the end of the file.
				return seq, warnings, nil
			}
			rec, size, ok := takePadRecord(rest)
			if !ok {
				warnings = append(warnings, Warning(fmt.Sprintf(
					"stray zero byte at offset %d skipped", pos)))
				pos++
				continue
			}
			seq = append(seq, rec)
			pos += size
		default:
			rec, size, err := takeRecord(rest)
			if err != nil {
				return nil, warnings, fmt.Errorf("record at offset %d: %w", pos, err)
			}
			seq = append(seq, rec)
			pos += size
		}
	}

	return seq, warnings, nil
}

// takeRecord consumes one ordinary record from the start of wire and returns
// it along with the total number of bytes consumed.
func takeRecord(wire []byte) (*Record, int, error) {
	recordType := wire[0]
	length, lengthSize, err := DecodeLength(wire[1:])
	if err != nil {
		return nil, 0, err
	}
	if 1+lengthSize+length > len(wire) {
		return nil, 0, fmt.Errorf("type %d declares %d value byte(s), %d available: %w",
			recordType, length, len(wire)-1-lengthSize, ErrTruncatedRecord)
	}
	return NewRecord(recordType, wire[1+lengthSize:1+lengthSize+length]), 1 + lengthSize + length, nil
}

// takePadRecord attempts to consume a type-0 record from wire, which must
// start with a zero byte. Type-0 records carry exactly one meaningful byte
// regardless of the declared length; the remainder of the declared value is
// consumed and discarded. Returns false if the declared length does not fit,
// in which case the caller treats the zero byte as stray padding.
func takePadRecord(wire []byte) (*Record, int, bool) {
	length, lengthSize, err := DecodeLength(wire[1:])
	if err != nil || length < 1 || 1+lengthSize+length > len(wire) {
		return nil, 0, false
	}
	return NewRecord(TypePad, wire[1+lengthSize:1+lengthSize+1]), 1 + lengthSize + length, true
}

func isAllZero(in []byte) bool {
	for _, b := range in {
		if b != 0x00 {
			return false
		}
	}
	return true
}
