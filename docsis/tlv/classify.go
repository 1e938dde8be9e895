/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "fmt"

// maxPlausibleLength rejects a first record claiming an absurd length before
// any real decoding happens.
const maxPlausibleLength = 1000000

// LooksLikeConfig is an optional pre-flight check that rejects input which is
// obviously not a DOCSIS configuration file. It is a cheap classifier for
// callers handling mixed input, not a correctness requirement: Decode handles
// anything LooksLikeConfig accepts, and plenty that it rejects.
func LooksLikeConfig(wire []byte) error {
	if len(wire) < 3 {
		return NewUnparsableError("input shorter than 3 bytes", wire)
	}

	// 0xFE-led signatures belong to other provisioning formats.
	if wire[0] == 0xFE && wire[1] == 0x01 && wire[2] == 0x01 {
		return NewUnparsableError("0xFE 0x01 0x01 signature of a non-DOCSIS format", wire)
	}
	if wire[0] == 0xFE && wire[1] < 10 {
		return NewUnparsableError("0xFE-led short record suggests a non-DOCSIS format", wire)
	}

	length, lengthSize, err := DecodeLength(wire[1:])
	if err != nil {
		return NewUnparsableError("first record has no decodable length", wire)
	}
	if length >= maxPlausibleLength {
		return NewUnparsableError(fmt.Sprintf("first record claims unreasonable length %d", length), wire)
	}
	if 1+lengthSize+length > len(wire) {
		return NewUnparsableError("first record does not fit in input", wire)
	}

	return nil
}
