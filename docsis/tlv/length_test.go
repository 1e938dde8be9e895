/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"testing"

	"github.com/gocsis/gocsis/docsis/tlv"
	"github.com/stretchr/testify/assert"
)

func TestDecodeLengthSingleByte(t *testing.T) {
	for n := 0; n <= 0x7F; n++ {
		length, consumed, err := tlv.DecodeLength([]byte{byte(n), 0xAA})
		assert.NoError(t, err)
		assert.Equal(t, n, length)
		assert.Equal(t, 1, consumed)
	}
}

func TestDecodeLengthExtendedForms(t *testing.T) {
	for n := 0; n <= 0xFF; n++ {
		length, consumed, err := tlv.DecodeLength([]byte{0x81, byte(n)})
		assert.NoError(t, err)
		assert.Equal(t, n, length)
		assert.Equal(t, 2, consumed)
	}

	length, consumed, err := tlv.DecodeLength([]byte{0x82, 0x01, 0x2C})
	assert.NoError(t, err)
	assert.Equal(t, 300, length)
	assert.Equal(t, 3, consumed)

	length, consumed, err = tlv.DecodeLength([]byte{0x82, 0xAB, 0xCD})
	assert.NoError(t, err)
	assert.Equal(t, 256*0xAB+0xCD, length)
	assert.Equal(t, 3, consumed)

	length, consumed, err = tlv.DecodeLength([]byte{0x84, 0x00, 0x01, 0x00, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, 65536, length)
	assert.Equal(t, 5, consumed)
}

// Bytes with the high bit set are plain lengths unless they are exactly 0x81,
// 0x82 or 0x84. An old parser treated all of 0x80-0xFF as extended-length
// markers and silently misread real files; this pins the correct behavior.
func TestDecodeLengthHighBitPlainBytes(t *testing.T) {
	for n := 0x80; n <= 0xFF; n++ {
		if n == 0x81 || n == 0x82 || n == 0x84 {
			continue
		}
		length, consumed, err := tlv.DecodeLength([]byte{byte(n)})
		assert.NoError(t, err, "byte 0x%02X", n)
		assert.Equal(t, n, length, "byte 0x%02X", n)
		assert.Equal(t, 1, consumed, "byte 0x%02X", n)
	}
}

func TestDecodeLengthTruncated(t *testing.T) {
	for _, in := range [][]byte{
		{},
		{0x81},
		{0x82},
		{0x82, 0x01},
		{0x84},
		{0x84, 0x00, 0x00, 0x00},
	} {
		_, _, err := tlv.DecodeLength(in)
		assert.ErrorIs(t, err, tlv.ErrTruncatedLength, "input %v", in)
	}
}

func TestDecodeLengthOverflow(t *testing.T) {
	// A 0x84 form above MaxInt32 is undecodable, not truncated.
	_, _, err := tlv.DecodeLength([]byte{0x84, 0xFF, 0xFF, 0xFF, 0xFF})
	assert.ErrorIs(t, err, tlv.ErrLengthOverflow)
	assert.NotErrorIs(t, err, tlv.ErrTruncatedLength)
}

func TestEncodeLengthMinimalForms(t *testing.T) {
	assert.Equal(t, []byte{0x00}, tlv.EncodeLength(0))
	assert.Equal(t, []byte{0x7F}, tlv.EncodeLength(127))
	assert.Equal(t, []byte{0xC8}, tlv.EncodeLength(200))
	assert.Equal(t, []byte{0xFF}, tlv.EncodeLength(255))
	assert.Equal(t, []byte{0x82, 0x01, 0x00}, tlv.EncodeLength(256))
	assert.Equal(t, []byte{0x82, 0xFF, 0xFF}, tlv.EncodeLength(65535))
	assert.Equal(t, []byte{0x84, 0x00, 0x01, 0x00, 0x00}, tlv.EncodeLength(65536))
}

// The decoder accepts extended forms that the encoder would never emit; a
// length of 5 in 0x81 form still decodes, and re-encodes to a single byte.
func TestLengthNonMinimalFormAccepted(t *testing.T) {
	length, consumed, err := tlv.DecodeLength([]byte{0x81, 0x05})
	assert.NoError(t, err)
	assert.Equal(t, 5, length)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, []byte{0x05}, tlv.EncodeLength(length))
}
