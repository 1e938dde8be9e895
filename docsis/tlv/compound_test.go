/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"bytes"
	"testing"

	"github.com/gocsis/gocsis/docsis/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowAll marks every type as possibly containing sub-TLVs, isolating the
// structural heuristics under test.
type allowAll struct{}

func (allowAll) MayContainSubTLVs(uint8) bool { return true }

// denyAll marks no type as compound.
type denyAll struct{}

func (denyAll) MayContainSubTLVs(uint8) bool { return false }

func TestResolveSubTLVsSimple(t *testing.T) {
	rec := tlv.NewRecord(4, []byte{1, 1, 1})
	subs, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	require.True(t, ok)
	require.Len(t, subs, 1)
	assert.Equal(t, uint8(1), subs[0].Type)
	assert.Equal(t, []byte{1}, subs[0].Value)
}

func TestResolveSubTLVsNested(t *testing.T) {
	// 24 { 1 { ... } } shaped value: outer sub holding further plausible TLVs.
	inner := []byte{1, 2, 0x00, 0x01, 4, 1, 7}
	value := append([]byte{26, byte(len(inner))}, inner...)
	rec := tlv.NewRecord(24, value)

	subs, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	require.True(t, ok)
	require.Len(t, subs, 1)

	inners, ok := tlv.ResolveSubTLVs(subs[0], allowAll{})
	require.True(t, ok)
	assert.Len(t, inners, 2)
}

func TestResolveSubTLVsRejectsUnregisteredType(t *testing.T) {
	rec := tlv.NewRecord(9, []byte{1, 1, 1})
	_, ok := tlv.ResolveSubTLVs(rec, denyAll{})
	assert.False(t, ok)

	_, ok = tlv.ResolveSubTLVs(rec, nil)
	assert.False(t, ok)
}

// An all-0xFF value can look superficially decodable but is corruption, not
// nested records.
func TestResolveSubTLVsRejectsMostlyFF(t *testing.T) {
	rec := tlv.NewRecord(43, bytes.Repeat([]byte{0xFF}, 10))
	subs, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)
	assert.Empty(t, subs)
}

// The 0xFF saturation check applies to each sub-record's value individually:
// one corrupt sub poisons the whole resolution even when the other subs dilute
// the aggregate below half.
func TestResolveSubTLVsRejectsFFSaturatedSub(t *testing.T) {
	rec := tlv.NewRecord(43, []byte{1, 4, 0xFF, 0xFF, 0xFF, 0xFF, 2, 4, 0, 0, 0, 0})
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)

	// Under half 0xFF within each sub still resolves.
	rec = tlv.NewRecord(43, []byte{1, 4, 0xFF, 0x00, 0x00, 0x00, 2, 4, 0, 0, 0, 0})
	subs, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	require.True(t, ok)
	assert.Len(t, subs, 2)
}

func TestResolveSubTLVsRejectsEmptyValue(t *testing.T) {
	rec := tlv.NewRecord(4, nil)
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)
}

func TestResolveSubTLVsRejectsTooManyEntries(t *testing.T) {
	var value []byte
	for i := 0; i < 21; i++ {
		value = append(value, 1, 1, byte(i))
	}
	rec := tlv.NewRecord(43, value)
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)

	// 20 entries is still acceptable.
	rec = tlv.NewRecord(43, value[:20*3])
	subs, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.True(t, ok)
	assert.Len(t, subs, 20)
}

// Bytes swallowed as terminator or padding leave the value only partially
// covered by sub-records, which must reject the resolution.
func TestResolveSubTLVsRejectsPartialCoverage(t *testing.T) {
	rec := tlv.NewRecord(4, []byte{1, 1, 1, 0xFF})
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)

	rec = tlv.NewRecord(4, []byte{1, 1, 1, 0x00})
	_, ok = tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)
}

func TestResolveSubTLVsRejectsZeroLengthSub(t *testing.T) {
	rec := tlv.NewRecord(4, []byte{5, 0})
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)
}

func TestResolveSubTLVsRejectsUndecodableValue(t *testing.T) {
	rec := tlv.NewRecord(4, []byte{1, 9, 1})
	_, ok := tlv.ResolveSubTLVs(rec, allowAll{})
	assert.False(t, ok)
}
