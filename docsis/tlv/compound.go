/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// SubTLVPolicy answers whether a record type is registered as possibly
// containing sub-TLVs. The type registry implements this.
type SubTLVPolicy interface {
	MayContainSubTLVs(recordType uint8) bool
}

// Structural plausibility bounds for sub-TLV resolution. A value is only
// committed as nested records when it passes every check; anything else stays
// opaque, since misreading opaque binary as sub-TLVs silently corrupts output.
const (
	maxSubTLVCount  = 20
	maxSubTLVLength = 1000
	maxSubTLVValue  = 255
)

// ResolveSubTLVs tentatively re-decodes the record's value as nested records,
// committing only if the record's type may contain sub-TLVs and the result is
// structurally plausible. It never fails outward: any rejected heuristic
// simply yields (nil, false) and callers fall back to scalar formatting.
func ResolveSubTLVs(rec *Record, policy SubTLVPolicy) (Sequence, bool) {
	if policy == nil || !policy.MayContainSubTLVs(rec.Type) {
		return nil, false
	}

	subs, _, err := Decode(rec.Value)
	if err != nil {
		return nil, false
	}
	if len(subs) == 0 || len(subs) > maxSubTLVCount {
		return nil, false
	}

	// Every byte of the value must be covered by a sub-record, with no gap or
	// overlap. Bytes swallowed by padding, terminators or type-0 clamping
	// leave a shortfall here and reject the resolution.
	covered := 0
	for _, sub := range subs {
		length := len(sub.Value)
		if length > maxSubTLVValue || length > maxSubTLVLength {
			return nil, false
		}
		if length == 0 && sub.Type != TypePad && sub.Type != TypeTerminator {
			return nil, false
		}
		if mostlyFF(sub.Value) {
			return nil, false
		}
		covered += 1 + lengthFieldSize(length) + length
	}
	if covered != len(rec.Value) {
		return nil, false
	}

	return subs, true
}

// mostlyFF reports whether more than half of a sub-record's value is 0xFF
// bytes, which in practice means corrupt or foreign data rather than a nested
// record, however well-formed the framing around it looks.
func mostlyFF(value []byte) bool {
	count := 0
	for _, b := range value {
		if b == 0xFF {
			count++
		}
	}
	return count*2 > len(value)
}
