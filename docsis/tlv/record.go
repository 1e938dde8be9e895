/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Well-known marker bytes in a configuration file.
const (
	// TypePad is the padding byte filling a file out to a 4-byte boundary.
	TypePad uint8 = 0x00
	// TypeTerminator marks the end of data.
	TypeTerminator uint8 = 0xFF
)

// Record is a single flat type-length-value record. The length is implicit in
// the value: len(Value) is always the record's length, so the two can never
// disagree.
type Record struct {
	Type  uint8
	Value []byte
}

// NewRecord creates a record holding a copy of value.
func NewRecord(recordType uint8, value []byte) *Record {
	r := &Record{Type: recordType}
	r.Value = make([]byte, len(value))
	copy(r.Value, value)
	return r
}

// Length returns the length of the record's value.
func (r *Record) Length() int {
	return len(r.Value)
}

// DeepCopy creates a deep copy of the record.
func (r *Record) DeepCopy() *Record {
	return NewRecord(r.Type, r.Value)
}

// Sequence is an ordered list of records. Order is semantically significant:
// it determines both the encoded bytes and the integrity digest preimages,
// and is preserved by every operation in this package.
type Sequence []*Record

// DeepCopy creates a deep copy of the sequence.
func (s Sequence) DeepCopy() Sequence {
	out := make(Sequence, 0, len(s))
	for _, rec := range s {
		out = append(out, rec.DeepCopy())
	}
	return out
}

// Strip returns a copy of the sequence with all records of the given types
// removed. The remaining records keep their relative order and are shared
// with the original sequence.
func (s Sequence) Strip(types ...uint8) Sequence {
	out := make(Sequence, 0, len(s))
	for _, rec := range s {
		drop := false
		for _, t := range types {
			if rec.Type == t {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, rec)
		}
	}
	return out
}

// FindLast returns the last record of the given type, how many records of
// that type exist, or nil if there are none. Later occurrences win on
// duplicates; callers flag the duplicate rather than failing.
func (s Sequence) FindLast(recordType uint8) (*Record, int) {
	var found *Record
	count := 0
	for _, rec := range s {
		if rec.Type == recordType {
			found = rec
			count++
		}
	}
	return found, count
}
