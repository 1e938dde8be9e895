/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package mic computes and validates the two chained HMAC-MD5 message
// integrity checks carried in a DOCSIS configuration file: the CM MIC
// (TLV type 6) and the CMTS MIC (TLV type 7). The CMTS MIC preimage contains
// the CM MIC's value, so the two are computed in that order.
package mic

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/subtle"
	"fmt"

	"github.com/gocsis/gocsis/docsis/tlv"
)

// TLV types of the two integrity records.
const (
	TypeCMMIC   uint8 = 6
	TypeCMTSMIC uint8 = 7
)

// DigestSize is the size of an HMAC-MD5 digest.
const DigestSize = md5.Size

// ComputeCMMIC computes the CM MIC over the sequence with the caller-supplied
// shared secret. Any existing CM MIC or CMTS MIC records are excluded from
// the preimage; a zero-filled CM MIC placeholder record stands in for the
// digest being computed.
func ComputeCMMIC(seq tlv.Sequence, secret []byte) ([]byte, error) {
	stripped := seq.Strip(TypeCMMIC, TypeCMTSMIC)
	wire, err := tlv.Encode(stripped)
	if err != nil {
		return nil, err
	}
	preimage := append(wire, placeholderRecord(TypeCMMIC)...)
	return digest(secret, preimage), nil
}

// ComputeCMTSMIC computes the CMTS MIC over the sequence. If the sequence
// carries no CM MIC record, the CM MIC is computed first and its real value
// becomes part of the preimage; an existing CM MIC record is used as-is. A
// zero-filled CMTS MIC placeholder record stands in for the digest being
// computed.
func ComputeCMTSMIC(seq tlv.Sequence, secret []byte) ([]byte, error) {
	work := seq.Strip(TypeCMTSMIC)

	if cmRecord, _ := work.FindLast(TypeCMMIC); cmRecord == nil {
		cmDigest, err := ComputeCMMIC(work, secret)
		if err != nil {
			return nil, fmt.Errorf("CM MIC for CMTS MIC preimage: %v: %w", err, ErrDependencyFailed)
		}
		work = append(work, tlv.NewRecord(TypeCMMIC, cmDigest))
	}

	wire, err := tlv.Encode(work)
	if err != nil {
		return nil, err
	}
	preimage := append(wire, placeholderRecord(TypeCMTSMIC)...)
	return digest(secret, preimage), nil
}

// ValidateCMMIC recomputes the CM MIC and compares it against the stored
// record in constant time. On duplicate CM MIC records the last occurrence is
// authoritative and a warning is returned.
func ValidateCMMIC(seq tlv.Sequence, secret []byte) ([]tlv.Warning, error) {
	stored, warnings, err := findDigestRecord(seq, TypeCMMIC)
	if err != nil {
		return warnings, err
	}

	computed, err := ComputeCMMIC(seq, secret)
	if err != nil {
		return warnings, err
	}
	if subtle.ConstantTimeCompare(stored.Value, computed) != 1 {
		return warnings, &MismatchError{Type: TypeCMMIC, Stored: stored.Value, Computed: computed}
	}
	return warnings, nil
}

// ValidateCMTSMIC recomputes the CMTS MIC and compares it against the stored
// record in constant time. A sequence without a CM MIC record fails
// immediately, before any HMAC computation, since the CMTS MIC preimage is
// undefined without it.
func ValidateCMTSMIC(seq tlv.Sequence, secret []byte) ([]tlv.Warning, error) {
	if cmRecord, _ := seq.FindLast(TypeCMMIC); cmRecord == nil {
		return nil, &MissingError{Type: TypeCMMIC}
	}

	stored, warnings, err := findDigestRecord(seq, TypeCMTSMIC)
	if err != nil {
		return warnings, err
	}

	computed, err := ComputeCMTSMIC(seq, secret)
	if err != nil {
		return warnings, err
	}
	if subtle.ConstantTimeCompare(stored.Value, computed) != 1 {
		return warnings, &MismatchError{Type: TypeCMTSMIC, Stored: stored.Value, Computed: computed}
	}
	return warnings, nil
}

// findDigestRecord locates the digest record of the given type, preferring
// the last occurrence and warning on duplicates.
func findDigestRecord(seq tlv.Sequence, recordType uint8) (*tlv.Record, []tlv.Warning, error) {
	var warnings []tlv.Warning

	rec, count := seq.FindLast(recordType)
	if rec == nil {
		return nil, warnings, &MissingError{Type: recordType}
	}
	if count > 1 {
		warnings = append(warnings, tlv.Warning(fmt.Sprintf(
			"%d records of type %d present, validating the last", count, recordType)))
	}
	if len(rec.Value) != DigestSize {
		return nil, warnings, &InvalidLengthError{Type: recordType, Length: len(rec.Value)}
	}
	return rec, warnings, nil
}

// placeholderRecord returns the encoded zero-filled stand-in record appended
// to a digest preimage.
func placeholderRecord(recordType uint8) []byte {
	out := make([]byte, 2+DigestSize)
	out[0] = recordType
	out[1] = DigestSize
	return out
}

func digest(secret, preimage []byte) []byte {
	mac := hmac.New(md5.New, secret)
	mac.Write(preimage)
	return mac.Sum(nil)
}
