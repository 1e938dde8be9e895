/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mic

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrDependencyFailed reports that the CMTS MIC could not be computed because
// computing the CM MIC it depends on failed. It lets callers tell a digest
// dependency failure apart from a record failure.
var ErrDependencyFailed = errors.New("dependent digest computation failed")

// MissingError reports that the record holding a required digest is absent.
type MissingError struct {
	Type uint8
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("no record of type %d (%s) present", e.Type, digestName(e.Type))
}

// InvalidLengthError reports a digest record whose value is not 16 bytes.
type InvalidLengthError struct {
	Type   uint8
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s record holds %d bytes, expected %d", digestName(e.Type), e.Length, DigestSize)
}

// MismatchError reports a stored digest that does not match the recomputed
// one. Both values are carried so a failure can be diagnosed without
// re-running with extra logging.
type MismatchError struct {
	Type     uint8
	Stored   []byte
	Computed []byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: stored %s, computed %s", digestName(e.Type),
		hex.EncodeToString(e.Stored), hex.EncodeToString(e.Computed))
}

func digestName(recordType uint8) string {
	switch recordType {
	case TypeCMMIC:
		return "CM MIC"
	case TypeCMTSMIC:
		return "CMTS MIC"
	default:
		return "digest"
	}
}
