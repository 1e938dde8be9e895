/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/gocsis/gocsis/docsis/registry"
	"github.com/gocsis/gocsis/docsis/tlv"
	"github.com/gocsis/gocsis/pipeline"
)

func printResult(w io.Writer, result pipeline.Result, reg *registry.Registry) {
	fmt.Fprintln(w, "==>", result.Name)
	if result.DuplicateOf != "" {
		fmt.Fprintln(w, "    identical to", result.DuplicateOf)
		return
	}
	if result.Err != nil {
		fmt.Fprintln(w, "    error:", result.Err)
		return
	}
	for _, warning := range result.Warnings {
		fmt.Fprintln(w, "    warning:", warning)
	}
	if result.MICErr != nil {
		fmt.Fprintln(w, "    MIC:", result.MICErr)
	}
	dumpSequence(w, result.Records, reg, 1)
}

// dumpSequence renders records with registry names, recursing into compound
// values that resolve as sub-TLVs.
func dumpSequence(w io.Writer, seq tlv.Sequence, reg *registry.Registry, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, rec := range seq {
		entry := reg.Lookup(rec.Type)
		if subs, ok := tlv.ResolveSubTLVs(rec, reg); ok {
			fmt.Fprintf(w, "%s%d (%s):\n", indent, rec.Type, entry.Name)
			dumpSubSequence(w, subs, reg, rec.Type, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s%d (%s) len=%d value=%s\n",
			indent, rec.Type, entry.Name, rec.Length(), formatValue(entry.Kind, rec.Value))
	}
}

// dumpSubSequence is dumpSequence one level down, where names come from the
// (parent, child) registry mapping.
func dumpSubSequence(w io.Writer, seq tlv.Sequence, reg *registry.Registry, parentType uint8, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, rec := range seq {
		if subs, ok := tlv.ResolveSubTLVs(rec, reg); ok {
			fmt.Fprintf(w, "%s%d (%s):\n", indent, rec.Type, reg.SubTLVName(parentType, rec.Type))
			dumpSubSequence(w, subs, reg, rec.Type, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s%d (%s) len=%d value=%s\n",
			indent, rec.Type, reg.SubTLVName(parentType, rec.Type), rec.Length(),
			formatValue(registry.KindBytes, rec.Value))
	}
}

// formatValue renders a value per its declared kind, falling back to hex
// whenever the size disagrees with the kind.
func formatValue(kind registry.ValueKind, value []byte) string {
	switch kind {
	case registry.KindUint8:
		if len(value) == 1 {
			return strconv.Itoa(int(value[0]))
		}
	case registry.KindUint16:
		if len(value) == 2 {
			return strconv.Itoa(int(binary.BigEndian.Uint16(value)))
		}
	case registry.KindUint32:
		if len(value) == 4 {
			return strconv.FormatUint(uint64(binary.BigEndian.Uint32(value)), 10)
		}
	case registry.KindIPv4:
		if len(value) == 4 {
			return net.IP(value).String()
		}
	case registry.KindMAC:
		if len(value) == 6 {
			return net.HardwareAddr(value).String()
		}
	case registry.KindString:
		return strconv.Quote(string(value))
	}
	return hex.EncodeToString(value)
}
