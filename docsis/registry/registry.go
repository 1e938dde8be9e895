/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package registry supplies symbolic names, declared value kinds and the
// "may contain sub-TLVs" flag for DOCSIS TLV types. Lookups never fail:
// unregistered types answer as unknown opaque bytes.
package registry

import "fmt"

// ValueKind is the declared interpretation of a TLV value. It only drives
// presentation; the codec itself treats every value as opaque bytes.
type ValueKind int

// Value kinds.
const (
	KindBytes ValueKind = iota
	KindUint8
	KindUint16
	KindUint32
	KindIPv4
	KindMAC
	KindString
	KindCompound
)

// Entry describes one registered TLV type.
type Entry struct {
	Name              string
	Kind              ValueKind
	MayContainSubTLVs bool
}

// Registry maps TLV types to entries and (parent, child) pairs to sub-TLV
// names. A Registry is immutable after construction aside from overrides
// loaded before use; concurrent readers need no locking.
type Registry struct {
	entries  map[uint8]Entry
	subNames map[uint16]string
}

// New creates a registry pre-populated with the built-in DOCSIS table.
func New() *Registry {
	r := &Registry{
		entries:  make(map[uint8]Entry, len(builtinEntries)),
		subNames: make(map[uint16]string, len(builtinSubNames)),
	}
	for t, entry := range builtinEntries {
		r.entries[t] = entry
	}
	for key, name := range builtinSubNames {
		r.subNames[key] = name
	}
	return r
}

// Lookup returns the entry for the given type. Unregistered types yield an
// unknown entry, never an error.
func (r *Registry) Lookup(recordType uint8) Entry {
	if entry, ok := r.entries[recordType]; ok {
		return entry
	}
	return Entry{Name: fmt.Sprintf("Unknown-%d", recordType), Kind: KindBytes}
}

// SubTLVName returns the name of a child type within the given parent type.
// The same type id can mean different things at top level and under different
// parents. Falls back to the top-level name when no pair is registered.
func (r *Registry) SubTLVName(parentType, childType uint8) string {
	if name, ok := r.subNames[subKey(parentType, childType)]; ok {
		return name
	}
	return r.Lookup(childType).Name
}

// MayContainSubTLVs reports whether the type is registered as possibly
// holding nested sub-TLVs. It implements tlv.SubTLVPolicy.
func (r *Registry) MayContainSubTLVs(recordType uint8) bool {
	return r.entries[recordType].MayContainSubTLVs
}

func subKey(parentType, childType uint8) uint16 {
	return uint16(parentType)<<8 | uint16(childType)
}
