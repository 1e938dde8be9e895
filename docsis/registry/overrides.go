/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package registry

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// overridesFile is the TOML shape of a registry override file:
//
//	[[tlv]]
//	type = 201
//	name = "OperatorTelemetry"
//	kind = "compound"
//
//	[[subtlv]]
//	parent = 201
//	type = 1
//	name = "CollectorAddress"
type overridesFile struct {
	TLV    []tlvOverride    `toml:"tlv"`
	SubTLV []subTLVOverride `toml:"subtlv"`
}

type tlvOverride struct {
	Type int64  `toml:"type"`
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

type subTLVOverride struct {
	Parent int64  `toml:"parent"`
	Type   int64  `toml:"type"`
	Name   string `toml:"name"`
}

var kindNames = map[string]ValueKind{
	"bytes":    KindBytes,
	"uint8":    KindUint8,
	"uint16":   KindUint16,
	"uint32":   KindUint32,
	"ipv4":     KindIPv4,
	"mac":      KindMAC,
	"string":   KindString,
	"compound": KindCompound,
}

// LoadOverrides merges operator-defined type names from a TOML file into the
// registry, replacing any built-in entry of the same type. Intended to be
// called once, before the registry is shared.
func (r *Registry) LoadOverrides(file string) error {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return errors.Wrap(err, "load registry overrides")
	}
	return r.applyOverrides(tree)
}

// ParseOverrides is LoadOverrides for an in-memory TOML document.
func (r *Registry) ParseOverrides(doc []byte) error {
	tree, err := toml.LoadBytes(doc)
	if err != nil {
		return errors.Wrap(err, "parse registry overrides")
	}
	return r.applyOverrides(tree)
}

func (r *Registry) applyOverrides(tree *toml.Tree) error {
	var file overridesFile
	if err := tree.Unmarshal(&file); err != nil {
		return errors.Wrap(err, "registry overrides")
	}

	for _, o := range file.TLV {
		if o.Type < 0 || o.Type > 255 {
			return errors.Errorf("registry overrides: TLV type %d out of range", o.Type)
		}
		if o.Name == "" {
			return errors.Errorf("registry overrides: TLV type %d has no name", o.Type)
		}
		kind, ok := kindNames[o.Kind]
		if o.Kind != "" && !ok {
			return errors.Errorf("registry overrides: TLV type %d has unknown kind %q", o.Type, o.Kind)
		}
		r.entries[uint8(o.Type)] = Entry{
			Name:              o.Name,
			Kind:              kind,
			MayContainSubTLVs: kind == KindCompound,
		}
	}

	for _, o := range file.SubTLV {
		if o.Parent < 0 || o.Parent > 255 || o.Type < 0 || o.Type > 255 {
			return errors.Errorf("registry overrides: sub-TLV %d.%d out of range", o.Parent, o.Type)
		}
		if o.Name == "" {
			return errors.Errorf("registry overrides: sub-TLV %d.%d has no name", o.Parent, o.Type)
		}
		r.subNames[subKey(uint8(o.Parent), uint8(o.Type))] = o.Name
	}

	return nil
}
