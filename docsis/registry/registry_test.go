/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package registry_test

import (
	"testing"

	"github.com/gocsis/gocsis/docsis/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBuiltins(t *testing.T) {
	reg := registry.New()

	entry := reg.Lookup(3)
	assert.Equal(t, "NetworkAccess", entry.Name)
	assert.Equal(t, registry.KindUint8, entry.Kind)
	assert.False(t, entry.MayContainSubTLVs)

	entry = reg.Lookup(4)
	assert.Equal(t, "ClassOfService", entry.Name)
	assert.True(t, entry.MayContainSubTLVs)

	entry = reg.Lookup(6)
	assert.Equal(t, "CmMic", entry.Name)
	entry = reg.Lookup(7)
	assert.Equal(t, "CmtsMic", entry.Name)
}

func TestLookupUnknownType(t *testing.T) {
	reg := registry.New()
	entry := reg.Lookup(200)
	assert.Equal(t, "Unknown-200", entry.Name)
	assert.Equal(t, registry.KindBytes, entry.Kind)
	assert.False(t, entry.MayContainSubTLVs)
}

// The same child type id carries different names under different parents.
func TestSubTLVNameContextual(t *testing.T) {
	reg := registry.New()

	assert.NotEqual(t, reg.SubTLVName(4, 1), reg.SubTLVName(24, 1))

	// Unregistered pairs fall back to the top-level name.
	assert.Equal(t, reg.Lookup(3).Name, reg.SubTLVName(200, 3))
}

func TestMayContainSubTLVs(t *testing.T) {
	reg := registry.New()
	assert.True(t, reg.MayContainSubTLVs(4))
	assert.True(t, reg.MayContainSubTLVs(24))
	assert.True(t, reg.MayContainSubTLVs(43))
	assert.False(t, reg.MayContainSubTLVs(3))
	assert.False(t, reg.MayContainSubTLVs(200))
}

func TestParseOverrides(t *testing.T) {
	reg := registry.New()
	err := reg.ParseOverrides([]byte(`
[[tlv]]
type = 201
name = "OperatorTelemetry"
kind = "compound"

[[tlv]]
type = 3
name = "NetAccess"
kind = "uint8"

[[subtlv]]
parent = 201
type = 1
name = "CollectorAddress"
`))
	require.NoError(t, err)

	entry := reg.Lookup(201)
	assert.Equal(t, "OperatorTelemetry", entry.Name)
	assert.Equal(t, registry.KindCompound, entry.Kind)
	assert.True(t, reg.MayContainSubTLVs(201))

	// Overrides replace built-in entries.
	assert.Equal(t, "NetAccess", reg.Lookup(3).Name)

	assert.Equal(t, "CollectorAddress", reg.SubTLVName(201, 1))
}

func TestParseOverridesRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"type out of range", "[[tlv]]\ntype = 300\nname = \"X\"\n"},
		{"missing name", "[[tlv]]\ntype = 201\n"},
		{"unknown kind", "[[tlv]]\ntype = 201\nname = \"X\"\nkind = \"float\"\n"},
		{"sub parent out of range", "[[subtlv]]\nparent = 300\ntype = 1\nname = \"X\"\n"},
		{"sub missing name", "[[subtlv]]\nparent = 201\ntype = 1\n"},
		{"not toml", "{ json: true }"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg := registry.New()
			assert.Error(t, reg.ParseOverrides([]byte(c.doc)))
		})
	}
}

// Overrides never leak between registries.
func TestRegistriesIndependent(t *testing.T) {
	a := registry.New()
	b := registry.New()
	require.NoError(t, a.ParseOverrides([]byte("[[tlv]]\ntype = 201\nname = \"X\"\n")))
	assert.Equal(t, "Unknown-201", b.Lookup(201).Name)
}
