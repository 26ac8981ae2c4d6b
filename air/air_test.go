// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const toyTOML = `
rows_hint = 16

[meta]
name = "toy_balance"
field = "Prime254"
hash = "poseidon2"

[columns]
trace_cols = 8
const_cols = 2
periodic_cols = 1

[constraints]
transition_count = 4
boundary_count = 2

[commitments]
pedersen = true
curve = "bn254"
`

const toyYAML = `
meta:
  name: toy_balance
  field: Prime254
  hash: poseidon2
columns:
  trace_cols: 8
  const_cols: 2
  periodic_cols: 1
constraints:
  transition_count: 4
  boundary_count: 2
rows_hint: 16
commitments:
  pedersen: true
  curve: bn254
`

func TestParseTOMLToy(t *testing.T) {
	program, err := ParseTOML(toyTOML)
	require.NoError(t, err)
	require.Equal(t, "toy_balance", program.Meta.Name)
	require.Equal(t, "Prime254", program.Meta.Field)
	require.Equal(t, uint32(8), program.Columns.TraceCols)
	require.NotNil(t, program.RowsHint)
	require.Equal(t, uint32(16), *program.RowsHint)
	require.NotNil(t, program.Commitments)
	require.True(t, program.Commitments.Pedersen)
	require.Equal(t, "bn254", program.Commitments.Curve)
	require.Len(t, program.Commitments.Bindings, 1)
	require.Equal(t, KindPedersen, program.Commitments.Bindings[0].Kind)
}

func TestParseYAMLMatchesTOML(t *testing.T) {
	fromTOML, err := ParseTOML(toyTOML)
	require.NoError(t, err)
	fromYAML, err := ParseYAML(toyYAML)
	require.NoError(t, err)
	require.Equal(t, fromTOML.Meta, fromYAML.Meta)
	require.Equal(t, fromTOML.Columns, fromYAML.Columns)
	require.Equal(t, fromTOML.Constraints, fromYAML.Constraints)
	require.Equal(t, fromTOML.RowsHint, fromYAML.RowsHint)
	require.Equal(t, fromTOML.Commitments, fromYAML.Commitments)
}

func TestUnknownTopLevelKeyRejected(t *testing.T) {
	_, err := ParseTOML(toyTOML + "\n[extra]\nfoo = 1\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown key")
}

func TestUnknownYAMLKeyRejected(t *testing.T) {
	_, err := ParseYAML(toyYAML + "\nextra: 1\n")
	require.Error(t, err)
}

func TestLoadProgramDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "toy.air")
	require.NoError(t, os.WriteFile(tomlPath, []byte(toyTOML), 0o644))
	yamlPath := filepath.Join(dir, "toy.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(toyYAML), 0o644))

	fromTOML, err := LoadProgram(tomlPath)
	require.NoError(t, err)
	fromYAML, err := LoadProgram(yamlPath)
	require.NoError(t, err)
	require.Equal(t, fromTOML.Meta, fromYAML.Meta)
}

func u32p(v uint32) *uint32 { return &v }

func TestValidateRejects(t *testing.T) {
	base := func() *Program {
		program, err := ParseTOML(toyTOML)
		require.NoError(t, err)
		return program
	}

	cases := []struct {
		name   string
		mutate func(*Program)
		msg    string
	}{
		{"bad name", func(p *Program) { p.Meta.Name = "a" }, "invalid meta.name"},
		{"name with spaces", func(p *Program) { p.Meta.Name = "has space" }, "invalid meta.name"},
		{"empty field", func(p *Program) { p.Meta.Field = "" }, "meta.field cannot be empty"},
		{"bad hash", func(p *Program) { p.Meta.Hash = "sha256" }, "unsupported meta.hash"},
		{"zero trace cols", func(p *Program) { p.Columns.TraceCols = 0 }, "trace_cols must be > 0"},
		{"huge trace cols", func(p *Program) { p.Columns.TraceCols = 2049 }, "trace_cols too large"},
		{"zero transitions", func(p *Program) { p.Constraints.TransitionCount = 0 }, "transition_count must be > 0"},
		{"degree hint", func(p *Program) { p.Meta.DegreeHint = u32p(65) }, "degree_hint out of range"},
		{"degree hint zero", func(p *Program) { p.Meta.DegreeHint = u32p(0) }, "degree_hint out of range"},
		{"rows too small", func(p *Program) { p.RowsHint = u32p(4) }, "rows_hint out of range"},
		{"rows too large", func(p *Program) { p.RowsHint = u32p(1 << 23) }, "rows_hint out of range"},
		{"rows zero", func(p *Program) { p.RowsHint = u32p(0) }, "rows_hint out of range"},
		{"rows not pow2", func(p *Program) { p.RowsHint = u32p(24) }, "power of two"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			program := base()
			tc.mutate(program)
			err := program.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

// A written-out zero is a value, not an omission: the hint checks must
// fire even though zero is the Go zero value.
func TestExplicitZeroHintsRejected(t *testing.T) {
	_, err := ParseTOML(strings.Replace(toyTOML, "rows_hint = 16", "rows_hint = 0", 1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "rows_hint out of range")

	_, err = ParseTOML(strings.Replace(toyTOML, "hash = \"poseidon2\"", "hash = \"poseidon2\"\ndegree_hint = 0", 1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "degree_hint out of range")
}

func TestPublicInputDefaultsToField(t *testing.T) {
	src := toyTOML + `
[[public_inputs]]
name = "x"

[[public_inputs]]
name = "blob"
type = "bytes"
`
	program, err := ParseTOML(src)
	require.NoError(t, err)
	require.Len(t, program.PublicInputs, 2)
	require.Equal(t, PublicField, program.PublicInputs[0].Ty)
	require.Equal(t, PublicBytes, program.PublicInputs[1].Ty)
}

func TestDuplicatePublicInputRejected(t *testing.T) {
	src := toyTOML + `
[[public_inputs]]
name = "x"

[[public_inputs]]
name = "x"
`
	_, err := ParseTOML(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate public input 'x'")
}

func TestBindingsFromProgram(t *testing.T) {
	program, err := ParseTOML(toyTOML)
	require.NoError(t, err)
	b := BindingsFromProgram(program)
	require.True(t, b.Commitments.Pedersen)
	require.Equal(t, "bn254", b.Commitments.Curve)
	require.False(t, b.Commitments.NoRReuse)
	require.Equal(t, "poseidon2", b.HashIDForCommitments)
}

func TestBindingsHashFallsBackToBlake3(t *testing.T) {
	program, err := ParseTOML(toyTOML)
	require.NoError(t, err)
	program.Meta.Hash = "something-else"
	b := BindingsFromProgram(program)
	require.Equal(t, "blake3", b.HashIDForCommitments)
}
