// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const bindingHeader = `
[meta]
name = "toy_bindings"
field = "Prime254"
hash = "blake3"

[columns]
trace_cols = 4

[constraints]
transition_count = 1
`

func TestLegacyFlatForm(t *testing.T) {
	src := bindingHeader + `
[commitments]
pedersen = true
curve = "placeholder"
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, ir.Bindings, 1)
	require.Equal(t, KindPedersen, ir.Bindings[0].Kind)
	require.Equal(t, "placeholder", ir.Bindings[0].Curve)
	require.Empty(t, ir.Bindings[0].PublicInputs)
}

func TestLegacyFlatFormDisabled(t *testing.T) {
	src := bindingHeader + `
[commitments]
pedersen = false
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Empty(t, ir.Bindings)
}

func TestTableForm(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[[public_inputs]]
name = "y"

[commitments.pedersen]
curve = "placeholder"
public = ["x"]

[commitments.poseidon_commit]
public = ["y"]
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, ir.Bindings, 2)
	// Table keys normalize in sorted order: pedersen before poseidon_commit.
	require.Equal(t, KindPedersen, ir.Bindings[0].Kind)
	require.Equal(t, []string{"x"}, ir.Bindings[0].PublicInputs)
	require.Equal(t, KindPoseidonCommit, ir.Bindings[1].Kind)
	require.Equal(t, []string{"y"}, ir.Bindings[1].PublicInputs)
}

func TestListForm(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[[commitments]]
kind = "keccak_commit"
public = ["x"]

[[commitments]]
kind = "PedersenCommit"
curve = "placeholder"
public = ["x"]
`
	// The list form accepts underscore-free and camel-cased spellings of the
	// three kind names, but "PedersenCommit" is not one of them.
	_, err := ParseString(src)
	require.Error(t, err) // PedersenCommit is not a recognized spelling
	require.Contains(t, err.Error(), "unknown commitment kind")

	src = bindingHeader + `
[[public_inputs]]
name = "x"

[[commitments]]
kind = "keccak_commit"
public = ["x"]

[[commitments]]
kind = "pedersen"
curve = "placeholder"
public = ["x"]
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, ir.Bindings, 2)
	require.Equal(t, KindKeccakCommit, ir.Bindings[0].Kind)
	require.Equal(t, KindPedersen, ir.Bindings[1].Kind)
}

func TestListFormKindSpellings(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[[commitments]]
kind = "poseidonCommit"
public = ["x"]
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Equal(t, KindPoseidonCommit, ir.Bindings[0].Kind)
}

func TestCurveOnHashCommitRejected(t *testing.T) {
	src := bindingHeader + `
[commitments.poseidon_commit]
curve = "bn254"
`
	_, err := ParseString(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not take a curve")
}

func TestPedersenRequiresCurve(t *testing.T) {
	src := bindingHeader + `
[commitments.pedersen]
public = []
`
	_, err := ParseString(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pedersen commitment requires a curve name")
}

func TestUnknownPublicInputRejected(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[commitments.pedersen]
curve = "placeholder"
public = ["missing"]
`
	_, err := ParseString(src)
	require.Error(t, err)
	require.Equal(t, "unknown public input 'missing' referenced by pedersen", err.Error())
}

func TestDuplicateBindingRejected(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[[commitments]]
kind = "pedersen"
curve = "placeholder"
public = ["x", "x"]
`
	_, err := ParseString(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already bound to pedersen")
}

func TestSameInputDifferentKindsAllowed(t *testing.T) {
	src := bindingHeader + `
[[public_inputs]]
name = "x"

[[commitments]]
kind = "pedersen"
curve = "placeholder"
public = ["x"]

[[commitments]]
kind = "poseidon_commit"
public = ["x"]
`
	ir, err := ParseString(src)
	require.NoError(t, err)
	require.Len(t, ir.Bindings, 2)
}

func TestUnknownCommitmentTableKeyRejected(t *testing.T) {
	src := bindingHeader + `
[commitments.mystery_commit]
public = []
`
	_, err := ParseString(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown commitment kind 'mystery_commit'")
}
