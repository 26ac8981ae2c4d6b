// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinsSortedAndValid(t *testing.T) {
	profiles := Builtins()
	require.Len(t, profiles, 3)
	require.Equal(t, "balanced", profiles[0].ID)
	require.Equal(t, "dev-fast", profiles[1].ID)
	require.Equal(t, "secure", profiles[2].ID)
	for _, p := range profiles {
		require.NoError(t, p.Validate(), p.ID)
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		msg  string
	}{
		{"empty id", Profile{ID: " ", LambdaBits: 100}, "profile id cannot be empty"},
		{"lambda low", Profile{ID: "x", LambdaBits: 63}, "lambda_bits"},
		{"lambda high", Profile{ID: "x", LambdaBits: 257}, "lambda_bits"},
		{"bad arity", Profile{ID: "x", LambdaBits: 100, MerkleArity: u32(3)}, "merkle_arity"},
		{"zero arity", Profile{ID: "x", LambdaBits: 100, MerkleArity: u32(0)}, "merkle_arity"},
		{"blowup", Profile{ID: "x", LambdaBits: 100, FriBlowup: u32(1)}, "fri_blowup"},
		{"zero blowup", Profile{ID: "x", LambdaBits: 100, FriBlowup: u32(0)}, "fri_blowup"},
		{"queries", Profile{ID: "x", LambdaBits: 100, FriQueries: u32(8)}, "fri_queries"},
		{"zero queries", Profile{ID: "x", LambdaBits: 100, FriQueries: u32(0)}, "fri_queries"},
		{"grind", Profile{ID: "x", LambdaBits: 100, GrindBits: 65}, "grind_bits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoadDirFallsBackToBuiltins(t *testing.T) {
	profiles, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Equal(t, Builtins(), profiles)

	empty := t.TempDir()
	profiles, err = LoadDir(empty)
	require.NoError(t, err)
	require.Equal(t, Builtins(), profiles)
}

func TestLoadDirReadsTOML(t *testing.T) {
	dir := t.TempDir()
	src := `
id = "paranoid"
lambda_bits = 200
fri_blowup = 64
fri_queries = 80
grind_bits = 24
merkle_arity = 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paranoid.toml"), []byte(src), 0o644))

	profiles, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, "paranoid", profiles[0].ID)
	require.Equal(t, uint32(200), profiles[0].LambdaBits)
	require.NotNil(t, profiles[0].MerkleArity)
	require.Equal(t, uint32(4), *profiles[0].MerkleArity)
}

func TestLoadDirRejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"),
		[]byte("id = \"bad\"\nlambda_bits = 10\n"), 0o644))
	_, err := LoadDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "lambda_bits")
}

// An explicit zero in the file is a value, not an omission, and must fail
// the range checks.
func TestLoadDirRejectsExplicitZeroes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zero.toml"),
		[]byte("id = \"zero\"\nlambda_bits = 100\nfri_blowup = 0\n"), 0o644))
	_, err := LoadDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fri_blowup")
}

func TestLookup(t *testing.T) {
	profiles := Builtins()
	p, ok := Lookup(profiles, "secure")
	require.True(t, ok)
	require.Equal(t, uint32(120), p.LambdaBits)

	_, ok = Lookup(profiles, "nope")
	require.False(t, ok)
}
