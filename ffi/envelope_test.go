// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/native"
)

const toyAIR = `
[meta]
name = "toy_ffi"
field = "Prime254"
hash = "blake3"

[columns]
trace_cols = 4

[constraints]
transition_count = 2
`

func writeToyAIR(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toy.air")
	require.NoError(t, os.WriteFile(path, []byte(toyAIR), 0o644))
	return path
}

func toyConfig() backend.Config {
	return backend.NewConfig(native.BackendID, "Prime254", "blake3", 2, false, "balanced")
}

func TestListEnvelopes(t *testing.T) {
	env := ListBackends()
	require.True(t, env.OK)
	require.Equal(t, CodeOK, env.Code)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, true, decoded["ok"])
	require.Contains(t, decoded, "items")

	env = ListProfiles()
	require.True(t, env.OK)
}

func TestProveVerifyEnvelope(t *testing.T) {
	airPath := writeToyAIR(t)
	cfg := toyConfig()

	env := Prove(cfg, `{"a":1}`, airPath)
	require.True(t, env.OK, env.Msg)
	proofHex := env.Fields["proof_hex"].(string)
	blob, err := hex.DecodeString(proofHex)
	require.NoError(t, err)
	require.Len(t, blob, 48)

	env = Verify(cfg, `{"a":1}`, airPath, blob)
	require.True(t, env.OK, env.Msg)
	require.Equal(t, true, env.Fields["verified"])
}

func TestVerifyCorruptProofCode(t *testing.T) {
	airPath := writeToyAIR(t)
	cfg := toyConfig()

	env := Prove(cfg, `{"a":1}`, airPath)
	require.True(t, env.OK)
	blob, _ := hex.DecodeString(env.Fields["proof_hex"].(string))
	blob[len(blob)-1] ^= 0xff

	env = Verify(cfg, `{"a":1}`, airPath, blob)
	require.False(t, env.OK)
	require.Equal(t, CodeProofCorrupt, env.Code)
	require.Equal(t, "fake trace root mismatch", env.Msg)
}

func TestInvalidArgCode(t *testing.T) {
	env := Prove(toyConfig(), `{}`, "")
	require.False(t, env.OK)
	require.Equal(t, CodeInvalidArg, env.Code)
}

func TestBackendAndProfileCodes(t *testing.T) {
	airPath := writeToyAIR(t)

	cfg := toyConfig()
	cfg.BackendID = "ghost@0.0"
	env := Prove(cfg, `{}`, airPath)
	require.Equal(t, CodeBackend, env.Code)

	cfg = toyConfig()
	cfg.ProfileID = "nope"
	env = Prove(cfg, `{}`, airPath)
	require.Equal(t, CodeProfile, env.Code)
}
