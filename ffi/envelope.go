// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ffi provides the JSON envelope surface consumed by foreign-caller
// shims. The C-ABI layer itself (memory bookkeeping, string marshalling)
// lives outside this module; it forwards envelopes verbatim.
package ffi

import (
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/evm"
	"github.com/EqualFiLabs/zkd/profile"
	"github.com/EqualFiLabs/zkd/proof"
	"github.com/EqualFiLabs/zkd/registry"
)

// Error codes of the envelope taxonomy.
const (
	CodeOK           = 0
	CodeInvalidArg   = 1
	CodeBackend      = 2
	CodeProfile      = 3
	CodeProofCorrupt = 4
	CodeVerifyFail   = 5
	CodeInternal     = 6
)

// Envelope is the uniform response shape: {ok, code, msg, ...fields}.
type Envelope struct {
	OK     bool           `json:"ok"`
	Code   int            `json:"code"`
	Msg    string         `json:"msg"`
	Fields map[string]any `json:"-"`
}

// MarshalJSON flattens Fields into the top-level object.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3+len(e.Fields))
	out["ok"] = e.OK
	out["code"] = e.Code
	out["msg"] = e.Msg
	for k, v := range e.Fields {
		out[k] = v
	}
	return json.Marshal(out)
}

func ok(fields map[string]any) *Envelope {
	return &Envelope{OK: true, Code: CodeOK, Msg: "", Fields: fields}
}

func fail(code int, err error) *Envelope {
	return &Envelope{OK: false, Code: code, Msg: err.Error()}
}

// classify maps toolkit errors onto envelope codes.
func classify(err error) int {
	var corrupt *proof.CorruptError
	if errors.As(err, &corrupt) {
		return CodeProofCorrupt
	}
	var capErr *registry.CapabilityError
	if errors.As(err, &capErr) {
		if capErr.Code == registry.CodeProfileNotFound {
			return CodeProfile
		}
		return CodeBackend
	}
	var regErr *registry.RegistryError
	if errors.As(err, &regErr) {
		return CodeBackend
	}
	return CodeInternal
}

// ListBackends returns {items: [{id, recursion}]}.
func ListBackends() *Envelope {
	registry.EnsureBuiltinsRegistered()
	return ok(map[string]any{"items": registry.List()})
}

// ListProfiles returns {items: [profiles]} from the builtin catalog.
func ListProfiles() *Envelope {
	return ok(map[string]any{"items": profile.Builtins()})
}

// Prove parses the AIR, validates the configuration, and returns the proof
// hex plus header accounting.
func Prove(cfg backend.Config, inputsJSON, airPath string) *Envelope {
	if airPath == "" {
		return fail(CodeInvalidArg, errors.New("air path is required"))
	}
	registry.EnsureBuiltinsRegistered()

	if err := registry.ValidateConfig(&cfg, profile.Builtins()); err != nil {
		return fail(classify(err), err)
	}
	ir, err := air.ParseFile(airPath)
	if err != nil {
		return fail(CodeInvalidArg, err)
	}
	entry, err := registry.Get(cfg.BackendID)
	if err != nil {
		return fail(CodeBackend, err)
	}
	blob, err := entry.Prover.Prove(&cfg, inputsJSON, ir)
	if err != nil {
		return fail(classify(err), err)
	}
	header, err := proof.Decode(blob)
	if err != nil {
		return fail(CodeInternal, err)
	}
	digest, err := evm.DigestFromProof(blob)
	if err != nil {
		return fail(CodeInternal, err)
	}
	return ok(map[string]any{
		"proof_hex": hex.EncodeToString(blob),
		"proof_len": len(blob),
		"body_len":  header.BodyLen,
		"digest":    digest.Hex(),
	})
}

// Verify checks a proof blob; a rejected blob yields ProofCorrupt, and other
// failures are classified as in Prove.
func Verify(cfg backend.Config, inputsJSON, airPath string, blob []byte) *Envelope {
	if airPath == "" {
		return fail(CodeInvalidArg, errors.New("air path is required"))
	}
	registry.EnsureBuiltinsRegistered()

	if err := registry.ValidateConfig(&cfg, profile.Builtins()); err != nil {
		return fail(classify(err), err)
	}
	ir, err := air.ParseFile(airPath)
	if err != nil {
		return fail(CodeInvalidArg, err)
	}
	entry, err := registry.Get(cfg.BackendID)
	if err != nil {
		return fail(CodeBackend, err)
	}
	if err := entry.Verifier.Verify(&cfg, inputsJSON, ir, blob); err != nil {
		return fail(classify(err), err)
	}
	return ok(map[string]any{"verified": true})
}
