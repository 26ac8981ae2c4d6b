// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package native implements the reference proving backend: a deterministic
// construction that binds an AIR program and its public inputs JSON to a
// reproducible 8-byte body digest under the proof envelope.
package native

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/crypto"
	"github.com/EqualFiLabs/zkd/proof"
	"github.com/EqualFiLabs/zkd/trace"
)

// BackendID identifies the native backend in the registry.
const BackendID = "native@0.0"

// BodyLen is the fixed body size: the 8-byte trace-root proxy.
const BodyLen = 8

// Trace-root mixing labels, consumed in this exact order. The label table
// and mixing sequence are part of the cross-backend determinism contract;
// changing either breaks on-chain digest parity.
const (
	labelAirName   = "AIR.NAME"
	labelAirField  = "AIR.FIELD"
	labelAirHash   = "AIR.HASH"
	labelTraceRows = "TRACE.ROWS"
	labelTraceCols = "TRACE.COLS"
	labelIOJSON    = "IO.JSON"
)

const mixMultiplier = 0x9e3779b97f4a7c15

// Backend is the native prover/verifier pair.
type Backend struct{}

// New returns the native backend.
func New() *Backend { return &Backend{} }

func (b *Backend) ID() string { return BackendID }

func (b *Backend) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		Fields:     []string{"Prime254"},
		Hashes:     []string{"blake3", "keccak256", "poseidon2", "rescue"},
		FriArities: []uint32{2, 4},
		Recursion:  backend.RecursionNone,
		Lookups:    false,
		Curves:     []string{"placeholder"},
		Pedersen:   true,
	}
}

// TraceRoot computes the trace-root proxy: a u64 accumulator over the AIR
// identity, trace shape, and inputs JSON. Each component is hashed with the
// configured hash id under its stable label; rows and cols are consumed as
// little-endian u32.
func TraceRoot(hashID string, ir *air.IR, shape trace.Shape, inputsJSON string) (uint64, error) {
	var rowsLE, colsLE [4]byte
	binary.LittleEndian.PutUint32(rowsLE[:], shape.Rows)
	binary.LittleEndian.PutUint32(colsLE[:], shape.Cols)

	steps := []struct {
		label string
		data  []byte
	}{
		{labelAirName, []byte(ir.Meta.Name)},
		{labelAirField, []byte(ir.Meta.Field)},
		{labelAirHash, []byte(ir.Meta.Hash)},
		{labelTraceRows, rowsLE[:]},
		{labelTraceCols, colsLE[:]},
		{labelIOJSON, []byte(inputsJSON)},
	}

	var acc uint64
	for _, step := range steps {
		h, ok := crypto.Hash64ByID(hashID, step.label, step.data)
		if !ok {
			return 0, fmt.Errorf("unsupported hash id '%s'", hashID)
		}
		acc ^= bits.RotateLeft64(h, 13) ^ (h * mixMultiplier)
	}
	return acc, nil
}

func headerFor(cfg *backend.Config, inputsJSON string, root uint64) *proof.Header {
	return &proof.Header{
		BackendIDHash: proof.Hash64(proof.LabelBackend, []byte(cfg.BackendID)),
		ProfileIDHash: proof.Hash64(proof.LabelProfile, []byte(cfg.ProfileID)),
		PubIOHash:     proof.Hash64(proof.LabelPubIO, []byte(inputsJSON)),
		BodyLen:       BodyLen,
	}
}

// Prove assembles the deterministic proof blob for the configuration.
func (b *Backend) Prove(cfg *backend.Config, inputsJSON string, ir *air.IR) ([]byte, error) {
	shape := trace.FromIR(ir)
	root, err := TraceRoot(cfg.Hash, ir, shape, inputsJSON)
	if err != nil {
		return nil, err
	}

	var body [BodyLen]byte
	binary.LittleEndian.PutUint64(body[:], root)
	return proof.Assemble(headerFor(cfg, inputsJSON, root), body[:]), nil
}

// Verify re-derives every header field and the body from the inputs and
// compares them against the blob. Each mismatch carries a distinct reason;
// all are reported as proof corruption.
func (b *Backend) Verify(cfg *backend.Config, inputsJSON string, ir *air.IR, blob []byte) error {
	header, err := proof.Decode(blob)
	if err != nil {
		return err
	}
	if uint64(len(blob)-proof.HeaderSize) != header.BodyLen {
		return proof.Corrupt("body length mismatch")
	}

	expected := headerFor(cfg, inputsJSON, 0)
	if header.BackendIDHash != expected.BackendIDHash {
		return proof.Corrupt("backend id hash mismatch")
	}
	if header.ProfileIDHash != expected.ProfileIDHash {
		return proof.Corrupt("profile id hash mismatch")
	}
	if header.PubIOHash != expected.PubIOHash {
		return proof.Corrupt("public io hash mismatch")
	}
	if header.BodyLen != BodyLen {
		return proof.Corrupt("body length mismatch")
	}

	shape := trace.FromIR(ir)
	root, err := TraceRoot(cfg.Hash, ir, shape, inputsJSON)
	if err != nil {
		return err
	}
	if binary.LittleEndian.Uint64(blob[proof.HeaderSize:]) != root {
		return proof.Corrupt("fake trace root mismatch")
	}
	return nil
}
