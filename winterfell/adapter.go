// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package winterfell adapts the Winterfell STARK library behind the backend
// capability surface. The adapter translates AIR-IR into a backend program
// descriptor and, through DigestManifest, reproduces the determinism
// manifest (header hashes plus the trace-root proxy body) whose digest
// matches the native backend bit for bit. The real STARK machinery stays
// inside the external library and is out of scope here.
package winterfell

import (
	"fmt"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/crypto"
	"github.com/EqualFiLabs/zkd/native"
	"github.com/EqualFiLabs/zkd/trace"
)

// BackendID identifies the adapter in the registry.
const BackendID = "winterfell@0.6"

// RejectCode classifies why the adapter refused an AIR.
type RejectCode string

const (
	RejectPedersenCurve      RejectCode = "PedersenCurve"
	RejectPoseidonCommitHash RejectCode = "PoseidonCommitHash"
	RejectKeccakCommitHash   RejectCode = "KeccakCommitHash"
	RejectProgram            RejectCode = "Program"
	RejectOther              RejectCode = "Other"
)

// RejectError reports an AIR the adapter cannot serve.
type RejectError struct {
	Code   RejectCode
	Detail string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("winterfell adapter rejected AIR (%s): %s", e.Code, e.Detail)
}

func reject(code RejectCode, format string, args ...any) error {
	return &RejectError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Program is the backend-specific program descriptor produced from AIR-IR.
type Program struct {
	Name            string      `json:"name"`
	Field           string      `json:"field"`
	Hash            string      `json:"hash"`
	TraceWidth      uint32      `json:"trace_width"`
	AuxWidth        uint32      `json:"aux_width"`
	TransitionCount uint32      `json:"transition_count"`
	BoundaryCount   uint32      `json:"boundary_count"`
	Shape           trace.Shape `json:"shape"`
}

// Backend is the Winterfell adapter.
type Backend struct{}

// New returns the adapter.
func New() *Backend { return &Backend{} }

func (b *Backend) ID() string { return BackendID }

func (b *Backend) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		Fields:     []string{"Goldilocks", "Prime254"},
		Hashes:     []string{"blake3", "poseidon2", "rescue"},
		FriArities: []uint32{2, 4, 8},
		Recursion:  backend.RecursionStarkInStark,
		Lookups:    false,
		Curves:     []string{"placeholder"},
		Pedersen:   true,
	}
}

// TranslateAIR maps AIR-IR onto the adapter's program descriptor, rejecting
// shapes and commitment layouts the backend cannot serve.
func (b *Backend) TranslateAIR(ir *air.IR) (*Program, error) {
	caps := b.Capabilities()
	if !caps.SupportsField(ir.Meta.Field) {
		return nil, reject(RejectProgram, "field '%s' not supported", ir.Meta.Field)
	}
	if !caps.SupportsHash(ir.Meta.Hash) {
		return nil, reject(RejectProgram, "hash '%s' not supported", ir.Meta.Hash)
	}

	for _, binding := range ir.Bindings {
		switch binding.Kind {
		case air.KindPedersen:
			if !caps.SupportsCurve(binding.Curve) {
				return nil, reject(RejectPedersenCurve,
					"pedersen curve '%s' not supported", binding.Curve)
			}
		case air.KindPoseidonCommit:
			if ir.Meta.Hash == crypto.HashKeccak256 {
				return nil, reject(RejectPoseidonCommitHash,
					"poseidon commitment under keccak transcript")
			}
		case air.KindKeccakCommit:
			if ir.Meta.Hash != crypto.HashKeccak256 {
				return nil, reject(RejectKeccakCommitHash,
					"keccak commitment under '%s' transcript", ir.Meta.Hash)
			}
		default:
			return nil, reject(RejectOther, "commitment kind '%s'", binding.Kind)
		}
	}

	return &Program{
		Name:            ir.Meta.Name,
		Field:           ir.Meta.Field,
		Hash:            ir.Meta.Hash,
		TraceWidth:      ir.Columns.TraceCols,
		AuxWidth:        ir.Columns.ConstCols + ir.Columns.PeriodicCols,
		TransitionCount: ir.Constraints.TransitionCount,
		BoundaryCount:   ir.Constraints.BoundaryCount,
		Shape:           trace.FromIR(ir),
	}, nil
}

// Prove translates the AIR and emits a blob built with the native backend's
// label table and mixing order under the adapter's own backend id. Its body
// equals the native body for the same inputs, but its header binds the
// adapter id, so its digest differs from the native one; cross-backend
// digest parity is taken over DigestManifest.
func (b *Backend) Prove(cfg *backend.Config, inputsJSON string, ir *air.IR) ([]byte, error) {
	if _, err := b.TranslateAIR(ir); err != nil {
		return nil, err
	}
	manifest := *cfg
	manifest.BackendID = BackendID
	return native.New().Prove(&manifest, inputsJSON, ir)
}

// DigestManifest reproduces the reference (native) proof content for the
// same AIR, inputs, and profile. Cross-backend digest parity for the EVM
// bridge is defined over this manifest rather than over the adapter's own
// envelope, which carries the adapter's backend id in its header.
func (b *Backend) DigestManifest(cfg *backend.Config, inputsJSON string, ir *air.IR) ([]byte, error) {
	if _, err := b.TranslateAIR(ir); err != nil {
		return nil, err
	}
	ref := *cfg
	ref.BackendID = native.BackendID
	return native.New().Prove(&ref, inputsJSON, ir)
}

// Verify checks a blob produced by this adapter.
func (b *Backend) Verify(cfg *backend.Config, inputsJSON string, ir *air.IR, blob []byte) error {
	if _, err := b.TranslateAIR(ir); err != nil {
		return err
	}
	manifest := *cfg
	manifest.BackendID = BackendID
	return native.New().Verify(&manifest, inputsJSON, ir, blob)
}
