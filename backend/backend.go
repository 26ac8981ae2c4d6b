// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package backend defines the capability model and the prover/verifier
// surfaces implemented by proving backends.
package backend

import "github.com/EqualFiLabs/zkd/air"

// Recursion capability values.
const (
	RecursionNone         = "none"
	RecursionStarkInStark = "stark-in-stark"
	RecursionSnarkWrapper = "snark-wrapper"
)

// Capabilities is the static descriptor of what a backend supports.
type Capabilities struct {
	Fields     []string `json:"fields"`      // e.g. ["Goldilocks", "Prime254"]
	Hashes     []string `json:"hashes"`      // e.g. ["poseidon2", "blake3"]
	FriArities []uint32 `json:"fri_arities"` // e.g. [2, 4]
	Recursion  string   `json:"recursion"`   // none | stark-in-stark | snark-wrapper
	Lookups    bool     `json:"lookups"`
	// Curves lists named curves supported for Pedersen-style commitments.
	Curves []string `json:"curves,omitempty"`
	// Pedersen reports whether Pedersen-style commitment gadgets are served.
	Pedersen bool `json:"pedersen"`
}

// SupportsField reports whether the field id is advertised.
func (c *Capabilities) SupportsField(field string) bool {
	return contains(c.Fields, field)
}

// SupportsHash reports whether the hash id is advertised.
func (c *Capabilities) SupportsHash(hash string) bool {
	return contains(c.Hashes, hash)
}

// SupportsFriArity reports whether the FRI arity is advertised.
func (c *Capabilities) SupportsFriArity(arity uint32) bool {
	for _, a := range c.FriArities {
		if a == arity {
			return true
		}
	}
	return false
}

// SupportsCurve reports whether the named curve is advertised.
func (c *Capabilities) SupportsCurve(curve string) bool {
	return contains(c.Curves, curve)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Config is the user-selected proving configuration validated against a
// backend's capabilities.
type Config struct {
	BackendID       string `json:"backend_id"`
	Field           string `json:"field"`
	Hash            string `json:"hash"`
	FriArity        uint32 `json:"fri_arity"`
	RecursionNeeded bool   `json:"recursion_needed"`
	ProfileID       string `json:"profile_id"`
}

// NewConfig builds a Config from its parts.
func NewConfig(backendID, field, hash string, friArity uint32, recursionNeeded bool, profileID string) Config {
	return Config{
		BackendID:       backendID,
		Field:           field,
		Hash:            hash,
		FriArity:        friArity,
		RecursionNeeded: recursionNeeded,
		ProfileID:       profileID,
	}
}

// ProverBackend produces proof blobs for a validated configuration.
type ProverBackend interface {
	ID() string
	Capabilities() Capabilities
	// Prove binds the AIR and public inputs JSON into a proof blob
	// (40-byte header followed by the backend's body).
	Prove(cfg *Config, inputsJSON string, ir *air.IR) ([]byte, error)
}

// VerifierBackend checks proof blobs produced by its prover counterpart.
type VerifierBackend interface {
	// Verify re-derives the expected proof content and compares it against
	// the supplied blob. A mismatch is reported as an error carrying the
	// proof-corrupt class.
	Verify(cfg *Config, inputsJSON string, ir *air.IR, proof []byte) error
}

// Info is the listing subset of Capabilities.
type Info struct {
	ID        string `json:"id"`
	Recursion bool   `json:"recursion"`
}
