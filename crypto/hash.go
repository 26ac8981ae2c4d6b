// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto provides the domain-separated hashing primitives shared by
// every component of the toolkit: a small registry of 32-byte hash functions
// (Blake3, Keccak-256, and the Poseidon2/Rescue placeholders), Merkle trees
// of arity 2 and 4, and hash-to-field reduction for the Prime254 placeholder
// field.
//
// Callers never hash raw bytes: every entry point takes a namespace label
// that is absorbed before the payload. Domain separation is enforced by the
// API shape, not checked at runtime.
package crypto

// Hasher32 is a streaming hash with a fixed 32-byte digest.
// Implemented by Blake3, Keccak-256, and the placeholder adapters.
type Hasher32 interface {
	// Absorb feeds bytes into the state.
	Absorb(data []byte)
	// Digest finalizes and returns the 32-byte digest. The hasher must not
	// be used again afterwards.
	Digest() [32]byte
}

// HashOneShot absorbs data into a fresh hasher and finalizes.
func HashOneShot(newHasher func() Hasher32, data []byte) [32]byte {
	h := newHasher()
	h.Absorb(data)
	return h.Digest()
}

// HashLabeled computes H(label || data).
func HashLabeled(newHasher func() Hasher32, label string, data []byte) [32]byte {
	h := newHasher()
	h.Absorb([]byte(label))
	h.Absorb(data)
	return h.Digest()
}
