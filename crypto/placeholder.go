// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "github.com/zeebo/blake3"

// Poseidon2 is a placeholder adapter conforming to Hasher32. Until the real
// field-friendly permutation lands, it domain-separates BLAKE3 by absorbing
// the ASCII label "POSEIDON2" before any caller data, which keeps its output
// distinct from plain Blake3 on identical inputs.
type Poseidon2 struct {
	inner *blake3.Hasher
}

// NewPoseidon2 returns a fresh placeholder Poseidon2 hasher.
func NewPoseidon2() Hasher32 {
	h := blake3.New()
	_, _ = h.Write([]byte("POSEIDON2"))
	return &Poseidon2{inner: h}
}

func (p *Poseidon2) Absorb(data []byte) {
	_, _ = p.inner.Write(data)
}

func (p *Poseidon2) Digest() [32]byte {
	var out [32]byte
	copy(out[:], p.inner.Sum(nil))
	return out
}

// Rescue is the placeholder Rescue adapter, built the same way as Poseidon2
// with its own "RESCUE" state prefix.
type Rescue struct {
	inner *blake3.Hasher
}

// NewRescue returns a fresh placeholder Rescue hasher.
func NewRescue() Hasher32 {
	h := blake3.New()
	_, _ = h.Write([]byte("RESCUE"))
	return &Rescue{inner: h}
}

func (r *Rescue) Absorb(data []byte) {
	_, _ = r.inner.Write(data)
}

func (r *Rescue) Digest() [32]byte {
	var out [32]byte
	copy(out[:], r.inner.Sum(nil))
	return out
}
