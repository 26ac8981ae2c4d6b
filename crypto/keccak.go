// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak256 implements Hasher32 using legacy Keccak-256 (the Ethereum
// variant, not NIST SHA3-256).
type Keccak256 struct {
	inner hash.Hash
}

// NewKeccak256 returns a fresh Keccak-256 hasher.
func NewKeccak256() Hasher32 {
	return &Keccak256{inner: sha3.NewLegacyKeccak256()}
}

func (k *Keccak256) Absorb(data []byte) {
	_, _ = k.inner.Write(data)
}

func (k *Keccak256) Digest() [32]byte {
	var out [32]byte
	copy(out[:], k.inner.Sum(nil))
	return out
}
