// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "github.com/zeebo/blake3"

// Blake3 implements Hasher32 over the standard BLAKE3 permutation.
type Blake3 struct {
	inner *blake3.Hasher
}

// NewBlake3 returns a fresh BLAKE3 hasher.
func NewBlake3() Hasher32 {
	return &Blake3{inner: blake3.New()}
}

func (b *Blake3) Absorb(data []byte) {
	_, _ = b.inner.Write(data)
}

func (b *Blake3) Digest() [32]byte {
	var out [32]byte
	copy(out[:], b.inner.Sum(nil))
	return out
}
