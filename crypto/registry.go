// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"encoding/binary"
	"strings"
)

// Supported hash ids.
const (
	HashBlake3    = "blake3"
	HashKeccak256 = "keccak256"
	HashPoseidon2 = "poseidon2"
	HashRescue    = "rescue"
)

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// NewHasher resolves a hash id to a fresh hasher constructor. The second
// return is false for unknown ids.
func NewHasher(id string) (func() Hasher32, bool) {
	switch normalizeID(id) {
	case HashBlake3:
		return NewBlake3, true
	case HashKeccak256:
		return NewKeccak256, true
	case HashPoseidon2:
		return NewPoseidon2, true
	case HashRescue:
		return NewRescue, true
	default:
		return nil, false
	}
}

// Hash32ByID computes H(label || data) for the given hash id.
// Returns ok=false when the id is not supported.
func Hash32ByID(id, label string, data []byte) ([32]byte, bool) {
	newHasher, ok := NewHasher(id)
	if !ok {
		return [32]byte{}, false
	}
	return HashLabeled(newHasher, label, data), true
}

// Hash64ByID derives a u64 from the first 8 digest bytes (little-endian).
func Hash64ByID(id, label string, data []byte) (uint64, bool) {
	digest, ok := Hash32ByID(id, label, data)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(digest[0:8]), true
}
