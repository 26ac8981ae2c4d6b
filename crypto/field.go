// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"math/big"
	"sync"

	"github.com/holiman/uint256"
)

// Prime254 placeholder modulus: p = 2^254 - 127*2^120 + 1. This is NOT
// BN254's scalar field; it stands in until real backends pin their exact
// moduli.
var (
	prime254Once sync.Once
	prime254     *uint256.Int
	prime254Big  *big.Int
)

func initPrime254() {
	p := new(big.Int).Lsh(big.NewInt(1), 254)
	sub := new(big.Int).Lsh(big.NewInt(127), 120)
	p.Sub(p, sub)
	p.Add(p, big.NewInt(1))
	prime254Big = p
	prime254, _ = uint256.FromBig(p)
}

// Prime254Modulus returns a copy of the placeholder modulus.
func Prime254Modulus() *uint256.Int {
	prime254Once.Do(initPrime254)
	return new(uint256.Int).Set(prime254)
}

// ReduceToPrime254 reduces arbitrary big-endian bytes into [0, p).
func ReduceToPrime254(data []byte) *uint256.Int {
	prime254Once.Do(initPrime254)
	if len(data) <= 32 {
		x := new(uint256.Int).SetBytes(data)
		return x.Mod(x, prime254)
	}
	// Wide inputs (e.g. two concatenated digests) go through big.Int.
	wide := new(big.Int).SetBytes(data)
	wide.Mod(wide, prime254Big)
	out, _ := uint256.FromBig(wide)
	return out
}

// HashToField32 maps a 32-byte digest (big-endian) into the field.
func HashToField32(digest [32]byte) *uint256.Int {
	return ReduceToPrime254(digest[:])
}

// HashToField64 maps two concatenated 32-byte digests into the field via a
// 512-bit wide reduction.
func HashToField64(a, b [32]byte) *uint256.Int {
	var wide [64]byte
	copy(wide[:32], a[:])
	copy(wide[32:], b[:])
	return ReduceToPrime254(wide[:])
}
