// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import "github.com/EqualFiLabs/zkd/crypto"

// Hash64 computes the 64-bit header hash H(label || data) under the
// centralized policy hash.
func Hash64(label string, data []byte) uint64 {
	v, ok := crypto.Hash64ByID(HeaderHashID, label, data)
	if !ok {
		// HeaderHashID is a compile-time constant of the registry; this is
		// unreachable unless the registry itself regresses.
		panic("proof: header hash id not supported")
	}
	return v
}
