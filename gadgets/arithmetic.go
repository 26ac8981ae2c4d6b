// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import (
	"encoding/binary"
	"fmt"

	"github.com/EqualFiLabs/zkd/crypto"
)

// Arithmetic under commitments, placeholder semantics. Messages are u64
// values encoded canonically as 8-byte little endian; combined blinds are
// derived deterministically by domain-separated hashing so recomputed
// commitments are reproducible. The placeholder does not preserve the
// homomorphic structure real Pedersen would; callers get deterministic glue
// with the final surface.

// EncodeU64LE is the canonical message encoding.
func EncodeU64LE(x uint64) [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], x)
	return out
}

func combineBlinds(hashID, label string, b1, b2 []byte) ([]byte, error) {
	buf := make([]byte, 0, 16+len(b1)+len(b2))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b1)))
	buf = append(buf, b1...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b2)))
	buf = append(buf, b2...)
	digest, ok := crypto.Hash32ByID(hashID, label, buf)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedHash, hashID)
	}
	return digest[:], nil
}

// CommitU64 commits a u64 message with the given blinding.
func CommitU64(ped *PedersenPlaceholder, x uint64, blind []byte) (Comm32, error) {
	msg := EncodeU64LE(x)
	return ped.Commit(&Witness{Msg: msg[:], Blind: blind})
}

// AddUnderCommit computes Csum = commit(m1+m2, r12) where
// r12 = H("PEDERSEN.ADD", r1 || r2). Returns the commitment and r12.
func AddUnderCommit(ped *PedersenPlaceholder, m1 uint64, r1 []byte, m2 uint64, r2 []byte) (Comm32, []byte, error) {
	r12, err := combineBlinds(ped.HashID(), "PEDERSEN.ADD", r1, r2)
	if err != nil {
		return Comm32{}, nil, err
	}
	sum, err := CommitU64(ped, m1+m2, r12)
	if err != nil {
		return Comm32{}, nil, err
	}
	return sum, r12, nil
}

// ScalarMulUnderCommit computes C' = commit(k*m, r') where
// r' = H("PEDERSEN.SCALAR", r || k_le). Returns the commitment and r'.
func ScalarMulUnderCommit(ped *PedersenPlaceholder, m uint64, r []byte, k uint64) (Comm32, []byte, error) {
	kLE := EncodeU64LE(k)
	buf := make([]byte, 0, len(r)+8)
	buf = append(buf, r...)
	buf = append(buf, kLE[:]...)
	digest, ok := crypto.Hash32ByID(ped.HashID(), "PEDERSEN.SCALAR", buf)
	if !ok {
		return Comm32{}, nil, fmt.Errorf("%w '%s'", ErrUnsupportedHash, ped.HashID())
	}
	prime, err := CommitU64(ped, m*k, digest[:])
	if err != nil {
		return Comm32{}, nil, err
	}
	return prime, digest[:], nil
}
