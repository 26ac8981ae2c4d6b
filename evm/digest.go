// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"

	"github.com/EqualFiLabs/zkd/crypto"
	"github.com/EqualFiLabs/zkd/proof"
)

// Digest input container:
//
//	struct EvmDigestInput {
//	    uint64 backendIdHash; uint64 profileIdHash; uint64 pubioHash;
//	    uint64 bodyLen; bytes body;
//	}
var digestArgs abi.Arguments

type evmDigestInput struct {
	BackendIdHash uint64
	ProfileIdHash uint64
	PubioHash     uint64
	BodyLen       uint64
	Body          []byte
}

func init() {
	digestType := mustType(abi.NewType("tuple", "EvmDigestInput", []abi.ArgumentMarshaling{
		{Name: "backendIdHash", Type: "uint64"},
		{Name: "profileIdHash", Type: "uint64"},
		{Name: "pubioHash", Type: "uint64"},
		{Name: "bodyLen", Type: "uint64"},
		{Name: "body", Type: "bytes"},
	}))
	digestArgs = abi.Arguments{{Type: digestType}}
}

// Keccak256 hashes raw bytes with the bridge's digest hash.
func Keccak256(data []byte) [32]byte {
	return crypto.HashOneShot(crypto.NewKeccak256, data)
}

// DigestD computes the canonical on-chain digest:
// keccak256(abi_encode(EvmDigestInput)). It is deterministic and
// bit-identical across backends that produce the same (header, body).
func DigestD(header *proof.Header, body []byte) (common.Hash, error) {
	encoded, err := digestArgs.Pack(evmDigestInput{
		BackendIdHash: header.BackendIDHash,
		ProfileIdHash: header.ProfileIDHash,
		PubioHash:     header.PubIOHash,
		BodyLen:       header.BodyLen,
		Body:          body,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(Keccak256(encoded)), nil
}

// DigestFromProof decodes a full proof blob and computes D over it. The
// blob's body length must match the header.
func DigestFromProof(blob []byte) (common.Hash, error) {
	header, err := proof.Decode(blob)
	if err != nil {
		return common.Hash{}, err
	}
	body := blob[proof.HeaderSize:]
	if uint64(len(body)) != header.BodyLen {
		return common.Hash{}, proof.Corrupt("body length mismatch")
	}
	return DigestD(header, body)
}
