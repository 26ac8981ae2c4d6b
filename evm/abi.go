// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm bridges proof envelopes onto Solidity ABI surfaces: transport
// containers for metadata, body, and public IO, plus the canonical on-chain
// digest D.
package evm

import (
	"fmt"

	"github.com/luxfi/geth/accounts/abi"

	"github.com/EqualFiLabs/zkd/proof"
)

// ABI containers:
//
//	struct EvmProofMeta { uint64 backendId; uint64 profileId; uint64 pubioHash; uint64 bodyLen; }
//	struct EvmPublicIO  { bytes data; }
//	struct EvmProofBody { bytes data; }  (transported as a bare bytes argument)
var (
	metaArgs     abi.Arguments
	bodyArgs     abi.Arguments
	publicIOArgs abi.Arguments
)

type evmProofMeta struct {
	BackendId uint64
	ProfileId uint64
	PubioHash uint64
	BodyLen   uint64
}

type evmPublicIO struct {
	Data []byte
}

func mustType(t abi.Type, err error) abi.Type {
	if err != nil {
		panic(fmt.Sprintf("evm: abi type construction failed: %v", err))
	}
	return t
}

func init() {
	metaType := mustType(abi.NewType("tuple", "EvmProofMeta", []abi.ArgumentMarshaling{
		{Name: "backendId", Type: "uint64"},
		{Name: "profileId", Type: "uint64"},
		{Name: "pubioHash", Type: "uint64"},
		{Name: "bodyLen", Type: "uint64"},
	}))
	bytesType := mustType(abi.NewType("bytes", "", nil))
	publicIOType := mustType(abi.NewType("tuple", "EvmPublicIO", []abi.ArgumentMarshaling{
		{Name: "data", Type: "bytes"},
	}))

	metaArgs = abi.Arguments{{Type: metaType}}
	bodyArgs = abi.Arguments{{Type: bytesType}}
	publicIOArgs = abi.Arguments{{Type: publicIOType}}
}

// EncodeMeta packs the proof header into the EvmProofMeta container.
func EncodeMeta(header *proof.Header) ([]byte, error) {
	return metaArgs.Pack(evmProofMeta{
		BackendId: header.BackendIDHash,
		ProfileId: header.ProfileIDHash,
		PubioHash: header.PubIOHash,
		BodyLen:   header.BodyLen,
	})
}

// DecodeMeta unpacks an EvmProofMeta container back into a header.
func DecodeMeta(data []byte) (*proof.Header, error) {
	values, err := metaArgs.Unpack(data)
	if err != nil {
		return nil, err
	}
	meta := *abi.ConvertType(values[0], new(evmProofMeta)).(*evmProofMeta)
	return &proof.Header{
		BackendIDHash: meta.BackendId,
		ProfileIDHash: meta.ProfileId,
		PubIOHash:     meta.PubioHash,
		BodyLen:       meta.BodyLen,
	}, nil
}

// EncodeBody packs body bytes as a single bytes argument.
func EncodeBody(body []byte) ([]byte, error) {
	return bodyArgs.Pack(body)
}

// DecodeBody unpacks body bytes.
func DecodeBody(data []byte) ([]byte, error) {
	values, err := bodyArgs.Unpack(data)
	if err != nil {
		return nil, err
	}
	return values[0].([]byte), nil
}

// EncodePublicIO packs the canonical public inputs JSON.
func EncodePublicIO(inputsJSON string) ([]byte, error) {
	return publicIOArgs.Pack(evmPublicIO{Data: []byte(inputsJSON)})
}

// DecodePublicIO unpacks the public inputs JSON.
func DecodePublicIO(data []byte) (string, error) {
	values, err := publicIOArgs.Unpack(data)
	if err != nil {
		return "", err
	}
	decoded := *abi.ConvertType(values[0], new(evmPublicIO)).(*evmPublicIO)
	return string(decoded.Data), nil
}
