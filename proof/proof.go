// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proof implements the deterministic proof envelope: the fixed
// 40-byte little-endian header, blob assembly, and the 64-bit header hashing
// policy.
package proof

import (
	"encoding/binary"
	"fmt"
)

// HeaderHashID pins the header hashing policy. Phase-0 keeps BLAKE3 for
// stability even when the AIR selects poseidon2 or rescue; any policy bump
// must be coordinated with on-chain consumers.
const HeaderHashID = "blake3"

// Magic and version of the envelope format.
var Magic = [4]byte{'P', 'R', 'O', 'F'}

const (
	Version    uint32 = 1
	HeaderSize        = 40
)

// Header hash labels.
const (
	LabelBackend = "BACKEND"
	LabelProfile = "PROFILE"
	LabelPubIO   = "PUBIO"
)

// CorruptError marks any proof-corruption condition: short blob, bad magic,
// version mismatch, body-length mismatch, or a digest mismatch found during
// verification. All map to the same exit code by contract.
type CorruptError struct {
	Reason string
}

func (e *CorruptError) Error() string { return e.Reason }

// Corrupt builds a CorruptError with a formatted reason.
func Corrupt(format string, args ...any) error {
	return &CorruptError{Reason: fmt.Sprintf(format, args...)}
}

// Header is the fixed-size proof header.
//
// Layout (little endian):
//
//	0..4   MAGIC "PROF"
//	4..8   VERSION (u32)
//	8..16  backend_id_hash (u64)
//	16..24 profile_id_hash (u64)
//	24..32 pubio_hash (u64)      -- hash of the canonical public inputs JSON
//	32..40 body_len (u64)
type Header struct {
	BackendIDHash uint64 `json:"backend_id_hash"`
	ProfileIDHash uint64 `json:"profile_id_hash"`
	PubIOHash     uint64 `json:"pubio_hash"`
	BodyLen       uint64 `json:"body_len"`
}

// Encode serializes the header. Total on valid headers; never fails.
func (h *Header) Encode() [HeaderSize]byte {
	var out [HeaderSize]byte
	copy(out[0:4], Magic[:])
	binary.LittleEndian.PutUint32(out[4:8], Version)
	binary.LittleEndian.PutUint64(out[8:16], h.BackendIDHash)
	binary.LittleEndian.PutUint64(out[16:24], h.ProfileIDHash)
	binary.LittleEndian.PutUint64(out[24:32], h.PubIOHash)
	binary.LittleEndian.PutUint64(out[32:40], h.BodyLen)
	return out
}

// Decode parses a header from the front of a blob. Short input, wrong magic,
// and unsupported versions are rejected as corrupt.
func Decode(blob []byte) (*Header, error) {
	if len(blob) < HeaderSize {
		return nil, Corrupt("proof too short for header")
	}
	if [4]byte(blob[0:4]) != Magic {
		return nil, Corrupt("bad magic")
	}
	if ver := binary.LittleEndian.Uint32(blob[4:8]); ver != Version {
		return nil, Corrupt("unsupported proof version %d", ver)
	}
	return &Header{
		BackendIDHash: binary.LittleEndian.Uint64(blob[8:16]),
		ProfileIDHash: binary.LittleEndian.Uint64(blob[16:24]),
		PubIOHash:     binary.LittleEndian.Uint64(blob[24:32]),
		BodyLen:       binary.LittleEndian.Uint64(blob[32:40]),
	}, nil
}

// Assemble concatenates header and body into the full blob.
func Assemble(h *Header, body []byte) []byte {
	encoded := h.Encode()
	out := make([]byte, 0, HeaderSize+len(body))
	out = append(out, encoded[:]...)
	out = append(out, body...)
	return out
}
