// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import (
	"encoding/binary"
	"fmt"

	"github.com/EqualFiLabs/zkd/crypto"
)

// Comm32 is a 32-byte commitment.
type Comm32 [32]byte

// Bytes returns the commitment bytes.
func (c Comm32) Bytes() [32]byte { return [32]byte(c) }

// Witness is the opening of a basic commitment: message and blinding.
type Witness struct {
	Msg   []byte
	Blind []byte
}

// Scheme32 is a commitment scheme over 32-byte digests. The placeholder and
// the BN254 committer both implement it, so real curve math is a drop-in.
type Scheme32 interface {
	// Commit produces a 32-byte commitment.
	Commit(w *Witness) (Comm32, error)
	// Open verifies an opening against a commitment.
	Open(w *Witness, commitment Comm32) (bool, error)
	// ID names the scheme (e.g. "pedersen").
	ID() string
}

// PedersenParams selects the hash backing the placeholder scheme.
type PedersenParams struct {
	// HashID is a crypto registry id: blake3, keccak256, poseidon2, rescue.
	HashID string
}

// DefaultPedersenParams uses blake3.
func DefaultPedersenParams() PedersenParams {
	return PedersenParams{HashID: crypto.HashBlake3}
}

// PedersenPlaceholder is a Pedersen-like commitment over a domain-separated
// hash: C = H("PEDERSEN", len(m) || m || len(r) || r). The lengths avoid
// message/blinding ambiguity. Real elliptic-curve Pedersen replaces the
// internals without changing the surface.
type PedersenPlaceholder struct {
	params PedersenParams
}

// NewPedersenPlaceholder builds the placeholder scheme.
func NewPedersenPlaceholder(params PedersenParams) *PedersenPlaceholder {
	return &PedersenPlaceholder{params: params}
}

// HashID returns the hash id backing the scheme.
func (p *PedersenPlaceholder) HashID() string { return p.params.HashID }

func (p *PedersenPlaceholder) commitRaw(msg, blind []byte) ([32]byte, error) {
	buf := make([]byte, 0, 16+len(msg)+len(blind))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(msg)))
	buf = append(buf, msg...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(blind)))
	buf = append(buf, blind...)

	digest, ok := crypto.Hash32ByID(p.params.HashID, "PEDERSEN", buf)
	if !ok {
		return [32]byte{}, fmt.Errorf("%w '%s'", ErrUnsupportedHash, p.params.HashID)
	}
	return digest, nil
}

func (p *PedersenPlaceholder) Commit(w *Witness) (Comm32, error) {
	digest, err := p.commitRaw(w.Msg, w.Blind)
	if err != nil {
		return Comm32{}, err
	}
	return Comm32(digest), nil
}

func (p *PedersenPlaceholder) Open(w *Witness, commitment Comm32) (bool, error) {
	digest, err := p.commitRaw(w.Msg, w.Blind)
	if err != nil {
		return false, err
	}
	return Comm32(digest) == commitment, nil
}

func (p *PedersenPlaceholder) ID() string { return "pedersen" }
