// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import (
	"fmt"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/crypto"
)

// BlindingTracker records blinds used within one session so the no-reuse
// policy can be enforced.
type BlindingTracker struct {
	used map[string]bool
}

// NewBlindingTracker returns an empty tracker.
func NewBlindingTracker() *BlindingTracker {
	return &BlindingTracker{used: make(map[string]bool)}
}

// NoteAndCheck records r. Under the no-reuse policy, a repeated blind
// returns ErrBlindingReuse; otherwise reuse is permitted.
func (t *BlindingTracker) NoteAndCheck(r []byte, noReuse bool) error {
	if !noReuse {
		return nil
	}
	key := string(r)
	if t.used[key] {
		return ErrBlindingReuse
	}
	t.used[key] = true
	return nil
}

// PedersenCommit is the (Cx, Cy) pair derived from a base commitment.
type PedersenCommit struct {
	Cx [32]byte
	Cy [32]byte
}

// PedersenCtx resolves curve and hash selections from AIR bindings into a
// working placeholder commitment context.
type PedersenCtx struct {
	ped      *PedersenPlaceholder
	curve    string
	noRReuse bool
}

// NewPedersenCtx builds a context from AIR bindings. The placeholder serves
// only the "placeholder" curve; anything else is rejected with the
// unsupported-curve code, mirroring the backend capability check.
func NewPedersenCtx(b *air.Bindings) (*PedersenCtx, error) {
	curve := b.Commitments.Curve
	if curve == "" {
		curve = "placeholder"
	}
	if curve != "placeholder" {
		return nil, ErrUnsupportedCurve
	}
	hashID := b.HashIDForCommitments
	if hashID == "" {
		hashID = crypto.HashBlake3
	}
	return &PedersenCtx{
		ped:      NewPedersenPlaceholder(PedersenParams{HashID: hashID}),
		curve:    curve,
		noRReuse: b.Commitments.NoRReuse,
	}, nil
}

// HashID returns the hash id backing the context.
func (c *PedersenCtx) HashID() string { return c.ped.HashID() }

// NoReuse reports the blinding policy.
func (c *PedersenCtx) NoReuse() bool { return c.noRReuse }

// expandToPoint synthesizes placeholder "affine" coordinates by hashing the
// base commitment under two labels; real map-to-point replaces this.
func expandToPoint(hashID string, base Comm32) (PedersenCommit, error) {
	b := base.Bytes()
	cx, ok := crypto.Hash32ByID(hashID, "PEDERSEN.CX", b[:])
	if !ok {
		return PedersenCommit{}, fmt.Errorf("%w '%s'", ErrUnsupportedHash, hashID)
	}
	cy, ok := crypto.Hash32ByID(hashID, "PEDERSEN.CY", b[:])
	if !ok {
		return PedersenCommit{}, fmt.Errorf("%w '%s'", ErrUnsupportedHash, hashID)
	}
	return PedersenCommit{Cx: cx, Cy: cy}, nil
}

// Commit checks the blinding policy, commits, and expands to (Cx, Cy).
func (c *PedersenCtx) Commit(tracker *BlindingTracker, msg, blind []byte) (PedersenCommit, error) {
	if err := tracker.NoteAndCheck(blind, c.noRReuse); err != nil {
		return PedersenCommit{}, err
	}
	base, err := c.ped.Commit(&Witness{Msg: msg, Blind: blind})
	if err != nil {
		return PedersenCommit{}, err
	}
	return expandToPoint(c.ped.HashID(), base)
}

// Open recomputes the (Cx, Cy) pair for the witness and compares. A
// mismatch maps to the invalid-curve-point code, as an on-curve check would
// for real EC math.
func (c *PedersenCtx) Open(msg, blind []byte, commit PedersenCommit) error {
	base, err := c.ped.Commit(&Witness{Msg: msg, Blind: blind})
	if err != nil {
		return err
	}
	expected, err := expandToPoint(c.ped.HashID(), base)
	if err != nil {
		return err
	}
	if commit != expected {
		return ErrInvalidCurvePoint
	}
	return nil
}
