// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/EqualFiLabs/zkd/crypto"
)

// Bn254Committer is a real Pedersen committer on BN254: C = v*G + r*H with
// H derived by hash-to-curve so nobody knows its discrete log. It exposes
// the same Scheme32 surface as the placeholder and is selectable by curve
// id "bn254" in the commit tooling. Commitments are digested to 32 bytes;
// the full points are cached so homomorphic addition stays available.
type Bn254Committer struct {
	g bn254.G1Affine
	h bn254.G1Affine

	mu     sync.RWMutex
	points map[[32]byte]bn254.G1Affine
}

// NewBn254Committer builds a committer with the standard G1 generator and a
// nothing-up-my-sleeve blinding generator.
func NewBn254Committer() *Bn254Committer {
	c := &Bn254Committer{points: make(map[[32]byte]bn254.G1Affine)}
	_, _, g1, _ := bn254.Generators()
	c.g = g1
	c.h = hashToG1("zkd_Pedersen_H_Generator")
	return c
}

// hashToG1 derives a curve point from a seed by try-and-increment: hash the
// seed with a counter, interpret as x, and solve y^2 = x^3 + 3.
func hashToG1(seed string) bn254.G1Affine {
	var point bn254.G1Affine
	for counter := 0; counter < 256; counter++ {
		digest, _ := crypto.Hash32ByID(crypto.HashBlake3, "MAP2CURVE", append([]byte(seed), byte(counter)))

		var x fp.Element
		x.SetBytes(digest[:])

		var x2, x3, rhs fp.Element
		x2.Square(&x)
		x3.Mul(&x2, &x)
		var three fp.Element
		three.SetInt64(3)
		rhs.Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&rhs) != nil {
			point.X = x
			point.Y = y
			if point.IsOnCurve() && !point.IsInfinity() {
				return point
			}
		}
	}
	// Unreachable with a fixed seed; fall back to the base generator.
	_, _, g1, _ := bn254.Generators()
	return g1
}

func scalarFromBytes(data []byte) fr.Element {
	var e fr.Element
	if len(data) <= 32 {
		e.SetBytes(data)
		return e
	}
	digest, _ := crypto.Hash32ByID(crypto.HashBlake3, "BN254.SCALAR", data)
	e.SetBytes(digest[:])
	return e
}

func (c *Bn254Committer) store(p *bn254.G1Affine) [32]byte {
	raw := p.RawBytes()
	digest, _ := crypto.Hash32ByID(crypto.HashBlake3, "BN254.POINT", raw[:])
	c.mu.Lock()
	c.points[digest] = *p
	c.mu.Unlock()
	return digest
}

func (c *Bn254Committer) lookup(key [32]byte) (bn254.G1Affine, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.points[key]
	return p, ok
}

func (c *Bn254Committer) commitPoint(msg, blind []byte) bn254.G1Affine {
	v := scalarFromBytes(msg)
	r := scalarFromBytes(blind)

	var vG, rH bn254.G1Affine
	vG.ScalarMultiplication(&c.g, v.BigInt(new(big.Int)))
	rH.ScalarMultiplication(&c.h, r.BigInt(new(big.Int)))

	var commitment bn254.G1Affine
	commitment.Add(&vG, &rH)
	return commitment
}

// Commit computes C = v*G + r*H and returns its 32-byte digest.
func (c *Bn254Committer) Commit(w *Witness) (Comm32, error) {
	point := c.commitPoint(w.Msg, w.Blind)
	return Comm32(c.store(&point)), nil
}

// Open recomputes the commitment point for the witness and compares.
func (c *Bn254Committer) Open(w *Witness, commitment Comm32) (bool, error) {
	point := c.commitPoint(w.Msg, w.Blind)
	if cached, ok := c.lookup(commitment.Bytes()); ok {
		return cached.Equal(&point), nil
	}
	raw := point.RawBytes()
	digest, _ := crypto.Hash32ByID(crypto.HashBlake3, "BN254.POINT", raw[:])
	return Comm32(digest) == commitment, nil
}

// Add combines two cached commitments homomorphically:
// C1 + C2 = (v1+v2)*G + (r1+r2)*H.
func (c *Bn254Committer) Add(c1, c2 Comm32) (Comm32, error) {
	p1, ok := c.lookup(c1.Bytes())
	if !ok {
		return Comm32{}, ErrInvalidCurvePoint
	}
	p2, ok := c.lookup(c2.Bytes())
	if !ok {
		return Comm32{}, ErrInvalidCurvePoint
	}
	var sum bn254.G1Affine
	sum.Add(&p1, &p2)
	return Comm32(c.store(&sum)), nil
}

func (c *Bn254Committer) ID() string { return "pedersen-bn254" }

// SchemeForCurve selects a commitment scheme by curve id: "placeholder"
// (or empty) gets the hash-based placeholder, "bn254" the real committer.
func SchemeForCurve(curve, hashID string) (Scheme32, error) {
	switch curve {
	case "", "placeholder":
		return NewPedersenPlaceholder(PedersenParams{HashID: hashID}), nil
	case "bn254":
		return NewBn254Committer(), nil
	default:
		return nil, ErrUnsupportedCurve
	}
}
