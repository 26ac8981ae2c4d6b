// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import "github.com/EqualFiLabs/zkd/crypto"

// CommitmentsPolicy is the runtime policy slice of the commitments section.
type CommitmentsPolicy struct {
	Pedersen bool   `json:"pedersen"`
	Curve    string `json:"curve,omitempty"`
	NoRReuse bool   `json:"no_r_reuse"`
}

// Bindings carries the selections the gadget validator needs: commitment
// policy plus the hash id used for commitments (which may differ from the
// transcript hash).
type Bindings struct {
	Commitments          CommitmentsPolicy `json:"commitments"`
	HashIDForCommitments string            `json:"hash_id_for_commitments,omitempty"`
}

// BindingsFromProgram derives the gadget policy from a parsed program.
// Blinding reuse is permitted unless the program says otherwise; the
// commitment hash follows meta.hash when it is blake3, poseidon2 or rescue
// and falls back to blake3 otherwise.
func BindingsFromProgram(program *Program) Bindings {
	policy := CommitmentsPolicy{}
	if program.Commitments != nil {
		policy.Pedersen = program.Commitments.Pedersen
		policy.Curve = program.Commitments.Curve
	}

	hashID := crypto.HashBlake3
	switch program.Meta.Hash {
	case crypto.HashBlake3, crypto.HashPoseidon2, crypto.HashRescue:
		hashID = program.Meta.Hash
	}

	return Bindings{
		Commitments:          policy,
		HashIDForCommitments: hashID,
	}
}

// BindingsFromIR derives the gadget policy from a resolved IR.
func BindingsFromIR(ir *IR) Bindings {
	policy := CommitmentsPolicy{}
	for _, b := range ir.Bindings {
		if b.Kind == KindPedersen {
			policy.Pedersen = true
			if policy.Curve == "" {
				policy.Curve = b.Curve
			}
		}
	}

	hashID := crypto.HashBlake3
	switch ir.Meta.Hash {
	case crypto.HashBlake3, crypto.HashPoseidon2, crypto.HashRescue:
		hashID = ir.Meta.Hash
	}

	return Bindings{
		Commitments:          policy,
		HashIDForCommitments: hashID,
	}
}
