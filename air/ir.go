// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"fmt"
	"strings"
)

// IR is the immutable post-parse representation: the program schema plus the
// resolved commitment binding list.
type IR struct {
	Meta         Meta          `json:"meta"`
	Columns      Columns       `json:"columns"`
	Constraints  Constraints   `json:"constraints"`
	RowsHint     *uint32       `json:"rows_hint,omitempty"`
	PublicInputs []PublicInput `json:"public_inputs,omitempty"`
	Bindings     []Binding     `json:"commitment_bindings,omitempty"`
}

// NewIR resolves a validated program into the IR, checking the binding-level
// invariants: curves present exactly where allowed, every referenced public
// input declared, no duplicate (kind, name) pair.
func NewIR(program *Program) (*IR, error) {
	ir := &IR{
		Meta:         program.Meta,
		Columns:      program.Columns,
		Constraints:  program.Constraints,
		RowsHint:     program.RowsHint,
		PublicInputs: program.PublicInputs,
	}
	if program.Commitments != nil {
		ir.Bindings = program.Commitments.Bindings
	}
	if err := validateBindings(ir); err != nil {
		return nil, err
	}
	return ir, nil
}

type bindingKey struct {
	kind Kind
	name string
}

func validateBindings(ir *IR) error {
	declared := make(map[string]bool, len(ir.PublicInputs))
	for _, pi := range ir.PublicInputs {
		declared[pi.Name] = true
	}

	seen := make(map[bindingKey]bool)
	for _, binding := range ir.Bindings {
		switch binding.Kind {
		case KindPedersen:
			if strings.TrimSpace(binding.Curve) == "" {
				return fmt.Errorf("pedersen commitment requires a curve name")
			}
		case KindPoseidonCommit, KindKeccakCommit:
			if binding.Curve != "" {
				return fmt.Errorf("commitment kind '%s' does not take a curve", binding.Kind)
			}
		default:
			return fmt.Errorf("unknown commitment kind '%s'", binding.Kind)
		}

		for _, name := range binding.PublicInputs {
			if !declared[name] {
				return fmt.Errorf("unknown public input '%s' referenced by %s", name, binding.Kind)
			}
			key := bindingKey{kind: binding.Kind, name: name}
			if seen[key] {
				return fmt.Errorf("public input '%s' already bound to %s", name, binding.Kind)
			}
			seen[key] = true
		}
	}
	return nil
}
