// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package air implements the backend-neutral AIR intermediate representation:
// the on-disk program schema (TOML or YAML), its validation rules, and the
// commitment-binding resolution consumed by the validator and the proving
// backends.
package air

import (
	"fmt"
	"regexp"

	"github.com/EqualFiLabs/zkd/crypto"
)

// Hash ids accepted in meta.hash. Keccak is deliberately absent here: the
// transcript hash set is narrower than the full crypto registry.
var metaHashes = map[string]bool{
	crypto.HashPoseidon2: true,
	crypto.HashBlake3:    true,
	crypto.HashRescue:    true,
}

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_\-]{2,64}$`)

// Meta describes the program identity and transcript selections.
type Meta struct {
	Name       string `toml:"name" yaml:"name" json:"name"`
	Field      string `toml:"field" yaml:"field" json:"field"`
	Hash       string `toml:"hash" yaml:"hash" json:"hash"`
	Backend    string `toml:"backend,omitempty" yaml:"backend,omitempty" json:"backend,omitempty"`
	Profile    string `toml:"profile,omitempty" yaml:"profile,omitempty" json:"profile,omitempty"`
	DegreeHint *uint32 `toml:"degree_hint,omitempty" yaml:"degree_hint,omitempty" json:"degree_hint,omitempty"`
}

// Columns counts the trace layout.
type Columns struct {
	TraceCols    uint32 `toml:"trace_cols" yaml:"trace_cols" json:"trace_cols"`
	ConstCols    uint32 `toml:"const_cols,omitempty" yaml:"const_cols,omitempty" json:"const_cols,omitempty"`
	PeriodicCols uint32 `toml:"periodic_cols,omitempty" yaml:"periodic_cols,omitempty" json:"periodic_cols,omitempty"`
}

// Constraints bounds the constraint system shape.
type Constraints struct {
	TransitionCount uint32 `toml:"transition_count" yaml:"transition_count" json:"transition_count"`
	BoundaryCount   uint32 `toml:"boundary_count,omitempty" yaml:"boundary_count,omitempty" json:"boundary_count,omitempty"`
}

// Public input type tags.
const (
	PublicField = "field"
	PublicBytes = "bytes"
	PublicU64   = "u64"
)

// PublicInput declares one named public input. Type defaults to "field"
// when omitted.
type PublicInput struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Ty   string `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
}

// Program is the parsed on-disk AIR source, prior to binding resolution.
type Program struct {
	Meta         Meta          `toml:"meta" yaml:"meta" json:"meta"`
	Columns      Columns       `toml:"columns" yaml:"columns" json:"columns"`
	Constraints  Constraints   `toml:"constraints" yaml:"constraints" json:"constraints"`
	RowsHint     *uint32       `toml:"rows_hint,omitempty" yaml:"rows_hint,omitempty" json:"rows_hint,omitempty"`
	PublicInputs []PublicInput `toml:"public_inputs,omitempty" yaml:"public_inputs,omitempty" json:"public_inputs,omitempty"`
	Commitments  *Commitments  `toml:"-" yaml:"-" json:"commitments,omitempty"`
}

// Validate enforces the AIR-level schema invariants.
func (p *Program) Validate() error {
	if !nameRe.MatchString(p.Meta.Name) {
		return fmt.Errorf("invalid meta.name '%s'", p.Meta.Name)
	}
	if len(p.Meta.Field) == 0 {
		return fmt.Errorf("meta.field cannot be empty")
	}
	if !metaHashes[p.Meta.Hash] {
		return fmt.Errorf("unsupported meta.hash '%s'", p.Meta.Hash)
	}
	if p.Columns.TraceCols == 0 {
		return fmt.Errorf("columns.trace_cols must be > 0")
	}
	if p.Columns.TraceCols > 2048 {
		return fmt.Errorf("columns.trace_cols too large (>2048) for default limits")
	}
	if p.Constraints.TransitionCount == 0 {
		return fmt.Errorf("constraints.transition_count must be > 0")
	}
	if d := p.Meta.DegreeHint; d != nil && (*d == 0 || *d > 64) {
		return fmt.Errorf("degree_hint out of range [1..64]")
	}
	if p.RowsHint != nil {
		r := *p.RowsHint
		if r < 1<<3 || r > 1<<22 {
			return fmt.Errorf("rows_hint out of range [2^3 .. 2^22]")
		}
		if r&(r-1) != 0 {
			return fmt.Errorf("rows_hint must be a power of two")
		}
	}
	seen := make(map[string]bool, len(p.PublicInputs))
	for i := range p.PublicInputs {
		pi := &p.PublicInputs[i]
		if pi.Name == "" {
			return fmt.Errorf("public input %d has no name", i)
		}
		if seen[pi.Name] {
			return fmt.Errorf("duplicate public input '%s'", pi.Name)
		}
		seen[pi.Name] = true
		switch pi.Ty {
		case "":
			pi.Ty = PublicField
		case PublicField, PublicBytes, PublicU64:
		default:
			return fmt.Errorf("public input '%s' has unknown type '%s'", pi.Name, pi.Ty)
		}
	}
	return nil
}
