// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags a commitment binding.
type Kind string

const (
	KindPedersen       Kind = "pedersen"
	KindPoseidonCommit Kind = "poseidon_commit"
	KindKeccakCommit   Kind = "keccak_commit"
)

// Binding associates a commitment kind with public inputs declared by the
// AIR. Curve is meaningful for Pedersen only.
type Binding struct {
	Kind         Kind     `json:"kind"`
	Curve        string   `json:"curve,omitempty"`
	PublicInputs []string `json:"public,omitempty"`
}

// Commitments is the normalized commitments section. The on-disk file may
// use any of three syntactic forms (legacy flat, table, list); all collapse
// into the binding list plus the legacy pedersen/curve summary.
type Commitments struct {
	Pedersen bool      `json:"pedersen"`
	Curve    string    `json:"curve,omitempty"`
	Bindings []Binding `json:"bindings,omitempty"`
}

func (c *Commitments) noteBinding(b Binding) {
	if b.Kind == KindPedersen {
		c.Pedersen = true
		if c.Curve == "" && b.Curve != "" {
			c.Curve = b.Curve
		}
	}
	c.Bindings = append(c.Bindings, b)
}

// buildCommitments normalizes the raw decoded commitments value. TOML and
// YAML both deliver either a map (legacy or table form) or a slice (list
// form) of loosely typed values.
func buildCommitments(raw any) (*Commitments, error) {
	switch v := raw.(type) {
	case map[string]any:
		return buildFromMap(v)
	case []any:
		return buildFromList(v)
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("commitments must be a table or a list")
	}
}

func buildFromMap(m map[string]any) (*Commitments, error) {
	if isLegacyFlat(m) {
		return buildLegacy(m)
	}
	out := &Commitments{}
	// Deterministic order: table keys sorted, matching BTreeMap iteration.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, name := range keys {
		entry, ok := m[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("commitment '%s' must be a table", name)
		}
		binding, err := buildEntry(name, entry)
		if err != nil {
			return nil, err
		}
		out.noteBinding(binding)
	}
	return out, nil
}

// isLegacyFlat reports whether the map is the legacy flat form:
// { pedersen = bool, curve = "..." }.
func isLegacyFlat(m map[string]any) bool {
	if _, ok := m["pedersen"].(bool); !ok {
		return false
	}
	for k := range m {
		if k != "pedersen" && k != "curve" {
			return false
		}
	}
	return true
}

func buildLegacy(m map[string]any) (*Commitments, error) {
	out := &Commitments{}
	pedersen := m["pedersen"].(bool)
	curve := ""
	if c, present := m["curve"]; present {
		s, ok := c.(string)
		if !ok {
			return nil, fmt.Errorf("commitments.curve must be a string")
		}
		curve = s
	}
	out.Pedersen = pedersen
	out.Curve = curve
	if pedersen {
		out.Bindings = append(out.Bindings, Binding{Kind: KindPedersen, Curve: curve})
	}
	return out, nil
}

func buildFromList(list []any) (*Commitments, error) {
	out := &Commitments{}
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("commitments[%d] must be a table", i)
		}
		kindRaw, ok := entry["kind"].(string)
		if !ok {
			return nil, fmt.Errorf("commitments[%d] is missing a kind", i)
		}
		rest := make(map[string]any, len(entry))
		for k, v := range entry {
			if k != "kind" {
				rest[k] = v
			}
		}
		binding, err := buildEntry(normalizeKind(kindRaw), rest)
		if err != nil {
			return nil, err
		}
		out.noteBinding(binding)
	}
	return out, nil
}

// buildEntry constructs a binding from a table-form key (or normalized
// list-form kind) and its { curve?, public[] } fields.
func buildEntry(name string, entry map[string]any) (Binding, error) {
	var curve string
	var curveSet bool
	var public []string
	for k, v := range entry {
		switch k {
		case "curve":
			s, ok := v.(string)
			if !ok {
				return Binding{}, fmt.Errorf("commitment '%s' curve must be a string", name)
			}
			curve = s
			curveSet = true
		case "public":
			items, ok := v.([]any)
			if !ok {
				return Binding{}, fmt.Errorf("commitment '%s' public must be a list", name)
			}
			for _, item := range items {
				s, ok := item.(string)
				if !ok {
					return Binding{}, fmt.Errorf("commitment '%s' public entries must be strings", name)
				}
				public = append(public, s)
			}
		default:
			return Binding{}, fmt.Errorf("unknown key '%s' in commitment '%s'", k, name)
		}
	}

	switch name {
	case "pedersen":
		return Binding{Kind: KindPedersen, Curve: curve, PublicInputs: public}, nil
	case "poseidon_commit":
		if curveSet {
			return Binding{}, fmt.Errorf("commitment kind 'poseidon_commit' does not take a curve")
		}
		return Binding{Kind: KindPoseidonCommit, PublicInputs: public}, nil
	case "keccak_commit":
		if curveSet {
			return Binding{}, fmt.Errorf("commitment kind 'keccak_commit' does not take a curve")
		}
		return Binding{Kind: KindKeccakCommit, PublicInputs: public}, nil
	default:
		return Binding{}, fmt.Errorf("unknown commitment kind '%s'", name)
	}
}

// normalizeKind maps list-form kind spellings (Pedersen, poseidonCommit,
// keccak_commit, ...) onto the table-form keys, ignoring case and
// underscores. Other spellings, PedersenCommit among them, pass through
// unchanged and are rejected as unknown kinds.
func normalizeKind(kind string) string {
	folded := strings.ToLower(strings.ReplaceAll(kind, "_", ""))
	switch folded {
	case "pedersen":
		return "pedersen"
	case "poseidoncommit":
		return "poseidon_commit"
	case "keccakcommit":
		return "keccak_commit"
	default:
		return kind
	}
}
