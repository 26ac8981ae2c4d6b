// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// rawProgram mirrors Program but captures the commitments section loosely:
// the three accepted syntactic forms are disambiguated after decoding.
type rawProgram struct {
	Meta         Meta          `toml:"meta" yaml:"meta"`
	Columns      Columns       `toml:"columns" yaml:"columns"`
	Constraints  Constraints   `toml:"constraints" yaml:"constraints"`
	RowsHint     *uint32       `toml:"rows_hint" yaml:"rows_hint"`
	PublicInputs []PublicInput `toml:"public_inputs" yaml:"public_inputs"`
	Commitments  any           `toml:"commitments" yaml:"commitments"`
}

func (r *rawProgram) finish() (*Program, error) {
	commitments, err := buildCommitments(normalizeAny(r.Commitments))
	if err != nil {
		return nil, err
	}
	program := &Program{
		Meta:         r.Meta,
		Columns:      r.Columns,
		Constraints:  r.Constraints,
		RowsHint:     r.RowsHint,
		PublicInputs: r.PublicInputs,
		Commitments:  commitments,
	}
	if err := program.Validate(); err != nil {
		return nil, err
	}
	return program, nil
}

// normalizeAny rewrites decoder-specific container types (yaml map keys,
// toml slices) into map[string]any / []any so the commitment builder sees
// one shape.
func normalizeAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeAny(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprintf("%v", k)
			}
			out[key] = normalizeAny(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeAny(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeAny(val)
		}
		return out
	default:
		return v
	}
}

// ParseTOML parses AIR source in TOML form. Unknown keys are rejected.
func ParseTOML(src string) (*Program, error) {
	var raw rawProgram
	md, err := toml.Decode(src, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing AIR source: %w", err)
	}
	// Keys under commitments land in a loosely typed value, which the toml
	// decoder reports as undecoded; the commitment builder checks those.
	for _, key := range md.Undecoded() {
		if len(key) > 0 && key[0] == "commitments" {
			continue
		}
		return nil, fmt.Errorf("unknown key '%s' in AIR source", key.String())
	}
	return raw.finish()
}

// ParseYAML parses AIR source in YAML form. Unknown keys are rejected.
func ParseYAML(src string) (*Program, error) {
	dec := yaml.NewDecoder(bytes.NewReader([]byte(src)))
	dec.KnownFields(true)
	var raw rawProgram
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing AIR YAML: %w", err)
	}
	return raw.finish()
}

// LoadProgram reads and parses an AIR file, dispatching on extension:
// .yaml/.yml go through the YAML parser, everything else (canonically .air)
// is TOML.
func LoadProgram(path string) (*Program, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading AIR file %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(string(contents))
	default:
		return ParseTOML(string(contents))
	}
}

// ParseFile loads a program and resolves it into the validated IR.
func ParseFile(path string) (*IR, error) {
	program, err := LoadProgram(path)
	if err != nil {
		return nil, err
	}
	return NewIR(program)
}

// ParseString parses TOML AIR source and resolves it into the validated IR.
func ParseString(src string) (*IR, error) {
	program, err := ParseTOML(src)
	if err != nil {
		return nil, err
	}
	return NewIR(program)
}
