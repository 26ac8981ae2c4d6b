// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package profile manages the named security/performance parameter bundles:
// builtin profiles plus optional TOML overrides loaded from a profiles
// directory.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Profile is a named bundle of proving parameters. Optional fields are
// pointers so an explicit zero is validated rather than read as absent.
type Profile struct {
	ID          string  `toml:"id" json:"id"`
	LambdaBits  uint32  `toml:"lambda_bits" json:"lambda_bits"`
	FriBlowup   *uint32 `toml:"fri_blowup,omitempty" json:"fri_blowup,omitempty"`
	FriQueries  *uint32 `toml:"fri_queries,omitempty" json:"fri_queries,omitempty"`
	GrindBits   uint32  `toml:"grind_bits,omitempty" json:"grind_bits,omitempty"`
	MerkleArity *uint32 `toml:"merkle_arity,omitempty" json:"merkle_arity,omitempty"`
}

// Validate enforces the profile parameter ranges.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("profile id cannot be empty")
	}
	if p.LambdaBits < 64 || p.LambdaBits > 256 {
		return fmt.Errorf("lambda_bits %d out of allowed range [64..256]", p.LambdaBits)
	}
	if a := p.MerkleArity; a != nil && *a != 2 && *a != 4 && *a != 8 {
		return fmt.Errorf("merkle_arity %d must be 2, 4, or 8", *a)
	}
	if b := p.FriBlowup; b != nil && *b < 2 {
		return fmt.Errorf("fri_blowup %d must be >= 2", *b)
	}
	if q := p.FriQueries; q != nil && *q < 16 {
		return fmt.Errorf("fri_queries %d must be >= 16", *q)
	}
	if p.GrindBits > 64 {
		return fmt.Errorf("grind_bits %d too large (>64)", p.GrindBits)
	}
	return nil
}

func u32(v uint32) *uint32 { return &v }

// Builtins returns the default catalog, sorted by id.
func Builtins() []Profile {
	profiles := []Profile{
		{ID: "balanced", LambdaBits: 100, FriBlowup: u32(16), FriQueries: u32(30), GrindBits: 18, MerkleArity: u32(2)},
		{ID: "dev-fast", LambdaBits: 80, FriBlowup: u32(8), FriQueries: u32(24), GrindBits: 16, MerkleArity: u32(2)},
		{ID: "secure", LambdaBits: 120, FriBlowup: u32(32), FriQueries: u32(50), GrindBits: 20, MerkleArity: u32(2)},
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

func readOne(path string) (Profile, error) {
	var p Profile
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("unknown key '%s' in profile %s", undecoded[0].String(), path)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// LoadDir loads every *.toml profile from dir, sorted by id. When the
// directory is missing or holds no profiles, the builtin catalog is
// returned.
func LoadDir(dir string) ([]Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Builtins(), nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var out []Profile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		p, err := readOne(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return Builtins(), nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Lookup finds a profile by id within a catalog.
func Lookup(profiles []Profile, id string) (*Profile, bool) {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], true
		}
	}
	return nil, false
}
