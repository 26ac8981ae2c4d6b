// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/profile"
)

// profilesDir is where profile TOML overrides are looked up, relative to
// the working directory. Builtins apply when it is absent.
const profilesDir = "profiles"

// selectorFlags are the backend/profile selectors shared by prove, verify,
// and validate.
type selectorFlags struct {
	backendID     string
	field         string
	hash          string
	friArity      uint32
	needRecursion bool
	profileID     string
}

func (s *selectorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.backendID, "backend", "", "backend id, e.g. native@0.0")
	cmd.Flags().StringVar(&s.field, "field", "", "field id, e.g. Prime254")
	cmd.Flags().StringVar(&s.hash, "hash", "", "hash id, e.g. blake3")
	cmd.Flags().Uint32Var(&s.friArity, "fri-arity", 0, "FRI arity (2, 4, ...)")
	cmd.Flags().BoolVar(&s.needRecursion, "need-recursion", false, "require recursion capability")
	cmd.Flags().StringVar(&s.profileID, "profile", "", "profile id, e.g. balanced")
	for _, name := range []string{"backend", "field", "hash", "fri-arity", "profile"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (s *selectorFlags) config() backend.Config {
	return backend.NewConfig(s.backendID, s.field, s.hash, s.friArity, s.needRecursion, s.profileID)
}

func loadProfiles() ([]profile.Profile, error) {
	return profile.LoadDir(profilesDir)
}

func readFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read '%s': %w", path, err)
	}
	return string(data), nil
}

func readFileBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	return data, nil
}

func writeFileBytes(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dir '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}
