// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command zkd is the proving toolkit CLI: backend/profile listing, proving,
// verification, validation reports, commitment tooling, and the EVM digest.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/proof"
	"github.com/EqualFiLabs/zkd/registry"
)

// Exit codes. Any proof-corruption condition maps to 4; validation and
// other user-level failures to 1; configuration/capability errors to 2.
const (
	exitOK         = 0
	exitUser       = 1
	exitConfig     = 2
	exitCorruption = 4
)

// userError marks a failure that should exit with the user-error code.
type userError struct{ err error }

func (e *userError) Error() string { return e.err.Error() }

var rootCmd = &cobra.Command{
	Use:           "zkd",
	Short:         "Backend-neutral ZKP toolkit",
	Long:          "zkd describes computations as AIR programs, produces deterministic\nproof blobs under pluggable backends, verifies them, and emits the\ncanonical cross-backend digest for on-chain consumption.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(
		backendLsCmd(),
		profileLsCmd(),
		ioSchemaCmd(),
		proveCmd(),
		verifyCmd(),
		validateCmd(),
		commitCmd(),
		openCommitCmd(),
		evmDigestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	var corrupt *proof.CorruptError
	if errors.As(err, &corrupt) {
		return exitCorruption
	}
	var capErr *registry.CapabilityError
	if errors.As(err, &capErr) {
		return exitConfig
	}
	var regErr *registry.RegistryError
	if errors.As(err, &regErr) {
		return exitConfig
	}
	var usr *userError
	if errors.As(err, &usr) {
		return exitUser
	}
	return exitUser
}
