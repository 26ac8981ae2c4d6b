// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/crypto"
	"github.com/EqualFiLabs/zkd/validation"
)

func validateCmd() *cobra.Command {
	var programPath, inputsPath, proofIn, reportDir string
	sel := &selectorFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Verify a proof and run commitment/range checks, writing a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ir, entry, err := prepare(sel, programPath)
			if err != nil {
				return err
			}
			inputs, err := readFileString(inputsPath)
			if err != nil {
				return &userError{err: err}
			}
			blob, err := readFileBytes(proofIn)
			if err != nil {
				return &userError{err: err}
			}

			// The validation pass presumes a well-formed proof.
			if err := entry.Verifier.Verify(cfg, inputs, ir, blob); err != nil {
				return err
			}

			bindings := air.BindingsFromIR(ir)
			v := validation.NewValidator(&bindings)
			v.SetMeta(cfg.BackendID, cfg.ProfileID)

			if bindings.Commitments.Pedersen {
				// Deterministic witness derived from the proof: the pass
				// exercises commit/open and the reuse policy over it.
				blind, _ := crypto.Hash32ByID(crypto.HashBlake3, "VALIDATE.BLIND", blob)
				v.CheckCommitPoint([]byte(inputs), blind[:])
				v.CheckRReuse(blind[:])
			}
			// The blob length is bounded by construction; a violation here
			// means the envelope and the report would disagree.
			v.CheckRangeU64(uint64(len(blob)), 32)

			report := v.Finalize()
			path, err := report.WritePretty(reportDir)
			if err != nil {
				return &userError{err: err}
			}

			fmt.Printf("Report: %s\n", path)
			if !report.OK {
				return &userError{err: fmt.Errorf("validation failed with %d error(s)", len(report.Errors))}
			}
			fmt.Printf("✅ ValidationPassed backend=%s profile=%s commit_passed=%t\n",
				cfg.BackendID, cfg.ProfileID, report.CommitPassed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&programPath, "program", "p", "", "program AIR path (.air TOML or .yaml)")
	cmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "inputs JSON path")
	cmd.Flags().StringVarP(&proofIn, "proof", "P", "", "proof file path")
	cmd.Flags().StringVarP(&reportDir, "output", "o", "", "report output directory")
	for _, name := range []string{"program", "inputs", "proof", "output"} {
		_ = cmd.MarkFlagRequired(name)
	}
	sel.register(cmd)
	return cmd
}
