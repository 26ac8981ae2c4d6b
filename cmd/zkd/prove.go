// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/proof"
	"github.com/EqualFiLabs/zkd/registry"
	"github.com/EqualFiLabs/zkd/trace"
)

var logger = log.NewLogger("zkd")

// prepare runs the shared front half of prove/verify/validate: registry
// init, config validation, AIR parse, AIR-vs-backend check.
func prepare(sel *selectorFlags, programPath string) (*backend.Config, *air.IR, *registry.Entry, error) {
	registry.EnsureBuiltinsRegistered()
	cfg := sel.config()

	profiles, err := loadProfiles()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := registry.ValidateConfig(&cfg, profiles); err != nil {
		return nil, nil, nil, err
	}
	ir, err := air.ParseFile(programPath)
	if err != nil {
		return nil, nil, nil, &userError{err: err}
	}
	if err := registry.ValidateAIRAgainstBackend(ir, cfg.BackendID); err != nil {
		return nil, nil, nil, err
	}
	entry, err := registry.Get(cfg.BackendID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &cfg, ir, entry, nil
}

func proveCmd() *cobra.Command {
	var programPath, inputsPath, proofOut string
	var stats bool
	sel := &selectorFlags{}

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Read inputs JSON and produce a proof blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ir, entry, err := prepare(sel, programPath)
			if err != nil {
				return err
			}
			inputs, err := readFileString(inputsPath)
			if err != nil {
				return &userError{err: err}
			}

			blob, err := entry.Prover.Prove(cfg, inputs, ir)
			if err != nil {
				return err
			}
			if err := writeFileBytes(proofOut, blob); err != nil {
				return &userError{err: err}
			}

			header, err := proof.Decode(blob)
			if err != nil {
				return err
			}
			logger.Debug("proof assembled",
				log.String("backend", cfg.BackendID),
				log.Uint64("body_len", header.BodyLen))

			fmt.Printf("✅ ProofGenerated backend=%s profile=%s body_len=%d pubio_hash=0x%016x\n",
				cfg.BackendID, cfg.ProfileID, header.BodyLen, header.PubIOHash)
			fmt.Printf("Program: %s\n", programPath)
			fmt.Printf("Wrote: %s\n", proofOut)
			if stats {
				shape := trace.FromIR(ir)
				fmt.Printf("Trace: rows=%d cols=%d const_cols=%d periodic_cols=%d\n",
					shape.Rows, shape.Cols, shape.ConstCols, shape.PeriodicCols)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&programPath, "program", "p", "", "program AIR path (.air TOML or .yaml)")
	cmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "inputs JSON path")
	cmd.Flags().StringVarP(&proofOut, "output", "o", "", "output proof file path")
	cmd.Flags().BoolVar(&stats, "stats", false, "print trace shape statistics")
	for _, name := range []string{"program", "inputs", "output"} {
		_ = cmd.MarkFlagRequired(name)
	}
	sel.register(cmd)
	return cmd
}

func verifyCmd() *cobra.Command {
	var programPath, inputsPath, proofIn string
	sel := &selectorFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a proof blob against inputs and program",
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

			if err := entry.Verifier.Verify(cfg, inputs, ir, blob); err != nil {
				return err
			}

			header, err := proof.Decode(blob)
			if err != nil {
				return err
			}
			fmt.Printf("✅ ProofVerified backend=%s profile=%s pubio_hash=0x%016x\n",
				cfg.BackendID, cfg.ProfileID, header.PubIOHash)
			return nil
		},
	}
	cmd.Flags().StringVarP(&programPath, "program", "p", "", "program AIR path (.air TOML or .yaml)")
	cmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "inputs JSON path")
	cmd.Flags().StringVarP(&proofIn, "proof", "P", "", "proof file path")
	for _, name := range []string{"program", "inputs", "proof"} {
		_ = cmd.MarkFlagRequired(name)
	}
	sel.register(cmd)
	return cmd
}
