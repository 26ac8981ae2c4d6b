// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/evm"
	"github.com/EqualFiLabs/zkd/gadgets"
)

func decodeHexFlag(name, value string) ([]byte, error) {
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, &userError{err: fmt.Errorf("invalid hex in --%s: %w", name, err)}
	}
	return data, nil
}

func buildScheme(curve, hashID string) (gadgets.Scheme32, error) {
	scheme, err := gadgets.SchemeForCurve(curve, hashID)
	if err != nil {
		return nil, &userError{err: fmt.Errorf("curve '%s': %w", curve, err)}
	}
	return scheme, nil
}

func commitCmd() *cobra.Command {
	var hashID, msgHex, blindHex, curve string
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit to a message with a blinding factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := decodeHexFlag("msg-hex", msgHex)
			if err != nil {
				return err
			}
			blind, err := decodeHexFlag("blind-hex", blindHex)
			if err != nil {
				return err
			}
			scheme, err := buildScheme(curve, hashID)
			if err != nil {
				return err
			}
			commitment, err := scheme.Commit(&gadgets.Witness{Msg: msg, Blind: blind})
			if err != nil {
				return &userError{err: err}
			}
			b := commitment.Bytes()
			fmt.Println(hex.EncodeToString(b[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&hashID, "hash", "blake3", "hash id backing the commitment")
	cmd.Flags().StringVar(&msgHex, "msg-hex", "", "message bytes as hex")
	cmd.Flags().StringVar(&blindHex, "blind-hex", "", "blinding factor bytes as hex")
	cmd.Flags().StringVar(&curve, "curve", "placeholder", "commitment curve: placeholder or bn254")
	for _, name := range []string{"msg-hex", "blind-hex"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func openCommitCmd() *cobra.Command {
	var hashID, msgHex, blindHex, commitHex, curve string
	cmd := &cobra.Command{
		Use:   "open-commit",
		Short: "Open a commitment against a message and blinding factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := decodeHexFlag("msg-hex", msgHex)
			if err != nil {
				return err
			}
			blind, err := decodeHexFlag("blind-hex", blindHex)
			if err != nil {
				return err
			}
			commitRaw, err := decodeHexFlag("commit-hex", commitHex)
			if err != nil {
				return err
			}
			if len(commitRaw) != 32 {
				return &userError{err: fmt.Errorf("--commit-hex must be 32 bytes, got %d", len(commitRaw))}
			}
			scheme, err := buildScheme(curve, hashID)
			if err != nil {
				return err
			}
			var commitment gadgets.Comm32
			copy(commitment[:], commitRaw)

			matched, err := scheme.Open(&gadgets.Witness{Msg: msg, Blind: blind}, commitment)
			if err != nil {
				return &userError{err: err}
			}
			if !matched {
				fmt.Println("❌ CommitMismatch")
				return &userError{err: fmt.Errorf("commitment does not open with the supplied witness")}
			}
			fmt.Println("✅ CommitOpened")
			return nil
		},
	}
	cmd.Flags().StringVar(&hashID, "hash", "blake3", "hash id backing the commitment")
	cmd.Flags().StringVar(&msgHex, "msg-hex", "", "message bytes as hex")
	cmd.Flags().StringVar(&blindHex, "blind-hex", "", "blinding factor bytes as hex")
	cmd.Flags().StringVar(&commitHex, "commit-hex", "", "commitment bytes as hex")
	cmd.Flags().StringVar(&curve, "curve", "placeholder", "commitment curve: placeholder or bn254")
	for _, name := range []string{"msg-hex", "blind-hex", "commit-hex"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func evmDigestCmd() *cobra.Command {
	var proofIn string
	cmd := &cobra.Command{
		Use:   "evm-digest",
		Short: "Print the canonical on-chain digest D of a proof blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readFileBytes(proofIn)
			if err != nil {
				return &userError{err: err}
			}
			digest, err := evm.DigestFromProof(blob)
			if err != nil {
				return err
			}
			fmt.Println(digest.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&proofIn, "proof", "P", "", "proof file path")
	_ = cmd.MarkFlagRequired("proof")
	return cmd
}
