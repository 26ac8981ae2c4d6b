// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/registry"
)

func backendLsCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "backend-ls",
		Short: "List available backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry.EnsureBuiltinsRegistered()
			infos := registry.List()
			if !verbose {
				for _, b := range infos {
					fmt.Printf("%s  recursion=%t\n", b.ID, b.Recursion)
				}
				return nil
			}
			for _, b := range infos {
				caps, err := registry.Capabilities(b.ID)
				if err != nil {
					return err
				}
				arities := make([]string, len(caps.FriArities))
				for i, a := range caps.FriArities {
					arities[i] = fmt.Sprintf("%d", a)
				}
				fmt.Printf("%s\n", b.ID)
				fmt.Printf("  recursion: %s\n", caps.Recursion)
				fmt.Printf("  lookups: %t\n", caps.Lookups)
				fmt.Printf("  fields: %s\n", strings.Join(caps.Fields, ", "))
				fmt.Printf("  hashes: %s\n", strings.Join(caps.Hashes, ", "))
				fmt.Printf("  fri_arities: %s\n", strings.Join(arities, ", "))
				fmt.Printf("  pedersen: %t\n", caps.Pedersen)
				if len(caps.Curves) > 0 {
					fmt.Printf("  curves: %s\n", strings.Join(caps.Curves, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show full capability matrix")
	return cmd
}

func profileLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile-ls",
		Short: "List available profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles()
			if err != nil {
				return err
			}
			for _, p := range profiles {
				fmt.Printf("%s  λ=%d bits\n", p.ID, p.LambdaBits)
			}
			return nil
		},
	}
}

// ioSchema is the JSON shape printed by io-schema.
type ioSchema struct {
	Program string          `json:"program"`
	Inputs  []ioSchemaInput `json:"inputs"`
}

type ioSchemaInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func ioSchemaCmd() *cobra.Command {
	var programPath string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "io-schema",
		Short: "Print the public input schema of an AIR program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ir, err := air.ParseFile(programPath)
			if err != nil {
				return &userError{err: err}
			}
			schema := ioSchema{Program: ir.Meta.Name, Inputs: []ioSchemaInput{}}
			for _, pi := range ir.PublicInputs {
				schema.Inputs = append(schema.Inputs, ioSchemaInput{Name: pi.Name, Type: pi.Ty})
			}
			var data []byte
			if pretty {
				data, err = json.MarshalIndent(schema, "", "  ")
			} else {
				data, err = json.Marshal(schema)
			}
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&programPath, "program", "p", "", "program AIR path")
	_ = cmd.MarkFlagRequired("program")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}
