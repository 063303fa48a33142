// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdkgen",
		Short: "Generate Rust SDK packages from OpenAPI documents",
		Long: `sdkgen drives code generation for the Rust SDK packages.

It flattens allOf composition out of each OpenAPI document, hands the
flattened copy to the external code generator, and then synthesizes the
discriminated-union enums the generator cannot produce itself.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newAllCmd(),
		newFlattenCmd(),
		newWatchCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
