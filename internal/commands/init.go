// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/config"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/prompts"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project manifest interactively",
		Example: `  # Scaffold sdkgen.yaml in the current directory
  sdkgen init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ConfigFileName); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFileName)
			}

			answers := prompts.InitAnswers{
				GeneratorBin: "openapi-generator",
				Target:       "rust",
				Strategy:     "inline",
			}
			if err := prompts.RunInitForm(&answers); err != nil {
				return err
			}

			cfg := &config.Config{
				Version: config.CurrentConfigVersion,
				Generator: config.Generator{
					Bin:    answers.GeneratorBin,
					Target: answers.Target,
				},
				Documents: []config.Document{{
					Schema:   answers.Schema,
					Output:   answers.Output,
					Package:  answers.Package,
					Strategy: answers.Strategy,
				}},
			}
			if err := cfg.Save(config.ConfigFileName); err != nil {
				return err
			}

			prompts.PrintResult([]prompts.ResultField{
				{Label: "Manifest", Value: config.ConfigFileName},
				{Label: "Schema", Value: answers.Schema},
				{Label: "Output", Value: answers.Output},
				{Label: "Strategy", Value: answers.Strategy},
			}, "Project initialized. Run \"sdkgen all\" to generate.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing manifest")

	return cmd
}
