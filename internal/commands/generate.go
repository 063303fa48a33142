// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/extgen"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/pipeline"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/union"
)

func newGenerateCmd() *cobra.Command {
	var (
		strategy     string
		pkg          string
		generatorBin string
		target       string
		modelsDir    string
		skipGenerate bool
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "generate <schema> <output-dir>",
		Short: "Process a single schema document",
		Long: `Flatten the document's allOf composition, invoke the external
generator on the flattened copy, and synthesize a union enum for every
discriminated schema.`,
		Example: `  # Generate the messaging API package
  sdkgen generate line-openapi/messaging-api.yml packages/messaging-api \
    --package line-bot-sdk-messaging-api

  # Synthesize unions over an existing generator run
  sdkgen generate line-openapi/webhook.yml packages/webhook --skip-generate`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := union.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			var gen extgen.Generator
			if !skipGenerate {
				gen = &extgen.CLI{
					Bin:     generatorBin,
					Target:  target,
					Package: pkg,
					Stdout:  cmd.OutOrStdout(),
					Stderr:  cmd.ErrOrStderr(),
				}
			}

			summary, err := pipeline.Run(cmd.Context(), pipeline.Options{
				SchemaPath: args[0],
				OutputDir:  args[1],
				ModelsDir:  modelsDir,
				Strategy:   strat,
				Generator:  gen,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				data, err := summary.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printSummary(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "inline", "union synthesis strategy (inline or wrapper)")
	cmd.Flags().StringVar(&pkg, "package", "", "generated package name")
	cmd.Flags().StringVar(&generatorBin, "generator-bin", "openapi-generator", "external generator executable")
	cmd.Flags().StringVar(&target, "target", "rust", "generator language target")
	cmd.Flags().StringVar(&modelsDir, "models-dir", pipeline.DefaultModelsDir, "model sources directory relative to the output dir")
	cmd.Flags().BoolVar(&skipGenerate, "skip-generate", false, "skip the external generator and synthesize over existing model sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the run summary as JSON")

	return cmd
}
