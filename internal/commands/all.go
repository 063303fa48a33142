// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/config"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/extgen"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/pipeline"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/prompts"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/union"
)

func newAllCmd() *cobra.Command {
	var (
		configPath   string
		concurrency  int
		skipGenerate bool
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Process every document in the project manifest",
		Long: `Run the full pipeline for every document listed in the manifest.
Documents are independent and run concurrently; one document's failure
does not stop the others.`,
		Example: `  # Process all documents with the default concurrency
  sdkgen all

  # Limit to two concurrent documents
  sdkgen all --concurrency 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			docs, err := documentOptions(cfg, skipGenerate, cmd)
			if err != nil {
				return err
			}

			results := pipeline.RunAllLimit(cmd.Context(), docs, concurrency)

			if jsonOut {
				data, err := pipeline.ReportJSON(results)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				for i, r := range results {
					if r.Err != nil {
						prompts.PrintWarn(fmt.Sprintf("%s: %v", cfg.Documents[i].Schema, r.Err))
						continue
					}
					printSummary(r.Summary)
				}
			}

			var errs []error
			for i, r := range results {
				if r.Err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", cfg.Documents[i].Schema, r.Err))
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.ConfigFileName, "project manifest path")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max documents processed at once (0 = unbounded)")
	cmd.Flags().BoolVar(&skipGenerate, "skip-generate", false, "skip the external generator and synthesize over existing model sources")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print run summaries as JSON")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return cfg, nil
}

// documentOptions translates manifest entries into pipeline options.
func documentOptions(cfg *config.Config, skipGenerate bool, cmd *cobra.Command) ([]pipeline.Options, error) {
	docs := make([]pipeline.Options, 0, len(cfg.Documents))
	for _, d := range cfg.Documents {
		strategy := union.StrategyInline
		if d.Strategy != "" {
			var err error
			strategy, err = union.ParseStrategy(d.Strategy)
			if err != nil {
				return nil, err
			}
		}

		var gen extgen.Generator
		if !skipGenerate {
			gen = &extgen.CLI{
				Bin:       cfg.Generator.Bin,
				Target:    cfg.Generator.Target,
				Package:   d.Package,
				ExtraArgs: cfg.Generator.ExtraArgs,
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			}
		}

		docs = append(docs, pipeline.Options{
			SchemaPath: d.Schema,
			OutputDir:  d.Output,
			ModelsDir:  d.ModelsDir,
			Strategy:   strategy,
			Generator:  gen,
		})
	}
	return docs, nil
}
