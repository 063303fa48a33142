// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package pipeline sequences one document's processing pass:
// load, flatten, external generation, union synthesis.
//
// Stages within a document are strictly ordered because each stage's
// output is the next stage's input. Independent documents have no shared
// state and run concurrently; the pipeline is the only component that
// touches the filesystem.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/extgen"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/flatten"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/oaschema"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/rustsrc"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/union"
)

// DefaultModelsDir is where the rust generator places model sources,
// relative to the output directory.
const DefaultModelsDir = "src/models"

// Options configures one document's pass.
type Options struct {
	// SchemaPath is the source OpenAPI document.
	SchemaPath string

	// OutputDir is the generated package root. The flattened document and
	// the synthesized unions are written beneath it.
	OutputDir string

	// ModelsDir is the model source directory relative to OutputDir.
	// Defaults to DefaultModelsDir.
	ModelsDir string

	// Strategy selects the union synthesis strategy. Defaults to
	// union.StrategyInline.
	Strategy union.Strategy

	// Generator runs the external code generator between flattening and
	// synthesis. When nil the generation stage is skipped and synthesis
	// reads whatever model sources are already present.
	Generator extgen.Generator
}

// Summary is one document's run report.
type Summary struct {
	Document      string       `json:"document"`
	FlattenedPath string       `json:"flattenedPath"`
	Schemas       int          `json:"schemas"`
	Discriminated int          `json:"discriminated"`
	Generated     int          `json:"generated"`
	Skipped       int          `json:"skipped"`
	Skips         []union.Skip `json:"skips,omitempty"`
}

// Run processes a single document. Load, flatten, and generation failures
// are fatal for the document; synthesis skips are recorded in the summary
// and never fail the run.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = union.StrategyInline
	}
	modelsDir := opts.ModelsDir
	if modelsDir == "" {
		modelsDir = DefaultModelsDir
	}

	doc, err := oaschema.LoadFile(opts.SchemaPath)
	if err != nil {
		return nil, err
	}
	if err := flatten.Document(doc); err != nil {
		return nil, fmt.Errorf("flatten %s: %w", opts.SchemaPath, err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return nil, err
	}
	flattenedPath := filepath.Join(opts.OutputDir, flattenedName(opts.SchemaPath))
	if err := doc.WriteFile(flattenedPath); err != nil {
		return nil, fmt.Errorf("write flattened document: %w", err)
	}

	if opts.Generator != nil {
		if err := opts.Generator.Generate(ctx, flattenedPath, opts.OutputDir); err != nil {
			return nil, err
		}
	}

	summary := &Summary{
		Document:      opts.SchemaPath,
		FlattenedPath: flattenedPath,
		Schemas:       len(doc.Order),
	}

	dir := filepath.Join(opts.OutputDir, modelsDir)
	for _, name := range doc.Order {
		schema := doc.Schemas[name]
		if schema.Discriminator == nil || len(schema.Discriminator.Mapping) == 0 {
			continue
		}
		summary.Discriminated++

		structures := make(map[string]*rustsrc.Structure, len(schema.Discriminator.Mapping))
		for _, entry := range schema.Discriminator.Mapping {
			st, err := rustsrc.ReadFile(filepath.Join(dir, union.StructFileName(entry.SchemaName)))
			if err != nil {
				return nil, fmt.Errorf("read structure for %s: %w", entry.SchemaName, err)
			}
			if st != nil {
				structures[entry.Tag] = st
			}
		}

		def, skip, err := union.Synthesize(name, schema.Discriminator, structures, strategy)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", name, err)
		}
		if skip != nil {
			summary.Skipped++
			summary.Skips = append(summary.Skips, *skip)
			continue
		}
		if _, err := def.WriteFile(dir); err != nil {
			return nil, fmt.Errorf("write union %s: %w", name, err)
		}
		summary.Generated++
	}

	return summary, nil
}

// flattenedName derives the flattened artifact name from the source
// document name, e.g. messaging-api.yml becomes
// messaging-api.flattened.yml.
func flattenedName(schemaPath string) string {
	base := filepath.Base(schemaPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	// The flattened artifact is always YAML, whatever the source format.
	if ext != ".yaml" {
		ext = ".yml"
	}
	return stem + ".flattened" + ext
}
