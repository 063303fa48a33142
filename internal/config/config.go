// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package config handles the sdkgen project manifest.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the manifest format.
const CurrentConfigVersion = 1

// ConfigFileName is the manifest file name looked up in the project root.
const ConfigFileName = "sdkgen.yaml"

// Config represents the sdkgen.yaml project manifest.
type Config struct {
	Version   int        `yaml:"version"`
	Generator Generator  `yaml:"generator"`
	Documents []Document `yaml:"documents"`
}

// Generator configures the external code generator invocation.
type Generator struct {
	// Bin is the generator executable.
	Bin string `yaml:"bin"`
	// Target is the language target identifier, e.g. "rust".
	Target string `yaml:"target"`
	// ExtraArgs are appended to every invocation.
	ExtraArgs []string `yaml:"extraArgs,omitempty"`
}

// Document is one schema document entry.
type Document struct {
	// Schema is the OpenAPI document path.
	Schema string `yaml:"schema"`
	// Output is the generated package root.
	Output string `yaml:"output"`
	// Package is the generated package name.
	Package string `yaml:"package"`
	// Strategy is the union synthesis strategy, "inline" or "wrapper".
	// Empty means inline.
	Strategy string `yaml:"strategy,omitempty"`
	// ModelsDir overrides the model source directory relative to Output.
	ModelsDir string `yaml:"modelsDir,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the manifest for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if len(c.Documents) == 0 {
		return errors.New("no documents configured")
	}
	for i, d := range c.Documents {
		if d.Schema == "" {
			return fmt.Errorf("documents[%d]: schema is required", i)
		}
		if d.Output == "" {
			return fmt.Errorf("documents[%d]: output is required", i)
		}
		switch d.Strategy {
		case "", "inline", "wrapper":
		default:
			return fmt.Errorf("documents[%d]: unknown strategy %q", i, d.Strategy)
		}
	}
	return nil
}
