// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package extgen invokes the external code generator. The generator is a
// black box consumed via its CLI contract: input schema path, output
// directory, language target, package name.
package extgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Generator runs the external code generator for one document.
type Generator interface {
	Generate(ctx context.Context, schemaPath, outputDir string) error
}

// ExitError indicates the generator exited non-zero. It aborts the owning
// document's synthesis stage; the flattened schema artifact is retained
// for inspection.
type ExitError struct {
	Bin    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Bin, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// CLI invokes a generator binary with the openapi-generator argument
// convention.
type CLI struct {
	// Bin is the generator executable, e.g. "openapi-generator".
	Bin string
	// Target is the language target identifier, e.g. "rust".
	Target string
	// Package is the generated package name.
	Package string
	// ExtraArgs are appended verbatim.
	ExtraArgs []string

	// Stdout and Stderr receive the generator's output when set.
	Stdout io.Writer
	Stderr io.Writer
}

// Generate runs the generator and waits for it to finish. Cancellation is
// delegated to the context; a non-zero exit is returned as *ExitError.
func (g *CLI) Generate(ctx context.Context, schemaPath, outputDir string) error {
	args := []string{
		"generate",
		"-i", schemaPath,
		"-o", outputDir,
		"-g", g.Target,
	}
	if g.Package != "" {
		args = append(args, "--additional-properties", "packageName="+g.Package)
	}
	args = append(args, g.ExtraArgs...)

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, g.Bin, args...) //nolint:gosec // bin and args come from config
	cmd.Stdout = g.Stdout
	if g.Stderr != nil {
		cmd.Stderr = io.MultiWriter(g.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Bin:    g.Bin,
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	return fmt.Errorf("run %s: %w", g.Bin, err)
}
