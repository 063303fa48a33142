// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package oaschema

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode writes the document as YAML. Sections other than the schema
// definitions pass through from the source document unchanged, so encoding
// an unmodified document round-trips its structure. Output is deterministic
// for a given document state.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile encodes the document to path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	if err := d.Encode(f); err != nil {
		f.Close() //nolint:errcheck,gosec
		return err
	}
	return f.Close()
}
