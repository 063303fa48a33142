// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package union

import (
	"os"
	"path/filepath"
)

// WriteFile renders the union and writes it into dir under the schema's
// snake_case file name, replacing the generated base struct file. Emission
// is all-or-nothing: the content lands in a temp file first and is renamed
// over the target, so a failed render never leaves a partial file behind.
func (d *Definition) WriteFile(dir string) (string, error) {
	data, err := d.Render()
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, FileName(d.Name))
	tmp, err := os.CreateTemp(dir, FileName(d.Name)+".*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()           //nolint:errcheck,gosec
		os.Remove(tmp.Name()) //nolint:errcheck,gosec
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck,gosec
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck,gosec
		return "", err
	}
	return target, nil
}
