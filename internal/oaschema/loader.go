// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package oaschema

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadError indicates a document could not be parsed. It is fatal for the
// owning document; other documents are unaffected.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load document %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader loads OpenAPI documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadDocument loads and parses an OpenAPI document. YAML and JSON are both
// accepted; JSON documents are syntax-checked with a JSON decoder first so
// malformed input is reported with a JSON error rather than a YAML one.
func (l *Loader) LoadDocument(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}

	doc, err := parseDocument(data, filePath)
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}
	return doc, nil
}

// LoadFile loads a document from the OS filesystem.
func LoadFile(path string) (*Document, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	doc, err := NewLoader(os.DirFS(dir)).LoadDocument(base)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

func parseDocument(data []byte, filePath string) (*Document, error) {
	if strings.HasSuffix(filePath, ".json") {
		// YAML is a superset of JSON so the node parse below accepts both,
		// but a YAML error on a broken JSON file is unhelpful.
		var probe any
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	schemasNode := deref(mapValue(deref(root.Content[0]), "components"))
	if schemasNode != nil {
		schemasNode = deref(mapValue(schemasNode, "schemas"))
	}
	if schemasNode == nil {
		// Standalone schema collections use a top-level definitions mapping.
		schemasNode = deref(mapValue(deref(root.Content[0]), "definitions"))
	}
	if schemasNode == nil {
		return nil, fmt.Errorf("no components.schemas or definitions section")
	}
	if schemasNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema definitions must be a mapping")
	}

	doc := &Document{
		Path:    filePath,
		Schemas: make(map[string]*Schema, len(schemasNode.Content)/2),
		root:    &root,
	}
	for i := 0; i+1 < len(schemasNode.Content); i += 2 {
		name := schemasNode.Content[i].Value
		schema, err := parseSchema(name, schemasNode.Content[i+1])
		if err != nil {
			return nil, err
		}
		doc.Schemas[name] = schema
		doc.Order = append(doc.Order, name)
	}
	return doc, nil
}
