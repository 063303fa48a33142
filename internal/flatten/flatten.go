// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package flatten resolves allOf composition in schema definitions.
//
// The upstream generator emits broken variant structs when a schema both
// composes a base and carries discriminator metadata, so composition is
// rewritten away before the generator ever sees the document: every
// composed schema becomes a flat, self-contained definition holding the
// full property set of its composition chain.
package flatten

import (
	"fmt"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/oaschema"
)

// UnresolvedRefError indicates an allOf member references an undeclared
// schema. It is fatal for the owning document.
type UnresolvedRefError struct {
	Schema string
	Ref    string
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("schema %q: unresolved reference %q", e.Schema, e.Ref)
}

// CycleError indicates a schema composes itself through its reference chain.
type CycleError struct {
	Schema string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("schema %q: composition cycle", e.Schema)
}

// Document flattens every schema definition in the document, in place.
// Flattening is idempotent: an already-flat document is left untouched.
func Document(doc *oaschema.Document) error {
	f := &flattener{
		byName:   doc.Schemas,
		done:     make(map[string]bool),
		visiting: make(map[string]bool),
	}
	for _, name := range doc.Order {
		if _, err := f.flatten(doc.Schemas[name]); err != nil {
			return err
		}
	}
	return nil
}

// Node flattens a single schema against a set of definitions by name.
// Referenced bases are flattened transitively but not rewritten in byName.
func Node(s *oaschema.Schema, byName map[string]*oaschema.Schema) (*oaschema.Schema, error) {
	f := &flattener{
		byName:   byName,
		done:     make(map[string]bool),
		visiting: make(map[string]bool),
	}
	return f.flatten(s)
}

type flattener struct {
	byName   map[string]*oaschema.Schema
	done     map[string]bool
	visiting map[string]bool
}

func (f *flattener) flatten(s *oaschema.Schema) (*oaschema.Schema, error) {
	if s.Name != "" {
		if f.done[s.Name] {
			return s, nil
		}
		if f.visiting[s.Name] {
			return nil, &CycleError{Schema: s.Name}
		}
		f.visiting[s.Name] = true
		defer delete(f.visiting, s.Name)
	}

	if len(s.AllOf) == 0 {
		if s.Name != "" {
			f.done[s.Name] = true
		}
		return s, nil
	}

	var props []oaschema.Property
	index := make(map[string]int)
	var required []string

	// Later members overwrite same-named properties; first occurrence
	// keeps its position.
	merge := func(m *oaschema.Schema) {
		for _, p := range m.Properties {
			if i, ok := index[p.Name]; ok {
				props[i] = p
			} else {
				index[p.Name] = len(props)
				props = append(props, p)
			}
		}
		required = append(required, m.Required...)
	}

	ownProps := s.Properties
	ownRequired := s.Required
	var disc *oaschema.Discriminator

	for _, member := range s.AllOf {
		if member.IsRef() {
			name := oaschema.RefSchemaName(member.Ref)
			base, ok := f.byName[name]
			if name == "" || !ok {
				return nil, &UnresolvedRefError{Schema: s.Name, Ref: member.Ref}
			}
			flat, err := f.flatten(base)
			if err != nil {
				return nil, err
			}
			// A referenced base never hands its discriminator down: it is
			// only meaningful on the union schema itself, and propagating it
			// makes the generator emit broken per-variant structs.
			merge(flat)
			continue
		}

		flat, err := f.flatten(member)
		if err != nil {
			return nil, err
		}
		merge(flat)
		if flat.Discriminator != nil {
			disc = flat.Discriminator
		}
	}

	// The schema's own direct properties and required merge on top of the
	// composition members.
	merge(&oaschema.Schema{Properties: ownProps, Required: ownRequired})
	if s.Discriminator != nil {
		disc = s.Discriminator
	}

	s.Properties = props
	s.Required = dedup(required)
	s.AllOf = nil
	s.Discriminator = disc
	if s.Type == "" {
		s.Type = "object"
	}
	s.Rewrite()

	if s.Name != "" {
		f.done[s.Name] = true
	}
	return s, nil
}

func dedup(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
