// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package oaschema provides an ordered model of the OpenAPI schema subset
// used by discriminated-union-shaped APIs: object schemas combined via
// allOf, optionally carrying a discriminator with a tag-to-schema mapping.
//
// Unlike a generic JSON Schema model, declaration order is first-class:
// property order, allOf member order, and discriminator mapping order are
// all preserved from the source document.
package oaschema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one parsed OpenAPI document with its named schema definitions.
type Document struct {
	// Path is the source file path the document was loaded from.
	Path string

	// Schemas maps definition names to parsed schemas.
	Schemas map[string]*Schema

	// Order lists definition names in declaration order.
	Order []string

	root *yaml.Node
}

// Schema is one object schema definition.
type Schema struct {
	// Name is the definition name, empty for inline allOf fragments.
	Name string

	// Ref is the raw $ref string, empty if this is not a reference.
	Ref string

	Type        string
	Description string

	// Properties holds property name/schema pairs in declaration order.
	Properties []Property

	// Required lists required property names in declaration order.
	Required []string

	// AllOf holds composition members in declaration order.
	// Flattening resolves and clears it.
	AllOf []*Schema

	Discriminator *Discriminator

	node *yaml.Node
}

// Property is a single named property. The value node is kept verbatim so
// flattened output preserves the property's wire-format metadata untouched.
type Property struct {
	Name string
	Node *yaml.Node
}

// Discriminator identifies, by a wire-format tag value, which concrete
// schema a polymorphic value conforms to.
type Discriminator struct {
	PropertyName string
	Mapping      []MappingEntry
}

// MappingEntry is one discriminator mapping entry in declaration order.
type MappingEntry struct {
	// Tag is the wire-format discriminant value.
	Tag string
	// Ref is the raw mapping target as written in the document.
	Ref string
	// SchemaName is the definition name the mapping target resolves to.
	SchemaName string
}

// IsRef reports whether the schema is a plain $ref member.
func (s *Schema) IsRef() bool {
	return s.Ref != ""
}

// Property returns the property with the given name, or false.
func (s *Schema) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// RefSchemaName extracts the definition name from a $ref string.
// Bare names (as allowed in discriminator mappings) are returned unchanged.
func RefSchemaName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "#/components/schemas/"); ok {
		return name
	}
	if name, ok := strings.CutPrefix(ref, "#/definitions/"); ok {
		return name
	}
	if strings.HasPrefix(ref, "#/") {
		return ""
	}
	return ref
}

// deref follows YAML anchors to the aliased node.
func deref(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

// mapValue returns the value node for key in a mapping node, or nil.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// parseSchema builds a Schema from its document node.
func parseSchema(name string, node *yaml.Node) (*Schema, error) {
	node = deref(node)
	if node == nil {
		return nil, fmt.Errorf("schema %q: empty node", name)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema %q: expected a mapping, got %s", name, kindName(node.Kind))
	}

	s := &Schema{Name: name, node: node}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := deref(node.Content[i+1])

		switch key {
		case "$ref":
			s.Ref = value.Value
		case "type":
			s.Type = value.Value
		case "description":
			s.Description = value.Value
		case "properties":
			props, err := parseProperties(name, value)
			if err != nil {
				return nil, err
			}
			s.Properties = props
		case "required":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("schema %q: required must be a sequence", name)
			}
			for _, item := range value.Content {
				s.Required = append(s.Required, deref(item).Value)
			}
		case "allOf":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("schema %q: allOf must be a sequence", name)
			}
			for idx, member := range value.Content {
				m, err := parseSchema("", member)
				if err != nil {
					return nil, fmt.Errorf("schema %q: allOf[%d]: %w", name, idx, err)
				}
				s.AllOf = append(s.AllOf, m)
			}
		case "discriminator":
			d, err := parseDiscriminator(name, value)
			if err != nil {
				return nil, err
			}
			s.Discriminator = d
		}
	}

	return s, nil
}

func parseProperties(schemaName string, node *yaml.Node) ([]Property, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema %q: properties must be a mapping", schemaName)
	}
	props := make([]Property, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		props = append(props, Property{
			Name: node.Content[i].Value,
			Node: node.Content[i+1],
		})
	}
	return props, nil
}

func parseDiscriminator(schemaName string, node *yaml.Node) (*Discriminator, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema %q: discriminator must be a mapping", schemaName)
	}

	d := &Discriminator{}
	if pn := mapValue(node, "propertyName"); pn != nil {
		d.PropertyName = deref(pn).Value
	}
	if mapping := deref(mapValue(node, "mapping")); mapping != nil {
		if mapping.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("schema %q: discriminator mapping must be a mapping", schemaName)
		}
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			ref := deref(mapping.Content[i+1]).Value
			d.Mapping = append(d.Mapping, MappingEntry{
				Tag:        mapping.Content[i].Value,
				Ref:        ref,
				SchemaName: RefSchemaName(ref),
			})
		}
	}
	return d, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
