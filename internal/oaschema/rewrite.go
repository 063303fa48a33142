// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package oaschema

import "gopkg.in/yaml.v3"

// Rewrite rebuilds the schema's document node from the model. Flattening
// mutates the model; Rewrite makes the change visible to Encode. Property
// value nodes are reused verbatim so per-property wire metadata survives
// untouched. The required attribute is omitted entirely when empty.
func (s *Schema) Rewrite() {
	var content []*yaml.Node

	if s.Type != "" {
		content = append(content, strNode("type"), strNode(s.Type))
	}
	if s.Description != "" {
		content = append(content, strNode("description"), strNode(s.Description))
	}
	if len(s.Properties) > 0 {
		props := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range s.Properties {
			props.Content = append(props.Content, strNode(p.Name), p.Node)
		}
		content = append(content, strNode("properties"), props)
	}
	if len(s.Required) > 0 {
		req := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, name := range s.Required {
			req.Content = append(req.Content, strNode(name))
		}
		content = append(content, strNode("required"), req)
	}
	if s.Discriminator != nil {
		content = append(content, strNode("discriminator"), discriminatorNode(s.Discriminator))
	}

	*s.node = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func discriminatorNode(d *Discriminator) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if d.PropertyName != "" {
		node.Content = append(node.Content, strNode("propertyName"), strNode(d.PropertyName))
	}
	if len(d.Mapping) > 0 {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range d.Mapping {
			mapping.Content = append(mapping.Content, strNode(entry.Tag), strNode(entry.Ref))
		}
		node.Content = append(node.Content, strNode("mapping"), mapping)
	}
	return node
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
