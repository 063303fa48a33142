// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package union

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inlineDefinition() *Definition {
	return &Definition{
		Name:        "Message",
		Strategy:    StrategyInline,
		TagProperty: "type",
		Variants: []Variant{
			{Tag: "flex", SchemaName: "FlexMessage", Structure: flexStructure()},
			{Tag: "text", SchemaName: "TextMessage", Structure: textStructure()},
		},
	}
}

func TestRender_Tagged(t *testing.T) {
	out, err := inlineDefinition().Render()
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, `#[serde(tag = "type")]`)
	assert.Contains(t, src, "pub enum Message {")
	assert.Contains(t, src, `#[serde(rename = "flex")]`)
	assert.Contains(t, src, `#[serde(rename = "text")]`)

	// The discriminator property is consumed by the serde tag and must
	// not appear as a case field.
	assert.NotContains(t, src, "r#type:")

	assert.Contains(t, src, `#[serde(rename = "quickReply", skip_serializing_if = "Option::is_none")]`)
	assert.Contains(t, src, "quick_reply: Option<Box<models::QuickReply>>,")
	assert.Contains(t, src, "alt_text: String,")

	assert.Contains(t, src, "impl From<models::FlexMessage> for Message {")
	assert.Contains(t, src, "impl From<models::TextMessage> for Message {")
	assert.Contains(t, src, "quick_reply: value.quick_reply,")
}

func TestRender_TaggedDefaultUsesFirstVariant(t *testing.T) {
	out, err := inlineDefinition().Render()
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "impl Default for Message {")
	assert.Contains(t, src, "Message::Flex {")
	assert.Contains(t, src, "quick_reply: None,")
	assert.Contains(t, src, "alt_text: String::new(),")
}

func TestRender_TaggedCaseOrder(t *testing.T) {
	out, err := inlineDefinition().Render()
	require.NoError(t, err)
	src := string(out)

	flexAt := strings.Index(src, `#[serde(rename = "flex")]`)
	textAt := strings.Index(src, `#[serde(rename = "text")]`)
	require.GreaterOrEqual(t, flexAt, 0)
	require.GreaterOrEqual(t, textAt, 0)
	assert.Less(t, flexAt, textAt)
}

func TestRender_Untagged(t *testing.T) {
	def := &Definition{
		Name:        "Message",
		Strategy:    StrategyWrapper,
		TagProperty: "type",
		Variants: []Variant{
			{Tag: "flex", SchemaName: "FlexMessage", Structure: flexStructure()},
			{Tag: "text", SchemaName: "TextMessage", Structure: textStructure()},
		},
	}
	out, err := def.Render()
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "#[serde(untagged)]")
	assert.Contains(t, src, "Flex(Box<models::FlexMessage>),")
	assert.Contains(t, src, "Text(Box<models::TextMessage>),")
	assert.Contains(t, src, "Message::Flex(Box::default())")
	assert.Contains(t, src, "Message::Flex(Box::new(value))")
	// The decode trade-off is documented at the definition site.
	assert.Contains(t, src, "tried in declaration order")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := inlineDefinition().Render()
	require.NoError(t, err)
	second, err := inlineDefinition().Render()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestWriteFile_ReplacesStructFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "message.rs"), []byte("pub struct Message {}"), 0o600))

	path, err := inlineDefinition().WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "message.rs"), path)

	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub enum Message {")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestQualifyType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"String", "String"},
		{"Option<String>", "Option<String>"},
		{"FlexContainer", "models::FlexContainer"},
		{"Box<models::FlexContainer>", "Box<models::FlexContainer>"},
		{"Option<Box<FlexContainer>>", "Option<Box<models::FlexContainer>>"},
		{"Vec<Emoji>", "Vec<models::Emoji>"},
		{"std::collections::HashMap<String, String>", "std::collections::HashMap<String, String>"},
		{"serde_json::Value", "serde_json::Value"},
		{"i64", "i64"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, qualifyType(tt.in), tt.in)
	}
}

func TestDefaultExpr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Option<Box<models::QuickReply>>", "None"},
		{"String", "String::new()"},
		{"Vec<models::Emoji>", "vec![]"},
		{"bool", "false"},
		{"i32", "0"},
		{"u64", "0"},
		{"f64", "0.0"},
		{"Box<models::FlexContainer>", "Default::default()"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultExpr(tt.in), tt.in)
	}
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"flex", "Flex"},
		{"text", "Text"},
		{"two_factor", "TwoFactor"},
		{"rich-menu", "RichMenu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VariantName(tt.tag), tt.tag)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "message.rs", FileName("Message"))
	assert.Equal(t, "flex_message.rs", FileName("FlexMessage"))
	assert.Equal(t, "uri_action.rs", FileName("URIAction"))
}

func TestVariantFieldsDropTagProperty(t *testing.T) {
	def := inlineDefinition()
	fields := def.variantFields(def.Variants[0])
	require.Len(t, fields, 2)
	assert.Equal(t, "quick_reply", fields[0].LocalName)
	assert.Equal(t, "alt_text", fields[1].LocalName)
}
