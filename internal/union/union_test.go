// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package union

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/oaschema"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/rustsrc"
)

func messageDiscriminator() *oaschema.Discriminator {
	return &oaschema.Discriminator{
		PropertyName: "type",
		Mapping: []oaschema.MappingEntry{
			{Tag: "flex", Ref: "#/components/schemas/FlexMessage", SchemaName: "FlexMessage"},
			{Tag: "text", Ref: "#/components/schemas/TextMessage", SchemaName: "TextMessage"},
		},
	}
}

func flexStructure() *rustsrc.Structure {
	return &rustsrc.Structure{
		Name: "FlexMessage",
		Fields: []rustsrc.Field{
			{WireName: "type", LocalName: "r#type", Type: "String"},
			{WireName: "quickReply", LocalName: "quick_reply", Type: "Option<Box<models::QuickReply>>", Optional: true},
			{WireName: "altText", LocalName: "alt_text", Type: "String"},
		},
	}
}

func textStructure() *rustsrc.Structure {
	return &rustsrc.Structure{
		Name: "TextMessage",
		Fields: []rustsrc.Field{
			{WireName: "type", LocalName: "r#type", Type: "String"},
			{WireName: "text", LocalName: "text", Type: "String"},
		},
	}
}

func TestSynthesize_Inline(t *testing.T) {
	structures := map[string]*rustsrc.Structure{
		"flex": flexStructure(),
		"text": textStructure(),
	}

	def, skip, err := Synthesize("Message", messageDiscriminator(), structures, StrategyInline)
	require.NoError(t, err)
	require.Nil(t, skip)
	require.NotNil(t, def)

	assert.Equal(t, "Message", def.Name)
	assert.Equal(t, "type", def.TagProperty)
	require.Len(t, def.Variants, 2)
	assert.Equal(t, "flex", def.Variants[0].Tag)
	assert.Equal(t, "text", def.Variants[1].Tag)
}

func TestSynthesize_MissingStructure(t *testing.T) {
	structures := map[string]*rustsrc.Structure{
		"flex": flexStructure(),
		// text structure file was never generated
	}

	def, skip, err := Synthesize("Message", messageDiscriminator(), structures, StrategyInline)
	require.NoError(t, err)
	assert.Nil(t, def)
	require.NotNil(t, skip)
	assert.Equal(t, SkipMissingStructure, skip.Reason)
	assert.Equal(t, []string{"TextMessage"}, skip.Details)
}

func TestSynthesize_InlineTypeReference(t *testing.T) {
	structures := map[string]*rustsrc.Structure{
		"flex": {
			Name: "FlexMessage",
			Fields: []rustsrc.Field{
				{WireName: "mode", LocalName: "mode", Type: "Option<AspectMode>", Optional: true},
			},
			LocalEnums: []string{"AspectMode"},
		},
		"text": textStructure(),
	}

	def, skip, err := Synthesize("Message", messageDiscriminator(), structures, StrategyInline)
	require.NoError(t, err)
	assert.Nil(t, def)
	require.NotNil(t, skip)
	assert.Equal(t, SkipInlineTypeReference, skip.Reason)
	require.Len(t, skip.Details, 1)
	assert.Contains(t, skip.Details[0], "AspectMode")
}

func TestSynthesize_CrossFileLocalReference(t *testing.T) {
	// One variant's field references an enum local to the other variant's
	// file. Still unsafe: the enum is invisible outside its file.
	structures := map[string]*rustsrc.Structure{
		"flex": {
			Name:       "FlexMessage",
			Fields:     []rustsrc.Field{{WireName: "text", LocalName: "text", Type: "String"}},
			LocalEnums: []string{"Weight"},
		},
		"text": {
			Name:   "TextMessage",
			Fields: []rustsrc.Field{{WireName: "weight", LocalName: "weight", Type: "Weight"}},
		},
	}

	_, skip, err := Synthesize("Message", messageDiscriminator(), structures, StrategyInline)
	require.NoError(t, err)
	require.NotNil(t, skip)
	assert.Equal(t, SkipInlineTypeReference, skip.Reason)
}

func TestSynthesize_WrapperNeverSkipsOnLocalTypes(t *testing.T) {
	structures := map[string]*rustsrc.Structure{
		"flex": {
			Name: "FlexMessage",
			Fields: []rustsrc.Field{
				{WireName: "mode", LocalName: "mode", Type: "Option<AspectMode>", Optional: true},
			},
			LocalEnums: []string{"AspectMode"},
		},
		"text": textStructure(),
	}

	def, skip, err := Synthesize("Message", messageDiscriminator(), structures, StrategyWrapper)
	require.NoError(t, err)
	assert.Nil(t, skip)
	require.NotNil(t, def)
	assert.Equal(t, StrategyWrapper, def.Strategy)
}

func TestSynthesize_VariantOrderFollowsMapping(t *testing.T) {
	disc := &oaschema.Discriminator{
		PropertyName: "type",
		Mapping: []oaschema.MappingEntry{
			{Tag: "video", SchemaName: "VideoMessage"},
			{Tag: "audio", SchemaName: "AudioMessage"},
			{Tag: "image", SchemaName: "ImageMessage"},
		},
	}
	structures := map[string]*rustsrc.Structure{
		"video": {Name: "VideoMessage"},
		"audio": {Name: "AudioMessage"},
		"image": {Name: "ImageMessage"},
	}

	def, skip, err := Synthesize("Message", disc, structures, StrategyWrapper)
	require.NoError(t, err)
	require.Nil(t, skip)

	// Declaration order, not alphabetical.
	tags := []string{def.Variants[0].Tag, def.Variants[1].Tag, def.Variants[2].Tag}
	assert.Equal(t, []string{"video", "audio", "image"}, tags)
}

func TestSynthesize_EmptyMapping(t *testing.T) {
	_, _, err := Synthesize("Message", &oaschema.Discriminator{PropertyName: "type"}, nil, StrategyInline)
	require.Error(t, err)

	_, _, err = Synthesize("Message", nil, nil, StrategyInline)
	require.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("inline")
	require.NoError(t, err)
	assert.Equal(t, StrategyInline, s)

	s, err = ParseStrategy("wrapper")
	require.NoError(t, err)
	assert.Equal(t, StrategyWrapper, s)

	_, err = ParseStrategy("bogus")
	require.Error(t, err)
}

func TestSkip_String(t *testing.T) {
	skip := &Skip{Union: "Message", Reason: SkipMissingStructure, Details: []string{"TextMessage"}}
	assert.Equal(t, "Message: skipped (missing-structure): TextMessage", skip.String())
}
