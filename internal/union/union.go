// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package union synthesizes Rust sum types for discriminated schemas.
//
// The upstream generator emits one struct per variant but no enum tying
// the variants together, so decoding a polymorphic value would require the
// caller to sniff the tag by hand. This package inspects the generated
// structs and emits the companion enum plus the conversions between each
// variant struct and the enum.
package union

import (
	"errors"
	"fmt"
	"strings"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/oaschema"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/rustsrc"
)

// Strategy selects how variant payloads are represented.
type Strategy string

const (
	// StrategyInline mirrors each variant's full field list into the enum
	// case, tagged by the discriminator's wire value. It cannot be used
	// when a variant field references a type that is local to another
	// generated file.
	StrategyInline Strategy = "inline"

	// StrategyWrapper wraps each variant's struct behind a Box. Decoding
	// is untagged: serde tries variants in declaration order and the first
	// structurally valid match wins. Always synthesizable.
	StrategyWrapper Strategy = "wrapper"
)

// ParseStrategy converts a user-supplied strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyInline:
		return StrategyInline, nil
	case StrategyWrapper:
		return StrategyWrapper, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyInline, StrategyWrapper)
}

// Variant is one union case: a tag value and its resolved struct.
type Variant struct {
	Tag        string
	SchemaName string
	Structure  *rustsrc.Structure
}

// Definition is a fully resolved union ready for rendering. It is
// constructed once per discriminated schema and never mutated afterwards.
type Definition struct {
	// Name is the discriminator's owning schema name.
	Name string

	Strategy Strategy

	// TagProperty is the discriminator property consumed by the serde tag.
	TagProperty string

	// Variants follow the discriminator mapping's declaration order. The
	// first variant supplies the Default impl and, for the wrapper
	// strategy, heads the untagged decode trial order.
	Variants []Variant
}

// SkipReason classifies why a union was not synthesized.
type SkipReason string

const (
	// SkipMissingStructure means a variant's generated struct file was
	// absent. The generated structs remain the sole representation.
	SkipMissingStructure SkipReason = "missing-structure"

	// SkipInlineTypeReference means a variant field's type references a
	// name that is only visible inside another generated file's scope.
	SkipInlineTypeReference SkipReason = "inline-type-reference"
)

// Skip records a non-fatal synthesis skip for reporting.
type Skip struct {
	Union   string     `json:"union"`
	Reason  SkipReason `json:"reason"`
	Details []string   `json:"details,omitempty"`
}

func (s *Skip) String() string {
	msg := fmt.Sprintf("%s: skipped (%s)", s.Union, s.Reason)
	if len(s.Details) > 0 {
		msg += ": " + strings.Join(s.Details, ", ")
	}
	return msg
}

// Synthesize resolves the discriminator mapping against the parsed structs
// and produces either a union definition or a skip. Exactly one of the two
// results is non-nil when err is nil. structures is keyed by wire tag; a
// nil or absent entry marks that variant's struct as missing.
func Synthesize(name string, disc *oaschema.Discriminator, structures map[string]*rustsrc.Structure, strategy Strategy) (*Definition, *Skip, error) {
	if disc == nil || len(disc.Mapping) == 0 {
		return nil, nil, errors.New("discriminator has no mapping")
	}

	def := &Definition{
		Name:        name,
		Strategy:    strategy,
		TagProperty: disc.PropertyName,
	}

	var missing []string
	for _, entry := range disc.Mapping {
		st := structures[entry.Tag]
		if st == nil {
			missing = append(missing, entry.SchemaName)
			continue
		}
		def.Variants = append(def.Variants, Variant{
			Tag:        entry.Tag,
			SchemaName: entry.SchemaName,
			Structure:  st,
		})
	}
	if len(missing) > 0 {
		return nil, &Skip{Union: name, Reason: SkipMissingStructure, Details: missing}, nil
	}

	if strategy == StrategyInline {
		if details := localTypeReferences(def.Variants); len(details) > 0 {
			return nil, &Skip{Union: name, Reason: SkipInlineTypeReference, Details: details}, nil
		}
	}

	return def, nil, nil
}

// localTypeReferences reports variant fields whose type expression names a
// type declared inline in any participating file. The enum lives in its
// own file and cannot reach into another file's scope, so any such
// reference rules the inline strategy out.
func localTypeReferences(variants []Variant) []string {
	local := make(map[string]bool)
	for _, v := range variants {
		for _, e := range v.Structure.LocalEnums {
			local[e] = true
		}
	}
	if len(local) == 0 {
		return nil
	}

	var details []string
	for _, v := range variants {
		for _, f := range v.Structure.Fields {
			for _, tok := range identTokens(f.Type) {
				if wrapperTokens[tok] {
					continue
				}
				if local[tok] {
					details = append(details, fmt.Sprintf("%s.%s: %s", v.Structure.Name, f.LocalName, tok))
				}
			}
		}
	}
	return details
}

// wrapperTokens are container, indirection, and primitive tokens that can
// never name a file-local type.
var wrapperTokens = map[string]bool{
	"Option": true, "Box": true, "Vec": true, "HashMap": true, "BTreeMap": true,
	"String": true, "str": true, "bool": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"f32": true, "f64": true, "usize": true, "isize": true,
	"models": true, "crate": true, "std": true, "serde_json": true, "Value": true,
}

// identTokens splits a type expression into identifier-like tokens.
func identTokens(expr string) []string {
	var tokens []string
	start := -1
	for i := 0; i <= len(expr); i++ {
		if i < len(expr) && isIdentChar(expr[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, expr[start:i])
			start = -1
		}
	}
	return tokens
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
