// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package union

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-openapi/inflect"
)

//go:embed tagged.rs.tmpl untagged.rs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").ParseFS(tmplFS, "*.rs.tmpl"))

// enumData is the template input for both strategies.
type enumData struct {
	Name        string
	TagProperty string
	Variants    []enumVariant
}

type enumVariant struct {
	Tag        string
	Name       string
	StructType string
	Fields     []enumField
}

type enumField struct {
	WireName  string
	LocalName string
	Type      string
	Default   string
	Optional  bool
}

// First returns the default-value variant.
func (d enumData) First() enumVariant {
	return d.Variants[0]
}

// Render emits the union's Rust source.
func (d *Definition) Render() ([]byte, error) {
	data := enumData{Name: d.Name, TagProperty: d.TagProperty}
	for _, v := range d.Variants {
		data.Variants = append(data.Variants, enumVariant{
			Tag:        v.Tag,
			Name:       VariantName(v.Tag),
			StructType: "models::" + v.Structure.Name,
			Fields:     d.variantFields(v),
		})
	}

	name := "tagged.rs.tmpl"
	if d.Strategy == StrategyWrapper {
		name = "untagged.rs.tmpl"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render union %s: %w", d.Name, err)
	}
	return buf.Bytes(), nil
}

// variantFields mirrors a struct's fields into an enum case. The
// discriminator property is dropped: the serde tag consumes it.
func (d *Definition) variantFields(v Variant) []enumField {
	if d.Strategy != StrategyInline {
		return nil
	}
	var fields []enumField
	for _, f := range v.Structure.Fields {
		if f.WireName == d.TagProperty {
			continue
		}
		typ := qualifyType(f.Type)
		fields = append(fields, enumField{
			WireName:  f.WireName,
			LocalName: f.LocalName,
			Type:      typ,
			Default:   defaultExpr(typ),
			Optional:  f.Optional,
		})
	}
	return fields
}

// qualifyType prefixes bare type names with the models namespace. Tokens
// that are primitives, containers, or already part of a qualified path are
// left alone.
func qualifyType(expr string) string {
	var sb strings.Builder
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := expr[start:end]
		qualified := start >= 2 && expr[start-2:start] == "::"
		if !qualified && !wrapperTokens[tok] && isTypeName(tok) {
			sb.WriteString("models::")
		}
		sb.WriteString(tok)
		start = -1
	}
	for i := 0; i < len(expr); i++ {
		if isIdentChar(expr[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		sb.WriteByte(expr[i])
	}
	flush(len(expr))
	return sb.String()
}

// isTypeName reports whether tok looks like a Rust type name rather than a
// lifetime, keyword, or numeric literal.
func isTypeName(tok string) bool {
	return tok != "" && tok[0] >= 'A' && tok[0] <= 'Z'
}

// defaultExpr synthesizes a minimal value for a field type: absent
// optionals, empty strings, empty collections, zero values otherwise.
func defaultExpr(typ string) string {
	switch {
	case strings.HasPrefix(typ, "Option<"):
		return "None"
	case typ == "String":
		return "String::new()"
	case strings.HasPrefix(typ, "Vec<"):
		return "vec![]"
	case typ == "bool":
		return "false"
	case typ == "f32" || typ == "f64":
		return "0.0"
	case isInteger(typ):
		return "0"
	default:
		return "Default::default()"
	}
}

func isInteger(typ string) bool {
	switch typ {
	case "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "usize", "isize":
		return true
	}
	return false
}

// VariantName converts a wire tag to a Rust variant name.
func VariantName(tag string) string {
	norm := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, tag)
	return inflect.Camelize(norm)
}

// FileName returns the union's file name: the same snake_case transform
// the generator applies to struct files, so the union replaces the
// generated base struct file.
func FileName(schemaName string) string {
	return inflect.Underscore(schemaName) + ".rs"
}

// StructFileName returns the generated model file name for a schema.
func StructFileName(schemaName string) string {
	return inflect.Underscore(schemaName) + ".rs"
}
