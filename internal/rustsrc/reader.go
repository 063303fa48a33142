// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package rustsrc recovers field schemas from generated Rust model files.
//
// This is deliberately not a Rust parser. The generator's output is regular
// enough that a small set of textual markers is a stable extraction
// contract: `pub struct` and `pub enum` definition markers, `#[serde(...)]`
// field attributes carrying the wire name and the omit-if-absent marker,
// and a nesting-aware scan for the field's type expression. When the
// generator changes its output shape, add a conformance fixture for the new
// version instead of widening the patterns.
package rustsrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// Structure is one parsed generated struct definition.
type Structure struct {
	// Name is the struct's emitted name. It may differ from the schema
	// name by casing (the generator normalizes acronyms).
	Name string

	// Fields lists the struct's fields in file declaration order.
	Fields []Field

	// LocalEnums lists type names the same file declares inline. Such
	// types are not addressable from outside the file.
	LocalEnums []string
}

// Field is one recovered struct field.
type Field struct {
	// WireName is the serialized field name from the serde rename.
	WireName string
	// LocalName is the Rust field identifier.
	LocalName string
	// Type is the literal type expression as emitted.
	Type string
	// Optional reports whether the field may be absent on the wire.
	Optional bool
}

// HasLocalEnum reports whether name is declared inline in the file.
func (s *Structure) HasLocalEnum(name string) bool {
	for _, e := range s.LocalEnums {
		if e == name {
			return true
		}
	}
	return false
}

var (
	structRe = regexp.MustCompile(`(?m)^pub struct ([A-Za-z_][A-Za-z0-9_]*)`)
	enumRe   = regexp.MustCompile(`(?m)^pub enum ([A-Za-z_][A-Za-z0-9_]*)`)
	renameRe = regexp.MustCompile(`rename\s*=\s*"([^"]*)"`)
)

// ReadFile parses the generated model file at path. A missing file is not
// an error: it returns (nil, nil), and callers must treat it as a
// cannot-synthesize signal for the owning variant.
func ReadFile(path string) (*Structure, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the output dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	s, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses src as a generated model file. Given the same content it
// always produces the same descriptor with fields in declaration order.
func Read(src []byte) (*Structure, error) {
	content := string(src)

	m := structRe.FindStringSubmatchIndex(content)
	if m == nil {
		return nil, errors.New("no struct definition found")
	}
	s := &Structure{Name: content[m[2]:m[3]]}

	for _, em := range enumRe.FindAllStringSubmatch(content, -1) {
		s.LocalEnums = append(s.LocalEnums, em[1])
	}

	body, err := structBody(content, m[1])
	if err != nil {
		return nil, err
	}

	s.Fields = parseFields(body)
	return s, nil
}

// structBody returns the text between the struct's braces, starting the
// search at from.
func structBody(content string, from int) (string, error) {
	open := strings.Index(content[from:], "{")
	if open < 0 {
		return "", errors.New("struct has no body")
	}
	start := from + open + 1
	depth := 1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start:i], nil
			}
		}
	}
	return "", errors.New("unterminated struct body")
}

func parseFields(body string) []Field {
	var fields []Field
	wireName := ""
	optional := false

	i := 0
	for i < len(body) {
		rest := body[i:]
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r':
			i++
		case strings.HasPrefix(rest, "//"):
			i += lineLen(rest)
		case strings.HasPrefix(rest, "#["):
			attr, n := attribute(rest)
			i += n
			if strings.HasPrefix(attr, "#[serde(") {
				if rm := renameRe.FindStringSubmatch(attr); rm != nil {
					wireName = rm[1]
				}
				if strings.Contains(attr, "skip_serializing_if") {
					optional = true
				}
			}
		case strings.HasPrefix(rest, "pub "):
			name, typ, n := fieldDecl(rest)
			i += n
			if name == "" {
				continue
			}
			if wireName == "" {
				wireName = strings.TrimPrefix(name, "r#")
			}
			fields = append(fields, Field{
				WireName:  wireName,
				LocalName: name,
				Type:      typ,
				Optional:  optional || strings.HasPrefix(typ, "Option<"),
			})
			wireName = ""
			optional = false
		default:
			i += lineLen(rest)
		}
	}
	return fields
}

// attribute returns the full `#[...]` attribute text and its length,
// tracking bracket depth so nested brackets do not terminate it early.
func attribute(s string) (string, int) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i+1], i + 1
			}
		}
	}
	return s, len(s)
}

// fieldDecl parses `pub name: Type,` returning the consumed length. The
// type expression scan tracks angle-bracket and bracket nesting so commas
// inside generic parameters do not terminate the field.
func fieldDecl(s string) (name, typ string, n int) {
	colon := strings.Index(s, ":")
	if colon < 0 {
		return "", "", lineLen(s)
	}
	name = strings.TrimSpace(strings.TrimPrefix(s[:colon], "pub "))

	depth := 0
	for i := colon + 1; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				return name, normalizeType(s[colon+1 : i]), i + 1
			}
		}
	}
	return name, normalizeType(s[colon+1:]), len(s)
}

// normalizeType collapses a possibly multi-line type expression to the
// single-line form the generator emits.
func normalizeType(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func lineLen(s string) int {
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		return nl + 1
	}
	return len(s)
}
