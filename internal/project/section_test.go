// File path: internal/project/section_test.go
package project

import (
	"encoding/json"
	"testing"
)

func TestDecodeSectionString(t *testing.T) {
	section := decodeSection(json.RawMessage(`"public class A { }"`))
	if section.Kind != SectionText || section.Text != "public class A { }" {
		t.Fatalf("unexpected decode: %+v", section)
	}
}

func TestDecodeSectionFileObject(t *testing.T) {
	section := decodeSection(json.RawMessage(`{"content":"X","Path":"Models/","FileName":"A.cs"}`))
	if section.Kind != SectionFile {
		t.Fatalf("expected file union member, got %+v", section)
	}
	if section.File.Content != "X" || section.File.Path != "Models/" || section.File.FileName != "A.cs" {
		t.Fatalf("fields not extracted: %+v", section.File)
	}
}

func TestDecodeSectionCaseInsensitiveFields(t *testing.T) {
	section := decodeSection(json.RawMessage(`{"Content":"X","path":"Models/","filename":"A.cs"}`))
	if section.Kind != SectionFile || section.File.FileName != "A.cs" {
		t.Fatalf("field casing should not matter: %+v", section)
	}
}

func TestDecodeSectionKeyedMap(t *testing.T) {
	section := decodeSection(json.RawMessage(`{"B":{"content":"two"},"A":{"content":"one"}}`))
	if section.Kind != SectionFiles || len(section.Files) != 2 {
		t.Fatalf("expected two members, got %+v", section)
	}
	// Keys are sorted for deterministic materialisation order.
	if section.Files[0].Key != "A" || section.Files[1].Key != "B" {
		t.Fatalf("member order not deterministic: %+v", section.Files)
	}
}

func TestDecodeSectionArray(t *testing.T) {
	section := decodeSection(json.RawMessage(`[{"content":"one"},"two",""]`))
	if section.Kind != SectionFiles || len(section.Files) != 2 {
		t.Fatalf("expected two usable members, got %+v", section)
	}
	if section.Files[1].Content != "two" {
		t.Fatalf("plain string member not handled: %+v", section.Files)
	}
}

func TestDecodeSectionEmptyShapes(t *testing.T) {
	for name, raw := range map[string]string{
		"null":        `null`,
		"empty":       ``,
		"blank":       `"   "`,
		"emptyObject": `{"content":""}`,
		"emptyArray":  `[]`,
		"malformed":   `{"content":`,
	} {
		if section := decodeSection(json.RawMessage(raw)); section.Kind != SectionEmpty {
			t.Fatalf("%s: expected SectionEmpty, got %+v", name, section)
		}
	}
}

func TestDecodeSectionScalarFallback(t *testing.T) {
	section := decodeSection(json.RawMessage(`42`))
	if section.Kind != SectionText || section.Text != "42" {
		t.Fatalf("scalar should coerce to text, got %+v", section)
	}
}

func TestParseRawTolerance(t *testing.T) {
	if raw := ParseRaw(nil); raw != nil {
		t.Fatalf("nil input should yield nil, got %v", raw)
	}
	if raw := ParseRaw(json.RawMessage(`""`)); raw != nil {
		t.Fatalf("string input should yield nil, got %v", raw)
	}
	raw := ParseRaw(json.RawMessage(`{"Entity":"x"}`))
	if len(raw) != 1 {
		t.Fatalf("object input should parse, got %v", raw)
	}
}

func TestNormalizePathShapes(t *testing.T) {
	cases := map[string]string{
		"./Models/":      "Models",
		"Models/A.cs":    "Models/A.cs",
		"/Models//A.cs":  "Models/A.cs",
		"Models\\A.cs":   "Models/A.cs",
		"  ./a/./b.cs  ": "a/b.cs",
		"":               "",
		".":              "",
		"./":             "",
	}
	for input, want := range cases {
		if got := normalizePath(input); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", input, got, want)
		}
	}
}
