// File path: internal/project/section.go
package project

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// RawResponse is the untrusted convertedCode object returned by the
// conversion backend: a mapping from section name to a value whose shape
// varies across backend versions. Absent keys mean the backend did not
// produce that section; they are never an error.
type RawResponse map[string]json.RawMessage

// ParseRaw decodes a convertedCode payload into a RawResponse. Anything
// that is not a JSON object (empty, null, a bare string) yields an empty
// response so the caller degrades by omission.
func ParseRaw(data json.RawMessage) RawResponse {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !bytes.HasPrefix(trimmed, []byte("{")) {
		return nil
	}
	var raw RawResponse
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil
	}
	return raw
}

// SectionKind tags the decoded shape of a section value.
type SectionKind int

const (
	// SectionEmpty marks a section whose value carried no usable content.
	SectionEmpty SectionKind = iota
	// SectionText is a plain string holding the full file content.
	SectionText
	// SectionFile is a structured {content, path?, fileName?} object.
	SectionFile
	// SectionFiles is a collection of files, from an array or keyed map.
	SectionFiles
)

// SectionFileEntry is one generated file extracted from a section.
type SectionFileEntry struct {
	// Key names the member inside a collection section ("Orders" in a
	// Controllers map, a stringified index in an array). Empty for
	// singular sections.
	Key      string
	Content  string
	Path     string
	FileName string
}

// Section is the closed union a raw section value decodes into. Exactly one
// of Text or Files is meaningful depending on Kind.
type Section struct {
	Kind  SectionKind
	Text  string
	File  SectionFileEntry
	Files []SectionFileEntry
}

// decodeSection pattern-matches a raw section value into the union. It
// never fails: unrecognised shapes collapse to pretty-printed text and
// empty values collapse to SectionEmpty.
func decodeSection(raw json.RawMessage) Section {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Section{Kind: SectionEmpty}
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return Section{Kind: SectionEmpty}
		}
		if strings.TrimSpace(text) == "" {
			return Section{Kind: SectionEmpty}
		}
		return Section{Kind: SectionText, Text: text}
	case '[':
		var members []json.RawMessage
		if err := json.Unmarshal(trimmed, &members); err != nil {
			return Section{Kind: SectionEmpty}
		}
		return decodeCollection(nil, members)
	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &object); err != nil {
			return Section{Kind: SectionEmpty}
		}
		if entry, ok := decodeFileObject(object); ok {
			if strings.TrimSpace(entry.Content) == "" {
				return Section{Kind: SectionEmpty}
			}
			return Section{Kind: SectionFile, File: entry}
		}
		// A keyed map of members: {"Orders": {...}, "Users": "..."}. Keys
		// are sorted so the materialisation order is deterministic.
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		ordered := make([]json.RawMessage, 0, len(object))
		for _, key := range keys {
			ordered = append(ordered, object[key])
		}
		return decodeCollection(keys, ordered)
	default:
		// Bare scalar; coerce through the structured-text fallback.
		text := prettyJSON(trimmed)
		if strings.TrimSpace(text) == "" {
			return Section{Kind: SectionEmpty}
		}
		return Section{Kind: SectionText, Text: text}
	}
}

// decodeCollection turns ordered member values (optionally keyed) into a
// SectionFiles union member, dropping members without content.
func decodeCollection(keys []string, members []json.RawMessage) Section {
	entries := make([]SectionFileEntry, 0, len(members))
	for i, member := range members {
		key := ""
		if keys != nil {
			key = keys[i]
		}
		entry, ok := decodeMember(member)
		if !ok {
			continue
		}
		entry.Key = key
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return Section{Kind: SectionEmpty}
	}
	return Section{Kind: SectionFiles, Files: entries}
}

func decodeMember(raw json.RawMessage) (SectionFileEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return SectionFileEntry{}, false
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return SectionFileEntry{}, false
		}
		if strings.TrimSpace(text) == "" {
			return SectionFileEntry{}, false
		}
		return SectionFileEntry{Content: text}, true
	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &object); err != nil {
			return SectionFileEntry{}, false
		}
		entry, ok := decodeFileObject(object)
		if !ok || strings.TrimSpace(entry.Content) == "" {
			return SectionFileEntry{}, false
		}
		return entry, true
	default:
		text := prettyJSON(trimmed)
		if strings.TrimSpace(text) == "" {
			return SectionFileEntry{}, false
		}
		return SectionFileEntry{Content: text}, true
	}
}

// decodeFileObject recognises the {content, path?, fileName?} shape. Field
// names are matched case-insensitively because backend versions disagree
// about casing. Returns false when the object carries no content field at
// all, which signals a keyed collection instead.
func decodeFileObject(object map[string]json.RawMessage) (SectionFileEntry, bool) {
	var entry SectionFileEntry
	found := false
	for key, value := range object {
		switch strings.ToLower(key) {
		case "content", "code", "sourcecode":
			entry.Content = stringOrPretty(value)
			found = true
		case "path", "filepath", "directory":
			entry.Path = stringValue(value)
		case "filename", "file_name", "name":
			entry.FileName = stringValue(value)
		}
	}
	return entry, found
}

func stringValue(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// stringOrPretty extracts a string leaf, falling back to indented JSON for
// structured values rather than rejecting them.
func stringOrPretty(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return ""
		}
		return text
	}
	return prettyJSON(trimmed)
}

func prettyJSON(raw []byte) string {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(raw)
	}
	if value == nil {
		return ""
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}
