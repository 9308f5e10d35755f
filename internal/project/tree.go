// File path: internal/project/tree.go
package project

import (
	"sort"
	"strings"
)

// FileTree is the normalised output of one pass: relative POSIX paths
// mapped to file content. Paths are unique; writes to an existing path
// replace it without disturbing insertion order.
type FileTree struct {
	Identity Identity

	entries map[string]string
	order   []string
}

// NewFileTree returns an empty tree carrying the inferred identity.
func NewFileTree(identity Identity) *FileTree {
	return &FileTree{Identity: identity, entries: make(map[string]string)}
}

// Put records content at the normalised path. Empty or whitespace-only
// content is dropped so zero-byte files are never materialised; trimming is
// only for that boundary check, the stored content is untouched.
func (t *FileTree) Put(path, content string) bool {
	cleaned := normalizePath(path)
	if cleaned == "" || strings.TrimSpace(content) == "" {
		return false
	}
	if _, exists := t.entries[cleaned]; !exists {
		t.order = append(t.order, cleaned)
	}
	t.entries[cleaned] = content
	return true
}

// Get returns the content stored at path.
func (t *FileTree) Get(path string) (string, bool) {
	content, ok := t.entries[normalizePath(path)]
	return content, ok
}

// Has reports whether path is present.
func (t *FileTree) Has(path string) bool {
	_, ok := t.entries[normalizePath(path)]
	return ok
}

// Len reports the number of files in the tree.
func (t *FileTree) Len() int {
	return len(t.entries)
}

// Paths returns every path in insertion order.
func (t *FileTree) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns a copy of the path-to-content mapping.
func (t *FileTree) Entries() map[string]string {
	out := make(map[string]string, len(t.entries))
	for path, content := range t.entries {
		out[path] = content
	}
	return out
}

// ExpandedDirs lists every ancestor directory in the tree, sorted. It is a
// presentation hint for the folder view, not a correctness structure.
func (t *FileTree) ExpandedDirs() []string {
	seen := make(map[string]struct{})
	for _, p := range t.order {
		parts := strings.Split(p, "/")
		for i := 1; i < len(parts); i++ {
			seen[strings.Join(parts[:i], "/")] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for dir := range seen {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

// normalizePath canonicalises a relative path: forward slashes, no leading
// "./" or "/", no trailing slash, empty segments collapsed.
func normalizePath(path string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(path), "\\", "/")
	for strings.HasPrefix(cleaned, "./") {
		cleaned = cleaned[2:]
	}
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return ""
	}
	parts := strings.Split(cleaned, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "/")
}

// joinPath joins non-empty segments with forward slashes and normalises
// the result.
func joinPath(segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		kept = append(kept, segment)
	}
	return normalizePath(strings.Join(kept, "/"))
}
