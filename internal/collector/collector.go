// File path: internal/collector/collector.go
package collector

import (
	"sort"
	"strings"

	"github.com/nicodishanthj/legacybridge/internal/common"
)

// FileType labels an uploaded legacy source file by inferred role.
type FileType string

const (
	TypeCobol    FileType = "COBOL Code"
	TypeJCL      FileType = "JCL"
	TypeCopybook FileType = "Copybooks"
	TypeVSAM     FileType = "VSAM Definitions"
	TypeUnknown  FileType = "Unknown"
)

// extensionTypes lists lowercase file extensions and their inferred types
// in precedence order: the first suffix match wins. The control-card
// extensions (.ctl, .cntl) are claimed by VSAM definitions rather than
// JCL, matching the behaviour users of the demo expect.
var extensionTypes = []struct {
	ext      string
	fileType FileType
}{
	{".cobol", TypeCobol},
	{".cob", TypeCobol},
	{".cbl", TypeCobol},
	{".pco", TypeCobol},
	{".ccp", TypeCobol},
	{".jcl", TypeJCL},
	{".job", TypeJCL},
	{".copybook", TypeCopybook},
	{".cblcpy", TypeCopybook},
	{".cpy", TypeCopybook},
	{".inc", TypeCopybook},
	{".cntl", TypeVSAM},
	{".ctl", TypeVSAM},
	{".def", TypeVSAM},
	{".vsam", TypeVSAM},
}

// Classify infers a file type from the file name extension.
func Classify(name string) FileType {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range extensionTypes {
		if strings.HasSuffix(lower, entry.ext) {
			return entry.fileType
		}
	}
	return TypeUnknown
}

// SourceFile is one uploaded file held in memory for the session.
type SourceFile struct {
	Name    string   `json:"fileName"`
	Type    FileType `json:"type"`
	Content string   `json:"content"`
}

// SourceSet collects uploaded files keyed by name. Duplicate names are
// last-write-wins; uploads within a session are single-user and sequential
// so no finer ordering is needed.
type SourceSet struct {
	files map[string]SourceFile
}

func NewSourceSet() *SourceSet {
	return &SourceSet{files: make(map[string]SourceFile)}
}

// Add records a file, classifying it by extension.
func (s *SourceSet) Add(name, content string) SourceFile {
	file := SourceFile{Name: name, Type: Classify(name), Content: content}
	if _, exists := s.files[name]; exists {
		common.Logger().Debug("collector: replacing duplicate upload", "file", name)
	}
	s.files[name] = file
	return file
}

// Len reports the number of distinct files collected.
func (s *SourceSet) Len() int {
	return len(s.files)
}

// Files returns the collected files sorted by name.
func (s *SourceSet) Files() []SourceFile {
	out := make([]SourceFile, 0, len(s.files))
	for _, file := range s.files {
		out = append(out, file)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Grouped buckets the collected files by inferred type, names sorted within
// each bucket. Types with no files are omitted.
func (s *SourceSet) Grouped() map[FileType][]SourceFile {
	grouped := make(map[FileType][]SourceFile)
	for _, file := range s.Files() {
		grouped[file.Type] = append(grouped[file.Type], file)
	}
	return grouped
}

// FileData flattens the set into the name-to-content mapping the analyze
// endpoint expects.
func (s *SourceSet) FileData() map[string]string {
	out := make(map[string]string, len(s.files))
	for name, file := range s.files {
		out[name] = file.Content
	}
	return out
}

// HasConvertible reports whether at least one file was recognised as COBOL
// source; analysis is refused without one.
func (s *SourceSet) HasConvertible() bool {
	for _, file := range s.files {
		if file.Type == TypeCobol {
			return true
		}
	}
	return false
}

// CombinedSource concatenates COBOL sources followed by copybooks, each
// preceded by a header naming the file, for the convert payload.
func (s *SourceSet) CombinedSource() string {
	var builder strings.Builder
	appendGroup := func(fileType FileType) {
		for _, file := range s.Files() {
			if file.Type != fileType {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n\n")
			}
			builder.WriteString("      *> FILE: " + file.Name + "\n")
			builder.WriteString(file.Content)
		}
	}
	appendGroup(TypeCobol)
	appendGroup(TypeCopybook)
	appendGroup(TypeVSAM)
	return builder.String()
}

// Reset discards every collected file.
func (s *SourceSet) Reset() {
	s.files = make(map[string]SourceFile)
}
