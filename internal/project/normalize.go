// File path: internal/project/normalize.go
package project

import (
	"fmt"
	"strings"

	"github.com/nicodishanthj/legacybridge/internal/common"
)

// Options tune one normalisation pass.
type Options struct {
	Profile Profile
}

// Normalize rebuilds a coherent project file tree from the untrusted
// conversion response. It never fails: malformed or missing sections
// degrade by omission. The pass is pure with respect to its inputs except
// for the generated manifest identifiers.
//
// The steps run in a fixed order so repeated sections resolve
// deterministically: identity inference, the singular section table, the
// plural section table, scaffolding defaults, test placement, manifest
// synthesis.
func Normalize(raw RawResponse, testSource string, opts Options) *FileTree {
	logger := common.Logger()
	profile := opts.Profile
	identity := InferIdentity(raw, profile)
	tree := NewFileTree(identity)
	root := profile.projectRoot(identity)
	materialized := 0

	for _, rule := range profile.singularRules() {
		value, ok := lookupSection(raw, rule.Key)
		if !ok {
			continue
		}
		section := decodeSection(value)
		switch section.Kind {
		case SectionEmpty:
			continue
		case SectionText:
			path := joinPath(root, profile.expand(rule.Dir, identity), profile.expand(rule.Name, identity))
			if tree.Put(path, section.Text) {
				materialized++
			}
		case SectionFile:
			path := resolveEntryPath(profile, root, rule.Dir, rule.Name, identity, section.File)
			if tree.Put(path, section.File.Content) {
				materialized++
			}
		case SectionFiles:
			// A singular key occasionally arrives as a collection; treat
			// its members like plural-section entries under the same
			// default directory.
			for i, entry := range section.Files {
				name := memberFileName(profile, entry, rule.Key, "", i, identity)
				path := resolveEntryPath(profile, root, rule.Dir, name, identity, entry)
				if tree.Put(path, entry.Content) {
					materialized++
				}
			}
		}
	}

	for _, rule := range profile.pluralRules() {
		value, ok := lookupSection(raw, rule.Key)
		if !ok {
			continue
		}
		section := decodeSection(value)
		var entries []SectionFileEntry
		switch section.Kind {
		case SectionFiles:
			entries = section.Files
		case SectionFile:
			entries = []SectionFileEntry{section.File}
		case SectionText:
			entries = []SectionFileEntry{{Content: section.Text}}
		default:
			continue
		}
		for i, entry := range entries {
			name := memberFileName(profile, entry, rule.Key, rule.Suffix, i, identity)
			path := resolveEntryPath(profile, root, rule.Dir, name, identity, entry)
			if tree.Put(path, entry.Content) {
				materialized++
			}
		}
	}

	// An entirely unproductive response yields an empty tree: fabricating a
	// skeleton around zero generated code would only look like success.
	if materialized == 0 {
		logger.Debug("project: no sections materialized", "sections", len(raw))
		return tree
	}

	injectScaffolding(tree, profile, identity)

	testCode := strings.TrimSpace(testSource)
	if testCode == "" {
		testCode = embeddedTestSource(raw)
	}
	testPlaced := false
	if testCode != "" {
		testPlaced = placeTests(tree, profile, identity, testCode)
	}

	writeManifest(tree, profile, identity, testPlaced)

	logger.Info(
		"project: normalization complete",
		"profile", profile.String(),
		"class", identity.ClassName,
		"project", identity.ProjectName,
		"files", tree.Len(),
		"tests", testPlaced,
	)
	return tree
}

// resolveEntryPath computes the final path for one extracted file: an
// explicit backend-supplied path and file name win over the table default.
func resolveEntryPath(profile Profile, root, defaultDir, defaultName string, identity Identity, entry SectionFileEntry) string {
	dir := entry.Path
	if normalizePath(dir) == "" {
		dir = profile.expand(defaultDir, identity)
	}
	name := strings.TrimSpace(entry.FileName)
	if name == "" {
		name = profile.expand(defaultName, identity)
	}
	return joinPath(root, dir, name)
}

// memberFileName derives a file name for a collection member without an
// explicit one: the member key plus the section's singular suffix, or a
// positional name when the member came from an array.
func memberFileName(profile Profile, entry SectionFileEntry, sectionKey, suffix string, index int, identity Identity) string {
	if name := strings.TrimSpace(entry.FileName); name != "" {
		return name
	}
	ext := profile.SourceExt()
	base := strings.TrimSpace(entry.Key)
	if base == "" {
		singular := strings.TrimSuffix(sectionKey, "s")
		return fmt.Sprintf("%s%d%s", singular, index+1, ext)
	}
	if strings.Contains(base, ".") {
		// The key already names a file.
		return base
	}
	if suffix != "" && !strings.HasSuffix(base, suffix) {
		base += suffix
	}
	return base + ext
}

// testSectionKeys are the embedded locations test code may arrive under
// when not supplied separately.
var testSectionKeys = []string{"UnitTests", "UnitTestCode", "Tests", "TestCode"}

func embeddedTestSource(raw RawResponse) string {
	for _, key := range testSectionKeys {
		value, ok := lookupSection(raw, key)
		if !ok {
			continue
		}
		section := decodeSection(value)
		switch section.Kind {
		case SectionText:
			return strings.TrimSpace(section.Text)
		case SectionFile:
			return strings.TrimSpace(section.File.Content)
		}
	}
	return ""
}
