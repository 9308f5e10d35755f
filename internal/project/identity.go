// File path: internal/project/identity.go
package project

import (
	"regexp"
	"sort"
	"strings"
)

// Identity is the class and project name inferred once per normalisation
// pass and reused for every generated path and scaffolding file. It is
// never re-derived per file; doing so would scatter inconsistent
// namespaces across the output.
type Identity struct {
	ClassName   string `json:"className"`
	ProjectName string `json:"projectName"`
}

const (
	defaultClassName     = "Employee"
	defaultDotNetProject = "Company.Project"
	defaultSpringPackage = "com.company.project"
)

var (
	classPattern     = regexp.MustCompile(`(?m)\bclass\s+([A-Za-z_][A-Za-z0-9_]*)`)
	namespacePattern = regexp.MustCompile(`(?m)\bnamespace\s+([A-Za-z_][A-Za-z0-9_.]*)`)
	packagePattern   = regexp.MustCompile(`(?m)\bpackage\s+([a-zA-Z_][A-Za-z0-9_.]*)\s*;`)
)

// identitySections is the fixed priority order scanned for declaration
// patterns: the domain entity first, then the remaining singular sections.
var identitySections = []string{
	"Entity", "Service", "ServiceImpl", "Controller", "Repository",
	"RepositoryImpl", "DbContext", "Program", "Startup",
}

// InferIdentity scans the raw response for a type declaration and a
// namespace/package declaration. This is a best-effort heuristic over
// generated source text, not a parse: the first match wins for each value
// independently, and the documented defaults apply when nothing matches.
func InferIdentity(raw RawResponse, profile Profile) Identity {
	identity := Identity{}
	scan := func(content string) {
		if identity.ClassName == "" {
			if match := classPattern.FindStringSubmatch(content); match != nil {
				identity.ClassName = match[1]
			}
		}
		if identity.ProjectName == "" {
			if match := profile.namespaceRegexp().FindStringSubmatch(content); match != nil {
				identity.ProjectName = trimLayerSuffix(match[1])
			}
		}
	}
	for _, name := range identitySections {
		if identity.ClassName != "" && identity.ProjectName != "" {
			break
		}
		value, ok := lookupSection(raw, name)
		if !ok {
			continue
		}
		section := decodeSection(value)
		switch section.Kind {
		case SectionText:
			scan(section.Text)
		case SectionFile:
			scan(section.File.Content)
		case SectionFiles:
			for _, entry := range section.Files {
				scan(entry.Content)
			}
		}
	}
	if identity.ClassName == "" || identity.ProjectName == "" {
		// Second pass over whatever else the backend sent. Keys are sorted
		// so the inferred identity is stable across repeated passes.
		rest := make([]string, 0, len(raw))
		for name := range raw {
			if isIdentitySection(name) {
				continue
			}
			rest = append(rest, name)
		}
		sort.Strings(rest)
		for _, name := range rest {
			if identity.ClassName != "" && identity.ProjectName != "" {
				break
			}
			section := decodeSection(raw[name])
			switch section.Kind {
			case SectionText:
				scan(section.Text)
			case SectionFile:
				scan(section.File.Content)
			case SectionFiles:
				for _, entry := range section.Files {
					scan(entry.Content)
				}
			}
		}
	}
	if identity.ClassName == "" {
		identity.ClassName = defaultClassName
	}
	if identity.ProjectName == "" {
		identity.ProjectName = profile.defaultProject()
	}
	return identity
}

// layerSegments are namespace tails that name an architectural layer, not
// the project: "Company.Project.Models" identifies project Company.Project.
var layerSegments = map[string]struct{}{
	"models": {}, "controllers": {}, "services": {}, "repositories": {},
	"data": {}, "interfaces": {}, "tests": {}, "model": {}, "controller": {},
	"service": {}, "repository": {}, "config": {}, "entity": {}, "entities": {},
}

// trimLayerSuffix drops trailing layer segments from a sniffed namespace,
// keeping at least one segment.
func trimLayerSuffix(namespace string) string {
	segments := strings.Split(namespace, ".")
	for len(segments) > 1 {
		last := strings.ToLower(segments[len(segments)-1])
		if _, ok := layerSegments[last]; !ok {
			break
		}
		segments = segments[:len(segments)-1]
	}
	return strings.Join(segments, ".")
}

// lookupSection finds a section by name ignoring case, so "Services" and
// "services" resolve identically across backend versions.
func lookupSection(raw RawResponse, name string) ([]byte, bool) {
	if value, ok := raw[name]; ok {
		return value, true
	}
	lower := strings.ToLower(name)
	for key, value := range raw {
		if strings.ToLower(key) == lower {
			return value, true
		}
	}
	return nil, false
}

func isIdentitySection(name string) bool {
	lower := strings.ToLower(name)
	for _, candidate := range identitySections {
		if strings.ToLower(candidate) == lower {
			return true
		}
	}
	return false
}
