// File path: internal/requirements/format.go
package requirements

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Item is one discrete requirement line extracted from the analysis output.
type Item struct {
	Text string `json:"text"`
}

// Document is the formatter output: the full Markdown rendering plus the
// flat requirement list the UI shows as checkable line items.
type Document struct {
	Markdown string `json:"markdown"`
	Items    []Item `json:"items"`
}

// businessKeyOrder fixes the heading order for the recognised top-level
// keys of a business-requirements object; unknown keys follow alphabetically.
var businessKeyOrder = []string{
	"Overview",
	"Objectives",
	"Business Rules & Requirements",
	"Assumptions & Recommendations",
	"Expected Output",
}

// Build renders both requirement objects into one Document. Either input
// may be a plain string, a nested object of bounded depth, or absent.
func Build(business, technical interface{}) Document {
	var builder strings.Builder
	if business != nil {
		builder.WriteString("# Business Requirements\n\n")
		renderValue(&builder, business, 2)
	}
	if technical != nil {
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("# Technical Requirements\n\n")
		renderTechnical(&builder, technical)
	}
	markdown := strings.TrimRight(builder.String(), "\n") + "\n"
	return Document{Markdown: markdown, Items: ExtractItems(markdown)}
}

func renderValue(builder *strings.Builder, value interface{}, level int) {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			builder.WriteString(trimmed + "\n\n")
		}
	case map[string]interface{}:
		for _, key := range orderedKeys(v) {
			child := v[key]
			builder.WriteString(strings.Repeat("#", min(level, 6)) + " " + key + "\n\n")
			renderValue(builder, child, level+1)
		}
	case []interface{}:
		for _, member := range v {
			switch m := member.(type) {
			case string:
				if trimmed := strings.TrimSpace(m); trimmed != "" {
					builder.WriteString("- " + trimmed + "\n")
				}
			default:
				builder.WriteString("- " + fmt.Sprint(m) + "\n")
			}
		}
		builder.WriteString("\n")
	case nil:
	default:
		builder.WriteString(fmt.Sprint(v) + "\n\n")
	}
}

// renderTechnical knows the {technicalRequirements: [{id, description,
// complexity}]} shape the analysis endpoint returns, and falls back to the
// generic renderer for anything else.
func renderTechnical(builder *strings.Builder, value interface{}) {
	object, ok := value.(map[string]interface{})
	if !ok {
		renderValue(builder, value, 2)
		return
	}
	list, ok := object["technicalRequirements"].([]interface{})
	if !ok {
		renderValue(builder, value, 2)
		return
	}
	index := 0
	for _, member := range list {
		entry, ok := member.(map[string]interface{})
		if !ok {
			continue
		}
		description, _ := entry["description"].(string)
		if strings.TrimSpace(description) == "" {
			continue
		}
		index++
		line := fmt.Sprintf("%d. %s", index, strings.TrimSpace(description))
		if complexity, _ := entry["complexity"].(string); complexity != "" {
			line += fmt.Sprintf(" _(complexity: %s)_", complexity)
		}
		builder.WriteString(line + "\n")
	}
	builder.WriteString("\n")
}

func orderedKeys(object map[string]interface{}) []string {
	known := make([]string, 0, len(object))
	for _, key := range businessKeyOrder {
		if _, ok := object[key]; ok {
			known = append(known, key)
		}
	}
	rest := make([]string, 0, len(object))
	for key := range object {
		if !contains(known, key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(known, rest...)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

var (
	numberedLine = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	bulletedLine = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
)

// ExtractItems pulls discrete requirement lines out of rendered Markdown:
// numbered lines first, then bulleted ones, then, when neither style
// appears at all, any substantive non-heading line.
func ExtractItems(markdown string) []Item {
	lines := strings.Split(markdown, "\n")
	var items []Item
	for _, line := range lines {
		if match := numberedLine.FindStringSubmatch(line); match != nil {
			items = append(items, Item{Text: strings.TrimSpace(match[1])})
		} else if match := bulletedLine.FindStringSubmatch(line); match != nil {
			items = append(items, Item{Text: strings.TrimSpace(match[1])})
		}
	}
	if len(items) > 0 {
		return items
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || len(trimmed) < 4 {
			continue
		}
		items = append(items, Item{Text: trimmed})
	}
	return items
}
