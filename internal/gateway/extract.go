// File path: internal/gateway/extract.go
package gateway

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSON recovers a JSON object from a model reply that did not come
// back as bare JSON: it tries a fenced block first, then the widest
// brace-delimited span. Returns nil when nothing parses.
func extractJSON(content string) json.RawMessage {
	trimmed := strings.TrimSpace(content)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed)
	}
	if match := fencePattern.FindStringSubmatch(trimmed); match != nil {
		candidate := strings.TrimSpace(match[1])
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate)
		}
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate)
		}
	}
	return nil
}

// decodeLoose unmarshals extracted JSON into a generic value, returning
// nil on failure rather than an error; callers degrade by omission.
func decodeLoose(raw json.RawMessage) interface{} {
	if raw == nil {
		return nil
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}
