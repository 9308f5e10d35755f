// File path: internal/gateway/extract_test.go
package gateway

import "testing"

func TestExtractJSONBareObject(t *testing.T) {
	raw := extractJSON(`  {"status": "success"}  `)
	if raw == nil || string(raw) != `{"status": "success"}` {
		t.Fatalf("bare object not recovered: %q", raw)
	}
}

func TestExtractJSONFencedBlock(t *testing.T) {
	reply := "Here is the result:\n```json\n{\"Entity\": \"x\"}\n```\nDone."
	raw := extractJSON(reply)
	if raw == nil || string(raw) != `{"Entity": "x"}` {
		t.Fatalf("fenced block not recovered: %q", raw)
	}
}

func TestExtractJSONUnlabelledFence(t *testing.T) {
	reply := "```\n{\"a\": 1}\n```"
	if raw := extractJSON(reply); raw == nil {
		t.Fatalf("unlabelled fence should be recovered")
	}
}

func TestExtractJSONBraceSpan(t *testing.T) {
	reply := `The model says {"a": {"b": 2}} and nothing else.`
	raw := extractJSON(reply)
	if raw == nil || string(raw) != `{"a": {"b": 2}}` {
		t.Fatalf("brace span not recovered: %q", raw)
	}
}

func TestExtractJSONNothingUsable(t *testing.T) {
	for _, reply := range []string{"", "no json here", "{broken", "```\nnot json\n```"} {
		if raw := extractJSON(reply); raw != nil {
			t.Fatalf("expected nil for %q, got %q", reply, raw)
		}
	}
}

func TestDecodeLoose(t *testing.T) {
	if value := decodeLoose(nil); value != nil {
		t.Fatalf("nil input should decode to nil")
	}
	value := decodeLoose([]byte(`{"a": 1}`))
	object, ok := value.(map[string]interface{})
	if !ok || object["a"].(float64) != 1 {
		t.Fatalf("unexpected decode: %#v", value)
	}
}
