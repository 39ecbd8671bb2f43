package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": map[string]any{"type": "string"},
			"correctIndex": map[string]any{"type": "integer"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"questionText", "choices"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["questionText"].Type != "STRING" {
		t.Fatalf("expected STRING for questionText, got %s", schema.Properties["questionText"].Type)
	}
	if schema.Properties["correctIndex"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for correctIndex, got %s", schema.Properties["correctIndex"].Type)
	}
	if schema.Properties["choices"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for choices, got %s", schema.Properties["choices"].Type)
	}
	if schema.Properties["choices"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items for choices, got %s", schema.Properties["choices"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
