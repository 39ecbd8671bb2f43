package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":  map[string]any{"type": "string"},
				"index": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
			},
			"required": []any{"word", "index"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"word": "negotiate", "index": 2}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"word": "negotiate"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"word": "negotiate", "index": 7}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected validation error for index out of range")
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`here is your question!`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON content")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
