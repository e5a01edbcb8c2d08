package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-drill",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"answer":   map[string]any{"type": "integer"},
		},
		"required":             []any{"question", "answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"question":"what is a mutex?","answer":1}`)

	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkips(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{broken`))

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	raw := json.RawMessage(`{"question":"q"}`)

	err := validateResponse(testSchema, raw)

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for missing field, got %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"question":"q","answer":2}`)

	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("compiled schema should be cached after first validation")
	}
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("second validation failed: %v", err)
	}
}
