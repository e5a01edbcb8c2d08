package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sessionsSchema is the strict JSON Schema for a content document. The
// in-app loader stays lenient; this schema backs the `validate` command so
// authors can catch missing fields before they ship a content file.
var sessionsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"session_id":    map[string]any{"type": "string", "minLength": 1},
			"session_title": map[string]any{"type": "string", "minLength": 1},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic_id":    map[string]any{"type": "string", "minLength": 1},
						"topic_title": map[string]any{"type": "string", "minLength": 1},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Easy", "Medium", "Hard"},
						},
						"tags":               map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"related_concepts":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"content_markdown":   map[string]any{"type": "string"},
						"interview_guidance": map[string]any{"type": "string"},
						"example_usage":      map[string]any{"type": "string"},
					},
					"required": []any{"topic_id", "topic_title", "difficulty", "content_markdown"},
				},
			},
		},
		"required": []any{"session_id", "session_title", "topics"},
	},
}

// Validate checks a raw content document against the strict schema.
// It also enforces the uniqueness invariants the schema cannot express:
// session IDs unique across the document, topic IDs unique within a session.
func Validate(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSessionsSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	sessions, err := Parse(data)
	if err != nil {
		return err
	}

	seenSessions := make(map[string]bool)
	for _, s := range sessions {
		if seenSessions[s.ID] {
			return fmt.Errorf("duplicate session_id %q", s.ID)
		}
		seenSessions[s.ID] = true

		seenTopics := make(map[string]bool)
		for _, t := range s.Topics {
			if seenTopics[t.ID] {
				return fmt.Errorf("session %q: duplicate topic_id %q", s.ID, t.ID)
			}
			seenTopics[t.ID] = true
		}
	}
	return nil
}

func compiledSessionsSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(sessionsSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://sessions.json", def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://sessions.json")
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
