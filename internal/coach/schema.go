package coach

import "github.com/akrishn/studyhub/internal/llm"

// DrillSchema defines the JSON schema for interview drill generation.
var DrillSchema = &llm.Schema{
	Name:        "interview_drill",
	Description: "One multiple-choice interview question with four options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The interview question, answerable without the study material in front of the candidate",
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correct_index": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is correct, two sentences at most",
			},
		},
		"required":             []string{"question", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	},
}
