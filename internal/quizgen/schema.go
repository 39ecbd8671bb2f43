package quizgen

import "github.com/example/vocaquiz/internal/llm"

// QuestionSchema defines the JSON schema for question generation
// responses. Choice order is meaningful: correctIndex must point at the
// choice containing the target word.
var QuestionSchema = &llm.Schema{
	Name:        "toeic-question",
	Description: "A single TOEIC Part 5 multiple-choice question with translation and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": map[string]any{
				"type":        "string",
				"description": "English sentence with the blank written as _____",
			},
			"questionTranslation": map[string]any{
				"type":        "string",
				"description": "Japanese translation of the full sentence",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer options, all the same part of speech",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index (0-3) of the choice containing the target word",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Japanese explanation; first line names the correct letter as 正解は (X)",
			},
		},
		"required":             []any{"questionText", "questionTranslation", "choices", "correctIndex", "explanation"},
		"additionalProperties": false,
	},
}
