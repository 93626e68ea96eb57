package quizgen

import "github.com/keikurono7/major-project/internal/llm"

// quizSchema is the structured-output contract every generated quiz must
// satisfy before it reaches a student.
var quizSchema = &llm.Schema{
	Name:        "topic-quiz",
	Description: "A multiple-choice quiz on a single syllabus topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Exactly four options, each prefixed with its letter, e.g. \"A) First option\"",
							"items":       map[string]any{"type": "string"},
							"minItems":    OptionsPerQuestion,
							"maxItems":    OptionsPerQuestion,
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The letter of the correct option",
							"enum":        []any{"A", "B", "C", "D"},
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct",
						},
					},
					"required":             []any{"question", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
