package lessons

import "github.com/abhisek/linguist/internal/llm"

// QuestionsSchema defines the JSON schema for a lesson batch.
var QuestionsSchema = &llm.Schema{
	Name:        "lesson-questions",
	Description: "A batch of Dutch multiple-choice questions about one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Short identifier, unique within the batch, e.g. \"q1\"",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question in Dutch",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    OptionsPerQuestion,
							"maxItems":    OptionsPerQuestion,
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 distinct answer options in Dutch",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The exact text of the one correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining why the answer is correct",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short subject label, e.g. \"Biologie\"",
						},
					},
					"required":             []any{"id", "question", "options", "correctAnswer", "explanation", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Category      string   `json:"category"`
}
