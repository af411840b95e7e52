package quizbank

// bankSchema defines the JSON schema for the questions file: an array of
// question records. Cross-field rules (answer must be one of the options,
// IDs must be unique) are checked separately in Parse.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"topic": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"answer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "topic", "difficulty", "question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
