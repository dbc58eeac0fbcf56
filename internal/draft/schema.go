package draft

import "github.com/abhisek/fractiz/internal/llm"

func fractionProps(desc string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": desc,
		"properties": map[string]any{
			"numerator":   map[string]any{"type": "integer", "minimum": 0, "maximum": 24},
			"denominator": map[string]any{"type": "integer", "minimum": 1, "maximum": 24},
		},
		"required":             []any{"numerator", "denominator"},
		"additionalProperties": false,
	}
}

// questionSchema is the shape of a single drafted question. Every property
// is required because OpenAI strict mode rejects optional ones.
var questionSchema = &llm.Schema{
	Name:        "fraction-question-draft",
	Description: "One multiple-choice fraction question for children",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"target": fractionProps("For equivalent questions, the fraction the learner must match. Otherwise 0/1."),
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"fraction": fractionProps("The value shown on this option"),
						"visual": map[string]any{
							"type": "string",
							"enum": []any{"circle", "rectangle", "liquid"},
						},
						"correct": map[string]any{"type": "boolean"},
					},
					"required":             []any{"fraction", "visual", "correct"},
					"additionalProperties": false,
				},
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "One short Japanese sentence nudging the learner without giving the answer",
			},
		},
		"required":             []any{"target", "options", "hint"},
		"additionalProperties": false,
	},
}
