package content

// packSchemaURL is the resource name the pack schema is registered under.
const packSchemaURL = "schema://biofit-content-pack.json"

var (
	idIntSchema = map[string]any{"type": "integer", "minimum": 1}
	textSchema  = map[string]any{"type": "string", "minLength": 1}
)

func levelMapSchema(item map[string]any) map[string]any {
	return map[string]any{
		"type":          "object",
		"propertyNames": map[string]any{"pattern": "^[1-3]$"},
		"additionalProperties": map[string]any{
			"type":  "array",
			"items": item,
		},
	}
}

// packSchema is the JSON Schema every content pack file must satisfy.
var packSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "thresholds", "badges", "true_false", "match", "scenarios", "trivia"},
	"properties": map[string]any{
		"version":         map[string]any{"type": "string", "minLength": 1},
		"min_app_version": map[string]any{"type": "string"},
		"thresholds": map[string]any{
			"type":     "object",
			"required": []any{"avanzado", "experto", "maestro"},
			"properties": map[string]any{
				"avanzado": map[string]any{"type": "integer", "minimum": 1},
				"experto":  map[string]any{"type": "integer", "minimum": 1},
				"maestro":  map[string]any{"type": "integer", "minimum": 1},
			},
		},
		"badges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "name", "icon", "required_points"},
				"properties": map[string]any{
					"id":              textSchema,
					"name":            textSchema,
					"description":     map[string]any{"type": "string"},
					"icon":            textSchema,
					"required_points": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
		"true_false": levelMapSchema(map[string]any{
			"type":     "object",
			"required": []any{"id", "statement", "is_true"},
			"properties": map[string]any{
				"id":          idIntSchema,
				"statement":   textSchema,
				"is_true":     map[string]any{"type": "boolean"},
				"explanation": map[string]any{"type": "string"},
			},
		}),
		"match": levelMapSchema(map[string]any{
			"type":     "object",
			"required": []any{"id", "text", "kind", "match_id"},
			"properties": map[string]any{
				"id":       textSchema,
				"text":     textSchema,
				"kind":     map[string]any{"enum": []any{"benefit", "system"}},
				"match_id": textSchema,
			},
		}),
		"scenarios": levelMapSchema(map[string]any{
			"type":     "object",
			"required": []any{"id", "customer", "clerk_response", "is_correct", "feedback"},
			"properties": map[string]any{
				"id":             idIntSchema,
				"customer":       textSchema,
				"clerk_response": textSchema,
				"is_correct":     map[string]any{"type": "boolean"},
				"correct_action": map[string]any{"type": "string"},
				"feedback":       map[string]any{"type": "string"},
			},
		}),
		"trivia": levelMapSchema(map[string]any{
			"type":     "object",
			"required": []any{"id", "question", "options", "correct_index"},
			"properties": map[string]any{
				"id":       idIntSchema,
				"question": textSchema,
				"options": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items":    textSchema,
				},
				"correct_index": map[string]any{"type": "integer", "minimum": 0},
			},
		}),
	},
}
