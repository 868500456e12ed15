package progress

// SnapshotSchema is the JSON Schema for the persisted snapshot
// document. It is deliberately lenient: every property is optional and
// unknown properties are allowed, so newer stored fields never fail
// validation on an older binary. It rejects only structurally wrong
// documents (wrong types, negative counters) that a field-by-field
// merge could not safely absorb.
var SnapshotSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"points":     map[string]any{"type": "integer", "minimum": 0},
		"coins":      map[string]any{"type": "integer", "minimum": 0},
		"streakDays": map[string]any{"type": "integer", "minimum": 0},
		"lastPracticeDate": map[string]any{
			"type": []any{"string", "null"},
		},
		"skills": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"addition":       skillSchema(),
				"subtraction":    skillSchema(),
				"multiplication": multiplicationSchema(),
				"division":       skillSchema(),
			},
		},
		"room": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ownedItems": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"placedItems": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id": map[string]any{"type": "string"},
							"x":  map[string]any{"type": "number"},
							"y":  map[string]any{"type": "number"},
						},
					},
				},
				"background": map[string]any{"type": "string"},
			},
		},
		"avatar": map[string]any{"type": "object"},
		"achievements": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"dailyChallenge": map[string]any{
			"type": []any{"object", "null"},
		},
	},
}

func skillSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level":          map[string]any{"type": "integer"},
			"correctAnswers": map[string]any{"type": "integer", "minimum": 0},
			"totalAnswers":   map[string]any{"type": "integer", "minimum": 0},
		},
	}
}

func multiplicationSchema() map[string]any {
	s := skillSchema()
	props := s["properties"].(map[string]any)
	props["tables"] = map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":  map[string]any{"type": "integer", "minimum": 0},
				"total":    map[string]any{"type": "integer", "minimum": 0},
				"mastered": map[string]any{"type": "boolean"},
			},
		},
	}
	return s
}
