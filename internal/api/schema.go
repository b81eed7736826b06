package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// modelListSchema is the minimum shape of GET /models the dashboard needs.
var modelListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "name"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "integer"},
			"name":        map[string]any{"type": "string"},
			"type":        map[string]any{"type": []any{"string", "null"}},
			"framework":   map[string]any{"type": []any{"string", "null"}},
			"description": map[string]any{"type": []any{"string", "null"}},
			"metrics":     map[string]any{"type": []any{"object", "null"}},
		},
	},
}

// modelSchema is the shape of a single model record.
var modelSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "name"},
	"properties": map[string]any{
		"id":   map[string]any{"type": "integer"},
		"name": map[string]any{"type": "string"},
	},
}

// validateBody checks body against schema and wraps any violation in
// ErrMalformedBody.
func validateBody(schema map[string]any, body []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedBody, strings.Join(details, "; "))
}
