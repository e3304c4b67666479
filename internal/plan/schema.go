package plan

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// planSchema is the JSON schema every plan document must satisfy before it
// is decoded into a typed config.
var planSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dataset": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Registered generator name",
		},
		"seed": map[string]any{
			"type":        "integer",
			"description": "Base seed; omit to draw one at construction",
		},
		"size": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Virtual dataset size",
		},
		"params": map[string]any{
			"type":        "object",
			"description": "Generator-specific config overrides, keyed by JSON field name",
		},
	},
	"required":             []any{"dataset"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw against the plan schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidPlan, err)
	}
	compiled, err := getCompiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return nil
}

// getCompiledSchema compiles the plan schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(planSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal plan schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse plan schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://plan.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
