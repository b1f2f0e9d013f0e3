package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema constrains a catalog override file: a non-empty array of
// exercise entries with closed joint and level ranges.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string", "minLength": 1},
			"name":     map[string]any{"type": "string", "minLength": 1},
			"joint":    map[string]any{"type": "string", "enum": []any{"knee", "hip", "shoulder"}},
			"level":    map[string]any{"type": "integer", "minimum": 1, "maximum": 4},
			"category": map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"id", "name", "joint", "level", "category"},
		"additionalProperties": false,
	},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// compiledCatalogSchema compiles the catalog schema once and caches it.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileSchemaError = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileSchemaError = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://exercise-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaError
}

// LoadFile reads a JSON exercise catalog from path, validates it against the
// catalog schema, and returns it as a Catalog. Used to replace the seed
// library with externally curated content.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return loadBytes(raw)
}

func loadBytes(raw []byte) (*Catalog, error) {
	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var exercises []Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// Schema guarantees shape; duplicate IDs still need an explicit check.
	seen := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		if seen[e.ID] {
			return nil, fmt.Errorf("validate catalog: duplicate exercise id %q", e.ID)
		}
		seen[e.ID] = true
	}

	return New(exercises), nil
}
