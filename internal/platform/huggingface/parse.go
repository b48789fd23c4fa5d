package huggingface

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SimplificationResult is the interpreted output of the simplification model.
type SimplificationResult struct {
	GeneratedText string
}

const simplificationSchemaURL = "schema://huggingface/simplification.json"

// Only the first element matters; the rest of the array is ignored.
const simplificationSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "prefixItems": [
    {
      "type": "object",
      "required": ["generated_text"],
      "properties": {
        "generated_text": {"type": "string"}
      }
    }
  ]
}`

var compileSimplificationSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(simplificationSchema), &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(simplificationSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(simplificationSchemaURL)
})

// ParseSimplification validates raw against the expected response shape and
// extracts the first generated text. Any mismatch wraps ErrMalformedResult.
func ParseSimplification(raw json.RawMessage) (SimplificationResult, error) {
	if len(raw) == 0 {
		return SimplificationResult{}, fmt.Errorf("%w: empty body", ErrMalformedResult)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return SimplificationResult{}, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedResult, err)
	}
	schema, err := compileSimplificationSchema()
	if err != nil {
		return SimplificationResult{}, fmt.Errorf("compile simplification schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return SimplificationResult{}, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return SimplificationResult{}, fmt.Errorf("%w: decode", ErrMalformedResult)
	}
	var first struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(items[0], &first); err != nil {
		return SimplificationResult{}, fmt.Errorf("%w: decode first item: %v", ErrMalformedResult, err)
	}
	return SimplificationResult{GeneratedText: first.GeneratedText}, nil
}
