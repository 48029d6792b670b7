package results

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema pins the results-file contract: an array of experiment
// records with exactly these field names and integer counters.
const resultSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["behavior", "seed", "n_threads", "n_scans", "n_updates", "retries", "transactions", "tps"],
    "properties": {
      "behavior": {"type": "string", "enum": ["DEFERRED", "IMMEDIATE", "CONCURRENT"]},
      "seed": {"type": "integer", "minimum": 0},
      "n_threads": {"type": "integer", "minimum": 1},
      "n_scans": {"type": "integer", "minimum": 0},
      "n_updates": {"type": "integer", "minimum": 0},
      "retries": {"type": "integer", "minimum": 0},
      "transactions": {"type": "integer", "minimum": 0},
      "tps": {"type": "integer", "minimum": 0}
    }
  }
}`

// validate checks data against resultSchema.
func validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("results.json", strings.NewReader(resultSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("results.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("not a valid results file: %w", err)
	}
	return nil
}
