// Package results serializes experiment results to disk and reads them back.
package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wesleyorama2/squeal/internal/bench"
)

// Write serializes results pretty-printed to path.
//
// It refuses to overwrite: an existing output file is a configuration error,
// and the benchmark must not silently clobber a previous run.
func Write(path string, results []*bench.Result) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("output file already exists: %s", path)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads a results file, checks its shape against the embedded schema,
// and decodes it. Results keep the order they were written in.
func Load(path string) ([]bench.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rs []bench.Result
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("decode results file: %w", err)
	}
	return rs, nil
}
