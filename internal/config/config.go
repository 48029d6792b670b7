// Package config loads benchmark run configuration from YAML or JSON files
// and applies the defaults shared with the CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig describes one full benchmark run: where the store lives, how it
// is seeded, and the parameter lists the experiment grid is built from.
type RunConfig struct {
	DB       string `yaml:"db" json:"db"`
	Output   string `yaml:"output" json:"output"`
	Seed     int    `yaml:"seed" json:"seed"`
	Threads  []int  `yaml:"threads" json:"threads"`
	Scans    []int  `yaml:"scans" json:"scans"`
	Updates  []int  `yaml:"updates" json:"updates"`
	Duration string `yaml:"duration" json:"duration"`
}

// Load reads a run configuration from a file. The format is determined by
// extension: .json is JSON, everything else is treated as YAML.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg RunConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields with the reference workload: 1M seeded
// rows, 1..16 threads, scans {0, 10}, updates {0, 1, 10}, 30 s experiments.
func ApplyDefaults(cfg *RunConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = 1_000_000
	}
	if len(cfg.Threads) == 0 {
		for t := 1; t <= 16; t++ {
			cfg.Threads = append(cfg.Threads, t)
		}
	}
	if len(cfg.Scans) == 0 {
		cfg.Scans = []int{0, 10}
	}
	if len(cfg.Updates) == 0 {
		cfg.Updates = []int{0, 1, 10}
	}
	if cfg.Duration == "" {
		cfg.Duration = "30s"
	}
}

// Validate checks the configuration for errors that must abort the run
// before any experiment starts.
func (cfg *RunConfig) Validate() error {
	if cfg.DB == "" {
		return fmt.Errorf("db path is required")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Seed <= 0 {
		return fmt.Errorf("seed row count must be positive, got %d", cfg.Seed)
	}
	for _, t := range cfg.Threads {
		if t < 1 {
			return fmt.Errorf("thread counts must be at least 1, got %d", t)
		}
	}
	for _, s := range cfg.Scans {
		if s < 0 {
			return fmt.Errorf("scan counts must be non-negative, got %d", s)
		}
	}
	for _, u := range cfg.Updates {
		if u < 0 {
			return fmt.Errorf("update counts must be non-negative, got %d", u)
		}
	}
	if _, err := time.ParseDuration(cfg.Duration); err != nil {
		return fmt.Errorf("invalid duration %q: %w", cfg.Duration, err)
	}
	return nil
}

// ParseDuration returns the experiment duration. Call Validate first; an
// unparseable duration falls back to zero here.
func (cfg *RunConfig) ParseDuration() time.Duration {
	d, _ := time.ParseDuration(cfg.Duration)
	return d
}
