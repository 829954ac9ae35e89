// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/intern-match/internal/matching"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use the matcher and search defaults.
type Config struct {
	// Matching
	Weights      matching.Weights `json:"weights,omitempty"`
	MinScore     int              `json:"min_score,omitempty" validate:"gte=0,lte=100"`
	MaxResults   int              `json:"max_results,omitempty" validate:"gte=0"`
	PreferRemote bool             `json:"prefer_remote,omitempty"`

	// Search
	SearchLimit int `json:"search_limit,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// Load reads configuration from a JSON file and validates its ranges.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// MatchConfig converts the file configuration into matcher settings,
// leaving unset fields for the matcher defaults.
func (c *Config) MatchConfig() matching.Config {
	return matching.Config{
		Weights:      c.Weights,
		MinScore:     c.MinScore,
		MaxResults:   c.MaxResults,
		PreferRemote: c.PreferRemote,
	}
}
