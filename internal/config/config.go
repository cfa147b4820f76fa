// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Data
	CatalogPath string `json:"catalog_path,omitempty"` // Path to a YAML skill catalog extension file

	// Matching
	MatchThreshold float64 `json:"match_threshold,omitempty"` // Minimum fuzzy-match similarity (0.0-1.0)

	// Gap model
	BaseMonthsPerLevel int `json:"base_months_per_level,omitempty"` // Learning months per missing level

	// Team model
	RoleFitThreshold   int     `json:"role_fit_threshold,omitempty"`    // Match % below which role review is suggested
	CostPerHour        float64 `json:"cost_per_hour,omitempty"`         // Training cost per hour
	HoursPerLevelMonth float64 `json:"hours_per_level_month,omitempty"` // Training hours per level-gap-month
	HiringCostPerSkill float64 `json:"hiring_cost_per_skill,omitempty"` // One-time hiring cost per open skill
	MaxParallel        int     `json:"max_parallel,omitempty"`          // Bound on concurrent member analyses

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("config error: 'match_threshold' must be in [0,1]")
	}
	if c.BaseMonthsPerLevel < 0 {
		return fmt.Errorf("config error: 'base_months_per_level' must be non-negative")
	}
	if c.RoleFitThreshold < 0 || c.RoleFitThreshold > 100 {
		return fmt.Errorf("config error: 'role_fit_threshold' must be in [0,100]")
	}
	if c.CostPerHour < 0 {
		return fmt.Errorf("config error: 'cost_per_hour' must be non-negative")
	}
	if c.HoursPerLevelMonth < 0 {
		return fmt.Errorf("config error: 'hours_per_level_month' must be non-negative")
	}
	if c.HiringCostPerSkill < 0 {
		return fmt.Errorf("config error: 'hiring_cost_per_skill' must be non-negative")
	}
	if c.MaxParallel < 0 {
		return fmt.Errorf("config error: 'max_parallel' must be non-negative")
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.MatchThreshold == 0 {
		result.MatchThreshold = defaults.MatchThreshold
	}
	if result.BaseMonthsPerLevel == 0 {
		result.BaseMonthsPerLevel = defaults.BaseMonthsPerLevel
	}
	if result.RoleFitThreshold == 0 {
		result.RoleFitThreshold = defaults.RoleFitThreshold
	}
	if result.CostPerHour == 0 {
		result.CostPerHour = defaults.CostPerHour
	}
	if result.HoursPerLevelMonth == 0 {
		result.HoursPerLevelMonth = defaults.HoursPerLevelMonth
	}
	if result.HiringCostPerSkill == 0 {
		result.HiringCostPerSkill = defaults.HiringCostPerSkill
	}
	if result.MaxParallel == 0 {
		result.MaxParallel = defaults.MaxParallel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
