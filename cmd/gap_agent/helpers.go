package main

import (
	"fmt"

	"github.com/talentops/skillgap-analyzer/internal/catalog"
	"github.com/talentops/skillgap-analyzer/internal/config"
	"github.com/talentops/skillgap-analyzer/internal/matching"
)

// loadOptionalConfig loads the config file when a path is given, otherwise
// returns an empty config so flags and defaults take over.
func loadOptionalConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildMatcher constructs the skill matcher, extending the built-in catalog
// with entries from an optional YAML catalog file. Later entries override
// built-ins with the same name.
func buildMatcher(catalogPath string, threshold float64) (*matching.Matcher, error) {
	entries := catalog.DefaultEntries()
	if catalogPath != "" {
		extra, err := catalog.Load(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill catalog %s: %w", catalogPath, err)
		}
		entries = append(entries, extra...)
	}

	cat := catalog.New(entries)
	if threshold > 0 {
		return matching.NewMatcherWithThreshold(cat, threshold), nil
	}
	return matching.NewMatcher(cat), nil
}
