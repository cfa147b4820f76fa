// Package catalog provides the skill catalog: canonical skill names with
// their categories and known synonyms. The catalog is injected data, not
// matching logic, so deployments can extend it without code changes.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one canonical skill with its category and synonym list.
type Entry struct {
	Name     string   `yaml:"name" json:"name"`
	Category string   `yaml:"category" json:"category"`
	Synonyms []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// Catalog indexes entries by normalized canonical name and synonym.
type Catalog struct {
	entries   []Entry
	byName    map[string]int
	bySynonym map[string]int
}

// New builds a catalog from entries. Later entries override earlier ones with
// the same normalized name, so file-loaded entries can extend the defaults.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		byName:    make(map[string]int),
		bySynonym: make(map[string]int),
	}
	for _, entry := range entries {
		key := normalizeKey(entry.Name)
		if key == "" {
			continue
		}
		if idx, exists := c.byName[key]; exists {
			c.entries[idx] = entry
			c.indexSynonyms(entry, idx)
			continue
		}
		c.entries = append(c.entries, entry)
		idx := len(c.entries) - 1
		c.byName[key] = idx
		c.indexSynonyms(entry, idx)
	}
	return c
}

func (c *Catalog) indexSynonyms(entry Entry, idx int) {
	for _, synonym := range entry.Synonyms {
		key := normalizeKey(synonym)
		if key != "" {
			c.bySynonym[key] = idx
		}
	}
}

// Lookup resolves a normalized skill name against canonical names first, then
// synonyms. The input must already be normalized (lowercase, trimmed).
func (c *Catalog) Lookup(normalized string) (Entry, bool) {
	if idx, ok := c.byName[normalized]; ok {
		return c.entries[idx], true
	}
	if idx, ok := c.bySynonym[normalized]; ok {
		return c.entries[idx], true
	}
	return Entry{}, false
}

// Entries returns all catalog entries, for fuzzy-match scans.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of canonical entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// catalogFile is the YAML shape of an external catalog file.
type catalogFile struct {
	Skills []Entry `yaml:"skills"`
}

// Load reads catalog entries from a YAML file. The returned entries are
// typically appended to DefaultEntries before calling New.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML %s: %w", path, err)
	}

	for i, entry := range file.Skills {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d in %s has an empty name", i, path)
		}
	}

	return file.Skills, nil
}

// Default builds a catalog from the built-in entries.
func Default() *Catalog {
	return New(DefaultEntries())
}

// normalizeKey lowercases, trims, and collapses inner whitespace.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
