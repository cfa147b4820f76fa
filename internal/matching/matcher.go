// Package matching resolves free-form skill names to canonical skill
// identities, so that "JS", "Javascript", and "JavaScript " are treated as
// the same skill.
package matching

import (
	"strings"
	"sync"

	"github.com/talentops/skillgap-analyzer/internal/catalog"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

// Match confidences by resolution path.
const (
	confidenceExact   = 1.0
	confidenceSynonym = 0.95
	confidenceUnknown = 0.5

	// DefaultThreshold is the minimum normalized similarity a fuzzy match
	// must clear before it is accepted.
	DefaultThreshold = 0.8
)

// Matcher maps raw skill strings to canonical identities. Matching is a pure
// function over the catalog; the resolution cache only avoids repeated fuzzy
// scans and never changes an answer.
type Matcher struct {
	catalog   *catalog.Catalog
	threshold float64

	mu    sync.RWMutex
	cache map[string]types.SkillMatch
}

// NewMatcher creates a Matcher over the given catalog with DefaultThreshold.
func NewMatcher(cat *catalog.Catalog) *Matcher {
	return NewMatcherWithThreshold(cat, DefaultThreshold)
}

// NewMatcherWithThreshold creates a Matcher with a custom fuzzy-match threshold.
func NewMatcherWithThreshold(cat *catalog.Catalog, threshold float64) *Matcher {
	if cat == nil {
		cat = catalog.Default()
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		catalog:   cat,
		threshold: threshold,
		cache:     make(map[string]types.SkillMatch),
	}
}

// Normalize trims, lowercases, and collapses inner whitespace.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Match resolves a raw skill name to its canonical identity. Unknown skills
// never fail: they become their own canonical entry with category General
// and confidence 0.5 (open-world catalog).
func (m *Matcher) Match(raw string) types.SkillMatch {
	normalized := Normalize(raw)
	if normalized == "" {
		return types.SkillMatch{Category: catalog.CategoryGeneral, Confidence: confidenceUnknown}
	}

	m.mu.RLock()
	cached, ok := m.cache[normalized]
	m.mu.RUnlock()
	if ok {
		return cached
	}

	match := m.resolve(normalized)

	m.mu.Lock()
	m.cache[normalized] = match
	m.mu.Unlock()

	return match
}

func (m *Matcher) resolve(normalized string) types.SkillMatch {
	// Exact or synonym hit against the catalog.
	if entry, ok := m.catalog.Lookup(normalized); ok {
		confidence := confidenceExact
		if Normalize(entry.Name) != normalized {
			confidence = confidenceSynonym
		}
		return types.SkillMatch{
			CanonicalName: entry.Name,
			Category:      entry.Category,
			Confidence:    confidence,
		}
	}

	// Fuzzy match against canonical names and synonyms, best score wins.
	best := types.SkillMatch{}
	bestScore := 0.0
	for _, entry := range m.catalog.Entries() {
		score := Similarity(normalized, Normalize(entry.Name))
		for _, synonym := range entry.Synonyms {
			if s := Similarity(normalized, Normalize(synonym)); s > score {
				score = s
			}
		}
		if score > bestScore {
			bestScore = score
			best = types.SkillMatch{
				CanonicalName: entry.Name,
				Category:      entry.Category,
				Confidence:    score,
			}
		}
	}
	if bestScore >= m.threshold {
		return best
	}

	// No match cleared the threshold: the normalized string becomes its own
	// canonical skill.
	return types.SkillMatch{
		CanonicalName: normalized,
		Category:      catalog.CategoryGeneral,
		Confidence:    confidenceUnknown,
	}
}
