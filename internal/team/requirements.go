package team

import (
	"github.com/talentops/skillgap-analyzer/internal/types"
)

// resolveRequirements builds the shared requirement list for all members.
// Structured requirements win when present; otherwise plain skill names take
// the configured defaults. Duplicate skill names merge by max importance and
// max minimum level.
func (a *Aggregator) resolveRequirements(project *types.ProjectRequirements) []types.SkillRequirement {
	var raw []types.SkillRequirement
	if len(project.StructuredRequirements) > 0 {
		raw = project.StructuredRequirements
	} else {
		raw = make([]types.SkillRequirement, 0, len(project.RequiredSkills))
		for _, name := range project.RequiredSkills {
			raw = append(raw, types.SkillRequirement{
				Skill:        name,
				Importance:   a.cfg.DefaultImportance,
				MinimumLevel: a.cfg.DefaultMinimumLevel,
				Confidence:   1.0,
			})
		}
	}

	merged := make([]types.SkillRequirement, 0, len(raw))
	index := make(map[string]int, len(raw))
	for _, req := range raw {
		canonical := a.matcher.Match(req.Skill).CanonicalName
		if canonical == "" {
			continue
		}
		if idx, exists := index[canonical]; exists {
			existing := &merged[idx]
			existing.Importance = existing.Importance.Max(req.Importance)
			if req.MinimumLevel > existing.MinimumLevel {
				existing.MinimumLevel = req.MinimumLevel
			}
			if req.Confidence > existing.Confidence {
				existing.Confidence = req.Confidence
			}
			continue
		}
		merged = append(merged, req)
		index[canonical] = len(merged) - 1
	}

	return merged
}

// requiredCanonicals returns the distinct canonical names of the resolved
// requirements, preserving order.
func (a *Aggregator) requiredCanonicals(reqs []types.SkillRequirement) []string {
	names := make([]string, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		canonical := a.matcher.Match(req.Skill).CanonicalName
		if canonical != "" && !seen[canonical] {
			seen[canonical] = true
			names = append(names, canonical)
		}
	}
	return names
}
