package analysis

import (
	"math"
	"time"

	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

// Analyzer runs individual gap analyses. It is stateless across requests and
// safe for concurrent use.
type Analyzer struct {
	matcher *matching.Matcher
	cfg     Config
}

// NewAnalyzer creates an Analyzer over the given matcher.
func NewAnalyzer(matcher *matching.Matcher, cfg Config) *Analyzer {
	if cfg.BaseMonthsPerLevel <= 0 {
		cfg.BaseMonthsPerLevel = DefaultConfig().BaseMonthsPerLevel
	}
	if cfg.SlowCategoryFactor <= 0 {
		cfg.SlowCategoryFactor = DefaultConfig().SlowCategoryFactor
	}
	if cfg.TransferabilityThreshold <= 0 {
		cfg.TransferabilityThreshold = DefaultConfig().TransferabilityThreshold
	}
	if !cfg.StrengthLevelFloor.Valid() {
		cfg.StrengthLevelFloor = DefaultConfig().StrengthLevelFloor
	}
	return &Analyzer{matcher: matcher, cfg: cfg}
}

// resolvedSkill pairs a user skill with its canonical identity.
type resolvedSkill struct {
	skill types.UserSkill
	match types.SkillMatch
}

// category returns the user-declared category, falling back to the catalog's.
func (r resolvedSkill) category() string {
	if r.skill.SkillCategory != "" {
		return r.skill.SkillCategory
	}
	return r.match.Category
}

// resolvedRequirement is a requirement after canonical resolution and
// duplicate merging.
type resolvedRequirement struct {
	req       types.SkillRequirement
	canonical string
	category  string
}

// Analyze compares a person's skills against a requirement list and returns
// a fresh GapAnalysisResult. It is deterministic over its inputs: identical
// inputs yield identical gaps and match percentage.
func (a *Analyzer) Analyze(userSkills []types.UserSkill, requirements []types.SkillRequirement) (*types.GapAnalysisResult, error) {
	start := time.Now()

	for i := range userSkills {
		if err := userSkills[i].Validate(); err != nil {
			return nil, invalidInput("user skill %q: %v", userSkills[i].SkillName, err)
		}
	}
	for i := range requirements {
		if err := requirements[i].Validate(); err != nil {
			return nil, invalidInput("requirement %q: %v", requirements[i].Skill, err)
		}
	}

	skills := a.resolveSkills(userSkills)
	reqs := a.mergeRequirements(requirements)

	result := &types.GapAnalysisResult{
		SkillGaps:                 []types.SkillGap{},
		Strengths:                 []types.UserSkill{},
		CriticalGaps:              []types.SkillGap{},
		QuickWins:                 []types.SkillGap{},
		TransferableOpportunities: []types.TransferableOpportunity{},
		Recommendations:           types.Recommendations{Immediate: []string{}, ShortTerm: []string{}, LongTerm: []string{}},
	}

	// With no requirements there is nothing to miss: full match, every
	// declared skill is a strength.
	if len(reqs) == 0 {
		result.OverallMatchPercentage = 100
		result.Strengths = append(result.Strengths, userSkills...)
		result.Metadata = a.buildMetadata(userSkills, reqs, result, start)
		return result, nil
	}

	byCanonical := make(map[string]resolvedSkill, len(skills))
	for _, rs := range skills {
		existing, ok := byCanonical[rs.match.CanonicalName]
		if !ok || rs.skill.Level > existing.skill.Level {
			byCanonical[rs.match.CanonicalName] = rs
		}
	}

	satisfiedWeight := 0
	totalWeight := 0
	requiredCanonicals := make(map[string]bool, len(reqs))
	strengthSeen := make(map[string]bool)

	for _, rr := range reqs {
		requiredCanonicals[rr.canonical] = true
		totalWeight += rr.req.Importance.MatchWeight()

		rs, found := byCanonical[rr.canonical]
		if found && rs.skill.Level >= rr.req.MinimumLevel {
			// Requirement met: record the actual skill as a strength.
			satisfiedWeight += rr.req.Importance.MatchWeight()
			if !strengthSeen[rr.canonical] {
				strengthSeen[rr.canonical] = true
				result.Strengths = append(result.Strengths, rs.skill)
			}
			continue
		}

		gap := a.buildGap(rr, rs, found)
		result.SkillGaps = append(result.SkillGaps, gap)
		if gap.GapSeverity == types.SeverityCritical {
			result.CriticalGaps = append(result.CriticalGaps, gap)
		}
		if gap.LearningDifficulty == types.DifficultyEasy && gap.LevelGap <= 1 {
			result.QuickWins = append(result.QuickWins, gap)
		}
		result.TransferableOpportunities = append(result.TransferableOpportunities,
			a.transferablesFor(gap, rr.canonical, skills)...)
	}

	// Unrequired skills held at a high level still demonstrate breadth.
	for _, rs := range skills {
		if requiredCanonicals[rs.match.CanonicalName] || strengthSeen[rs.match.CanonicalName] {
			continue
		}
		if rs.skill.Level >= a.cfg.StrengthLevelFloor {
			strengthSeen[rs.match.CanonicalName] = true
			result.Strengths = append(result.Strengths, rs.skill)
		}
	}

	result.OverallMatchPercentage = matchPercentage(satisfiedWeight, totalWeight)
	result.Recommendations = a.buildRecommendations(result.SkillGaps)
	result.Metadata = a.buildMetadata(userSkills, reqs, result, start)

	return result, nil
}

// resolveSkills resolves every user skill through the matcher, preserving
// input order.
func (a *Analyzer) resolveSkills(userSkills []types.UserSkill) []resolvedSkill {
	resolved := make([]resolvedSkill, 0, len(userSkills))
	for _, skill := range userSkills {
		resolved = append(resolved, resolvedSkill{
			skill: skill,
			match: a.matcher.Match(skill.SkillName),
		})
	}
	return resolved
}

// mergeRequirements resolves requirement names and merges duplicates,
// keeping the max importance, minimum level, and confidence.
func (a *Analyzer) mergeRequirements(requirements []types.SkillRequirement) []resolvedRequirement {
	merged := make([]resolvedRequirement, 0, len(requirements))
	index := make(map[string]int, len(requirements))

	for _, req := range requirements {
		match := a.matcher.Match(req.Skill)
		category := req.Category
		if category == "" {
			category = match.Category
		}

		if idx, exists := index[match.CanonicalName]; exists {
			existing := &merged[idx]
			existing.req.Importance = existing.req.Importance.Max(req.Importance)
			if req.MinimumLevel > existing.req.MinimumLevel {
				existing.req.MinimumLevel = req.MinimumLevel
			}
			if req.Confidence > existing.req.Confidence {
				existing.req.Confidence = req.Confidence
			}
			continue
		}

		req.Skill = match.CanonicalName
		merged = append(merged, resolvedRequirement{
			req:       req,
			canonical: match.CanonicalName,
			category:  category,
		})
		index[match.CanonicalName] = len(merged) - 1
	}

	return merged
}

// matchPercentage computes the weighted satisfied-requirement percentage,
// rounded and clamped to [0,100].
func matchPercentage(satisfiedWeight, totalWeight int) int {
	if totalWeight == 0 {
		return 100
	}
	pct := int(math.Round(100 * float64(satisfiedWeight) / float64(totalWeight)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// buildMetadata assembles counts, confidence, and timing for the run.
func (a *Analyzer) buildMetadata(userSkills []types.UserSkill, reqs []resolvedRequirement, result *types.GapAnalysisResult, start time.Time) types.AnalysisMetadata {
	return types.AnalysisMetadata{
		SkillsEvaluated:       len(userSkills),
		RequirementsEvaluated: len(reqs),
		GapCount:              len(result.SkillGaps),
		StrengthCount:         len(result.Strengths),
		AnalysisConfidence:    analysisConfidence(userSkills, reqs),
		ProcessingTimeMS:      time.Since(start).Milliseconds(),
	}
}

// analysisConfidence averages the self-reported skill confidences and the
// extraction confidences of the requirements. No inputs means nothing to
// doubt: confidence 1.
func analysisConfidence(userSkills []types.UserSkill, reqs []resolvedRequirement) float64 {
	sum := 0.0
	n := 0
	for _, s := range userSkills {
		sum += s.ConfidenceScore
		n++
	}
	for _, r := range reqs {
		sum += r.req.Confidence
		n++
	}
	if n == 0 {
		return 1.0
	}
	return sum / float64(n)
}
