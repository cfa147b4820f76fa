package analysis

import (
	"math"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// buildGap derives the full SkillGap record for an unmet requirement.
// found reports whether the user holds the skill at all.
func (a *Analyzer) buildGap(rr resolvedRequirement, rs resolvedSkill, found bool) types.SkillGap {
	userLevel := 0
	var currentLevel *types.SkillLevel
	if found {
		level := rs.skill.Level
		userLevel = int(level)
		currentLevel = &level
	}

	levelGap := int(rr.req.MinimumLevel) - userLevel
	severity := classifySeverity(rr.req.Importance, levelGap, !found)

	return types.SkillGap{
		SkillName:          rr.canonical,
		Category:           rr.category,
		CurrentLevel:       currentLevel,
		RequiredLevel:      rr.req.MinimumLevel,
		LevelGap:           levelGap,
		GapSeverity:        severity,
		LearningDifficulty: classifyDifficulty(levelGap),
		TimeToCompetency:   a.timeToCompetency(levelGap, rr.category),
		Priority:           gapPriority(rr.req.Importance, severity, rr.req.Confidence),
		Importance:         rr.req.Importance,
		Confidence:         rr.req.Confidence,
	}
}

// classifySeverity applies the severity rules: critical importance with a
// wide or total gap is critical; single-level gaps on critical/important
// requirements and wide gaps on important requirements are moderate.
func classifySeverity(importance types.Importance, levelGap int, missing bool) types.GapSeverity {
	switch {
	case importance == types.ImportanceCritical && (missing || levelGap >= 2):
		return types.SeverityCritical
	case levelGap == 1 && (importance == types.ImportanceCritical || importance == types.ImportanceImportant):
		return types.SeverityModerate
	case levelGap >= 2 && importance == types.ImportanceImportant:
		return types.SeverityModerate
	default:
		return types.SeverityMinor
	}
}

// classifyDifficulty maps gap width to learning difficulty.
func classifyDifficulty(levelGap int) types.LearningDifficulty {
	switch {
	case levelGap <= 1:
		return types.DifficultyEasy
	case levelGap == 2:
		return types.DifficultyModerate
	default:
		return types.DifficultyHard
	}
}

// timeToCompetency estimates months to close a gap: a linear model over the
// gap width, scaled up for categories that are slow to learn. Always >= 1.
func (a *Analyzer) timeToCompetency(levelGap int, category string) int {
	months := float64(levelGap * a.cfg.BaseMonthsPerLevel)
	if a.cfg.SlowCategories[category] {
		months = math.Ceil(months * a.cfg.SlowCategoryFactor)
	}
	if months < 1 {
		return 1
	}
	return int(months)
}

// gapPriority combines importance weight, severity weight, and a confidence
// bonus into a 1-10 urgency score.
func gapPriority(importance types.Importance, severity types.GapSeverity, confidence float64) int {
	bonus := confidence
	if bonus > 1 {
		bonus = 1
	}
	if bonus < 0 {
		bonus = 0
	}
	priority := int(math.Round(float64(importance.PriorityWeight()+severity.PriorityWeight()) + bonus))
	if priority < 1 {
		return 1
	}
	if priority > 10 {
		return 10
	}
	return priority
}
