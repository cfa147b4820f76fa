package team

import "github.com/talentops/skillgap-analyzer/internal/types"

// Config holds the team aggregation thresholds and the budget rate card.
// Dollar figures are configurable defaults, not contracts.
type Config struct {
	// GapThreshold is the fraction of members that must share a gap before
	// it becomes a team gap.
	GapThreshold float64
	// CriticalRatio is the needing-members fraction above which a team gap
	// is critical regardless of importance.
	CriticalRatio float64
	// StrengthThreshold is the fraction of members that must share a
	// strength before it becomes a team strength.
	StrengthThreshold float64
	// ExcellentRatio is the having-members fraction above which coverage is
	// excellent.
	ExcellentRatio float64
	// RoleFitThreshold is the member match percentage below which a role or
	// training review is suggested.
	RoleFitThreshold int
	// TrainingMonthsCeiling is the longest average time-to-competency for
	// which training is still preferred over hiring.
	TrainingMonthsCeiling int
	// CostPerHour is the assumed training cost per hour.
	CostPerHour float64
	// HoursPerLevelMonth is the training hours assumed per level-gap-month.
	HoursPerLevelMonth float64
	// HiringCostPerSkill is the one-time hiring cost assumed per open
	// critical skill (roughly 20% of an annual salary band).
	HiringCostPerSkill float64
	// AllocationFloor/AllocationCeil bound the budget split percentages so
	// neither side degenerates to zero.
	AllocationFloor int
	AllocationCeil  int
	// MaxParallel bounds concurrent member analyses.
	MaxParallel int
	// DefaultMinimumLevel and DefaultImportance apply to plain
	// required_skills entries without structured detail.
	DefaultMinimumLevel types.SkillLevel
	DefaultImportance   types.Importance
}

// DefaultConfig returns the standard aggregation thresholds and rate card.
func DefaultConfig() Config {
	return Config{
		GapThreshold:          0.5,
		CriticalRatio:         0.8,
		StrengthThreshold:     0.5,
		ExcellentRatio:        0.8,
		RoleFitThreshold:      65,
		TrainingMonthsCeiling: 6,
		CostPerHour:           50,
		HoursPerLevelMonth:    20,
		HiringCostPerSkill:    30000,
		AllocationFloor:       10,
		AllocationCeil:        90,
		MaxParallel:           8,
		DefaultMinimumLevel:   types.LevelIntermediate,
		DefaultImportance:     types.ImportanceImportant,
	}
}
