package analysis

import "github.com/talentops/skillgap-analyzer/internal/types"

// Config holds the tunable constants of the gap model. The numeric values
// are data, not contracts; deployments override them via configuration.
type Config struct {
	// BaseMonthsPerLevel is the months of learning assumed per missing level.
	BaseMonthsPerLevel int
	// SlowCategories lists skill categories historically slow to learn;
	// their time-to-competency is scaled by SlowCategoryFactor.
	SlowCategories map[string]bool
	// SlowCategoryFactor is the time multiplier for slow categories.
	SlowCategoryFactor float64
	// TransferabilityThreshold is the minimum score for a transferable
	// opportunity to be surfaced.
	TransferabilityThreshold float64
	// StrengthLevelFloor is the minimum level at which an unrequired skill
	// still counts as a strength (demonstrates breadth).
	StrengthLevelFloor types.SkillLevel
}

// DefaultConfig returns the standard gap model constants.
func DefaultConfig() Config {
	return Config{
		BaseMonthsPerLevel: 2,
		SlowCategories: map[string]bool{
			"Machine Learning":    true,
			"Security":            true,
			"Distributed Systems": true,
		},
		SlowCategoryFactor:       1.5,
		TransferabilityThreshold: 0.4,
		StrengthLevelFloor:       types.LevelAdvanced,
	}
}
