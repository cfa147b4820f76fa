package types

// GapSeverity classifies how badly a requirement is missed.
type GapSeverity string

// Gap severities.
const (
	SeverityMinor    GapSeverity = "minor"
	SeverityModerate GapSeverity = "moderate"
	SeverityCritical GapSeverity = "critical"
)

// PriorityWeight returns the severity contribution to gap priority.
func (s GapSeverity) PriorityWeight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityModerate:
		return 2
	default:
		return 1
	}
}

// LearningDifficulty classifies how hard a gap is to close.
type LearningDifficulty string

// Learning difficulties.
const (
	DifficultyEasy     LearningDifficulty = "easy"
	DifficultyModerate LearningDifficulty = "moderate"
	DifficultyHard     LearningDifficulty = "hard"
)

// SkillGap is one requirement the subject does not meet at the minimum level.
// CurrentLevel is nil when the skill is entirely missing.
type SkillGap struct {
	SkillName          string             `json:"skill_name"`
	Category           string             `json:"category"`
	CurrentLevel       *SkillLevel        `json:"current_level,omitempty"`
	RequiredLevel      SkillLevel         `json:"required_level"`
	LevelGap           int                `json:"level_gap"`
	GapSeverity        GapSeverity        `json:"gap_severity"`
	LearningDifficulty LearningDifficulty `json:"learning_difficulty"`
	TimeToCompetency   int                `json:"time_to_competency_months"`
	Priority           int                `json:"priority"`
	Importance         Importance         `json:"importance"`
	Confidence         float64            `json:"confidence"`
}

// Missing reports whether the subject lacks the skill entirely.
func (g *SkillGap) Missing() bool {
	return g.CurrentLevel == nil
}

// TransferableOpportunity is a related skill the subject already has that
// partially substitutes for a missing required skill.
type TransferableOpportunity struct {
	GapSkill             string  `json:"gap_skill"`
	ExistingSkill        string  `json:"existing_skill"`
	TransferabilityScore float64 `json:"transferability_score"`
	Reasoning            string  `json:"reasoning"`
}

// Recommendations buckets remediation advice by time horizon.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// AnalysisMetadata carries counts and bookkeeping for one analysis run.
type AnalysisMetadata struct {
	SkillsEvaluated       int      `json:"skills_evaluated"`
	RequirementsEvaluated int      `json:"requirements_evaluated"`
	GapCount              int      `json:"gap_count"`
	StrengthCount         int      `json:"strength_count"`
	AnalysisConfidence    float64  `json:"analysis_confidence"`
	ProcessingTimeMS      int64    `json:"processing_time_ms"`
	Notes                 []string `json:"notes,omitempty"`
}

// GapAnalysisResult is the full outcome of analyzing one person against a
// requirement list. Created fresh per request; never mutated after construction.
type GapAnalysisResult struct {
	OverallMatchPercentage    int                       `json:"overall_match_percentage"`
	SkillGaps                 []SkillGap                `json:"skill_gaps"`
	Strengths                 []UserSkill               `json:"strengths"`
	CriticalGaps              []SkillGap                `json:"critical_gaps"`
	QuickWins                 []SkillGap                `json:"quick_wins"`
	TransferableOpportunities []TransferableOpportunity `json:"transferable_opportunities"`
	Recommendations           Recommendations           `json:"recommendations"`
	Metadata                  AnalysisMetadata          `json:"metadata"`
}
