package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamMember is one person in a team analysis request. Salary and hourly rate
// feed budget math only.
type TeamMember struct {
	ID         string      `json:"id" validate:"required,min=1"`
	Name       string      `json:"name,omitempty"`
	Role       string      `json:"role,omitempty"`
	Department string      `json:"department,omitempty"`
	Skills     []UserSkill `json:"skills" validate:"dive"`
	Salary     float64     `json:"salary,omitempty" validate:"gte=0"`
	HourlyRate float64     `json:"hourly_rate,omitempty" validate:"gte=0"`
}

// Validate validates the TeamMember using the validator.
func (m *TeamMember) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// ProjectPriority classifies the urgency of a project.
type ProjectPriority string

// Project priorities.
const (
	PriorityLow      ProjectPriority = "low"
	PriorityMedium   ProjectPriority = "medium"
	PriorityHigh     ProjectPriority = "high"
	PriorityCritical ProjectPriority = "critical"
)

// ProjectRequirements describes what a project needs from the team. Callers
// may supply either plain skill names (RequiredSkills, which take default
// importance and minimum level) or richer structured requirements.
type ProjectRequirements struct {
	Name                   string             `json:"name" validate:"required,min=1"`
	Description            string             `json:"description,omitempty"`
	RequiredSkills         []string           `json:"required_skills,omitempty"`
	StructuredRequirements []SkillRequirement `json:"structured_requirements,omitempty" validate:"dive"`
	Timeline               string             `json:"timeline,omitempty"`
	Priority               ProjectPriority    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Budget                 float64            `json:"budget,omitempty" validate:"gte=0"`
}

// Validate validates the ProjectRequirements using the validator.
func (p *ProjectRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// TeamGapSeverity classifies a team-wide gap.
type TeamGapSeverity string

// Team gap severities.
const (
	TeamSeverityModerate TeamGapSeverity = "moderate"
	TeamSeverityCritical TeamGapSeverity = "critical"
)

// Solution is the recommended remediation path for a team gap.
type Solution string

// Remediation solutions.
const (
	SolutionTraining Solution = "training"
	SolutionHiring   Solution = "hiring"
	SolutionMixed    Solution = "mixed"
)

// TeamGap is a skill gap shared by a sufficient fraction of the team.
// MemberIDs keeps the gap traceable to the members that produced it.
type TeamGap struct {
	SkillName             string          `json:"skill_name"`
	MembersNeeding        int             `json:"members_needing"`
	PercentageNeeding     float64         `json:"percentage_needing"`
	Severity              TeamGapSeverity `json:"severity"`
	EstimatedTrainingCost float64         `json:"estimated_training_cost"`
	EstimatedHiringCost   float64         `json:"estimated_hiring_cost"`
	RecommendedSolution   Solution        `json:"recommended_solution"`
	MemberIDs             []string        `json:"member_ids"`
}

// Coverage classifies how widely a team strength is held.
type Coverage string

// Team strength coverage levels.
const (
	CoverageGood      Coverage = "good"
	CoverageExcellent Coverage = "excellent"
)

// TeamStrength is a skill a sufficient fraction of the team holds.
type TeamStrength struct {
	SkillName        string     `json:"skill_name"`
	MembersHaving    int        `json:"members_having"`
	PercentageHaving float64    `json:"percentage_having"`
	Coverage         Coverage   `json:"coverage"`
	ExpertiseLevel   SkillLevel `json:"expertise_level"`
	MemberIDs        []string   `json:"member_ids"`
}

// TeamSummary is the headline numbers of a team analysis.
type TeamSummary struct {
	TotalMembers            int `json:"total_members"`
	OverallMatch            int `json:"overall_match"`
	CriticalGapsCount       int `json:"critical_gaps_count"`
	TeamStrengthsCount      int `json:"team_strengths_count"`
	SkillCoveragePercentage int `json:"skill_coverage_percentage"`
}

// MemberAnalysis pairs a member's identity with their individual result.
// Failed marks members whose analysis was downgraded to a degraded result.
type MemberAnalysis struct {
	MemberID      string            `json:"member_id"`
	Name          string            `json:"name,omitempty"`
	Role          string            `json:"role,omitempty"`
	Result        GapAnalysisResult `json:"result"`
	Failed        bool              `json:"failed,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
}

// BudgetAllocation splits remediation budget between training and hiring.
// The two percentages always sum to 100.
type BudgetAllocation struct {
	TrainingPercentage int `json:"training_percentage"`
	HiringPercentage   int `json:"hiring_percentage"`
}

// TeamRecommendations holds the team-level remediation advice.
type TeamRecommendations struct {
	HiringPriorities   []string         `json:"hiring_priorities"`
	TrainingPriorities []string         `json:"training_priorities"`
	KnowledgeSharing   []string         `json:"knowledge_sharing"`
	RoleOptimization   []string         `json:"role_optimization"`
	BudgetAllocation   BudgetAllocation `json:"budget_allocation"`
}

// Approach is the overall recommended remediation strategy.
type Approach string

// Remediation approaches.
const (
	ApproachTrainingFocused Approach = "training_focused"
	ApproachHiringFocused   Approach = "hiring_focused"
	ApproachMixed           Approach = "mixed_approach"
)

// CostBreakdown is a total cost with an optional per-skill breakdown.
type CostBreakdown struct {
	Total   float64            `json:"total"`
	BySkill map[string]float64 `json:"by_skill,omitempty"`
}

// BudgetEstimates holds the training/hiring cost model outputs.
type BudgetEstimates struct {
	TrainingCosts       CostBreakdown `json:"training_costs"`
	HiringCosts         CostBreakdown `json:"hiring_costs"`
	RecommendedApproach Approach      `json:"recommended_approach"`
	ROITimelineMonths   int           `json:"roi_timeline_months"`
}

// TeamMetadata carries bookkeeping for one team analysis run.
type TeamMetadata struct {
	TeamSize           int     `json:"team_size"`
	ProcessingTimeMS   int64   `json:"processing_time_ms"`
	AnalysisConfidence float64 `json:"analysis_confidence"`
	FailedMembers      int     `json:"failed_members,omitempty"`
}

// TeamAnalysisResult is the full outcome of a team analysis.
type TeamAnalysisResult struct {
	AnalysisID      uuid.UUID           `json:"analysis_id"`
	Project         ProjectRequirements `json:"project"`
	TeamSummary     TeamSummary         `json:"team_summary"`
	MemberAnalyses  []MemberAnalysis    `json:"member_analyses"`
	TeamGaps        []TeamGap           `json:"team_gaps"`
	TeamStrengths   []TeamStrength      `json:"team_strengths"`
	Recommendations TeamRecommendations `json:"recommendations"`
	BudgetEstimates BudgetEstimates     `json:"budget_estimates"`
	Metadata        TeamMetadata        `json:"metadata"`
}
