package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(matching.NewMatcher(nil), DefaultConfig())
}

func skill(name string, level types.SkillLevel) types.UserSkill {
	return types.UserSkill{
		SkillName:       name,
		Level:           level,
		YearsExperience: 2,
		ConfidenceScore: 0.9,
	}
}

func requirement(name string, importance types.Importance, level types.SkillLevel) types.SkillRequirement {
	return types.SkillRequirement{
		Skill:        name,
		Importance:   importance,
		MinimumLevel: level,
		Confidence:   0.9,
	}
}

func TestAnalyze_EmptyRequirements_FullMatch(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{
		skill("Go", types.LevelAdvanced),
		skill("Redis", types.LevelBeginner),
	}

	result, err := a.Analyze(skills, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, result.OverallMatchPercentage)
	assert.Empty(t, result.SkillGaps)
	// With nothing required, every declared skill counts as a strength.
	assert.Len(t, result.Strengths, 2)
	assert.Equal(t, 2, result.Metadata.SkillsEvaluated)
	assert.Equal(t, 0, result.Metadata.RequirementsEvaluated)
}

func TestAnalyze_EmptySkills_AllGapsMissing(t *testing.T) {
	a := newTestAnalyzer()

	reqs := []types.SkillRequirement{
		requirement("Go", types.ImportanceCritical, types.LevelAdvanced),
		requirement("React", types.ImportanceImportant, types.LevelIntermediate),
	}

	result, err := a.Analyze(nil, reqs)
	require.NoError(t, err)

	assert.Equal(t, 0, result.OverallMatchPercentage)
	require.Len(t, result.SkillGaps, 2)
	for _, gap := range result.SkillGaps {
		assert.True(t, gap.Missing())
		assert.Equal(t, int(gap.RequiredLevel), gap.LevelGap)
	}
}

func TestAnalyze_SatisfiedRequirementBecomesStrength(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{skill("Go", types.LevelExpert)}
	reqs := []types.SkillRequirement{requirement("golang", types.ImportanceCritical, types.LevelAdvanced)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	assert.Equal(t, 100, result.OverallMatchPercentage)
	assert.Empty(t, result.SkillGaps)
	require.Len(t, result.Strengths, 1)
	assert.Equal(t, "Go", result.Strengths[0].SkillName)
}

func TestAnalyze_WeightedMatchPercentage(t *testing.T) {
	a := newTestAnalyzer()

	// Critical satisfied (weight 3), important missed (weight 2): 3/5 = 60%.
	skills := []types.UserSkill{skill("Go", types.LevelAdvanced)}
	reqs := []types.SkillRequirement{
		requirement("Go", types.ImportanceCritical, types.LevelAdvanced),
		requirement("Kafka", types.ImportanceImportant, types.LevelIntermediate),
	}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	assert.Equal(t, 60, result.OverallMatchPercentage)
}

func TestAnalyze_PartialLevelGap(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{skill("Kubernetes", types.LevelBeginner)}
	reqs := []types.SkillRequirement{requirement("k8s", types.ImportanceCritical, types.LevelAdvanced)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	require.Len(t, result.SkillGaps, 1)
	gap := result.SkillGaps[0]
	assert.Equal(t, "Kubernetes", gap.SkillName)
	require.NotNil(t, gap.CurrentLevel)
	assert.Equal(t, types.LevelBeginner, *gap.CurrentLevel)
	assert.Equal(t, 2, gap.LevelGap)
	assert.Equal(t, types.SeverityCritical, gap.GapSeverity)
}

func TestAnalyze_QuickWins(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{skill("Docker", types.LevelIntermediate)}
	reqs := []types.SkillRequirement{requirement("Docker", types.ImportanceImportant, types.LevelAdvanced)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	require.Len(t, result.QuickWins, 1)
	assert.Equal(t, "Docker", result.QuickWins[0].SkillName)
	assert.Equal(t, types.DifficultyEasy, result.QuickWins[0].LearningDifficulty)
}

func TestAnalyze_DuplicateRequirementsMergeByMax(t *testing.T) {
	a := newTestAnalyzer()

	reqs := []types.SkillRequirement{
		requirement("React", types.ImportanceNiceToHave, types.LevelIntermediate),
		requirement("reactjs", types.ImportanceCritical, types.LevelAdvanced),
	}

	result, err := a.Analyze(nil, reqs)
	require.NoError(t, err)

	require.Len(t, result.SkillGaps, 1)
	gap := result.SkillGaps[0]
	assert.Equal(t, "React", gap.SkillName)
	assert.Equal(t, types.ImportanceCritical, gap.Importance)
	assert.Equal(t, types.LevelAdvanced, gap.RequiredLevel)
	assert.Equal(t, 1, result.Metadata.RequirementsEvaluated)
}

func TestAnalyze_DuplicateSkillsKeepHighestLevel(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{
		skill("js", types.LevelBeginner),
		skill("JavaScript", types.LevelAdvanced),
	}
	reqs := []types.SkillRequirement{requirement("JavaScript", types.ImportanceCritical, types.LevelAdvanced)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	assert.Equal(t, 100, result.OverallMatchPercentage)
	assert.Empty(t, result.SkillGaps)
}

func TestAnalyze_UnrequiredAdvancedSkillIsStrength(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{
		skill("Go", types.LevelAdvanced),
		skill("Rust", types.LevelExpert),
		skill("PHP", types.LevelBeginner),
	}
	reqs := []types.SkillRequirement{requirement("Go", types.ImportanceCritical, types.LevelAdvanced)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Strengths))
	for _, s := range result.Strengths {
		names = append(names, s.SkillName)
	}
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "Rust")
	assert.NotContains(t, names, "PHP")
}

func TestAnalyze_UnknownSkillsStillAnalyzed(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{skill("Proprietary Framework X", types.LevelExpert)}
	reqs := []types.SkillRequirement{requirement("Proprietary Framework X", types.ImportanceCritical, types.LevelIntermediate)}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	// Both sides resolve to the same open-world canonical entry.
	assert.Equal(t, 100, result.OverallMatchPercentage)
	assert.Empty(t, result.SkillGaps)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{
		skill("Go", types.LevelIntermediate),
		skill("React", types.LevelBeginner),
	}
	reqs := []types.SkillRequirement{
		requirement("Go", types.ImportanceCritical, types.LevelExpert),
		requirement("React", types.ImportanceImportant, types.LevelAdvanced),
		requirement("Kafka", types.ImportanceNiceToHave, types.LevelIntermediate),
	}

	first, err := a.Analyze(skills, reqs)
	require.NoError(t, err)
	second, err := a.Analyze(skills, reqs)
	require.NoError(t, err)

	assert.Equal(t, first.OverallMatchPercentage, second.OverallMatchPercentage)
	assert.Equal(t, first.SkillGaps, second.SkillGaps)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestAnalyze_InvalidSkillRejected(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{{SkillName: "", Level: types.LevelAdvanced}}

	_, err := a.Analyze(skills, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyze_InvalidRequirementRejected(t *testing.T) {
	a := newTestAnalyzer()

	reqs := []types.SkillRequirement{{Skill: "Go", Importance: "mandatory", MinimumLevel: types.LevelAdvanced}}

	_, err := a.Analyze(nil, reqs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyze_ConfidenceAveragesInputs(t *testing.T) {
	a := newTestAnalyzer()

	skills := []types.UserSkill{
		{SkillName: "Go", Level: types.LevelAdvanced, ConfidenceScore: 1.0},
	}
	reqs := []types.SkillRequirement{
		{Skill: "Go", Importance: types.ImportanceCritical, MinimumLevel: types.LevelAdvanced, Confidence: 0.5},
	}

	result, err := a.Analyze(skills, reqs)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, result.Metadata.AnalysisConfidence, 1e-9)
}

func TestMatchPercentage_Bounds(t *testing.T) {
	assert.Equal(t, 100, matchPercentage(0, 0))
	assert.Equal(t, 0, matchPercentage(0, 5))
	assert.Equal(t, 100, matchPercentage(5, 5))
	assert.Equal(t, 67, matchPercentage(2, 3))
}
