package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

func outcomeWithGaps(id string, gaps ...types.SkillGap) memberOutcome {
	return memberOutcome{
		member: types.TeamMember{ID: id},
		result: &types.GapAnalysisResult{SkillGaps: gaps},
	}
}

func outcomeWithStrengths(id string, strengths ...types.UserSkill) memberOutcome {
	return memberOutcome{
		member: types.TeamMember{ID: id},
		result: &types.GapAnalysisResult{Strengths: strengths},
	}
}

func simpleGap(skill string, importance types.Importance, months int) types.SkillGap {
	return types.SkillGap{
		SkillName:        skill,
		Importance:       importance,
		TimeToCompetency: months,
		LevelGap:         1,
	}
}

func TestCollectSkillStats_SkipsFailedMembers(t *testing.T) {
	matcher := matching.NewMatcher(nil)

	outcomes := []memberOutcome{
		outcomeWithGaps("m1", simpleGap("Kafka", types.ImportanceImportant, 2)),
		{member: types.TeamMember{ID: "m2"}, err: assert.AnError},
	}

	stats := collectSkillStats(outcomes, matcher)
	require.Contains(t, stats.gaps, "Kafka")
	assert.Equal(t, []string{"m1"}, stats.gaps["Kafka"].memberIDs)
}

func TestCollectSkillStats_CanonicalizesStrengths(t *testing.T) {
	matcher := matching.NewMatcher(nil)

	outcomes := []memberOutcome{
		outcomeWithStrengths("m1", userSkill("k8s", types.LevelAdvanced)),
		outcomeWithStrengths("m2", userSkill("Kubernetes", types.LevelExpert)),
	}

	stats := collectSkillStats(outcomes, matcher)
	require.Contains(t, stats.strengths, "Kubernetes")
	assert.Equal(t, []string{"m1", "m2"}, stats.strengths["Kubernetes"].memberIDs)
	assert.Equal(t, types.LevelExpert, stats.maxLevels["Kubernetes"])
}

func TestCollectSkillStats_DedupesStrengthsPerMember(t *testing.T) {
	matcher := matching.NewMatcher(nil)

	outcomes := []memberOutcome{
		outcomeWithStrengths("m1",
			userSkill("js", types.LevelAdvanced),
			userSkill("JavaScript", types.LevelExpert),
		),
	}

	stats := collectSkillStats(outcomes, matcher)
	require.Contains(t, stats.strengths, "JavaScript")
	assert.Equal(t, []string{"m1"}, stats.strengths["JavaScript"].memberIDs)
}

func TestBuildTeamGaps_BelowThresholdExcluded(t *testing.T) {
	agg := newTestAggregator()
	matcher := matching.NewMatcher(nil)

	// One member of three needs Kafka: 33% stays below the 50% bar.
	outcomes := []memberOutcome{
		outcomeWithGaps("m1", simpleGap("Kafka", types.ImportanceImportant, 2)),
		outcomeWithGaps("m2"),
		outcomeWithGaps("m3"),
	}

	stats := collectSkillStats(outcomes, matcher)
	gaps := agg.buildTeamGaps(stats, 3)
	assert.Empty(t, gaps)
}

func TestBuildTeamGaps_EightyPercentBecomesCritical(t *testing.T) {
	agg := newTestAggregator()
	matcher := matching.NewMatcher(nil)

	// Four of five members need a nice-to-have skill: the 80% ratio alone
	// escalates the team gap to critical.
	outcomes := []memberOutcome{
		outcomeWithGaps("m1", simpleGap("Kafka", types.ImportanceNiceToHave, 2)),
		outcomeWithGaps("m2", simpleGap("Kafka", types.ImportanceNiceToHave, 2)),
		outcomeWithGaps("m3", simpleGap("Kafka", types.ImportanceNiceToHave, 2)),
		outcomeWithGaps("m4", simpleGap("Kafka", types.ImportanceNiceToHave, 2)),
		outcomeWithGaps("m5"),
	}

	stats := collectSkillStats(outcomes, matcher)
	gaps := agg.buildTeamGaps(stats, 5)

	require.Len(t, gaps, 1)
	assert.Equal(t, types.TeamSeverityCritical, gaps[0].Severity)
	assert.Equal(t, 80.0, gaps[0].PercentageNeeding)
}

func TestBuildTeamGaps_TrainingCostScalesWithMembers(t *testing.T) {
	agg := newTestAggregator()
	matcher := matching.NewMatcher(nil)

	outcomes := []memberOutcome{
		outcomeWithGaps("m1", simpleGap("Docker", types.ImportanceImportant, 2)),
		outcomeWithGaps("m2", simpleGap("Docker", types.ImportanceImportant, 4)),
	}

	stats := collectSkillStats(outcomes, matcher)
	gaps := agg.buildTeamGaps(stats, 2)

	require.Len(t, gaps, 1)
	// 2 members * $50/h * 20 h per level-month * 3 avg months.
	assert.Equal(t, 6000.0, gaps[0].EstimatedTrainingCost)
	assert.Equal(t, 30000.0, gaps[0].EstimatedHiringCost)
}

func TestRecommendSolution(t *testing.T) {
	agg := newTestAggregator()

	assert.Equal(t, types.SolutionHiring, agg.recommendSolution(types.TeamSeverityCritical, false, 2))
	assert.Equal(t, types.SolutionMixed, agg.recommendSolution(types.TeamSeverityCritical, true, 2))
	assert.Equal(t, types.SolutionTraining, agg.recommendSolution(types.TeamSeverityModerate, false, 4))
	assert.Equal(t, types.SolutionMixed, agg.recommendSolution(types.TeamSeverityModerate, false, 9))
}

func TestRoundPercentage(t *testing.T) {
	assert.Equal(t, 66.7, roundPercentage(2.0/3.0))
	assert.Equal(t, 100.0, roundPercentage(1))
	assert.Equal(t, 50.0, roundPercentage(0.5))
}
