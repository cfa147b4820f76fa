package team

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/skillgap-analyzer/internal/analysis"
	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

func newTestAggregator() *Aggregator {
	matcher := matching.NewMatcher(nil)
	analyzer := analysis.NewAnalyzer(matcher, analysis.DefaultConfig())
	return NewAggregator(analyzer, matcher, DefaultConfig())
}

func member(id, name string, skills ...types.UserSkill) types.TeamMember {
	return types.TeamMember{ID: id, Name: name, Skills: skills}
}

func userSkill(name string, level types.SkillLevel) types.UserSkill {
	return types.UserSkill{SkillName: name, Level: level, ConfidenceScore: 0.9}
}

func structuredReq(skill string, importance types.Importance, level types.SkillLevel) types.SkillRequirement {
	return types.SkillRequirement{Skill: skill, Importance: importance, MinimumLevel: level, Confidence: 0.9}
}

// threeMemberFixture is a frontend-leaning team missing TypeScript and AWS
// entirely, with partial React, Node.js, and Docker coverage.
func threeMemberFixture() ([]types.TeamMember, types.ProjectRequirements) {
	members := []types.TeamMember{
		member("m1", "Alice",
			userSkill("React", types.LevelAdvanced),
			userSkill("JavaScript", types.LevelExpert),
		),
		member("m2", "Bob",
			userSkill("Node.js", types.LevelIntermediate),
			userSkill("Python", types.LevelAdvanced),
		),
		member("m3", "Carol",
			userSkill("Docker", types.LevelAdvanced),
		),
	}

	project := types.ProjectRequirements{
		Name: "Web Platform",
		StructuredRequirements: []types.SkillRequirement{
			structuredReq("React", types.ImportanceCritical, types.LevelIntermediate),
			structuredReq("Node.js", types.ImportanceCritical, types.LevelIntermediate),
			structuredReq("TypeScript", types.ImportanceImportant, types.LevelIntermediate),
			structuredReq("AWS", types.ImportanceImportant, types.LevelBeginner),
			structuredReq("Docker", types.ImportanceImportant, types.LevelBeginner),
		},
	}

	return members, project
}

func findTeamGap(t *testing.T, gaps []types.TeamGap, skill string) types.TeamGap {
	t.Helper()
	for _, gap := range gaps {
		if gap.SkillName == skill {
			return gap
		}
	}
	t.Fatalf("expected team gap for %s, got %v", skill, gaps)
	return types.TeamGap{}
}

func TestAnalyze_ThreeMemberTeam(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TeamSummary.TotalMembers)
	assert.Len(t, result.MemberAnalyses, 3)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.AnalysisID.String())

	tsGap := findTeamGap(t, result.TeamGaps, "TypeScript")
	assert.Equal(t, 3, tsGap.MembersNeeding)
	assert.Equal(t, 100.0, tsGap.PercentageNeeding)

	awsGap := findTeamGap(t, result.TeamGaps, "AWS")
	assert.Equal(t, 3, awsGap.MembersNeeding)
	assert.Equal(t, 100.0, awsGap.PercentageNeeding)

	reactGap := findTeamGap(t, result.TeamGaps, "React")
	assert.Equal(t, 2, reactGap.MembersNeeding)
	assert.Equal(t, types.TeamSeverityCritical, reactGap.Severity)

	nodeGap := findTeamGap(t, result.TeamGaps, "Node.js")
	assert.Equal(t, 2, nodeGap.MembersNeeding)
	assert.Equal(t, types.TeamSeverityCritical, nodeGap.Severity)
}

func TestAnalyze_ThreeMemberTeam_Solutions(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	// Nobody holds TypeScript or AWS at all: hiring.
	assert.Equal(t, types.SolutionHiring, findTeamGap(t, result.TeamGaps, "TypeScript").RecommendedSolution)
	assert.Equal(t, types.SolutionHiring, findTeamGap(t, result.TeamGaps, "AWS").RecommendedSolution)

	// React and Node.js are critical but one member is already proficient: mixed.
	assert.Equal(t, types.SolutionMixed, findTeamGap(t, result.TeamGaps, "React").RecommendedSolution)
	assert.Equal(t, types.SolutionMixed, findTeamGap(t, result.TeamGaps, "Node.js").RecommendedSolution)

	// Docker is non-critical with a short ramp-up: training.
	assert.Equal(t, types.SolutionTraining, findTeamGap(t, result.TeamGaps, "Docker").RecommendedSolution)
}

func TestAnalyze_ThreeMemberTeam_GapOrdering(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.TeamGaps), 2)
	// Widest gaps first, alphabetical within ties.
	assert.Equal(t, "AWS", result.TeamGaps[0].SkillName)
	assert.Equal(t, "TypeScript", result.TeamGaps[1].SkillName)
	for i := 1; i < len(result.TeamGaps); i++ {
		assert.GreaterOrEqual(t, result.TeamGaps[i-1].PercentageNeeding, result.TeamGaps[i].PercentageNeeding)
	}
}

func TestAnalyze_MemberFailureDoesNotAbort(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	// An invalid skill record fails that member's analysis.
	members[1].Skills = append(members[1].Skills, types.UserSkill{SkillName: "", Level: types.LevelAdvanced})

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	require.Len(t, result.MemberAnalyses, 3)

	failed := result.MemberAnalyses[1]
	assert.True(t, failed.Failed)
	assert.NotEmpty(t, failed.FailureReason)
	assert.Equal(t, 0, failed.Result.OverallMatchPercentage)
	assert.Empty(t, failed.Result.SkillGaps)
	require.NotEmpty(t, failed.Result.Metadata.Notes)
	assert.Contains(t, failed.Result.Metadata.Notes[0], "analysis degraded")

	assert.False(t, result.MemberAnalyses[0].Failed)
	assert.False(t, result.MemberAnalyses[2].Failed)
	assert.Equal(t, 1, result.Metadata.FailedMembers)
}

func TestAnalyze_FailedMemberDiscountsConfidence(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	healthy, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	members[2].Skills = []types.UserSkill{{SkillName: "", Level: types.LevelAdvanced}}
	degraded, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	assert.Less(t, degraded.Metadata.AnalysisConfidence, healthy.Metadata.AnalysisConfidence)
	assert.Greater(t, degraded.Metadata.AnalysisConfidence, 0.0)
}

func TestAnalyze_AllMembersFailed(t *testing.T) {
	agg := newTestAggregator()
	_, project := threeMemberFixture()

	members := []types.TeamMember{
		member("m1", "Alice", types.UserSkill{SkillName: "", Level: types.LevelAdvanced}),
		member("m2", "Bob", types.UserSkill{SkillName: "", Level: types.LevelAdvanced}),
	}

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	assert.Len(t, result.MemberAnalyses, 2)
	assert.Equal(t, 2, result.Metadata.FailedMembers)
	assert.Equal(t, 0.0, result.Metadata.AnalysisConfidence)
	assert.Empty(t, result.TeamGaps)
	assert.Empty(t, result.TeamStrengths)
}

func TestAnalyze_EmptyMembersRejected(t *testing.T) {
	agg := newTestAggregator()
	_, project := threeMemberFixture()

	_, err := agg.Analyze(context.Background(), nil, project)
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAnalyze_MemberWithoutIDRejected(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()
	members[0].ID = ""

	_, err := agg.Analyze(context.Background(), members, project)
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAnalyze_InvalidProjectRejected(t *testing.T) {
	agg := newTestAggregator()
	members, _ := threeMemberFixture()

	_, err := agg.Analyze(context.Background(), members, types.ProjectRequirements{})
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAnalyze_CanceledContextAborts(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := agg.Analyze(ctx, members, project)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_BudgetAllocationSumsToHundred(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	alloc := result.Recommendations.BudgetAllocation
	assert.Equal(t, 100, alloc.TrainingPercentage+alloc.HiringPercentage)
	assert.GreaterOrEqual(t, alloc.HiringPercentage, DefaultConfig().AllocationFloor)
	assert.LessOrEqual(t, alloc.HiringPercentage, DefaultConfig().AllocationCeil)
}

func TestAnalyze_RoleOptimizationFlagsWeakFits(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	// Every member misses most requirements, so all fall below the role-fit bar.
	require.NotEmpty(t, result.Recommendations.RoleOptimization)
	assert.Contains(t, result.Recommendations.RoleOptimization[0], "Alice")
}

func TestAnalyze_SkillCoverage(t *testing.T) {
	agg := newTestAggregator()
	members, project := threeMemberFixture()

	result, err := agg.Analyze(context.Background(), members, project)
	require.NoError(t, err)

	// React, Node.js, and Docker are each covered by one member: 3 of 5.
	assert.Equal(t, 60, result.TeamSummary.SkillCoveragePercentage)
}

func TestTeamConfidence(t *testing.T) {
	ok1 := memberOutcome{result: &types.GapAnalysisResult{Metadata: types.AnalysisMetadata{AnalysisConfidence: 0.8}}}
	ok2 := memberOutcome{result: &types.GapAnalysisResult{Metadata: types.AnalysisMetadata{AnalysisConfidence: 0.6}}}
	bad := memberOutcome{err: errors.New("boom")}

	assert.InDelta(t, 0.7, teamConfidence([]memberOutcome{ok1, ok2}), 1e-9)
	assert.InDelta(t, 0.63, teamConfidence([]memberOutcome{ok1, ok2, bad}), 1e-9)
	assert.Equal(t, 0.0, teamConfidence([]memberOutcome{bad}))
}
