package team

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/talentops/skillgap-analyzer/internal/analysis"
	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

// failureConfidenceDiscount scales down the team confidence when any member
// analysis had to be degraded.
const failureConfidenceDiscount = 0.9

// Aggregator is the top-level entry point for team analyses. It fans out one
// gap analysis per member and folds the results into team statistics.
type Aggregator struct {
	analyzer *analysis.Analyzer
	matcher  *matching.Matcher
	cfg      Config
}

// NewAggregator creates an Aggregator over the given analyzer and matcher.
func NewAggregator(analyzer *analysis.Analyzer, matcher *matching.Matcher, cfg Config) *Aggregator {
	defaults := DefaultConfig()
	if cfg.GapThreshold <= 0 {
		cfg.GapThreshold = defaults.GapThreshold
	}
	if cfg.CriticalRatio <= 0 {
		cfg.CriticalRatio = defaults.CriticalRatio
	}
	if cfg.StrengthThreshold <= 0 {
		cfg.StrengthThreshold = defaults.StrengthThreshold
	}
	if cfg.ExcellentRatio <= 0 {
		cfg.ExcellentRatio = defaults.ExcellentRatio
	}
	if cfg.RoleFitThreshold <= 0 {
		cfg.RoleFitThreshold = defaults.RoleFitThreshold
	}
	if cfg.TrainingMonthsCeiling <= 0 {
		cfg.TrainingMonthsCeiling = defaults.TrainingMonthsCeiling
	}
	if cfg.CostPerHour <= 0 {
		cfg.CostPerHour = defaults.CostPerHour
	}
	if cfg.HoursPerLevelMonth <= 0 {
		cfg.HoursPerLevelMonth = defaults.HoursPerLevelMonth
	}
	if cfg.HiringCostPerSkill <= 0 {
		cfg.HiringCostPerSkill = defaults.HiringCostPerSkill
	}
	if cfg.AllocationFloor <= 0 {
		cfg.AllocationFloor = defaults.AllocationFloor
	}
	if cfg.AllocationCeil <= 0 || cfg.AllocationCeil >= 100 {
		cfg.AllocationCeil = defaults.AllocationCeil
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = defaults.MaxParallel
	}
	if !cfg.DefaultMinimumLevel.Valid() {
		cfg.DefaultMinimumLevel = defaults.DefaultMinimumLevel
	}
	if cfg.DefaultImportance == "" {
		cfg.DefaultImportance = defaults.DefaultImportance
	}
	return &Aggregator{analyzer: analyzer, matcher: matcher, cfg: cfg}
}

// memberOutcome is the explicit per-member result: either a completed
// analysis or the error that degraded it. Modeling the failure branch
// explicitly keeps the bulkhead path testable.
type memberOutcome struct {
	member types.TeamMember
	result *types.GapAnalysisResult
	err    error
}

func (o memberOutcome) failed() bool {
	return o.err != nil
}

// Analyze runs one gap analysis per member in parallel and aggregates the
// results. A member failure degrades that member's entry; it never aborts
// the team request.
func (a *Aggregator) Analyze(ctx context.Context, members []types.TeamMember, project types.ProjectRequirements) (*types.TeamAnalysisResult, error) {
	start := time.Now()

	if len(members) == 0 {
		return nil, fmt.Errorf("%w: team request has no members", analysis.ErrInvalidInput)
	}
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("%w: project requirements: %v", analysis.ErrInvalidInput, err)
	}
	for i := range members {
		if members[i].ID == "" {
			return nil, fmt.Errorf("%w: team member %d has no id", analysis.ErrInvalidInput, i)
		}
	}

	reqs := a.resolveRequirements(&project)

	outcomes, err := a.fanOut(ctx, members, reqs)
	if err != nil {
		return nil, err
	}

	memberAnalyses, failedCount := a.buildMemberAnalyses(outcomes)
	if len(memberAnalyses) != len(members) {
		return nil, &Error{Message: fmt.Sprintf("aggregation produced %d member analyses for %d members", len(memberAnalyses), len(members))}
	}

	stats := collectSkillStats(outcomes, a.matcher)
	teamGaps := a.buildTeamGaps(stats, len(members))
	teamStrengths := a.buildTeamStrengths(stats, len(members))
	budget := a.buildBudgetEstimates(teamGaps, stats)

	result := &types.TeamAnalysisResult{
		AnalysisID:      uuid.New(),
		Project:         project,
		TeamSummary:     a.buildSummary(memberAnalyses, teamGaps, teamStrengths, stats, reqs),
		MemberAnalyses:  memberAnalyses,
		TeamGaps:        teamGaps,
		TeamStrengths:   teamStrengths,
		Recommendations: a.buildRecommendations(memberAnalyses, teamGaps, teamStrengths),
		BudgetEstimates: budget,
		Metadata: types.TeamMetadata{
			TeamSize:           len(members),
			ProcessingTimeMS:   time.Since(start).Milliseconds(),
			AnalysisConfidence: teamConfidence(outcomes),
			FailedMembers:      failedCount,
		},
	}

	return result, nil
}

// fanOut runs one analysis per member with bounded parallelism. Member
// failures are captured in the outcome, not returned; only caller
// cancellation aborts the group.
func (a *Aggregator) fanOut(ctx context.Context, members []types.TeamMember, reqs []types.SkillRequirement) ([]memberOutcome, error) {
	outcomes := make([]memberOutcome, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxParallel)
	for i := range members {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = a.analyzeMember(members[i], reqs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("team analysis aborted: %w", err)
	}

	return outcomes, nil
}

// analyzeMember runs one member's analysis, converting panics into member
// failures so one bad record cannot take down the request.
func (a *Aggregator) analyzeMember(member types.TeamMember, reqs []types.SkillRequirement) (outcome memberOutcome) {
	outcome.member = member
	defer func() {
		if r := recover(); r != nil {
			outcome.result = nil
			outcome.err = fmt.Errorf("member analysis panicked: %v", r)
		}
	}()

	result, err := a.analyzer.Analyze(member.Skills, reqs)
	if err != nil {
		outcome.err = err
		return outcome
	}
	outcome.result = result
	return outcome
}

// buildMemberAnalyses converts outcomes into the member_analyses entries,
// substituting a degraded result for failed members.
func (a *Aggregator) buildMemberAnalyses(outcomes []memberOutcome) ([]types.MemberAnalysis, int) {
	analyses := make([]types.MemberAnalysis, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		entry := types.MemberAnalysis{
			MemberID: o.member.ID,
			Name:     o.member.Name,
			Role:     o.member.Role,
		}
		if o.failed() {
			failed++
			entry.Failed = true
			entry.FailureReason = o.err.Error()
			entry.Result = degradedResult(o.err)
		} else {
			entry.Result = *o.result
		}
		analyses = append(analyses, entry)
	}
	return analyses, failed
}

// degradedResult is the substitute for a member whose analysis failed: zero
// match, nothing else claimed.
func degradedResult(cause error) types.GapAnalysisResult {
	return types.GapAnalysisResult{
		OverallMatchPercentage:    0,
		SkillGaps:                 []types.SkillGap{},
		Strengths:                 []types.UserSkill{},
		CriticalGaps:              []types.SkillGap{},
		QuickWins:                 []types.SkillGap{},
		TransferableOpportunities: []types.TransferableOpportunity{},
		Recommendations:           types.Recommendations{Immediate: []string{}, ShortTerm: []string{}, LongTerm: []string{}},
		Metadata: types.AnalysisMetadata{
			AnalysisConfidence: 0,
			Notes:              []string{fmt.Sprintf("analysis degraded: %v", cause)},
		},
	}
}

// buildSummary computes the headline team numbers.
func (a *Aggregator) buildSummary(memberAnalyses []types.MemberAnalysis, gaps []types.TeamGap, strengths []types.TeamStrength, stats skillStats, reqs []types.SkillRequirement) types.TeamSummary {
	matchSum := 0
	for _, ma := range memberAnalyses {
		matchSum += ma.Result.OverallMatchPercentage
	}
	overallMatch := int(math.Round(float64(matchSum) / float64(len(memberAnalyses))))

	criticalCount := 0
	for _, gap := range gaps {
		if gap.Severity == types.TeamSeverityCritical {
			criticalCount++
		}
	}

	required := a.requiredCanonicals(reqs)
	coverage := 100
	if len(required) > 0 {
		covered := 0
		for _, skill := range required {
			if stats.strengthMembers(skill) > 0 {
				covered++
			}
		}
		coverage = int(math.Round(100 * float64(covered) / float64(len(required))))
	}

	return types.TeamSummary{
		TotalMembers:            len(memberAnalyses),
		OverallMatch:            overallMatch,
		CriticalGapsCount:       criticalCount,
		TeamStrengthsCount:      len(strengths),
		SkillCoveragePercentage: coverage,
	}
}

// teamConfidence averages successful members' analysis confidence and
// discounts it when any member was degraded.
func teamConfidence(outcomes []memberOutcome) float64 {
	sum := 0.0
	n := 0
	anyFailed := false
	for _, o := range outcomes {
		if o.failed() {
			anyFailed = true
			continue
		}
		sum += o.result.Metadata.AnalysisConfidence
		n++
	}
	if n == 0 {
		return 0
	}
	confidence := sum / float64(n)
	if anyFailed {
		confidence *= failureConfidenceDiscount
	}
	return confidence
}
