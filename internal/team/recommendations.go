package team

import (
	"fmt"
	"math"
	"strings"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// maxKnowledgeSharingItems caps how many strengths get a pairing suggestion.
const maxKnowledgeSharingItems = 3

// buildRecommendations assembles the team-level remediation advice.
func (a *Aggregator) buildRecommendations(memberAnalyses []types.MemberAnalysis, gaps []types.TeamGap, strengths []types.TeamStrength) types.TeamRecommendations {
	recs := types.TeamRecommendations{
		HiringPriorities:   []string{},
		TrainingPriorities: []string{},
		KnowledgeSharing:   []string{},
		RoleOptimization:   []string{},
	}

	for _, gap := range gaps {
		switch gap.RecommendedSolution {
		case types.SolutionTraining:
			recs.TrainingPriorities = append(recs.TrainingPriorities,
				fmt.Sprintf("Train %d member(s) in %s (estimated $%.0f)", gap.MembersNeeding, gap.SkillName, gap.EstimatedTrainingCost))
		case types.SolutionHiring:
			recs.HiringPriorities = append(recs.HiringPriorities,
				fmt.Sprintf("Hire for %s: critical gap with no in-team proficiency (estimated $%.0f)", gap.SkillName, gap.EstimatedHiringCost))
		case types.SolutionMixed:
			recs.HiringPriorities = append(recs.HiringPriorities,
				fmt.Sprintf("Bring in senior %s talent while existing members ramp up", gap.SkillName))
			recs.TrainingPriorities = append(recs.TrainingPriorities,
				fmt.Sprintf("Up-level the %d member(s) with partial %s proficiency alongside hiring", gap.MembersNeeding, gap.SkillName))
		}
	}

	for i, strength := range strengths {
		if i >= maxKnowledgeSharingItems {
			break
		}
		recs.KnowledgeSharing = append(recs.KnowledgeSharing,
			fmt.Sprintf("Pair the team's %s holders (%s) with teammates for mentoring sessions",
				strength.SkillName, strings.Join(strength.MemberIDs, ", ")))
	}

	for _, ma := range memberAnalyses {
		if ma.Result.OverallMatchPercentage >= a.cfg.RoleFitThreshold {
			continue
		}
		label := ma.Name
		if label == "" {
			label = ma.MemberID
		}
		recs.RoleOptimization = append(recs.RoleOptimization,
			fmt.Sprintf("Review role or training plan for %s (match %d%%)", label, ma.Result.OverallMatchPercentage))
	}

	recs.BudgetAllocation = a.buildBudgetAllocation(gaps)

	return recs
}

// buildBudgetAllocation splits the remediation budget proportionally to the
// relative training and hiring cost magnitudes, bounded so neither side
// degenerates to zero.
func (a *Aggregator) buildBudgetAllocation(gaps []types.TeamGap) types.BudgetAllocation {
	trainingTotal, hiringTotal := costTotals(gaps)

	hiringPct := 50
	if trainingTotal+hiringTotal > 0 {
		hiringPct = int(math.Round(100 * hiringTotal / (trainingTotal + hiringTotal)))
	}
	if hiringPct < a.cfg.AllocationFloor {
		hiringPct = a.cfg.AllocationFloor
	}
	if hiringPct > a.cfg.AllocationCeil {
		hiringPct = a.cfg.AllocationCeil
	}

	return types.BudgetAllocation{
		TrainingPercentage: 100 - hiringPct,
		HiringPercentage:   hiringPct,
	}
}
