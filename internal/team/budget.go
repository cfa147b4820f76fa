package team

import (
	"math"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// costTotals sums the training and hiring cost magnitudes across team gaps.
// Mixed gaps contribute to both sides.
func costTotals(gaps []types.TeamGap) (trainingTotal, hiringTotal float64) {
	for _, gap := range gaps {
		switch gap.RecommendedSolution {
		case types.SolutionTraining:
			trainingTotal += gap.EstimatedTrainingCost
		case types.SolutionHiring:
			hiringTotal += gap.EstimatedHiringCost
		case types.SolutionMixed:
			trainingTotal += gap.EstimatedTrainingCost
			hiringTotal += gap.EstimatedHiringCost
		}
	}
	return trainingTotal, hiringTotal
}

// buildBudgetEstimates assembles the cost model outputs: per-path totals,
// the recommended overall approach, and the ROI timeline (the longest
// average ramp-up among gaps on a training path, minimum 1 month).
func (a *Aggregator) buildBudgetEstimates(gaps []types.TeamGap, stats skillStats) types.BudgetEstimates {
	trainingBySkill := make(map[string]float64)
	hiringBySkill := make(map[string]float64)
	roiMonths := 1

	for _, gap := range gaps {
		trainsHere := gap.RecommendedSolution == types.SolutionTraining || gap.RecommendedSolution == types.SolutionMixed
		hiresHere := gap.RecommendedSolution == types.SolutionHiring || gap.RecommendedSolution == types.SolutionMixed

		if trainsHere {
			trainingBySkill[gap.SkillName] = gap.EstimatedTrainingCost
			if months := avgGapMonths(stats, gap.SkillName); months > roiMonths {
				roiMonths = months
			}
		}
		if hiresHere {
			hiringBySkill[gap.SkillName] = gap.EstimatedHiringCost
		}
	}

	trainingTotal, hiringTotal := costTotals(gaps)

	return types.BudgetEstimates{
		TrainingCosts:       types.CostBreakdown{Total: trainingTotal, BySkill: trainingBySkill},
		HiringCosts:         types.CostBreakdown{Total: hiringTotal, BySkill: hiringBySkill},
		RecommendedApproach: recommendApproach(trainingTotal, hiringTotal),
		ROITimelineMonths:   roiMonths,
	}
}

// avgGapMonths is the rounded mean time-to-competency across the members
// needing a skill.
func avgGapMonths(stats skillStats, skill string) int {
	acc, ok := stats.gaps[skill]
	if !ok || len(acc.memberIDs) == 0 {
		return 0
	}
	return int(math.Round(float64(acc.sumMonths) / float64(len(acc.memberIDs))))
}

// recommendApproach compares the cost magnitudes: cheap training relative to
// hiring favors training, and vice versa.
func recommendApproach(trainingTotal, hiringTotal float64) types.Approach {
	switch {
	case trainingTotal == 0 && hiringTotal == 0:
		return types.ApproachMixed
	case hiringTotal == 0:
		return types.ApproachTrainingFocused
	case trainingTotal == 0:
		return types.ApproachHiringFocused
	case trainingTotal < 0.5*hiringTotal:
		return types.ApproachTrainingFocused
	case trainingTotal > 2*hiringTotal:
		return types.ApproachHiringFocused
	default:
		return types.ApproachMixed
	}
}
