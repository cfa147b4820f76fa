package team

import (
	"math"
	"sort"

	"github.com/talentops/skillgap-analyzer/internal/matching"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

// gapAccum accumulates one skill's gap occurrences across members.
type gapAccum struct {
	skill      string
	memberIDs  []string
	importance types.Importance
	sumMonths  int
	sumGap     int
}

// strengthAccum accumulates one skill's strength occurrences across members.
type strengthAccum struct {
	skill     string
	memberIDs []string
	sumLevels int
}

// skillStats is the fold of all member results, keyed by canonical skill
// name. maxLevels tracks the highest level any member holds in a skill,
// whether it surfaced as a gap's current level or as a strength.
type skillStats struct {
	gaps          map[string]*gapAccum
	gapOrder      []string
	strengths     map[string]*strengthAccum
	strengthOrder []string
	maxLevels     map[string]types.SkillLevel
}

func (s skillStats) strengthMembers(skill string) int {
	if acc, ok := s.strengths[skill]; ok {
		return len(acc.memberIDs)
	}
	return 0
}

// collectSkillStats folds member outcomes into per-skill statistics. Gap
// skill names are already canonical (the analyzer resolves them); strength
// names are raw user input and are canonicalized here. Degraded members
// contribute nothing.
func collectSkillStats(outcomes []memberOutcome, matcher *matching.Matcher) skillStats {
	stats := skillStats{
		gaps:      make(map[string]*gapAccum),
		strengths: make(map[string]*strengthAccum),
		maxLevels: make(map[string]types.SkillLevel),
	}

	for _, o := range outcomes {
		if o.failed() {
			continue
		}

		for _, gap := range o.result.SkillGaps {
			acc, ok := stats.gaps[gap.SkillName]
			if !ok {
				acc = &gapAccum{skill: gap.SkillName, importance: gap.Importance}
				stats.gaps[gap.SkillName] = acc
				stats.gapOrder = append(stats.gapOrder, gap.SkillName)
			}
			acc.memberIDs = append(acc.memberIDs, o.member.ID)
			acc.importance = acc.importance.Max(gap.Importance)
			acc.sumMonths += gap.TimeToCompetency
			acc.sumGap += gap.LevelGap
			if gap.CurrentLevel != nil && *gap.CurrentLevel > stats.maxLevels[gap.SkillName] {
				stats.maxLevels[gap.SkillName] = *gap.CurrentLevel
			}
		}

		seen := make(map[string]bool)
		for _, strength := range o.result.Strengths {
			canonical := matcher.Match(strength.SkillName).CanonicalName
			if canonical == "" || seen[canonical] {
				continue
			}
			seen[canonical] = true

			acc, ok := stats.strengths[canonical]
			if !ok {
				acc = &strengthAccum{skill: canonical}
				stats.strengths[canonical] = acc
				stats.strengthOrder = append(stats.strengthOrder, canonical)
			}
			acc.memberIDs = append(acc.memberIDs, o.member.ID)
			acc.sumLevels += int(strength.Level)
			if strength.Level > stats.maxLevels[canonical] {
				stats.maxLevels[canonical] = strength.Level
			}
		}
	}

	return stats
}

// buildTeamGaps turns accumulated gap statistics into team gaps: a skill
// qualifies when at least the configured fraction of members needs it.
func (a *Aggregator) buildTeamGaps(stats skillStats, totalMembers int) []types.TeamGap {
	gaps := make([]types.TeamGap, 0, len(stats.gapOrder))

	for _, skill := range stats.gapOrder {
		acc := stats.gaps[skill]
		count := len(acc.memberIDs)
		ratio := float64(count) / float64(totalMembers)
		if ratio < a.cfg.GapThreshold {
			continue
		}

		severity := types.TeamSeverityModerate
		if acc.importance == types.ImportanceCritical || ratio >= a.cfg.CriticalRatio {
			severity = types.TeamSeverityCritical
		}

		avgMonths := float64(acc.sumMonths) / float64(count)
		hasProficiency := stats.maxLevels[skill] > types.LevelBeginner

		gaps = append(gaps, types.TeamGap{
			SkillName:             skill,
			MembersNeeding:        count,
			PercentageNeeding:     roundPercentage(ratio),
			Severity:              severity,
			EstimatedTrainingCost: float64(count) * a.cfg.CostPerHour * a.cfg.HoursPerLevelMonth * avgMonths,
			EstimatedHiringCost:   a.cfg.HiringCostPerSkill,
			RecommendedSolution:   a.recommendSolution(severity, hasProficiency, avgMonths),
			MemberIDs:             acc.memberIDs,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].PercentageNeeding != gaps[j].PercentageNeeding {
			return gaps[i].PercentageNeeding > gaps[j].PercentageNeeding
		}
		return gaps[i].SkillName < gaps[j].SkillName
	})

	return gaps
}

// recommendSolution picks the remediation path for a team gap: hiring for
// critical gaps with zero in-team proficiency, mixed for critical gaps with
// partial proficiency, training when the ramp-up stays within the ceiling.
func (a *Aggregator) recommendSolution(severity types.TeamGapSeverity, hasProficiency bool, avgMonths float64) types.Solution {
	if severity == types.TeamSeverityCritical {
		if !hasProficiency {
			return types.SolutionHiring
		}
		return types.SolutionMixed
	}
	if avgMonths <= float64(a.cfg.TrainingMonthsCeiling) {
		return types.SolutionTraining
	}
	return types.SolutionMixed
}

// roundPercentage converts a ratio to a percentage rounded to one decimal.
func roundPercentage(ratio float64) float64 {
	return math.Round(ratio*1000) / 10
}
