package team

import (
	"math"
	"sort"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// buildTeamStrengths turns accumulated strength statistics into team
// strengths: a skill qualifies when at least the configured fraction of
// members holds it.
func (a *Aggregator) buildTeamStrengths(stats skillStats, totalMembers int) []types.TeamStrength {
	strengths := make([]types.TeamStrength, 0, len(stats.strengthOrder))

	for _, skill := range stats.strengthOrder {
		acc := stats.strengths[skill]
		count := len(acc.memberIDs)
		ratio := float64(count) / float64(totalMembers)
		if ratio < a.cfg.StrengthThreshold {
			continue
		}

		coverage := types.CoverageGood
		if ratio >= a.cfg.ExcellentRatio {
			coverage = types.CoverageExcellent
		}

		strengths = append(strengths, types.TeamStrength{
			SkillName:        skill,
			MembersHaving:    count,
			PercentageHaving: roundPercentage(ratio),
			Coverage:         coverage,
			ExpertiseLevel:   aggregateLevel(acc.sumLevels, count),
			MemberIDs:        acc.memberIDs,
		})
	}

	sort.SliceStable(strengths, func(i, j int) bool {
		if strengths[i].PercentageHaving != strengths[j].PercentageHaving {
			return strengths[i].PercentageHaving > strengths[j].PercentageHaving
		}
		return strengths[i].SkillName < strengths[j].SkillName
	})

	return strengths
}

// aggregateLevel is the rounded mean of member levels, clamped to the valid
// enum range.
func aggregateLevel(sumLevels, count int) types.SkillLevel {
	level := types.SkillLevel(math.Round(float64(sumLevels) / float64(count)))
	if level < types.LevelBeginner {
		return types.LevelBeginner
	}
	if level > types.LevelExpert {
		return types.LevelExpert
	}
	return level
}
