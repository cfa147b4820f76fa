package analysis

import (
	"fmt"
	"sort"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// Time-horizon boundaries for recommendation buckets, in months.
const (
	immediateHorizonMonths = 1
	shortTermHorizonMonths = 4
)

// buildRecommendations renders gaps into actionable advice, bucketed by
// estimated time to competency. Higher-priority gaps come first within each
// bucket.
func (a *Analyzer) buildRecommendations(gaps []types.SkillGap) types.Recommendations {
	sorted := make([]types.SkillGap, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].SkillName < sorted[j].SkillName
	})

	recs := types.Recommendations{
		Immediate: []string{},
		ShortTerm: []string{},
		LongTerm:  []string{},
	}

	for _, gap := range sorted {
		switch {
		case gap.TimeToCompetency <= immediateHorizonMonths:
			recs.Immediate = append(recs.Immediate,
				fmt.Sprintf("Start on %s now: about %d month to reach %s (quick win)",
					gap.SkillName, gap.TimeToCompetency, gap.RequiredLevel))
		case gap.TimeToCompetency <= shortTermHorizonMonths:
			recs.ShortTerm = append(recs.ShortTerm,
				fmt.Sprintf("Schedule %s training over the next %d months to reach %s",
					gap.SkillName, gap.TimeToCompetency, gap.RequiredLevel))
		default:
			recs.LongTerm = append(recs.LongTerm,
				fmt.Sprintf("Plan a longer-term %s learning path (about %d months to %s); consider mentoring or formal coursework",
					gap.SkillName, gap.TimeToCompetency, gap.RequiredLevel))
		}
	}

	return recs
}
