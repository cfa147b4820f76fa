package analysis

import (
	"fmt"
	"math"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

// Transferability scoring constants: same-category experience starts at the
// base and years of experience add up to the cap.
const (
	transferCategoryBase = 0.5
	transferPerYear      = 0.1
	transferYearsCap     = 0.3
)

// transferablesFor scans the user's other skills in the same category as the
// gap and surfaces the ones whose transferability clears the threshold.
func (a *Analyzer) transferablesFor(gap types.SkillGap, gapCanonical string, skills []resolvedSkill) []types.TransferableOpportunity {
	var opportunities []types.TransferableOpportunity

	for _, rs := range skills {
		if rs.match.CanonicalName == gapCanonical {
			continue
		}
		if gap.Category == "" || rs.category() != gap.Category {
			continue
		}

		score := transferabilityScore(rs.skill.YearsExperience)
		if score < a.cfg.TransferabilityThreshold {
			continue
		}

		opportunities = append(opportunities, types.TransferableOpportunity{
			GapSkill:             gap.SkillName,
			ExistingSkill:        rs.match.CanonicalName,
			TransferabilityScore: score,
			Reasoning: fmt.Sprintf("%s experience (%s, %.1f years) is in the same category (%s) as %s and should shorten the ramp-up",
				rs.match.CanonicalName, rs.skill.Level, rs.skill.YearsExperience, gap.Category, gap.SkillName),
		})
	}

	return opportunities
}

// transferabilityScore computes the 0-1 score from category match plus
// years of experience.
func transferabilityScore(years float64) float64 {
	yearsBonus := math.Min(transferYearsCap, years*transferPerYear)
	return transferCategoryBase + yearsBonus
}
