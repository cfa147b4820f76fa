// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/talentops/skillgap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGapAnalysis outputs a human-readable summary of an individual result.
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall match:  %d%%\n", result.OverallMatchPercentage))
	sb.WriteString(fmt.Sprintf("Gaps:           %d (%d critical)\n", len(result.SkillGaps), len(result.CriticalGaps)))
	sb.WriteString(fmt.Sprintf("Strengths:      %d\n", len(result.Strengths)))
	sb.WriteString("\n")

	if len(result.SkillGaps) > 0 {
		sb.WriteString("Top gaps:\n")
		count := min(len(result.SkillGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := result.SkillGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, ~%d months, priority %d)\n",
				gap.SkillName, gap.GapSeverity, gap.TimeToCompetency, gap.Priority))
		}
		if len(result.SkillGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillGaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.QuickWins) > 0 {
		sb.WriteString("Quick wins:\n")
		count := min(len(result.QuickWins), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.QuickWins[i].SkillName))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTeamAnalysis outputs a human-readable summary of a team result.
func (p *Printer) PrintTeamAnalysis(result *types.TeamAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Project:        %s\n", result.Project.Name))
	sb.WriteString(fmt.Sprintf("Team size:      %d\n", result.TeamSummary.TotalMembers))
	sb.WriteString(fmt.Sprintf("Overall match:  %d%%\n", result.TeamSummary.OverallMatch))
	sb.WriteString(fmt.Sprintf("Coverage:       %d%%\n", result.TeamSummary.SkillCoveragePercentage))
	sb.WriteString("\n")

	if len(result.TeamGaps) > 0 {
		sb.WriteString("Team gaps:\n")
		count := min(len(result.TeamGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := result.TeamGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %d member(s), %s)\n",
				gap.SkillName, gap.Severity, gap.MembersNeeding, gap.RecommendedSolution))
		}
		if len(result.TeamGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.TeamGaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.TeamStrengths) > 0 {
		sb.WriteString("Team strengths:\n")
		count := min(len(result.TeamStrengths), 3)
		for i := 0; i < count; i++ {
			strength := result.TeamStrengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s coverage)\n", strength.SkillName, strength.Coverage))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Approach:       %s\n", result.BudgetEstimates.RecommendedApproach))
	sb.WriteString(fmt.Sprintf("Budget split:   %d%% training / %d%% hiring",
		result.Recommendations.BudgetAllocation.TrainingPercentage,
		result.Recommendations.BudgetAllocation.HiringPercentage))

	p.printBox("TEAM ANALYSIS", sb.String())
}
