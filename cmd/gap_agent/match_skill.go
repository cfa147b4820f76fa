package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var matchSkillCmd = &cobra.Command{
	Use:   "match-skill <skill>",
	Short: "Resolve a raw skill name to its canonical form",
	Long:  "Resolves a raw skill name against the catalog using exact, synonym, and fuzzy matching, printing the canonical name, category, and match confidence.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchSkill,
}

var (
	matchSkillCatalog   string
	matchSkillThreshold float64
)

func init() {
	matchSkillCmd.Flags().StringVarP(&matchSkillCatalog, "catalog", "c", "", "Path to a YAML catalog file extending the built-in skills")
	matchSkillCmd.Flags().Float64VarP(&matchSkillThreshold, "threshold", "t", 0, "Fuzzy-match similarity threshold (0-1, default 0.8)")

	rootCmd.AddCommand(matchSkillCmd)
}

func runMatchSkill(_ *cobra.Command, args []string) error {
	matcher, err := buildMatcher(matchSkillCatalog, matchSkillThreshold)
	if err != nil {
		return err
	}

	match := matcher.Match(args[0])

	_, _ = fmt.Fprintf(os.Stdout, "Canonical:  %s\n", match.CanonicalName)
	_, _ = fmt.Fprintf(os.Stdout, "Category:   %s\n", match.Category)
	_, _ = fmt.Fprintf(os.Stdout, "Confidence: %.2f\n", match.Confidence)

	return nil
}
