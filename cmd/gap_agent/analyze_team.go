package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talentops/skillgap-analyzer/internal/analysis"
	"github.com/talentops/skillgap-analyzer/internal/observability"
	"github.com/talentops/skillgap-analyzer/internal/schemas"
	"github.com/talentops/skillgap-analyzer/internal/team"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

var analyzeTeamCmd = &cobra.Command{
	Use:   "analyze-team",
	Short: "Analyze a team's skill gaps against project requirements",
	Long:  "Runs a gap analysis for every team member in parallel and aggregates the results into team-wide gaps, strengths, budget estimates, and hiring/training recommendations.",
	RunE:  runAnalyzeTeam,
}

var (
	analyzeTeamMembers string
	analyzeTeamProject string
	analyzeTeamOutput  string
	analyzeTeamCatalog string
	analyzeTeamConfig  string
	analyzeTeamVerbose bool
)

func init() {
	analyzeTeamCmd.Flags().StringVarP(&analyzeTeamMembers, "team", "t", "", "Path to input team members JSON file (required)")
	analyzeTeamCmd.Flags().StringVarP(&analyzeTeamProject, "project", "p", "", "Path to input project requirements JSON file (required)")
	analyzeTeamCmd.Flags().StringVarP(&analyzeTeamOutput, "out", "o", "", "Path to output team analysis JSON file (required)")
	analyzeTeamCmd.Flags().StringVarP(&analyzeTeamCatalog, "catalog", "c", "", "Path to a YAML catalog file extending the built-in skills")
	analyzeTeamCmd.Flags().StringVar(&analyzeTeamConfig, "config", "", "Path to a JSON config file")
	analyzeTeamCmd.Flags().BoolVarP(&analyzeTeamVerbose, "verbose", "v", false, "Print a formatted summary to stdout")

	if err := analyzeTeamCmd.MarkFlagRequired("team"); err != nil {
		panic(fmt.Sprintf("failed to mark team flag as required: %v", err))
	}
	if err := analyzeTeamCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := analyzeTeamCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeTeamCmd)
}

func runAnalyzeTeam(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(analyzeTeamConfig)
	if err != nil {
		return err
	}
	catalogPath := analyzeTeamCatalog
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}

	// 1. Load inputs from JSON files
	membersContent, err := os.ReadFile(analyzeTeamMembers)
	if err != nil {
		return fmt.Errorf("failed to read team file %s: %w", analyzeTeamMembers, err)
	}
	var members []types.TeamMember
	if err := json.Unmarshal(membersContent, &members); err != nil {
		return fmt.Errorf("failed to unmarshal team members JSON: %w", err)
	}

	projectContent, err := os.ReadFile(analyzeTeamProject)
	if err != nil {
		return fmt.Errorf("failed to read project file %s: %w", analyzeTeamProject, err)
	}
	var project types.ProjectRequirements
	if err := json.Unmarshal(projectContent, &project); err != nil {
		return fmt.Errorf("failed to unmarshal project requirements JSON: %w", err)
	}

	// 2. Validate inputs against schemas (optional but recommended)
	if schemaPath := schemas.ResolveSchemaPath("schemas/team.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeTeamMembers); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input team failed schema validation: %v\n", err)
		}
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/project.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeTeamProject); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input project failed schema validation: %v\n", err)
		}
	}

	// 3. Run the team analysis
	matcher, err := buildMatcher(catalogPath, cfg.MatchThreshold)
	if err != nil {
		return err
	}
	analysisCfg := analysis.DefaultConfig()
	if cfg.BaseMonthsPerLevel > 0 {
		analysisCfg.BaseMonthsPerLevel = cfg.BaseMonthsPerLevel
	}
	analyzer := analysis.NewAnalyzer(matcher, analysisCfg)

	teamCfg := team.DefaultConfig()
	if cfg.RoleFitThreshold > 0 {
		teamCfg.RoleFitThreshold = cfg.RoleFitThreshold
	}
	if cfg.CostPerHour > 0 {
		teamCfg.CostPerHour = cfg.CostPerHour
	}
	if cfg.HoursPerLevelMonth > 0 {
		teamCfg.HoursPerLevelMonth = cfg.HoursPerLevelMonth
	}
	if cfg.HiringCostPerSkill > 0 {
		teamCfg.HiringCostPerSkill = cfg.HiringCostPerSkill
	}
	if cfg.MaxParallel > 0 {
		teamCfg.MaxParallel = cfg.MaxParallel
	}
	aggregator := team.NewAggregator(analyzer, matcher, teamCfg)

	result, err := aggregator.Analyze(context.Background(), members, project)
	if err != nil {
		return fmt.Errorf("team analysis failed: %w", err)
	}

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal team analysis to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(analyzeTeamOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 5. Write to output file
	if err := os.WriteFile(analyzeTeamOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write team analysis to output file %s: %w", analyzeTeamOutput, err)
	}

	// 6. Validate output against schema (if schema file exists)
	if outputSchemaPath := schemas.ResolveSchemaPath("schemas/team_analysis.schema.json"); outputSchemaPath != "" {
		if err := schemas.ValidateJSON(outputSchemaPath, analyzeTeamOutput); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated team analysis is invalid: %w", err)
			} else if errors.As(err, &schemaLoadErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	if analyzeTeamVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintTeamAnalysis(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote team analysis to %s\n", analyzeTeamOutput)

	return nil
}
