package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talentops/skillgap-analyzer/internal/analysis"
	"github.com/talentops/skillgap-analyzer/internal/observability"
	"github.com/talentops/skillgap-analyzer/internal/schemas"
	"github.com/talentops/skillgap-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one person's skill gaps against requirements",
	Long:  "Compares a person's skills JSON against a requirements JSON, producing a gap analysis with severity, learning time estimates, transferable skills, and prioritized recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeSkills       string
	analyzeRequirements string
	analyzeOutput       string
	analyzeCatalog      string
	analyzeConfig       string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Path to input user skills JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeRequirements, "requirements", "r", "", "Path to input skill requirements JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output gap analysis JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeCatalog, "catalog", "c", "", "Path to a YAML catalog file extending the built-in skills")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stdout")

	if err := analyzeCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(analyzeConfig)
	if err != nil {
		return err
	}
	catalogPath := analyzeCatalog
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}

	// 1. Load inputs from JSON files
	skillsContent, err := os.ReadFile(analyzeSkills)
	if err != nil {
		return fmt.Errorf("failed to read skills file %s: %w", analyzeSkills, err)
	}
	var userSkills []types.UserSkill
	if err := json.Unmarshal(skillsContent, &userSkills); err != nil {
		return fmt.Errorf("failed to unmarshal user skills JSON: %w", err)
	}

	requirementsContent, err := os.ReadFile(analyzeRequirements)
	if err != nil {
		return fmt.Errorf("failed to read requirements file %s: %w", analyzeRequirements, err)
	}
	var requirements []types.SkillRequirement
	if err := json.Unmarshal(requirementsContent, &requirements); err != nil {
		return fmt.Errorf("failed to unmarshal requirements JSON: %w", err)
	}

	// 2. Validate inputs against schemas (optional but recommended)
	if schemaPath := schemas.ResolveSchemaPath("schemas/user_skills.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeSkills); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input skills failed schema validation: %v\n", err)
		}
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/requirements.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeRequirements); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input requirements failed schema validation: %v\n", err)
		}
	}

	// 3. Run the gap analysis
	matcher, err := buildMatcher(catalogPath, cfg.MatchThreshold)
	if err != nil {
		return err
	}
	analysisCfg := analysis.DefaultConfig()
	if cfg.BaseMonthsPerLevel > 0 {
		analysisCfg.BaseMonthsPerLevel = cfg.BaseMonthsPerLevel
	}
	analyzer := analysis.NewAnalyzer(matcher, analysisCfg)

	result, err := analyzer.Analyze(userSkills, requirements)
	if err != nil {
		return fmt.Errorf("gap analysis failed: %w", err)
	}

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gap analysis to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(analyzeOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 5. Write to output file
	if err := os.WriteFile(analyzeOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write gap analysis to output file %s: %w", analyzeOutput, err)
	}

	// 6. Validate output against schema (if schema file exists)
	if outputSchemaPath := schemas.ResolveSchemaPath("schemas/gap_analysis.schema.json"); outputSchemaPath != "" {
		if err := schemas.ValidateJSON(outputSchemaPath, analyzeOutput); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated gap analysis is invalid: %w", err)
			} else if errors.As(err, &schemaLoadErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintGapAnalysis(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote gap analysis to %s\n", analyzeOutput)

	return nil
}
