// Package main provides the entry point for the skill gap analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_agent",
	Short: "Skill Gap Analyzer CLI",
	Long:  "Skill Gap Analyzer compares people's skills against role or project requirements, producing gap reports, learning recommendations, and team-level hiring/training guidance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
