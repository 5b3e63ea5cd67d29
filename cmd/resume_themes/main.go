// Package main provides the resume_themes CLI: render JSON Resume documents through
// HTML themes, validate them, and report validation failures on pull requests.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_themes",
	Short:         "JSON Resume themes and validation",
	Long:          "resume_themes renders JSON Resume documents into self-contained HTML through interchangeable themes and validates them against the JSON Resume schema.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
