package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-themes/internal/observability"
	"github.com/jonathan/resume-themes/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate résumé files against the JSON Resume schema",
	Long: `Validates each résumé file in order: properties outside the JSON Resume schema are reported
first, then schema violations. With no arguments, ` + validation.DefaultResumeFile + ` is validated.`,
	RunE: runValidate,
}

var (
	validateRestrictPaths bool
	validateJSONOut       string
	validateNoColor       bool
	validateVerbose       bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateRestrictPaths, "restrict-paths", false, "Only accept relative .json paths inside the working directory")
	validateCmd.Flags().StringVar(&validateJSONOut, "json-out", "", "Write the run report as JSON to this path")
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable coloured output")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		files = []string{validation.DefaultResumeFile}
	}

	out := newPrinter(cmd.OutOrStdout(), validateNoColor)
	errOut := newPrinter(cmd.ErrOrStderr(), validateNoColor)

	v := validation.New()
	v.RestrictPaths = validateRestrictPaths

	for _, f := range files {
		out.PrintValidating(f)
	}

	run, err := v.ValidateFiles(files)
	if validateVerbose {
		log.Printf("[VALIDATE] Run %s: %d file(s) checked", run.RunID, len(run.Files))
	}

	for _, report := range run.Files {
		if report.Valid() {
			out.PrintFileReport(report)
		} else {
			errOut.PrintFileReport(report)
		}
	}

	if err != nil {
		errOut.PrintStructuralError(files[len(run.Files)], err)
		return err
	}

	out.PrintRunSummary(run)

	if validateJSONOut != "" {
		if err := writeRunReport(validateJSONOut, run); err != nil {
			return err
		}
	}

	return run.Err()
}

func writeRunReport(path string, run *validation.RunReport) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report to JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}

func newPrinter(w io.Writer, noColor bool) *observability.Printer {
	if noColor {
		return observability.NewPlainPrinter(w)
	}
	return observability.NewPrinter(w)
}
