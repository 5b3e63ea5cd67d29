package main

import (
	"fmt"

	"github.com/jonathan/resume-themes/internal/completeness"
	"github.com/jonathan/resume-themes/internal/observability"
	"github.com/jonathan/resume-themes/internal/types"
	"github.com/spf13/cobra"
)

// defaultWorkingResume is the résumé being filled in by hand.
const defaultWorkingResume = "resume.json"

var checkEmptyCmd = &cobra.Command{
	Use:   "check-empty [file]",
	Short: "List the fields of a résumé that are still empty",
	Long:  "Lists every empty string and empty array in a résumé file (default " + defaultWorkingResume + ").",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckEmpty,
}

func init() {
	rootCmd.AddCommand(checkEmptyCmd)
}

func runCheckEmpty(cmd *cobra.Command, args []string) error {
	path := defaultWorkingResume
	if len(args) > 0 {
		path = args[0]
	}

	doc, err := types.LoadRaw(path)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintEmptyFields(completeness.EmptyFields(doc))
	return nil
}
