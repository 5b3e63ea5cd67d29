package main

import (
	"fmt"

	"github.com/jonathan/resume-themes/internal/preview"
	"github.com/jonathan/resume-themes/internal/types"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Print a plain-text preview of a résumé",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := defaultWorkingResume
	if len(args) > 0 {
		path = args[0]
	}

	r, err := types.LoadResume(path)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	return preview.Text(cmd.OutOrStdout(), r)
}
