package main

import (
	"github.com/jonathan/resume-themes/internal/observability"
	"github.com/jonathan/resume-themes/internal/rendering"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintThemes(rendering.DefaultRegistry().Themes(), rendering.DefaultThemeID)
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
