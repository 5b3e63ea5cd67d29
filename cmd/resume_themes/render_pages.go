package main

import (
	"fmt"

	"github.com/jonathan/resume-themes/internal/config"
	"github.com/jonathan/resume-themes/internal/types"
	"github.com/spf13/cobra"
)

var renderPagesCmd = &cobra.Command{
	Use:   "render-pages [theme]",
	Short: "Render the English and French résumés for GitHub Pages",
	Long:  "Renders the configured English and French résumés into the GitHub Pages directory (default github-pages).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRenderPages,
}

var (
	renderPagesConfigPath string
	renderPagesStripPhone bool
)

func init() {
	renderPagesCmd.Flags().StringVarP(&renderPagesConfigPath, "config", "c", "", "Path to JSON config file")
	renderPagesCmd.Flags().BoolVar(&renderPagesStripPhone, "strip-phone", false, "Remove the phone number before publishing")

	rootCmd.AddCommand(renderPagesCmd)
}

func runRenderPages(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(renderPagesConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	job, err := newRenderJob(cmd, cfg, args, cfg.PagesDir)
	if err != nil {
		return err
	}
	job.stripPhone = renderPagesStripPhone || cfg.StripPhone

	if err := job.renderLanguages([]string{types.LangEN, types.LangFR}); err != nil {
		return err
	}

	job.printer.PrintThemeDone(job.theme.ID, job.stripPhone)
	return nil
}
