package main

import (
	"fmt"
	"log"

	"github.com/jonathan/resume-themes/internal/config"
	"github.com/jonathan/resume-themes/internal/observability"
	"github.com/jonathan/resume-themes/internal/rendering"
	"github.com/jonathan/resume-themes/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [theme]",
	Short: "Render résumés to HTML with a theme",
	Long: `Renders every configured résumé language with the given theme (default from config, else ` +
		rendering.DefaultThemeID + `) into <out-dir>/<lang>-resume-<theme>.html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderConfigPath string
	renderLangs      []string
	renderInput      string
	renderOutDir     string
	renderCombined   bool
	renderStripPhone bool
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().StringSliceVarP(&renderLangs, "lang", "l", nil, "Languages to render (default: every configured language)")
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Render a single résumé file instead of the configured ones")
	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", "", "Output directory (default from config)")
	renderCmd.Flags().BoolVar(&renderCombined, "combined", false, "Render one dual-language EN/FR document")
	renderCmd.Flags().BoolVar(&renderStripPhone, "strip-phone", false, "Remove the phone number before rendering")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print the heading outline of each rendered file")

	rootCmd.AddCommand(renderCmd)
}

// renderJob is one theme rendered into one directory
type renderJob struct {
	cfg        config.Config
	theme      *rendering.Theme
	outDir     string
	stripPhone bool
	verbose    bool
	printer    *observability.Printer
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(renderConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	job, err := newRenderJob(cmd, cfg, args, cfg.OutputDir)
	if err != nil {
		return err
	}
	if renderOutDir != "" {
		job.outDir = renderOutDir
	}
	job.stripPhone = renderStripPhone || cfg.StripPhone
	job.verbose = renderVerbose || cfg.Verbose

	switch {
	case renderInput != "":
		if err := job.renderFile(renderInput, ""); err != nil {
			return err
		}
	case renderCombined:
		if err := job.renderCombined(); err != nil {
			return err
		}
	default:
		langs := renderLangs
		if len(langs) == 0 {
			langs = cfg.Languages()
		}
		if err := job.renderLanguages(langs); err != nil {
			return err
		}
	}

	job.printer.PrintThemeDone(job.theme.ID, job.stripPhone)
	return nil
}

func newRenderJob(cmd *cobra.Command, cfg config.Config, args []string, outDir string) (*renderJob, error) {
	themeID := cfg.Theme
	if themeID == "" {
		themeID = rendering.DefaultThemeID
	}
	if len(args) > 0 {
		themeID = args[0]
	}

	theme, err := rendering.DefaultRegistry().Lookup(themeID)
	if err != nil {
		return nil, err
	}

	return &renderJob{
		cfg:     cfg,
		theme:   theme,
		outDir:  outDir,
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

func (j *renderJob) renderLanguages(langs []string) error {
	for _, lang := range langs {
		path, ok := j.cfg.ResumePath(lang)
		if !ok {
			return fmt.Errorf("no resume configured for language %q", lang)
		}
		if err := j.renderFile(path, lang); err != nil {
			return err
		}
	}
	return nil
}

// renderFile renders one résumé. An empty lang uses the document's own language.
func (j *renderJob) renderFile(path, lang string) error {
	r, err := j.load(path)
	if err != nil {
		return err
	}
	if lang == "" {
		lang = r.Language()
	}

	html, err := j.theme.Render(r.WithDefaults(lang))
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return j.write(rendering.OutputPath(j.outDir, lang, j.theme.ID), html)
}

func (j *renderJob) renderCombined() error {
	enPath, ok := j.cfg.ResumePath(types.LangEN)
	if !ok {
		return fmt.Errorf("no resume configured for language %q", types.LangEN)
	}
	frPath, ok := j.cfg.ResumePath(types.LangFR)
	if !ok {
		return fmt.Errorf("no resume configured for language %q", types.LangFR)
	}

	en, err := j.load(enPath)
	if err != nil {
		return err
	}
	fr, err := j.load(frPath)
	if err != nil {
		return err
	}

	html, err := j.theme.RenderCombined(en, fr)
	if err != nil {
		return err
	}
	return j.write(rendering.CombinedOutputPath(j.outDir, j.theme.ID), html)
}

func (j *renderJob) load(path string) (*types.Resume, error) {
	r, err := types.LoadResume(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if j.stripPhone {
		r.StripPhone()
	}
	return r, nil
}

func (j *renderJob) write(path, html string) error {
	if err := rendering.WriteHTML(path, html); err != nil {
		return err
	}
	j.printer.PrintRendered(path)

	if j.verbose {
		headings, err := rendering.Outline(html)
		if err != nil {
			return err
		}
		log.Printf("[RENDER] %s: %d bytes", path, len(html))
		j.printer.PrintOutline(path, headings)
	}
	return nil
}
