package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-themes/internal/export"
	"github.com/spf13/cobra"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print a rendered résumé to PDF",
	Long:  "Loads a rendered HTML résumé in headless Chrome and prints it to PDF. Requires Chrome/Chromium to be installed.",
	RunE:  runExportPDF,
}

var (
	exportPDFInput   string
	exportPDFOutput  string
	exportPDFPaper   string
	exportPDFTimeout time.Duration
	exportPDFVerbose bool
)

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFInput, "in", "i", "", "Path to rendered HTML file (required)")
	exportPDFCmd.Flags().StringVarP(&exportPDFOutput, "out", "o", "", "Path to output PDF file (required)")
	exportPDFCmd.Flags().StringVar(&exportPDFPaper, "paper", export.PaperLetter, "Paper size: letter or a4")
	exportPDFCmd.Flags().DurationVar(&exportPDFTimeout, "timeout", export.DefaultTimeout, "Maximum time to wait for the browser")
	exportPDFCmd.Flags().BoolVarP(&exportPDFVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := exportPDFCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := exportPDFCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	opts := export.DefaultOptions()
	opts.Paper = exportPDFPaper
	opts.Timeout = exportPDFTimeout
	opts.Verbose = exportPDFVerbose

	if err := export.PrintPDF(cmd.Context(), exportPDFInput, exportPDFOutput, opts); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF written: %s\n", exportPDFOutput)
	return nil
}
