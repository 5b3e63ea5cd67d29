// Package export prints rendered résumés to PDF with a headless browser.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single print job.
const DefaultTimeout = 60 * time.Second

// Paper sizes in inches
const (
	PaperLetter = "letter"
	PaperA4     = "a4"
)

var paperSizes = map[string][2]float64{
	PaperLetter: {8.5, 11},
	PaperA4:     {8.27, 11.69},
}

// Options configures PDF printing.
type Options struct {
	Paper           string
	PrintBackground bool
	Timeout         time.Duration
	Verbose         bool
}

// DefaultOptions returns letter paper with backgrounds printed.
func DefaultOptions() *Options {
	return &Options{
		Paper:           PaperLetter,
		PrintBackground: true,
		Timeout:         DefaultTimeout,
	}
}

// Error represents a failed print job.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FileURL returns the file:// URL Chrome loads for a local HTML file.
func FileURL(htmlPath string) (string, error) {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// printParams builds the Chrome print request for opts.
func printParams(opts *Options) (*page.PrintToPDFParams, error) {
	size, ok := paperSizes[opts.Paper]
	if !ok {
		return nil, fmt.Errorf("unknown paper size %q (use %s or %s)", opts.Paper, PaperLetter, PaperA4)
	}
	return page.PrintToPDF().
		WithPrintBackground(opts.PrintBackground).
		WithPreferCSSPageSize(true).
		WithPaperWidth(size[0]).
		WithPaperHeight(size[1]), nil
}

// PrintPDF loads htmlPath in headless Chrome and writes the printed document to pdfPath.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, htmlPath, pdfPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if _, err := os.Stat(htmlPath); err != nil {
		return &Error{Path: htmlPath, Message: "input not readable", Cause: err}
	}
	params, err := printParams(opts)
	if err != nil {
		return &Error{Path: htmlPath, Message: "invalid options", Cause: err}
	}
	url, err := FileURL(htmlPath)
	if err != nil {
		return &Error{Path: htmlPath, Message: "failed to resolve path", Cause: err}
	}

	if opts.Verbose {
		log.Printf("[PDF] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := params.Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return &Error{Path: htmlPath, Message: "browser printing failed", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(pdfPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pdfPath, err)
	}

	if opts.Verbose {
		log.Printf("[PDF] Wrote %s (%d bytes)", pdfPath, len(pdf))
	}
	return nil
}
