// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jonathan/resume-themes/internal/rendering"
	"github.com/jonathan/resume-themes/internal/types"
	"github.com/jonathan/resume-themes/internal/validation"
	"github.com/mattn/go-isatty"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// ruleWidth is the width of the rule around the empty-fields list
	ruleWidth = 70
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	red   func(format string, a ...any) string
	green func(format string, a ...any) string
	dim   func(format string, a ...any) string
	bold  func(format string, a ...any) string
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colour is enabled only when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	return newPrinter(out, isTerminal(out))
}

// NewPlainPrinter creates a Printer that never emits colour codes.
func NewPlainPrinter(out io.Writer) *Printer {
	return newPrinter(out, false)
}

func newPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{out: out}
	paint := func(attrs ...color.Attribute) func(string, ...any) string {
		if !colored {
			return fmt.Sprintf
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintfFunc()
	}
	p.red = paint(color.FgRed)
	p.green = paint(color.FgGreen)
	p.dim = paint(color.Faint)
	p.bold = paint(color.Bold)
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidating announces the file about to be validated.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidating(file string) {
	fmt.Fprintf(p.out, "Validating %s...\n", file)
}

// PrintFileReport prints the success line for a valid file, otherwise every error
// as a numbered block followed by the schema reference link.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFileReport(report *validation.FileReport) {
	if report == nil {
		return
	}
	if report.Valid() {
		fmt.Fprintf(p.out, "\n%s\n", p.green("✓ Your %s looks amazing! ✨", report.File))
		return
	}

	fmt.Fprintf(p.out, "\n%s\n\n", p.red("❌ Resume validation failed with %d error(s):", len(report.Errors)))
	for i, e := range report.Errors {
		p.printError(i+1, e)
	}
	fmt.Fprintln(p.out, "For the complete JSON Resume schema, visit:")
	fmt.Fprintf(p.out, "%s\n\n", p.dim("%s", validation.SchemaReferenceURL))
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printError(n int, e validation.ValidationError) {
	fmt.Fprintln(p.out, p.bold("Error %d:", n))
	fmt.Fprintf(p.out, "  Location: %s\n", e.Path)

	hints := e.Hints
	if e.IsDisallowedProperty() {
		fmt.Fprintf(p.out, "  Invalid property: %q\n", *e.Property)
		hints = append([]string{"This property is not part of the JSON Resume schema."}, hints...)
	} else {
		fmt.Fprintf(p.out, "  Issue: %s\n", e.Message)
	}

	for i, h := range hints {
		if i == 0 {
			fmt.Fprintf(p.out, "  → %s\n", h)
			continue
		}
		fmt.Fprintf(p.out, "     %s\n", h)
	}
	fmt.Fprintln(p.out)
}

// PrintRunSummary prints the totals of a multi-file run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(run *validation.RunReport) {
	if run == nil || len(run.Files) < 2 {
		return
	}
	if run.Valid() {
		fmt.Fprintln(p.out, p.green("✓ All %d files are valid", len(run.Files)))
		return
	}
	fmt.Fprintln(p.out, p.red("❌ %d error(s) in %d of %d file(s)", run.TotalErrors(), run.FailedFiles(), len(run.Files)))
}

// PrintStructuralError prints a failure that stopped validation of file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStructuralError(file string, err error) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.red("❌ Validation failed with an error:"))
	fmt.Fprintln(p.out, err.Error())

	var docErr *types.DocumentError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(p.out, "\nThe file %q was not found.\n", file)
	case errors.As(err, &docErr) && docErr.Kind == types.KindParse:
		fmt.Fprintln(p.out, "\nThe file contains invalid JSON. Please check the syntax.")
	}
	fmt.Fprintln(p.out)
}

// PrintEmptyFields lists the blank fields of a résumé.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEmptyFields(fields []string) {
	if len(fields) == 0 {
		fmt.Fprintln(p.out, p.green("✓ All fields are filled in!"))
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(p.out, "The following fields are empty and should be filled in:")
	fmt.Fprintln(p.out, rule)
	for _, f := range fields {
		fmt.Fprintf(p.out, "  - %s\n", f)
	}
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "\nTotal empty fields: %d\n", len(fields))
}

// PrintRendered reports a written HTML file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRendered(path string) {
	fmt.Fprintf(p.out, "Rendered: %s\n", path)
}

// PrintThemeDone reports that every document of a theme was written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintThemeDone(themeID string, phoneStripped bool) {
	fmt.Fprintln(p.out, p.green("✓ Successfully rendered theme: %s", themeID))
	if phoneStripped {
		fmt.Fprintln(p.out, p.green("✓ Phone number stripped from output"))
	}
}

// PrintThemes outputs the registered themes, marking the default.
func (p *Printer) PrintThemes(themes []*rendering.Theme, defaultID string) {
	var sb strings.Builder
	for i, t := range themes {
		marker := " "
		if t.ID == defaultID {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-18s %s", marker, t.ID, t.Name))
		if t.SupportsCombined() {
			sb.WriteString(" (EN/FR)")
		}
		if i < len(themes)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("AVAILABLE THEMES", sb.String())
}

// PrintOutline outputs the heading outline of a rendered document.
func (p *Printer) PrintOutline(path string, headings []rendering.Heading) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d headings\n\n", len(headings)))
	for i, h := range headings {
		sb.WriteString(strings.Repeat("  ", h.Level-1))
		sb.WriteString(h.Text)
		if i < len(headings)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("OUTLINE "+path, sb.String())
}
