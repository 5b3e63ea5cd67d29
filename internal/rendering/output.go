package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// OutputPath returns <dir>/<lang>-resume-<theme>.html.
func OutputPath(dir, lang, themeID string) string {
	return filepath.Join(dir, fmt.Sprintf("%s-resume-%s.html", lang, themeID))
}

// CombinedOutputPath returns <dir>/combined-resume-<theme>.html.
func CombinedOutputPath(dir, themeID string) string {
	return filepath.Join(dir, fmt.Sprintf("combined-resume-%s.html", themeID))
}

// WriteHTML writes html to path, creating parent directories as needed.
func WriteHTML(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Heading is one entry of a rendered document's outline
type Heading struct {
	Level int
	Text  string
}

// Outline returns the h1-h3 headings of a rendered document in order.
func Outline(html string) ([]Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse rendered HTML", Cause: err}
	}

	var headings []Heading
	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, Heading{Level: level, Text: text})
	})
	return headings, nil
}
