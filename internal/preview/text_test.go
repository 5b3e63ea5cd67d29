package preview

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-themes/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Basics: &types.Basics{
			Name:     "Jane Doe",
			Label:    "Engineer",
			Email:    "jane@example.com",
			Location: &types.Location{City: "Paris", CountryCode: "FR"},
			Profiles: []types.Profile{{Network: "GitHub", URL: "https://github.com/jane"}},
			Summary:  "Builds things.",
		},
		Work: []types.Work{
			{Name: "Acme", Position: "Lead", StartDate: "2020-01", Highlights: []string{"Shipped v2"}},
			{Position: "Ghost"},
		},
		Education: []types.Education{{Institution: "Uni", StudyType: "MSc", Area: "CS", StartDate: "2015", EndDate: "2017", Score: "4.0"}},
		Skills:    []types.Skill{{Name: "Go", Level: "Expert", Keywords: []string{"cobra", "testify"}}},
		Interests: []types.Interest{{Name: "Chess"}},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleResume()))
	out := buf.String()

	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("=", width), lines[0])
	assert.Equal(t, width, len(lines[1]))
	assert.Equal(t, "Jane Doe", strings.TrimSpace(lines[1]))

	assert.Contains(t, out, "Contact\n-------\nEmail: jane@example.com\nLocation: Paris, FR\n")
	assert.Contains(t, out, "• GitHub: https://github.com/jane")
	assert.Contains(t, out, "\nLead at Acme\n  2020-01 - Present\n  • Shipped v2\n")
	assert.NotContains(t, out, "Ghost")
	assert.Contains(t, out, "\nMSc in CS\n  Uni\n  2015 - 2017\n  GPA: 4.0\n")
	assert.Contains(t, out, "\nGo (Expert)\n  cobra, testify\n")
	assert.Contains(t, out, "• Chess\n")
	assert.NotContains(t, out, "Projects")
}

func TestText_EmptyResume(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, &types.Resume{}))
	assert.Contains(t, buf.String(), "N/A")
	assert.NotContains(t, buf.String(), "Contact")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	err := Text(failingWriter{}, sampleResume())
	assert.ErrorContains(t, err, "failed to write preview")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "toolong", center("toolong", 3))
}
