package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("rendered", "fr-resume-nordic-minimal.html"), OutputPath("rendered", "fr", "nordic-minimal"))
	assert.Equal(t, filepath.Join("github-pages", "combined-resume-modern-classic.html"), CombinedOutputPath("github-pages", "modern-classic"))
}

func TestWriteHTML_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "en-resume-tailwind.html")

	require.NoError(t, WriteHTML(path, "<html></html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWriteHTML_DirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteHTML(filepath.Join(blocker, "out.html"), "<html></html>")
	assert.Error(t, err)
}

func TestOutline(t *testing.T) {
	headings, err := Outline(`<h1>Jane  Doe</h1><div><h2>Experience</h2><h3>Staff
	Engineer</h3><h4>ignored</h4><h2> </h2></div>`)
	require.NoError(t, err)
	assert.Equal(t, []Heading{
		{Level: 1, Text: "Jane Doe"},
		{Level: 2, Text: "Experience"},
		{Level: 3, Text: "Staff Engineer"},
	}, headings)
}

func TestOutline_RenderedTheme(t *testing.T) {
	theme, err := DefaultRegistry().Lookup("modern-classic")
	require.NoError(t, err)
	html, err := theme.Render(sampleResume())
	require.NoError(t, err)

	headings, err := Outline(html)
	require.NoError(t, err)
	require.NotEmpty(t, headings)
	assert.Equal(t, Heading{Level: 1, Text: "Jane Doe"}, headings[0])
	assert.Equal(t, Heading{Level: 2, Text: "Experience"}, headings[1])
}
