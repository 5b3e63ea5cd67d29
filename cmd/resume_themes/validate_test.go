package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-themes/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Success(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.json", validResume)

	output, err := executeCommand(t, "validate", "--no-color", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Validating "+path+"...")
	assert.Contains(t, output, "✓ Your "+path+" looks amazing! ✨")
}

func TestValidateCommand_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, validation.DefaultResumeFile, validResume)
	chdir(t, dir)

	output, err := executeCommand(t, "validate", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, output, "Your resume-base.json looks amazing!")
}

func TestValidateCommand_DisallowedProperty(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", validResume)
	bad := writeFile(t, dir, "bad.json", `{"basics": {"name": "Jane", "twitter": "@jane"}, "work": [{"position": "Eng", "bogus": 1}]}`)

	output, err := executeCommand(t, "validate", "--no-color", good, bad)
	require.Error(t, err)

	var failed *validation.FailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 2, failed.Errors)
	assert.Equal(t, 1, failed.Files)

	assert.Contains(t, output, "❌ Resume validation failed with 2 error(s):")
	assert.Contains(t, output, "Location: basics\n  Invalid property: \"twitter\"")
	assert.Contains(t, output, "Location: work[0]\n  Invalid property: \"bogus\"")
	assert.Contains(t, output, validation.SchemaReferenceURL)
	assert.Contains(t, output, "❌ 2 error(s) in 1 of 2 file(s)")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	output, err := executeCommand(t, "validate", "--no-color", path)
	require.Error(t, err)
	assert.Contains(t, output, "❌ Validation failed with an error:")
	assert.Contains(t, output, "was not found")
}

func TestValidateCommand_MalformedJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.json", `{"basics": `)

	output, err := executeCommand(t, "validate", "--no-color", path)
	require.Error(t, err)
	assert.Contains(t, output, "The file contains invalid JSON")
}

func TestValidateCommand_JSONOut(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.json", validResume)
	reportPath := filepath.Join(dir, "reports", "run.json")

	_, err := executeCommand(t, "validate", "--no-color", "--json-out", reportPath, path)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotEmpty(t, report["run_id"])
	files, ok := report["files"].([]any)
	require.True(t, ok)
	assert.Len(t, files, 1)
}

func TestValidateCommand_RestrictPaths(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.json", validResume)

	_, err := executeCommand(t, "validate", "--no-color", "--restrict-paths", path)
	require.Error(t, err)

	var pathErr *validation.PathError
	assert.ErrorAs(t, err, &pathErr)
}
