package types

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{
  "$schema": "https://raw.githubusercontent.com/jsonresume/resume-schema/v1.0.0/schema.json",
  "basics": {
    "name": "Jane Doe",
    "label": "Engineer",
    "phone": "+33 6 00 00 00 00",
    "location": {"city": "Paris", "countryCode": "FR"},
    "profiles": [{"network": "GitHub", "url": "https://github.com/jane"}]
  },
  "work": [{"name": "Acme", "position": "Eng", "startDate": "2020-01", "skills": ["Go"]}],
  "meta": {"lang": "FR"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResume_JSON(t *testing.T) {
	path := writeFile(t, "resume.json", sampleResume)

	resume, err := LoadResume(path)
	require.NoError(t, err)
	require.NotNil(t, resume.Basics)
	assert.Equal(t, "Jane Doe", resume.Basics.Name)
	assert.Equal(t, "Paris", resume.Basics.Location.City)
	require.Len(t, resume.Work, 1)
	assert.Equal(t, []string{"Go"}, resume.Work[0].Skills)
	assert.Equal(t, LangFR, resume.Language())
}

func TestLoadResume_YAML(t *testing.T) {
	path := writeFile(t, "resume.yaml", "basics:\n  name: Jane Doe\nwork:\n  - name: Acme\n    position: Eng\n")

	resume, err := LoadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resume.Basics.Name)
	require.Len(t, resume.Work, 1)
	assert.Equal(t, "Acme", resume.Work[0].Name)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, KindRead, docErr.Kind)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadResume_MalformedJSON(t *testing.T) {
	path := writeFile(t, "bad.json", "{ invalid json }")

	_, err := LoadResume(path)
	require.Error(t, err)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, KindParse, docErr.Kind)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecodeRaw_PreservesKeyOrder(t *testing.T) {
	v, err := DecodeRaw([]byte(`{"zeta": 1, "alpha": {"b": true, "a": null}, "mid": [1, "x", {"k": "v"}]}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys)

	alpha, _ := obj.Get("alpha")
	assert.Equal(t, []string{"b", "a"}, alpha.(*Object).Keys)

	mid, _ := obj.Get("mid")
	arr := mid.([]any)
	require.Len(t, arr, 3)
	assert.Equal(t, json.Number("1"), arr[0])
	assert.Equal(t, "x", arr[1])
	assert.IsType(t, &Object{}, arr[2])
}

func TestDecodeRaw_DuplicateKeys(t *testing.T) {
	v, err := DecodeRaw([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	obj := v.(*Object)
	assert.Equal(t, []string{"a", "b"}, obj.Keys)
	assert.Equal(t, json.Number("3"), obj.Values["a"])
}

func TestDecodeRaw_TrailingData(t *testing.T) {
	_, err := DecodeRaw([]byte(`{} {}`))
	assert.Error(t, err)
}

func TestDecodeRaw_Scalar(t *testing.T) {
	v, err := DecodeRaw([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWithDefaults_NoMeta(t *testing.T) {
	resume := &Resume{Basics: &Basics{Name: "Jane"}}

	en := resume.WithDefaults("en")
	assert.Equal(t, "Experience", en.Meta.SectionTitles.Experience)
	assert.Nil(t, resume.Meta, "original document must not be modified")

	fr := resume.WithDefaults("fr-FR")
	assert.Equal(t, LangFR, fr.Meta.Lang)
	assert.Equal(t, "Expérience", fr.Meta.SectionTitles.Experience)
}

func TestWithDefaults_KeepsOverrides(t *testing.T) {
	resume := &Resume{Meta: &Meta{Lang: "en", SectionTitles: &SectionTitles{Experience: "Career"}}}

	out := resume.WithDefaults("en")
	assert.Equal(t, "Career", out.Meta.SectionTitles.Experience)
	assert.Equal(t, "Education", out.Meta.SectionTitles.Education)
	assert.Equal(t, "", resume.Meta.SectionTitles.Education, "original titles must not be modified")
}

func TestResume_TitleAndStripPhone(t *testing.T) {
	var empty *Resume
	assert.Equal(t, "Resume", empty.Title())

	resume := &Resume{Basics: &Basics{Name: "Jane", Phone: "123"}}
	assert.Equal(t, "Jane", resume.Title())

	resume.StripPhone()
	assert.Empty(t, resume.Basics.Phone)

	(&Resume{}).StripPhone() // no basics: no panic
}
