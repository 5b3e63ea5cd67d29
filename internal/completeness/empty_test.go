package completeness

import (
	"testing"

	"github.com/jonathan/resume-themes/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyFields(t *testing.T) {
	doc, err := types.DecodeRaw([]byte(`{
		"basics": {
			"name": "Jane",
			"email": "",
			"location": {"city": "", "countryCode": "FR"},
			"profiles": []
		},
		"work": [
			{"name": "Acme", "summary": "", "highlights": []},
			{"name": "Beta", "highlights": ["", "shipped"]}
		],
		"skills": []
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"basics.email",
		"basics.location.city",
		"basics.profiles (empty array)",
		"work[0].summary",
		"work[0].highlights (empty array)",
		"skills (empty array)",
	}, EmptyFields(doc))
}

func TestEmptyFields_Complete(t *testing.T) {
	doc, err := types.DecodeRaw([]byte(`{"basics": {"name": "Jane"}, "work": [{"name": "Acme", "x": 0, "y": null}]}`))
	require.NoError(t, err)

	fields := EmptyFields(doc)
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
}

func TestEmptyFields_GenericMap(t *testing.T) {
	doc := map[string]any{"b": "", "a": []any{}}
	assert.Equal(t, []string{"a (empty array)", "b"}, EmptyFields(doc))
}

func TestEmptyFields_Scalars(t *testing.T) {
	assert.Empty(t, EmptyFields(nil))
	assert.Empty(t, EmptyFields(""))
	assert.Equal(t, []string{" (empty array)"}, EmptyFields([]any{}))
}
