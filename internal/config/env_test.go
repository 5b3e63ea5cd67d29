package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubFromEnv_PrefersGHToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "gh")
	t.Setenv("GITHUB_TOKEN", "github")
	t.Setenv("GITHUB_REPOSITORY", "acme/resume")

	gh, err := GitHubFromEnv()
	require.NoError(t, err)
	assert.Equal(t, GitHub{Token: "gh", Repo: "acme/resume"}, gh)
}

func TestGitHubFromEnv_FallsBackToGitHubToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "github")
	t.Setenv("GITHUB_REPOSITORY", "acme/resume")

	gh, err := GitHubFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "github", gh.Token)
}

func TestGitHubFromEnv_MissingToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_REPOSITORY", "acme/resume")

	_, err := GitHubFromEnv()
	var missing *MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GH_TOKEN or GITHUB_TOKEN environment variable not set", err.Error())
}

func TestGitHubFromEnv_MissingRepository(t *testing.T) {
	t.Setenv("GH_TOKEN", "gh")
	t.Setenv("GITHUB_REPOSITORY", "")

	_, err := GitHubFromEnv()
	var missing *MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "GITHUB_REPOSITORY environment variable not set", err.Error())
}
