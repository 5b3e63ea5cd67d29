package config

import (
	"fmt"
	"os"
)

// GitHub holds the credentials of the post-pr-comment command
type GitHub struct {
	Token string
	Repo  string // owner/name
}

// MissingEnvError is returned when a required environment variable is unset.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("%s environment variable not set", e.Names[0])
	}
	return fmt.Sprintf("%s or %s environment variable not set", e.Names[0], e.Names[1])
}

// GitHubFromEnv reads GH_TOKEN (falling back to GITHUB_TOKEN) and GITHUB_REPOSITORY.
func GitHubFromEnv() (GitHub, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return GitHub{}, &MissingEnvError{Names: []string{"GH_TOKEN", "GITHUB_TOKEN"}}
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		return GitHub{}, &MissingEnvError{Names: []string{"GITHUB_REPOSITORY"}}
	}

	return GitHub{Token: token, Repo: repo}, nil
}
