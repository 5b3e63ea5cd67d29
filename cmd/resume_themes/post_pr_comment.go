package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-themes/internal/config"
	"github.com/jonathan/resume-themes/internal/github"
	"github.com/spf13/cobra"
)

var postPRCommentCmd = &cobra.Command{
	Use:   "post-pr-comment <validation_output> <pr_number>",
	Short: "Post or update the validation comment on a pull request",
	Long: `Posts the validation output to a pull request, updating the previous validation comment when
one exists. Reads GH_TOKEN (or GITHUB_TOKEN) and GITHUB_REPOSITORY from the environment;
GITHUB_API_URL overrides the API endpoint.`,
	Args: cobra.ExactArgs(2),
	RunE: runPostPRComment,
}

func init() {
	rootCmd.AddCommand(postPRCommentCmd)
}

func runPostPRComment(cmd *cobra.Command, args []string) error {
	req := github.CommentRequest{Output: args[0], PRNumber: args[1]}
	if err := req.Validate(); err != nil {
		return err
	}
	pr, err := req.PR()
	if err != nil {
		return fmt.Errorf("PR number must be a positive integer")
	}

	gh, err := config.GitHubFromEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := github.NewClient(ctx, gh.Token, gh.Repo, &github.Options{BaseURL: os.Getenv("GITHUB_API_URL")})

	result, err := client.UpsertValidationComment(ctx, pr, req.Output)
	if err != nil {
		return fmt.Errorf("error posting PR comment: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
