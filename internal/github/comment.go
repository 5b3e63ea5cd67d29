package github

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CommentMarker identifies the validation comment so later runs update it in place.
const CommentMarker = "<!-- resume-validation-workflow-comment -->"

// CommentRequest is the input of the post-pr-comment command
type CommentRequest struct {
	Output   string `validate:"required"`
	PRNumber string `validate:"required,number"`
}

// Validate checks the request and returns a message naming the bad argument.
func (r *CommentRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Output":
				return fmt.Errorf("validation output cannot be empty")
			case "PRNumber":
				return fmt.Errorf("PR number must be a positive integer")
			}
		}
		return err
	}
	return nil
}

// PR returns the pull request number. Call Validate first.
func (r *CommentRequest) PR() (int, error) {
	return strconv.Atoi(r.PRNumber)
}

// BuildCommentBody wraps the validator output in the comment posted to the pull request.
func BuildCommentBody(output string) string {
	var sb strings.Builder
	sb.WriteString(CommentMarker + "\n")
	sb.WriteString("## ❌ Resume Validation Failed\n\n")
	sb.WriteString("The resume validation failed with the following errors:\n\n")
	sb.WriteString("```text\n")
	sb.WriteString(output)
	sb.WriteString("\n```\n\n")
	sb.WriteString("Please fix the validation errors and push the changes again.")
	return sb.String()
}

// Action says what UpsertValidationComment did
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Result describes the comment written by UpsertValidationComment
type Result struct {
	Action    Action
	CommentID int64
}

// String is the line printed after posting.
func (r Result) String() string {
	if r.Action == ActionUpdated {
		return fmt.Sprintf("Updated existing PR comment #%d", r.CommentID)
	}
	return "Created new PR comment"
}

// UpsertValidationComment updates the first comment carrying CommentMarker, or creates one.
func (c *Client) UpsertValidationComment(ctx context.Context, pr int, output string) (Result, error) {
	body := BuildCommentBody(output)

	comments, err := c.ListComments(ctx, pr)
	if err != nil {
		return Result{}, err
	}

	for _, comment := range comments {
		if !strings.Contains(comment.Body, CommentMarker) {
			continue
		}
		if _, err := c.UpdateComment(ctx, comment.ID, body); err != nil {
			return Result{}, err
		}
		return Result{Action: ActionUpdated, CommentID: comment.ID}, nil
	}

	created, err := c.CreateComment(ctx, pr, body)
	if err != nil {
		return Result{}, err
	}
	return Result{Action: ActionCreated, CommentID: created.ID}, nil
}
