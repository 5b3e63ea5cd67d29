package github

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommentBody(t *testing.T) {
	body := BuildCommentBody("Error 1:\n  Location: work[0]")

	want := CommentMarker + "\n" +
		"## ❌ Resume Validation Failed\n\n" +
		"The resume validation failed with the following errors:\n\n" +
		"```text\nError 1:\n  Location: work[0]\n```\n\n" +
		"Please fix the validation errors and push the changes again."
	assert.Equal(t, want, body)
	assert.True(t, strings.HasPrefix(body, CommentMarker))
}

func TestCommentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CommentRequest
		wantErr string
	}{
		{"valid", CommentRequest{Output: "errors", PRNumber: "42"}, ""},
		{"empty output", CommentRequest{Output: "", PRNumber: "42"}, "validation output cannot be empty"},
		{"empty pr", CommentRequest{Output: "errors", PRNumber: ""}, "PR number must be a positive integer"},
		{"negative pr", CommentRequest{Output: "errors", PRNumber: "-1"}, "PR number must be a positive integer"},
		{"decimal pr", CommentRequest{Output: "errors", PRNumber: "1.5"}, "PR number must be a positive integer"},
		{"text pr", CommentRequest{Output: "errors", PRNumber: "abc"}, "PR number must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCommentRequest_PR(t *testing.T) {
	req := CommentRequest{Output: "x", PRNumber: "17"}
	require.NoError(t, req.Validate())
	pr, err := req.PR()
	require.NoError(t, err)
	assert.Equal(t, 17, pr)
}
