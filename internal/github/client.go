// Package github posts résumé validation results to pull requests through the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// APIVersion is sent in the X-GitHub-Api-Version header.
const APIVersion = "2022-11-28"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

const perPage = 100

// Comment is an issue or pull request comment
type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// Client talks to the issues comments API of one repository
type Client struct {
	BaseURL string
	Repo    string // owner/name
	HTTP    *http.Client
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Status)
}

// NewClient returns a client authenticating with a static bearer token.
// A context carrying an oauth2.HTTPClient value changes the underlying transport.
func NewClient(ctx context.Context, token, repo string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	httpClient.Timeout = timeout

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Repo:    repo,
		HTTP:    httpClient,
	}
}

// ListComments returns every comment on the pull request, following pagination.
func (c *Client) ListComments(ctx context.Context, pr int) ([]Comment, error) {
	var all []Comment
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/repos/%s/issues/%d/comments?per_page=%d&page=%d", c.BaseURL, c.Repo, pr, perPage, page)

		var batch []Comment
		if err := c.do(ctx, "fetch comments", http.MethodGet, url, nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}

// CreateComment adds a new comment to the pull request.
func (c *Client) CreateComment(ctx context.Context, pr int, body string) (*Comment, error) {
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", c.BaseURL, c.Repo, pr)

	var created Comment
	if err := c.do(ctx, "create comment", http.MethodPost, url, map[string]string{"body": body}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, id int64, body string) (*Comment, error) {
	url := fmt.Sprintf("%s/repos/%s/issues/comments/%d", c.BaseURL, c.Repo, id)

	var updated Comment
	if err := c.do(ctx, "update comment", http.MethodPatch, url, map[string]string{"body": body}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) do(ctx context.Context, op, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
