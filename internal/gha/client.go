package gha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxResponseBodySize = 1 << 20 // 1MB

// connection pooling limits; a panel has a handful of keys at most
const (
	defaultMaxIdleConns    = 10
	defaultIdleConnTimeout = 60 * time.Second
)

// Query identifies the workflow runs one session is watching.
type Query struct {
	// Token is the bearer credential for the API.
	Token string

	// Owner and Repo identify the repository.
	Owner string
	Repo  string

	// Workflow optionally narrows the query to one workflow, by file
	// name or numeric ID. Empty means the whole repository.
	Workflow string
}

// ActionsURL returns the repository's Actions list page. It is the
// click-through target whenever no specific run is available.
func (q Query) ActionsURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/actions", q.Owner, q.Repo)
}

// Client fetches workflow-run status from the GitHub Actions API.
//
// Client holds no per-query state and is safe for concurrent use across
// sessions; each [Client.Status] call is independent. A fixed upper
// bound on request duration is enforced per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// NewClient creates a [Client] against the given API base URL (normally
// "https://api.github.com") with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			// no default timeout - we use per-request timeouts via context
			Transport: &http.Transport{
				MaxIdleConns:    defaultMaxIdleConns,
				IdleConnTimeout: defaultIdleConnTimeout,
			},
		},
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Status performs exactly one request for the query's newest workflow
// run, classifies it, and returns a [StatusResult].
//
// Status never returns a Go error: transport failures, timeouts,
// provider rejections, and malformed payloads are all folded into an
// unresolved result so the caller always has something to display.
// Exceeding the client's timeout is indistinguishable from any other
// transport failure.
func (c *Client) Status(ctx context.Context, q Query) StatusResult {
	listURL := q.ActionsURL()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.runsEndpoint(q), nil)
	if err != nil {
		return ErrorResult(fmt.Errorf("failed to create request: %w", err), listURL)
	}
	req.Header.Set("Authorization", "Bearer "+q.Token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrorResult(fmt.Errorf("request failed: %w", err), listURL)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return ErrorResult(fmt.Errorf("failed to read response body: %w", err), listURL)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to parsing
	case http.StatusUnauthorized:
		return ErrorResult(ErrBadCredential, listURL)
	case http.StatusNotFound:
		return ErrorResult(ErrNotFound, listURL)
	default:
		return ErrorResult(fmt.Errorf("unexpected API response: %s", resp.Status), listURL)
	}

	var runs runsResponse
	if err := json.Unmarshal(body, &runs); err != nil {
		return ErrorResult(fmt.Errorf("failed to parse response: %w", err), listURL)
	}

	if runs.TotalCount == 0 || len(runs.WorkflowRuns) == 0 {
		return ErrorResult(ErrNoRuns, listURL)
	}

	return ResultFromRun(runs.WorkflowRuns[0])
}

// runsEndpoint builds the "most recent run" endpoint for the query.
// per_page=1 asks the provider to return only the newest entry.
func (c *Client) runsEndpoint(q Query) string {
	if q.Workflow != "" {
		return fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/runs?per_page=1",
			c.baseURL, q.Owner, q.Repo, url.PathEscape(q.Workflow))
	}
	return fmt.Sprintf("%s/repos/%s/%s/actions/runs?per_page=1", c.baseURL, q.Owner, q.Repo)
}

// Close closes all idle connections in the client's connection pool.
// Safe to call multiple times; the client remains usable afterwards.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
