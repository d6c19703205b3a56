package gha

import "time"

// WorkflowRun mirrors the fields we care about from the GitHub Actions
// "list workflow runs" response.
type WorkflowRun struct {
	// ID is the run's database identifier.
	ID int64 `json:"id"`

	// Name is the workflow's display name (e.g., "CI").
	Name string `json:"name"`

	// Status is the run's lifecycle state: "queued", "in_progress",
	// "completed" and friends.
	Status string `json:"status"`

	// Conclusion is the run's outcome, only meaningful once Status is
	// "completed": "success", "failure", "cancelled", "timed_out",
	// "neutral", "skipped", "stale", or empty.
	Conclusion string `json:"conclusion"`

	// HTMLURL is the run's page on github.com.
	HTMLURL string `json:"html_url"`

	// HeadBranch is the branch the run was triggered from.
	HeadBranch string `json:"head_branch"`

	// CreatedAt and UpdatedAt are the provider's timestamps for the run.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// runsResponse is the provider's list envelope: a total count plus the
// page of run records.
type runsResponse struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}
