package gha

import (
	"errors"
	"time"
)

// Sentinel errors for the provider answers the display layer wants to
// tell apart. Everything else is wrapped with context and treated as a
// generic refresh failure.
var (
	// ErrNoRuns means the provider answered successfully but has no
	// runs for the query. This is a valid answer, not a transport
	// failure; the result still carries the repository's run list URL.
	ErrNoRuns = errors.New("no workflow runs found")

	// ErrBadCredential means the provider rejected the token (HTTP 401).
	ErrBadCredential = errors.New("invalid or expired token")

	// ErrNotFound means the repository or workflow does not exist, or
	// the token cannot see it (HTTP 404).
	ErrNotFound = errors.New("repository or workflow not found")
)

// StatusResult is the outcome of one fetch+classify cycle.
//
// A StatusResult is one of two variants. A resolved result was derived
// from a provider run record: Err is nil and the run fields are
// populated. An unresolved result could not be derived (transport
// failure, rejection, malformed payload, or zero runs): Err is non-nil,
// Classification is pinned to [ClassificationUnknown], and URL falls
// back to the repository's general run list so the user still has
// somewhere to click.
//
// Results are recomputed on every refresh, immediately consumed by
// rendering, and never persisted.
type StatusResult struct {
	// Classification is the canonical display status.
	Classification Classification

	// Name is the workflow's display name. Empty when unresolved.
	Name string

	// URL is the click-through target: the run's page when resolved,
	// the repository's run list otherwise.
	URL string

	// Branch is the run's head branch. Empty when unresolved.
	Branch string

	// UpdatedAt is the run's last-updated timestamp. Zero when
	// unresolved.
	UpdatedAt time.Time

	// Err is nil exactly when the result is resolved.
	Err error
}

// Resolved reports whether the result was derived from an actual run
// record rather than a failure.
func (r StatusResult) Resolved() bool {
	return r.Err == nil
}

// ResultFromRun builds a resolved [StatusResult] from a run record.
func ResultFromRun(run WorkflowRun) StatusResult {
	return StatusResult{
		Classification: Classify(run),
		Name:           run.Name,
		URL:            run.HTMLURL,
		Branch:         run.HeadBranch,
		UpdatedAt:      run.UpdatedAt,
	}
}

// ErrorResult builds an unresolved [StatusResult]. The classification
// is always unknown; fallbackURL should point at the repository's run
// list so a long press still opens something useful.
func ErrorResult(err error, fallbackURL string) StatusResult {
	return StatusResult{
		Classification: ClassificationUnknown,
		URL:            fallbackURL,
		Err:            err,
	}
}
