package gha

import (
	"errors"
	"testing"
	"time"
)

// TestResultFromRun verifies that a resolved result carries the run's
// display fields and no error.
func TestResultFromRun(t *testing.T) {
	updated := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	run := WorkflowRun{
		Name:       "CI",
		Status:     "completed",
		Conclusion: "success",
		HTMLURL:    "https://github.com/acme/widgets/actions/runs/42",
		HeadBranch: "main",
		UpdatedAt:  updated,
	}

	result := ResultFromRun(run)

	if !result.Resolved() {
		t.Fatalf("expected resolved result, got error %v", result.Err)
	}
	if result.Classification != ClassificationSuccess {
		t.Errorf("classification = %q, want %q", result.Classification, ClassificationSuccess)
	}
	if result.Name != "CI" || result.Branch != "main" {
		t.Errorf("unexpected display fields: name=%q branch=%q", result.Name, result.Branch)
	}
	if result.URL != run.HTMLURL {
		t.Errorf("URL = %q, want the run's page %q", result.URL, run.HTMLURL)
	}
	if !result.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", result.UpdatedAt, updated)
	}
}

// TestErrorResult verifies the unresolved variant: classification is
// pinned to unknown and the fallback URL is carried through.
func TestErrorResult(t *testing.T) {
	result := ErrorResult(ErrNoRuns, "https://github.com/acme/widgets/actions")

	if result.Resolved() {
		t.Fatal("expected unresolved result")
	}
	if result.Classification != ClassificationUnknown {
		t.Errorf("classification = %q, want %q", result.Classification, ClassificationUnknown)
	}
	if !errors.Is(result.Err, ErrNoRuns) {
		t.Errorf("Err = %v, want ErrNoRuns", result.Err)
	}
	if result.URL != "https://github.com/acme/widgets/actions" {
		t.Errorf("URL = %q, want the fallback run list", result.URL)
	}
	if result.Name != "" || result.Branch != "" || !result.UpdatedAt.IsZero() {
		t.Error("unresolved result should not carry run display fields")
	}
}
