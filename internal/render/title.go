package render

import (
	"errors"

	"decklight/internal/gha"
)

// Titles for display states that exist before any status result does.
// The scheduler shows these directly; they never come out of [Title].
const (
	// TitleLoading is shown between a session appearing and its first
	// refresh resolving.
	TitleLoading = "Loading..."

	// TitleConfigure is shown when credential, owner, or repository is
	// missing and no fetch will be attempted.
	TitleConfigure = "Configure"
)

// Title returns the human-readable key title for a status result.
//
// Resolved results map directly from their classification. Unresolved
// results read "Error", except the zero-runs answer, which is a valid
// provider response rather than a failure and reads "Unknown" like a
// resolved unknown classification.
func Title(r gha.StatusResult) string {
	if !r.Resolved() {
		if errors.Is(r.Err, gha.ErrNoRuns) {
			return "Unknown"
		}
		return "Error"
	}

	switch r.Classification {
	case gha.ClassificationSuccess:
		return "Success"
	case gha.ClassificationFailure:
		return "Failed"
	case gha.ClassificationPending:
		return "Running"
	default:
		return "Unknown"
	}
}
