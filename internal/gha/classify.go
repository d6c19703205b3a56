package gha

// Classification is the canonical display status derived from a
// workflow run.
//
// Classification is a string type that can hold one of four predefined
// values: [ClassificationSuccess], [ClassificationFailure],
// [ClassificationPending], or [ClassificationUnknown]. Using a string
// type allows for easy JSON serialization and human-readable logging
// while maintaining type safety through the defined constants.
type Classification string

const (
	// ClassificationSuccess indicates the most recent run completed
	// successfully.
	ClassificationSuccess Classification = "success"

	// ClassificationFailure indicates the most recent run completed
	// with a failing outcome (failed, cancelled, or timed out).
	ClassificationFailure Classification = "failure"

	// ClassificationPending indicates a run is queued or in progress.
	ClassificationPending Classification = "pending"

	// ClassificationUnknown indicates the status could not be reduced
	// to a definite outcome.
	ClassificationUnknown Classification = "unknown"
)

// String returns the string representation of the classification.
// This implements the fmt.Stringer interface.
func (c Classification) String() string {
	return string(c)
}

// Classify maps a workflow run to a [Classification].
//
// The rules are checked in order and the first match wins:
//
//  1. Status "completed" with conclusion "success" → success.
//  2. Status "completed" with conclusion "failure", "cancelled", or
//     "timed_out" → failure.
//  3. Status "completed" with any other conclusion (neutral, skipped,
//     stale, empty) → unknown.
//  4. Status "in_progress", "queued", "pending", or "waiting" → pending.
//  5. Anything else → unknown.
//
// Classify is a pure function; the same run always produces the same
// classification. Other components rely on this mapping being total and
// deterministic, so changes here change what every key renders.
func Classify(run WorkflowRun) Classification {
	switch run.Status {
	case "completed":
		switch run.Conclusion {
		case "success":
			return ClassificationSuccess
		case "failure", "cancelled", "timed_out":
			return ClassificationFailure
		default:
			return ClassificationUnknown
		}
	case "in_progress", "queued", "pending", "waiting":
		return ClassificationPending
	default:
		return ClassificationUnknown
	}
}
