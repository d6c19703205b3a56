// Package gesture classifies raw key press/release timing into short
// and long presses.
package gesture

import "time"

// LongPressThreshold is the elapsed press duration at or above which a
// press counts as long.
const LongPressThreshold = 500 * time.Millisecond

// Gesture is the outcome of one press/release pair.
type Gesture int

const (
	// None means no gesture was produced (release without a matching press).
	None Gesture = iota

	// Short is a press held for less than [LongPressThreshold].
	Short

	// Long is a press held for [LongPressThreshold] or more.
	Long
)

// String returns a readable name for logging.
func (g Gesture) String() string {
	switch g {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "none"
	}
}

// Detector is a two-state machine (idle/pressed) turning press and
// release events into a [Gesture]. The zero value is idle and ready to
// use. Callers pass timestamps in, so the detector itself never reads
// the clock and is trivially testable.
//
// Detector is not safe for concurrent use; each session owns its own.
type Detector struct {
	pressed   bool
	pressedAt time.Time
}

// Press records the beginning of a press. A press while one is already
// outstanding is ignored; the original begin timestamp stands.
func (d *Detector) Press(at time.Time) {
	if d.pressed {
		return
	}
	d.pressed = true
	d.pressedAt = at
}

// Release ends the outstanding press and classifies it by elapsed time.
// A release with no matching press (duplicate or out-of-order event)
// returns [None]. The detector returns to idle either way.
func (d *Detector) Release(at time.Time) Gesture {
	if !d.pressed {
		return None
	}
	elapsed := at.Sub(d.pressedAt)
	d.pressed = false
	d.pressedAt = time.Time{}

	if elapsed >= LongPressThreshold {
		return Long
	}
	return Short
}
