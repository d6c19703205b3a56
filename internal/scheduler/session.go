package scheduler

import (
	"decklight/internal/deck"
	"decklight/internal/gesture"
)

// session is the live monitoring state for one visible key.
//
// A session exists in the scheduler's map exactly while its timer
// lifecycle is managed: inserted on appear, removed on disappear. At
// most one recurring timer runs per session at any instant; stopTimer
// is closed to retire the current one before a replacement starts.
type session struct {
	key      string
	settings deck.Settings

	// generation is bumped on appear and on every settings swap. Tick
	// and fetch-done events carry the generation they were issued
	// under; a mismatch means the event predates the current
	// configuration and must be dropped.
	generation uint64

	// stopTimer retires the session's recurring timer goroutine.
	// nil when no timer is running.
	stopTimer chan struct{}

	detector gesture.Detector

	// lastURL is the click-through target of the most recently
	// displayed result; long presses open it.
	lastURL string
}
