package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"decklight/internal/deck"
	"decklight/internal/gesture"
	"decklight/internal/gha"
	"decklight/internal/render"
)

// Fetcher performs one provider query per refresh. Implementations
// must be safe for concurrent use; the scheduler issues fetches from
// short-lived goroutines.
type Fetcher interface {
	Status(ctx context.Context, q gha.Query) gha.StatusResult
}

// Display is the subset of the host connection the scheduler drives.
// Errors are logged, not propagated: a display hiccup must never break
// a session's refresh cycle.
type Display interface {
	SetTitle(sessionCtx, title string) error
	SetImage(sessionCtx, image string) error
	OpenURL(url string) error
}

// eventKind discriminates the run loop's inbound events.
type eventKind int

const (
	evAppear eventKind = iota
	evDisappear
	evSettings
	evPressBegin
	evPressEnd
	evTick
	evFetchDone
)

// event is one unit of work for the run loop. Only the fields relevant
// to the kind are set.
type event struct {
	kind     eventKind
	key      string
	at       time.Time     // press events
	settings deck.Settings // appear, settings change
	gen      uint64        // tick, fetch-done
	result   gha.StatusResult
}

// Scheduler owns the active sessions and their refresh timers.
//
// Create one with [New], run its loop with [Scheduler.Run], and feed it
// host events through the exported methods. The methods only enqueue;
// all state lives on the loop goroutine.
type Scheduler struct {
	fetcher Fetcher
	display Display
	logger  *slog.Logger

	events   chan event
	sessions map[string]*session
	gen      uint64
}

// New creates a [Scheduler]. It does nothing until [Scheduler.Run] is
// called.
func New(fetcher Fetcher, display Display, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		fetcher:  fetcher,
		display:  display,
		logger:   logger,
		events:   make(chan event, 64),
		sessions: make(map[string]*session),
	}
}

// Run processes events until ctx is cancelled. It must be the only
// goroutine touching the session map; every entry point below funnels
// through the events channel so transitions happen in arrival order,
// each to completion before the next.
func (s *Scheduler) Run(ctx context.Context) {
	defer s.teardown()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.handle(ctx, ev)
		}
	}
}

// teardown retires every timer on shutdown. In-flight fetches are not
// cancelled; their results go nowhere once the loop has exited.
func (s *Scheduler) teardown() {
	for key, sess := range s.sessions {
		s.stopTimer(sess)
		delete(s.sessions, key)
	}
}

// Appear registers a session when its key becomes visible.
func (s *Scheduler) Appear(key string, settings deck.Settings) {
	s.events <- event{kind: evAppear, key: key, settings: settings}
}

// Disappear removes a session when its key stops being visible.
func (s *Scheduler) Disappear(key string) {
	s.events <- event{kind: evDisappear, key: key}
}

// UpdateSettings replaces a session's configuration wholesale.
func (s *Scheduler) UpdateSettings(key string, settings deck.Settings) {
	s.events <- event{kind: evSettings, key: key, settings: settings}
}

// PressBegin records the beginning of a key press.
func (s *Scheduler) PressBegin(key string, at time.Time) {
	s.events <- event{kind: evPressBegin, key: key, at: at}
}

// PressEnd ends a key press; a short press triggers a refresh, a long
// press opens the current run in the browser.
func (s *Scheduler) PressEnd(key string, at time.Time) {
	s.events <- event{kind: evPressEnd, key: key, at: at}
}

func (s *Scheduler) handle(ctx context.Context, ev event) {
	defer s.recoverPanic()

	switch ev.kind {
	case evAppear:
		s.handleAppear(ctx, ev)
	case evDisappear:
		s.handleDisappear(ev)
	case evSettings:
		s.handleSettings(ctx, ev)
	case evPressBegin:
		s.handlePressBegin(ev)
	case evPressEnd:
		s.handlePressEnd(ctx, ev)
	case evTick:
		s.handleTick(ctx, ev)
	case evFetchDone:
		s.handleFetchDone(ev)
	}
}

// recoverPanic keeps one misbehaving event from killing the loop and
// every session with it. The stack is logged with a correlation ID.
func (s *Scheduler) recoverPanic() {
	if r := recover(); r != nil {
		s.logger.Error("event handler panic",
			"correlation_id", uuid.NewString(),
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}

func (s *Scheduler) handleAppear(ctx context.Context, ev event) {
	if old, ok := s.sessions[ev.key]; ok {
		// host re-sent willAppear for a live key; treat as a swap
		s.stopTimer(old)
	}

	sess := &session{key: ev.key, settings: ev.settings, generation: s.nextGen()}
	s.sessions[ev.key] = sess

	s.logger.Info("session appeared",
		"session", ev.key,
		"interval", sess.settings.RefreshInterval().String(),
	)

	if sess.settings.Complete() {
		s.displayTitle(sess.key, render.TitleLoading)
	}
	s.startTimer(ctx, sess)
	s.refresh(ctx, sess)
}

func (s *Scheduler) handleDisappear(ev event) {
	sess, ok := s.sessions[ev.key]
	if !ok {
		return
	}
	s.stopTimer(sess)
	delete(s.sessions, ev.key)
	s.logger.Info("session disappeared", "session", ev.key)
}

// handleSettings swaps a session's configuration atomically: the old
// timer is retired and the generation bumped before the new timer and
// the immediate refresh start, so no refresh using stale settings can
// begin after the swap.
func (s *Scheduler) handleSettings(ctx context.Context, ev event) {
	sess, ok := s.sessions[ev.key]
	if !ok {
		s.logger.Warn("settings for unknown session", "session", ev.key)
		return
	}

	s.stopTimer(sess)
	sess.settings = ev.settings
	sess.generation = s.nextGen()

	s.logger.Info("session reconfigured",
		"session", ev.key,
		"interval", sess.settings.RefreshInterval().String(),
	)

	s.startTimer(ctx, sess)
	s.refresh(ctx, sess)
}

func (s *Scheduler) handlePressBegin(ev event) {
	if sess, ok := s.sessions[ev.key]; ok {
		sess.detector.Press(ev.at)
	}
}

func (s *Scheduler) handlePressEnd(ctx context.Context, ev event) {
	sess, ok := s.sessions[ev.key]
	if !ok {
		return
	}

	switch g := sess.detector.Release(ev.at); g {
	case gesture.Long:
		s.openRun(sess)
	case gesture.Short:
		s.logger.Debug("manual refresh", "session", ev.key)
		s.refresh(ctx, sess)
	default:
		// unmatched release, nothing to do
	}
}

func (s *Scheduler) handleTick(ctx context.Context, ev event) {
	sess, ok := s.sessions[ev.key]
	if !ok || sess.generation != ev.gen {
		// fired for a departed or reconfigured session
		return
	}
	s.refresh(ctx, sess)
}

func (s *Scheduler) handleFetchDone(ev event) {
	sess, ok := s.sessions[ev.key]
	if !ok || sess.generation != ev.gen {
		s.logger.Debug("dropping stale refresh result", "session", ev.key)
		return
	}
	s.show(sess, ev.result)
}

// nextGen returns a fresh generation value. Loop-only access, so a
// plain counter suffices.
func (s *Scheduler) nextGen() uint64 {
	s.gen++
	return s.gen
}

// startTimer schedules recurring refreshes at the session's cadence.
// Fires are delivered as events so they share the loop's ordering
// domain with gestures and settings changes.
func (s *Scheduler) startTimer(ctx context.Context, sess *session) {
	stop := make(chan struct{})
	sess.stopTimer = stop

	key := sess.key
	gen := sess.generation
	interval := sess.settings.RefreshInterval()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				select {
				case s.events <- event{kind: evTick, key: key, gen: gen}:
				case <-stop:
					return
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// stopTimer retires the session's current timer, if any. Closing the
// channel exactly once is guaranteed by nilling it here; every swap
// path goes through this method first.
func (s *Scheduler) stopTimer(sess *session) {
	if sess.stopTimer != nil {
		close(sess.stopTimer)
		sess.stopTimer = nil
	}
}

// refresh starts one fetch for the session's current configuration.
// Incomplete settings short-circuit to the needs-configuration state
// without touching the network. The fetch itself runs off-loop; its
// result re-enters as an evFetchDone carrying this generation.
func (s *Scheduler) refresh(ctx context.Context, sess *session) {
	if !sess.settings.Complete() {
		s.showConfigure(sess)
		return
	}

	q := gha.Query{
		Token:    sess.settings.Token,
		Owner:    sess.settings.Owner,
		Repo:     sess.settings.Repo,
		Workflow: sess.settings.Workflow,
	}
	key := sess.key
	gen := sess.generation

	s.logger.Debug("refresh started",
		"session", key,
		"correlation_id", uuid.NewString(),
		"repository", q.Owner+"/"+q.Repo,
	)

	go func() {
		result := s.fetcher.Status(ctx, q)
		select {
		case s.events <- event{kind: evFetchDone, key: key, gen: gen, result: result}:
		case <-ctx.Done():
		}
	}()
}

// show renders a status result onto the session's key.
func (s *Scheduler) show(sess *session, result gha.StatusResult) {
	sess.lastURL = result.URL

	s.displayIcon(sess.key, result.Classification, result.UpdatedAt)
	s.displayTitle(sess.key, render.Title(result))

	if result.Resolved() {
		s.logger.Info("refresh complete",
			"session", sess.key,
			"classification", result.Classification.String(),
			"workflow", result.Name,
			"branch", result.Branch,
		)
	} else {
		s.logger.Warn("refresh unresolved", "session", sess.key, "error", result.Err)
	}
}

// showConfigure renders the fixed needs-configuration state.
func (s *Scheduler) showConfigure(sess *session) {
	sess.lastURL = ""
	s.displayIcon(sess.key, gha.ClassificationUnknown, time.Time{})
	s.displayTitle(sess.key, render.TitleConfigure)
}

// openRun opens the most recently displayed run in the browser. Before
// any refresh has resolved it falls back to the repository's run list;
// with incomplete settings there is nowhere sensible to go.
func (s *Scheduler) openRun(sess *session) {
	url := sess.lastURL
	if url == "" && sess.settings.Complete() {
		url = gha.Query{Owner: sess.settings.Owner, Repo: sess.settings.Repo}.ActionsURL()
	}
	if url == "" {
		return
	}
	s.logger.Info("opening run", "session", sess.key, "url", url)
	if err := s.display.OpenURL(url); err != nil {
		s.logger.Error("open url failed", "session", sess.key, "error", err)
	}
}

func (s *Scheduler) displayTitle(key, title string) {
	if err := s.display.SetTitle(key, title); err != nil {
		s.logger.Error("set title failed", "session", key, "error", err)
	}
}

func (s *Scheduler) displayIcon(key string, c gha.Classification, updatedAt time.Time) {
	icon, err := render.Icon(c, updatedAt)
	if err != nil {
		s.logger.Error("icon render failed", "session", key, "error", err)
		return
	}
	if err := s.display.SetImage(key, icon); err != nil {
		s.logger.Error("set image failed", "session", key, "error", err)
	}
}
