// Package scheduler owns the set of active key sessions and
// orchestrates their refresh cycles.
//
// The main components are:
//
//   - [Scheduler]: the single-loop orchestrator and session registry
//   - [Fetcher]: the provider query performed once per refresh
//   - [Display]: the subset of the host connection the scheduler drives
//
// Everything runs on one event loop with run-to-completion semantics:
// host lifecycle events, gesture timing, timer fires, and fetch
// completions are all delivered through one channel and handled in
// order, so the session map needs no locking. The only work that
// happens off the loop is the network fetch itself; its result
// re-enters the loop as an event carrying the generation it was issued
// under, and stale results are dropped.
package scheduler
