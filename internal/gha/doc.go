// Package gha talks to the GitHub Actions API and reduces its answers
// to the small status vocabulary the rest of decklight works with.
//
// The main components are:
//
//   - [WorkflowRun]: the provider's run record, trimmed to the fields we use
//   - [Classification]: the four canonical display statuses
//   - [Classify]: the deterministic run → classification mapping
//   - [StatusResult]: the outcome of one fetch+classify cycle
//   - [Client]: fetches the single most recent run for a query
//
// Every failure mode of a fetch (transport, auth, not-found, malformed
// payload, zero runs) is folded into an unresolved [StatusResult] rather
// than surfaced as a Go error, so callers always end up with something
// they can put on a key.
package gha
