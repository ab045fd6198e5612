// Package flow lifts the wrappers over channels for batch work: a fixed
// number of worker lines pulls handlers from a shared input channel and
// streams each one's Outcome, honoring context cancellation between
// handlers. It also collects Deferred values as they settle.
//
// Common usage:
// - CatchAll: run a batch of handlers over n worker lines
// - Settle: stream the outcomes of deferred values as they settle
// - Collect: drain an outcome channel into a slice
//
// Cancellation applies to the plumbing only: a handler already running is
// never aborted, its outcome is simply not delivered.
package flow
