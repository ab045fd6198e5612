// Package solo contains the synchronous wrappers. They run a handler
// inline, recover any panic, and hand the failure back as an ordinary
// return value instead of letting it escape.
//
// Highlights:
// - Try: run a handler, return its value or the zero value on failure,
//   routing the error through an optional callback
// - Catch: run a handler and return an Outcome[T] carrying value, error
//   and ok flag, so callers can branch without a zero-value check
//
// One asymmetry is intentional and pinned by tests: the error callback
// passed to Try runs outside the recover scope, so a panic inside the
// callback itself propagates to the caller.
package solo
