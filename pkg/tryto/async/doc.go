// Package async contains the deferred wrappers. They mirror package solo
// but produce Deferred results: the wrapper's own Deferred settles only
// after the handler's Deferred has settled and, on the failure path, after
// the error callback has completed.
//
// Highlights:
// - Try: wrap a handler producing a Deferred[T]; failures resolve to the
//   zero value after the callback runs
// - TryOf: same, for a Deferred[T] already in hand
// - Catch: wrap a handler and settle to an Outcome[T]; never rejects
//
// Unlike the synchronous path, a failing error callback here does not
// panic the caller: it rejects the wrapper's Deferred instead, as does a
// Thenable returned by the callback that ends up rejected.
package async
