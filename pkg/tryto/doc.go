// Package tryto contains the core types shared by the wrapper packages:
// Outcome[T], the immutable success/failure record, Deferred[T], a
// settle-once future with continuation chaining, and IsDeferred, the
// structural probe for deferred-like values.
//
// Highlights:
// - Ok/Err: construct Outcome[T]
// - NewDeferred/Resolved/Rejected/Go: construct Deferred[T]
// - Then/OnSettled/Await: consume a Deferred[T]
// - IsDeferred/IsNil: value inspection
// - AsError: normalize recovered panic values into errors
//
// The wrapper entry points live in the subpackages solo (synchronous),
// async (deferred), auto (runtime mode detection) and modes (selection by
// mode tag).
package tryto
