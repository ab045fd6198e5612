// Package chain provides a fluent wrapper around Outcome[T] for composing
// synchronous steps without branching on the result at each one.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T] or value
// - Then: switch to a new Outcome[T] via a function
// - ThenTry: call a function (T, error) with panic recovery and convert
//   failure into the chain's failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Failure short-circuits: once a step fails, later steps are skipped and
// the original error is carried through.
package chain
