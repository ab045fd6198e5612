// Package auto contains the mode-detecting convenience layer. Its
// wrappers accept a handler whose returned value may be plain or
// deferred-like; the value is probed with tryto.IsDeferred and the
// deferred path is taken only when the probe succeeds.
//
// Everything here returns a Deferred so that a single entry point can
// serve both modes: when the handler turns out to be synchronous the
// Deferred is already settled by the time the wrapper returns. The typed
// entry points in packages solo and async are preferred at call sites
// where the mode is known; this package is the escape hatch for the rest.
package auto
