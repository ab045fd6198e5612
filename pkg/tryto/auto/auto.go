package auto

import (
	"github.com/ib-77/tryto/pkg/tryto"
	"github.com/ib-77/tryto/pkg/tryto/async"
)

// Handler is the polymorphic unit of work: the value it returns may be a
// plain result or a Thenable that settles later.
type Handler func() (any, error)

// Try invokes h once. When the returned value is deferred-like the result
// settles after the inner value does; otherwise the returned Deferred is
// already settled when Try returns. Failures follow the async rules: the
// error callback completes first, a failing callback rejects the result.
func Try(h Handler, onError tryto.OnError) *tryto.Deferred[any] {
	return async.TryOf(invoke(h), onError)
}

// Catch invokes h once and settles to a structured Outcome, probing the
// handler's returned value the same way Try does.
func Catch(h Handler) *tryto.Deferred[tryto.Outcome[any]] {
	out := tryto.NewDeferred[tryto.Outcome[any]]()

	var caught error // private to this invocation
	Try(h, func(err error) any {
		caught = err
		return nil
	}).Then(
		func(v any) {
			if caught != nil {
				out.Resolve(tryto.Err[any](caught))
			} else {
				out.Resolve(tryto.Ok(v))
			}
		},
		func(err error) {
			out.Resolve(tryto.Err[any](err))
		},
	)
	return out
}

// From applies Try semantics to an already-produced value instead of a
// handler: a Thenable is chained, anything else resolves immediately.
func From(v any, onError tryto.OnError) *tryto.Deferred[any] {
	return async.TryOf(lift(v), onError)
}

// Deprecated: TryTo is the original exported name of Try. Use Try.
var TryTo = Try

// Deprecated: CatchTo is the original exported name of Catch. Use Catch.
var CatchTo = Catch

func invoke(h Handler) *tryto.Deferred[any] {
	var v any
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = tryto.AsError(r)
			}
		}()
		v, err = h()
		return err
	}()

	if err != nil {
		return tryto.Rejected[any](err)
	}
	return lift(v)
}

func lift(v any) *tryto.Deferred[any] {
	if !tryto.IsDeferred(v) {
		return tryto.Resolved(v)
	}

	d := tryto.NewDeferred[any]()
	v.(tryto.Thenable).OnSettled(func(value any, err error) {
		if err != nil {
			d.Reject(err)
		} else {
			d.Resolve(value)
		}
	})
	return d
}
