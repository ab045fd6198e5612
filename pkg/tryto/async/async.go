package async

import (
	"errors"

	"github.com/ib-77/tryto/pkg/tryto"
)

// ErrNoDeferred rejects the wrapper when a handler returns a nil Deferred.
var ErrNoDeferred = errors.New("handler returned no deferred value")

// Handler is the caller-supplied unit of work producing a deferred result.
type Handler[T any] func() *tryto.Deferred[T]

// Try invokes h once and returns a Deferred that resolves to the handler's
// value, or to the zero value of T after onError has completed. A panic
// while invoking h counts as rejection of the inner result.
//
// onError, when non-nil, receives the error before the returned Deferred
// settles. If it returns a Thenable, that settlement is awaited first; a
// rejection there, or a panic inside the callback, rejects the returned
// Deferred instead of being swallowed.
func Try[T any](h Handler[T], onError tryto.OnError) *tryto.Deferred[T] {
	return TryOf(invoke(h), onError)
}

// TryOf applies Try semantics to a deferred value already in hand.
func TryOf[T any](d *tryto.Deferred[T], onError tryto.OnError) *tryto.Deferred[T] {
	out := tryto.NewDeferred[T]()

	d.Then(
		func(v T) {
			out.Resolve(v)
		},
		func(err error) {
			settleAfterCallback(out, err, onError)
		},
	)
	return out
}

// Catch invokes h once and returns a Deferred settling to a structured
// Outcome. It is built on Try with an internal capture callback; the
// returned Deferred always resolves, never rejects.
func Catch[T any](h Handler[T]) *tryto.Deferred[tryto.Outcome[T]] {
	out := tryto.NewDeferred[tryto.Outcome[T]]()

	var caught error // private to this invocation
	Try(h, func(err error) any {
		caught = err
		return nil
	}).Then(
		func(v T) {
			if caught != nil {
				out.Resolve(tryto.Err[T](caught))
			} else {
				out.Resolve(tryto.Ok(v))
			}
		},
		func(err error) {
			out.Resolve(tryto.Err[T](err))
		},
	)
	return out
}

// invoke guards the handler call itself: h runs exactly once and a panic
// during invocation becomes a rejected Deferred. A nil Deferred from the
// handler is treated the same way.
func invoke[T any](h Handler[T]) *tryto.Deferred[T] {
	var d *tryto.Deferred[T]
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = tryto.AsError(r)
			}
		}()
		d = h()
		return nil
	}()

	if err != nil {
		return tryto.Rejected[T](err)
	}
	if d == nil {
		return tryto.Rejected[T](ErrNoDeferred)
	}
	return d
}

// settleAfterCallback runs the error callback and resolves out with the
// zero value once the callback (and any Thenable it returned) completes.
func settleAfterCallback[T any](out *tryto.Deferred[T], err error, onError tryto.OnError) {
	var zero T

	if onError == nil {
		out.Resolve(zero)
		return
	}

	ret, cbErr := callProtected(onError, err)
	if cbErr != nil {
		out.Reject(cbErr)
		return
	}

	if t, ok := ret.(tryto.Thenable); ok && !tryto.IsNil(ret) {
		t.OnSettled(func(_ any, werr error) {
			if werr != nil {
				out.Reject(werr)
			} else {
				out.Resolve(zero)
			}
		})
		return
	}

	out.Resolve(zero)
}

func callProtected(onError tryto.OnError, err error) (ret any, cbErr error) {
	defer func() {
		if r := recover(); r != nil {
			ret, cbErr = nil, tryto.AsError(r)
		}
	}()
	return onError(err), nil
}
