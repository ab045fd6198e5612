package solo

import (
	"github.com/ib-77/tryto/pkg/tryto"
)

// Handler is the caller-supplied unit of work.
type Handler[T any] func() (T, error)

// Try runs h and returns its value. On failure (returned error or panic)
// it invokes onError, when non-nil, with the normalized error and returns
// the zero value of T.
//
// The zero value doubles as the failure marker, so a handler legitimately
// returning it is indistinguishable from a failing one; use Catch when
// that matters. onError runs outside the recover scope: if the callback
// itself panics, that panic propagates to the caller.
func Try[T any](h Handler[T], onError func(err error)) T {
	v, err := run(h)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		var zero T
		return zero
	}
	return v
}

// Catch runs h exactly once and returns a structured Outcome. It delegates
// to Try, capturing the error through an internal callback that is never
// visible to the handler.
func Catch[T any](h Handler[T]) tryto.Outcome[T] {
	var caught error
	v := Try(h, func(err error) {
		caught = err
	})

	if caught != nil {
		return tryto.Err[T](caught)
	}
	return tryto.Ok(v)
}

func run[T any](h Handler[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, tryto.AsError(r)
		}
	}()
	return h()
}
