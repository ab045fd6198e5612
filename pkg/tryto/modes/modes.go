package modes

import (
	"errors"
	"fmt"

	"github.com/ib-77/tryto/pkg/tryto"
	"github.com/ib-77/tryto/pkg/tryto/async"
	"github.com/ib-77/tryto/pkg/tryto/solo"
)

type Mode string

const (
	Sync  Mode = "sync"
	Async Mode = "async"
)

var ErrUnsupportedMode = errors.New("unsupported mode")

// TryFunc is the shared shape of both try variants.
type TryFunc[T any] func(h solo.Handler[T], onError tryto.OnError) *tryto.Deferred[T]

// CatchFunc is the shared shape of both catch variants.
type CatchFunc[T any] func(h solo.Handler[T]) *tryto.Deferred[tryto.Outcome[T]]

// SelectTry returns the try wrapper for mode without running any handler.
func SelectTry[T any](mode Mode) (TryFunc[T], error) {
	switch mode {
	case Sync:
		return syncTry[T], nil
	case Async:
		return asyncTry[T], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

// SelectCatch returns the catch wrapper for mode without running any handler.
func SelectCatch[T any](mode Mode) (CatchFunc[T], error) {
	switch mode {
	case Sync:
		return syncCatch[T], nil
	case Async:
		return asyncCatch[T], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

func syncTry[T any](h solo.Handler[T], onError tryto.OnError) *tryto.Deferred[T] {
	v := solo.Try(h, func(err error) {
		if onError != nil {
			onError(err)
		}
	})
	return tryto.Resolved(v)
}

func asyncTry[T any](h solo.Handler[T], onError tryto.OnError) *tryto.Deferred[T] {
	return async.TryOf(tryto.Go(h), onError)
}

func syncCatch[T any](h solo.Handler[T]) *tryto.Deferred[tryto.Outcome[T]] {
	return tryto.Resolved(solo.Catch(h))
}

func asyncCatch[T any](h solo.Handler[T]) *tryto.Deferred[tryto.Outcome[T]] {
	return async.Catch(func() *tryto.Deferred[T] {
		return tryto.Go(h)
	})
}
