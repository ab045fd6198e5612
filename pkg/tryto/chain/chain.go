package chain

import (
	"github.com/ib-77/tryto/pkg/tryto"
	"github.com/ib-77/tryto/pkg/tryto/solo"
)

// Chain wraps an Outcome to enable fluent composition
type Chain[T any] struct {
	out tryto.Outcome[T]
}

// Start creates a new chain from an Outcome
func Start[T any](o tryto.Outcome[T]) Chain[T] {
	return Chain[T]{out: o}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](v T) Chain[T] {
	return Start(tryto.Ok(v))
}

// Result returns the underlying Outcome
func (c Chain[T]) Result() tryto.Outcome[T] {
	return c.out
}

// Then composes functions that already return an Outcome[T]
func (c Chain[T]) Then(onSuccess func(t T) tryto.Outcome[T]) Chain[T] {
	if !c.out.IsOk() {
		return c
	}
	return Chain[T]{out: onSuccess(c.out.Value())}
}

// ThenTry composes functions that return (T, error), with panic recovery
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if !c.out.IsOk() {
		return c
	}
	return Chain[T]{out: solo.Catch(func() (T, error) {
		return try(c.out.Value())
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	if !c.out.IsOk() {
		return c
	}
	return Chain[T]{out: tryto.Ok(onSuccess(c.out.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if !c.out.IsOk() {
		if onFailure != nil {
			onFailure(c.out.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.out.Value())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	if c.out.IsOk() {
		return onSuccess(c.out.Value())
	}
	return onFailure(c.out.Err())
}
