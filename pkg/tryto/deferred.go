package tryto

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

type continuation[T any] struct {
	onSuccess func(T)
	onFailure func(error)
}

// Deferred is a settle-once future. It settles exactly once, via Resolve or
// Reject; continuations registered before settlement are queued and run in
// registration order on the settling goroutine, continuations registered
// after settlement run immediately on the registering goroutine.
//
// There is no cancellation: once the underlying computation runs, nothing
// here can abort it. Await honors its context for the wait only.
type Deferred[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	value   T
	err     error
	pending *queue.Queue
}

func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{
		done:    make(chan struct{}),
		pending: queue.New(),
	}
}

// Resolved returns a Deferred already settled with v.
func Resolved[T any](v T) *Deferred[T] {
	d := NewDeferred[T]()
	d.Resolve(v)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected[T any](err error) *Deferred[T] {
	d := NewDeferred[T]()
	d.Reject(err)
	return d
}

// Go runs h on a new goroutine and returns a Deferred settled from its
// result. A panic inside h rejects the Deferred.
func Go[T any](h func() (T, error)) *Deferred[T] {
	d := NewDeferred[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.Reject(AsError(r))
			}
		}()

		v, err := h()
		if err != nil {
			d.Reject(err)
		} else {
			d.Resolve(v)
		}
	}()
	return d
}

// Resolve settles the Deferred with v. It reports false if the Deferred was
// already settled, in which case nothing happens.
func (d *Deferred[T]) Resolve(v T) bool {
	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		return false
	}
	d.value = v
	d.settled = true
	waiting := d.drainLocked()
	close(d.done)
	d.mu.Unlock()

	for _, c := range waiting {
		if c.onSuccess != nil {
			c.onSuccess(v)
		}
	}
	return true
}

// Reject settles the Deferred with err. It reports false if the Deferred
// was already settled, in which case nothing happens.
func (d *Deferred[T]) Reject(err error) bool {
	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		return false
	}
	d.err = err
	d.settled = true
	waiting := d.drainLocked()
	close(d.done)
	d.mu.Unlock()

	for _, c := range waiting {
		if c.onFailure != nil {
			c.onFailure(err)
		}
	}
	return true
}

func (d *Deferred[T]) drainLocked() []continuation[T] {
	waiting := make([]continuation[T], 0, d.pending.Length())
	for d.pending.Length() > 0 {
		waiting = append(waiting, d.pending.Remove().(continuation[T]))
	}
	return waiting
}

// Then registers success/failure continuations and returns the receiver for
// chaining. Either callback may be nil.
func (d *Deferred[T]) Then(onSuccess func(T), onFailure func(error)) *Deferred[T] {
	d.mu.Lock()
	if !d.settled {
		d.pending.Add(continuation[T]{onSuccess: onSuccess, onFailure: onFailure})
		d.mu.Unlock()
		return d
	}
	v, err := d.value, d.err
	d.mu.Unlock()

	if err != nil {
		if onFailure != nil {
			onFailure(err)
		}
	} else if onSuccess != nil {
		onSuccess(v)
	}
	return d
}

// OnSettled implements Thenable, boxing the success value.
func (d *Deferred[T]) OnSettled(fn func(value any, err error)) {
	d.Then(
		func(v T) { fn(v, nil) },
		func(err error) { fn(nil, err) },
	)
}

// Await blocks until the Deferred settles or ctx is done. A context error
// is returned as-is; the Deferred itself keeps running.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (d *Deferred[T]) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Done returns a channel closed once the Deferred settles.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}
