package flow

import (
	"context"
	"sync"

	"github.com/ib-77/tryto/pkg/tryto"
	"github.com/ib-77/tryto/pkg/tryto/solo"
)

// CatchAll runs every handler through solo.Catch, spreading the work over
// a fixed number of worker lines, and streams the outcomes. The channel is
// closed once all lines drain or ctx is done; outcome order follows
// completion, not submission.
func CatchAll[T any](ctx context.Context, lines int, handlers ...solo.Handler[T]) <-chan tryto.Outcome[T] {
	if lines < 1 {
		lines = 1
	}

	in := toChan(ctx, handlers)
	out := make(chan tryto.Outcome[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go line(ctx, in, out, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[T any](ctx context.Context, in <-chan solo.Handler[T],
	out chan<- tryto.Outcome[T], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case h, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- solo.Catch(h):
			case <-ctx.Done():
				return
			}
		}
	}
}

func toChan[T any](ctx context.Context, handlers []solo.Handler[T]) <-chan solo.Handler[T] {
	in := make(chan solo.Handler[T])

	go func() {
		defer close(in)

		for _, h := range handlers {
			select {
			case in <- h:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Settle streams an Outcome for each deferred value as it settles. A
// context cancellation surfaces as a failed Outcome carrying ctx.Err when
// it can still be delivered.
func Settle[T any](ctx context.Context, ds ...*tryto.Deferred[T]) <-chan tryto.Outcome[T] {
	out := make(chan tryto.Outcome[T])
	wg := &sync.WaitGroup{}

	for _, d := range ds {
		d := d
		wg.Add(1)
		go func() {
			defer wg.Done()

			v, err := d.Await(ctx)
			var o tryto.Outcome[T]
			if err != nil {
				o = tryto.Err[T](err)
			} else {
				o = tryto.Ok(v)
			}

			select {
			case out <- o:
			case <-ctx.Done():
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect drains out into a slice, stopping early when ctx is done.
func Collect[T any](ctx context.Context, out <-chan tryto.Outcome[T]) []tryto.Outcome[T] {
	res := make([]tryto.Outcome[T], 0)

	for {
		select {
		case o, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, o)
		case <-ctx.Done():
			return res
		}
	}
}
