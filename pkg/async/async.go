package async

import (
	"context"
	"time"
)

// Future holds the eventual result of a computation running on its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Go runs fn on a new goroutine and returns a Future for its result.
// A context canceled before fn starts completes the Future with ctx.Err()
// without calling fn.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already completed Future.
func Resolved[U any](v U, err error) *Future[U] {
	f := &Future[U]{result: v, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Then chains fn onto f. The returned Future completes with f's error when f
// fails, otherwise with the result of fn.
func Then[U, V any](ctx context.Context, f *Future[U], fn func(context.Context, U) (V, error)) *Future[V] {
	return Go(ctx, func(ctx context.Context) (V, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero V
			return zero, err
		}
		return fn(ctx, v)
	})
}

// Await blocks until the Future completes or ctx is done.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits at most timeout for the Future to complete.
// Returns ErrTimeout when the deadline passes first.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed once the Future completes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the Future has completed, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
