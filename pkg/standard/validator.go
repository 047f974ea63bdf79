package standard

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/payload"
)

// Validator validates a payload and produces an output of type T.
type Validator[T any] interface {
	Validate(ctx context.Context, p payload.Payload) Return[T]
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc[T any] func(ctx context.Context, p payload.Payload) Return[T]

func (f ValidatorFunc[T]) Validate(ctx context.Context, p payload.Payload) Return[T] {
	return f(ctx, p)
}

// Return is what a validator hands back: a ready Result, or a Future that
// will produce one.
type Return[T any] struct {
	result Result[T]
	future *async.Future[Result[T]]
}

// Ready wraps a Result that is already available.
func Ready[T any](r Result[T]) Return[T] {
	return Return[T]{result: r}
}

// Deferred wraps a Result that will be available once f completes.
func Deferred[T any](f *async.Future[Result[T]]) Return[T] {
	return Return[T]{future: f}
}

// Result returns the ready Result. ok is false for deferred returns.
func (r Return[T]) Result() (Result[T], bool) {
	if r.future != nil {
		return nil, false
	}
	return r.result, true
}

// Future returns the pending Future. ok is false for ready returns.
func (r Return[T]) Future() (*async.Future[Result[T]], bool) {
	return r.future, r.future != nil
}

// IsDeferred reports whether the Result is delivered through a Future.
func (r Return[T]) IsDeferred() bool {
	return r.future != nil
}
