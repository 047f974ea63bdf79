package submission

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/payload"
)

// Submission is the parsed result of one form post. It is created by Parse
// and not modified afterwards.
type Submission[T any] struct {
	// Payload is the submitted data without the intent field.
	Payload payload.Payload
	// Intent is nil for a plain submit.
	Intent *Intent
	Value  T
	// Error is nil both for valid submissions and for invalid ones whose
	// error state is suppressed; check Valid.
	Error ErrorMap
	Valid bool
}

// ResolveFunc validates a payload on behalf of Parse.
type ResolveFunc[T any] func(ctx context.Context, p payload.Payload, intent *Intent) (Outcome[T], error)

// Parse extracts the intent from p, runs resolve once and wraps its outcome.
func Parse[T any](ctx context.Context, p payload.Payload, resolve ResolveFunc[T]) (*Submission[T], error) {
	if resolve == nil {
		return nil, ErrNoResolver
	}

	intent, err := DecodeIntent(p)
	if err != nil {
		return nil, err
	}
	data := p.Without(IntentField)

	outcome, err := resolve(ctx, data, intent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	sub := &Submission[T]{
		Payload: data,
		Intent:  intent,
		Valid:   outcome.IsValid(),
	}
	if v, ok := outcome.Value(); ok {
		sub.Value = v
	} else {
		sub.Error = outcome.Error()
	}
	return sub, nil
}
