package conform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/standard"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Config configures a single normalization.
type Config[T any] struct {
	Schema Schema[T]
	// Async must be true when the validator returns deferred results.
	// With Async unset, a deferred result fails with ErrAsyncUnsupported.
	Async bool
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config[T]) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Resolve validates p with the schema and reduces the result into an
// outcome. The validator is invoked exactly once.
//
// Errors are contract violations (no schema, deferred result without Async,
// nil result) or failures while awaiting a deferred result; invalid input is
// reported through the outcome, never as an error.
func Resolve[T any](ctx context.Context, p payload.Payload, intent *submission.Intent, cfg Config[T]) (submission.Outcome[T], error) {
	log := cfg.logger().With(logger.Component("conform"), logger.Async(cfg.Async))
	if intent != nil {
		log = log.With(logger.Intent(intent.Type))
	}

	v, err := cfg.Schema.Resolve(intent)
	if err != nil {
		log.WarnContext(ctx, "schema resolution failed", logger.Error(err))
		return submission.Outcome[T]{}, err
	}

	ret := v.Validate(ctx, p)

	var result standard.Result[T]
	if ready, ok := ret.Result(); ok {
		result = ready
	} else {
		future, _ := ret.Future()
		if !cfg.Async {
			log.WarnContext(ctx, "deferred result in synchronous mode", logger.Error(ErrAsyncUnsupported))
			return submission.Outcome[T]{}, ErrAsyncUnsupported
		}
		result, err = future.Await(ctx)
		if err != nil {
			log.WarnContext(ctx, "awaiting validation result failed", logger.Error(err))
			return submission.Outcome[T]{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	if result == nil {
		return submission.Outcome[T]{}, ErrNilResult
	}

	outcome := Reduce(result)
	log.DebugContext(ctx, "submission resolved",
		logger.Valid(outcome.IsValid()),
		logger.Fields(len(outcome.Error())),
	)
	return outcome, nil
}

// Parse builds a submission from p, validating it with cfg.
func Parse[T any](ctx context.Context, p payload.Payload, cfg Config[T]) (*submission.Submission[T], error) {
	return submission.Parse(ctx, p, func(ctx context.Context, p payload.Payload, intent *submission.Intent) (submission.Outcome[T], error) {
		return Resolve(ctx, p, intent, cfg)
	})
}

// ParseAsync runs Parse on its own goroutine.
func ParseAsync[T any](ctx context.Context, p payload.Payload, cfg Config[T]) *async.Future[*submission.Submission[T]] {
	return async.Go(ctx, func(ctx context.Context) (*submission.Submission[T], error) {
		return Parse(ctx, p, cfg)
	})
}
