package validator

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/standard"
)

// SchemaFunc reads the payload into T and lists the rules it must satisfy.
type SchemaFunc[T any] func(p payload.Payload) (T, []Rule)

// Schema adapts a SchemaFunc to standard.Validator. Each failing rule
// becomes one issue located at its Field; the output value is only returned
// when every rule passes.
//
//	signup := validator.Schema(func(p payload.Payload) (Signup, []validator.Rule) {
//		s := Signup{Email: p.Get("email")}
//		return s, []validator.Rule{
//			validator.Required("email", s.Email),
//			validator.Email("email", s.Email),
//		}
//	})
func Schema[T any](fn SchemaFunc[T]) standard.Validator[T] {
	return standard.ValidatorFunc[T](func(_ context.Context, p payload.Payload) standard.Return[T] {
		return standard.Ready(check(fn, p))
	})
}

// AsyncSchema is like Schema but runs fn on its own goroutine and returns a
// deferred result. fn may block, e.g. on a database lookup.
func AsyncSchema[T any](fn func(ctx context.Context, p payload.Payload) (T, []Rule)) standard.Validator[T] {
	return standard.ValidatorFunc[T](func(ctx context.Context, p payload.Payload) standard.Return[T] {
		return standard.Deferred(async.Go(ctx, func(ctx context.Context) (standard.Result[T], error) {
			return check(func(p payload.Payload) (T, []Rule) { return fn(ctx, p) }, p), nil
		}))
	})
}

func check[T any](fn SchemaFunc[T], p payload.Payload) standard.Result[T] {
	v, rules := fn(p)
	errs := ExtractValidationErrors(Apply(rules...))
	if errs.IsEmpty() {
		return standard.Succeed(v)
	}
	return standard.Fail[T](Issues(errs)...)
}

// Issues converts validation errors to standard issues.
func Issues(errs ValidationErrors) []standard.Issue {
	issues := make([]standard.Issue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, standard.NewIssue(e.Field, e.Message))
	}
	return issues
}
