package conform

import (
	"github.com/dmitrymomot/formkit/pkg/standard"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Schema is either a fixed validator or a factory that builds one from the
// submission intent. Use Fixed or FromIntent to create it.
type Schema[T any] struct {
	fixed   standard.Validator[T]
	factory func(intent *submission.Intent) standard.Validator[T]
}

// Fixed returns a schema that always validates with v.
func Fixed[T any](v standard.Validator[T]) Schema[T] {
	return Schema[T]{fixed: v}
}

// FromIntent returns a schema that builds its validator per submission.
// The factory receives nil when the submission carries no intent.
func FromIntent[T any](factory func(intent *submission.Intent) standard.Validator[T]) Schema[T] {
	return Schema[T]{factory: factory}
}

// Resolve returns the validator to use for intent.
func (s Schema[T]) Resolve(intent *submission.Intent) (standard.Validator[T], error) {
	var v standard.Validator[T]
	switch {
	case s.factory != nil:
		v = s.factory(intent)
	case s.fixed != nil:
		v = s.fixed
	default:
		return nil, ErrNoSchema
	}
	if v == nil {
		return nil, ErrNoValidator
	}
	return v, nil
}
