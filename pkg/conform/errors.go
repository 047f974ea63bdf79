package conform

import "errors"

var (
	// ErrAsyncUnsupported is returned when a validator defers its result but
	// Config.Async is false.
	ErrAsyncUnsupported = errors.New("conform: async validation is not supported, set Config.Async")

	ErrNoSchema    = errors.New("conform: schema is not set")
	ErrNoValidator = errors.New("conform: schema factory returned nil validator")
	ErrNilResult   = errors.New("conform: validator returned nil result")

	// ErrValidation wraps errors produced while waiting for a deferred result.
	ErrValidation = errors.New("conform: validation failed to complete")
)
