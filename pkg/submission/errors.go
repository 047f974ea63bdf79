package submission

import "errors"

var (
	ErrInvalidIntent = errors.New("submission: invalid intent")
	ErrNoResolver    = errors.New("submission: resolver is required")
	ErrResolve       = errors.New("submission: resolve failed")
)
