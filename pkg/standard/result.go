package standard

// Result is the outcome of running a validator: either Success or Failure.
// The set of implementations is closed.
type Result[T any] interface {
	isResult(T)
}

// Success carries the validated output value.
type Success[T any] struct {
	Value T
}

// Failure carries the issues in the order the validator reported them.
type Failure[T any] struct {
	Issues []Issue
}

func (Success[T]) isResult(T) {}
func (Failure[T]) isResult(T) {}

// Succeed returns a successful Result.
func Succeed[T any](v T) Result[T] {
	return Success[T]{Value: v}
}

// Fail returns a failed Result.
func Fail[T any](issues ...Issue) Result[T] {
	return Failure[T]{Issues: issues}
}

// Match calls onSuccess or onFailure depending on the variant of r.
// A nil Result is treated as a failure without issues.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func([]Issue) R) R {
	switch v := r.(type) {
	case Success[T]:
		return onSuccess(v.Value)
	case Failure[T]:
		return onFailure(v.Issues)
	default:
		return onFailure(nil)
	}
}
