package submission

import "github.com/goccy/go-json"

// Outcome is what a resolver hands back to Parse: a validated value or an
// error map.
type Outcome[T any] struct {
	value T
	err   ErrorMap
	valid bool
}

// Valid returns an outcome carrying the validated value.
func Valid[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, valid: true}
}

// Invalid returns an outcome carrying the error map. A nil map means the
// submission is invalid but its error state is suppressed.
func Invalid[T any](errs ErrorMap) Outcome[T] {
	return Outcome[T]{err: errs}
}

func (o Outcome[T]) IsValid() bool {
	return o.valid
}

// Value returns the validated value; ok is false for invalid outcomes.
func (o Outcome[T]) Value() (v T, ok bool) {
	return o.value, o.valid
}

// Error returns the error map of an invalid outcome, nil otherwise.
func (o Outcome[T]) Error() ErrorMap {
	return o.err
}

// MarshalJSON encodes {"value": ...} for valid outcomes and {"error": ...}
// otherwise. A suppressed error state encodes as {"error": null}.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.valid {
		return json.Marshal(struct {
			Value T `json:"value"`
		}{o.value})
	}
	return json.Marshal(struct {
		Error ErrorMap `json:"error"`
	}{o.err})
}
