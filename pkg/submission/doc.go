// Package submission is the form engine side of validation: it turns a
// payload into a Submission by delegating validation to a resolver.
//
// The resolver returns an Outcome, either Valid(value) or Invalid(errors).
// ErrorMap keys are field names; a field mapped to nil is invalid but has no
// message to show, and a nil ErrorMap marks the whole submission as invalid
// without any visible errors.
//
// An Intent, when present, travels in the payload under IntentField as JSON
// and is handed to the resolver so validation can depend on why the form
// was submitted.
package submission
