// Package conform normalizes validation results into form submissions.
//
// Any validator implementing standard.Validator can back a form. conform
// runs it once per submission and reduces its result: a success becomes the
// submission value, a failure becomes a submission.ErrorMap keyed by field
// name ("email", "address.city", "items[0].sku").
//
//	sub, err := conform.Parse(ctx, p, conform.Config[Signup]{
//	    Schema: conform.Fixed(signupValidator),
//	})
//
// # Suppressing errors
//
// Two reserved messages let validators control what the form shows:
//
//   - MessageSkipped marks its field invalid with no message (nil entry).
//     Useful when a field-level check was skipped for this submission.
//   - MessageUndefined makes the whole error map nil: the submission is
//     invalid but nothing is displayed, e.g. because a check could not run.
//
// Both are control values; never use them as user-facing text.
//
// # Intent
//
// FromIntent builds the validator per submission from its intent, so a
// single-field revalidation can run a narrower check than a full submit.
//
// # Async validators
//
// A validator may return standard.Deferred with a Future. Set Config.Async
// to wait for it; otherwise Resolve fails fast with ErrAsyncUnsupported
// instead of blocking. Cancellation follows ctx while waiting.
package conform
