// Package validator provides explicit, rule-based validation of form values.
//
// Rules are plain values: a Check function and the ValidationError reported
// when it fails. Apply runs a list of rules and returns ValidationErrors for
// every failure, in rule order.
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.Email("email", req.Email),
//		validator.MinLen("password", req.Password, 8),
//	)
//
// Schema wraps a function that reads a payload and returns its rules, so the
// same rules can back a form through the conform package. Override a rule's
// text with WithMessage, which is also how reserved messages such as
// conform.MessageSkipped are reported.
//
// Every ValidationError carries a TranslationKey and TranslationValues for
// localized rendering.
package validator
