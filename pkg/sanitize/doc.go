// Package sanitize cleans submitted text values before they reach a
// validator.
//
// A Func transforms a single value; Compose chains several of them. Rules
// map field names to a Func, and Payload returns a copy of a payload with the
// rules applied. The "*" rule runs on every text field before the field's own
// rule. File entries are never touched.
//
//	clean := sanitize.Payload(p, sanitize.Rules{
//		sanitize.AllFields: sanitize.Compose(sanitize.RemoveControlChars, sanitize.Trim),
//		"email":            sanitize.ToLower,
//		"bio":              sanitize.StripHTML,
//	})
//
// All helpers are stateless and safe for concurrent use.
package sanitize
