// Package playground plugs github.com/go-playground/validator/v10 into the
// standard validator contract.
//
// The payload is bound into the target struct with payload.Bind, then
// validated with `validate` tags. Field errors are located by `form` tag
// names, so a failure on
//
//	type Form struct {
//		KV struct {
//			Key string `form:"key" validate:"eq=valid"`
//		} `form:"kv"`
//	}
//
// is reported for the field "kv.key". Use WithMessages to customize text,
// including returning conform.MessageSkipped or conform.MessageUndefined.
package playground
