// Package formpath converts between field names and path segments.
//
// A field name is the string a form control is submitted under, e.g.
// "address.city" or "items[2].sku". Validators report issue locations as
// segment sequences; Format turns those sequences into the same names the
// form used, and Parse goes the other way.
//
// # Format
//
//   - string segments are joined with "."
//   - numeric segments (any integer or float type) render as "[n]"
//   - an empty string segment adds nothing
//
// Names are built left to right, so Format([]any{0, "name"}) is "[0].name".
package formpath
