// Package payload holds submitted form data as an ordered multimap.
//
// A Payload keeps every entry in submission order, which matters when a
// field is repeated (checkbox groups, multi-selects) and when error output
// must line up with the form. Values and files live side by side.
//
// Build one from data the HTTP layer already parsed:
//
//	r.ParseMultipartForm(32 << 20)
//	p := payload.FromMultipart(r.MultipartForm)
//
// Validators can read it directly (Get, Values, Files), bind it into a
// struct with Bind, or expand it into a nested tree with Tree for engines
// that validate documents rather than flat fields.
package payload
