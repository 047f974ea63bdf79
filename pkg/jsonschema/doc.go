// Package jsonschema validates form payloads against JSON Schema documents
// using github.com/kaptinlin/jsonschema.
//
// Field names are expanded into a nested document first (payload.Tree), so
// "kv.key" is checked against properties.kv.properties.key. Failures are
// located by the instance location the engine reports, which maps back to
// the same field name.
//
// Form values are strings; write schemas accordingly (use "pattern" rather
// than "type": "integer" for numeric inputs).
//
// Required-property failures are reported on the parent object since that
// is where the engine locates them.
package jsonschema
