package jsonschema

import "errors"

var ErrCompile = errors.New("jsonschema: failed to compile schema")
