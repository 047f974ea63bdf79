package standard

import "github.com/dmitrymomot/formkit/pkg/formpath"

// Issue is a single validation failure.
//
// Path elements are plain keys (string or any integer type) or key-bearing
// values: PathSegment, or anything implementing Keyer.
type Issue struct {
	Message string
	Path    []any
}

// PathSegment wraps a path key.
type PathSegment struct {
	Key any
}

// Keyer is implemented by custom path elements that carry a key.
type Keyer interface {
	PathKey() any
}

func (s PathSegment) PathKey() any { return s.Key }

// NewIssue builds an issue from a field name such as "items[0].sku".
func NewIssue(field, message string) Issue {
	return Issue{Message: message, Path: formpath.Parse(field)}
}
