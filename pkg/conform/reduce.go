package conform

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/standard"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Reduce converts a validation result into an outcome.
//
// Issues are folded in order into an error map keyed by field name. An issue
// with MessageSkipped sets its field to nil; once a field is nil it stays
// nil. An issue with MessageUndefined turns the whole map into nil, and no
// later issue can bring it back.
func Reduce[T any](r standard.Result[T]) submission.Outcome[T] {
	return standard.Match(r,
		submission.Valid[T],
		func(issues []standard.Issue) submission.Outcome[T] {
			return submission.Invalid[T](reduceIssues(issues))
		},
	)
}

func reduceIssues(issues []standard.Issue) submission.ErrorMap {
	errs := submission.ErrorMap{}
	for _, issue := range issues {
		if errs == nil || isUndefined(issue.Message) {
			errs = nil
			continue
		}

		name := FieldName(issue.Path)
		if current, ok := errs[name]; (ok && current == nil) || isSkipped(issue.Message) {
			errs[name] = nil
			continue
		}
		errs[name] = append(errs[name], issue.Message)
	}
	return errs
}

// FieldName formats an issue path as a field name, unwrapping key-bearing
// segments.
func FieldName(path []any) string {
	segments := make([]any, len(path))
	for i, seg := range path {
		segments[i] = segmentKey(seg)
	}
	return formpath.Format(segments)
}

// segmentKey maps a path element to a string key or a number. Numbers keep
// their type and render bracketed. Elements of any other shape are rendered
// with fmt.Sprint as a key.
func segmentKey(seg any) any {
	if k, ok := seg.(standard.Keyer); ok {
		seg = k.PathKey()
	}
	if seg == nil {
		return ""
	}

	rv := reflect.ValueOf(seg)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32:
		return float32(rv.Float())
	case reflect.Float64:
		return rv.Float()
	}
	return fmt.Sprint(seg)
}
