package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

func Equal[T comparable](field string, value, expected T) Rule {
	return Rule{
		Check: func() bool {
			return value == expected
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be %v", expected),
			TranslationKey:    "validation.equal",
			TranslationValues: map[string]any{"field": field, "expected": expected},
		},
	}
}

func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be one of the allowed values",
			TranslationKey:    "validation.one_of",
			TranslationValues: map[string]any{"field": field, "options": options},
		},
	}
}

// Matches validates value against pattern. The pattern is compiled on each
// call; use MatchesRegexp with a precompiled expression in hot paths.
func Matches(field, value, pattern string) Rule {
	return MatchesRegexp(field, value, regexp.MustCompile(pattern))
}

func MatchesRegexp(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "has an invalid format",
			TranslationKey:    "validation.pattern",
			TranslationValues: map[string]any{"field": field, "pattern": re.String()},
		},
	}
}

// Email accepts a bare address; display names like "A <a@b.co>" are rejected.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value && strings.Contains(value, ".")
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
