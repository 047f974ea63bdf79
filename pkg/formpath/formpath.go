package formpath

import (
	"strconv"
	"strings"
)

// Format joins path segments into a field name.
//
// Numeric segments of any integer or float type render bracketed, string
// segments are joined with dots. An empty string segment adds nothing.
// Segments of other types are ignored.
//
//	Format([]any{"items", 0, "name"}) // "items[0].name"
//	Format([]any{"a", 1.5})           // "a[1.5]"
//	Format([]any{"kv", "key"})        // "kv.key"
//	Format(nil)                       // ""
func Format(segments []any) string {
	var b strings.Builder
	for _, seg := range segments {
		if n, ok := number(seg); ok {
			b.WriteByte('[')
			b.WriteString(n)
			b.WriteByte(']')
			continue
		}
		if v, ok := seg.(string); ok {
			if v != "" && b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(v)
		}
	}
	return b.String()
}

func number(seg any) (string, bool) {
	switch v := seg.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(v), 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// Parse splits a field name into segments. Bracketed numbers become int
// segments; everything else is a string segment.
//
//	Parse("items[0].name") // []any{"items", 0, "name"}
//	Parse("")              // []any{}
func Parse(name string) []any {
	segments := make([]any, 0, 4)
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			segments = append(segments, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case '.':
			flush()
		case '[':
			end := strings.IndexByte(name[i:], ']')
			if end == -1 {
				// Unterminated bracket is part of the key.
				cur.WriteString(name[i:])
				i = len(name)
				continue
			}
			flush()
			inner := name[i+1 : i+end]
			if n, err := strconv.Atoi(inner); err == nil && n >= 0 {
				segments = append(segments, n)
			} else {
				segments = append(segments, inner)
			}
			i += end
		default:
			cur.WriteByte(c)
		}
	}
	flush()

	return segments
}

// Child returns the name of a nested field.
func Child(parent, key string) string {
	return Format(append(Parse(parent), key))
}

// Index returns the name of an indexed element of parent.
func Index(parent string, i int) string {
	return Format(append(Parse(parent), i))
}
