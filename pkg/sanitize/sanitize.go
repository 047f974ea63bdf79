package sanitize

import "github.com/dmitrymomot/formkit/pkg/payload"

// AllFields is the rule key applied to every text field.
const AllFields = "*"

// Func transforms a single submitted value.
type Func func(string) string

// Rules maps field names to the transform applied to their values.
type Rules map[string]Func

// Compose chains transforms left to right. Nil entries are skipped.
func Compose(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}

// Payload returns a copy of p with rules applied to its text values.
// Entry order is preserved.
func Payload(p payload.Payload, rules Rules) payload.Payload {
	if len(rules) == 0 {
		return p
	}

	all := rules[AllFields]
	var out payload.Payload
	for _, e := range p.Entries() {
		if e.File != nil {
			out.AddFile(e.Name, e.File)
			continue
		}
		v := e.Value
		if all != nil {
			v = all(v)
		}
		if fn := rules[e.Name]; fn != nil && e.Name != AllFields {
			v = fn(v)
		}
		out.Add(e.Name, v)
	}
	return out
}
