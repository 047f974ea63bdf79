package payload

import (
	"mime/multipart"
	"net/url"
	"slices"
	"sort"

	"github.com/dmitrymomot/formkit/pkg/formpath"
)

// Entry is a single submitted value. File is set for file inputs, in which
// case Value holds the file name.
type Entry struct {
	Name  string
	Value string
	File  *multipart.FileHeader
}

// Payload is an ordered multimap of field names to submitted values.
// The zero value is an empty payload ready to use.
type Payload struct {
	entries []Entry
}

// New creates a payload from name/value pairs. A trailing name without a
// value is ignored.
func New(pairs ...string) Payload {
	var p Payload
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Add(pairs[i], pairs[i+1])
	}
	return p
}

// FromValues builds a payload from url.Values. Names are sorted since map
// iteration order is random; values for a name keep their order.
func FromValues(values url.Values) Payload {
	var p Payload
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range values[name] {
			p.Add(name, v)
		}
	}
	return p
}

// FromMultipart builds a payload from a parsed multipart form: text values
// first, then files.
func FromMultipart(form *multipart.Form) Payload {
	if form == nil {
		return Payload{}
	}
	p := FromValues(form.Value)

	names := make([]string, 0, len(form.File))
	for name := range form.File {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, fh := range form.File[name] {
			p.AddFile(name, fh)
		}
	}
	return p
}

// Add appends a value for name.
func (p *Payload) Add(name, value string) {
	p.entries = append(p.entries, Entry{Name: name, Value: value})
}

// AddFile appends a file for name.
func (p *Payload) AddFile(name string, fh *multipart.FileHeader) {
	if fh == nil {
		return
	}
	p.entries = append(p.entries, Entry{Name: name, Value: fh.Filename, File: fh})
}

// Get returns the first text value for name.
func (p Payload) Get(name string) string {
	for _, e := range p.entries {
		if e.Name == name && e.File == nil {
			return e.Value
		}
	}
	return ""
}

// Has reports whether any entry exists for name.
func (p Payload) Has(name string) bool {
	for _, e := range p.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Values returns all text values for name in submission order.
func (p Payload) Values(name string) []string {
	var out []string
	for _, e := range p.entries {
		if e.Name == name && e.File == nil {
			out = append(out, e.Value)
		}
	}
	return out
}

// Files returns all files for name in submission order.
func (p Payload) Files(name string) []*multipart.FileHeader {
	var out []*multipart.FileHeader
	for _, e := range p.entries {
		if e.Name == name && e.File != nil {
			out = append(out, e.File)
		}
	}
	return out
}

// Names returns distinct field names in the order they were first seen.
func (p Payload) Names() []string {
	seen := make(map[string]struct{}, len(p.entries))
	names := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	return names
}

// Entries returns a copy of all entries.
func (p Payload) Entries() []Entry {
	return slices.Clone(p.entries)
}

func (p Payload) Len() int {
	return len(p.entries)
}

// Without returns a copy of the payload without any entries for names.
func (p Payload) Without(names ...string) Payload {
	out := Payload{entries: make([]Entry, 0, len(p.entries))}
	for _, e := range p.entries {
		if slices.Contains(names, e.Name) {
			continue
		}
		out.entries = append(out.entries, e)
	}
	return out
}

// URLValues returns the text values as url.Values.
func (p Payload) URLValues() url.Values {
	values := make(url.Values, len(p.entries))
	for _, e := range p.entries {
		if e.File == nil {
			values.Add(e.Name, e.Value)
		}
	}
	return values
}

// Tree expands field names into a nested structure. Dotted segments become
// map[string]any, indexed segments become []any, and a name submitted more
// than once yields a []any of its values. Files are stored as
// *multipart.FileHeader.
//
//	New("kv.key", "a", "tags[1]", "x").Tree()
//	// map[string]any{"kv": map[string]any{"key": "a"}, "tags": []any{nil, "x"}}
func (p Payload) Tree() map[string]any {
	root := map[string]any{}
	counts := make(map[string]int, len(p.entries))
	for _, e := range p.entries {
		counts[e.Name]++
	}

	for _, e := range p.entries {
		var v any = e.Value
		if e.File != nil {
			v = e.File
		}
		segments := formpath.Parse(e.Name)
		if len(segments) == 0 {
			continue
		}
		if _, ok := segments[0].(string); !ok || !indexesInRange(segments) {
			continue
		}
		if counts[e.Name] > 1 {
			existing, _ := lookup(root, segments).([]any)
			v = append(existing, v)
		}
		root = assign(root, segments, v).(map[string]any)
	}
	return root
}

// maxTreeIndex bounds slice growth for names like "items[999999999]".
const maxTreeIndex = 10_000

func indexesInRange(segments []any) bool {
	for _, seg := range segments {
		if i, ok := seg.(int); ok && i > maxTreeIndex {
			return false
		}
	}
	return true
}

func lookup(node any, segments []any) any {
	for _, seg := range segments {
		switch key := seg.(type) {
		case string:
			m, ok := node.(map[string]any)
			if !ok {
				return nil
			}
			node = m[key]
		case int:
			s, ok := node.([]any)
			if !ok || key >= len(s) {
				return nil
			}
			node = s[key]
		}
	}
	return node
}

// assign sets v at segments under node and returns the (possibly replaced) node.
func assign(node any, segments []any, v any) any {
	if len(segments) == 0 {
		return v
	}
	switch key := segments[0].(type) {
	case int:
		s, _ := node.([]any)
		for len(s) <= key {
			s = append(s, nil)
		}
		s[key] = assign(s[key], segments[1:], v)
		return s
	default:
		m, ok := node.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		name, _ := key.(string)
		m[name] = assign(m[name], segments[1:], v)
		return m
	}
}
