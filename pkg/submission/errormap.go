package submission

import "sort"

// ErrorMap maps field names to messages.
//
// A field present with a nil slice has its error suppressed: it is invalid
// but nothing should be shown. A nil ErrorMap suppresses the error state of
// the whole submission.
type ErrorMap map[string][]string

// Suppressed reports whether name is present with no visible messages.
func (m ErrorMap) Suppressed(name string) bool {
	msgs, ok := m[name]
	return ok && msgs == nil
}

// Messages returns the messages for name.
func (m ErrorMap) Messages(name string) []string {
	return m[name]
}

// Has reports whether name has an entry, suppressed or not.
func (m ErrorMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Fields returns the field names in sorted order.
func (m ErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for name := range m {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}
