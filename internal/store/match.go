package store

import "strings"

// Matches reports whether rec satisfies every entry in criteria against the
// schema. Field names and values are compared after trimming and
// lower-casing. A criteria key that names no schema column fails the whole
// match: unknown fields never act as wildcards. Empty criteria matches every
// record.
func Matches(rec Record, schema Schema, criteria map[string]string) bool {
	for field, want := range criteria {
		col, ok := schema.Column(field)
		if !ok {
			return false
		}
		if col >= len(rec) {
			return false
		}
		got := strings.ToLower(strings.TrimSpace(rec[col]))
		if got != strings.ToLower(strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}
