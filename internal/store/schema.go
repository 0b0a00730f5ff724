package store

import "strings"

// Schema is the fixed, ordered column layout of a record store. Records are
// position-aligned to it; field names are matched after normalization so that
// "DueDate", "Due Date" and "duedate" all address the same column.
type Schema struct {
	Name   string
	Fields []string

	index map[string]int
}

// Contact and task layouts match the CSV files on disk.
var (
	Contacts = NewSchema("contacts", "Name", "Phone", "Email", "Address")
	Tasks    = NewSchema("tasks", "Title", "Description", "DueDate", "Status", "AssignedTo")
)

func NewSchema(name string, fields ...string) Schema {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[NormalizeField(f)] = i
	}
	return Schema{Name: name, Fields: fields, index: idx}
}

// NormalizeField lower-cases a field name and strips internal spaces.
func NormalizeField(field string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(field)), " ", "")
}

// Column resolves a (possibly unnormalized) field name to its column index.
func (s Schema) Column(field string) (int, bool) {
	i, ok := s.index[NormalizeField(field)]
	return i, ok
}

func (s Schema) Width() int {
	return len(s.Fields)
}

// Header returns a copy of the field names in column order.
func (s Schema) Header() []string {
	out := make([]string, len(s.Fields))
	copy(out, s.Fields)
	return out
}

// isHeader reports whether a row is the schema's header line.
func (s Schema) isHeader(row []string) bool {
	if len(row) != len(s.Fields) {
		return false
	}
	for i, f := range s.Fields {
		if NormalizeField(row[i]) != NormalizeField(f) {
			return false
		}
	}
	return true
}

// Record is one ordered row of string fields.
type Record []string

// Get returns the field at column i, or "" when the row is short.
func (r Record) Get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	copy(out, r)
	return out
}

// Fit truncates the record to width columns and pads short rows with empty
// strings, trimming surrounding whitespace on every kept field.
func (r Record) Fit(width int) Record {
	out := make(Record, width)
	for i := 0; i < width; i++ {
		if i < len(r) {
			out[i] = strings.TrimSpace(r[i])
		}
	}
	return out
}
