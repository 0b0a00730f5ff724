// Package resolve applies structured requests to the record stores. The four
// resolvers (add, edit, delete, view) own all validation, uniqueness and
// counting rules; the router dispatches classified operations to them and
// composes the user-facing summary.
package resolve

import (
	"fmt"
	"strings"

	"deskmate/internal/store"
)

// Resolver binds the two stores a request can target.
type Resolver struct {
	contacts *store.Store
	tasks    *store.Store
}

func New(contacts, tasks *store.Store) *Resolver {
	return &Resolver{contacts: contacts, tasks: tasks}
}

func (r *Resolver) storeFor(target string) (*store.Store, bool) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "contacts":
		return r.contacts, true
	case "tasks":
		return r.tasks, true
	default:
		return nil, false
	}
}

// stringParam pulls a parameter as a trimmed string; absent or null values
// come back empty. The classifier's JSON may carry numbers (phone numbers,
// typically), so non-strings are stringified.
func stringParam(params map[string]any, key string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// JSON numbers decode as float64; phone digits must not grow a ".0".
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
}

// mapParam pulls a nested mapping parameter (criteria, updates) with every
// value stringified. Absent or malformed values come back as an empty map.
func mapParam(params map[string]any, key string) map[string]string {
	out := map[string]string{}
	nested, ok := params[key].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range nested {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = strings.TrimSpace(s)
		} else {
			out[k] = strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return out
}
