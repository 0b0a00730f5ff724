package resolve

import (
	"fmt"
	"sort"
	"strings"

	"deskmate/internal/store"
)

// View filters, optionally sorts, and returns matching records as field→value
// mappings. Empty criteria means every record; an empty filtered set is a
// "no matching records" failure even when the store itself is non-empty.
// View never mutates the store.
func (r *Resolver) View(target string, params map[string]any) Result {
	st, ok := r.storeFor(target)
	if !ok {
		return Result{Status: StatusFailed, Message: "Invalid target"}
	}

	criteria := mapParam(params, "criteria")

	rows, err := st.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}

	matching := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		if store.Matches(row, st.Schema, criteria) {
			matching = append(matching, row)
		}
	}

	if sortBy := stringParam(params, "sort_by"); sortBy != "" {
		sortRecords(matching, st.Schema, sortBy, stringParam(params, "order"))
	}

	if len(matching) == 0 {
		return fail(fmt.Errorf("%w: No matching records found", ErrNotFound))
	}

	data := make([]map[string]string, 0, len(matching))
	for _, row := range matching {
		entry := make(map[string]string, st.Schema.Width())
		for i, field := range st.Schema.Fields {
			if i >= len(row) {
				break
			}
			entry[field] = row[i]
		}
		data = append(data, entry)
	}
	return Result{Status: StatusSuccess, Data: data}
}

// sortRecords orders records by the named field, case-insensitive lexical,
// ascending unless order is "desc". The sort is stable so ties keep their
// input order; an unknown sort field leaves the order untouched.
func sortRecords(recs []store.Record, schema store.Schema, field, order string) {
	col, ok := schema.Column(field)
	if !ok {
		return
	}
	desc := strings.EqualFold(strings.TrimSpace(order), "desc")
	sort.SliceStable(recs, func(i, j int) bool {
		a := strings.ToLower(recs[i].Get(col))
		b := strings.ToLower(recs[j].Get(col))
		if desc {
			return a > b
		}
		return a < b
	})
}
