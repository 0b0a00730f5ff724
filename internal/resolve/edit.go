package resolve

import (
	"fmt"
	"strings"

	"deskmate/internal/store"
)

// Edit overwrites the named fields on every record matching criteria and
// rewrites the store. Update keys address schema columns with the same
// normalization as the field matcher, so "Due Date" and "DueDate" are the
// same column. raw feeds the status-update fallback extractor when the
// classifier returned no usable criteria or updates.
func (r *Resolver) Edit(target string, params map[string]any, raw string) Result {
	st, ok := r.storeFor(target)
	if !ok {
		return Result{Status: StatusFailed, Message: "Invalid target"}
	}

	criteria := mapParam(params, "criteria")
	updates := mapParam(params, "updates")
	if len(criteria) == 0 || len(updates) == 0 {
		if fbCriteria, fbUpdates, ok := ExtractStatusEdit(raw); ok {
			criteria, updates = fbCriteria, fbUpdates
		}
	}
	if len(criteria) == 0 || len(updates) == 0 {
		return fail(fmt.Errorf("%w: Missing criteria or updates", ErrValidation))
	}

	rows, err := st.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}

	// Task rows are normalized to schema width before matching: columns past
	// the fifth are dropped and short rows padded. Contact rows keep whatever
	// width the file had.
	isTasks := st == r.tasks
	if isTasks {
		for i, row := range rows {
			rows[i] = row.Fit(st.Schema.Width())
		}
	}

	updated := 0
	out := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		if store.Matches(row, st.Schema, criteria) {
			out = append(out, applyUpdates(row, st.Schema, updates))
			updated++
		} else {
			out = append(out, row)
		}
	}
	if updated == 0 {
		return fail(fmt.Errorf("%w: No matching %s found", ErrNotFound, st.Schema.Name))
	}
	if err := st.ReplaceAll(out); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	return success("Updated %d %s", updated, st.Schema.Name)
}

// applyUpdates overwrites only the columns named in updates, leaving every
// other column untouched. Columns beyond the row's actual width are skipped
// rather than grown.
func applyUpdates(row store.Record, schema store.Schema, updates map[string]string) store.Record {
	out := row.Clone()
	for field, value := range updates {
		col, ok := schema.Column(field)
		if !ok || col >= len(out) {
			continue
		}
		out[col] = strings.TrimSpace(value)
	}
	return out
}
