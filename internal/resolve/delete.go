package resolve

import (
	"fmt"

	"deskmate/internal/store"
)

// Delete removes every record matching criteria and rewrites the store. When
// the classifier supplied no criteria, the where/is fallback extractor has a
// go at the raw command first.
func (r *Resolver) Delete(target string, params map[string]any, raw string) Result {
	st, ok := r.storeFor(target)
	if !ok {
		return Result{Status: StatusFailed, Message: "Invalid target. Choose 'contacts' or 'tasks'."}
	}

	criteria := mapParam(params, "criteria")
	if len(criteria) == 0 {
		criteria = ExtractDeleteCriteria(raw, st.Schema.Name)
	}
	if len(criteria) == 0 {
		return fail(fmt.Errorf("%w: No deletion criteria provided.", ErrValidation))
	}

	rows, err := st.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}

	kept := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		if !store.Matches(row, st.Schema, criteria) {
			kept = append(kept, row)
		}
	}
	removed := len(rows) - len(kept)
	if removed == 0 {
		return fail(fmt.Errorf("%w: No matching %s found.", ErrNotFound, st.Schema.Name))
	}
	if err := st.ReplaceAll(kept); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	if st.Schema.Name == "contacts" {
		return success("Deleted %d contact(s).", removed)
	}
	return success("Deleted %d task(s).", removed)
}
