package cli

import (
	"strings"
	"text/tabwriter"

	"deskmate/internal/store"
)

// renderTable lays view data out as an aligned text table. Column order
// follows whichever schema the rows belong to, inferred from the field names.
func renderTable(data []map[string]string) string {
	if len(data) == 0 {
		return ""
	}
	schema := schemaForRow(data[0])

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	header := make([]string, 0, schema.Width())
	for _, f := range schema.Fields {
		header = append(header, strings.ToUpper(f))
	}
	line := func(cols []string) string { return strings.Join(cols, "\t") + "\n" }
	_, _ = w.Write([]byte(line(header)))
	for _, row := range data {
		cols := make([]string, 0, schema.Width())
		for _, f := range schema.Fields {
			cols = append(cols, row[f])
		}
		_, _ = w.Write([]byte(line(cols)))
	}
	_ = w.Flush()
	return dimStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func schemaForRow(row map[string]string) store.Schema {
	if _, ok := row["Title"]; ok {
		return store.Tasks
	}
	return store.Contacts
}
