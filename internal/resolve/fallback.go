package resolve

import (
	"regexp"
	"strings"
)

// Fallback extractors recover structured criteria and updates from the raw
// command when the classifier's output is incomplete. They are recovery
// heuristics, not primary contracts: each one only fires on its literal
// syntax.

var (
	markTaskPattern     = regexp.MustCompile(`(?i)mark\s+task\s+['"](.*?)['"]\s+as\s+(\w+)`)
	updateStatusPattern = regexp.MustCompile(`(?i)update\s+status\s+of\s+['"](.*?)['"]\s+to\s+(\w+)`)
)

// ExtractContactAdd reconstructs Name/Phone/Email (and optionally Address)
// from a comma-separated "add contact NAME, PHONE, EMAIL[, ADDRESS]" command.
func ExtractContactAdd(raw string) (map[string]string, bool) {
	const prefix = "add contact"
	if !strings.HasPrefix(strings.ToLower(raw), prefix) {
		return nil, false
	}
	content := strings.TrimSpace(raw[len(prefix):])
	var parts []string
	for _, p := range strings.Split(content, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 3 {
		return nil, false
	}
	fields := map[string]string{
		"Name":  parts[0],
		"Phone": parts[1],
		"Email": parts[2],
	}
	if len(parts) >= 4 {
		fields["Address"] = parts[3]
	}
	return fields, true
}

// ExtractStatusEdit recognizes "mark task '<title>' as <status>" and
// "update status of '<title>' to <status>" and synthesizes the
// criteria/updates pair for a task status edit.
func ExtractStatusEdit(raw string) (criteria, updates map[string]string, ok bool) {
	for _, pattern := range []*regexp.Regexp{markTaskPattern, updateStatusPattern} {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			criteria = map[string]string{"Title": strings.TrimSpace(m[1])}
			updates = map[string]string{"Status": strings.TrimSpace(m[2])}
			return criteria, updates, true
		}
	}
	return nil, nil, false
}

// ExtractDeleteCriteria pulls deletion criteria out of a raw delete command.
// "... where <field> is <value>" names the field explicitly (with synonym
// mapping per target); a bare three-token "delete task '<value>'" or
// "delete contact '<value>'" defaults to Title or Name respectively.
func ExtractDeleteCriteria(raw, target string) map[string]string {
	lower := strings.ToLower(raw)
	if i := strings.Index(lower, " where "); i >= 0 {
		rest := raw[i+len(" where "):]
		j := strings.Index(strings.ToLower(rest), " is ")
		if j < 0 {
			return nil
		}
		field := strings.ReplaceAll(strings.TrimSpace(rest[:j]), " ", "")
		value := strings.Trim(strings.TrimSpace(rest[j+len(" is "):]), `'"`)
		switch {
		case target == "contacts" && (strings.EqualFold(field, "mail") || strings.EqualFold(field, "email")):
			field = "Email"
		case target == "tasks" && (strings.EqualFold(field, "task") || strings.EqualFold(field, "name") || strings.EqualFold(field, "tittle")):
			field = "Title"
		default:
			field = capitalize(field)
		}
		if field == "" || value == "" {
			return nil
		}
		return map[string]string{field: value}
	}

	tokens := strings.Fields(raw)
	if len(tokens) != 3 {
		return nil
	}
	value := strings.Trim(tokens[2], `'"`)
	if value == "" {
		return nil
	}
	switch target {
	case "tasks":
		return map[string]string{"Title": value}
	case "contacts":
		return map[string]string{"Name": value}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
