package resolve

import (
	"fmt"
	"strings"

	"deskmate/internal/dates"
	"deskmate/internal/store"
)

const (
	defaultTaskStatus   = "on going"
	defaultTaskAssignee = "None"
)

// Add validates the parameters for the target schema and appends one record.
// raw is the original command text, used only by the contact fallback
// extractor when the structured parameters are incomplete.
func (r *Resolver) Add(target string, params map[string]any, raw string) Result {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "contacts":
		return r.addContact(params, raw)
	case "tasks":
		return r.addTask(params)
	default:
		return Result{Status: StatusFailed, Message: "Invalid target."}
	}
}

func (r *Resolver) addContact(params map[string]any, raw string) Result {
	name := stringParam(params, "Name")
	phone := stringParam(params, "Phone")
	email := stringParam(params, "Email")
	address := stringParam(params, "Address")

	// Recovery heuristic: a literal "add contact NAME, PHONE, EMAIL[, ADDRESS]"
	// command fills in whatever the classifier dropped.
	if name == "" || phone == "" || email == "" {
		if fb, ok := ExtractContactAdd(raw); ok {
			name = fb["Name"]
			phone = fb["Phone"]
			email = fb["Email"]
			if a, ok := fb["Address"]; ok {
				address = a
			}
		}
	}

	if name == "" || phone == "" || email == "" {
		return fail(fmt.Errorf("%w: Name, Phone and Email are required", ErrValidation))
	}

	existing, err := r.contacts.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	for _, row := range existing {
		if phone == row.Get(1) {
			return fail(fmt.Errorf("%w: Phone number exists", ErrDuplicate))
		}
		if strings.EqualFold(email, row.Get(2)) {
			return fail(fmt.Errorf("%w: Email exists", ErrDuplicate))
		}
	}

	if err := r.contacts.Append(store.Record{name, phone, email, address}); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	return success("Contact added")
}

func (r *Resolver) addTask(params map[string]any) Result {
	title := stringParam(params, "Title")
	description := stringParam(params, "Description")
	dueDate := stringParam(params, "DueDate")
	status := stringParam(params, "Status")
	assignedTo := stringParam(params, "AssignedTo")

	if title == "" {
		return fail(fmt.Errorf("%w: Task Title is required", ErrValidation))
	}
	if status == "" {
		status = defaultTaskStatus
	}
	if assignedTo == "" {
		assignedTo = defaultTaskAssignee
	}
	if dueDate != "" {
		dueDate = dates.Normalize(dueDate)
	}

	existing, err := r.tasks.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	for _, row := range existing {
		if strings.EqualFold(title, row.Get(0)) {
			return fail(fmt.Errorf("%w: Task title exists", ErrDuplicate))
		}
	}

	if !strings.EqualFold(assignedTo, "none") {
		found, err := r.contactExists(assignedTo)
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrStorage, err))
		}
		if !found {
			return fail(fmt.Errorf("%w: Assigned contact '%s' not found", ErrReference, assignedTo))
		}
	}

	rec := store.Record{title, description, dueDate, status, assignedTo}
	if err := r.tasks.Append(rec); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrStorage, err))
	}
	return success("Task added")
}

func (r *Resolver) contactExists(name string) (bool, error) {
	rows, err := r.contacts.Load()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Get(0)), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}
