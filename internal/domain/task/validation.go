package task

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports field-scoped validation failures. It blocks the
// command at the form boundary; invalid tasks never reach the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid task input: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match the package sentinel with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateInput validates the fields required to create or edit a task.
// Returns a *ValidationError listing every failing field, or nil.
func ValidateInput(req CreateRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.ProjectID) == "" {
		fields["project_id"] = "project is required"
	}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "title is required"
	}
	if req.Status == "" {
		fields["status"] = "status is required"
	} else if !req.Status.Valid() {
		fields["status"] = fmt.Sprintf("unknown status %q", req.Status)
	}
	if strings.TrimSpace(req.Assignee) == "" {
		fields["assignee"] = "assignee is required"
	}
	if req.StartDate.IsZero() {
		fields["start_date"] = "start date is required"
	}
	if req.EndDate.IsZero() {
		fields["end_date"] = "end date is required"
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		fields["end_date"] = "end date must be on or after start date"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateAssignee checks the assignee against a fixed roster. An empty
// roster disables the check.
func ValidateAssignee(assignee string, roster []string) error {
	if len(roster) == 0 {
		return nil
	}
	for _, name := range roster {
		if name == assignee {
			return nil
		}
	}
	return &ValidationError{Fields: map[string]string{
		"assignee": fmt.Sprintf("%q is not on the roster", assignee),
	}}
}
