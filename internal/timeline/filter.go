package timeline

import (
	"strings"

	"github.com/dkeller/planboard/internal/domain/task"
)

// Filters holds the view's predicate state. Selections within one set
// combine with OR; an empty set means no filtering on that dimension. Active
// filters combine with AND.
type Filters struct {
	Statuses  []task.Status `json:"statuses,omitempty"`
	Assignees []string      `json:"assignees,omitempty"`
	Search    string        `json:"search,omitempty"`
}

// Apply runs the filter pipeline over tasks: status, assignee, text search,
// then date-range overlap. It is a pure function of its inputs and never
// mutates the input slice.
func Apply(tasks []task.Task, f Filters, dr DateRange) []task.Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchStatus(t, f.Statuses) {
			continue
		}
		if !matchAssignee(t, f.Assignees) {
			continue
		}
		if !matchSearch(t, search) {
			continue
		}
		if !Overlaps(t, dr) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchStatus(t task.Task, statuses []task.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if t.Status == s {
			return true
		}
	}
	return false
}

func matchAssignee(t task.Task, assignees []string) bool {
	if len(assignees) == 0 {
		return true
	}
	for _, a := range assignees {
		if t.Assignee == a {
			return true
		}
	}
	return false
}

func matchSearch(t task.Task, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), search)
}

// Overlaps reports whether the task's date interval intersects the range.
// An absent bound is unbounded on that side.
func Overlaps(t task.Task, dr DateRange) bool {
	if dr.End != nil && Midnight(t.StartDate).After(Midnight(*dr.End)) {
		return false
	}
	if dr.Start != nil && Midnight(t.EndDate).Before(Midnight(*dr.Start)) {
		return false
	}
	return true
}
