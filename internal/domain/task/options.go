package task

// ListOptions scopes a task listing. Status, assignee, text, and date-range
// filtering happen in the timeline filter pipeline, not in the repository.
type ListOptions struct {
	ProjectID string
	Limit     int
	Offset    int
}
