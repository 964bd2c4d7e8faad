package activity

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	ProjectID string
	TaskID    *string
	Limit     int
	Offset    int
}
