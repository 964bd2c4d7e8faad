package activity

import "time"

// Type classifies an activity log entry
type Type string

const (
	TypeProjectCreated Type = "project_created"
	TypeTaskCreated    Type = "task_created"
	TypeTaskUpdated    Type = "task_updated"
	TypeTaskDeleted    Type = "task_deleted"
)

// Entry represents one row in the activity log
type Entry struct {
	ID        int64     `json:"id"`
	ProjectID string    `json:"project_id"`
	TaskID    *string   `json:"task_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
