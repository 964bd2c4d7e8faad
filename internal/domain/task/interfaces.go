package task

import (
	"context"

	"github.com/dkeller/planboard/internal/domain/activity"
	"github.com/dkeller/planboard/internal/domain/project"
)

// Repository provides persistence for tasks.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	Get(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	// Delete removes the task and clears every other task's dependency
	// reference to it, as a single atomic mutation. Returns the number of
	// references cleared.
	Delete(ctx context.Context, id string) (int, error)
	List(ctx context.Context, opts ListOptions) ([]Task, error)
}

// ProjectRepository provides the project lookups the task service needs.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*project.Project, error)
}

// ActivityRepository records task mutations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
