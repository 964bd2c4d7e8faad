package project

import (
	"context"

	"github.com/dkeller/planboard/internal/domain/activity"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Summary, error)
}

// ActivityRepository records project creation.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
