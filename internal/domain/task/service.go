package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkeller/planboard/internal/domain/activity"
	"github.com/dkeller/planboard/internal/repository"
)

// Service handles task business logic.
type Service struct {
	tasks      Repository
	projects   ProjectRepository
	activities ActivityRepository
	roster     []string
	logger     *slog.Logger
}

// NewService creates a new task service. An empty roster disables assignee
// validation.
func NewService(
	tasks Repository,
	projects ProjectRepository,
	activities ActivityRepository,
	roster []string,
	logger *slog.Logger,
) *Service {
	return &Service{
		tasks:      tasks,
		projects:   projects,
		activities: activities,
		roster:     roster,
		logger:     logger,
	}
}

// CreateRequest describes a task creation request.
type CreateRequest struct {
	ID           string
	ProjectID    string
	Title        string
	Status       Status
	Assignee     string
	StartDate    time.Time
	EndDate      time.Time
	DependencyID *string
}

// UpdateRequest describes a task update request. Nil fields keep their
// current value; an empty DependencyID string clears the dependency.
type UpdateRequest struct {
	ID           string
	Title        *string
	Status       *Status
	Assignee     *string
	StartDate    *time.Time
	EndDate      *time.Time
	DependencyID *string
}

// Create validates and persists a new task.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Task, error) {
	if err := ValidateInput(req); err != nil {
		return nil, err
	}
	if err := ValidateAssignee(req.Assignee, s.roster); err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	if _, err := s.projects.Get(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	if err := s.checkDependency(ctx, id, req.DependencyID); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Task{
		ID:           id,
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Status:       req.Status,
		Assignee:     req.Assignee,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DependencyID: req.DependencyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logActivity(ctx, t.ProjectID, t.ID, activity.TypeTaskCreated,
		fmt.Sprintf("created task %q", t.Title))

	return t, nil
}

// Update modifies an existing task. Unset fields are left unchanged.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Task, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.tasks.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.Assignee != nil {
		updated.Assignee = *req.Assignee
	}
	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if req.DependencyID != nil {
		if *req.DependencyID == "" {
			updated.DependencyID = nil
		} else {
			updated.DependencyID = req.DependencyID
		}
	}

	if err := ValidateInput(CreateRequest{
		ProjectID: updated.ProjectID,
		Title:     updated.Title,
		Status:    updated.Status,
		Assignee:  updated.Assignee,
		StartDate: updated.StartDate,
		EndDate:   updated.EndDate,
	}); err != nil {
		return nil, err
	}
	if err := ValidateAssignee(updated.Assignee, s.roster); err != nil {
		return nil, err
	}
	if err := s.checkDependency(ctx, updated.ID, updated.DependencyID); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}

	s.logActivity(ctx, updated.ProjectID, updated.ID, activity.TypeTaskUpdated,
		fmt.Sprintf("updated task %q", updated.Title))

	return &updated, nil
}

// Delete removes a task. Any other task depending on it has its dependency
// reference cleared in the same mutation.
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("loading task: %w", err)
	}

	cleared, err := s.tasks.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}

	summary := fmt.Sprintf("deleted task %q", current.Title)
	if cleared > 0 {
		summary = fmt.Sprintf("deleted task %q, cleared %d dependency reference(s)", current.Title, cleared)
	}
	s.logActivity(ctx, current.ProjectID, id, activity.TypeTaskDeleted, summary)

	return nil
}

// Get returns a task by ID.
func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// List returns tasks based on options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Task, error) {
	return s.tasks.List(ctx, opts)
}

func (s *Service) checkDependency(ctx context.Context, taskID string, dependencyID *string) error {
	if dependencyID == nil {
		return nil
	}
	if *dependencyID == taskID {
		return ErrSelfDependency
	}
	if _, err := s.tasks.Get(ctx, *dependencyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDependencyNotFound
		}
		return fmt.Errorf("loading dependency: %w", err)
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, projectID, taskID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, &activity.Entry{
		ProjectID: projectID,
		TaskID:    &taskID,
		Type:      typ,
		Summary:   summary,
		CreatedAt: time.Now(),
	})
}
