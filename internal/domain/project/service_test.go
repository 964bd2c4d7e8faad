package project_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkeller/planboard/internal/domain/activity"
	"github.com/dkeller/planboard/internal/domain/project"
	"github.com/dkeller/planboard/internal/repository"
	"github.com/dkeller/planboard/internal/repository/mocks"
)

func TestServiceCreate(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := project.NewService(repo, nil, slog.Default())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

	proj, err := svc.Create(ctx, project.CreateRequest{Name: "Launch", Description: "Q2 launch"})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "Launch", proj.Name)
	require.False(t, proj.CreatedAt.IsZero())

	repo.AssertExpectations(t)
}

func TestServiceCreateLogsActivity(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	activityRepo := new(mocks.ActivityRepository)
	svc := project.NewService(repo, activityRepo, slog.Default())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(nil)
	activityRepo.On("Log", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil)

	proj, err := svc.Create(ctx, project.CreateRequest{Name: "Launch"})
	require.NoError(t, err)

	activityRepo.AssertCalled(t, "Log", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Type == activity.TypeProjectCreated && e.ProjectID == proj.ID && !e.CreatedAt.IsZero()
	}))
}

func TestServiceCreateKeepsExplicitID(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := project.NewService(repo, nil, slog.Default())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

	proj, err := svc.Create(ctx, project.CreateRequest{ID: "launch", Name: "Launch"})
	require.NoError(t, err)
	require.Equal(t, "launch", proj.ID)
}

func TestServiceCreateRejectsBlankName(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := project.NewService(repo, nil, slog.Default())

	_, err := svc.Create(context.Background(), project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceGetNotFound(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := project.NewService(repo, nil, slog.Default())
	ctx := context.Background()

	repo.On("Get", ctx, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.Get(ctx, "ghost")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestServiceList(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	svc := project.NewService(repo, nil, slog.Default())
	ctx := context.Background()

	repo.On("List", ctx).Return([]project.Summary{
		{ID: "p1", Name: "Launch", TaskCount: 3, CompletedTasks: 1},
	}, nil)

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, 3, summaries[0].TaskCount)
}
