package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkeller/planboard/internal/domain/project"
	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/repository"
)

func TestProjectRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID:          "p1",
		Name:        "Test Project",
		Description: "A test project",
		CreatedAt:   time.Now(),
	}

	err := repo.Create(ctx, proj)
	require.NoError(t, err)

	// Verify it was created
	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.ID, retrieved.ID)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.Description, retrieved.Description)
}

func TestProjectRepository_Get(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID:        "p1",
		Name:      "Test Project",
		CreatedAt: time.Now(),
	}
	err := repo.Create(ctx, proj)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	require.Equal(t, "p1", retrieved.ID)

	// Try to get non-existent project
	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	proj1 := &project.Project{
		ID:        "p1",
		Name:      "Project 1",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	err := repo.Create(ctx, proj1)
	require.NoError(t, err)

	proj2 := &project.Project{
		ID:        "p2",
		Name:      "Project 2",
		CreatedAt: time.Now(),
	}
	err = repo.Create(ctx, proj2)
	require.NoError(t, err)

	// Two tasks on p1, one of them completed
	t1 := testTask("t1", "p1")
	t1.Status = task.StatusCompleted
	err = taskRepo.Create(ctx, t1)
	require.NoError(t, err)
	err = taskRepo.Create(ctx, testTask("t2", "p1"))
	require.NoError(t, err)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Ordered by created_at DESC (newest first)
	require.Equal(t, "p2", summaries[0].ID)
	require.Equal(t, "p1", summaries[1].ID)

	require.Equal(t, 0, summaries[0].TaskCount)
	require.Equal(t, 2, summaries[1].TaskCount)
	require.Equal(t, 1, summaries[1].CompletedTasks)
}
