package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/repository"
)

// TaskRepository implements task.Repository for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, title, status, assignee, start_date, end_date, dependency_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		t.Status,
		t.Assignee,
		t.StartDate,
		t.EndDate,
		t.DependencyID,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Get retrieves a task by ID
func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	query := `
		SELECT id, project_id, title, status, assignee, start_date, end_date, dependency_id, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`

	var t task.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Status,
		&t.Assignee,
		&t.StartDate,
		&t.EndDate,
		&t.DependencyID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &t, nil
}

// Update replaces the stored task with t
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, status = ?, assignee = ?, start_date = ?, end_date = ?, dependency_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Status,
		t.Assignee,
		t.StartDate,
		t.EndDate,
		t.DependencyID,
		t.UpdatedAt,
		t.ID,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the task and clears every dependency reference pointing at
// it, in a single transaction. Returns the number of references cleared.
func (r *TaskRepository) Delete(ctx context.Context, id string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	clearQuery := `
		UPDATE tasks
		SET dependency_id = NULL
		WHERE dependency_id = ?
	`

	result, err := tx.ExecContext(ctx, clearQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to clear dependency references: %w", err)
	}

	cleared, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	deleteQuery := `
		DELETE FROM tasks
		WHERE id = ?
	`

	result, err = tx.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if deleted == 0 {
		return 0, repository.ErrNotFound
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return int(cleared), nil
}

// List returns tasks, optionally scoped to a project. Ordering is stable by
// start date so timeline rows render deterministically.
func (r *TaskRepository) List(ctx context.Context, opts task.ListOptions) ([]task.Task, error) {
	query := `
		SELECT id, project_id, title, status, assignee, start_date, end_date, dependency_id, created_at, updated_at
		FROM tasks
	`

	var args []any
	if opts.ProjectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, opts.ProjectID)
	}

	query += ` ORDER BY start_date ASC, created_at ASC`

	if opts.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Title,
			&t.Status,
			&t.Assignee,
			&t.StartDate,
			&t.EndDate,
			&t.DependencyID,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}
