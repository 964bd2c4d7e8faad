package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrProjectNotFound indicates the owning project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDependencyNotFound indicates the dependency references a missing task.
	ErrDependencyNotFound = errors.New("dependency task not found")
	// ErrSelfDependency indicates a task references itself as its dependency.
	ErrSelfDependency = errors.New("task cannot depend on itself")
	// ErrInvalidInput indicates invalid task input.
	ErrInvalidInput = errors.New("invalid task input")
)
