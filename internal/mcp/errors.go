package mcp

import (
	"errors"
	"fmt"

	"github.com/dkeller/planboard/internal/domain/project"
	"github.com/dkeller/planboard/internal/domain/task"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var verr *task.ValidationError
	if errors.As(err, &verr) {
		return &APIError{
			Code:         "VALIDATION_FAILED",
			Message:      "task input failed validation",
			Details:      verr.Fields,
			RecoveryHint: "Fix the listed fields and retry",
		}
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return &APIError{Code: "TASK_NOT_FOUND", Message: "task not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, task.ErrProjectNotFound), errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects to see valid IDs"}
	case errors.Is(err, task.ErrDependencyNotFound):
		return &APIError{Code: "DEPENDENCY_NOT_FOUND", Message: "dependency task not found", RecoveryHint: "Create the dependency first or omit it"}
	case errors.Is(err, task.ErrSelfDependency):
		return &APIError{Code: "SELF_DEPENDENCY", Message: "a task cannot depend on itself", RecoveryHint: "Pick a different dependency"}
	case errors.Is(err, task.ErrInvalidInput), errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}
