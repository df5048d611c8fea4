package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/store"
)

// Service errors checked by callers with errors.Is.
//
// Error handling principles:
//  1. Expected conditions are reported with sentinel errors
//  2. Unexpected errors are wrapped in TaskServiceError
//  3. The API layer maps service errors to HTTP status codes
var (
	// ErrTaskNotFound indicates that the targeted task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = fmt.Errorf("%w", store.ErrTaskNotFound)

	// ErrTaskCreation marks every failure raised while creating a task.
	// API layer maps this to HTTP 400 Bad Request regardless of the cause.
	ErrTaskCreation = errors.New("task creation failed")
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
