package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits for a Task.
const (
	MaxTaskTitleLength       = 255
	MaxTaskDescriptionLength = 1000
)

// Task-specific validation errors
var (
	// ErrTaskTitleEmpty is returned when a task title is empty or only whitespace.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task title exceeds MaxTaskTitleLength.
	ErrTaskTitleTooLong = errors.New("task title is too long")

	// ErrTaskDescriptionTooLong is returned when a description exceeds MaxTaskDescriptionLength.
	ErrTaskDescriptionTooLong = errors.New("task description is too long")
)

// Task is a single to-do item.
// ID and CreatedAt are assigned by the store when the task is first saved
// and never change afterwards.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskInput carries the caller-controlled fields of a task.
type TaskInput struct {
	Title       string
	Description *string
	Completed   bool
}

// TaskStats holds aggregate task counts.
type TaskStats struct {
	TotalTasks     int64
	CompletedTasks int64
	PendingTasks   int64
}

// NewTask builds an unsaved task from input. New tasks always start
// incomplete, whatever the input says.
func NewTask(in TaskInput) (*Task, error) {
	task := &Task{
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrTaskTitleEmpty)
	}

	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return NewValidationError("title", "is too long", ErrTaskTitleTooLong)
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > MaxTaskDescriptionLength {
		return NewValidationError("description", "is too long", ErrTaskDescriptionTooLong)
	}

	return nil
}

// Replace overwrites title, description and completion state with the input.
// It is a full replace: a nil description in the input clears the description.
func (t *Task) Replace(in TaskInput) {
	t.Title = in.Title
	t.Description = in.Description
	t.Completed = in.Completed
}

// ToggleCompletion flips the completed flag.
func (t *Task) ToggleCompletion() {
	t.Completed = !t.Completed
}

// IsNew reports whether the task has not been persisted yet.
func (t *Task) IsNew() bool {
	return t.ID == 0
}
