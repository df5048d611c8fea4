package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// FindAll returns every task ordered by creation time, oldest first.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// FindByCompleted returns the tasks whose completed flag equals completed,
	// ordered by creation time, oldest first.
	FindByCompleted(ctx context.Context, completed bool) ([]*domain.Task, error)

	// ExistsByID reports whether a task with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Count returns the total number of tasks.
	Count(ctx context.Context) (int64, error)

	// CountByCompleted returns the number of tasks with the given completed flag.
	CountByCompleted(ctx context.Context, completed bool) (int64, error)

	// Save inserts the task when it has no ID yet, otherwise it overwrites
	// title, description and completed of the stored row. CreatedAt is never
	// modified by an update.
	// Returns the persisted task with ID and timestamps populated.
	// Returns ErrTaskNotFound when updating a task that no longer exists.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// DeleteByID removes the task with the given ID.
	// Deleting a missing task is a no-op; callers check existence first.
	DeleteByID(ctx context.Context, id int64) error

	// InTx runs fn with a TaskStore bound to a single transaction.
	// The transaction is committed when fn returns nil and rolled back otherwise.
	// Calling InTx on a store that is already transactional reuses the transaction.
	InTx(ctx context.Context, fn func(txStore TaskStore) error) error
}
