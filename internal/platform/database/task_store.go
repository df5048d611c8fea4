package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskColumns = `id, title, description, completed, created_at, updated_at`

// Queries use ? placeholders and are rebound for the connected driver.
const (
	selectAllTasksQuery = `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at ASC, id ASC`

	selectTaskByIDQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	selectTasksByCompletedQuery = `SELECT ` + taskColumns + ` FROM tasks
		WHERE completed = ? ORDER BY created_at ASC, id ASC`

	existsTaskQuery = `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = ?)`

	countTasksQuery = `SELECT COUNT(*) FROM tasks`

	countTasksByCompletedQuery = `SELECT COUNT(*) FROM tasks WHERE completed = ?`

	insertTaskQuery = `INSERT INTO tasks (title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?) RETURNING id`

	updateTaskQuery = `UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ?
		WHERE id = ?`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
)

// taskRow is the database representation of a task.
type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r taskRow) toDomain() *domain.Task {
	task := &domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.Description.Valid {
		description := r.Description.String
		task.Description = &description
	}
	return task
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// now returns the timestamp recorded on saves, truncated to the precision
// both supported databases keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// TaskStore implements the store.TaskStore interface on top of sqlx.
// It works with any driver accepted by Open.
type TaskStore struct {
	db     store.DBTX
	pool   *sqlx.DB // nil when bound to a transaction
	logger *slog.Logger
}

// NewTaskStore creates a TaskStore backed by the connection pool db.
// If logger is nil, a default logger will be used.
func NewTaskStore(db *sqlx.DB, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		pool:   db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// withTx returns a copy of the store that runs every query on tx.
func (s *TaskStore) withTx(tx *sqlx.Tx) *TaskStore {
	return &TaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// InTx implements store.TaskStore.InTx.
func (s *TaskStore) InTx(ctx context.Context, fn func(txStore store.TaskStore) error) error {
	if s.pool == nil {
		return fn(s)
	}

	return store.RunInTransaction(ctx, s.pool, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(s.withTx(tx))
	})
}

// FindAll implements store.TaskStore.FindAll.
func (s *TaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(selectAllTasksQuery)); err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("listed tasks", slog.Int("count", len(rows)))
	return toDomainTasks(rows), nil
}

// FindByID implements store.TaskStore.FindByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row taskRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(selectTaskByIDQuery), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}

		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return row.toDomain(), nil
}

// FindByCompleted implements store.TaskStore.FindByCompleted.
func (s *TaskStore) FindByCompleted(ctx context.Context, completed bool) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []taskRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(selectTasksByCompletedQuery), completed)
	if err != nil {
		log.Error("failed to list tasks by status",
			slog.String("error", err.Error()),
			slog.Bool("completed", completed))
		return nil, MapError(err)
	}

	return toDomainTasks(rows), nil
}

// ExistsByID implements store.TaskStore.ExistsByID.
func (s *TaskStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, s.db.Rebind(existsTaskQuery), id); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check task existence",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return false, MapError(err)
	}
	return exists, nil
}

// Count implements store.TaskStore.Count.
func (s *TaskStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, countTasksQuery); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count tasks",
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return count, nil
}

// CountByCompleted implements store.TaskStore.CountByCompleted.
func (s *TaskStore) CountByCompleted(ctx context.Context, completed bool) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, s.db.Rebind(countTasksByCompletedQuery), completed)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count tasks by status",
			slog.String("error", err.Error()),
			slog.Bool("completed", completed))
		return 0, MapError(err)
	}
	return count, nil
}

// Save implements store.TaskStore.Save.
// Validation errors from the domain Task are returned before the database is touched.
func (s *TaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return nil, fmt.Errorf("%w: task cannot be nil", store.ErrInvalidEntity)
	}

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return nil, err
	}

	if task.IsNew() {
		return s.insert(ctx, log, task)
	}
	return s.update(ctx, log, task)
}

func (s *TaskStore) insert(ctx context.Context, log *slog.Logger, task *domain.Task) (*domain.Task, error) {
	ts := now()

	var id int64
	err := s.db.GetContext(ctx, &id, s.db.Rebind(insertTaskQuery),
		task.Title,
		nullString(task.Description),
		task.Completed,
		ts,
		ts,
	)
	if err != nil {
		log.Error("failed to insert task", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "insert", "failed to insert task", MapError(err))
	}

	saved := *task
	saved.ID = id
	saved.CreatedAt = ts
	saved.UpdatedAt = ts

	log.Info("task created", slog.Int64("task_id", id))
	return &saved, nil
}

func (s *TaskStore) update(ctx context.Context, log *slog.Logger, task *domain.Task) (*domain.Task, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(updateTaskQuery),
		task.Title,
		nullString(task.Description),
		task.Completed,
		now(),
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return nil, store.NewStoreError("task", "update", "failed to update task", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to read update result",
				slog.String("error", err.Error()),
				slog.Int64("task_id", task.ID))
		}
		return nil, err
	}

	log.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.Bool("completed", task.Completed))

	// Re-read so the caller sees the stored created_at and updated_at.
	return s.FindByID(ctx, task.ID)
}

// DeleteByID implements store.TaskStore.DeleteByID.
func (s *TaskStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(deleteTaskQuery), id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "failed to delete task", MapError(err))
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Debug("delete matched no task", slog.Int64("task_id", id))
		return nil
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

func toDomainTasks(rows []taskRow) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks
}
