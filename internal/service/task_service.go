package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask persists a new task. The completed flag of in is ignored;
	// new tasks are always incomplete. Every failure matches ErrTaskCreation.
	CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error)

	// UpdateTask replaces title, description and completed of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error)

	// ToggleTaskCompletion flips the completed flag of a task.
	// Returns ErrTaskNotFound if the task does not exist.
	ToggleTaskCompletion(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// GetAllTasks returns every task ordered by creation time.
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTaskByID looks a task up. A missing task is reported with
	// found == false and a nil error.
	GetTaskByID(ctx context.Context, id int64) (task *domain.Task, found bool, err error)

	// GetTasksByStatus returns the tasks with the given completed flag.
	GetTasksByStatus(ctx context.Context, completed bool) ([]*domain.Task, error)

	GetTaskCount(ctx context.Context) (int64, error)
	GetCompletedTaskCount(ctx context.Context) (int64, error)
	GetPendingTaskCount(ctx context.Context) (int64, error)

	// GetTaskStats returns total, completed and pending counts read in one transaction.
	GetTaskStats(ctx context.Context) (*domain.TaskStats, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(in)
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "invalid task", joinCreation(err))
	}

	saved, err := s.taskStore.Save(ctx, task)
	if err != nil {
		log.Error("failed to save new task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", joinCreation(err))
	}

	log.Debug("task created", slog.Int64("task_id", saved.ID))
	return saved, nil
}

// joinCreation keeps both ErrTaskCreation and the cause in the error chain.
func joinCreation(err error) error {
	return errors.Join(ErrTaskCreation, err)
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error) {
	var updated *domain.Task

	err := s.taskStore.InTx(ctx, func(txStore store.TaskStore) error {
		task, err := txStore.FindByID(ctx, id)
		if err != nil {
			return err
		}

		task.Replace(in)

		updated, err = txStore.Save(ctx, task)
		return err
	})
	if err != nil {
		return nil, s.wrapTaskError(ctx, "update_task", id, err)
	}

	return updated, nil
}

// ToggleTaskCompletion implements TaskService.ToggleTaskCompletion
func (s *taskServiceImpl) ToggleTaskCompletion(ctx context.Context, id int64) (*domain.Task, error) {
	var updated *domain.Task

	err := s.taskStore.InTx(ctx, func(txStore store.TaskStore) error {
		task, err := txStore.FindByID(ctx, id)
		if err != nil {
			return err
		}

		task.ToggleCompletion()

		updated, err = txStore.Save(ctx, task)
		return err
	})
	if err != nil {
		return nil, s.wrapTaskError(ctx, "toggle_task", id, err)
	}

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	err := s.taskStore.InTx(ctx, func(txStore store.TaskStore) error {
		exists, err := txStore.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrTaskNotFound
		}

		return txStore.DeleteByID(ctx, id)
	})
	if err != nil {
		return s.wrapTaskError(ctx, "delete_task", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

// GetAllTasks implements TaskService.GetAllTasks
func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindAll(ctx)
	if err != nil {
		return nil, NewTaskServiceError("get_all_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTaskByID implements TaskService.GetTaskByID
func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	task, err := s.taskStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, true, nil
}

// GetTasksByStatus implements TaskService.GetTasksByStatus
func (s *taskServiceImpl) GetTasksByStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindByCompleted(ctx, completed)
	if err != nil {
		return nil, NewTaskServiceError("get_tasks_by_status", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTaskCount implements TaskService.GetTaskCount
func (s *taskServiceImpl) GetTaskCount(ctx context.Context) (int64, error) {
	count, err := s.taskStore.Count(ctx)
	if err != nil {
		return 0, NewTaskServiceError("count_tasks", "failed to count tasks", err)
	}
	return count, nil
}

// GetCompletedTaskCount implements TaskService.GetCompletedTaskCount
func (s *taskServiceImpl) GetCompletedTaskCount(ctx context.Context) (int64, error) {
	count, err := s.taskStore.CountByCompleted(ctx, true)
	if err != nil {
		return 0, NewTaskServiceError("count_completed_tasks", "failed to count tasks", err)
	}
	return count, nil
}

// GetPendingTaskCount implements TaskService.GetPendingTaskCount
func (s *taskServiceImpl) GetPendingTaskCount(ctx context.Context) (int64, error) {
	count, err := s.taskStore.CountByCompleted(ctx, false)
	if err != nil {
		return 0, NewTaskServiceError("count_pending_tasks", "failed to count tasks", err)
	}
	return count, nil
}

// GetTaskStats implements TaskService.GetTaskStats
func (s *taskServiceImpl) GetTaskStats(ctx context.Context) (*domain.TaskStats, error) {
	var stats domain.TaskStats

	err := s.taskStore.InTx(ctx, func(txStore store.TaskStore) error {
		var err error
		if stats.TotalTasks, err = txStore.Count(ctx); err != nil {
			return err
		}
		if stats.CompletedTasks, err = txStore.CountByCompleted(ctx, true); err != nil {
			return err
		}
		stats.PendingTasks, err = txStore.CountByCompleted(ctx, false)
		return err
	})
	if err != nil {
		return nil, NewTaskServiceError("get_task_stats", "failed to count tasks", err)
	}

	return &stats, nil
}

// wrapTaskError converts store errors for a single task into service errors.
// A missing task becomes ErrTaskNotFound; anything else is wrapped.
func (s *taskServiceImpl) wrapTaskError(ctx context.Context, operation string, id int64, err error) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if errors.Is(err, store.ErrNotFound) {
		log.Debug("task not found",
			slog.String("operation", operation),
			slog.Int64("task_id", id))
		return ErrTaskNotFound
	}

	if errors.Is(err, domain.ErrValidation) {
		log.Debug("task validation failed",
			slog.String("operation", operation),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
	} else {
		log.Error("task operation failed",
			slog.String("operation", operation),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
	}

	return NewTaskServiceError(operation, "failed to process task", err)
}
