package mocks

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockTaskService implements service.TaskService for testing.
// Methods whose function field is nil return zero values.
type MockTaskService struct {
	CreateTaskFn            func(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	UpdateTaskFn            func(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error)
	ToggleTaskCompletionFn  func(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTaskFn            func(ctx context.Context, id int64) error
	GetAllTasksFn           func(ctx context.Context) ([]*domain.Task, error)
	GetTaskByIDFn           func(ctx context.Context, id int64) (*domain.Task, bool, error)
	GetTasksByStatusFn      func(ctx context.Context, completed bool) ([]*domain.Task, error)
	GetTaskCountFn          func(ctx context.Context) (int64, error)
	GetCompletedTaskCountFn func(ctx context.Context) (int64, error)
	GetPendingTaskCountFn   func(ctx context.Context) (int64, error)
	GetTaskStatsFn          func(ctx context.Context) (*domain.TaskStats, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements the TaskService interface
func (m *MockTaskService) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, in)
	}
	return nil, nil
}

// UpdateTask implements the TaskService interface
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, in)
	}
	return nil, nil
}

// ToggleTaskCompletion implements the TaskService interface
func (m *MockTaskService) ToggleTaskCompletion(ctx context.Context, id int64) (*domain.Task, error) {
	if m.ToggleTaskCompletionFn != nil {
		return m.ToggleTaskCompletionFn(ctx, id)
	}
	return nil, nil
}

// DeleteTask implements the TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}

// GetAllTasks implements the TaskService interface
func (m *MockTaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.GetAllTasksFn != nil {
		return m.GetAllTasksFn(ctx)
	}
	return nil, nil
}

// GetTaskByID implements the TaskService interface
func (m *MockTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	if m.GetTaskByIDFn != nil {
		return m.GetTaskByIDFn(ctx, id)
	}
	return nil, false, nil
}

// GetTasksByStatus implements the TaskService interface
func (m *MockTaskService) GetTasksByStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	if m.GetTasksByStatusFn != nil {
		return m.GetTasksByStatusFn(ctx, completed)
	}
	return nil, nil
}

// GetTaskCount implements the TaskService interface
func (m *MockTaskService) GetTaskCount(ctx context.Context) (int64, error) {
	if m.GetTaskCountFn != nil {
		return m.GetTaskCountFn(ctx)
	}
	return 0, nil
}

// GetCompletedTaskCount implements the TaskService interface
func (m *MockTaskService) GetCompletedTaskCount(ctx context.Context) (int64, error) {
	if m.GetCompletedTaskCountFn != nil {
		return m.GetCompletedTaskCountFn(ctx)
	}
	return 0, nil
}

// GetPendingTaskCount implements the TaskService interface
func (m *MockTaskService) GetPendingTaskCount(ctx context.Context) (int64, error) {
	if m.GetPendingTaskCountFn != nil {
		return m.GetPendingTaskCountFn(ctx)
	}
	return 0, nil
}

// GetTaskStats implements the TaskService interface
func (m *MockTaskService) GetTaskStats(ctx context.Context) (*domain.TaskStats, error) {
	if m.GetTaskStatsFn != nil {
		return m.GetTaskStatsFn(ctx)
	}
	return &domain.TaskStats{}, nil
}
