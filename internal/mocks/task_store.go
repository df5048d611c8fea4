package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Without function overrides it behaves like an in-memory store.
type MockTaskStore struct {
	// Function fields for customizable behavior
	FindAllFn          func(ctx context.Context) ([]*domain.Task, error)
	FindByIDFn         func(ctx context.Context, id int64) (*domain.Task, error)
	FindByCompletedFn  func(ctx context.Context, completed bool) ([]*domain.Task, error)
	ExistsByIDFn       func(ctx context.Context, id int64) (bool, error)
	CountFn            func(ctx context.Context) (int64, error)
	CountByCompletedFn func(ctx context.Context, completed bool) (int64, error)
	SaveFn             func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DeleteByIDFn       func(ctx context.Context, id int64) error
	InTxFn             func(ctx context.Context, fn func(txStore store.TaskStore) error) error

	// Data for default implementation
	Tasks   map[int64]*domain.Task
	NextID  int64
	Now     func() time.Time
	SaveErr error

	// Call tracking
	SaveCalls   []*domain.Task
	DeleteCalls []int64
	TxCalls     int

	mu sync.Mutex
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

// Seed stores copies of tasks as if they had been saved, keeping their IDs
// and timestamps.
func (m *MockTaskStore) Seed(tasks ...*domain.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range tasks {
		cp := *task
		m.Tasks[cp.ID] = &cp
		if cp.ID >= m.NextID {
			m.NextID = cp.ID + 1
		}
	}
}

func (m *MockTaskStore) sorted(filter func(*domain.Task) bool) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		if filter == nil || filter(task) {
			cp := *task
			tasks = append(tasks, &cp)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks
}

// FindAll implements the TaskStore interface
func (m *MockTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(nil), nil
}

// FindByID implements the TaskStore interface
func (m *MockTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

// FindByCompleted implements the TaskStore interface
func (m *MockTaskStore) FindByCompleted(ctx context.Context, completed bool) ([]*domain.Task, error) {
	if m.FindByCompletedFn != nil {
		return m.FindByCompletedFn(ctx, completed)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(t *domain.Task) bool { return t.Completed == completed }), nil
}

// ExistsByID implements the TaskStore interface
func (m *MockTaskStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Tasks[id]
	return ok, nil
}

// Count implements the TaskStore interface
func (m *MockTaskStore) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Tasks)), nil
}

// CountByCompleted implements the TaskStore interface
func (m *MockTaskStore) CountByCompleted(ctx context.Context, completed bool) (int64, error) {
	if m.CountByCompletedFn != nil {
		return m.CountByCompletedFn(ctx, completed)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, task := range m.Tasks {
		if task.Completed == completed {
			n++
		}
	}
	return n, nil
}

// Save implements the TaskStore interface
func (m *MockTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.mu.Lock()
	if task != nil {
		cp := *task
		m.SaveCalls = append(m.SaveCalls, &cp)
	}
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, task)
	}

	if m.SaveErr != nil {
		return nil, m.SaveErr
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	saved := *task

	if saved.IsNew() {
		saved.ID = m.NextID
		m.NextID++
		saved.CreatedAt = now
		saved.UpdatedAt = now
	} else {
		existing, ok := m.Tasks[saved.ID]
		if !ok {
			return nil, store.ErrTaskNotFound
		}
		saved.CreatedAt = existing.CreatedAt
		saved.UpdatedAt = now
	}

	stored := saved
	m.Tasks[saved.ID] = &stored
	return &saved, nil
}

// DeleteByID implements the TaskStore interface
func (m *MockTaskStore) DeleteByID(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()

	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Tasks, id)
	return nil
}

// InTx implements the TaskStore interface.
// The default implementation runs fn against the mock itself without rollback.
func (m *MockTaskStore) InTx(ctx context.Context, fn func(txStore store.TaskStore) error) error {
	m.mu.Lock()
	m.TxCalls++
	m.mu.Unlock()

	if m.InTxFn != nil {
		return m.InTxFn(ctx, fn)
	}
	return fn(m)
}
