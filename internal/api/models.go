package api

import (
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// CreateTaskRequest defines the payload for the create task endpoint.
// Completed is accepted for compatibility and ignored: new tasks are always incomplete.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,notblank,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Completed   bool    `json:"completed"`
}

// ToInput converts the request into a domain.TaskInput.
func (r CreateTaskRequest) ToInput() domain.TaskInput {
	return domain.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// UpdateTaskRequest defines the payload for the update task endpoint.
// It is a full replace; an omitted completed flag means false.
type UpdateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,notblank,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Completed   bool    `json:"completed"`
}

// ToInput converts the request into a domain.TaskInput.
func (r UpdateTaskRequest) ToInput() domain.TaskInput {
	return domain.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskStatsResponse represents the aggregate task counts.
type TaskStatsResponse struct {
	TotalTasks     int64 `json:"totalTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	PendingTasks   int64 `json:"pendingTasks"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse always returns a non-nil slice so empty lists encode as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

func statsToResponse(stats *domain.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		PendingTasks:   stats.PendingTasks,
	}
}
