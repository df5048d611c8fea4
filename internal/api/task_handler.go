package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// Routes registers the task endpoints under /tasks on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.GetAllTasks)
		r.Post("/", h.CreateTask)
		r.Get("/stats", h.GetTaskStats)
		r.Get("/status/{completed}", h.GetTasksByStatus)
		r.Get("/{id}", h.GetTaskByID)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Patch("/{id}/complete", h.ToggleTaskCompletion)
	})
}

// GetAllTasks handles GET /tasks requests
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetAllTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTaskByID handles GET /tasks/{id} requests
func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r, log)
	if !ok {
		return
	}

	task, found, err := h.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}
	if !found {
		log.Debug("task not found", slog.Int64("task_id", id))
		shared.RespondWithStatus(w, r, http.StatusNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.ToInput())
	if err != nil {
		// The cause was already logged by the service at the appropriate level.
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.ToInput())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ToggleTaskCompletion handles PATCH /tasks/{id}/complete requests
func (h *TaskHandler) ToggleTaskCompletion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r, log)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTaskCompletion(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task completion toggled",
		slog.Int64("task_id", id),
		slog.Bool("completed", task.Completed))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r, log)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTasksByStatus handles GET /tasks/status/{completed} requests
func (h *TaskHandler) GetTasksByStatus(w http.ResponseWriter, r *http.Request) {
	completed, err := getPathBool(r, "completed")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid status parameter",
			slog.String("value", chi.URLParam(r, "completed")))
		HandleAPIError(w, r, err, "Invalid status: must be true or false")
		return
	}

	tasks, err := h.taskService.GetTasksByStatus(r.Context(), completed)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTaskStats handles GET /tasks/stats requests
func (h *TaskHandler) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.GetTaskStats(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task statistics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statsToResponse(stats))
}

// pathID extracts the {id} path parameter, writing a 400 response when it is malformed.
func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid task ID", slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing a 400 response on failure.
func (h *TaskHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		sanitized := SanitizeValidationError(err)
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, sanitized,
			errors.Join(domain.ErrValidation, err))
		return false
	}

	return true
}
