package api

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	createTask   *commands.CreateTaskHandler
	updateTask   *commands.UpdateTaskHandler
	completeTask *commands.CompleteTaskHandler
	deleteTask   *commands.DeleteTaskHandler
	getTask      *queries.GetTaskHandler
	listTasks    *queries.ListTasksHandler
	searchTasks  *queries.SearchTasksHandler
	statistics   *queries.TaskStatisticsHandler
	logger       *slog.Logger
}

// TaskHandlerConfig holds dependencies for the task handler.
type TaskHandlerConfig struct {
	CreateTask   *commands.CreateTaskHandler
	UpdateTask   *commands.UpdateTaskHandler
	CompleteTask *commands.CompleteTaskHandler
	DeleteTask   *commands.DeleteTaskHandler
	GetTask      *queries.GetTaskHandler
	ListTasks    *queries.ListTasksHandler
	SearchTasks  *queries.SearchTasksHandler
	Statistics   *queries.TaskStatisticsHandler
	Logger       *slog.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(cfg TaskHandlerConfig) *TaskHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &TaskHandler{
		createTask:   cfg.CreateTask,
		updateTask:   cfg.UpdateTask,
		completeTask: cfg.CompleteTask,
		deleteTask:   cfg.DeleteTask,
		getTask:      cfg.GetTask,
		listTasks:    cfg.ListTasks,
		searchTasks:  cfg.SearchTasks,
		statistics:   cfg.Statistics,
		logger:       cfg.Logger,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTask handles POST /api/v1/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.createTask.Handle(r.Context(), commands.CreateTaskCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondError(w, err, "failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, queries.NewTaskDTO(created))
}

// GetTask handles GET /api/v1/tasks/{taskID}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	dto, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.respondError(w, err, "failed to get task")
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// ListTasks handles GET /api/v1/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, queries.ListTasksQuery{})
}

// UpdateTask handles PUT /api/v1/tasks/{taskID}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := commands.UpdateTaskCommand{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Category:    req.Category,
		DueDate:     req.DueDate,
	}

	if req.Priority != nil {
		priority, err := value_objects.ParsePriority(*req.Priority)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid priority")
			return
		}
		cmd.Priority = &priority
	}

	updated, err := h.updateTask.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err, "failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, queries.NewTaskDTO(updated))
}

// CompleteTask handles PUT /api/v1/tasks/{taskID}/complete
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	completed, err := h.completeTask.Handle(r.Context(), commands.CompleteTaskCommand{TaskID: id})
	if err != nil {
		h.respondError(w, err, "failed to complete task")
		return
	}

	writeJSON(w, http.StatusOK, queries.NewTaskDTO(completed))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskID}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.deleteTask.Handle(r.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
		h.respondError(w, err, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByStatus handles GET /api/v1/tasks/status/{completed}
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	completed, err := strconv.ParseBool(r.PathValue("completed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid completion status")
		return
	}

	h.list(w, r, queries.ListTasksQuery{Completed: &completed})
}

// ListOverdue handles GET /api/v1/tasks/overdue
func (h *TaskHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, queries.ListTasksQuery{Overdue: true})
}

// ListDueToday handles GET /api/v1/tasks/due-today
func (h *TaskHandler) ListDueToday(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, queries.ListTasksQuery{DueToday: true})
}

// SearchTasks handles GET /api/v1/tasks/search
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchTasks.Handle(r.Context(), queries.SearchTasksQuery{
		Term: r.URL.Query().Get("q"),
	})
	if err != nil {
		h.respondError(w, err, "failed to search tasks")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Statistics handles GET /api/v1/tasks/statistics
func (h *TaskHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statistics.Handle(r.Context())
	if err != nil {
		h.respondError(w, err, "failed to compute statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ListByPriority handles GET /api/v1/tasks/priority/{priority}
func (h *TaskHandler) ListByPriority(w http.ResponseWriter, r *http.Request) {
	priority, err := value_objects.ParsePriority(r.PathValue("priority"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid priority")
		return
	}

	h.list(w, r, queries.ListTasksQuery{Priority: &priority})
}

// ListByCategory handles GET /api/v1/tasks/category/{category}
func (h *TaskHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, queries.ListTasksQuery{Category: r.PathValue("category")})
}

// ListSortedByPriority handles GET /api/v1/tasks/sorted-by-priority
func (h *TaskHandler) ListSortedByPriority(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, queries.ListTasksQuery{SortBy: queries.SortByPriority})
}

// ListHighPriorityIncomplete handles GET /api/v1/tasks/high-priority-incomplete
func (h *TaskHandler) ListHighPriorityIncomplete(w http.ResponseWriter, r *http.Request) {
	high := value_objects.PriorityHigh
	incomplete := false
	h.list(w, r, queries.ListTasksQuery{
		Priority:  &high,
		Completed: &incomplete,
		SortBy:    queries.SortByDueDate,
	})
}

var taskDetailsTemplate = template.Must(template.New("details").Parse(`<html><body>
<h1>Task Details</h1>
<h2>Title: {{.Title}}</h2>
<p>Description: {{.Description}}</p>
<p>Priority: {{.Priority}}</p>
<p>Category: {{.Category}}</p>
{{if .DueDate}}<p>Due Date: {{.DueDate}}</p>{{else}}<p>Due Date: none</p>{{end}}
<p>Completed: {{.Completed}}</p>
</body></html>
`))

// TaskDetails handles GET /api/v1/tasks/{taskID}/details and renders the
// task as an HTML page.
func (h *TaskHandler) TaskDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	dto, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.respondError(w, err, "failed to get task")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := taskDetailsTemplate.Execute(w, dto); err != nil {
		h.logger.Error("failed to render task details", "error", err)
	}
}

func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request, query queries.ListTasksQuery) {
	result, err := h.listTasks.Handle(r.Context(), query)
	if err != nil {
		h.respondError(w, err, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("taskID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to HTTP status codes. Validation
// failures are client errors, missing tasks are 404, everything else is a
// server fault and gets logged.
func (h *TaskHandler) respondError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrDueDateInPast),
		errors.Is(err, value_objects.ErrInvalidPriority):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
