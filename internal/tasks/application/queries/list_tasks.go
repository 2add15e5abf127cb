package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
)

// Sort orders accepted by ListTasksQuery.
const (
	SortByPriority = "priority"
	SortByDueDate  = "due_date"
)

// ListTasksQuery contains the parameters for listing tasks. Nil or zero
// fields are not applied; filters compose by intersection.
type ListTasksQuery struct {
	Completed *bool                   // exact match on the completed flag
	Priority  *value_objects.Priority // exact match on priority
	Category  string                  // case-insensitive exact match
	Overdue   bool                    // only tasks past due and not completed
	DueToday  bool                    // only tasks due on the current calendar day
	SortBy    string                  // SortByPriority or SortByDueDate
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery against a fresh snapshot of the task set.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if query.Completed != nil {
		tasks = filterByCompleted(tasks, *query.Completed)
	}
	if query.Priority != nil {
		tasks = filterByPriority(tasks, *query.Priority)
	}
	if query.Category != "" {
		tasks = filterByCategory(tasks, query.Category)
	}

	now := time.Now()
	if query.Overdue {
		tasks = filterOverdue(tasks, now)
	}
	if query.DueToday {
		tasks = filterDueToday(tasks, now)
	}

	switch query.SortBy {
	case SortByPriority:
		sortByPriority(tasks)
	case SortByDueDate:
		sortByDueDate(tasks)
	}

	return toTaskDTOs(tasks), nil
}

func filterByCompleted(tasks []*task.Task, completed bool) []*task.Task {
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed() == completed {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func filterByPriority(tasks []*task.Task, priority value_objects.Priority) []*task.Task {
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Priority() == priority {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func filterByCategory(tasks []*task.Task, category string) []*task.Task {
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.EqualFold(t.Category(), category) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func filterOverdue(tasks []*task.Task, now time.Time) []*task.Task {
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsOverdue(now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func filterDueToday(tasks []*task.Task, now time.Time) []*task.Task {
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsDueOn(now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// sortByPriority orders tasks by priority level descending, with earlier
// creation winning ties. The ordering is total and stable.
func sortByPriority(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority() != tasks[j].Priority() {
			return tasks[i].Priority().Level() > tasks[j].Priority().Level()
		}
		return tasks[i].CreatedAt().Before(tasks[j].CreatedAt())
	})
}

// sortByDueDate orders tasks by due date ascending. Tasks without a due
// date sort last, treated as furthest in the future.
func sortByDueDate(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].DueDate(), tasks[j].DueDate()
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
}
