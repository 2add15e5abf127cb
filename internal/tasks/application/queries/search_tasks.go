package queries

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
)

// SearchTasksQuery contains the free-text search term. A blank term means
// "no filter" and returns the full task list.
type SearchTasksQuery struct {
	Term string
}

// SearchTasksHandler handles the SearchTasksQuery.
type SearchTasksHandler struct {
	taskRepo task.Repository
}

// NewSearchTasksHandler creates a new SearchTasksHandler.
func NewSearchTasksHandler(taskRepo task.Repository) *SearchTasksHandler {
	return &SearchTasksHandler{taskRepo: taskRepo}
}

// Handle returns tasks whose title or description contains the trimmed term
// as a case-insensitive substring.
func (h *SearchTasksHandler) Handle(ctx context.Context, query SearchTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query.Term))
	if term == "" {
		return toTaskDTOs(tasks), nil
	}

	matched := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title()), term) ||
			strings.Contains(strings.ToLower(t.Description()), term) {
			matched = append(matched, t)
		}
	}

	return toTaskDTOs(matched), nil
}
