// Package commands contains the write-side application handlers. All
// validation invariants are enforced here; validation failures never reach
// the repository.
package commands

import (
	"context"
	"strings"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title       string
	Description string
	Priority    string
	Category    string
	DueDate     *time.Time
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand and returns the stored task.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*task.Task, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, task.ErrEmptyTitle
	}

	if cmd.DueDate != nil && cmd.DueDate.Before(time.Now()) {
		return nil, task.ErrDueDateInPast
	}

	t := task.NewTask(cmd.Title)

	if cmd.Description != "" {
		t.SetDescription(cmd.Description)
	}

	if cmd.Priority != "" {
		priority, err := value_objects.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		t.SetPriority(priority)
	}

	if cmd.Category != "" {
		t.SetCategory(cmd.Category)
	}

	if cmd.DueDate != nil {
		t.SetDueDate(cmd.DueDate)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
