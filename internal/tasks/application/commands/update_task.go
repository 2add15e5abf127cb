package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

// UpdateTaskCommand is a sparse patch: nil fields mean "leave unchanged".
// The id and creation timestamp of a task are never modified by an update.
type UpdateTaskCommand struct {
	TaskID      uuid.UUID
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *value_objects.Priority
	Category    *string
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo}
}

// Handle applies the patch to the stored task and persists the result.
// Create-time validation (non-empty title, future due date) is deliberately
// not re-applied on update; only present fields are overwritten.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (*task.Task, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		t.SetTitle(*cmd.Title)
	}
	if cmd.Description != nil {
		t.SetDescription(*cmd.Description)
	}
	if cmd.DueDate != nil {
		t.SetDueDate(cmd.DueDate)
	}
	if cmd.Completed != nil {
		t.SetCompleted(*cmd.Completed)
	}
	if cmd.Priority != nil {
		t.SetPriority(*cmd.Priority)
	}
	if cmd.Category != nil {
		t.SetCategory(*cmd.Category)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
