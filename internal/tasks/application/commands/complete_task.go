package commands

import (
	"context"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/google/uuid"
)

// CompleteTaskCommand marks a task as completed.
type CompleteTaskCommand struct {
	TaskID uuid.UUID
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	taskRepo task.Repository
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(taskRepo task.Repository) *CompleteTaskHandler {
	return &CompleteTaskHandler{taskRepo: taskRepo}
}

// Handle marks the task completed and persists it. Completing an
// already-completed task succeeds without changing it.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*task.Task, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	t.Complete()

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
