package commands

import (
	"context"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/google/uuid"
)

// DeleteTaskCommand removes a task.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo task.Repository
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository) *DeleteTaskHandler {
	return &DeleteTaskHandler{taskRepo: taskRepo}
}

// Handle removes the task with the given id.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	exists, err := h.taskRepo.Exists(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if !exists {
		return task.ErrTaskNotFound
	}

	return h.taskRepo.Delete(ctx, cmd.TaskID)
}
