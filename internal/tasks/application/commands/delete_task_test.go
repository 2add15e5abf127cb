package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	t.Run("successfully deletes task", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewDeleteTaskHandler(repo)

		repo.On("Exists", ctx, taskID).Return(true, nil)
		repo.On("Delete", ctx, taskID).Return(nil)

		err := handler.Handle(ctx, DeleteTaskCommand{TaskID: taskID})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("fails when task not found", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewDeleteTaskHandler(repo)

		repo.On("Exists", ctx, taskID).Return(false, nil)

		err := handler.Handle(ctx, DeleteTaskCommand{TaskID: taskID})

		assert.ErrorIs(t, err, task.ErrTaskNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
