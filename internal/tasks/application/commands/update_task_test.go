package commands

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	newExisting := func() *task.Task {
		existing := task.NewTask("Original title")
		existing.SetDescription("original description")
		existing.SetCategory("home")
		due := time.Now().Add(72 * time.Hour)
		existing.SetDueDate(&due)
		return existing
	}

	t.Run("applies only present fields", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		existing := newExisting()
		origDue := *existing.DueDate()

		repo.On("FindByID", ctx, taskID).Return(existing, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

		completed := true
		updated, err := handler.Handle(ctx, UpdateTaskCommand{
			TaskID:    taskID,
			Completed: &completed,
		})

		require.NoError(t, err)
		assert.True(t, updated.Completed())
		assert.Equal(t, "Original title", updated.Title())
		assert.Equal(t, "original description", updated.Description())
		assert.Equal(t, "home", updated.Category())
		assert.Equal(t, value_objects.PriorityMedium, updated.Priority())
		require.NotNil(t, updated.DueDate())
		assert.True(t, updated.DueDate().Equal(origDue))

		repo.AssertExpectations(t)
	})

	t.Run("overwrites all present fields", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		existing := newExisting()
		createdAt := existing.CreatedAt()

		repo.On("FindByID", ctx, taskID).Return(existing, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

		title := "New title"
		desc := "new description"
		category := "work"
		high := value_objects.PriorityHigh
		due := time.Now().Add(time.Hour)

		updated, err := handler.Handle(ctx, UpdateTaskCommand{
			TaskID:      taskID,
			Title:       &title,
			Description: &desc,
			Category:    &category,
			Priority:    &high,
			DueDate:     &due,
		})

		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title())
		assert.Equal(t, "new description", updated.Description())
		assert.Equal(t, "work", updated.Category())
		assert.Equal(t, value_objects.PriorityHigh, updated.Priority())
		assert.True(t, updated.DueDate().Equal(due))
		// Creation time survives every update
		assert.Equal(t, createdAt, updated.CreatedAt())
	})

	t.Run("fails when task not found", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		repo.On("FindByID", ctx, taskID).Return(nil, task.ErrTaskNotFound)

		title := "New title"
		_, err := handler.Handle(ctx, UpdateTaskCommand{TaskID: taskID, Title: &title})

		assert.ErrorIs(t, err, task.ErrTaskNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
