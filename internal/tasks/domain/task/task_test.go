package task_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tsk := task.NewTask("Complete project report")

	assert.NotEqual(t, uuid.Nil, tsk.ID())
	assert.Equal(t, "Complete project report", tsk.Title())
	assert.False(t, tsk.Completed())
	assert.Equal(t, value_objects.PriorityMedium, tsk.Priority())
	assert.Nil(t, tsk.DueDate())
	assert.False(t, tsk.CreatedAt().IsZero())
	assert.False(t, tsk.CreatedAt().After(time.Now().UTC()))
}

func TestNewTask_TrimsTitle(t *testing.T) {
	tsk := task.NewTask("  Review PR  ")
	assert.Equal(t, "Review PR", tsk.Title())
}

func TestTask_Complete_Idempotent(t *testing.T) {
	tsk := task.NewTask("Write docs")

	tsk.Complete()
	assert.True(t, tsk.Completed())

	tsk.Complete()
	assert.True(t, tsk.Completed())
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("past due and incomplete", func(t *testing.T) {
		tsk := task.NewTask("Pay invoice")
		tsk.SetDueDate(&past)
		assert.True(t, tsk.IsOverdue(now))
	})

	t.Run("past due but completed", func(t *testing.T) {
		tsk := task.NewTask("Pay invoice")
		tsk.SetDueDate(&past)
		tsk.Complete()
		assert.False(t, tsk.IsOverdue(now))
	})

	t.Run("due in the future", func(t *testing.T) {
		tsk := task.NewTask("Pay invoice")
		tsk.SetDueDate(&future)
		assert.False(t, tsk.IsOverdue(now))
	})

	t.Run("no due date", func(t *testing.T) {
		tsk := task.NewTask("Pay invoice")
		assert.False(t, tsk.IsOverdue(now))
	})
}

func TestTask_IsDueOn(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("start of day matches", func(t *testing.T) {
		due := time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC)
		tsk := task.NewTask("Standup")
		tsk.SetDueDate(&due)
		assert.True(t, tsk.IsDueOn(now))
	})

	t.Run("end of day matches", func(t *testing.T) {
		due := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
		tsk := task.NewTask("Standup")
		tsk.SetDueDate(&due)
		assert.True(t, tsk.IsDueOn(now))
	})

	t.Run("next day does not match", func(t *testing.T) {
		due := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		tsk := task.NewTask("Standup")
		tsk.SetDueDate(&due)
		assert.False(t, tsk.IsDueOn(now))
	})

	t.Run("no due date", func(t *testing.T) {
		tsk := task.NewTask("Standup")
		assert.False(t, tsk.IsDueOn(now))
	})
}

func TestTask_Setters(t *testing.T) {
	tsk := task.NewTask("Original")

	tsk.SetTitle("  Renamed  ")
	assert.Equal(t, "Renamed", tsk.Title())

	tsk.SetDescription("details")
	assert.Equal(t, "details", tsk.Description())

	tsk.SetPriority(value_objects.PriorityHigh)
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())

	tsk.SetCategory("Work")
	assert.Equal(t, "Work", tsk.Category())

	tsk.SetCompleted(true)
	assert.True(t, tsk.Completed())

	tsk.SetCompleted(false)
	assert.False(t, tsk.Completed())
}
