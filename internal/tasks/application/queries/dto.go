// Package queries contains the read-side application handlers: pure
// filter, sort, search, and aggregation views over the task set. Nothing
// in this package mutates state.
package queries

import (
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/google/uuid"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTaskDTO converts a task to its transfer representation. The overdue
// flag is derived at conversion time.
func NewTaskDTO(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Completed:   t.Completed(),
		Priority:    t.Priority().String(),
		Category:    t.Category(),
		DueDate:     t.DueDate(),
		Overdue:     t.IsOverdue(time.Now()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func toTaskDTOs(tasks []*task.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = NewTaskDTO(t)
	}
	return dtos
}
