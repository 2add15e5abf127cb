package task

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for task persistence. It is the sole
// owner of durable task state; callers hold tasks in memory only for the
// duration of a single operation.
type Repository interface {
	// Save inserts the task if it does not exist yet, otherwise updates it.
	Save(ctx context.Context, task *Task) error
	// FindByID returns the task with the given id, or ErrTaskNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	// FindAll returns every stored task.
	FindAll(ctx context.Context) ([]*Task, error)
	// Delete removes the task with the given id, or returns ErrTaskNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
	// Exists reports whether a task with the given id is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
