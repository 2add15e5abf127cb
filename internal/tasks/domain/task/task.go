// Package task contains the task aggregate and its repository contract.
package task

import (
	"strings"
	"time"

	"github.com/felixgeelhaar/tascora/internal/shared/domain"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
)

// Task represents a titled unit of work with completion state, an optional
// due date, a priority, and a free-form category.
//
// Construction never fails: input validation is the responsibility of the
// command handlers, so invalid states are rejected at the write boundary
// rather than at object-creation time.
type Task struct {
	domain.BaseEntity
	title       string
	description string
	completed   bool
	dueDate     *time.Time
	priority    value_objects.Priority
	category    string
}

// NewTask creates a task with the given title. The title is trimmed but not
// validated here. Priority defaults to medium and the task starts incomplete.
func NewTask(title string) *Task {
	return &Task{
		BaseEntity: domain.NewBaseEntity(),
		title:      strings.TrimSpace(title),
		priority:   value_objects.PriorityMedium,
	}
}

// Rehydrate recreates a task from persisted state.
func Rehydrate(entity domain.BaseEntity, title, description string, completed bool, dueDate *time.Time, priority value_objects.Priority, category string) *Task {
	return &Task{
		BaseEntity:  entity,
		title:       title,
		description: description,
		completed:   completed,
		dueDate:     dueDate,
		priority:    priority,
		category:    category,
	}
}

func (t *Task) Title() string                    { return t.title }
func (t *Task) Description() string              { return t.description }
func (t *Task) Completed() bool                  { return t.completed }
func (t *Task) DueDate() *time.Time              { return t.dueDate }
func (t *Task) Priority() value_objects.Priority { return t.priority }
func (t *Task) Category() string                 { return t.category }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) {
	t.title = strings.TrimSpace(title)
	t.Touch()
}

// SetDescription updates the task description.
func (t *Task) SetDescription(description string) {
	t.description = description
	t.Touch()
}

// SetCompleted updates the completion flag.
func (t *Task) SetCompleted(completed bool) {
	t.completed = completed
	t.Touch()
}

// SetDueDate updates the due date.
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.dueDate = dueDate
	t.Touch()
}

// SetPriority updates the task priority.
func (t *Task) SetPriority(priority value_objects.Priority) {
	t.priority = priority
	t.Touch()
}

// SetCategory updates the task category.
func (t *Task) SetCategory(category string) {
	t.category = category
	t.Touch()
}

// Complete marks the task as completed. Completing an already-completed
// task is a no-op.
func (t *Task) Complete() {
	if t.completed {
		return
	}
	t.completed = true
	t.Touch()
}

// IsOverdue reports whether the task's due date has passed as of now and
// the task is not completed. It is a pure function of (dueDate, completed,
// now); the flag is derived on demand and never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.dueDate != nil && t.dueDate.Before(now) && !t.completed
}

// IsDueOn reports whether the task's due date falls on the same calendar
// day as the given instant, in that instant's location.
func (t *Task) IsDueOn(day time.Time) bool {
	if t.dueDate == nil {
		return false
	}
	due := t.dueDate.In(day.Location())
	return due.Year() == day.Year() && due.Month() == day.Month() && due.Day() == day.Day()
}
