package task

import "errors"

var (
	// ErrEmptyTitle rejects a create whose title is missing or blank.
	ErrEmptyTitle = errors.New("task title cannot be empty")
	// ErrDueDateInPast rejects a create whose due date precedes the current instant.
	ErrDueDateInPast = errors.New("due date cannot be in the past")
	// ErrTaskNotFound signals that no task exists for the requested id.
	ErrTaskNotFound = errors.New("task not found")
)
