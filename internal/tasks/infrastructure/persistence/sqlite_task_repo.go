// Package persistence provides the storage implementations of
// task.Repository for SQLite and Postgres.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/tascora/internal/shared/domain"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
//
// Save is a plain upsert: concurrent writers to the same id resolve
// last-write-wins, there is no optimistic locking.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save persists a task, inserting or replacing by id.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	var description sql.NullString
	if t.Description() != "" {
		description = sql.NullString{String: t.Description(), Valid: true}
	}

	var category sql.NullString
	if t.Category() != "" {
		category = sql.NullString{String: t.Category(), Valid: true}
	}

	var dueDate sql.NullString
	if t.DueDate() != nil {
		dueDate = sql.NullString{String: t.DueDate().UTC().Format(time.RFC3339Nano), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, completed, priority, category, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			completed = excluded.completed,
			priority = excluded.priority,
			category = excluded.category,
			due_date = excluded.due_date,
			updated_at = excluded.updated_at`,
		t.ID().String(),
		t.Title(),
		description,
		t.Completed(),
		t.Priority().String(),
		category,
		dueDate,
		t.CreatedAt().UTC().Format(time.RFC3339Nano),
		t.UpdatedAt().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, completed, priority, category, due_date, created_at, updated_at
		FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindAll retrieves every stored task.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, completed, priority, category, due_date, created_at, updated_at
		FROM tasks ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task from the database.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Exists reports whether a task with the given id is stored.
func (r *SQLiteTaskRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`, id.String()).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		idStr       string
		title       string
		description sql.NullString
		completed   bool
		priorityStr string
		category    sql.NullString
		dueDateStr  sql.NullString
		createdStr  string
		updatedStr  string
	)

	if err := row.Scan(&idStr, &title, &description, &completed, &priorityStr, &category, &dueDateStr, &createdStr, &updatedStr); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid task id: %w", err)
	}

	priority, err := value_objects.ParsePriority(priorityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	var dueDate *time.Time
	if dueDateStr.Valid {
		due, err := time.Parse(time.RFC3339Nano, dueDateStr.String)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date format: %w", err)
		}
		dueDate = &due
	}

	return task.Rehydrate(
		domain.RehydrateBaseEntity(id, createdAt, updatedAt),
		title,
		description.String,
		completed,
		dueDate,
		priority,
		category.String,
	), nil
}
