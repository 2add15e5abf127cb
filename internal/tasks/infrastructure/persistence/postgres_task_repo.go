package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/tascora/internal/shared/domain"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTaskRepository implements task.Repository using PostgreSQL.
//
// Save is a plain upsert: concurrent writers to the same id resolve
// last-write-wins, there is no optimistic locking.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new Postgres task repository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Save persists a task, inserting or replacing by id.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	var description *string
	if t.Description() != "" {
		d := t.Description()
		description = &d
	}

	var category *string
	if t.Category() != "" {
		c := t.Category()
		category = &c
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, title, description, completed, priority, category, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			completed = EXCLUDED.completed,
			priority = EXCLUDED.priority,
			category = EXCLUDED.category,
			due_date = EXCLUDED.due_date,
			updated_at = EXCLUDED.updated_at`,
		t.ID(),
		t.Title(),
		description,
		t.Completed(),
		t.Priority().String(),
		category,
		t.DueDate(),
		t.CreatedAt(),
		t.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, completed, priority, category, due_date, created_at, updated_at
		FROM tasks WHERE id = $1`, id)

	t, err := scanPostgresTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindAll retrieves every stored task.
func (r *PostgresTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, completed, priority, category, due_date, created_at, updated_at
		FROM tasks ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task from the database.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Exists reports whether a task with the given id is stored.
func (r *PostgresTaskRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func scanPostgresTask(row pgx.Row) (*task.Task, error) {
	var (
		id          uuid.UUID
		title       string
		description *string
		completed   bool
		priorityStr string
		category    *string
		dueDate     *time.Time
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &title, &description, &completed, &priorityStr, &category, &dueDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	priority, err := value_objects.ParsePriority(priorityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	var desc, cat string
	if description != nil {
		desc = *description
	}
	if category != nil {
		cat = *category
	}

	return task.Rehydrate(
		domain.RehydrateBaseEntity(id, createdAt, updatedAt),
		title,
		desc,
		completed,
		dueDate,
		priority,
		cat,
	), nil
}
