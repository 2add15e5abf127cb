// Package app wires configuration, storage, and the application handlers
// together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/tascora/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/tascora/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/infrastructure/persistence"
	"github.com/felixgeelhaar/tascora/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	Driver       database.Driver
	SQLiteDB     *sql.DB
	PostgresPool *pgxpool.Pool

	// Repository
	TaskRepo task.Repository

	// Command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	UpdateTaskHandler   *commands.UpdateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Query handlers
	GetTaskHandler        *queries.GetTaskHandler
	ListTasksHandler      *queries.ListTasksHandler
	SearchTasksHandler    *queries.SearchTasksHandler
	TaskStatisticsHandler *queries.TaskStatisticsHandler
}

// NewContainer opens the configured database, applies migrations, and
// constructs the repository and handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Driver: database.DetectDriver(cfg.DatabaseURL),
	}

	switch c.Driver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.PostgresPool = pool
		c.TaskRepo = persistence.NewPostgresTaskRepository(pool)

	default:
		db, err := database.OpenSQLite(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		c.TaskRepo = persistence.NewSQLiteTaskRepository(db)
	}

	logger.Debug("database ready", "driver", string(c.Driver))

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo)
	c.UpdateTaskHandler = commands.NewUpdateTaskHandler(c.TaskRepo)
	c.CompleteTaskHandler = commands.NewCompleteTaskHandler(c.TaskRepo)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo)

	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)
	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.SearchTasksHandler = queries.NewSearchTasksHandler(c.TaskRepo)
	c.TaskStatisticsHandler = queries.NewTaskStatisticsHandler(c.TaskRepo)

	return c, nil
}

// Close releases the container's resources.
func (c *Container) Close() {
	if c.SQLiteDB != nil {
		c.SQLiteDB.Close()
	}
	if c.PostgresPool != nil {
		c.PostgresPool.Close()
	}
}
