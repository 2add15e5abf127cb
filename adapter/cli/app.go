package cli

import (
	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
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

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
