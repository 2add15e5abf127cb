package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tascora/adapter/api"
	"github.com/felixgeelhaar/tascora/adapter/cli"
	clitask "github.com/felixgeelhaar/tascora/adapter/cli/task"
	"github.com/felixgeelhaar/tascora/internal/app"
	"github.com/felixgeelhaar/tascora/pkg/config"
	"github.com/felixgeelhaar/tascora/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	if cfg.LogLevel != "" {
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		logCfg.Format = observability.LogFormat(cfg.LogFormat)
	}
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateTaskHandler:     container.CreateTaskHandler,
		UpdateTaskHandler:     container.UpdateTaskHandler,
		CompleteTaskHandler:   container.CompleteTaskHandler,
		DeleteTaskHandler:     container.DeleteTaskHandler,
		GetTaskHandler:        container.GetTaskHandler,
		ListTasksHandler:      container.ListTasksHandler,
		SearchTasksHandler:    container.SearchTasksHandler,
		TaskStatisticsHandler: container.TaskStatisticsHandler,
	})

	handler := api.NewTaskHandler(api.TaskHandlerConfig{
		CreateTask:   container.CreateTaskHandler,
		UpdateTask:   container.UpdateTaskHandler,
		CompleteTask: container.CompleteTaskHandler,
		DeleteTask:   container.DeleteTaskHandler,
		GetTask:      container.GetTaskHandler,
		ListTasks:    container.ListTasksHandler,
		SearchTasks:  container.SearchTasksHandler,
		Statistics:   container.TaskStatisticsHandler,
		Logger:       logger,
	})
	server := api.NewServer(api.ServerConfig{
		Addr:         cfg.HTTPAddr,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}, handler, logger)
	cli.SetServeDeps(&cli.ServeDeps{Server: server})

	cli.AddCommand(clitask.Cmd)

	cli.Execute(ctx)
}
