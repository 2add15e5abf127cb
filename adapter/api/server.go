// Package api exposes the task service over HTTP/JSON.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Server is the HTTP API server for the task service.
type Server struct {
	mux     *http.ServeMux
	server  *http.Server
	logger  *slog.Logger
	handler *TaskHandler
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         "0.0.0.0:8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new task API server.
func NewServer(cfg ServerConfig, handler *TaskHandler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	s := &Server{
		mux:     mux,
		logger:  logger,
		handler: handler,
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// registerRoutes sets up the API routes.
func (s *Server) registerRoutes() {
	// Health check
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Task API v1. Literal segments take precedence over the {taskID}
	// wildcard, so the view routes never shadow lookups by id.
	s.mux.HandleFunc("GET /api/v1/tasks", s.handler.ListTasks)
	s.mux.HandleFunc("POST /api/v1/tasks", s.handler.CreateTask)
	s.mux.HandleFunc("GET /api/v1/tasks/overdue", s.handler.ListOverdue)
	s.mux.HandleFunc("GET /api/v1/tasks/due-today", s.handler.ListDueToday)
	s.mux.HandleFunc("GET /api/v1/tasks/search", s.handler.SearchTasks)
	s.mux.HandleFunc("GET /api/v1/tasks/statistics", s.handler.Statistics)
	s.mux.HandleFunc("GET /api/v1/tasks/sorted-by-priority", s.handler.ListSortedByPriority)
	s.mux.HandleFunc("GET /api/v1/tasks/high-priority-incomplete", s.handler.ListHighPriorityIncomplete)
	s.mux.HandleFunc("GET /api/v1/tasks/status/{completed}", s.handler.ListByStatus)
	s.mux.HandleFunc("GET /api/v1/tasks/priority/{priority}", s.handler.ListByPriority)
	s.mux.HandleFunc("GET /api/v1/tasks/category/{category}", s.handler.ListByCategory)
	s.mux.HandleFunc("GET /api/v1/tasks/{taskID}", s.handler.GetTask)
	s.mux.HandleFunc("PUT /api/v1/tasks/{taskID}", s.handler.UpdateTask)
	s.mux.HandleFunc("DELETE /api/v1/tasks/{taskID}", s.handler.DeleteTask)
	s.mux.HandleFunc("PUT /api/v1/tasks/{taskID}/complete", s.handler.CompleteTask)
	s.mux.HandleFunc("GET /api/v1/tasks/{taskID}/details", s.handler.TaskDetails)
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the API server.
func (s *Server) Start() error {
	s.logger.Info("starting task API server",
		"addr", s.server.Addr,
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down task API server")
	return s.server.Shutdown(ctx)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Log error but can't do much at this point
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
