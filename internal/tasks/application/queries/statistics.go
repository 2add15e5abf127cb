package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
)

// TaskStatistics is a snapshot of summary counts over the task set.
type TaskStatistics struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	Pending        int64   `json:"pending"`
	Overdue        int64   `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

// TaskStatisticsHandler computes task statistics.
type TaskStatisticsHandler struct {
	taskRepo task.Repository
}

// NewTaskStatisticsHandler creates a new TaskStatisticsHandler.
func NewTaskStatisticsHandler(taskRepo task.Repository) *TaskStatisticsHandler {
	return &TaskStatisticsHandler{taskRepo: taskRepo}
}

// Handle computes all counts in one pass over a single snapshot, so the
// sub-counts are mutually consistent. The completion rate is a percentage,
// defined as 0 when the store is empty.
func (h *TaskStatisticsHandler) Handle(ctx context.Context) (*TaskStatistics, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &TaskStatistics{Total: int64(len(tasks))}
	for _, t := range tasks {
		if t.Completed() {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}

	return stats, nil
}
