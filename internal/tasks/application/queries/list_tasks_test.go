package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/tascora/internal/shared/domain"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockTaskRepo is a mock implementation of task.Repository.
type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaskRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type taskSpec struct {
	title     string
	priority  value_objects.Priority
	category  string
	completed bool
	createdAt time.Time
	dueDate   *time.Time
}

func buildTask(spec taskSpec) *task.Task {
	createdAt := spec.createdAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	priority := spec.priority
	if priority == 0 {
		priority = value_objects.PriorityMedium
	}
	return task.Rehydrate(
		domain.RehydrateBaseEntity(uuid.New(), createdAt, createdAt),
		spec.title, "", spec.completed, spec.dueDate, priority, spec.category,
	)
}

func TestListTasksHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns full set without filters", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "one"}),
			buildTask(taskSpec{title: "two"}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("filters by completion status", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "done", completed: true}),
			buildTask(taskSpec{title: "open"}),
		}, nil)

		completed := true
		result, err := handler.Handle(ctx, ListTasksQuery{Completed: &completed})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "done", result[0].Title)
	})

	t.Run("filters by priority", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "urgent-ish", priority: value_objects.PriorityHigh}),
			buildTask(taskSpec{title: "later", priority: value_objects.PriorityLow}),
		}, nil)

		high := value_objects.PriorityHigh
		result, err := handler.Handle(ctx, ListTasksQuery{Priority: &high})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "urgent-ish", result[0].Title)
	})

	t.Run("filters by category case-insensitively", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "report", category: "Work"}),
			buildTask(taskSpec{title: "groceries", category: "errands"}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{Category: "work"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "report", result[0].Title)
	})

	t.Run("overdue excludes completed tasks", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		past := time.Now().Add(-time.Hour)
		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "late", dueDate: &past}),
			buildTask(taskSpec{title: "late but done", dueDate: &past, completed: true}),
			buildTask(taskSpec{title: "no due date"}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{Overdue: true})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "late", result[0].Title)
		assert.True(t, result[0].Overdue)
	})

	t.Run("due today matches the calendar day", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 1, 0, 0, now.Location())
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		tomorrow := endOfDay.Add(time.Hour)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "early", dueDate: &startOfDay}),
			buildTask(taskSpec{title: "late", dueDate: &endOfDay}),
			buildTask(taskSpec{title: "tomorrow", dueDate: &tomorrow}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{DueToday: true})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "early", result[0].Title)
		assert.Equal(t, "late", result[1].Title)
	})

	t.Run("sorts by priority descending with created ascending tiebreak", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		t1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		t2 := t1.Add(time.Hour)
		t3 := t1.Add(2 * time.Hour)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "high-t2", priority: value_objects.PriorityHigh, createdAt: t2}),
			buildTask(taskSpec{title: "low-t1", priority: value_objects.PriorityLow, createdAt: t1}),
			buildTask(taskSpec{title: "high-t1", priority: value_objects.PriorityHigh, createdAt: t1}),
			buildTask(taskSpec{title: "medium-t3", priority: value_objects.PriorityMedium, createdAt: t3}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{SortBy: SortByPriority})

		require.NoError(t, err)
		require.Len(t, result, 4)
		assert.Equal(t, "high-t1", result[0].Title)
		assert.Equal(t, "high-t2", result[1].Title)
		assert.Equal(t, "medium-t3", result[2].Title)
		assert.Equal(t, "low-t1", result[3].Title)
	})

	t.Run("sorts by due date with nil dates last", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		soon := time.Now().Add(time.Hour)
		later := time.Now().Add(48 * time.Hour)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "no due"}),
			buildTask(taskSpec{title: "later", dueDate: &later}),
			buildTask(taskSpec{title: "soon", dueDate: &soon}),
		}, nil)

		result, err := handler.Handle(ctx, ListTasksQuery{SortBy: SortByDueDate})

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "soon", result[0].Title)
		assert.Equal(t, "later", result[1].Title)
		assert.Equal(t, "no due", result[2].Title)
	})

	t.Run("composes high-priority incomplete view", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		soon := time.Now().Add(time.Hour)
		later := time.Now().Add(48 * time.Hour)

		repo.On("FindAll", ctx).Return([]*task.Task{
			buildTask(taskSpec{title: "high done", priority: value_objects.PriorityHigh, completed: true}),
			buildTask(taskSpec{title: "high later", priority: value_objects.PriorityHigh, dueDate: &later}),
			buildTask(taskSpec{title: "high soon", priority: value_objects.PriorityHigh, dueDate: &soon}),
			buildTask(taskSpec{title: "high no due", priority: value_objects.PriorityHigh}),
			buildTask(taskSpec{title: "low", priority: value_objects.PriorityLow}),
		}, nil)

		high := value_objects.PriorityHigh
		incomplete := false
		result, err := handler.Handle(ctx, ListTasksQuery{
			Priority:  &high,
			Completed: &incomplete,
			SortBy:    SortByDueDate,
		})

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "high soon", result[0].Title)
		assert.Equal(t, "high later", result[1].Title)
		assert.Equal(t, "high no due", result[2].Title)
	})
}
