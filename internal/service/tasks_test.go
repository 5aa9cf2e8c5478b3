package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/service"
)

func TestTasks_CreateWithDefaults(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.TaskDraft{Title: "Write report"})
	require.NoError(t, err)
	require.Equal(t, domain.PriorityMedium, task.Priority)
	require.Equal(t, domain.StatusOpen, task.Status)
	require.Nil(t, task.DueDate)
}

func TestTasks_CreateEmptyTitleRejected(t *testing.T) {
	svc := setupTasksService(t)

	_, err := svc.Create(context.Background(), service.TaskDraft{Title: ""})
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestTasks_SetStatus(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.TaskDraft{Title: "toggle me"})
	require.NoError(t, err)
	before := task.UpdatedAt

	task, err = svc.SetStatus(ctx, task.ID, domain.StatusDone)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, task.Status)
	require.True(t, task.UpdatedAt.After(before))

	_, err = svc.SetStatus(ctx, task.ID, domain.Status("cancelled"))
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestTasks_ListFilter(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	mk := func(title string, p domain.Priority, s domain.Status) {
		t.Helper()
		_, err := svc.Create(ctx, service.TaskDraft{Title: title, Priority: p, Status: s})
		require.NoError(t, err)
	}
	mk("high open", domain.PriorityHigh, domain.StatusOpen)
	mk("high done", domain.PriorityHigh, domain.StatusDone)
	mk("low open", domain.PriorityLow, domain.StatusOpen)

	// No filter returns everything
	all, err := svc.List(ctx, service.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Explicit "all" behaves the same
	all, err = svc.List(ctx, service.TaskFilter{Priority: service.FilterAll, Status: service.FilterAll})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Single dimension
	high, err := svc.List(ctx, service.TaskFilter{Priority: "high"})
	require.NoError(t, err)
	require.Len(t, high, 2)

	open, err := svc.List(ctx, service.TaskFilter{Status: "open"})
	require.NoError(t, err)
	require.Len(t, open, 2)

	// Dimensions combine with AND
	highOpen, err := svc.List(ctx, service.TaskFilter{Priority: "high", Status: "open"})
	require.NoError(t, err)
	require.Len(t, highOpen, 1)
	require.Equal(t, "high open", highOpen[0].Title)

	// A filter matching nothing returns an empty list, not an error
	none, err := svc.List(ctx, service.TaskFilter{Priority: "low", Status: "done"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTasks_ListOrder(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, service.TaskDraft{Title: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.TaskDraft{Title: "second"})
	require.NoError(t, err)

	// Completing the first task bumps it to the top
	_, err = svc.SetStatus(ctx, first.ID, domain.StatusDone)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, service.TaskFilter{})
	require.NoError(t, err)
	require.Equal(t, "first", tasks[0].Title)
}

func TestTasks_ListOverdue(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	now := time.Now()
	past := now.Add(-time.Hour)
	older := now.Add(-2 * time.Hour)
	future := now.Add(time.Hour)

	_, err := svc.Create(ctx, service.TaskDraft{Title: "overdue", DueDate: &past})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.TaskDraft{Title: "very overdue", DueDate: &older})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.TaskDraft{Title: "upcoming", DueDate: &future})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.TaskDraft{Title: "done late", DueDate: &past, Status: domain.StatusDone})
	require.NoError(t, err)

	overdue, err := svc.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	require.Equal(t, "very overdue", overdue[0].Title)
	require.Equal(t, "overdue", overdue[1].Title)
}

func TestTasks_Delete(t *testing.T) {
	svc := setupTasksService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, service.TaskDraft{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	_, err = svc.Get(ctx, task.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)
}
