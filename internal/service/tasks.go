package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/id"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/validation"
)

// FilterAll is the wildcard value for task filter dimensions.
const FilterAll = "all"

// TaskFilter narrows the task list. Each dimension is either FilterAll, the
// empty string (treated as FilterAll), or a concrete value. Dimensions
// combine with AND.
type TaskFilter struct {
	Priority string
	Status   string
}

func (f TaskFilter) matches(task *domain.Task) bool {
	if f.Priority != "" && f.Priority != FilterAll && string(task.Priority) != f.Priority {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(task.Status) != f.Status {
		return false
	}
	return true
}

// TaskDraft carries the editable fields of a task.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    domain.Priority
	Status      domain.Status
	Tags        []string
}

// TasksService orchestrates task operations.
type TasksService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewTasksService creates a new tasks service.
func NewTasksService(s store.Store, v *validation.Validator, logger *slog.Logger) *TasksService {
	return &TasksService{store: s, validator: v, logger: logger}
}

// Create validates a draft and persists a new task. Priority defaults to
// medium and status to open when the draft leaves them empty.
func (s *TasksService) Create(ctx context.Context, draft TaskDraft) (*domain.Task, error) {
	taskID, err := id.Generate(id.PrefixTask)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate task id")
	}

	task := &domain.Task{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    draft.Priority,
		Status:      draft.Status,
		Tags:        domain.NormalizeTags(draft.Tags),
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.StatusOpen
	}
	task.ID = taskID
	task.InitTimestamps()

	if err := s.validator.Validate(task); err != nil {
		return nil, err
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create task")
	}

	s.logger.Info("task created", "task_id", task.ID, "priority", task.Priority)
	return task, nil
}

// Get retrieves a task by id.
func (s *TasksService) Get(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, errors.NotFoundf("task %s not found", taskID)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get task")
	}
	return task, nil
}

// Save writes a draft back onto an existing task and refreshes UpdatedAt.
func (s *TasksService) Save(ctx context.Context, taskID string, draft TaskDraft) (*domain.Task, error) {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = draft.Title
	task.Description = draft.Description
	task.DueDate = draft.DueDate
	task.Priority = draft.Priority
	task.Status = draft.Status
	task.Tags = domain.NormalizeTags(draft.Tags)

	if err := s.validator.Validate(task); err != nil {
		return nil, err
	}
	task.Touch()

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "save task")
	}
	return task, nil
}

// SetStatus moves a task between open and done.
func (s *TasksService) SetStatus(ctx context.Context, taskID string, status domain.Status) (*domain.Task, error) {
	if !status.Valid() {
		return nil, errors.Validationf("invalid status %q", status)
	}

	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.Touch()

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "set status")
	}
	return task, nil
}

// Delete removes a task.
func (s *TasksService) Delete(ctx context.Context, taskID string) error {
	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete task")
	}
	s.logger.Info("task deleted", "task_id", taskID)
	return nil
}

// List returns tasks matching the filter, most recently updated first.
func (s *TasksService) List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list tasks")
	}

	matched := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.matches(task) {
			matched = append(matched, task)
		}
	}
	slices.SortStableFunc(matched, func(a, b *domain.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return matched, nil
}

// ListOverdue returns open tasks whose due date has passed, soonest-due first.
func (s *TasksService) ListOverdue(ctx context.Context, now time.Time) ([]*domain.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list tasks")
	}

	var overdue []*domain.Task
	for _, task := range tasks {
		if task.IsOverdue(now) {
			overdue = append(overdue, task)
		}
	}
	slices.SortStableFunc(overdue, func(a, b *domain.Task) int {
		return a.DueDate.Compare(*b.DueDate)
	})
	return overdue, nil
}
