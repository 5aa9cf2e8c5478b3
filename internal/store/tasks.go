package store

import (
	"context"

	"github.com/cemcobancem/notevault/internal/domain"
)

// CreateTask stores a new task. Returns ErrDuplicateTask if the id is taken.
func (s *BadgerStore) CreateTask(ctx context.Context, task *domain.Task) error {
	return translate(s.tasks.Create(ctx, task.ID, task), ErrTaskNotFound, ErrDuplicateTask)
}

// GetTask retrieves a task by id.
func (s *BadgerStore) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrTaskNotFound, ErrDuplicateTask)
	}
	return task, nil
}

// UpdateTask replaces an existing task. Returns ErrTaskNotFound if absent.
func (s *BadgerStore) UpdateTask(ctx context.Context, task *domain.Task) error {
	return translate(s.tasks.Update(ctx, task.ID, task), ErrTaskNotFound, ErrDuplicateTask)
}

// PutTask stores a task unconditionally (insert-or-replace keyed by id).
func (s *BadgerStore) PutTask(ctx context.Context, task *domain.Task) error {
	return s.tasks.Put(ctx, task.ID, task)
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (s *BadgerStore) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// ListTasks returns all tasks in key order.
func (s *BadgerStore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.ListAll(ctx)
}

// CountTasks returns the number of stored tasks.
func (s *BadgerStore) CountTasks(ctx context.Context) (int, error) {
	return s.tasks.Count(ctx)
}
