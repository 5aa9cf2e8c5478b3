package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/store"
)

// taskColumns is the ordered list of columns selected in task queries.
const taskColumns = `id, title, description, due_date, priority, status, tags,
	created_at, updated_at`

// scanTask scans a sql.Row (or sql.Rows via its Scan method) into a domain.Task.
func scanTask(scanner interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var (
		task      domain.Task
		dueDate   sql.NullString
		priority  string
		status    string
		tags      string
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(&task.ID, &task.Title, &task.Description, &dueDate,
		&priority, &status, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.Status = domain.Status(status)
	if err := unmarshalJSONColumn(tags, &task.Tags); err != nil {
		return nil, err
	}

	var err error
	if task.DueDate, err = parseNullableTime(dueDate); err != nil {
		return nil, err
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &task, nil
}

// taskArgs builds the ordered column values for inserts and upserts.
func taskArgs(task *domain.Task) ([]any, error) {
	tags, err := marshalJSONColumn(task.Tags)
	if err != nil {
		return nil, err
	}
	return []any{
		task.ID, task.Title, task.Description, formatNullableTime(task.DueDate),
		string(task.Priority), string(task.Status), tags,
		formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
	}, nil
}

// CreateTask stores a new task.
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) error {
	args, err := taskArgs(task)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, due_date, priority, status, tags,
		   created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`, args...)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrDuplicateTask
	}
	return nil
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// UpdateTask replaces an existing task.
func (s *Store) UpdateTask(ctx context.Context, task *domain.Task) error {
	args, err := taskArgs(task)
	if err != nil {
		return err
	}
	args = append(args[1:], task.ID)
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, priority = ?,
		   status = ?, tags = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// PutTask stores a task unconditionally (insert-or-replace keyed by id).
func (s *Store) PutTask(ctx context.Context, task *domain.Task) error {
	args, err := taskArgs(task)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, due_date, priority, status, tags,
		   created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   due_date = excluded.due_date,
		   priority = excluded.priority,
		   status = excluded.status,
		   tags = excluded.tags,
		   created_at = excluded.created_at,
		   updated_at = excluded.updated_at`, args...)
	if err != nil {
		return fmt.Errorf("put task: %w", err)
	}
	return nil
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks in id order.
func (s *Store) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// CountTasks returns the number of stored tasks.
func (s *Store) CountTasks(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}
