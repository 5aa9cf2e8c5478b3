package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/store"
)

// notebookColumns is the ordered list of columns selected in notebook queries.
const notebookColumns = `id, name, color, created_at, updated_at`

// scanNotebook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Notebook.
func scanNotebook(scanner interface{ Scan(dest ...any) error }) (*domain.Notebook, error) {
	var (
		nb        domain.Notebook
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(&nb.ID, &nb.Name, &nb.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if nb.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if nb.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &nb, nil
}

// CreateNotebook stores a new notebook.
func (s *Store) CreateNotebook(ctx context.Context, nb *domain.Notebook) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notebooks (id, name, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		nb.ID, nb.Name, nb.Color, formatTime(nb.CreatedAt), formatTime(nb.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert notebook: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrDuplicateNotebook
	}
	return nil
}

// GetNotebook retrieves a notebook by id.
func (s *Store) GetNotebook(ctx context.Context, id string) (*domain.Notebook, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+notebookColumns+` FROM notebooks WHERE id = ?`, id)
	nb, err := scanNotebook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotebookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get notebook: %w", err)
	}
	return nb, nil
}

// UpdateNotebook replaces an existing notebook.
func (s *Store) UpdateNotebook(ctx context.Context, nb *domain.Notebook) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notebooks SET name = ?, color = ?, created_at = ?, updated_at = ? WHERE id = ?`,
		nb.Name, nb.Color, formatTime(nb.CreatedAt), formatTime(nb.UpdatedAt), nb.ID)
	if err != nil {
		return fmt.Errorf("update notebook: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotebookNotFound
	}
	return nil
}

// PutNotebook stores a notebook unconditionally (insert-or-replace keyed by id).
func (s *Store) PutNotebook(ctx context.Context, nb *domain.Notebook) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notebooks (id, name, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   color = excluded.color,
		   created_at = excluded.created_at,
		   updated_at = excluded.updated_at`,
		nb.ID, nb.Name, nb.Color, formatTime(nb.CreatedAt), formatTime(nb.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put notebook: %w", err)
	}
	return nil
}

// DeleteNotebook removes a notebook. Deleting a missing notebook is not an error.
func (s *Store) DeleteNotebook(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notebooks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete notebook: %w", err)
	}
	return nil
}

// ListNotebooks returns all notebooks in id order.
func (s *Store) ListNotebooks(ctx context.Context) ([]*domain.Notebook, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+notebookColumns+` FROM notebooks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	defer rows.Close()

	var notebooks []*domain.Notebook
	for rows.Next() {
		nb, err := scanNotebook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notebook: %w", err)
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, rows.Err()
}

// CountNotebooks returns the number of stored notebooks.
func (s *Store) CountNotebooks(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notebooks`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notebooks: %w", err)
	}
	return count, nil
}
