package store

import (
	"context"

	"github.com/cemcobancem/notevault/internal/domain"
)

// CreateNotebook stores a new notebook. Returns ErrDuplicateNotebook if the id is taken.
func (s *BadgerStore) CreateNotebook(ctx context.Context, nb *domain.Notebook) error {
	return translate(s.notebooks.Create(ctx, nb.ID, nb), ErrNotebookNotFound, ErrDuplicateNotebook)
}

// GetNotebook retrieves a notebook by id.
func (s *BadgerStore) GetNotebook(ctx context.Context, id string) (*domain.Notebook, error) {
	nb, err := s.notebooks.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrNotebookNotFound, ErrDuplicateNotebook)
	}
	return nb, nil
}

// UpdateNotebook replaces an existing notebook. Returns ErrNotebookNotFound if absent.
func (s *BadgerStore) UpdateNotebook(ctx context.Context, nb *domain.Notebook) error {
	return translate(s.notebooks.Update(ctx, nb.ID, nb), ErrNotebookNotFound, ErrDuplicateNotebook)
}

// PutNotebook stores a notebook unconditionally (insert-or-replace keyed by id).
func (s *BadgerStore) PutNotebook(ctx context.Context, nb *domain.Notebook) error {
	return s.notebooks.Put(ctx, nb.ID, nb)
}

// DeleteNotebook removes a notebook. Deleting a missing notebook is not an error.
// Whether the notebook still has notes is the service's business, not ours.
func (s *BadgerStore) DeleteNotebook(ctx context.Context, id string) error {
	return s.notebooks.Delete(ctx, id)
}

// ListNotebooks returns all notebooks in key order.
func (s *BadgerStore) ListNotebooks(ctx context.Context) ([]*domain.Notebook, error) {
	return s.notebooks.ListAll(ctx)
}

// CountNotebooks returns the number of stored notebooks.
func (s *BadgerStore) CountNotebooks(ctx context.Context) (int, error) {
	return s.notebooks.Count(ctx)
}
