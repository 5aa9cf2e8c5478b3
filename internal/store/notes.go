package store

import (
	"context"

	"github.com/cemcobancem/notevault/internal/domain"
)

// CreateNote stores a new note. Returns ErrDuplicateNote if the id is taken.
func (s *BadgerStore) CreateNote(ctx context.Context, note *domain.Note) error {
	return translate(s.notes.Create(ctx, note.ID, note), ErrNoteNotFound, ErrDuplicateNote)
}

// GetNote retrieves a note by id.
func (s *BadgerStore) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	note, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrNoteNotFound, ErrDuplicateNote)
	}
	return note, nil
}

// UpdateNote replaces an existing note. Returns ErrNoteNotFound if absent.
func (s *BadgerStore) UpdateNote(ctx context.Context, note *domain.Note) error {
	return translate(s.notes.Update(ctx, note.ID, note), ErrNoteNotFound, ErrDuplicateNote)
}

// PutNote stores a note unconditionally (insert-or-replace keyed by id).
func (s *BadgerStore) PutNote(ctx context.Context, note *domain.Note) error {
	return s.notes.Put(ctx, note.ID, note)
}

// DeleteNote removes a note. Deleting a missing note is not an error.
func (s *BadgerStore) DeleteNote(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}

// ListNotes returns all notes in key order.
func (s *BadgerStore) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	return s.notes.ListAll(ctx)
}

// CountNotes returns the number of stored notes.
func (s *BadgerStore) CountNotes(ctx context.Context) (int, error) {
	return s.notes.Count(ctx)
}

// CountNotesByNotebook returns how many notes reference the given notebook.
// Uses the notebook secondary index, so this is a prefix scan, not a full list.
func (s *BadgerStore) CountNotesByNotebook(ctx context.Context, notebookID string) (int, error) {
	return s.notes.CountByIndex(ctx, "notebook", notebookID)
}
