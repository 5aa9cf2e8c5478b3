package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/store"
)

// noteColumns is the ordered list of columns selected in note queries.
const noteColumns = `id, title, content, tags, pinned, archived, notebook_id,
	audio_recordings, created_at, updated_at`

// scanNote scans a sql.Row (or sql.Rows via its Scan method) into a domain.Note.
func scanNote(scanner interface{ Scan(dest ...any) error }) (*domain.Note, error) {
	var (
		note       domain.Note
		tags       string
		recordings string
		notebookID sql.NullString
		createdAt  string
		updatedAt  string
	)
	if err := scanner.Scan(&note.ID, &note.Title, &note.Content, &tags,
		&note.Pinned, &note.Archived, &notebookID, &recordings,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := unmarshalJSONColumn(tags, &note.Tags); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(recordings, &note.AudioRecordings); err != nil {
		return nil, err
	}
	note.NotebookID = notebookID.String

	var err error
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

// noteArgs builds the ordered column values for inserts and upserts.
func noteArgs(note *domain.Note) ([]any, error) {
	tags, err := marshalJSONColumn(note.Tags)
	if err != nil {
		return nil, err
	}
	recordings, err := marshalJSONColumn(note.AudioRecordings)
	if err != nil {
		return nil, err
	}
	var notebookID sql.NullString
	if note.NotebookID != "" {
		notebookID = sql.NullString{String: note.NotebookID, Valid: true}
	}
	return []any{
		note.ID, note.Title, note.Content, tags, note.Pinned, note.Archived,
		notebookID, recordings, formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	}, nil
}

// CreateNote stores a new note.
func (s *Store) CreateNote(ctx context.Context, note *domain.Note) error {
	args, err := noteArgs(note)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, tags, pinned, archived, notebook_id,
		   audio_recordings, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`, args...)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrDuplicateNote
	}
	return nil
}

// GetNote retrieves a note by id.
func (s *Store) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// UpdateNote replaces an existing note.
func (s *Store) UpdateNote(ctx context.Context, note *domain.Note) error {
	args, err := noteArgs(note)
	if err != nil {
		return err
	}
	// Rotate id to the end for the WHERE clause.
	args = append(args[1:], note.ID)
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, tags = ?, pinned = ?, archived = ?,
		   notebook_id = ?, audio_recordings = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNoteNotFound
	}
	return nil
}

// PutNote stores a note unconditionally (insert-or-replace keyed by id).
func (s *Store) PutNote(ctx context.Context, note *domain.Note) error {
	args, err := noteArgs(note)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, tags, pinned, archived, notebook_id,
		   audio_recordings, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   content = excluded.content,
		   tags = excluded.tags,
		   pinned = excluded.pinned,
		   archived = excluded.archived,
		   notebook_id = excluded.notebook_id,
		   audio_recordings = excluded.audio_recordings,
		   created_at = excluded.created_at,
		   updated_at = excluded.updated_at`, args...)
	if err != nil {
		return fmt.Errorf("put note: %w", err)
	}
	return nil
}

// DeleteNote removes a note. Deleting a missing note is not an error.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// ListNotes returns all notes in id order.
func (s *Store) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// CountNotes returns the number of stored notes.
func (s *Store) CountNotes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

// CountNotesByNotebook returns how many notes reference the given notebook.
func (s *Store) CountNotesByNotebook(ctx context.Context, notebookID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notes WHERE notebook_id = ?`, notebookID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes by notebook: %w", err)
	}
	return count, nil
}
