// Package service provides the business logic layer for notes, tasks,
// notebooks, search, and settings.
//
// Services read and write the store and return structured domain errors; they
// never notify the user themselves. The presentation layer renders or toasts
// whatever comes back.
package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/id"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/transcribe"
)

// NotesService orchestrates note operations.
type NotesService struct {
	store       store.Store
	transcriber transcribe.Transcriber
	timeout     timeoutConfig
	logger      *slog.Logger
}

// NewNotesService creates a new notes service. The transcriber may be nil
// when voice features are disabled.
func NewNotesService(s store.Store, transcriber transcribe.Transcriber, cfg Config, logger *slog.Logger) *NotesService {
	return &NotesService{
		store:       s,
		transcriber: transcriber,
		timeout:     timeoutConfig{transcription: cfg.TranscriptionTimeout},
		logger:      logger,
	}
}

// NoteDraft carries the editable fields of a note. The editor holds one of
// these transiently and reconciles it back via explicit save calls.
type NoteDraft struct {
	Title      string
	Content    string
	Tags       []string
	NotebookID string
}

// NotesView partitions the non-archived notes for display.
// Pinned and Others are disjoint; their union is all non-archived notes.
// Both are ordered by UpdatedAt descending with stable tie order.
type NotesView struct {
	Pinned []*domain.Note
	Others []*domain.Note
}

// Create creates a new note from a draft.
func (s *NotesService) Create(ctx context.Context, draft NoteDraft) (*domain.Note, error) {
	noteID, err := id.Generate(id.PrefixNote)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate note id")
	}

	note := &domain.Note{
		Title:      draft.Title,
		Content:    draft.Content,
		Tags:       domain.NormalizeTags(draft.Tags),
		NotebookID: draft.NotebookID,
	}
	note.ID = noteID
	note.InitTimestamps()

	if err := s.store.CreateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create note")
	}

	s.logger.Info("note created", "note_id", note.ID, "notebook_id", note.NotebookID)
	return note, nil
}

// Get retrieves a note by id.
func (s *NotesService) Get(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return nil, errors.NotFoundf("note %s not found", noteID)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get note")
	}
	return note, nil
}

// Save writes a draft back onto an existing note and refreshes UpdatedAt.
// Pinned, archived state, and attached recordings are untouched; they have
// their own operations.
func (s *NotesService) Save(ctx context.Context, noteID string, draft NoteDraft) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = draft.Title
	note.Content = draft.Content
	note.Tags = domain.NormalizeTags(draft.Tags)
	note.NotebookID = draft.NotebookID
	note.Touch()

	if err := s.store.UpdateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "save note")
	}
	return note, nil
}

// Delete removes a note, along with any recordings it owns.
func (s *NotesService) Delete(ctx context.Context, noteID string) error {
	if err := s.store.DeleteNote(ctx, noteID); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete note")
	}
	s.logger.Info("note deleted", "note_id", noteID)
	return nil
}

// TogglePin flips the pinned flag and strictly bumps UpdatedAt.
func (s *NotesService) TogglePin(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	note.Pinned = !note.Pinned
	note.Touch()

	if err := s.store.UpdateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "toggle pin")
	}
	return note, nil
}

// SetArchived hides or restores a note from the default views.
func (s *NotesService) SetArchived(ctx context.Context, noteID string, archived bool) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	note.Archived = archived
	note.Touch()

	if err := s.store.UpdateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "set archived")
	}
	return note, nil
}

// List returns the default notes view: all non-archived notes partitioned
// into pinned and others.
func (s *NotesService) List(ctx context.Context) (*NotesView, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notes")
	}
	return buildNotesView(notes, ""), nil
}

// ListByNotebook returns the notes view scoped to one notebook.
// An unresolvable notebook id is a not-found condition, not an empty view.
func (s *NotesService) ListByNotebook(ctx context.Context, notebookID string) (*NotesView, error) {
	if _, err := s.store.GetNotebook(ctx, notebookID); err != nil {
		if errors.Is(err, store.ErrNotebookNotFound) {
			return nil, errors.NotFoundf("notebook %s not found", notebookID)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get notebook")
	}

	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notes")
	}
	return buildNotesView(notes, notebookID), nil
}

// buildNotesView filters, partitions, and sorts notes for display.
// scope narrows to one notebook when non-empty.
func buildNotesView(notes []*domain.Note, scope string) *NotesView {
	view := &NotesView{}
	for _, note := range notes {
		if note.Archived {
			continue
		}
		if scope != "" && note.NotebookID != scope {
			continue
		}
		if note.Pinned {
			view.Pinned = append(view.Pinned, note)
		} else {
			view.Others = append(view.Others, note)
		}
	}
	sortByUpdatedDesc(view.Pinned)
	sortByUpdatedDesc(view.Others)
	return view
}

// sortByUpdatedDesc orders notes most recently updated first. The sort is
// stable so records updated at the same instant keep their insertion order.
func sortByUpdatedDesc(notes []*domain.Note) {
	slices.SortStableFunc(notes, func(a, b *domain.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
}

// AttachRecording appends a completed recording to a note.
func (s *NotesService) AttachRecording(ctx context.Context, noteID string, rec domain.AudioRecording) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	note.AttachRecording(rec)

	if err := s.store.UpdateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "attach recording")
	}

	s.logger.Info("recording attached",
		"note_id", noteID,
		"recording_id", rec.ID,
		"duration", rec.Duration,
	)
	return note, nil
}
