// Package store defines the persistence interface for NoteVault and provides
// the default Badger-backed implementation.
package store

import (
	"context"

	"github.com/cemcobancem/notevault/internal/domain"
)

// Store defines the interface for all persistence operations.
//
// Operations are atomic per record. There are no cross-collection
// transactions: referential rules like "can't delete a non-empty notebook"
// live in the calling service, not here.
//
// Opening a store reports initialization failure distinctly (the Open call
// itself errors) from per-operation failures, so callers can block startup
// on an unusable store but keep running after a single failed query.
type Store interface {
	// Lifecycle
	Close() error

	// Notebooks
	CreateNotebook(ctx context.Context, nb *domain.Notebook) error
	GetNotebook(ctx context.Context, id string) (*domain.Notebook, error)
	UpdateNotebook(ctx context.Context, nb *domain.Notebook) error
	PutNotebook(ctx context.Context, nb *domain.Notebook) error
	DeleteNotebook(ctx context.Context, id string) error
	ListNotebooks(ctx context.Context) ([]*domain.Notebook, error)
	CountNotebooks(ctx context.Context) (int, error)

	// Notes
	CreateNote(ctx context.Context, note *domain.Note) error
	GetNote(ctx context.Context, id string) (*domain.Note, error)
	UpdateNote(ctx context.Context, note *domain.Note) error
	PutNote(ctx context.Context, note *domain.Note) error
	DeleteNote(ctx context.Context, id string) error
	ListNotes(ctx context.Context) ([]*domain.Note, error)
	CountNotes(ctx context.Context) (int, error)
	CountNotesByNotebook(ctx context.Context, notebookID string) (int, error)

	// Tasks
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	PutTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Settings (singleton record)
	GetSettings(ctx context.Context) (*domain.Settings, error)
	PutSettings(ctx context.Context, settings *domain.Settings) error

	// Maintenance
	ClearAll(ctx context.Context) error
}
