package store

import (
	"errors"
	"fmt"
)

// Generic sentinels returned by the entity layer.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when creating a record whose id is taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Per-collection sentinels. These wrap the generic ones so callers can match
// either the specific collection or just "some record was missing".
var (
	// ErrNoteNotFound is returned when a note is not found in the store.
	ErrNoteNotFound = fmt.Errorf("note: %w", ErrNotFound)
	// ErrTaskNotFound is returned when a task is not found in the store.
	ErrTaskNotFound = fmt.Errorf("task: %w", ErrNotFound)
	// ErrNotebookNotFound is returned when a notebook is not found in the store.
	ErrNotebookNotFound = fmt.Errorf("notebook: %w", ErrNotFound)
	// ErrDuplicateNote is returned when creating a note that already exists.
	ErrDuplicateNote = fmt.Errorf("note: %w", ErrAlreadyExists)
	// ErrDuplicateTask is returned when creating a task that already exists.
	ErrDuplicateTask = fmt.Errorf("task: %w", ErrAlreadyExists)
	// ErrDuplicateNotebook is returned when creating a notebook that already exists.
	ErrDuplicateNotebook = fmt.Errorf("notebook: %w", ErrAlreadyExists)
)

// translate maps the generic entity-layer sentinels to per-collection ones.
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return notFound
	case errors.Is(err, ErrAlreadyExists):
		return duplicate
	default:
		return err
	}
}
