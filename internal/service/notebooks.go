package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/cemcobancem/notevault/internal/color"
	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/id"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/validation"
)

// NotebookInfo pairs a notebook with its note count for list views.
type NotebookInfo struct {
	*domain.Notebook
	NoteCount int
}

// NotebooksService orchestrates notebook operations.
type NotebooksService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewNotebooksService creates a new notebooks service.
func NewNotebooksService(s store.Store, v *validation.Validator, logger *slog.Logger) *NotebooksService {
	return &NotebooksService{store: s, validator: v, logger: logger}
}

// Create persists a new notebook. An empty colorHex gets a deterministic
// default derived from the notebook id.
func (s *NotebooksService) Create(ctx context.Context, name, colorHex string) (*domain.Notebook, error) {
	notebookID, err := id.Generate(id.PrefixNotebook)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate notebook id")
	}

	nb := &domain.Notebook{
		Name:  strings.TrimSpace(name),
		Color: colorHex,
	}
	nb.ID = notebookID
	nb.InitTimestamps()
	if nb.Color == "" {
		nb.Color = color.ForNotebook(nb.ID)
	}

	if err := s.validator.Validate(nb); err != nil {
		return nil, err
	}

	if err := s.store.CreateNotebook(ctx, nb); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create notebook")
	}

	s.logger.Info("notebook created", "notebook_id", nb.ID, "name", nb.Name)
	return nb, nil
}

// Get retrieves a notebook by id.
func (s *NotebooksService) Get(ctx context.Context, notebookID string) (*domain.Notebook, error) {
	nb, err := s.store.GetNotebook(ctx, notebookID)
	if err != nil {
		if errors.Is(err, store.ErrNotebookNotFound) {
			return nil, errors.NotFoundf("notebook %s not found", notebookID)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get notebook")
	}
	return nb, nil
}

// Rename updates the notebook name.
func (s *NotebooksService) Rename(ctx context.Context, notebookID, name string) (*domain.Notebook, error) {
	nb, err := s.Get(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	nb.Name = strings.TrimSpace(name)
	if err := s.validator.Validate(nb); err != nil {
		return nil, err
	}
	nb.Touch()

	if err := s.store.UpdateNotebook(ctx, nb); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "rename notebook")
	}
	return nb, nil
}

// SetColor updates the notebook accent color.
func (s *NotebooksService) SetColor(ctx context.Context, notebookID, colorHex string) (*domain.Notebook, error) {
	nb, err := s.Get(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	nb.Color = colorHex
	nb.Touch()

	if err := s.store.UpdateNotebook(ctx, nb); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "set notebook color")
	}
	return nb, nil
}

// Delete removes a notebook. A notebook still holding notes cannot be
// deleted; move or delete its notes first.
func (s *NotebooksService) Delete(ctx context.Context, notebookID string) error {
	nb, err := s.Get(ctx, notebookID)
	if err != nil {
		return err
	}

	count, err := s.store.CountNotesByNotebook(ctx, notebookID)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "count notebook notes")
	}
	if count > 0 {
		return errors.Validationf("notebook %q is not empty: it still holds %d notes", nb.Name, count)
	}

	if err := s.store.DeleteNotebook(ctx, notebookID); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete notebook")
	}

	s.logger.Info("notebook deleted", "notebook_id", notebookID, "name", nb.Name)
	return nil
}

// List returns all notebooks with note counts, ordered by name.
func (s *NotebooksService) List(ctx context.Context) ([]*NotebookInfo, error) {
	notebooks, err := s.store.ListNotebooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notebooks")
	}

	infos := make([]*NotebookInfo, 0, len(notebooks))
	for _, nb := range notebooks {
		count, err := s.store.CountNotesByNotebook(ctx, nb.ID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "count notebook notes")
		}
		infos = append(infos, &NotebookInfo{Notebook: nb, NoteCount: count})
	}
	slices.SortStableFunc(infos, func(a, b *NotebookInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos, nil
}
