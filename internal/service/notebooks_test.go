package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
)

func TestNotebooks_CreateWithDefaultColor(t *testing.T) {
	svc, _ := setupNotebooksService(t)
	ctx := context.Background()

	nb, err := svc.Create(ctx, "  Work  ", "")
	require.NoError(t, err)
	require.Equal(t, "Work", nb.Name)
	require.Regexp(t, `^#[0-9A-F]{6}$`, nb.Color)
}

func TestNotebooks_CreateWithExplicitColor(t *testing.T) {
	svc, _ := setupNotebooksService(t)

	nb, err := svc.Create(context.Background(), "Personal", "#ff0000")
	require.NoError(t, err)
	require.Equal(t, "#ff0000", nb.Color)
}

func TestNotebooks_CreateEmptyNameRejected(t *testing.T) {
	svc, _ := setupNotebooksService(t)

	_, err := svc.Create(context.Background(), "   ", "")
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestNotebooks_Rename(t *testing.T) {
	svc, _ := setupNotebooksService(t)
	ctx := context.Background()

	nb, err := svc.Create(ctx, "Work", "")
	require.NoError(t, err)
	before := nb.UpdatedAt

	nb, err = svc.Rename(ctx, nb.ID, "Projects")
	require.NoError(t, err)
	require.Equal(t, "Projects", nb.Name)
	require.True(t, nb.UpdatedAt.After(before))

	_, err = svc.Rename(ctx, nb.ID, "")
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestNotebooks_DeleteEmptySucceeds(t *testing.T) {
	svc, _ := setupNotebooksService(t)
	ctx := context.Background()

	nb, err := svc.Create(ctx, "Scratch", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, nb.ID))
	_, err = svc.Get(ctx, nb.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestNotebooks_DeleteNonEmptyRejected(t *testing.T) {
	svc, s := setupNotebooksService(t)
	ctx := context.Background()

	nb, err := svc.Create(ctx, "Work", "")
	require.NoError(t, err)

	note := &domain.Note{Title: "meeting", NotebookID: nb.ID}
	note.ID = "note_1"
	note.InitTimestamps()
	require.NoError(t, s.CreateNote(ctx, note))

	err = svc.Delete(ctx, nb.ID)
	require.ErrorIs(t, err, errors.ErrValidation)

	// Notebook survives the rejected deletion
	_, err = svc.Get(ctx, nb.ID)
	require.NoError(t, err)

	// Moving the note out unblocks deletion
	note.NotebookID = ""
	require.NoError(t, s.UpdateNote(ctx, note))
	require.NoError(t, svc.Delete(ctx, nb.ID))
}

func TestNotebooks_ListWithCounts(t *testing.T) {
	svc, s := setupNotebooksService(t)
	ctx := context.Background()

	work, err := svc.Create(ctx, "Work", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Archive", "")
	require.NoError(t, err)

	for _, id := range []string{"note_1", "note_2"} {
		note := &domain.Note{Title: id, NotebookID: work.ID}
		note.ID = id
		note.InitTimestamps()
		require.NoError(t, s.CreateNote(ctx, note))
	}

	infos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Ordered by name
	require.Equal(t, "Archive", infos[0].Name)
	require.Equal(t, 0, infos[0].NoteCount)
	require.Equal(t, "Work", infos[1].Name)
	require.Equal(t, 2, infos[1].NoteCount)
}
