package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/service"
)

func TestNotes_CreateAndGet(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{" personal ", "personal"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, note.ID)
	require.Equal(t, []string{"personal"}, note.Tags)
	require.False(t, note.UpdatedAt.IsZero())

	got, err := svc.Get(ctx, note.ID)
	require.NoError(t, err)
	require.Equal(t, "Groceries", got.Title)
}

func TestNotes_GetMissing(t *testing.T) {
	svc, _ := setupNotesService(t)

	_, err := svc.Get(context.Background(), "note_missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestNotes_SaveRefreshesUpdatedAt(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "Draft"})
	require.NoError(t, err)
	before := note.UpdatedAt

	saved, err := svc.Save(ctx, note.ID, service.NoteDraft{Title: "Final", Content: "done"})
	require.NoError(t, err)
	require.Equal(t, "Final", saved.Title)
	require.True(t, saved.UpdatedAt.After(before))
	require.Equal(t, note.CreatedAt, saved.CreatedAt)
}

func TestNotes_TogglePin(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "Important"})
	require.NoError(t, err)
	require.False(t, note.Pinned)

	// Each toggle flips the flag and strictly bumps UpdatedAt, even when
	// toggles land within the clock's resolution.
	prev := note.UpdatedAt
	for i := range 4 {
		note, err = svc.TogglePin(ctx, note.ID)
		require.NoError(t, err)
		require.Equal(t, i%2 == 0, note.Pinned)
		require.True(t, note.UpdatedAt.After(prev), "toggle %d must strictly bump UpdatedAt", i)
		prev = note.UpdatedAt
	}
}

func TestNotes_ListPartition(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, service.NoteDraft{Title: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, service.NoteDraft{Title: "b"})
	require.NoError(t, err)
	c, err := svc.Create(ctx, service.NoteDraft{Title: "c"})
	require.NoError(t, err)

	_, err = svc.TogglePin(ctx, b.ID)
	require.NoError(t, err)

	view, err := svc.List(ctx)
	require.NoError(t, err)

	// Pinned and others are disjoint and together cover all non-archived notes
	require.Len(t, view.Pinned, 1)
	require.Len(t, view.Others, 2)
	require.Equal(t, b.ID, view.Pinned[0].ID)

	// Most recently updated first: c was created after a
	require.Equal(t, c.ID, view.Others[0].ID)
	require.Equal(t, a.ID, view.Others[1].ID)
}

func TestNotes_EditResorts(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, service.NoteDraft{Title: "older"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.NoteDraft{Title: "newer"})
	require.NoError(t, err)

	// Editing the older note moves it to the top
	_, err = svc.Save(ctx, a.ID, service.NoteDraft{Title: "older, edited"})
	require.NoError(t, err)

	view, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, a.ID, view.Others[0].ID)
}

func TestNotes_ArchivedHiddenFromList(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "old stuff"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.NoteDraft{Title: "current"})
	require.NoError(t, err)

	_, err = svc.SetArchived(ctx, note.ID, true)
	require.NoError(t, err)

	view, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, view.Others, 1)
	require.Equal(t, "current", view.Others[0].Title)

	// Restoring brings it back
	_, err = svc.SetArchived(ctx, note.ID, false)
	require.NoError(t, err)

	view, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, view.Others, 2)
}

func TestNotes_ListByNotebook(t *testing.T) {
	svc, s := setupNotesService(t)
	ctx := context.Background()

	nb := &domain.Notebook{Name: "Work", Color: "#123456"}
	nb.ID = "nb_work"
	nb.InitTimestamps()
	require.NoError(t, s.CreateNotebook(ctx, nb))

	_, err := svc.Create(ctx, service.NoteDraft{Title: "scoped", NotebookID: nb.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.NoteDraft{Title: "loose"})
	require.NoError(t, err)

	view, err := svc.ListByNotebook(ctx, nb.ID)
	require.NoError(t, err)
	require.Len(t, view.Others, 1)
	require.Equal(t, "scoped", view.Others[0].Title)
}

func TestNotes_ListByNotebook_Missing(t *testing.T) {
	svc, _ := setupNotesService(t)

	_, err := svc.ListByNotebook(context.Background(), "nb_missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestNotes_Delete(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, note.ID))
	_, err = svc.Get(ctx, note.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestNotes_AttachAndTranscribe(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "voice memo"})
	require.NoError(t, err)

	rec := domain.NewAudioRecording([]byte("captured"), "audio/webm", 3)
	note, err = svc.AttachRecording(ctx, note.ID, rec)
	require.NoError(t, err)
	require.Len(t, note.AudioRecordings, 1)

	note, err = svc.TranscribeRecording(ctx, note.ID, rec.ID)
	require.NoError(t, err)
	require.NotEmpty(t, note.AudioRecordings[0].Transcription)
}

func TestNotes_TranscribeMissingRecording(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "no recordings"})
	require.NoError(t, err)

	_, err = svc.TranscribeRecording(ctx, note.ID, "rec_missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
