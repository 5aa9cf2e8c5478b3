package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/store"
)

func setupTestStore(t *testing.T) *store.BadgerStore {
	t.Helper()

	s, err := store.Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newTestNote(id, title string) *domain.Note {
	note := &domain.Note{Title: title, Content: "content of " + title}
	note.ID = id
	note.InitTimestamps()
	return note
}

func newTestTask(id, title string) *domain.Task {
	task := &domain.Task{
		Title:    title,
		Priority: domain.PriorityMedium,
		Status:   domain.StatusOpen,
	}
	task.ID = id
	task.InitTimestamps()
	return task
}

func newTestNotebook(id, name string) *domain.Notebook {
	nb := &domain.Notebook{Name: name, Color: "#aabbcc"}
	nb.ID = id
	nb.InitTimestamps()
	return nb
}

func TestNotes_CRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	note := newTestNote("note_1", "First")
	require.NoError(t, s.CreateNote(ctx, note))

	// Duplicate creation is rejected
	err := s.CreateNote(ctx, note)
	require.ErrorIs(t, err, store.ErrDuplicateNote)

	got, err := s.GetNote(ctx, "note_1")
	require.NoError(t, err)
	require.Equal(t, "First", got.Title)

	got.Title = "Renamed"
	got.Touch()
	require.NoError(t, s.UpdateNote(ctx, got))

	got, err = s.GetNote(ctx, "note_1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)

	require.NoError(t, s.DeleteNote(ctx, "note_1"))

	_, err = s.GetNote(ctx, "note_1")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is a no-op
	require.NoError(t, s.DeleteNote(ctx, "note_1"))
}

func TestNotes_UpdateMissing(t *testing.T) {
	s := setupTestStore(t)

	err := s.UpdateNote(context.Background(), newTestNote("note_ghost", "ghost"))
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNotes_PutInsertsOrReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	note := newTestNote("note_1", "v1")
	require.NoError(t, s.PutNote(ctx, note))

	note.Title = "v2"
	require.NoError(t, s.PutNote(ctx, note))

	got, err := s.GetNote(ctx, "note_1")
	require.NoError(t, err)
	require.Equal(t, "v2", got.Title)
}

func TestNotes_RoundTripPreservesFields(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	note := newTestNote("note_1", "Voice note")
	note.Tags = []string{"work", "ideas"}
	note.Pinned = true
	note.NotebookID = "nb_1"
	note.AudioRecordings = []domain.AudioRecording{
		domain.NewAudioRecording([]byte("raw-audio"), "audio/webm", 7),
	}

	require.NoError(t, s.CreateNote(ctx, note))

	got, err := s.GetNote(ctx, "note_1")
	require.NoError(t, err)
	require.Equal(t, note.Tags, got.Tags)
	require.True(t, got.Pinned)
	require.Equal(t, "nb_1", got.NotebookID)
	require.Len(t, got.AudioRecordings, 1)
	require.Equal(t, []byte("raw-audio"), got.AudioRecordings[0].Audio)
	require.Equal(t, 7, got.AudioRecordings[0].Duration)
}

func TestCountNotesByNotebook(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"note_1", "note_2"} {
		note := newTestNote(id, id)
		note.NotebookID = "nb_work"
		require.NoError(t, s.CreateNote(ctx, note))
	}
	loose := newTestNote("note_3", "loose")
	require.NoError(t, s.CreateNote(ctx, loose))

	count, err := s.CountNotesByNotebook(ctx, "nb_work")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = s.CountNotesByNotebook(ctx, "nb_empty")
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// Moving a note out of the notebook updates the index
	note, err := s.GetNote(ctx, "note_1")
	require.NoError(t, err)
	note.NotebookID = ""
	require.NoError(t, s.UpdateNote(ctx, note))

	count, err = s.CountNotesByNotebook(ctx, "nb_work")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// So does deleting
	require.NoError(t, s.DeleteNote(ctx, "note_2"))
	count, err = s.CountNotesByNotebook(ctx, "nb_work")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestTasks_CRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	task := newTestTask("task_1", "Do the thing")
	require.NoError(t, s.CreateTask(ctx, task))

	got, err := s.GetTask(ctx, "task_1")
	require.NoError(t, err)
	require.Equal(t, domain.PriorityMedium, got.Priority)

	got.Status = domain.StatusDone
	require.NoError(t, s.UpdateTask(ctx, got))

	got, err = s.GetTask(ctx, "task_1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, got.Status)

	count, err := s.CountTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, s.DeleteTask(ctx, "task_1"))
	_, err = s.GetTask(ctx, "task_1")
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTasks_NilDueDateRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	task := newTestTask("task_1", "No deadline")
	require.NoError(t, s.CreateTask(ctx, task))

	got, err := s.GetTask(ctx, "task_1")
	require.NoError(t, err)
	require.Nil(t, got.DueDate)
}

func TestNotebooks_CRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	nb := newTestNotebook("nb_1", "Work")
	require.NoError(t, s.CreateNotebook(ctx, nb))

	err := s.CreateNotebook(ctx, nb)
	require.ErrorIs(t, err, store.ErrDuplicateNotebook)

	got, err := s.GetNotebook(ctx, "nb_1")
	require.NoError(t, err)
	require.Equal(t, "Work", got.Name)
	require.Equal(t, "#aabbcc", got.Color)

	require.NoError(t, s.DeleteNotebook(ctx, "nb_1"))
	_, err = s.GetNotebook(ctx, "nb_1")
	require.ErrorIs(t, err, store.ErrNotebookNotFound)
}

func TestList_ReturnsAll(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"note_a", "note_b", "note_c"} {
		require.NoError(t, s.CreateNote(ctx, newTestNote(id, id)))
	}

	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
}

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeSystem, settings.Theme)
	require.Nil(t, settings.LastExport)
}

func TestSettings_PutAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	settings := domain.NewSettings()
	settings.Theme = domain.ThemeDark
	now := time.Now().UTC()
	settings.MarkExported(now)
	require.NoError(t, s.PutSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, got.Theme)
	require.NotNil(t, got.LastExport)
	require.True(t, got.LastExport.Equal(now))
}

func TestClearAll(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateNote(ctx, newTestNote("note_1", "n")))
	require.NoError(t, s.CreateTask(ctx, newTestTask("task_1", "t")))
	require.NoError(t, s.CreateNotebook(ctx, newTestNotebook("nb_1", "b")))
	settings := domain.NewSettings()
	settings.Theme = domain.ThemeLight
	require.NoError(t, s.PutSettings(ctx, settings))

	require.NoError(t, s.ClearAll(ctx))

	notes, err := s.CountNotes(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, notes)
	tasks, err := s.CountTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, tasks)
	notebooks, err := s.CountNotebooks(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, notebooks)

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeSystem, got.Theme)
}
