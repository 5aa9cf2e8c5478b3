package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/service"
	"github.com/cemcobancem/notevault/internal/store"
	"github.com/cemcobancem/notevault/internal/transcribe"
	"github.com/cemcobancem/notevault/internal/validation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) *store.BadgerStore {
	t.Helper()

	s, err := store.Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func setupNotesService(t *testing.T) (*service.NotesService, *store.BadgerStore) {
	t.Helper()

	s := setupTestStore(t)
	log := testLogger()
	transcriber := transcribe.NewSimulated(log, transcribe.WithLatency(0))
	svc := service.NewNotesService(s, transcriber, service.Config{
		TranscriptionTimeout: 5 * time.Second,
	}, log)
	return svc, s
}

func setupTasksService(t *testing.T) *service.TasksService {
	t.Helper()
	return service.NewTasksService(setupTestStore(t), validation.New(), testLogger())
}

func setupNotebooksService(t *testing.T) (*service.NotebooksService, *store.BadgerStore) {
	t.Helper()

	s := setupTestStore(t)
	return service.NewNotebooksService(s, validation.New(), testLogger()), s
}
