package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/service"
	"github.com/cemcobancem/notevault/internal/transcribe"
)

func TestTranscribe_TimeoutKeepsRecording(t *testing.T) {
	s := setupTestStore(t)
	log := testLogger()

	// Transcriber slower than the configured timeout
	slow := transcribe.NewSimulated(log, transcribe.WithLatency(5*time.Second))
	svc := service.NewNotesService(s, slow, service.Config{
		TranscriptionTimeout: 20 * time.Millisecond,
	}, log)

	ctx := context.Background()
	note, err := svc.Create(ctx, service.NoteDraft{Title: "voice"})
	require.NoError(t, err)

	rec := domain.NewAudioRecording([]byte("bytes"), "audio/webm", 2)
	_, err = svc.AttachRecording(ctx, note.ID, rec)
	require.NoError(t, err)

	_, err = svc.TranscribeRecording(ctx, note.ID, rec.ID)
	require.ErrorIs(t, err, errors.ErrTimeout)

	// The recording stays attached and untranscribed; retry is possible
	got, err := svc.Get(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, got.AudioRecordings, 1)
	require.Empty(t, got.AudioRecordings[0].Transcription)
}

func TestTranscribe_SetTranscriptionDirectly(t *testing.T) {
	svc, _ := setupNotesService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, service.NoteDraft{Title: "voice"})
	require.NoError(t, err)

	rec := domain.NewAudioRecording([]byte("bytes"), "audio/ogg", 1)
	_, err = svc.AttachRecording(ctx, note.ID, rec)
	require.NoError(t, err)

	got, err := svc.SetTranscription(ctx, note.ID, rec.ID, "hello world")
	require.NoError(t, err)
	require.Equal(t, "hello world", got.AudioRecordings[0].Transcription)
}
