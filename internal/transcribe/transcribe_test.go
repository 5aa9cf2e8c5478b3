package transcribe_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/transcribe"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSimulated_ReturnsResult(t *testing.T) {
	tr := transcribe.NewSimulated(testLogger(), transcribe.WithLatency(0))

	result, err := tr.Transcribe(context.Background(), []byte("audio"), "audio/webm")
	require.NoError(t, err)
	require.NotEmpty(t, result.Text)
	require.Equal(t, 0.95, result.Confidence)
	require.Equal(t, "en", result.Language)
}

func TestSimulated_EmptyAudioRejected(t *testing.T) {
	tr := transcribe.NewSimulated(testLogger(), transcribe.WithLatency(0))

	_, err := tr.Transcribe(context.Background(), nil, "audio/webm")
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestSimulated_HonorsCancellation(t *testing.T) {
	tr := transcribe.NewSimulated(testLogger(), transcribe.WithLatency(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := tr.Transcribe(ctx, []byte("audio"), "audio/webm")
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("transcribe did not return after cancellation")
	}
}

func TestSimulated_HonorsDeadline(t *testing.T) {
	tr := transcribe.NewSimulated(testLogger(), transcribe.WithLatency(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := tr.Transcribe(ctx, []byte("audio"), "audio/webm")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
