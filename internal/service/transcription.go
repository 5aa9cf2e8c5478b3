package service

import (
	"context"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
)

// SetTranscription stores transcription text on one recording of a note.
func (s *NotesService) SetTranscription(ctx context.Context, noteID, recordingID, text string) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	rec := note.Recording(recordingID)
	if rec == nil {
		return nil, errors.NotFoundf("recording %s not found on note %s", recordingID, noteID)
	}
	rec.Transcription = text
	note.Touch()

	if err := s.store.UpdateNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "set transcription")
	}
	return note, nil
}

// TranscribeRecording runs the transcriber over an attached recording and
// stores the resulting text on it.
//
// The request is bounded by the configured transcription timeout. On timeout
// or transcriber failure the recording stays attached untranscribed; the
// caller may retry later.
func (s *NotesService) TranscribeRecording(ctx context.Context, noteID, recordingID string) (*domain.Note, error) {
	if s.transcriber == nil {
		return nil, errors.Unavailable("transcription is not available")
	}

	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	rec := note.Recording(recordingID)
	if rec == nil {
		return nil, errors.NotFoundf("recording %s not found on note %s", recordingID, noteID)
	}

	tctx := ctx
	if s.timeout.transcription > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, s.timeout.transcription)
		defer cancel()
	}

	result, err := s.transcriber.Transcribe(tctx, rec.Audio, rec.Encoding)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("transcription timed out", "note_id", noteID, "recording_id", recordingID)
			return nil, errors.Timeout("transcription timed out").WithCause(err)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "transcribe recording")
	}

	s.logger.Info("recording transcribed",
		"note_id", noteID,
		"recording_id", recordingID,
		"confidence", result.Confidence,
		"language", result.Language,
	)
	return s.SetTranscription(ctx, noteID, recordingID, result.Text)
}
