package transfer

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
)

// Snapshot builds an export document from the current store contents.
// Audio recordings carry metadata only; the raw bytes stay local.
func (s *Service) Snapshot(ctx context.Context) (*Document, error) {
	notebooks, err := s.store.ListNotebooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notebooks")
	}
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list notes")
	}
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "list tasks")
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get settings")
	}

	stripped := make([]*domain.Note, len(notes))
	for i, note := range notes {
		stripped[i] = stripAudio(note)
	}

	return &Document{
		ExportDate: time.Now().UTC(),
		Notebooks:  notebooks,
		Notes:      stripped,
		Tasks:      tasks,
		Settings:   []*domain.Settings{settings},
	}, nil
}

// stripAudio copies a note with recording payloads removed. The store keeps
// the bytes; only the export sheds them.
func stripAudio(note *domain.Note) *domain.Note {
	if len(note.AudioRecordings) == 0 {
		return note
	}
	out := *note
	out.AudioRecordings = make([]domain.AudioRecording, len(note.AudioRecordings))
	for i, rec := range note.AudioRecordings {
		rec.Audio = nil
		out.AudioRecordings[i] = rec
	}
	return &out
}

// WriteTo streams an export document to w.
func (s *Service) WriteTo(ctx context.Context, w io.Writer) (*Document, error) {
	doc, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := json.MarshalWrite(w, doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "encode export")
	}
	return doc, nil
}

// Export writes a snapshot file into the export directory and records the
// export time in settings. It returns the file path.
//
// The filename embeds the export date, e.g. notevault-export-2026-08-30.json.
// A second export on the same day overwrites the first.
func (s *Service) Export(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "create export directory")
	}

	doc, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("notevault-export-%s.json", doc.ExportDate.Format("2006-01-02"))
	path := filepath.Join(s.exportDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "create export file")
	}
	if err := json.MarshalWrite(f, doc); err != nil {
		f.Close()
		return "", errors.Wrap(err, errors.CodeInternal, "write export file")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "close export file")
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "get settings")
	}
	settings.MarkExported(doc.ExportDate)
	if err := s.store.PutSettings(ctx, settings); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "record export time")
	}

	s.logger.Info("vault exported",
		"path", path,
		"notebooks", len(doc.Notebooks),
		"notes", len(doc.Notes),
		"tasks", len(doc.Tasks),
	)
	return path, nil
}
