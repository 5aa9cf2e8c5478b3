package transfer

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"os"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/store"
)

// ImportFile imports an export file from disk.
func (s *Service) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNotFound, "open import file")
	}
	defer f.Close()
	return s.Import(ctx, f)
}

// Import reads an export document and merges it into the store.
//
// The document is parsed and validated in full before anything is written;
// a malformed or invalid file leaves the store untouched. Records then merge
// one by one: unknown ids are inserted, known ids are replaced only when the
// incoming UpdatedAt is strictly later. Ties keep the local record.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Result, error) {
	var doc Document
	if err := json.UnmarshalRead(r, &doc); err != nil {
		return nil, errors.Validation("import file is not valid JSON").WithCause(err)
	}

	if issues := validateDocument(&doc); len(issues) > 0 {
		return nil, errors.ValidationWithDetails("import file failed validation", issues)
	}

	result := &Result{}

	for _, nb := range doc.Notebooks {
		applied, err := s.mergeNotebook(ctx, nb)
		if err != nil {
			return nil, err
		}
		result.Notebooks.count(applied)
	}
	for _, note := range doc.Notes {
		applied, err := s.mergeNote(ctx, note)
		if err != nil {
			return nil, err
		}
		result.Notes.count(applied)
	}
	for _, task := range doc.Tasks {
		applied, err := s.mergeTask(ctx, task)
		if err != nil {
			return nil, err
		}
		result.Tasks.count(applied)
	}

	// The document carries settings as an array; only the first record counts.
	if len(doc.Settings) > 0 {
		applied, err := s.mergeSettings(ctx, doc.Settings[0])
		if err != nil {
			return nil, err
		}
		result.SettingsApplied = applied
	}

	s.logger.Info("vault imported",
		"notebooks_imported", result.Notebooks.Imported,
		"notes_imported", result.Notes.Imported,
		"tasks_imported", result.Tasks.Imported,
		"skipped", result.Notebooks.Skipped+result.Notes.Skipped+result.Tasks.Skipped,
	)
	return result, nil
}

func (c *CollectionResult) count(applied bool) {
	if applied {
		c.Imported++
	} else {
		c.Skipped++
	}
}

// validateDocument checks every record before any write happens.
func validateDocument(doc *Document) []string {
	var issues []string

	for i, nb := range doc.Notebooks {
		switch {
		case nb == nil:
			issues = append(issues, fmt.Sprintf("notebooks[%d]: null record", i))
		case nb.ID == "":
			issues = append(issues, fmt.Sprintf("notebooks[%d]: missing id", i))
		case nb.Name == "":
			issues = append(issues, fmt.Sprintf("notebooks[%d] (%s): missing name", i, nb.ID))
		case nb.UpdatedAt.IsZero():
			issues = append(issues, fmt.Sprintf("notebooks[%d] (%s): missing updatedAt", i, nb.ID))
		}
	}
	for i, note := range doc.Notes {
		switch {
		case note == nil:
			issues = append(issues, fmt.Sprintf("notes[%d]: null record", i))
		case note.ID == "":
			issues = append(issues, fmt.Sprintf("notes[%d]: missing id", i))
		case note.UpdatedAt.IsZero():
			issues = append(issues, fmt.Sprintf("notes[%d] (%s): missing updatedAt", i, note.ID))
		}
	}
	for i, task := range doc.Tasks {
		switch {
		case task == nil:
			issues = append(issues, fmt.Sprintf("tasks[%d]: null record", i))
		case task.ID == "":
			issues = append(issues, fmt.Sprintf("tasks[%d]: missing id", i))
		case task.Title == "":
			issues = append(issues, fmt.Sprintf("tasks[%d] (%s): missing title", i, task.ID))
		case !task.Priority.Valid():
			issues = append(issues, fmt.Sprintf("tasks[%d] (%s): unknown priority %q", i, task.ID, task.Priority))
		case !task.Status.Valid():
			issues = append(issues, fmt.Sprintf("tasks[%d] (%s): unknown status %q", i, task.ID, task.Status))
		case task.UpdatedAt.IsZero():
			issues = append(issues, fmt.Sprintf("tasks[%d] (%s): missing updatedAt", i, task.ID))
		}
	}
	for i, st := range doc.Settings {
		switch {
		case st == nil:
			issues = append(issues, fmt.Sprintf("settings[%d]: null record", i))
		case st.Theme != "" && !st.Theme.Valid():
			issues = append(issues, fmt.Sprintf("settings[%d]: unknown theme %q", i, st.Theme))
		}
	}

	return issues
}

func (s *Service) mergeNotebook(ctx context.Context, incoming *domain.Notebook) (bool, error) {
	existing, err := s.store.GetNotebook(ctx, incoming.ID)
	if err != nil && !errors.Is(err, store.ErrNotebookNotFound) {
		return false, errors.Wrap(err, errors.CodeInternal, "get notebook")
	}
	if existing != nil && !incoming.UpdatedAt.After(existing.UpdatedAt) {
		return false, nil
	}
	if err := s.store.PutNotebook(ctx, incoming); err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "put notebook")
	}
	return true, nil
}

func (s *Service) mergeNote(ctx context.Context, incoming *domain.Note) (bool, error) {
	existing, err := s.store.GetNote(ctx, incoming.ID)
	if err != nil && !errors.Is(err, store.ErrNoteNotFound) {
		return false, errors.Wrap(err, errors.CodeInternal, "get note")
	}
	if existing != nil && !incoming.UpdatedAt.After(existing.UpdatedAt) {
		return false, nil
	}
	if existing != nil {
		restoreAudio(incoming, existing)
	}
	if err := s.store.PutNote(ctx, incoming); err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "put note")
	}
	return true, nil
}

// restoreAudio keeps local recording bytes when the incoming record carries
// the same recording without them. Export files are metadata-only, so a
// round trip must not drop audio that exists locally.
func restoreAudio(incoming, existing *domain.Note) {
	for i := range incoming.AudioRecordings {
		rec := &incoming.AudioRecordings[i]
		if len(rec.Audio) > 0 {
			continue
		}
		if local := existing.Recording(rec.ID); local != nil {
			rec.Audio = local.Audio
		}
	}
}

func (s *Service) mergeTask(ctx context.Context, incoming *domain.Task) (bool, error) {
	existing, err := s.store.GetTask(ctx, incoming.ID)
	if err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		return false, errors.Wrap(err, errors.CodeInternal, "get task")
	}
	if existing != nil && !incoming.UpdatedAt.After(existing.UpdatedAt) {
		return false, nil
	}
	if err := s.store.PutTask(ctx, incoming); err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "put task")
	}
	return true, nil
}

// mergeSettings applies incoming settings only when they come from a later
// export than the local record. Settings carry no UpdatedAt, so LastExport
// serves as the merge clock.
func (s *Service) mergeSettings(ctx context.Context, incoming *domain.Settings) (bool, error) {
	existing, err := s.store.GetSettings(ctx)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "get settings")
	}

	if existing.LastExport != nil {
		if incoming.LastExport == nil || !incoming.LastExport.After(*existing.LastExport) {
			return false, nil
		}
	}

	incoming.ID = domain.SettingsID
	if err := s.store.PutSettings(ctx, incoming); err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "put settings")
	}
	return true, nil
}
