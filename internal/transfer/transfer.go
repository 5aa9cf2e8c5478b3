// Package transfer implements JSON export and import of the full vault.
//
// Export writes a date-stamped snapshot of notebooks, notes, tasks, and
// settings. Import reads such a snapshot back and merges it record by record
// using last-writer-wins on UpdatedAt, so two devices can exchange files in
// either direction without losing newer edits.
package transfer

import (
	"log/slog"
	"time"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/store"
)

// Document is the on-disk export format. Field names match the JSON the
// mobile app has always produced, so old export files import cleanly.
type Document struct {
	ExportDate time.Time          `json:"exportDate"`
	Notebooks  []*domain.Notebook `json:"notebooks"`
	Notes      []*domain.Note     `json:"notes"`
	Tasks      []*domain.Task     `json:"tasks"`
	Settings   []*domain.Settings `json:"settings"`
}

// CollectionResult counts the outcome of merging one collection.
type CollectionResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Result summarizes an import.
type Result struct {
	Notebooks       CollectionResult `json:"notebooks"`
	Notes           CollectionResult `json:"notes"`
	Tasks           CollectionResult `json:"tasks"`
	SettingsApplied bool             `json:"settingsApplied"`
}

// Service performs exports and imports against the store.
type Service struct {
	store     store.Store
	exportDir string
	logger    *slog.Logger
}

// NewService creates a transfer service writing exports into exportDir.
func NewService(s store.Store, exportDir string, logger *slog.Logger) *Service {
	return &Service{store: s, exportDir: exportDir, logger: logger}
}
