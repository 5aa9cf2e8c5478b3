package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/cemcobancem/notevault/internal/domain"
)

// BadgerStore is the default Store implementation, backed by a Badger
// key-value database.
type BadgerStore struct {
	db     *badger.DB
	logger *slog.Logger

	notebooks *Entity[domain.Notebook]
	notes     *Entity[domain.Note]
	tasks     *Entity[domain.Task]
}

// Compile-time interface check.
var _ Store = (*BadgerStore)(nil)

// Open creates a new Badger-backed store at the given path.
// An error here means the store is unusable and the app must not start.
func Open(path string, logger *slog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &BadgerStore{
		db:     db,
		logger: logger,
	}

	s.notebooks = NewEntity[domain.Notebook](s, "notebook:")
	s.notes = NewEntity[domain.Note](s, "note:").
		WithIndex("notebook", func(n *domain.Note) []string {
			if n.NotebookID == "" {
				return nil
			}
			return []string{n.NotebookID}
		})
	s.tasks = NewEntity[domain.Task](s, "task:")

	if logger != nil {
		logger.Info("badger database opened", "path", path)
	}

	return s, nil
}

// Close gracefully closes the database connection.
func (s *BadgerStore) Close() error {
	if s.logger != nil {
		s.logger.Info("closing database connection")
	}
	return s.db.Close()
}
