package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/cemcobancem/notevault/internal/domain"
)

const keySettings = "settings:" + domain.SettingsID

// GetSettings retrieves the singleton settings record.
// Returns default settings if none exist yet.
func (s *BadgerStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var settings domain.Settings

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if errors.Is(err, badger.ErrKeyNotFound) {
			// Return defaults if not set
			settings = *domain.NewSettings()
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &settings)
		})
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// PutSettings stores the singleton settings record.
func (s *BadgerStore) PutSettings(ctx context.Context, settings *domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if settings.ID == "" {
		settings.ID = domain.SettingsID
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// ClearAll wipes every collection, including settings.
func (s *BadgerStore) ClearAll(ctx context.Context) error {
	if err := s.notes.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	if err := s.tasks.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if err := s.notebooks.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear notebooks: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keySettings))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
