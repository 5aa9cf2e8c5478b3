package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cemcobancem/notevault/internal/domain"
)

// GetSettings retrieves the singleton settings record.
// Returns default settings if none exist yet.
func (s *Store) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var (
		settings   domain.Settings
		theme      string
		lastExport sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, theme, last_export FROM settings WHERE id = ?`,
		domain.SettingsID).Scan(&settings.ID, &theme, &lastExport)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings.Theme = domain.Theme(theme)
	if settings.LastExport, err = parseNullableTime(lastExport); err != nil {
		return nil, err
	}
	return &settings, nil
}

// PutSettings stores the singleton settings record.
func (s *Store) PutSettings(ctx context.Context, settings *domain.Settings) error {
	if settings.ID == "" {
		settings.ID = domain.SettingsID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, theme, last_export)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   theme = excluded.theme,
		   last_export = excluded.last_export`,
		settings.ID, string(settings.Theme), formatNullableTime(settings.LastExport))
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	return nil
}
