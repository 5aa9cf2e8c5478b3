package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cemcobancem/notevault/internal/domain"
	"github.com/cemcobancem/notevault/internal/errors"
	"github.com/cemcobancem/notevault/internal/store"
)

// SettingsService manages the single app-wide settings record.
type SettingsService struct {
	store  store.Store
	logger *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(s store.Store, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: s, logger: logger}
}

// Get returns the settings record, falling back to defaults when none has
// been written yet.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "get settings")
	}
	return settings, nil
}

// SetTheme updates the theme preference.
func (s *SettingsService) SetTheme(ctx context.Context, theme domain.Theme) (*domain.Settings, error) {
	if !theme.Valid() {
		return nil, errors.Validationf("invalid theme %q", theme)
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.Theme = theme
	if err := s.store.PutSettings(ctx, settings); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "save settings")
	}

	s.logger.Info("theme changed", "theme", theme)
	return settings, nil
}

// MarkExported records when the last successful export finished.
func (s *SettingsService) MarkExported(ctx context.Context, at time.Time) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}

	settings.MarkExported(at)
	if err := s.store.PutSettings(ctx, settings); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "save settings")
	}
	return nil
}
