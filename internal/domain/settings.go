package domain

import "time"

// Theme selects the visual mode the presentation layer applies.
type Theme string

// Themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// SettingsID is the fixed id of the singleton settings record.
const SettingsID = "settings"

// Settings is the singleton-per-store preferences record.
type Settings struct {
	ID         string     `json:"id"`
	Theme      Theme      `json:"theme" validate:"required,oneof=light dark system"`
	LastExport *time.Time `json:"lastExport,omitempty"`
}

// NewSettings returns the default settings record.
func NewSettings() *Settings {
	return &Settings{
		ID:    SettingsID,
		Theme: ThemeSystem,
	}
}

// MarkExported records the time of the latest successful export.
func (s *Settings) MarkExported(at time.Time) {
	s.LastExport = &at
}
