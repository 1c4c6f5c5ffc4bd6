package driving

import "github.com/custodia-labs/primer/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses raw and stores it under key.
	Set(key, raw string) error

	// Reset restores the default settings.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Keys lists the recognised settings keys in display order.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
