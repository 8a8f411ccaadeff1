package driving

import "github.com/custodia-labs/gitevents/internal/core/domain"

// SettingsService resolves configuration from the config file and the
// environment.
type SettingsService interface {
	// Get returns the effective settings. Environment variables win over
	// the config file.
	Get() (*domain.AppSettings, error)

	// Set stores one config file key.
	Set(key string, value any) error

	// Path returns the config file location.
	Path() string
}
