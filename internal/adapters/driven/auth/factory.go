package auth

import (
	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// NewTokenProvider creates the provider selected by settings: the token
// unless an app private key is configured, then the app, then none.
func NewTokenProvider(settings *domain.AppSettings, opts ...AppOption) (driven.TokenProvider, error) {
	switch settings.AuthMethod() {
	case domain.AuthMethodPAT:
		logger.Debug("using GitHub PAT for authentication")
		return NewPATProvider(settings.GitHub.Token), nil
	case domain.AuthMethodApp:
		logger.Debug("using GitHub App %d for authentication", settings.App.ID)
		return NewAppProvider(settings.App, opts...)
	default:
		logger.Debug("no GitHub credentials configured")
		return NewNullTokenProvider(), nil
	}
}
