package driven

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
// Implementations handle token renewal transparently.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns empty string for unauthenticated access.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method (pat, app, none).
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if credentials are available.
	IsAuthenticated() bool
}
