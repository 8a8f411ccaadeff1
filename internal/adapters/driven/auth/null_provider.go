package auth

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider sends requests without credentials. GitHub rejects
// unauthenticated GraphQL calls, so this only suits proxies and tests.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a token provider without credentials.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken returns an empty string since no authentication is needed.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// AuthMethod returns AuthMethodNone.
func (p *NullTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodNone
}

// IsAuthenticated returns false.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return false
}
