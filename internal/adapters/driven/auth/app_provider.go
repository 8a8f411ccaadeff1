package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// DefaultRefreshBuffer is how long before expiry a token is renewed.
const DefaultRefreshBuffer = 5 * time.Minute

// Ensure AppProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*AppProvider)(nil)

// AppProvider mints GitHub App installation tokens and reuses each one
// until shortly before it expires.
type AppProvider struct {
	appID          int64
	installationID int64
	key            *rsa.PrivateKey
	httpClient     *http.Client
	baseURL        string
	refreshBuffer  time.Duration
	now            func() time.Time

	mu     sync.RWMutex
	cached *domain.InstallationToken
}

// AppOption configures an AppProvider.
type AppOption func(*AppProvider)

// WithHTTPClient sets the client used to mint tokens.
func WithHTTPClient(hc *http.Client) AppOption {
	return func(p *AppProvider) {
		p.httpClient = hc
	}
}

// WithBaseURL points token minting at a different REST API root.
func WithBaseURL(baseURL string) AppOption {
	return func(p *AppProvider) {
		p.baseURL = baseURL
	}
}

// WithRefreshBuffer changes how early tokens are renewed.
func WithRefreshBuffer(d time.Duration) AppOption {
	return func(p *AppProvider) {
		p.refreshBuffer = d
	}
}

// NewAppProvider creates a token provider for a GitHub App installation.
func NewAppProvider(creds domain.AppCredentials, opts ...AppOption) (*AppProvider, error) {
	if !creds.IsConfigured() {
		return nil, fmt.Errorf("%w: app id, installation id and private key are required", domain.ErrAuthRequired)
	}

	key, err := ParsePrivateKey([]byte(creds.PrivateKey))
	if err != nil {
		return nil, err
	}

	p := &AppProvider{
		appID:          creds.ID,
		installationID: creds.InstallationID,
		key:            key,
		refreshBuffer:  DefaultRefreshBuffer,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GetToken returns a valid installation token, minting one if necessary.
func (p *AppProvider) GetToken(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock
	p.mu.RLock()
	if !p.cached.IsExpired(p.refreshBuffer) {
		token := p.cached.Token
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if !p.cached.IsExpired(p.refreshBuffer) {
		return p.cached.Token, nil
	}

	token, err := p.mint(ctx)
	if err != nil {
		return "", err
	}
	p.cached = token
	return token.Token, nil
}

// mint exchanges an app JWT for an installation token.
func (p *AppProvider) mint(ctx context.Context) (*domain.InstallationToken, error) {
	jwt, err := signAppJWT(p.appID, p.key, p.now())
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(p.httpClient).WithAuthToken(jwt)
	if p.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(p.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		client.BaseURL = base
	}

	tok, _, err := client.Apps.CreateInstallationToken(ctx, p.installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("create installation token: %w", err)
	}

	logger.Debug("minted installation token for installation %d, expires %s",
		p.installationID, tok.GetExpiresAt().Format(time.RFC3339))

	return &domain.InstallationToken{
		Token:     tok.GetToken(),
		ExpiresAt: tok.GetExpiresAt().Time,
	}, nil
}

// AuthMethod returns AuthMethodApp.
func (p *AppProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodApp
}

// IsAuthenticated returns true; credentials are checked at construction.
func (p *AppProvider) IsAuthenticated() bool {
	return true
}
