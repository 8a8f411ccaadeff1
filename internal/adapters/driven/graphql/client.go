package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/logger"
	"github.com/custodia-labs/gitevents/internal/metrics"
)

const (
	// DefaultEndpoint is the public GitHub GraphQL API.
	DefaultEndpoint = "https://api.github.com/graphql"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultTokenTimeout bounds a token fetch made by the HTTP transport.
	DefaultTokenTimeout = 10 * time.Second
)

// Ensure Client implements the interface.
var _ driven.Transport = (*Client)(nil)

// Client sends GraphQL documents to GitHub.
type Client struct {
	endpoint      string
	tokenProvider driven.TokenProvider
	httpClient    *http.Client
	rateLimiter   *RateLimiter
	metrics       *metrics.Manager
	tokenTimeout  time.Duration
	log           *zap.Logger

	once sync.Once
	gh   *gh.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint, e.g. for GitHub Enterprise.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the base HTTP client. Its transport is wrapped with
// authentication.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimiter replaces the default rate limiter.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithMetrics records request outcomes on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTokenTimeout bounds each token fetch made by the HTTP transport.
func WithTokenTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.tokenTimeout = d
		}
	}
}

// NewClient creates a GraphQL client authenticating with tokenProvider.
func NewClient(tokenProvider driven.TokenProvider, opts ...Option) *Client {
	c := &Client{
		endpoint:      DefaultEndpoint,
		tokenProvider: tokenProvider,
		rateLimiter:   NewDefaultRateLimiter(),
		tokenTimeout:  DefaultTokenTimeout,
		log:           logger.Named("graphql"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// ensureClient initialises the go-github client on first use.
func (c *Client) ensureClient() *gh.Client {
	c.once.Do(func() {
		base := c.httpClient
		if base == nil {
			base = &http.Client{Timeout: DefaultTimeout}
		}

		hc := base
		if c.tokenProvider != nil && c.tokenProvider.AuthMethod() != domain.AuthMethodNone {
			hc = &http.Client{
				Timeout: base.Timeout,
				Transport: &oauth2.Transport{
					Source: &tokenSource{provider: c.tokenProvider, timeout: c.tokenTimeout},
					Base:   base.Transport,
				},
			}
		}
		c.gh = gh.NewClient(hc)
	})
	return c.gh
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorEntry    `json:"errors"`
}

// Execute runs query and returns the "data" object of the response.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	log := c.log.With(zap.String("request_id", uuid.NewString()))
	log.Debug("graphql request",
		zap.String("operation", operationName(query)),
		zap.Any("variables", variables))

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordRequest(outcome(err), 0)
		if IsRateLimited(err) {
			return nil, err
		}
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if err := c.resolveToken(ctx); err != nil {
		c.metrics.RecordRequest(outcome(err), 0)
		return nil, err
	}

	client := c.ensureClient()
	req, err := client.NewRequest(http.MethodPost, c.endpoint, &request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	var body response
	resp, err := client.Do(ctx, req, &body)
	elapsed := time.Since(start)

	if resp != nil && resp.Response != nil {
		c.rateLimiter.UpdateFromResponse(resp.Response)
		c.metrics.SetRateLimitRemaining(c.rateLimiter.Remaining())
	}

	if err == nil {
		err = c.checkErrors(log, &body)
	} else {
		err = c.wrapError(err)
	}

	c.metrics.RecordRequest(outcome(err), elapsed)
	if err != nil {
		log.Debug("graphql request failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		return nil, err
	}

	log.Debug("graphql response", zap.Duration("elapsed", elapsed), zap.Int("bytes", len(body.Data)))
	return body.Data, nil
}

// checkErrors inspects the GraphQL "errors" array. NOT_FOUND errors that
// come with data are dropped so that missing entities read as null.
func (c *Client) checkErrors(log *zap.Logger, body *response) error {
	if len(body.Errors) > 0 {
		switch {
		case hasType(body.Errors, typeRateLimited):
			return c.rateLimiter.rateLimitError()
		case onlyNotFound(body.Errors) && !isNull(body.Data):
			log.Debug("ignoring not found errors", zap.Int("count", len(body.Errors)))
		default:
			return &GraphQLError{Errors: body.Errors}
		}
	}
	if isNull(body.Data) {
		return ErrEmptyResponse
	}
	return nil
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{Message: ghErr.Message}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
			if ghErr.Response.Request != nil {
				apiErr.URL = ghErr.Response.Request.URL.String()
			}
		}
		return apiErr
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		rl := c.rateLimiter.rateLimitError()
		if abuseErr.RetryAfter != nil {
			rl.ResetAt = time.Now().Add(*abuseErr.RetryAfter)
		}
		return rl
	}

	return fmt.Errorf("graphql request: %w", err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case IsRateLimited(err):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeError
	}
}

// operationName returns the name of the first operation in a document.
func operationName(query string) string {
	q := strings.TrimSpace(query)
	for _, kw := range []string{"query ", "mutation "} {
		if rest, ok := strings.CutPrefix(q, kw); ok {
			end := strings.IndexAny(rest, "( {")
			if end < 0 {
				return strings.TrimSpace(rest)
			}
			return rest[:end]
		}
	}
	return "anonymous"
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// resolveToken fetches the token under the caller's context, so a slow
// installation token mint is cancelled with the request. Providers cache
// the result, and the transport's later fetch reuses it.
func (c *Client) resolveToken(ctx context.Context) error {
	if c.tokenProvider == nil || c.tokenProvider.AuthMethod() == domain.AuthMethodNone {
		return nil
	}
	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if token == "" {
		return domain.ErrAuthRequired
	}
	return nil
}

// tokenSource adapts a TokenProvider to oauth2. The provider is asked on
// every request so renewed installation tokens are picked up. oauth2 gives
// no request context, so each fetch is bounded by timeout.
type tokenSource struct {
	provider driven.TokenProvider
	timeout  time.Duration
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	token, err := s.provider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}
	if token == "" {
		return nil, domain.ErrAuthRequired
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
