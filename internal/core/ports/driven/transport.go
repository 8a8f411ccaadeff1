package driven

import (
	"context"
	"encoding/json"
)

// Transport executes GraphQL documents.
// Implementations own authentication, rate limiting and cancellation.
type Transport interface {
	// Execute runs query with variables and returns the response's "data"
	// object. Network, authorisation and rate limit failures are returned
	// as errors whose message is propagated unchanged.
	Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)

// Execute calls f(ctx, query, variables).
func (f TransportFunc) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	return f(ctx, query, variables)
}
