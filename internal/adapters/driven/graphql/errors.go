package graphql

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// ErrEmptyResponse indicates a response carried neither data nor errors.
var ErrEmptyResponse = errors.New("github: empty GraphQL response")

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap allows errors.Is(err, domain.ErrRateLimited).
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a non-2xx GitHub response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps well-known status codes to domain errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrAuthInvalid
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// ErrorEntry is one member of a GraphQL "errors" array.
type ErrorEntry struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// GraphQLError is returned when GitHub reports errors for a query.
type GraphQLError struct {
	Errors []ErrorEntry
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		msgs = append(msgs, entry.Message)
	}
	return "github: GraphQL error: " + strings.Join(msgs, "; ")
}

// GraphQL error types reported by GitHub.
const (
	typeNotFound    = "NOT_FOUND"
	typeRateLimited = "RATE_LIMITED"
)

// onlyNotFound reports whether every entry is a NOT_FOUND error.
func onlyNotFound(entries []ErrorEntry) bool {
	for _, e := range entries {
		if e.Type != typeNotFound {
			return false
		}
	}
	return len(entries) > 0
}

func hasType(entries []ErrorEntry, errType string) bool {
	for _, e := range entries {
		if e.Type == errType {
			return true
		}
	}
	return false
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return onlyNotFound(gqlErr.Errors)
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
