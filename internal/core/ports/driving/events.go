package driving

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// EventService lists events kept as labelled issues in a repository.
type EventService interface {
	// ListUpcoming returns open events, most recent date first.
	ListUpcoming(ctx context.Context, org, repo string, page domain.Pagination) ([]domain.Event, error)

	// ListPast returns closed events, most recent date first.
	ListPast(ctx context.Context, org, repo string, page domain.Pagination) ([]domain.Event, error)

	// Get returns one event by issue number, or nil when it does not exist.
	Get(ctx context.Context, org, repo string, number int) (*domain.Event, error)
}
