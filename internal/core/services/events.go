package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Issue states used as event listing filters.
const (
	stateOpen   = "OPEN"
	stateClosed = "CLOSED"
)

// Ensure EventService implements the interface.
var _ driving.EventService = (*EventService)(nil)

// EventService lists events from labelled issues.
type EventService struct {
	transport  driven.Transport
	queries    driven.QueryProvider
	normaliser driven.EventNormaliser
}

// NewEventService creates a new event service.
func NewEventService(
	transport driven.Transport,
	queries driven.QueryProvider,
	normaliser driven.EventNormaliser,
) *EventService {
	return &EventService{
		transport:  transport,
		queries:    queries,
		normaliser: normaliser,
	}
}

// ListUpcoming returns open events.
func (s *EventService) ListUpcoming(
	ctx context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}); err != nil {
		return nil, err
	}

	events, err := s.list(ctx, org, repo, stateOpen, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}
	return events, nil
}

// ListPast returns closed events.
func (s *EventService) ListPast(
	ctx context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}); err != nil {
		return nil, err
	}

	events, err := s.list(ctx, org, repo, stateClosed, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch past events: %w", err)
	}
	return events, nil
}

func (s *EventService) list(
	ctx context.Context, org, repo, state string, page domain.Pagination,
) ([]domain.Event, error) {
	logger.Section("Events")
	logger.Debug("listing %s events in %s/%s (first %d)", state, org, repo, page.PageSize())

	query, err := s.queries.Get(driven.QueryEvents)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{
		"organization": org,
		"repository":   repo,
		"state":        state,
		"first":        page.PageSize(),
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Repository *struct {
			Issues *connection `json:"issues"`
		} `json:"repository"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	if payload.Repository == nil {
		return nil, fmt.Errorf("%w: repository %s/%s", domain.ErrNotFound, org, repo)
	}

	entries := payload.Repository.Issues.entries()
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return s.normaliser.Normalise(ctx, entries)
}

// Get returns a single event, or nil when the issue does not exist.
func (s *EventService) Get(ctx context.Context, org, repo string, number int) (*domain.Event, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}, param{"number", number}); err != nil {
		return nil, err
	}

	event, err := s.get(ctx, org, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event #%d: %w", number, err)
	}
	return event, nil
}

func (s *EventService) get(ctx context.Context, org, repo string, number int) (*domain.Event, error) {
	logger.Section("Event")
	logger.Debug("fetching event #%d in %s/%s", number, org, repo)

	query, err := s.queries.Get(driven.QueryEvent)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{
		"organization": org,
		"repository":   repo,
		"number":       number,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Repository *struct {
			Issue json.RawMessage `json:"issue"`
		} `json:"repository"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	if payload.Repository == nil {
		return nil, fmt.Errorf("%w: repository %s/%s", domain.ErrNotFound, org, repo)
	}
	if isNull(payload.Repository.Issue) {
		return nil, nil
	}

	// A bare issue node goes through the same path as edges.
	events, err := s.normaliser.Normalise(ctx, []json.RawMessage{payload.Repository.Issue})
	if err != nil {
		return nil, err
	}
	return &events[0], nil
}
