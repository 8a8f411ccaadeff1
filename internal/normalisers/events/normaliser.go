// Package events normalises GitHub issues that represent events, and their
// sub-issues that represent talks, into domain.Event values.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/logger"
	"github.com/custodia-labs/gitevents/internal/metrics"
)

// DefaultConcurrency is the number of bodies parsed at once.
const DefaultConcurrency = 4

// Ensure Normaliser implements the interface.
var _ driven.EventNormaliser = (*Normaliser)(nil)

// Normaliser builds sorted events from raw issue entries.
type Normaliser struct {
	parser      driven.FacetParser
	concurrency int
	metrics     *metrics.Manager
}

// Option configures a Normaliser.
type Option func(*Normaliser)

// WithConcurrency bounds concurrent facet parsing. Values below 1 are ignored.
func WithConcurrency(limit int) Option {
	return func(n *Normaliser) {
		if limit > 0 {
			n.concurrency = limit
		}
	}
}

// WithMetrics records normalisation counts on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(n *Normaliser) {
		n.metrics = m
	}
}

// New creates an event normaliser using parser for issue bodies.
func New(parser driven.FacetParser, opts ...Option) *Normaliser {
	n := &Normaliser{
		parser:      parser,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// parseJob fills dst with the facets of body.
type parseJob struct {
	body *string
	dst  *map[string]any
}

// Normalise converts entries to events, most recent first.
func (n *Normaliser) Normalise(ctx context.Context, entries []json.RawMessage) ([]domain.Event, error) {
	events := make([]domain.Event, len(entries))
	var jobs []parseJob

	for i, raw := range entries {
		issue := unwrapEntry(raw)

		events[i] = domain.Event{
			Title:     issue.str("title"),
			Number:    issue.integer("number"),
			URL:       issue.str("url"),
			Body:      issue.str("body"),
			Reactions: issue.reactions(),
			Talks:     []domain.Talk{},
		}
		jobs = append(jobs, parseJob{body: events[i].Body, dst: &events[i].Facets})

		for _, sub := range issue.nodes("subIssues") {
			events[i].Talks = append(events[i].Talks, domain.Talk{
				Title:     sub.str("title"),
				URL:       sub.str("url"),
				Body:      sub.str("body"),
				Author:    sub.author(),
				Reactions: sub.reactions(),
			})
		}
	}

	// Talk slices are complete, so their element addresses are now stable.
	for i := range events {
		for j := range events[i].Talks {
			talk := &events[i].Talks[j]
			jobs = append(jobs, parseJob{body: talk.Body, dst: &talk.Facets})
		}
	}

	if err := n.parseAll(ctx, jobs); err != nil {
		return nil, err
	}

	for i := range events {
		events[i].Date = eventDate(events[i].Facets)
	}

	sortByDate(events)

	logger.Debug("normalised %d events (%d bodies parsed)", len(events), len(jobs))
	n.metrics.AddEventsNormalised(len(events))
	n.metrics.AddFacetParses(len(jobs))

	return events, nil
}

// parseAll runs the facet parser over every job. The first failure cancels
// the remaining work and is returned.
func (n *Normaliser) parseAll(ctx context.Context, jobs []parseJob) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)

	for _, job := range jobs {
		g.Go(func() error {
			facets, err := n.parser.Parse(gctx, job.body)
			if err != nil {
				return fmt.Errorf("parse facets: %w", err)
			}
			if facets == nil {
				facets = map[string]any{}
			}
			*job.dst = facets
			return nil
		})
	}

	return g.Wait()
}

// dateLayouts are tried in order when reading facets.date.date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// eventDate reads facets.date.date. Missing or unparseable values give nil.
func eventDate(facets map[string]any) *time.Time {
	date, ok := facets["date"].(map[string]any)
	if !ok {
		return nil
	}
	value, ok := date["date"].(string)
	if !ok || value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	logger.Debug("ignoring unparseable event date %q", value)
	return nil
}

// sortByDate orders events newest first. Undated events follow every dated
// one; ties keep their input order.
func sortByDate(events []domain.Event) {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		switch {
		case a.Date == nil && b.Date == nil:
			return 0
		case a.Date == nil:
			return 1
		case b.Date == nil:
			return -1
		default:
			return b.Date.Compare(*a.Date)
		}
	})
}
