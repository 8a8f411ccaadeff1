package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/gitevents/internal/adapters/driven/facets"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/queries"
	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/normalisers/events"
	"github.com/custodia-labs/gitevents/internal/normalisers/locations"
)

// transportCall records one Execute invocation.
type transportCall struct {
	operation string
	variables map[string]any
}

// mockTransport answers GraphQL operations with canned data objects.
type mockTransport struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	calls     []transportCall
}

func newMockTransport() *mockTransport {
	return &mockTransport{responses: make(map[string]string)}
}

// respond sets the data object returned for operation.
func (m *mockTransport) respond(operation, data string) *mockTransport {
	m.responses[operation] = data
	return m
}

func (m *mockTransport) Execute(_ context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	op := operationOf(query)
	m.calls = append(m.calls, transportCall{operation: op, variables: variables})

	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.responses[op]
	if !ok {
		return nil, fmt.Errorf("unexpected operation %q", op)
	}
	return json.RawMessage(data), nil
}

func (m *mockTransport) lastCall() transportCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return transportCall{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockTransport) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func operationOf(query string) string {
	rest, _ := strings.CutPrefix(strings.TrimSpace(query), "query ")
	if i := strings.IndexAny(rest, "( {"); i >= 0 {
		return rest[:i]
	}
	return rest
}

// mockQueries fails every lookup.
type mockQueries struct{}

func (mockQueries) Get(name string) (string, error) {
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownQuery, name)
}

func newEventService(transport *mockTransport) *EventService {
	return NewEventService(transport, queries.New(""), events.New(facets.New()))
}

func newLocationService(transport *mockTransport) *LocationService {
	return NewLocationService(NewFileService(transport, queries.New("")), locations.New())
}
