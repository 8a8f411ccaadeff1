package driven

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// EventNormaliser converts raw issue entries into ordered events.
type EventNormaliser interface {
	// Normalise accepts entries that are either edge wrappers ({"node": ...})
	// or bare issue nodes, and returns events sorted by date, most recent
	// first, undated events last. Malformed fields degrade to nil or empty;
	// only a facet parser failure fails the call.
	Normalise(ctx context.Context, entries []json.RawMessage) ([]domain.Event, error)
}

// LocationValidator partitions an untrusted venue list.
type LocationValidator interface {
	// Validate returns the valid, normalised venues plus one diagnostic per
	// rejected element. A value that is not a JSON array fails with
	// domain.ErrLocationsNotArray.
	Validate(raw json.RawMessage) (*domain.LocationResult, error)
}
