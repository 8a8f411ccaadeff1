package mcp

import (
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Events lists and reads events.
	Events driving.EventService

	// Discussions lists repository discussions.
	Discussions driving.DiscussionService

	// Teams reads organisation teams.
	Teams driving.TeamService

	// Users reads user profiles.
	Users driving.UserService

	// Organizations reads organisation profiles.
	Organizations driving.OrganizationService

	// Locations reads the venue list.
	Locations driving.LocationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Events == nil {
		return ErrMissingEventService
	}
	// The other services are optional; their tools are only registered
	// when present.
	return nil
}
