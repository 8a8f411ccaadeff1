package driving

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// DiscussionService lists repository discussions.
type DiscussionService interface {
	List(ctx context.Context, org, repo string, opts domain.DiscussionOptions) ([]domain.Discussion, error)
}

// TeamService reads organisation teams.
type TeamService interface {
	// Get returns the team, or nil when it does not exist.
	Get(ctx context.Context, org, teamSlug string) (*domain.Team, error)
}

// UserService reads user profiles.
type UserService interface {
	// Get returns the user, or nil when it does not exist.
	Get(ctx context.Context, login string) (*domain.User, error)
}

// OrganizationService reads organisation profiles.
type OrganizationService interface {
	// Get returns the organisation, or nil when it does not exist.
	Get(ctx context.Context, org string) (*domain.Organization, error)
}
