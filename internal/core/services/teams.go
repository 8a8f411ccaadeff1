package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure TeamService implements the interface.
var _ driving.TeamService = (*TeamService)(nil)

// TeamService reads organisation teams and their members.
type TeamService struct {
	transport driven.Transport
	queries   driven.QueryProvider
}

// NewTeamService creates a new team service.
func NewTeamService(transport driven.Transport, queries driven.QueryProvider) *TeamService {
	return &TeamService{transport: transport, queries: queries}
}

// Get returns the team with its members, or nil when it does not exist.
func (s *TeamService) Get(ctx context.Context, org, teamSlug string) (*domain.Team, error) {
	if err := requireParams(param{"org", org}, param{"teamSlug", teamSlug}); err != nil {
		return nil, err
	}

	team, err := s.get(ctx, org, teamSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team %s: %w", teamSlug, err)
	}
	return team, nil
}

func (s *TeamService) get(ctx context.Context, org, teamSlug string) (*domain.Team, error) {
	logger.Section("Team")
	logger.Debug("fetching team %s/%s", org, teamSlug)

	query, err := s.queries.Get(driven.QueryTeam)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{
		"organization": org,
		"teamSlug":     teamSlug,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Organization *struct {
			Team *teamPayload `json:"team"`
		} `json:"organization"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	if payload.Organization == nil || payload.Organization.Team == nil {
		return nil, nil
	}
	return payload.Organization.Team.toDomain(), nil
}

type teamPayload struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Members     *struct {
		Nodes []struct {
			Login          string                 `json:"login"`
			Name           *string                `json:"name"`
			AvatarURL      string                 `json:"avatarUrl"`
			Bio            *string                `json:"bio"`
			WebsiteURL     *string                `json:"websiteUrl"`
			Company        *string                `json:"company"`
			Location       *string                `json:"location"`
			SocialAccounts *socialAccountsPayload `json:"socialAccounts"`
		} `json:"nodes"`
	} `json:"members"`
}

func (p *teamPayload) toDomain() *domain.Team {
	team := &domain.Team{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: nonEmpty(p.Description),
		Members:     []domain.TeamMember{},
	}
	if p.Members == nil {
		return team
	}
	for _, m := range p.Members.Nodes {
		team.Members = append(team.Members, domain.TeamMember{
			Login:          m.Login,
			Name:           nonEmpty(m.Name),
			AvatarURL:      m.AvatarURL,
			Bio:            nonEmpty(m.Bio),
			WebsiteURL:     nonEmpty(m.WebsiteURL),
			Company:        nonEmpty(m.Company),
			Location:       nonEmpty(m.Location),
			SocialAccounts: m.SocialAccounts.accounts(),
		})
	}
	return team
}
