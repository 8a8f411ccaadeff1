package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure OrganizationService implements the interface.
var _ driving.OrganizationService = (*OrganizationService)(nil)

// OrganizationService reads organisation profiles.
type OrganizationService struct {
	transport driven.Transport
	queries   driven.QueryProvider
}

// NewOrganizationService creates a new organisation service.
func NewOrganizationService(transport driven.Transport, queries driven.QueryProvider) *OrganizationService {
	return &OrganizationService{transport: transport, queries: queries}
}

// Get returns the organisation, or nil when it does not exist.
func (s *OrganizationService) Get(ctx context.Context, org string) (*domain.Organization, error) {
	if err := requireParams(param{"org", org}); err != nil {
		return nil, err
	}

	organization, err := s.get(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}
	return organization, nil
}

func (s *OrganizationService) get(ctx context.Context, org string) (*domain.Organization, error) {
	logger.Section("Organization")
	logger.Debug("fetching organization %s", org)

	query, err := s.queries.Get(driven.QueryOrganization)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{"organization": org})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Organization *struct {
			Name            *string     `json:"name"`
			Login           *string     `json:"login"`
			Description     *string     `json:"description"`
			WebsiteURL      *string     `json:"websiteUrl"`
			AvatarURL       *string     `json:"avatarUrl"`
			Email           *string     `json:"email"`
			Location        *string     `json:"location"`
			CreatedAt       *string     `json:"createdAt"`
			UpdatedAt       *string     `json:"updatedAt"`
			MembersWithRole *totalCount `json:"membersWithRole"`
			Repositories    *totalCount `json:"repositories"`
		} `json:"organization"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}

	o := payload.Organization
	if o == nil {
		return nil, nil
	}
	return &domain.Organization{
		Name:            nonEmpty(o.Name),
		Login:           nonEmpty(o.Login),
		Description:     nonEmpty(o.Description),
		WebsiteURL:      nonEmpty(o.WebsiteURL),
		AvatarURL:       nonEmpty(o.AvatarURL),
		Email:           nonEmpty(o.Email),
		Location:        nonEmpty(o.Location),
		CreatedAt:       timestamp(o.CreatedAt),
		UpdatedAt:       timestamp(o.UpdatedAt),
		MemberCount:     o.MembersWithRole.value(),
		PublicRepoCount: o.Repositories.value(),
	}, nil
}
