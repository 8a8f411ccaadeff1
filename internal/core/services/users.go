package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure UserService implements the interface.
var _ driving.UserService = (*UserService)(nil)

// UserService reads user profiles.
type UserService struct {
	transport driven.Transport
	queries   driven.QueryProvider
}

// NewUserService creates a new user service.
func NewUserService(transport driven.Transport, queries driven.QueryProvider) *UserService {
	return &UserService{transport: transport, queries: queries}
}

// Get returns the user, or nil when no such login exists.
func (s *UserService) Get(ctx context.Context, login string) (*domain.User, error) {
	if err := requireParams(param{"login", login}); err != nil {
		return nil, err
	}

	user, err := s.get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *UserService) get(ctx context.Context, login string) (*domain.User, error) {
	logger.Section("User")
	logger.Debug("fetching user %s", login)

	query, err := s.queries.Get(driven.QueryUser)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{"login": login})
	if err != nil {
		return nil, err
	}

	var payload struct {
		User *userPayload `json:"user"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil {
		return nil, nil
	}
	return payload.User.toDomain(), nil
}

type userPayload struct {
	Login          *string                `json:"login"`
	Name           *string                `json:"name"`
	Bio            *string                `json:"bio"`
	AvatarURL      *string                `json:"avatarUrl"`
	URL            *string                `json:"url"`
	WebsiteURL     *string                `json:"websiteUrl"`
	Company        *string                `json:"company"`
	Location       *string                `json:"location"`
	Email          *string                `json:"email"`
	CreatedAt      *string                `json:"createdAt"`
	UpdatedAt      *string                `json:"updatedAt"`
	Followers      *totalCount            `json:"followers"`
	Following      *totalCount            `json:"following"`
	Repositories   *totalCount            `json:"repositories"`
	SocialAccounts *socialAccountsPayload `json:"socialAccounts"`
}

func (p *userPayload) toDomain() *domain.User {
	return &domain.User{
		Login:           nonEmpty(p.Login),
		Name:            nonEmpty(p.Name),
		Bio:             nonEmpty(p.Bio),
		AvatarURL:       nonEmpty(p.AvatarURL),
		URL:             nonEmpty(p.URL),
		WebsiteURL:      nonEmpty(p.WebsiteURL),
		Company:         nonEmpty(p.Company),
		Location:        nonEmpty(p.Location),
		Email:           nonEmpty(p.Email),
		CreatedAt:       timestamp(p.CreatedAt),
		UpdatedAt:       timestamp(p.UpdatedAt),
		FollowerCount:   p.Followers.value(),
		FollowingCount:  p.Following.value(),
		PublicRepoCount: p.Repositories.value(),
		SocialAccounts:  p.SocialAccounts.accounts(),
	}
}
