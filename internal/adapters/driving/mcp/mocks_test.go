package mcp

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// mockEventService is a mock implementation of driving.EventService.
type mockEventService struct {
	upcoming []domain.Event
	past     []domain.Event
	event    *domain.Event
	err      error

	org, repo string
	page      domain.Pagination
	number    int
}

func (m *mockEventService) ListUpcoming(
	_ context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	m.org, m.repo, m.page = org, repo, page
	return m.upcoming, m.err
}

func (m *mockEventService) ListPast(
	_ context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	m.org, m.repo, m.page = org, repo, page
	return m.past, m.err
}

func (m *mockEventService) Get(_ context.Context, org, repo string, number int) (*domain.Event, error) {
	m.org, m.repo, m.number = org, repo, number
	return m.event, m.err
}

// mockDiscussionService is a mock implementation of driving.DiscussionService.
type mockDiscussionService struct {
	discussions []domain.Discussion
	err         error
	opts        domain.DiscussionOptions
}

func (m *mockDiscussionService) List(
	_ context.Context, _, _ string, opts domain.DiscussionOptions,
) ([]domain.Discussion, error) {
	m.opts = opts
	return m.discussions, m.err
}

// mockTeamService is a mock implementation of driving.TeamService.
type mockTeamService struct {
	team *domain.Team
	err  error
	org  string
}

func (m *mockTeamService) Get(_ context.Context, org, _ string) (*domain.Team, error) {
	m.org = org
	return m.team, m.err
}

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) Get(_ context.Context, _ string) (*domain.User, error) {
	return m.user, m.err
}

// mockOrganizationService is a mock implementation of driving.OrganizationService.
type mockOrganizationService struct {
	organization *domain.Organization
	err          error
	org          string
}

func (m *mockOrganizationService) Get(_ context.Context, org string) (*domain.Organization, error) {
	m.org = org
	return m.organization, m.err
}

// mockLocationService is a mock implementation of driving.LocationService.
type mockLocationService struct {
	result    *domain.LocationResult
	err       error
	org, repo string
	opts      domain.LocationOptions
}

func (m *mockLocationService) List(
	_ context.Context, org, repo string, opts domain.LocationOptions,
) (*domain.LocationResult, error) {
	m.org, m.repo, m.opts = org, repo, opts
	return m.result, m.err
}

func strPtr(s string) *string {
	return &s
}
