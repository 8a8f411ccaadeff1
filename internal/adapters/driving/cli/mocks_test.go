package cli

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// mockEventService is a mock implementation of driving.EventService.
type mockEventService struct {
	org, repo string
	page      domain.Pagination
	past      bool
}

func (m *mockEventService) ListUpcoming(
	_ context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	m.org, m.repo, m.page, m.past = org, repo, page, false
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	return []domain.Event{{
		Title:     strPtr("March Meetup"),
		Number:    intPtr(12),
		URL:       strPtr("https://github.com/gophers/meetups/issues/12"),
		Date:      &date,
		Reactions: []string{"HEART"},
		Talks: []domain.Talk{{
			Title:  strPtr("Generics in practice"),
			Author: &domain.Author{Login: "gopher", Name: strPtr("Go Pher")},
		}},
	}}, nil
}

func (m *mockEventService) ListPast(
	_ context.Context, org, repo string, page domain.Pagination,
) ([]domain.Event, error) {
	m.org, m.repo, m.page, m.past = org, repo, page, true
	return []domain.Event{}, nil
}

func (m *mockEventService) Get(_ context.Context, _, _ string, number int) (*domain.Event, error) {
	if number != 12 {
		return nil, nil
	}
	return &domain.Event{Title: strPtr("March Meetup"), Number: intPtr(12), Talks: []domain.Talk{}}, nil
}

// mockDiscussionService is a mock implementation of driving.DiscussionService.
type mockDiscussionService struct {
	opts domain.DiscussionOptions
}

func (m *mockDiscussionService) List(
	_ context.Context, _, _ string, opts domain.DiscussionOptions,
) ([]domain.Discussion, error) {
	m.opts = opts
	return []domain.Discussion{{
		Title:        strPtr("Venue ideas"),
		Category:     &domain.DiscussionCategory{Name: strPtr("Ideas")},
		CommentCount: 3,
	}}, nil
}

// mockTeamService is a mock implementation of driving.TeamService.
type mockTeamService struct{}

func (m *mockTeamService) Get(_ context.Context, _, slug string) (*domain.Team, error) {
	if slug != "organisers" {
		return nil, nil
	}
	return &domain.Team{
		Name:    "Organisers",
		Slug:    "organisers",
		Members: []domain.TeamMember{{Login: "gopher", Name: strPtr("Go Pher")}},
	}, nil
}

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct{}

func (m *mockUserService) Get(_ context.Context, login string) (*domain.User, error) {
	if login != "gopher" {
		return nil, nil
	}
	return &domain.User{
		Login:          strPtr("gopher"),
		Name:           strPtr("Go Pher"),
		FollowerCount:  42,
		SocialAccounts: []domain.SocialAccount{{Provider: "MASTODON", URL: "https://hachyderm.io/@gopher"}},
	}, nil
}

// mockOrganizationService is a mock implementation of driving.OrganizationService.
type mockOrganizationService struct {
	org string
}

func (m *mockOrganizationService) Get(_ context.Context, org string) (*domain.Organization, error) {
	m.org = org
	return &domain.Organization{Name: strPtr("Gophers"), Login: strPtr(org), MemberCount: 12}, nil
}

// mockFileService is a mock implementation of driving.FileService.
type mockFileService struct {
	opts domain.FileOptions
}

func (m *mockFileService) Get(
	_ context.Context, _, _, path string, opts domain.FileOptions,
) (*domain.File, error) {
	m.opts = opts
	if path == "missing.json" {
		return nil, &domain.FileError{Kind: domain.ErrFileNotFound, Path: path}
	}
	file := &domain.File{Path: path, Ref: opts.Ref(), Text: "{\"ok\": true}\n"}
	if opts.Parse {
		file.JSON = []byte(`{"ok": true}`)
	}
	return file, nil
}

// mockLocationService is a mock implementation of driving.LocationService.
type mockLocationService struct {
	opts domain.LocationOptions
}

func (m *mockLocationService) List(
	_ context.Context, _, _ string, opts domain.LocationOptions,
) (*domain.LocationResult, error) {
	m.opts = opts
	return &domain.LocationResult{
		Locations: []domain.Location{{
			ID:          "hq",
			Name:        "HQ",
			Address:     strPtr("1 Main St"),
			Coordinates: &domain.Coordinates{Lat: 52.5, Lng: 13.4},
		}},
		Errors: []domain.LocationValidationError{{
			Index:  1,
			ID:     "unknown",
			Errors: []string{"Location must have a string id"},
		}},
	}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	values   map[string]any
	err      error
}

func newMockSettingsService() *mockSettingsService {
	settings := domain.DefaultAppSettings()
	settings.GitHub.Org = "gophers"
	settings.GitHub.Repo = "meetups"
	settings.GitHub.Token = "ghp_abcdefghijklmnop"
	return &mockSettingsService{settings: &settings, values: map[string]any{}}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingsService) Set(key string, value any) error {
	if key == "bad.key" {
		return errors.New("invalid settings: unknown key \"bad.key\"")
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) Path() string {
	return "/home/gopher/.gitevents/config.toml"
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	events        *mockEventService
	discussions   *mockDiscussionService
	organizations *mockOrganizationService
	files         *mockFileService
	locations     *mockLocationService
	settings      *mockSettingsService
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		events:        &mockEventService{},
		discussions:   &mockDiscussionService{},
		organizations: &mockOrganizationService{},
		files:         &mockFileService{},
		locations:     &mockLocationService{},
		settings:      newMockSettingsService(),
	}
	SetServices(&Services{
		Events:        ts.events,
		Discussions:   ts.discussions,
		Teams:         &mockTeamService{},
		Users:         &mockUserService{},
		Organizations: ts.organizations,
		Files:         ts.files,
		Locations:     ts.locations,
		Settings:      ts.settings,
	})
	return ts, func() {
		SetFactory(nil)
	}
}

// execute runs the root command with args and returns its output. Flag
// variables are reset afterwards.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer resetFlags()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	rootCmd.SetArgs(nil)
	flagOrg, flagRepo, flagConfigDir = "", "", ""
	flagVerbose, flagJSON = false, false
	eventsFirst = domain.DefaultPageSize
	discussionsFirst, discussionsCategory = domain.DefaultPageSize, ""
	fileBranch, fileJSONParse = "", false
	locationsFile, locationsBranch = "", ""
}
