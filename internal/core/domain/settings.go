package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultApprovedLabel marks issues that are published as events.
const DefaultApprovedLabel = "Approved :white_check_mark:"

// DefaultFacetConcurrency is the number of issue bodies parsed at once.
const DefaultFacetConcurrency = 4

// ErrSettingsInvalid indicates the configuration cannot be used.
var ErrSettingsInvalid = errors.New("invalid settings")

// AppSettings holds all gitevents configuration.
type AppSettings struct {
	GitHub GitHubSettings
	Events EventSettings
	App    AppCredentials
}

// GitHubSettings selects the repository and how to reach GitHub.
type GitHubSettings struct {
	// Org and Repo are the defaults used when a command omits them.
	Org  string
	Repo string
	// Token is a personal access token.
	Token string
	// GraphQLURL overrides the API endpoint, e.g. for GitHub Enterprise.
	GraphQLURL string
}

// EventSettings tunes event listing.
type EventSettings struct {
	// ApprovedLabel is the label an issue needs to be listed as an event.
	ApprovedLabel string
	// FacetConcurrency bounds concurrent body parsing.
	FacetConcurrency int
}

// AppCredentials authenticate as a GitHub App installation.
type AppCredentials struct {
	ID             int64
	InstallationID int64
	// PrivateKey is the PEM encoded app key.
	PrivateKey string
}

// IsConfigured reports whether every app credential is present.
func (c AppCredentials) IsConfigured() bool {
	return c.ID != 0 && c.InstallationID != 0 && c.PrivateKey != ""
}

// DefaultAppSettings returns the default configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Events: EventSettings{
			ApprovedLabel:    DefaultApprovedLabel,
			FacetConcurrency: DefaultFacetConcurrency,
		},
	}
}

// AuthMethod picks the credentials to use. A token is used unless an app
// private key is configured.
func (s *AppSettings) AuthMethod() AuthMethod {
	switch {
	case s.GitHub.Token != "" && s.App.PrivateKey == "":
		return AuthMethodPAT
	case s.App.PrivateKey != "":
		return AuthMethodApp
	default:
		return AuthMethodNone
	}
}

// Validate checks that the selected auth method is complete.
func (s *AppSettings) Validate() error {
	if s.AuthMethod() == AuthMethodApp && !s.App.IsConfigured() {
		var missing []string
		if s.App.ID == 0 {
			missing = append(missing, "app.id")
		}
		if s.App.InstallationID == 0 {
			missing = append(missing, "app.installation_id")
		}
		return fmt.Errorf("%w: app authentication requires %s", ErrSettingsInvalid, strings.Join(missing, ", "))
	}
	if s.Events.FacetConcurrency < 0 {
		return fmt.Errorf("%w: events.facet_concurrency must not be negative", ErrSettingsInvalid)
	}
	return nil
}
