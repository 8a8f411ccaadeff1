package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyOrg              = "github.org"
	KeyRepo             = "github.repo"
	KeyToken            = "github.token"
	KeyGraphQLURL       = "github.graphql_url"
	KeyApprovedLabel    = "events.approved_label"
	KeyFacetConcurrency = "events.facet_concurrency"
	KeyAppID            = "app.id"
	KeyInstallationID   = "app.installation_id"
	KeyPrivateKey       = "app.private_key"
)

// settingKeys lists every key Set accepts.
var settingKeys = []string{
	KeyOrg, KeyRepo, KeyToken, KeyGraphQLURL,
	KeyApprovedLabel, KeyFacetConcurrency,
	KeyAppID, KeyInstallationID, KeyPrivateKey,
}

// intKeys hold integers; string values are parsed on Set.
var intKeys = map[string]bool{
	KeyFacetConcurrency: true,
	KeyAppID:            true,
	KeyInstallationID:   true,
}

// Environment variables that override the config file.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvToken          = "GH_PAT"
	EnvAppID          = "GH_APP_ID"
	EnvPrivateKey     = "GH_PRIVATE_KEY"
	EnvInstallationID = "GH_APP_INSTALLATION_ID"
	EnvOrg            = "GH_ORG"
	EnvRepo           = "GH_REPO"
	EnvApprovedLabel  = "DEFAULT_APPROVED_EVENT_LABEL"
	EnvGraphQLURL     = "GITHUB_GRAPHQL_URL"
)

// SettingsService resolves configuration.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a settings service reading the process
// environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return NewSettingsServiceWithEnv(configStore, os.Getenv)
}

// NewSettingsServiceWithEnv creates a settings service with a custom
// environment lookup.
func NewSettingsServiceWithEnv(configStore driven.ConfigStore, getenv func(string) string) *SettingsService {
	return &SettingsService{configStore: configStore, getenv: getenv}
}

// Get returns defaults, overlaid by the config file, overlaid by the
// environment.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	settings.GitHub.Org = s.getString(KeyOrg, EnvOrg, settings.GitHub.Org)
	settings.GitHub.Repo = s.getString(KeyRepo, EnvRepo, settings.GitHub.Repo)
	settings.GitHub.Token = s.getString(KeyToken, EnvToken, "")
	settings.GitHub.GraphQLURL = s.getString(KeyGraphQLURL, EnvGraphQLURL, "")
	settings.Events.ApprovedLabel = s.getString(KeyApprovedLabel, EnvApprovedLabel, settings.Events.ApprovedLabel)

	if n := s.configStore.GetInt(KeyFacetConcurrency); n != 0 {
		settings.Events.FacetConcurrency = n
	}

	var err error
	if settings.App.ID, err = s.getInt64(KeyAppID, EnvAppID); err != nil {
		return nil, err
	}
	if settings.App.InstallationID, err = s.getInt64(KeyInstallationID, EnvInstallationID); err != nil {
		return nil, err
	}
	if settings.App.PrivateKey, err = decodePrivateKey(s.getString(KeyPrivateKey, EnvPrivateKey, "")); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Set stores one config file key. Numeric keys accept their value as a
// decimal string.
func (s *SettingsService) Set(key string, value any) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: unknown key %q", domain.ErrSettingsInvalid, key)
	}
	if str, ok := value.(string); ok && intKeys[key] {
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrSettingsInvalid, key)
		}
		value = n
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Path returns the config file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, env, defaultVal string) string {
	if v := s.getenv(env); v != "" {
		return v
	}
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getInt64(key, env string) (int64, error) {
	if v := s.getenv(env); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number", domain.ErrSettingsInvalid, env)
		}
		return n, nil
	}
	return int64(s.configStore.GetInt(key)), nil
}

// decodePrivateKey accepts a PEM key either as is or base64 encoded.
func decodePrivateKey(value string) (string, error) {
	if value == "" || strings.Contains(value, "-----BEGIN") {
		return value, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: private key is neither PEM nor base64: %v", domain.ErrSettingsInvalid, err)
	}
	return string(decoded), nil
}
