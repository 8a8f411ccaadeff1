// Command gitevents reads community events, talks and venues from GitHub.
package main

import (
	"os"

	"github.com/custodia-labs/gitevents/internal/adapters/driven/auth"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/facets"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/graphql"
	"github.com/custodia-labs/gitevents/internal/adapters/driven/queries"
	"github.com/custodia-labs/gitevents/internal/adapters/driving/cli"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/services"
	"github.com/custodia-labs/gitevents/internal/logger"
	"github.com/custodia-labs/gitevents/internal/metrics"
	"github.com/custodia-labs/gitevents/internal/normalisers/events"
	"github.com/custodia-labs/gitevents/internal/normalisers/locations"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services. The
// settings service is returned even when the configuration is unusable so
// that "config set" can repair it.
func buildServices(configDir string) (*cli.Services, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		// Without a readable config file, settings come from the
		// environment only.
		logger.Warn("config file unavailable, using environment only: %v", err)
		store = memory.NewConfigStore(nil)
	} else {
		store = fileStore
	}
	settingsService := services.NewSettingsService(store)
	s := &cli.Services{Settings: settingsService}

	settings, err := settingsService.Get()
	if err != nil {
		return s, err
	}

	tokens, err := auth.NewTokenProvider(settings)
	if err != nil {
		return s, err
	}

	m := metrics.NewManager()
	clientOpts := []graphql.Option{graphql.WithMetrics(m)}
	if settings.GitHub.GraphQLURL != "" {
		clientOpts = append(clientOpts, graphql.WithEndpoint(settings.GitHub.GraphQLURL))
	}
	transport := graphql.NewClient(tokens, clientOpts...)
	queryProvider := queries.New(settings.Events.ApprovedLabel)

	normaliser := events.New(facets.New(),
		events.WithConcurrency(settings.Events.FacetConcurrency),
		events.WithMetrics(m),
	)
	validator := locations.New(locations.WithMetrics(m))
	fileService := services.NewFileService(transport, queryProvider)

	s.Events = services.NewEventService(transport, queryProvider, normaliser)
	s.Discussions = services.NewDiscussionService(transport, queryProvider)
	s.Teams = services.NewTeamService(transport, queryProvider)
	s.Users = services.NewUserService(transport, queryProvider)
	s.Organizations = services.NewOrganizationService(transport, queryProvider)
	s.Files = fileService
	s.Locations = services.NewLocationService(fileService, validator)
	s.Metrics = m.Handler()

	return s, nil
}
