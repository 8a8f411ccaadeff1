// Package cli provides the gitevents command line interface.
package cli

import (
	"errors"
	"net/http"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Events        driving.EventService
	Discussions   driving.DiscussionService
	Teams         driving.TeamService
	Users         driving.UserService
	Organizations driving.OrganizationService
	Files         driving.FileService
	Locations     driving.LocationService
	Settings      driving.SettingsService

	// Metrics is served at /metrics by "mcp serve --port".
	Metrics http.Handler
}

// Factory builds Services from a config directory. It may return partial
// Services alongside an error, for example a working Settings service when
// the stored configuration is invalid.
type Factory func(configDir string) (*Services, error)

var (
	factory Factory

	servicesOnce sync.Once
	services     *Services
	servicesErr  error
)

// Global flags.
var (
	flagOrg       string
	flagRepo      string
	flagVerbose   bool
	flagJSON      bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "gitevents",
	Short: "Read community events, talks and venues from GitHub",
	Long: `gitevents reads a community's events from GitHub.

Events are issues carrying the approved label, talks are their sub-issues,
and venues come from a JSON file in the repository. Discussions, teams,
user and organisation profiles are available too.

Credentials come from ~/.gitevents/config.toml or the environment
(GH_PAT, or GH_APP_ID, GH_APP_INSTALLATION_ID and GH_PRIVATE_KEY).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagOrg, "org", "", "GitHub organisation (defaults to github.org)")
	flags.StringVar(&flagRepo, "repo", "", "GitHub repository (defaults to github.repo)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "show debug output")
	flags.BoolVar(&flagJSON, "json", false, "output JSON")
	flags.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.gitevents)")
}

// SetFactory sets how Services are built on first use.
func SetFactory(f Factory) {
	factory = f
	servicesOnce = sync.Once{}
	services, servicesErr = nil, nil
}

// SetServices installs ready-made Services.
func SetServices(s *Services) {
	SetFactory(func(string) (*Services, error) { return s, nil })
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadServices builds Services once per process.
func loadServices() (*Services, error) {
	servicesOnce.Do(func() {
		if factory == nil {
			servicesErr = errors.New("services not configured")
			return
		}
		services, servicesErr = factory(flagConfigDir)
	})
	return services, servicesErr
}

// requireServices returns Services only when they were built without error.
func requireServices() (*Services, error) {
	s, err := loadServices()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("services not configured")
	}
	return s, nil
}

// repository resolves org and repo from flags, falling back to settings.
func repository(s *Services) (string, string) {
	org, repo := flagOrg, flagRepo
	if (org != "" && repo != "") || s.Settings == nil {
		return org, repo
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return org, repo
	}
	if org == "" {
		org = settings.GitHub.Org
	}
	if repo == "" {
		repo = settings.GitHub.Repo
	}
	return org, repo
}
