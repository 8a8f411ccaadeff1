package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the configuration file.

Environment variables take precedence over the file:
  GH_PAT                        personal access token
  GH_APP_ID                     GitHub App id
  GH_APP_INSTALLATION_ID        GitHub App installation id
  GH_PRIVATE_KEY                GitHub App private key (PEM, or base64 encoded PEM)
  GH_ORG, GH_REPO               default organisation and repository
  DEFAULT_APPROVED_EVENT_LABEL  label that publishes an issue as an event
  GITHUB_GRAPHQL_URL            GraphQL endpoint`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Keys:
  github.org, github.repo, github.token, github.graphql_url
  events.approved_label, events.facet_concurrency
  app.id, app.installation_id, app.private_key`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// settingsServices returns Services with a usable Settings port, even when
// the rest could not be built.
func settingsServices() (*Services, error) {
	s, err := loadServices()
	if s != nil && s.Settings != nil {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("settings service not configured")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := settingsServices()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if wantJSON(cmd) {
		view := *settings
		view.GitHub.Token = maskSecret(view.GitHub.Token)
		view.App.PrivateKey = maskSecret(view.App.PrivateKey)
		return writeJSON(cmd, view)
	}

	heading(cmd, "[GitHub]")
	field(cmd, "Organisation", settings.GitHub.Org)
	field(cmd, "Repository", settings.GitHub.Repo)
	field(cmd, "Endpoint", settings.GitHub.GraphQLURL)
	field(cmd, "Auth", settings.AuthMethod())
	field(cmd, "Token", maskSecret(settings.GitHub.Token))
	cmd.Println()

	heading(cmd, "[Events]")
	field(cmd, "Approved label", settings.Events.ApprovedLabel)
	field(cmd, "Facet concurrency", settings.Events.FacetConcurrency)
	cmd.Println()

	heading(cmd, "[App]")
	if settings.App.ID != 0 {
		field(cmd, "ID", settings.App.ID)
	}
	if settings.App.InstallationID != 0 {
		field(cmd, "Installation ID", settings.App.InstallationID)
	}
	field(cmd, "Private key", maskSecret(settings.App.PrivateKey))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := settingsServices()
	if err != nil {
		return err
	}

	if err := s.Settings.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Println(successStyle.Render(fmt.Sprintf("Set %s", args[0])))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	s, err := settingsServices()
	if err != nil {
		return err
	}
	cmd.Println(s.Settings.Path())
	return nil
}
