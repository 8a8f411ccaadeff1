package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

var (
	discussionsFirst    int
	discussionsCategory string
)

var discussionsCmd = &cobra.Command{
	Use:   "discussions",
	Short: "List recent discussions",
	Args:  cobra.NoArgs,
	RunE:  runDiscussions,
}

var teamCmd = &cobra.Command{
	Use:   "team [slug]",
	Short: "Show a team and its members",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

var userCmd = &cobra.Command{
	Use:   "user [login]",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

var orgCmd = &cobra.Command{
	Use:   "org [login]",
	Short: "Show an organisation profile",
	Long:  `Show an organisation profile. Without an argument the configured organisation is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOrg,
}

func init() {
	discussionsCmd.Flags().IntVarP(&discussionsFirst, "first", "n", domain.DefaultPageSize, "number of discussions to fetch")
	discussionsCmd.Flags().StringVar(&discussionsCategory, "category", "", "only list discussions in this category id")
	rootCmd.AddCommand(discussionsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(orgCmd)
}

func runDiscussions(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	org, repo := repository(s)

	discussions, err := s.Discussions.List(cmd.Context(), org, repo, domain.DiscussionOptions{
		Pagination: domain.Pagination{First: discussionsFirst},
		CategoryID: discussionsCategory,
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, discussions)
	}
	if len(discussions) == 0 {
		cmd.Println("No discussions found.")
		return nil
	}
	for i := range discussions {
		d := &discussions[i]
		heading(cmd, display(d.Title))
		if d.Category != nil {
			field(cmd, "Category", d.Category.Name)
		}
		if d.Author != nil {
			field(cmd, "Author", d.Author.Login)
		}
		field(cmd, "Created", d.CreatedAt)
		field(cmd, "Comments", d.CommentCount)
		field(cmd, "URL", d.URL)
		cmd.Println()
	}
	return nil
}

func runTeam(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	org, _ := repository(s)

	team, err := s.Teams.Get(cmd.Context(), org, args[0])
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, team)
	}
	if team == nil {
		cmd.Printf("Team %s not found.\n", args[0])
		return nil
	}

	heading(cmd, team.Name)
	field(cmd, "Description", team.Description)
	cmd.Printf("  %d members\n", len(team.Members))
	for _, m := range team.Members {
		line := "  - " + m.Login
		if m.Name != nil {
			line += mutedStyle.Render(" (" + *m.Name + ")")
		}
		cmd.Println(line)
	}
	return nil
}

func runUser(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	user, err := s.Users.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, user)
	}
	if user == nil {
		cmd.Printf("User %s not found.\n", args[0])
		return nil
	}

	heading(cmd, display(user.Login))
	field(cmd, "Name", user.Name)
	field(cmd, "Bio", user.Bio)
	field(cmd, "Company", user.Company)
	field(cmd, "Location", user.Location)
	field(cmd, "Website", user.WebsiteURL)
	field(cmd, "Followers", user.FollowerCount)
	field(cmd, "Following", user.FollowingCount)
	field(cmd, "Public repos", user.PublicRepoCount)
	for _, a := range user.SocialAccounts {
		field(cmd, a.Provider, a.URL)
	}
	return nil
}

func runOrg(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	login, _ := repository(s)
	if len(args) == 1 {
		login = args[0]
	}

	org, err := s.Organizations.Get(cmd.Context(), login)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, org)
	}
	if org == nil {
		cmd.Printf("Organization %s not found.\n", login)
		return nil
	}

	heading(cmd, display(org.Name))
	field(cmd, "Login", org.Login)
	field(cmd, "Description", org.Description)
	field(cmd, "Location", org.Location)
	field(cmd, "Website", org.WebsiteURL)
	field(cmd, "Members", org.MemberCount)
	field(cmd, "Public repos", org.PublicRepoCount)
	return nil
}
