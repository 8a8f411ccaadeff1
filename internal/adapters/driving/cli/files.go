package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

var (
	fileBranch    string
	fileJSONParse bool

	locationsFile   string
	locationsBranch string
)

var fileCmd = &cobra.Command{
	Use:   "file [path]",
	Short: "Print a file from the repository",
	Long: `Print the text of a repository file. With --json-parse the file must
contain valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List validated venues",
	Long: `Read the venue list (locations.json by default) and validate every entry.
Valid venues are printed; rejected entries are reported with their index,
id and every problem found.`,
	Args: cobra.NoArgs,
	RunE: runLocations,
}

func init() {
	fileCmd.Flags().StringVarP(&fileBranch, "branch", "b", "", "branch to read from (default HEAD)")
	fileCmd.Flags().BoolVar(&fileJSONParse, "json-parse", false, "require the file to be valid JSON")
	locationsCmd.Flags().StringVarP(&locationsFile, "file", "f", "", "venue list path (default locations.json)")
	locationsCmd.Flags().StringVarP(&locationsBranch, "branch", "b", "", "branch to read from (default HEAD)")
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(locationsCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	org, repo := repository(s)

	file, err := s.Files.Get(cmd.Context(), org, repo, args[0], domain.FileOptions{
		Branch: fileBranch,
		Parse:  fileJSONParse,
	})
	if err != nil {
		return err
	}

	switch {
	case flagJSON && file.JSON != nil:
		return writeJSON(cmd, file.JSON)
	case flagJSON:
		return writeJSON(cmd, file)
	default:
		cmd.Print(file.Text)
		return nil
	}
}

func runLocations(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	org, repo := repository(s)

	result, err := s.Locations.List(cmd.Context(), org, repo, domain.LocationOptions{
		FileName: locationsFile,
		Branch:   locationsBranch,
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, result)
	}
	outputLocations(cmd, result)
	return nil
}

func outputLocations(cmd *cobra.Command, result *domain.LocationResult) {
	if len(result.Locations) == 0 {
		cmd.Println("No valid locations found.")
	}
	for i := range result.Locations {
		l := &result.Locations[i]
		heading(cmd, l.Name+mutedStyle.Render(" ("+l.ID+")"))
		field(cmd, "Address", l.Address)
		if l.Coordinates != nil {
			field(cmd, "Coordinates", successStyle.Render(
				display(l.Coordinates.Lat)+", "+display(l.Coordinates.Lng)))
		}
		field(cmd, "URL", l.URL)
		field(cmd, "Capacity", l.Capacity)
	}

	if !result.HasErrors() {
		return
	}
	cmd.Println()
	cmd.Println(warningStyle.Render("Rejected entries:"))
	for _, e := range result.Errors {
		cmd.Printf("  [%d] %s\n", e.Index, e.ID)
		for _, msg := range e.Errors {
			cmd.Printf("      %s\n", msg)
		}
	}
}
