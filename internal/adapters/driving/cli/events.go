package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

var eventsFirst int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List and show events",
	Long: `Events are issues carrying the approved label. Open issues are upcoming
events and closed issues are past events. Sub-issues are listed as talks.`,
}

var eventsUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List upcoming events",
	Args:  cobra.NoArgs,
	RunE:  runEventsList(false),
}

var eventsPastCmd = &cobra.Command{
	Use:   "past",
	Short: "List past events",
	Args:  cobra.NoArgs,
	RunE:  runEventsList(true),
}

var eventsGetCmd = &cobra.Command{
	Use:   "get [number]",
	Short: "Show one event by issue number",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsGet,
}

func init() {
	eventsCmd.PersistentFlags().IntVarP(&eventsFirst, "first", "n", domain.DefaultPageSize, "number of events to fetch")
	eventsCmd.AddCommand(eventsUpcomingCmd)
	eventsCmd.AddCommand(eventsPastCmd)
	eventsCmd.AddCommand(eventsGetCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsList(past bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		s, err := requireServices()
		if err != nil {
			return err
		}
		org, repo := repository(s)
		page := domain.Pagination{First: eventsFirst}

		var events []domain.Event
		if past {
			events, err = s.Events.ListPast(cmd.Context(), org, repo, page)
		} else {
			events, err = s.Events.ListUpcoming(cmd.Context(), org, repo, page)
		}
		if err != nil {
			return err
		}

		if wantJSON(cmd) {
			return writeJSON(cmd, events)
		}
		outputEvents(cmd, events)
		return nil
	}
}

func runEventsGet(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil || number <= 0 {
		return fmt.Errorf("invalid event number %q", args[0])
	}

	s, err := requireServices()
	if err != nil {
		return err
	}
	org, repo := repository(s)

	event, err := s.Events.Get(cmd.Context(), org, repo, number)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return writeJSON(cmd, event)
	}
	if event == nil {
		cmd.Printf("Event #%d not found.\n", number)
		return nil
	}
	outputEvent(cmd, event)
	return nil
}

func outputEvents(cmd *cobra.Command, events []domain.Event) {
	if len(events) == 0 {
		cmd.Println("No events found.")
		return
	}
	for i := range events {
		outputEvent(cmd, &events[i])
		cmd.Println()
	}
}

func outputEvent(cmd *cobra.Command, e *domain.Event) {
	title := display(e.Title)
	if e.Number != nil {
		title = fmt.Sprintf("#%d %s", *e.Number, title)
	}
	heading(cmd, title)

	date := "TBA"
	if e.HasDate() {
		date = formatTime(*e.Date)
	}
	field(cmd, "Date", date)
	field(cmd, "URL", e.URL)
	field(cmd, "Reactions", len(e.Reactions))

	for _, talk := range e.Talks {
		speaker := ""
		if talk.Author != nil {
			speaker = talk.Author.Login
			if talk.Author.Name != nil && *talk.Author.Name != "" {
				speaker = *talk.Author.Name
			}
		}
		line := "  - " + display(talk.Title)
		if speaker != "" {
			line += mutedStyle.Render(" by " + speaker)
		}
		cmd.Println(line)
	}
}
