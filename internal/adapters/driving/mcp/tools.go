package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// Event listing states accepted by list_events.
const (
	stateUpcoming = "upcoming"
	statePast     = "past"
)

// ListEventsInput is the input schema for the list_events tool.
type ListEventsInput struct {
	Org   string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
	Repo  string `json:"repo,omitempty" jsonschema:"repository name (defaults to the configured repo)"`
	State string `json:"state,omitempty" jsonschema:"upcoming (open issues, default) or past (closed issues)"`
	First int    `json:"first,omitempty" jsonschema:"maximum number of events to return (default 10)"`
}

// EventsOutput is the output of the list_events tool.
type EventsOutput struct {
	Events []domain.Event `json:"events"`
	Count  int            `json:"count"`
}

// GetEventInput is the input schema for the get_event tool.
type GetEventInput struct {
	Org    string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
	Repo   string `json:"repo,omitempty" jsonschema:"repository name (defaults to the configured repo)"`
	Number int    `json:"number" jsonschema:"issue number of the event"`
}

// EventOutput is the output of the get_event tool. Event is null when the
// issue does not exist.
type EventOutput struct {
	Event *domain.Event `json:"event"`
}

// ListDiscussionsInput is the input schema for the list_discussions tool.
type ListDiscussionsInput struct {
	Org        string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
	Repo       string `json:"repo,omitempty" jsonschema:"repository name (defaults to the configured repo)"`
	First      int    `json:"first,omitempty" jsonschema:"maximum number of discussions to return (default 10)"`
	CategoryID string `json:"category_id,omitempty" jsonschema:"only list discussions in this category"`
}

// DiscussionsOutput is the output of the list_discussions tool.
type DiscussionsOutput struct {
	Discussions []domain.Discussion `json:"discussions"`
	Count       int                 `json:"count"`
}

// GetTeamInput is the input schema for the get_team tool.
type GetTeamInput struct {
	Org      string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
	TeamSlug string `json:"team_slug" jsonschema:"slug of the team"`
}

// TeamOutput is the output of the get_team tool.
type TeamOutput struct {
	Team *domain.Team `json:"team"`
}

// GetUserInput is the input schema for the get_user tool.
type GetUserInput struct {
	Login string `json:"login" jsonschema:"GitHub login of the user"`
}

// UserOutput is the output of the get_user tool.
type UserOutput struct {
	User *domain.User `json:"user"`
}

// GetOrganizationInput is the input schema for the get_organization tool.
type GetOrganizationInput struct {
	Org string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
}

// OrganizationOutput is the output of the get_organization tool.
type OrganizationOutput struct {
	Organization *domain.Organization `json:"organization"`
}

// ListLocationsInput is the input schema for the list_locations tool.
type ListLocationsInput struct {
	Org      string `json:"org,omitempty" jsonschema:"organisation login (defaults to the configured org)"`
	Repo     string `json:"repo,omitempty" jsonschema:"repository name (defaults to the configured repo)"`
	FileName string `json:"file_name,omitempty" jsonschema:"path of the venue list (default locations.json)"`
	Branch   string `json:"branch,omitempty" jsonschema:"branch to read from (default HEAD)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_events",
		Description: "List upcoming or past community events with their talks",
	}, s.handleListEvents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_event",
		Description: "Get a single event by issue number",
	}, s.handleGetEvent)

	if s.ports.Discussions != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_discussions",
			Description: "List recent repository discussions",
		}, s.handleListDiscussions)
	}
	if s.ports.Teams != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_team",
			Description: "Get an organisation team and its members",
		}, s.handleGetTeam)
	}
	if s.ports.Users != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_user",
			Description: "Get a GitHub user profile",
		}, s.handleGetUser)
	}
	if s.ports.Organizations != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_organization",
			Description: "Get a GitHub organisation profile",
		}, s.handleGetOrganization)
	}
	if s.ports.Locations != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_locations",
			Description: "List validated event venues and any rejected entries",
		}, s.handleListLocations)
	}
}

// handleListEvents handles the list_events tool invocation.
func (s *Server) handleListEvents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEventsInput,
) (*mcp.CallToolResult, any, error) {
	org, repo, err := s.repository(input.Org, input.Repo)
	if err != nil {
		return nil, nil, err
	}

	page := domain.Pagination{First: input.First}
	var events []domain.Event
	switch input.State {
	case "", stateUpcoming:
		events, err = s.ports.Events.ListUpcoming(ctx, org, repo, page)
	case statePast:
		events, err = s.ports.Events.ListPast(ctx, org, repo, page)
	default:
		return nil, nil, fmt.Errorf("unknown state %q: use %s or %s", input.State, stateUpcoming, statePast)
	}
	if err != nil {
		return nil, nil, err
	}

	return textResult(EventsOutput{Events: events, Count: len(events)})
}

// handleGetEvent handles the get_event tool invocation.
func (s *Server) handleGetEvent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEventInput,
) (*mcp.CallToolResult, any, error) {
	org, repo, err := s.repository(input.Org, input.Repo)
	if err != nil {
		return nil, nil, err
	}

	event, err := s.ports.Events.Get(ctx, org, repo, input.Number)
	if err != nil {
		return nil, nil, err
	}
	return textResult(EventOutput{Event: event})
}

// handleListDiscussions handles the list_discussions tool invocation.
func (s *Server) handleListDiscussions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDiscussionsInput,
) (*mcp.CallToolResult, any, error) {
	org, repo, err := s.repository(input.Org, input.Repo)
	if err != nil {
		return nil, nil, err
	}

	discussions, err := s.ports.Discussions.List(ctx, org, repo, domain.DiscussionOptions{
		Pagination: domain.Pagination{First: input.First},
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult(DiscussionsOutput{Discussions: discussions, Count: len(discussions)})
}

// handleGetTeam handles the get_team tool invocation.
func (s *Server) handleGetTeam(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetTeamInput,
) (*mcp.CallToolResult, any, error) {
	team, err := s.ports.Teams.Get(ctx, s.organization(input.Org), input.TeamSlug)
	if err != nil {
		return nil, nil, err
	}
	return textResult(TeamOutput{Team: team})
}

// handleGetUser handles the get_user tool invocation.
func (s *Server) handleGetUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetUserInput,
) (*mcp.CallToolResult, any, error) {
	user, err := s.ports.Users.Get(ctx, input.Login)
	if err != nil {
		return nil, nil, err
	}
	return textResult(UserOutput{User: user})
}

// handleGetOrganization handles the get_organization tool invocation.
func (s *Server) handleGetOrganization(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetOrganizationInput,
) (*mcp.CallToolResult, any, error) {
	org, err := s.ports.Organizations.Get(ctx, s.organization(input.Org))
	if err != nil {
		return nil, nil, err
	}
	return textResult(OrganizationOutput{Organization: org})
}

// handleListLocations handles the list_locations tool invocation.
func (s *Server) handleListLocations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListLocationsInput,
) (*mcp.CallToolResult, any, error) {
	org, repo, err := s.repository(input.Org, input.Repo)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.ports.Locations.List(ctx, org, repo, domain.LocationOptions{
		FileName: input.FileName,
		Branch:   input.Branch,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult(result)
}

// textResult renders out as indented JSON text content. out is also
// returned as the structured result.
func textResult(out any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, out, nil
}
