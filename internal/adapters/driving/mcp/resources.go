package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gitevents resources.
	uriScheme = "gitevents://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Locations == nil {
		return
	}

	// Static resource for the configured repository's venues.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "locations",
		Name:        "locations",
		Description: "Validated venues of the configured repository",
		MIMEType:    "application/json",
	}, s.handleLocationsResource)

	// Template for any repository's venues.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "repos/{org}/{repo}/locations",
		Name:        "repository-locations",
		Description: "Validated venues of a specific repository",
		MIMEType:    "application/json",
	}, s.handleRepositoryLocationsResource)
}

// handleLocationsResource returns the venues of the default repository.
func (s *Server) handleLocationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	org, repo, err := s.repository("", "")
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.readLocations(ctx, req.Params.URI, org, repo)
}

// handleRepositoryLocationsResource returns the venues of the repository
// named in the URI.
func (s *Server) handleRepositoryLocationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	org, repo := extractRepository(req.Params.URI)
	if org == "" || repo == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.readLocations(ctx, req.Params.URI, org, repo)
}

func (s *Server) readLocations(ctx context.Context, uri, org, repo string) (*mcp.ReadResourceResult, error) {
	result, err := s.ports.Locations.List(ctx, org, repo, domain.LocationOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling locations: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRepository extracts org and repo from a URI like
// gitevents://repos/{org}/{repo}/locations.
func extractRepository(uri string) (string, string) {
	const prefix = uriScheme + "repos/"
	const suffix = "/locations"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return "", ""
	}

	org, repo, ok := strings.Cut(strings.TrimSuffix(uri, suffix), "/")
	if !ok || strings.Contains(repo, "/") {
		return "", ""
	}
	return org, repo
}
