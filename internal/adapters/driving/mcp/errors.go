// Package mcp provides an MCP (Model Context Protocol) server adapter for
// gitevents. It exposes events, discussions, teams, users, organisations and
// venues to AI assistants as read-only tools and resources.
package mcp

import "errors"

// ErrMissingEventService is returned when the event service is not provided.
var ErrMissingEventService = errors.New("mcp: event service is required")

// ErrMissingRepository is returned when a tool call names no repository and
// no default is configured.
var ErrMissingRepository = errors.New("mcp: org and repo are required")
