// Package driving defines interfaces that external actors (CLI, MCP server)
// use to read from GitHub through gitevents. These are the "driving" ports
// in hexagonal architecture terminology.
//
// Implementations of these interfaces live in internal/core/services.
package driving
