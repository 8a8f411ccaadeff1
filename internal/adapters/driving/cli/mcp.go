package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitevents/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP
  - Prometheus metrics at /metrics

Examples:
  # Stdio mode (default, for Claude Desktop)
  gitevents mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  gitevents mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "gitevents": {
        "command": "/path/to/gitevents",
        "args": ["mcp", "serve", "--org", "my-org", "--repo", "events"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer builds the MCP server from the configured services.
func newMCPServer() (*mcp.Server, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}

	ports := &mcp.Ports{
		Events:        s.Events,
		Discussions:   s.Discussions,
		Teams:         s.Teams,
		Users:         s.Users,
		Organizations: s.Organizations,
		Locations:     s.Locations,
	}

	org, repo := repository(s)
	opts := []mcp.Option{mcp.WithRepository(org, repo)}
	if s.Metrics != nil {
		opts = append(opts, mcp.WithMetricsHandler(s.Metrics))
	}
	return mcp.NewServer(ports, opts...)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
