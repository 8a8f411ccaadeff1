package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gitevents/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for gitevents.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	org     string
	repo    string
	metrics http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithRepository sets the org and repo used when a call omits them.
func WithRepository(org, repo string) Option {
	return func(s *Server) {
		s.org = org
		s.repo = repo
	}
}

// WithMetricsHandler serves h at /metrics in HTTP mode.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "gitevents",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP handler for the streamable transport, with
// /metrics mounted when a metrics handler is configured.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	if s.metrics == nil {
		return handler
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics)
	mux.Handle("/", handler)
	return mux
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("MCP server listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// repository fills org and repo from the server defaults.
func (s *Server) repository(org, repo string) (string, string, error) {
	if org == "" {
		org = s.org
	}
	if repo == "" {
		repo = s.repo
	}
	if org == "" || repo == "" {
		return "", "", ErrMissingRepository
	}
	return org, repo, nil
}

// organization fills org from the server default.
func (s *Server) organization(org string) string {
	if org == "" {
		return s.org
	}
	return org
}
