// Package api exposes the weather service as MCP tools over stdio or
// streamable HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"weather-mcp/logging"
)

const (
	// ServerName is the name announced to MCP clients
	ServerName = "weather"
	// ServerVersion is the version announced to MCP clients
	ServerVersion = "1.0.0"

	// DefaultAddress is the listen address of the HTTP transport
	DefaultAddress = ":3000"
	// DefaultPath is the MCP endpoint of the HTTP transport
	DefaultPath = "/mcp"
)

// WeatherService answers the two tool operations with text
type WeatherService interface {
	CurrentConditions(ctx context.Context, city, countryCode string) string
	Forecast(ctx context.Context, latitude, longitude float64) string
}

// Server represents the MCP tool server
type Server struct {
	service WeatherService
	logger  logging.Logger
	address string
	path    string
	server  *http.Server
}

// Option configures a Server
type Option func(*Server)

// WithAddress sets the HTTP listen address
func WithAddress(address string) Option {
	return func(s *Server) {
		if address != "" {
			s.address = address
		}
	}
}

// WithPath sets the HTTP path the MCP endpoint is served on
func WithPath(path string) Option {
	return func(s *Server) {
		if path != "" {
			s.path = path
		}
	}
}

// WithLogger sets the server logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		s.logger = logging.OrDefault(logger)
	}
}

// NewServer creates a new tool server
func NewServer(service WeatherService, opts ...Option) *Server {
	s := &Server{
		service: service,
		logger:  logging.Default,
		address: DefaultAddress,
		path:    DefaultPath,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeStdio serves the tools on stdin/stdout until the input is closed
func (s *Server) ServeStdio() error {
	server := mcp.NewStdioServer(ServerName, ServerVersion,
		mcp.WithStdioServerLogger(mcp.GetDefaultLogger()),
	)
	for _, t := range s.tools() {
		server.RegisterTool(t.tool, t.handler)
	}

	s.logger.Infof("Serving %s tools on stdio", ServerName)
	return server.Start()
}

// Handler returns the HTTP handler: the MCP endpoint plus a health check
func (s *Server) Handler() http.Handler {
	server := mcp.NewServer(ServerName, ServerVersion,
		mcp.WithServerAddress(s.address),
		mcp.WithServerPath(s.path),
	)
	for _, t := range s.tools() {
		server.RegisterTool(t.tool, t.handler)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealthCheck)
	mux.Handle("/", server.HTTPHandler())
	return mux
}

// Start serves the HTTP transport. It returns nil after Shutdown.
func (s *Server) Start() error {
	s.logger.Infof("Starting MCP server on http://localhost%s%s", s.address, s.path)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP transport, waiting for in-flight calls
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tools := make([]string, 0, 3)
	for _, t := range s.tools() {
		tools = append(tools, t.tool.Name)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"server":    ServerName,
		"version":   ServerVersion,
		"tools":     tools,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
