// Package server is the HTTP front end: one listener exposing the MCP
// streamable endpoint, a health probe, and the metrics scrape endpoint. It
// wraps the go-supervisor httpserver runnable so the supervisor owns its
// lifecycle alongside the session cache sweeper.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/metrics"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/sessions"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Server)(nil)
	_ supervisor.Stateable = (*Server)(nil)
)

// Route paths served by the listener.
const (
	PathMCP     = "/mcp"
	PathHealthz = "/healthz"
	PathMetrics = "/metrics"
)

// SessionHeader is the MCP streamable transport's session id header.
const SessionHeader = "Mcp-Session-Id"

// ConfigQueryParam is the query parameter carrying the base64-encoded
// session config on the MCP URL.
const ConfigQueryParam = "config"

// Config carries the listener's dependencies and settings.
type Config struct {
	// Listen is the bind address, host optional, e.g. ":8080".
	Listen string

	// Factory builds the per-session MCP servers.
	Factory *sessions.Factory

	// Cache is consulted to refresh session recency on every request that
	// carries a session id, and reported on the health endpoint.
	Cache *sessions.Cache

	// Metrics serves the scrape endpoint. Nil disables collection but the
	// endpoint still answers.
	Metrics *metrics.Recorder

	// Version is reported by the health endpoint.
	Version string

	// ReadTimeout, IdleTimeout and DrainTimeout are applied to the
	// listener when positive. There is deliberately no write timeout: the
	// MCP streamable GET holds a server-sent event stream open for the
	// session lifetime.
	ReadTimeout  time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration

	Logger *slog.Logger
}

// Server is the HTTP listener runnable.
type Server struct {
	cfg        Config
	logger     *slog.Logger
	mcpHandler http.Handler
	runner     *httpserver.Runner
}

// New creates the listener from cfg.
func New(cfg Config) (*Server, error) {
	if cfg.Listen == "" {
		return nil, ErrNoListenAddress
	}
	if cfg.Factory == nil {
		return nil, ErrNilFactory
	}
	if cfg.Cache == nil {
		return nil, ErrNilCache
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().WithGroup("server")
	}

	s := &Server{cfg: cfg, logger: logger}
	s.mcpHandler = mcp.NewStreamableHTTPHandler(s.serverForRequest, nil)

	routes, err := s.routes()
	if err != nil {
		return nil, err
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(func() (*httpserver.Config, error) {
			return s.listenerConfig(routes)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.runner = runner

	return s, nil
}

// routes builds the full route table with its middleware stacks.
func (s *Server) routes() ([]httpserver.Route, error) {
	mcpRoute, err := httpserver.NewRouteFromHandlerFunc(
		"mcp",
		PathMCP,
		s.mcpHandler.ServeHTTP,
		s.requestID(),
		s.logRequests(),
		s.sessionRecency(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP route: %w", err)
	}

	healthzRoute, err := httpserver.NewRouteFromHandlerFunc(
		"healthz",
		PathHealthz,
		s.handleHealthz,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health route: %w", err)
	}

	metricsRoute, err := httpserver.NewRouteFromHandlerFunc(
		"metrics",
		PathMetrics,
		s.cfg.Metrics.Handler().ServeHTTP,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics route: %w", err)
	}

	return []httpserver.Route{*mcpRoute, *healthzRoute, *metricsRoute}, nil
}

func (s *Server) listenerConfig(routes []httpserver.Route) (*httpserver.Config, error) {
	options := []httpserver.ConfigOption{}
	if s.cfg.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(s.cfg.ReadTimeout))
	}
	if s.cfg.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.cfg.IdleTimeout))
	}
	if s.cfg.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.cfg.DrainTimeout))
	}

	config, err := httpserver.NewConfig(s.cfg.Listen, routes, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return config, nil
}

// serverForRequest is the MCP transport's getServer callback, invoked when
// a request needs a new protocol session. The session config rides in the
// config query parameter; a malformed one degrades to an empty config
// rather than failing the handshake, matching the permissive session-level
// error handling elsewhere.
func (s *Server) serverForRequest(r *http.Request) *mcp.Server {
	sc, err := sessions.ParseSessionConfig(r.URL.Query().Get(ConfigQueryParam))
	if err != nil {
		s.logger.Warn("Ignoring malformed session config",
			"request_id", r.Header.Get(RequestIDHeader),
			"error", err)
		sc = sessions.SessionConfig{}
	}
	return s.cfg.Factory.Create(sc).Server
}

// handleHealthz reports process liveness and the session population.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":          "ok",
		"version":         s.cfg.Version,
		"active_sessions": s.cfg.Cache.Len(),
	})
}

// String returns a unique identifier for this runnable.
func (s *Server) String() string {
	return fmt.Sprintf("server.Server[%s]", s.cfg.Listen)
}

// Run starts the HTTP listener. It implements supervisor.Runnable.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP listener", "address", s.cfg.Listen)
	return s.runner.Run(ctx)
}

// Stop shuts down the HTTP listener.
func (s *Server) Stop() {
	s.logger.Debug("Stopping HTTP listener", "address", s.cfg.Listen)
	s.runner.Stop()
}

// GetState returns the current state of the listener.
func (s *Server) GetState() string {
	return s.runner.GetState()
}

// IsRunning reports whether the listener is accepting connections.
func (s *Server) IsRunning() bool {
	return s.runner.IsReady()
}

// GetStateChan returns a channel that emits state changes.
func (s *Server) GetStateChan(ctx context.Context) <-chan string {
	return s.runner.GetStateChan(ctx)
}
