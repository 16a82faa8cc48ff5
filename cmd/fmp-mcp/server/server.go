// Package server wires the session cache and the HTTP listener under a
// supervisor and runs them until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/metrics"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/server"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/sessions"
)

// Run starts the FMP MCP server using the provided context, logger, and
// resolved configuration. It blocks until the context is canceled or a
// shutdown signal arrives, and returns an error if the server fails to
// start.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config, version string) error {
	if cfg == nil {
		return fmt.Errorf("no configuration provided")
	}
	logHandler := logger.Handler()

	recorder := metrics.New()

	cache, err := sessions.NewCache(sessions.CacheConfig{
		MaxSessions:   cfg.MaxSessions,
		TTL:           cfg.SessionTTL,
		SweepInterval: cfg.SweepInterval,
	},
		sessions.WithLogger(logger.With("component", "sessions")),
		sessions.WithMetrics(recorder),
	)
	if err != nil {
		return fmt.Errorf("failed to create session cache: %w", err)
	}

	factory, err := sessions.NewFactory(sessions.FactoryConfig{
		Cache:      cache,
		Override:   cfg.Override,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		ServerName: "fmp-mcp",
		Version:    version,
		Logger:     logger.With("component", "sessions"),
		Metrics:    recorder,
	})
	if err != nil {
		return fmt.Errorf("failed to create session factory: %w", err)
	}

	listener, err := server.New(server.Config{
		Listen:  cfg.Listen,
		Factory: factory,
		Cache:   cache,
		Metrics: recorder,
		Version: version,
		Logger:  logger.With("component", "server"),
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	logger.Info("Starting FMP MCP server",
		"listen", cfg.Listen,
		"mode_override", cfg.Override.String(),
		"session_ttl", cfg.SessionTTL,
		"max_sessions", cfg.MaxSessions)

	// Order is important: the cache sweeper starts first and stops last so
	// the listener never runs against a stopped cache.
	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(cache, listener),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
