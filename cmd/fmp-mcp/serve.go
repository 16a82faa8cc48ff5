package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/cmd/fmp-mcp/server"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/logging"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Start the FMP MCP server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "HTTP bind address, e.g. :8080",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "Server-default FMP access token (sessions may supply their own)",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Override the FMP API endpoint",
		},
		&cli.StringFlag{
			Name:  "tool-sets",
			Usage: "Force a fixed, comma-separated toolset list for every session",
		},
		&cli.BoolFlag{
			Name:  "dynamic-tool-discovery",
			Usage: "Force dynamic tool discovery mode for every session",
		},
		&cli.DurationFlag{
			Name:  "session-ttl",
			Usage: "Idle lifetime of a cached session",
		},
		&cli.IntFlag{
			Name:  "max-sessions",
			Usage: "Maximum number of cached sessions",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (trace, debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text or json)",
		},
		&cli.StringFlag{
			Name:  "log-output",
			Usage: "Log destination (stdout, stderr, or a file path)",
		},
	},
	Action: serveAction,
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	flags := config.FlagValues{
		ConfigFile:  cmd.String("config"),
		Listen:      cmd.String("listen"),
		APIKey:      cmd.String("api-key"),
		BaseURL:     cmd.String("base-url"),
		SessionTTL:  cmd.Duration("session-ttl"),
		MaxSessions: int(cmd.Int("max-sessions")),
		LogLevel:    cmd.String("log-level"),
		LogFormat:   cmd.String("log-format"),
		LogOutput:   cmd.String("log-output"),
		ToolSets:    cmd.String("tool-sets"),
		Dynamic:     cmd.Bool("dynamic-tool-discovery"),
	}

	cfg, err := config.Load(flags, nil)
	if err != nil {
		return cli.Exit(fmt.Errorf("invalid configuration: %w", err), 1)
	}

	logger, err := logging.Setup(cfg.LogFormat, cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to set up logging: %w", err), 1)
	}

	if err := server.Run(ctx, logger, cfg, cmd.Root().Version); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
