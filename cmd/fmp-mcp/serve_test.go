package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// serveTestCmd builds a command whose flag defaults stand in for parsed CLI
// values, so the serve action can be called directly without running the
// CLI (which would os.Exit on an ExitCoder).
func serveTestCmd(flags ...cli.Flag) *cli.Command {
	base := []cli.Flag{
		&cli.StringFlag{Name: "config"},
		&cli.StringFlag{Name: "listen"},
		&cli.StringFlag{Name: "api-key"},
		&cli.StringFlag{Name: "base-url"},
		&cli.StringFlag{Name: "tool-sets"},
		&cli.BoolFlag{Name: "dynamic-tool-discovery"},
		&cli.DurationFlag{Name: "session-ttl"},
		&cli.IntFlag{Name: "max-sessions"},
		&cli.StringFlag{Name: "log-level"},
		&cli.StringFlag{Name: "log-format"},
		&cli.StringFlag{Name: "log-output"},
	}
	names := make(map[string]bool, len(flags))
	for _, f := range flags {
		names[f.Names()[0]] = true
	}
	merged := flags
	for _, f := range base {
		if !names[f.Names()[0]] {
			merged = append(merged, f)
		}
	}
	return &cli.Command{Flags: merged}
}

func TestServeCmd_InvalidToolsets(t *testing.T) {
	t.Parallel()
	cmd := serveTestCmd(&cli.StringFlag{Name: "tool-sets", Value: "search,bogus"})

	err := serveAction(context.Background(), cmd)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "invalid toolset name(s): bogus")
	assert.Contains(t, err.Error(), "valid toolsets: search, company")
}

func TestServeCmd_InvalidLogFormat(t *testing.T) {
	t.Parallel()
	cmd := serveTestCmd(&cli.StringFlag{Name: "log-format", Value: "xml"})

	err := serveAction(context.Background(), cmd)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestServeCmd_InvalidBaseURL(t *testing.T) {
	t.Parallel()
	cmd := serveTestCmd(&cli.StringFlag{Name: "base-url", Value: "not-a-url"})

	err := serveAction(context.Background(), cmd)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "invalid FMP base URL")
}

func TestServeCmd_MissingConfigFile(t *testing.T) {
	t.Parallel()
	cmd := serveTestCmd(
		&cli.StringFlag{Name: "config", Value: "/nonexistent/fmp-mcp.toml"},
	)

	err := serveAction(context.Background(), cmd)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "/nonexistent/fmp-mcp.toml")
}
