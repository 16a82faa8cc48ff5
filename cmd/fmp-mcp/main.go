package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "fmp-mcp",
		Version: Version,
		Usage:   "MCP server for the Financial Modeling Prep API",
		Commands: []*cli.Command{
			serveCmd,
			toolsetsCmd,
			versionCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
