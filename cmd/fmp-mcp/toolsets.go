package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fancy"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

var toolsetsCmd = &cli.Command{
	Name:  "toolsets",
	Usage: "List the toolset catalog",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "tools",
			Usage: "Also list the tools each toolset contains",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the catalog as JSON",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Bool("json") {
			out, err := renderToolsetsJSON()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}
		fmt.Println(renderToolsets(cmd.Bool("tools")))
		return nil
	},
}

// renderToolsets builds the catalog tree. With showTools, each toolset
// branch lists its tool names.
func renderToolsets(showTools bool) string {
	catalog := toolsets.All()
	t := fancy.NewComponentTree(fancy.RootStyle.Render(
		fmt.Sprintf("Toolsets (%d)", len(catalog))))

	for _, ts := range catalog {
		branch := t.AddBranch(fmt.Sprintf("%s %s",
			fancy.ToolsetText(ts.Name.String()),
			fancy.InfoText(ts.Description)))
		if showTools {
			for _, tool := range ts.Tools {
				branch.Child(fancy.ToolText(tool))
			}
		} else {
			branch.Child(fancy.CountText(fmt.Sprintf("%d tools", len(ts.Tools))))
		}
	}

	return t.Tree().String()
}

// renderToolsetsJSON prints the catalog for machine consumption.
func renderToolsetsJSON() (string, error) {
	type entry struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Tools       []string `json:"tools"`
	}

	catalog := toolsets.All()
	entries := make([]entry, len(catalog))
	for i, ts := range catalog {
		entries[i] = entry{
			Name:        ts.Name.String(),
			Description: ts.Description,
			Tools:       ts.Tools,
		}
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode toolset catalog: %w", err)
	}
	return string(out), nil
}
