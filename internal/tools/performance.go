package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type performanceSnapshotInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Snapshot date in YYYY-MM-DD format; empty means the latest session"`
	Exchange string `json:"exchange,omitempty" jsonschema:"Restrict the snapshot to one exchange, such as NASDAQ"`
}

type emptyInput struct{}

func registerMarketPerformance(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_sector_performance",
		Description: "Get per-sector performance for a trading session",
	}, forward(func(ctx context.Context, in performanceSnapshotInput) (json.RawMessage, error) {
		return client.SectorPerformance(ctx, in.Date, in.Exchange)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_industry_performance",
		Description: "Get per-industry performance for a trading session",
	}, forward(func(ctx context.Context, in performanceSnapshotInput) (json.RawMessage, error) {
		return client.IndustryPerformance(ctx, in.Date, in.Exchange)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_biggest_gainers",
		Description: "Get the stocks with the largest percentage gains today",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.BiggestGainers(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_biggest_losers",
		Description: "Get the stocks with the largest percentage losses today",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.BiggestLosers(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_most_active_stocks",
		Description: "Get the stocks with the highest trading volume today",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.MostActiveStocks(ctx)
	}))
}
