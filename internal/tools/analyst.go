package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type analystEstimatesInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
	Period string `json:"period,omitempty" jsonschema:"Estimate period: annual or quarter"`
	Page   int    `json:"page,omitempty" jsonschema:"Zero-based page number"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Estimates per page"`
}

func registerAnalyst(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_analyst_estimates",
		Description: "Get analyst revenue and earnings estimates for a symbol",
	}, forward(func(ctx context.Context, in analystEstimatesInput) (json.RawMessage, error) {
		return client.AnalystEstimates(ctx, in.Symbol, in.Period, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_ratings_snapshot",
		Description: "Get the current aggregate analyst rating for a symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.RatingsSnapshot(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_price_target_summary",
		Description: "Get the analyst price target consensus for a symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.PriceTargetSummary(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_stock_grades",
		Description: "Get recent analyst grade changes for a symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.StockGrades(ctx, in.Symbol)
	}))
}
