package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type latestInsiderTradesInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Filing date in YYYY-MM-DD format; empty means the most recent filings"`
	Page  int    `json:"page,omitempty" jsonschema:"Zero-based page number"`
	Limit int    `json:"limit,omitempty" jsonschema:"Trades per page"`
}

type searchInsiderTradesInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
	Page   int    `json:"page,omitempty" jsonschema:"Zero-based page number"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Trades per page"`
}

func registerInsiderTrades(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_latest_insider_trades",
		Description: "Get the most recently filed insider trades across the market",
	}, forward(func(ctx context.Context, in latestInsiderTradesInput) (json.RawMessage, error) {
		return client.LatestInsiderTrades(ctx, in.Date, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_insider_trades",
		Description: "Get insider trades filed for one symbol",
	}, forward(func(ctx context.Context, in searchInsiderTradesInput) (json.RawMessage, error) {
		return client.SearchInsiderTrades(ctx, in.Symbol, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_insider_trade_statistics",
		Description: "Get aggregate insider buy and sell statistics for a symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.InsiderTradeStatistics(ctx, in.Symbol)
	}))
}
