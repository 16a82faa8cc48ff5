package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type newsInput struct {
	Symbols []string `json:"symbols,omitempty" jsonschema:"Restrict articles to these symbols; empty returns the latest across the market"`
	From    string   `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To      string   `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
	Page    int      `json:"page,omitempty" jsonschema:"Zero-based page number"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Articles per page"`
}

func registerNews(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_stock_news",
		Description: "Get stock market news, optionally filtered by symbols and date range",
	}, forward(func(ctx context.Context, in newsInput) (json.RawMessage, error) {
		return client.StockNews(ctx, in.Symbols, in.From, in.To, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_crypto_news",
		Description: "Get cryptocurrency news, optionally filtered by symbols and date range",
	}, forward(func(ctx context.Context, in newsInput) (json.RawMessage, error) {
		return client.CryptoNews(ctx, in.Symbols, in.From, in.To, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_forex_news",
		Description: "Get foreign exchange news, optionally filtered by pairs and date range",
	}, forward(func(ctx context.Context, in newsInput) (json.RawMessage, error) {
		return client.ForexNews(ctx, in.Symbols, in.From, in.To, in.Page, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_press_releases",
		Description: "Get company press releases, optionally filtered by symbols and date range",
	}, forward(func(ctx context.Context, in newsInput) (json.RawMessage, error) {
		return client.PressReleases(ctx, in.Symbols, in.From, in.To, in.Page, in.Limit)
	}))
}
