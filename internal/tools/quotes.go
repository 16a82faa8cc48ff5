package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type batchQuotesInput struct {
	Symbols []string `json:"symbols" jsonschema:"Ticker symbols to quote in one call"`
}

func registerQuotes(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_quote",
		Description: "Get the full real-time quote for a symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.Quote(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_quote_short",
		Description: "Get a compact quote: price, change, and volume only",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.QuoteShort(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_batch_quotes",
		Description: "Get quotes for several symbols in one call",
	}, forward(func(ctx context.Context, in batchQuotesInput) (json.RawMessage, error) {
		return client.BatchQuotes(ctx, in.Symbols)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_aftermarket_quote",
		Description: "Get a symbol's after-hours trading quote",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.AftermarketQuote(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_price_change",
		Description: "Get a symbol's price change over standard windows from one day to ten years",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.PriceChange(ctx, in.Symbol)
	}))
}
