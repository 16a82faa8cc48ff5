package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type forexQuoteInput struct {
	Symbol string `json:"symbol" jsonschema:"Currency pair, such as EURUSD"`
}

type forexHistoryInput struct {
	Symbol string `json:"symbol" jsonschema:"Currency pair, such as EURUSD"`
	From   string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To     string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

func registerForex(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_forex_list",
		Description: "Get the list of tradable currency pairs",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.ForexList(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_forex_quote",
		Description: "Get the real-time quote for a currency pair",
	}, forward(func(ctx context.Context, in forexQuoteInput) (json.RawMessage, error) {
		return client.ForexQuote(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_forex_price_history",
		Description: "Get daily price history for a currency pair",
	}, forward(func(ctx context.Context, in forexHistoryInput) (json.RawMessage, error) {
		return client.ForexPriceHistory(ctx, in.Symbol, in.From, in.To)
	}))
}
