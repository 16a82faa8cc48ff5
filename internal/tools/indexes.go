package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type indexQuoteInput struct {
	Symbol string `json:"symbol" jsonschema:"Index symbol, such as ^GSPC for the S&P 500"`
}

func registerIndexes(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_index_list",
		Description: "Get the list of tracked market indexes",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.IndexList(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_index_quote",
		Description: "Get the real-time quote for a market index",
	}, forward(func(ctx context.Context, in indexQuoteInput) (json.RawMessage, error) {
		return client.IndexQuote(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_sp500_constituents",
		Description: "Get the current S&P 500 member companies",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.SP500Constituents(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_dowjones_constituents",
		Description: "Get the current Dow Jones Industrial Average member companies",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.DowJonesConstituents(ctx)
	}))
}
