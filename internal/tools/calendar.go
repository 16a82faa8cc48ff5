package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type dividendsInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of dividend records to return"`
}

type dateRangeInput struct {
	From string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To   string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

func registerCalendar(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_dividends",
		Description: "Get a symbol's dividend payment history",
	}, forward(func(ctx context.Context, in dividendsInput) (json.RawMessage, error) {
		return client.Dividends(ctx, in.Symbol, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_dividends_calendar",
		Description: "Get upcoming ex-dividend dates across the market",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.DividendsCalendar(ctx, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_earnings_calendar",
		Description: "Get scheduled earnings announcements with estimates",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.EarningsCalendar(ctx, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_ipo_calendar",
		Description: "Get upcoming and recent initial public offerings",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.IPOCalendar(ctx, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_splits_calendar",
		Description: "Get upcoming stock splits",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.SplitsCalendar(ctx, in.From, in.To)
	}))
}
