package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type priceHistoryInput struct {
	Symbol string `json:"symbol" jsonschema:"Ticker symbol, such as AAPL"`
	From   string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To     string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

type intradayChartInput struct {
	Symbol   string `json:"symbol" jsonschema:"Ticker symbol, such as AAPL"`
	Interval string `json:"interval" jsonschema:"Bar interval: 1min, 5min, 15min, 30min, 1hour, or 4hour"`
	From     string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To       string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

func registerChart(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_price_history",
		Description: "Get daily close prices for a symbol in a compact form",
	}, forward(func(ctx context.Context, in priceHistoryInput) (json.RawMessage, error) {
		return client.PriceHistory(ctx, in.Symbol, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_full_price_history",
		Description: "Get daily OHLCV bars with volume and VWAP for a symbol",
	}, forward(func(ctx context.Context, in priceHistoryInput) (json.RawMessage, error) {
		return client.FullPriceHistory(ctx, in.Symbol, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_intraday_chart",
		Description: "Get intraday bars for a symbol at a chosen interval",
	}, forward(func(ctx context.Context, in intradayChartInput) (json.RawMessage, error) {
		return client.IntradayChart(ctx, in.Interval, in.Symbol, in.From, in.To)
	}))
}
