package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type economicIndicatorsInput struct {
	Name string `json:"name" jsonschema:"Indicator name, such as GDP, CPI, or unemploymentRate"`
	From string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To   string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

func registerEconomics(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_treasury_rates",
		Description: "Get US Treasury yields across maturities",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.TreasuryRates(ctx, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_economic_indicators",
		Description: "Get readings of a named economic indicator over time",
	}, forward(func(ctx context.Context, in economicIndicatorsInput) (json.RawMessage, error) {
		return client.EconomicIndicators(ctx, in.Name, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_economic_calendar",
		Description: "Get scheduled economic data releases",
	}, forward(func(ctx context.Context, in dateRangeInput) (json.RawMessage, error) {
		return client.EconomicCalendar(ctx, in.From, in.To)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_market_risk_premium",
		Description: "Get the market risk premium by country",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.MarketRiskPremium(ctx)
	}))
}
