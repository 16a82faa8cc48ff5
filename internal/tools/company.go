package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type symbolInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
}

type employeeCountInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of historical records to return"`
}

func registerCompany(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_company_profile",
		Description: "Get a company's profile: sector, industry, description, executives, and key facts",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.CompanyProfile(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_company_notes",
		Description: "Get notes and debt instruments a company has registered with the SEC",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.CompanyNotes(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_stock_peers",
		Description: "Get companies comparable to the given symbol",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.StockPeers(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_market_cap",
		Description: "Get a company's current market capitalization",
	}, forward(func(ctx context.Context, in symbolInput) (json.RawMessage, error) {
		return client.MarketCap(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_employee_count",
		Description: "Get a company's reported employee headcount history",
	}, forward(func(ctx context.Context, in employeeCountInput) (json.RawMessage, error) {
		return client.EmployeeCount(ctx, in.Symbol, in.Limit)
	}))
}
