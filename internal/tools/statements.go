package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type statementInput struct {
	Symbol string `json:"symbol" jsonschema:"Stock ticker symbol, such as AAPL"`
	Period string `json:"period,omitempty" jsonschema:"Reporting period: annual or quarter"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of reporting periods to return"`
}

func registerStatements(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_income_statement",
		Description: "Get a company's income statements by reporting period",
	}, forward(func(ctx context.Context, in statementInput) (json.RawMessage, error) {
		return client.IncomeStatement(ctx, in.Symbol, in.Period, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_balance_sheet_statement",
		Description: "Get a company's balance sheet statements by reporting period",
	}, forward(func(ctx context.Context, in statementInput) (json.RawMessage, error) {
		return client.BalanceSheetStatement(ctx, in.Symbol, in.Period, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_cash_flow_statement",
		Description: "Get a company's cash flow statements by reporting period",
	}, forward(func(ctx context.Context, in statementInput) (json.RawMessage, error) {
		return client.CashFlowStatement(ctx, in.Symbol, in.Period, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_key_metrics",
		Description: "Get derived per-share and valuation metrics by reporting period",
	}, forward(func(ctx context.Context, in statementInput) (json.RawMessage, error) {
		return client.KeyMetrics(ctx, in.Symbol, in.Period, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_financial_ratios",
		Description: "Get liquidity, profitability, and leverage ratios by reporting period",
	}, forward(func(ctx context.Context, in statementInput) (json.RawMessage, error) {
		return client.FinancialRatios(ctx, in.Symbol, in.Period, in.Limit)
	}))
}
