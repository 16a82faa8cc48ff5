package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// statementQuery builds the shared parameter set for statement endpoints.
// period is "annual" or "quarter"; empty means the API default.
func statementQuery(symbol, period string, limit int) url.Values {
	q := url.Values{"symbol": {symbol}}
	setIfSet(q, "period", period)
	setIfPositive(q, "limit", limit)
	return q
}

// IncomeStatement returns income statements for one symbol.
func (c *Client) IncomeStatement(ctx context.Context, symbol, period string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "income-statement", statementQuery(symbol, period, limit))
}

// BalanceSheetStatement returns balance sheets for one symbol.
func (c *Client) BalanceSheetStatement(ctx context.Context, symbol, period string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "balance-sheet-statement", statementQuery(symbol, period, limit))
}

// CashFlowStatement returns cash flow statements for one symbol.
func (c *Client) CashFlowStatement(ctx context.Context, symbol, period string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "cash-flow-statement", statementQuery(symbol, period, limit))
}

// KeyMetrics returns key financial metrics for one symbol.
func (c *Client) KeyMetrics(ctx context.Context, symbol, period string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "key-metrics", statementQuery(symbol, period, limit))
}

// FinancialRatios returns financial ratios for one symbol.
func (c *Client) FinancialRatios(ctx context.Context, symbol, period string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "ratios", statementQuery(symbol, period, limit))
}
