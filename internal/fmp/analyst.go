package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// AnalystEstimates returns analyst revenue and earnings estimates.
func (c *Client) AnalystEstimates(ctx context.Context, symbol, period string, page, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := url.Values{"symbol": {symbol}}
	setIfSet(q, "period", period)
	setIfPositive(q, "page", page)
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "analyst-estimates", q)
}

// RatingsSnapshot returns the current analyst rating snapshot.
func (c *Client) RatingsSnapshot(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "ratings-snapshot", url.Values{"symbol": {symbol}})
}

// PriceTargetSummary returns aggregated analyst price targets.
func (c *Client) PriceTargetSummary(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "price-target-summary", url.Values{"symbol": {symbol}})
}

// StockGrades returns recent analyst grade changes.
func (c *Client) StockGrades(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "grades", url.Values{"symbol": {symbol}})
}
