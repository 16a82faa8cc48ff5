package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// LatestInsiderTrades returns the most recent insider trading disclosures.
func (c *Client) LatestInsiderTrades(ctx context.Context, date string, page, limit int) (json.RawMessage, error) {
	q := url.Values{}
	setIfSet(q, "date", date)
	setIfPositive(q, "page", page)
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "insider-trading/latest", q)
}

// SearchInsiderTrades returns insider trades filtered by symbol.
func (c *Client) SearchInsiderTrades(ctx context.Context, symbol string, page, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := url.Values{"symbol": {symbol}}
	setIfPositive(q, "page", page)
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "insider-trading/search", q)
}

// InsiderTradeStatistics returns aggregate insider buy/sell statistics.
func (c *Client) InsiderTradeStatistics(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "insider-trading/statistics", url.Values{"symbol": {symbol}})
}
