package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// CompanyProfile returns the profile for one symbol.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "profile", url.Values{"symbol": {symbol}})
}

// CompanyNotes returns outstanding company notes for one symbol.
func (c *Client) CompanyNotes(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "company-notes", url.Values{"symbol": {symbol}})
}

// StockPeers returns companies comparable to the symbol.
func (c *Client) StockPeers(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "stock-peers", url.Values{"symbol": {symbol}})
}

// MarketCap returns the current market capitalization for one symbol.
func (c *Client) MarketCap(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "market-capitalization", url.Values{"symbol": {symbol}})
}

// EmployeeCount returns historical employee counts for one symbol.
func (c *Client) EmployeeCount(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := url.Values{"symbol": {symbol}}
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "employee-count", q)
}
