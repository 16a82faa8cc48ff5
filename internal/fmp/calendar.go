package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// rangeQuery builds a from/to date window parameter set. Dates are
// YYYY-MM-DD; empty values mean the API default window.
func rangeQuery(from, to string) url.Values {
	q := url.Values{}
	setIfSet(q, "from", from)
	setIfSet(q, "to", to)
	return q
}

// Dividends returns the dividend history for one symbol.
func (c *Client) Dividends(ctx context.Context, symbol string, limit int) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := url.Values{"symbol": {symbol}}
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "dividends", q)
}

// DividendsCalendar returns upcoming dividends in the date window.
func (c *Client) DividendsCalendar(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "dividends-calendar", rangeQuery(from, to))
}

// EarningsCalendar returns earnings announcements in the date window.
func (c *Client) EarningsCalendar(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "earnings-calendar", rangeQuery(from, to))
}

// IPOCalendar returns IPO events in the date window.
func (c *Client) IPOCalendar(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "ipos-calendar", rangeQuery(from, to))
}

// SplitsCalendar returns stock splits in the date window.
func (c *Client) SplitsCalendar(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "splits-calendar", rangeQuery(from, to))
}
