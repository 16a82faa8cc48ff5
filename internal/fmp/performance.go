package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// SectorPerformance returns the sector performance snapshot for a date
// (YYYY-MM-DD, required by the API).
func (c *Client) SectorPerformance(ctx context.Context, date, exchange string) (json.RawMessage, error) {
	if date == "" {
		return nil, missingParam("date")
	}
	q := url.Values{"date": {date}}
	setIfSet(q, "exchange", exchange)
	return c.get(ctx, "sector-performance-snapshot", q)
}

// IndustryPerformance returns the industry performance snapshot for a date.
func (c *Client) IndustryPerformance(ctx context.Context, date, exchange string) (json.RawMessage, error) {
	if date == "" {
		return nil, missingParam("date")
	}
	q := url.Values{"date": {date}}
	setIfSet(q, "exchange", exchange)
	return c.get(ctx, "industry-performance-snapshot", q)
}

// BiggestGainers returns today's largest percentage gainers.
func (c *Client) BiggestGainers(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "biggest-gainers", url.Values{})
}

// BiggestLosers returns today's largest percentage losers.
func (c *Client) BiggestLosers(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "biggest-losers", url.Values{})
}

// MostActiveStocks returns today's highest-volume stocks.
func (c *Client) MostActiveStocks(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "most-actives", url.Values{})
}
