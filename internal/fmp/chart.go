package fmp

import (
	"context"
	"encoding/json"
	"fmt"
)

var intradayIntervals = map[string]bool{
	"1min":  true,
	"5min":  true,
	"15min": true,
	"30min": true,
	"1hour": true,
	"4hour": true,
}

// PriceHistory returns lightweight end-of-day prices for one symbol.
func (c *Client) PriceHistory(ctx context.Context, symbol, from, to string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := rangeQuery(from, to)
	q.Set("symbol", symbol)
	return c.get(ctx, "historical-price-eod/light", q)
}

// FullPriceHistory returns full OHLCV end-of-day prices for one symbol.
func (c *Client) FullPriceHistory(ctx context.Context, symbol, from, to string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := rangeQuery(from, to)
	q.Set("symbol", symbol)
	return c.get(ctx, "historical-price-eod/full", q)
}

// IntradayChart returns intraday bars for one symbol. Interval must be one
// of 1min, 5min, 15min, 30min, 1hour, or 4hour.
func (c *Client) IntradayChart(ctx context.Context, interval, symbol, from, to string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	if !intradayIntervals[interval] {
		return nil, fmt.Errorf("invalid intraday interval %q (expected 1min, 5min, 15min, 30min, 1hour, or 4hour)", interval)
	}
	q := rangeQuery(from, to)
	q.Set("symbol", symbol)
	return c.get(ctx, "historical-chart/"+interval, q)
}
