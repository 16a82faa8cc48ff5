package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// ForexList returns all tracked currency pairs.
func (c *Client) ForexList(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "forex-list", url.Values{})
}

// ForexQuote returns the quote for a currency pair such as EURUSD.
func (c *Client) ForexQuote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "quote", url.Values{"symbol": {symbol}})
}

// ForexPriceHistory returns end-of-day prices for a currency pair.
func (c *Client) ForexPriceHistory(ctx context.Context, symbol, from, to string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := rangeQuery(from, to)
	q.Set("symbol", symbol)
	return c.get(ctx, "historical-price-eod/light", q)
}
