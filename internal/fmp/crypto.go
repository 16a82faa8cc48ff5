package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// CryptoList returns all tracked cryptocurrency pairs.
func (c *Client) CryptoList(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "cryptocurrency-list", url.Values{})
}

// CryptoQuote returns the quote for a crypto pair such as BTCUSD.
func (c *Client) CryptoQuote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "quote", url.Values{"symbol": {symbol}})
}

// CryptoPriceHistory returns end-of-day prices for a crypto pair.
func (c *Client) CryptoPriceHistory(ctx context.Context, symbol, from, to string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	q := rangeQuery(from, to)
	q.Set("symbol", symbol)
	return c.get(ctx, "historical-price-eod/light", q)
}
