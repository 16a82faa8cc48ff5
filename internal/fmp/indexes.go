package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// IndexList returns all tracked market indexes.
func (c *Client) IndexList(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "index-list", url.Values{})
}

// IndexQuote returns the quote for an index symbol such as ^GSPC.
func (c *Client) IndexQuote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "quote", url.Values{"symbol": {symbol}})
}

// SP500Constituents returns the current S&P 500 membership.
func (c *Client) SP500Constituents(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "sp500-constituent", url.Values{})
}

// DowJonesConstituents returns the current Dow Jones membership.
func (c *Client) DowJonesConstituents(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "dowjones-constituent", url.Values{})
}
