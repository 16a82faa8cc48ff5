package fmp

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Quote returns the full quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "quote", url.Values{"symbol": {symbol}})
}

// QuoteShort returns the abbreviated quote for one symbol.
func (c *Client) QuoteShort(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "quote-short", url.Values{"symbol": {symbol}})
}

// BatchQuotes returns abbreviated quotes for several symbols at once.
func (c *Client) BatchQuotes(ctx context.Context, symbols []string) (json.RawMessage, error) {
	if len(symbols) == 0 {
		return nil, missingParam("symbols")
	}
	return c.get(ctx, "batch-quote", url.Values{"symbols": {strings.Join(symbols, ",")}})
}

// AftermarketQuote returns the after-hours quote for one symbol.
func (c *Client) AftermarketQuote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "aftermarket-quote", url.Values{"symbol": {symbol}})
}

// PriceChange returns price change percentages over standard windows.
func (c *Client) PriceChange(ctx context.Context, symbol string) (json.RawMessage, error) {
	if symbol == "" {
		return nil, missingParam("symbol")
	}
	return c.get(ctx, "stock-price-change", url.Values{"symbol": {symbol}})
}
