package fmp

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// newsQuery builds the shared news parameter set. With symbols the request
// goes to the symbol-filtered endpoint; without, to the latest feed.
func newsQuery(symbols []string, from, to string, page, limit int) url.Values {
	q := rangeQuery(from, to)
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	setIfPositive(q, "page", page)
	setIfPositive(q, "limit", limit)
	return q
}

func newsPath(base string, symbols []string) string {
	if len(symbols) > 0 {
		return "news/" + base
	}
	return "news/" + base + "-latest"
}

// StockNews returns stock market news, optionally filtered by symbols.
func (c *Client) StockNews(ctx context.Context, symbols []string, from, to string, page, limit int) (json.RawMessage, error) {
	return c.get(ctx, newsPath("stock", symbols), newsQuery(symbols, from, to, page, limit))
}

// CryptoNews returns cryptocurrency news, optionally filtered by symbols.
func (c *Client) CryptoNews(ctx context.Context, symbols []string, from, to string, page, limit int) (json.RawMessage, error) {
	return c.get(ctx, newsPath("crypto", symbols), newsQuery(symbols, from, to, page, limit))
}

// ForexNews returns currency market news, optionally filtered by pairs.
func (c *Client) ForexNews(ctx context.Context, symbols []string, from, to string, page, limit int) (json.RawMessage, error) {
	return c.get(ctx, newsPath("forex", symbols), newsQuery(symbols, from, to, page, limit))
}

// PressReleases returns company press releases, optionally filtered by
// symbols.
func (c *Client) PressReleases(ctx context.Context, symbols []string, from, to string, page, limit int) (json.RawMessage, error) {
	return c.get(ctx, newsPath("press-releases", symbols), newsQuery(symbols, from, to, page, limit))
}
