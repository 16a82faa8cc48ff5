package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// SearchSymbol finds tickers whose symbol matches the query.
func (c *Client) SearchSymbol(ctx context.Context, query, exchange string, limit int) (json.RawMessage, error) {
	if query == "" {
		return nil, missingParam("query")
	}
	q := url.Values{"query": {query}}
	setIfSet(q, "exchange", exchange)
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "search-symbol", q)
}

// SearchName finds companies whose name matches the query.
func (c *Client) SearchName(ctx context.Context, query, exchange string, limit int) (json.RawMessage, error) {
	if query == "" {
		return nil, missingParam("query")
	}
	q := url.Values{"query": {query}}
	setIfSet(q, "exchange", exchange)
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "search-name", q)
}

// SearchCIK looks up companies by SEC CIK number.
func (c *Client) SearchCIK(ctx context.Context, cik string, limit int) (json.RawMessage, error) {
	if cik == "" {
		return nil, missingParam("cik")
	}
	q := url.Values{"cik": {cik}}
	setIfPositive(q, "limit", limit)
	return c.get(ctx, "search-cik", q)
}

// SearchCUSIP looks up securities by CUSIP identifier.
func (c *Client) SearchCUSIP(ctx context.Context, cusip string) (json.RawMessage, error) {
	if cusip == "" {
		return nil, missingParam("cusip")
	}
	return c.get(ctx, "search-cusip", url.Values{"cusip": {cusip}})
}

// SearchISIN looks up securities by ISIN identifier.
func (c *Client) SearchISIN(ctx context.Context, isin string) (json.RawMessage, error) {
	if isin == "" {
		return nil, missingParam("isin")
	}
	return c.get(ctx, "search-isin", url.Values{"isin": {isin}})
}
