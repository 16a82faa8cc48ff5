package fmp

import (
	"context"
	"encoding/json"
	"net/url"
)

// TreasuryRates returns US treasury rates in the date window.
func (c *Client) TreasuryRates(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "treasury-rates", rangeQuery(from, to))
}

// EconomicIndicators returns one named indicator series, e.g. GDP or CPI.
func (c *Client) EconomicIndicators(ctx context.Context, name, from, to string) (json.RawMessage, error) {
	if name == "" {
		return nil, missingParam("name")
	}
	q := rangeQuery(from, to)
	q.Set("name", name)
	return c.get(ctx, "economic-indicators", q)
}

// EconomicCalendar returns economic releases in the date window.
func (c *Client) EconomicCalendar(ctx context.Context, from, to string) (json.RawMessage, error) {
	return c.get(ctx, "economic-calendar", rangeQuery(from, to))
}

// MarketRiskPremium returns market risk premium figures by country.
func (c *Client) MarketRiskPremium(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "market-risk-premium", url.Values{})
}
