// Package toolsets defines the closed catalog of toolsets: named groups of
// FMP tools that are enabled or disabled as a unit. The catalog is fixed at
// compile time; every toolset name accepted anywhere in the server must be a
// member.
package toolsets

import "strings"

// Name identifies a toolset in the catalog.
type Name string

const (
	Search            Name = "search"
	Company           Name = "company"
	Quotes            Name = "quotes"
	Statements        Name = "statements"
	Calendar          Name = "calendar"
	Chart             Name = "chart"
	News              Name = "news"
	Analyst           Name = "analyst"
	MarketPerformance Name = "market-performance"
	InsiderTrades     Name = "insider-trades"
	Indexes           Name = "indexes"
	Economics         Name = "economics"
	Crypto            Name = "crypto"
	Forex             Name = "forex"
)

func (n Name) String() string {
	return string(n)
}

// Toolset is one named group of related tools.
type Toolset struct {
	// Name is the catalog identifier, as accepted in toolset lists.
	Name Name

	// Description is a one-line summary shown by the CLI and the
	// describe_toolset meta tool.
	Description string

	// Tools lists the tool names the set registers, in registration order.
	Tools []string
}

// catalog order is the canonical display order.
var catalog = []Toolset{
	{
		Name:        Search,
		Description: "Find symbols and companies by ticker, name, CIK, CUSIP, or ISIN",
		Tools: []string{
			"search_symbol",
			"search_name",
			"search_cik",
			"search_cusip",
			"search_isin",
		},
	},
	{
		Name:        Company,
		Description: "Company profiles, notes, peers, market cap, and headcount",
		Tools: []string{
			"get_company_profile",
			"get_company_notes",
			"get_stock_peers",
			"get_market_cap",
			"get_employee_count",
		},
	},
	{
		Name:        Quotes,
		Description: "Real-time and batch quotes with price change summaries",
		Tools: []string{
			"get_quote",
			"get_quote_short",
			"get_batch_quotes",
			"get_aftermarket_quote",
			"get_price_change",
		},
	},
	{
		Name:        Statements,
		Description: "Financial statements, key metrics, and ratios",
		Tools: []string{
			"get_income_statement",
			"get_balance_sheet_statement",
			"get_cash_flow_statement",
			"get_key_metrics",
			"get_financial_ratios",
		},
	},
	{
		Name:        Calendar,
		Description: "Dividend, earnings, IPO, and split calendars",
		Tools: []string{
			"get_dividends",
			"get_dividends_calendar",
			"get_earnings_calendar",
			"get_ipo_calendar",
			"get_splits_calendar",
		},
	},
	{
		Name:        Chart,
		Description: "Historical end-of-day and intraday price data",
		Tools: []string{
			"get_price_history",
			"get_full_price_history",
			"get_intraday_chart",
		},
	},
	{
		Name:        News,
		Description: "Stock, crypto, and forex news plus press releases",
		Tools: []string{
			"get_stock_news",
			"get_crypto_news",
			"get_forex_news",
			"get_press_releases",
		},
	},
	{
		Name:        Analyst,
		Description: "Analyst estimates, ratings, price targets, and grades",
		Tools: []string{
			"get_analyst_estimates",
			"get_ratings_snapshot",
			"get_price_target_summary",
			"get_stock_grades",
		},
	},
	{
		Name:        MarketPerformance,
		Description: "Sector and industry performance, gainers, losers, most active",
		Tools: []string{
			"get_sector_performance",
			"get_industry_performance",
			"get_biggest_gainers",
			"get_biggest_losers",
			"get_most_active_stocks",
		},
	},
	{
		Name:        InsiderTrades,
		Description: "Insider trading activity and statistics",
		Tools: []string{
			"get_latest_insider_trades",
			"search_insider_trades",
			"get_insider_trade_statistics",
		},
	},
	{
		Name:        Indexes,
		Description: "Market indexes, quotes, and constituent lists",
		Tools: []string{
			"get_index_list",
			"get_index_quote",
			"get_sp500_constituents",
			"get_dowjones_constituents",
		},
	},
	{
		Name:        Economics,
		Description: "Treasury rates, economic indicators, and the economic calendar",
		Tools: []string{
			"get_treasury_rates",
			"get_economic_indicators",
			"get_economic_calendar",
			"get_market_risk_premium",
		},
	},
	{
		Name:        Crypto,
		Description: "Cryptocurrency listings, quotes, and price history",
		Tools: []string{
			"get_crypto_list",
			"get_crypto_quote",
			"get_crypto_price_history",
		},
	},
	{
		Name:        Forex,
		Description: "Currency pair listings, quotes, and price history",
		Tools: []string{
			"get_forex_list",
			"get_forex_quote",
			"get_forex_price_history",
		},
	},
}

var byName = make(map[Name]Toolset, len(catalog))

func init() {
	for _, ts := range catalog {
		byName[ts.Name] = ts
	}
}

// Valid reports whether name is a member of the catalog.
func Valid(name Name) bool {
	_, ok := byName[name]
	return ok
}

// Lookup returns the toolset for name.
func Lookup(name Name) (Toolset, bool) {
	ts, ok := byName[name]
	return ts, ok
}

// All returns the catalog in display order.
func All() []Toolset {
	out := make([]Toolset, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns every toolset name in display order.
func Names() []Name {
	out := make([]Name, len(catalog))
	for i, ts := range catalog {
		out[i] = ts.Name
	}
	return out
}

// NamesString returns the catalog names joined with ", ", for diagnostics
// and CLI help text.
func NamesString() string {
	return JoinNames(Names())
}

// JoinNames joins names with ", " for log and error output.
func JoinNames(names []Name) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}

// SplitList parses a comma-separated toolset list. Elements are trimmed and
// empty elements dropped; no membership validation is performed.
func SplitList(s string) []Name {
	var out []Name
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, Name(part))
	}
	return out
}
