package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type searchSymbolInput struct {
	Query    string `json:"query" jsonschema:"Full or partial ticker symbol to search for"`
	Exchange string `json:"exchange,omitempty" jsonschema:"Restrict matches to one exchange, such as NASDAQ"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of matches to return"`
}

type searchNameInput struct {
	Query    string `json:"query" jsonschema:"Full or partial company name to search for"`
	Exchange string `json:"exchange,omitempty" jsonschema:"Restrict matches to one exchange, such as NASDAQ"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of matches to return"`
}

type searchCIKInput struct {
	CIK   string `json:"cik" jsonschema:"SEC Central Index Key to look up"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of matches to return"`
}

type searchCUSIPInput struct {
	CUSIP string `json:"cusip" jsonschema:"CUSIP identifier to look up"`
}

type searchISINInput struct {
	ISIN string `json:"isin" jsonschema:"ISIN identifier to look up"`
}

func registerSearch(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_symbol",
		Description: "Search for stock symbols by full or partial ticker",
	}, forward(func(ctx context.Context, in searchSymbolInput) (json.RawMessage, error) {
		return client.SearchSymbol(ctx, in.Query, in.Exchange, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_name",
		Description: "Search for companies by full or partial name",
	}, forward(func(ctx context.Context, in searchNameInput) (json.RawMessage, error) {
		return client.SearchName(ctx, in.Query, in.Exchange, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_cik",
		Description: "Find companies by SEC Central Index Key (CIK)",
	}, forward(func(ctx context.Context, in searchCIKInput) (json.RawMessage, error) {
		return client.SearchCIK(ctx, in.CIK, in.Limit)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_cusip",
		Description: "Find securities by CUSIP identifier",
	}, forward(func(ctx context.Context, in searchCUSIPInput) (json.RawMessage, error) {
		return client.SearchCUSIP(ctx, in.CUSIP)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_isin",
		Description: "Find securities by ISIN identifier",
	}, forward(func(ctx context.Context, in searchISINInput) (json.RawMessage, error) {
		return client.SearchISIN(ctx, in.ISIN)
	}))
}
