// Package tools registers the Financial Modeling Prep tool catalog on MCP
// servers. Each toolset has a registration function; the registrar map
// ties them to the toolset registry so that every registry entry has a
// matching implementation.
package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// Registrar registers one toolset's tools on a server.
type Registrar func(srv *mcp.Server, client *fmp.Client)

// registrars maps every toolset in the registry to its registration
// function. Kept in catalog order for readability; the map itself is
// unordered.
var registrars = map[toolsets.Name]Registrar{
	toolsets.Search:            registerSearch,
	toolsets.Company:           registerCompany,
	toolsets.Quotes:            registerQuotes,
	toolsets.Statements:        registerStatements,
	toolsets.Calendar:          registerCalendar,
	toolsets.Chart:             registerChart,
	toolsets.News:              registerNews,
	toolsets.Analyst:           registerAnalyst,
	toolsets.MarketPerformance: registerMarketPerformance,
	toolsets.InsiderTrades:     registerInsiderTrades,
	toolsets.Indexes:           registerIndexes,
	toolsets.Economics:         registerEconomics,
	toolsets.Crypto:            registerCrypto,
	toolsets.Forex:             registerForex,
}

// RegisterAll registers every toolset's tools on srv.
func RegisterAll(srv *mcp.Server, client *fmp.Client) {
	RegisterSets(srv, client, toolsets.Names())
}

// RegisterSets registers the named toolsets' tools on srv. Unknown names
// are skipped; callers validate names before getting here.
func RegisterSets(srv *mcp.Server, client *fmp.Client, names []toolsets.Name) {
	for _, name := range names {
		if register, ok := registrars[name]; ok {
			register(srv, client)
		}
	}
}

// forward adapts an FMP client call into a typed MCP tool handler. The
// upstream response body is relayed verbatim as text content, and errors
// become structured JSON envelopes.
func forward[In any](call func(context.Context, In) (json.RawMessage, error)) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, any, error) {
		payload, err := call(ctx, input)
		if err != nil {
			return nil, nil, toolError{envelope: classifyError(err)}
		}
		return textResult(payload), nil, nil
	}
}

func textResult(payload json.RawMessage) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}
