package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

type cryptoQuoteInput struct {
	Symbol string `json:"symbol" jsonschema:"Cryptocurrency pair, such as BTCUSD"`
}

type cryptoHistoryInput struct {
	Symbol string `json:"symbol" jsonschema:"Cryptocurrency pair, such as BTCUSD"`
	From   string `json:"from,omitempty" jsonschema:"Start date in YYYY-MM-DD format"`
	To     string `json:"to,omitempty" jsonschema:"End date in YYYY-MM-DD format"`
}

func registerCrypto(srv *mcp.Server, client *fmp.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_crypto_list",
		Description: "Get the list of tradable cryptocurrency pairs",
	}, forward(func(ctx context.Context, _ emptyInput) (json.RawMessage, error) {
		return client.CryptoList(ctx)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_crypto_quote",
		Description: "Get the real-time quote for a cryptocurrency pair",
	}, forward(func(ctx context.Context, in cryptoQuoteInput) (json.RawMessage, error) {
		return client.CryptoQuote(ctx, in.Symbol)
	}))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_crypto_price_history",
		Description: "Get daily price history for a cryptocurrency pair",
	}, forward(func(ctx context.Context, in cryptoHistoryInput) (json.RawMessage, error) {
		return client.CryptoPriceHistory(ctx, in.Symbol, in.From, in.To)
	}))
}
