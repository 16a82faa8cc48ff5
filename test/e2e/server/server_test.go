//go:build e2e
// +build e2e

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
)

// connectMCP establishes an MCP session against the server's streamable
// endpoint.
func connectMCP(t *testing.T, ctx context.Context, baseURL string) *mcpsdk.ClientSession {
	t.Helper()

	transport := &mcpsdk.StreamableClientTransport{Endpoint: baseURL + "/mcp"}
	client := mcpsdk.NewClient(
		&mcpsdk.Implementation{Name: "e2e-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err, "Failed to establish MCP session")
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func listToolNames(t *testing.T, ctx context.Context, session *mcpsdk.ClientSession) map[string]bool {
	t.Helper()

	result, err := session.ListTools(ctx, &mcpsdk.ListToolsParams{})
	require.NoError(t, err, "ListTools should succeed")

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	return names
}

func TestHealthz(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{})

	resp, err := http.Get(baseURL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status         string `json:"status"`
		Version        string `json:"version"`
		ActiveSessions int    `json:"active_sessions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "e2e-test", body.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{})

	resp, err := http.Get(baseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAllToolsMode(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectMCP(t, ctx, baseURL)

	names := listToolNames(t, ctx, session)
	assert.True(t, names["search_symbol"], "search tools should be registered")
	assert.True(t, names["get_quote"], "quote tools should be registered")
	assert.True(t, names["get_income_statement"], "statement tools should be registered")
	assert.False(t, names["list_toolsets"], "meta tools belong to dynamic mode only")
}

func TestStaticToolsetsOverride(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{ToolSets: "search,company"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectMCP(t, ctx, baseURL)

	names := listToolNames(t, ctx, session)
	assert.True(t, names["search_symbol"])
	assert.True(t, names["get_company_profile"])
	assert.False(t, names["get_quote"], "quotes toolset was not requested")
	assert.False(t, names["get_income_statement"], "statements toolset was not requested")
}

func TestDynamicDiscoveryOverride(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{Dynamic: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectMCP(t, ctx, baseURL)

	names := listToolNames(t, ctx, session)
	assert.True(t, names["list_toolsets"])
	assert.True(t, names["enable_toolsets"])
	assert.False(t, names["search_symbol"], "data tools start disabled in dynamic mode")

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "enable_toolsets",
		Arguments: map[string]any{"toolsets": []string{"search"}},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	names = listToolNames(t, ctx, session)
	assert.True(t, names["search_symbol"], "enabling the search toolset exposes its tools")
	assert.False(t, names["get_quote"], "other toolsets stay disabled")
}

func TestToolCallAgainstFakeUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search-symbol", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"symbol":"AAPL","name":"Apple Inc."}]`))
	}))
	defer upstream.Close()

	baseURL := startServer(t, config.FlagValues{
		APIKey:  "test-key",
		BaseURL: upstream.URL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectMCP(t, ctx, baseURL)

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "search_symbol",
		Arguments: map[string]any{"query": "AAPL"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	content, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, content.Text, "Apple Inc.")
}

func TestToolCallWithoutKeyFailsPerCall(t *testing.T) {
	baseURL := startServer(t, config.FlagValues{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session := connectMCP(t, ctx, baseURL)

	// Listing works without a credential; only the call itself fails.
	names := listToolNames(t, ctx, session)
	require.True(t, names["search_symbol"])

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "search_symbol",
		Arguments: map[string]any{"query": "AAPL"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError, "a missing API key fails the individual call")
}
