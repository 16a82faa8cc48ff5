package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

func TestRenderToolsets(t *testing.T) {
	t.Parallel()
	out := renderToolsets(false)

	for _, ts := range toolsets.All() {
		assert.Contains(t, out, ts.Name.String())
		assert.Contains(t, out, ts.Description)
	}
	assert.NotContains(t, out, "search_symbol", "tool names are hidden without --tools")
}

func TestRenderToolsets_WithTools(t *testing.T) {
	t.Parallel()
	out := renderToolsets(true)

	assert.Contains(t, out, "search_symbol")
	assert.Contains(t, out, "get_income_statement")
	assert.Contains(t, out, "get_forex_quote")
}

func TestRenderToolsetsJSON(t *testing.T) {
	t.Parallel()
	out, err := renderToolsetsJSON()
	require.NoError(t, err)

	var entries []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Tools       []string `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(toolsets.All()))
	assert.Equal(t, "search", entries[0].Name)
	assert.NotEmpty(t, entries[0].Tools)
}
