//go:build e2e
// +build e2e

package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	serverCmd "github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/cmd/fmp-mcp/server"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/testutil"
)

// startServer launches a full server on a random local port and returns its
// base URL. The server is shut down during test cleanup.
func startServer(t *testing.T, flags config.FlagValues) string {
	t.Helper()

	// Keep ambient environment out of these tests; mode and credential come
	// only from the flags each test passes.
	t.Setenv("FMP_ACCESS_TOKEN", "")
	t.Setenv("FMP_TOOL_SETS", "")
	t.Setenv("DYNAMIC_TOOL_DISCOVERY", "")
	t.Setenv("PORT", "")

	port := testutil.GetRandomPort(t)
	flags.Listen = fmt.Sprintf("127.0.0.1:%d", port)
	if flags.SessionTTL == 0 {
		flags.SessionTTL = time.Hour
	}
	if flags.MaxSessions == 0 {
		flags.MaxSessions = 100
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := config.Load(flags, logger)
	require.NoError(t, err, "Failed to load server config")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- serverCmd.Run(ctx, logger, cfg, "e2e-test")
	}()

	baseURL := fmt.Sprintf("http://%s", flags.Listen)
	waitForHealthy(t, baseURL, errCh)

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			if err != nil {
				t.Logf("Server shutdown with error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Log("Timed out waiting for server shutdown")
		}
	})

	return baseURL
}

// waitForHealthy polls the health endpoint until the listener answers.
func waitForHealthy(t *testing.T, baseURL string, errCh <-chan error) {
	t.Helper()

	client := &http.Client{Timeout: time.Second}
	deadline := time.After(10 * time.Second)
	for {
		select {
		case err := <-errCh:
			t.Fatalf("Server exited before becoming healthy: %v", err)
		case <-deadline:
			t.Fatal("Server did not become healthy in time")
		case <-time.After(50 * time.Millisecond):
		}

		resp, err := client.Get(baseURL + "/healthz")
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return
		}
	}
}
