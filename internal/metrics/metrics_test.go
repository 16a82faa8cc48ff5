package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, r *Recorder) string {
	t.Helper()
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorderExposesAllSeries(t *testing.T) {
	t.Parallel()

	r := New()
	r.SessionCreated("ALL_TOOLS")
	r.SessionCreated("DYNAMIC_TOOL_DISCOVERY")
	r.SetActiveSessions(2)
	r.CacheHit()
	r.CacheMiss()
	r.SessionEvicted()
	r.SessionExpired()
	r.UpstreamRequest("200", 120*time.Millisecond)
	r.UpstreamRequest("error", 5*time.Millisecond)

	body := scrape(t, r)

	assert.Contains(t, body, `fmp_mcp_sessions_created_total{mode="ALL_TOOLS"} 1`)
	assert.Contains(t, body, `fmp_mcp_sessions_created_total{mode="DYNAMIC_TOOL_DISCOVERY"} 1`)
	assert.Contains(t, body, "fmp_mcp_active_sessions 2")
	assert.Contains(t, body, "fmp_mcp_session_cache_hits_total 1")
	assert.Contains(t, body, "fmp_mcp_session_cache_misses_total 1")
	assert.Contains(t, body, "fmp_mcp_session_cache_evictions_total 1")
	assert.Contains(t, body, "fmp_mcp_session_cache_expirations_total 1")
	assert.Contains(t, body, `fmp_mcp_upstream_requests_total{status="200"} 1`)
	assert.Contains(t, body, `fmp_mcp_upstream_requests_total{status="error"} 1`)
	assert.Contains(t, body, "fmp_mcp_upstream_request_duration_seconds_count 2")
}

func TestNilRecorderIsSafe(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.SessionCreated("ALL_TOOLS")
	r.SetActiveSessions(1)
	r.CacheHit()
	r.CacheMiss()
	r.SessionEvicted()
	r.SessionExpired()
	r.UpstreamRequest("200", time.Millisecond)

	body := scrape(t, r)
	assert.NotContains(t, body, "fmp_mcp_sessions_created_total")
}
