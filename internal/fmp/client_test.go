package fmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key",
		WithBaseURL(srv.URL),
		WithRetryInterval(time.Millisecond),
	)
	return c, srv
}

func TestGetSendsAPIKey(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey, gotSymbol string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apikey")
		gotSymbol = r.URL.Query().Get("symbol")
		w.Write([]byte(`[{"symbol":"AAPL"}]`))
	}))

	body, err := c.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"symbol":"AAPL"}]`, string(body))
	assert.Equal(t, "/quote", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "AAPL", gotSymbol)
}

func TestMissingKeyFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	c := New("", WithBaseURL(srv.URL))
	_, err := c.Quote(context.Background(), "AAPL")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, hits.Load())
}

func TestMissingParamFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	c := New("test-key", WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Quote(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingParam)

	_, err = c.SearchSymbol(context.Background(), "", "", 0)
	require.ErrorIs(t, err, ErrMissingParam)

	_, err = c.BatchQuotes(context.Background(), nil)
	require.ErrorIs(t, err, ErrMissingParam)
}

func TestClientErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	_, err := c.CompanyProfile(context.Background(), "NOPE")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "404")
	assert.Equal(t, int32(1), hits.Load())
}

func TestServerErrorIsRetriedThenSucceeds(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "upstream blew up", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))

	body, err := c.TreasuryRates(context.Background(), "", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(3), hits.Load())
}

func TestRateLimitRetriesExhaust(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "limit reached", http.StatusTooManyRequests)
	}))

	_, err := c.Quote(context.Background(), "AAPL")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, int32(defaultMaxAttempts), hits.Load())
}

func TestContextCancelStopsRetries(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := c.Quote(ctx, "AAPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second, "cancelled context must not hang retries")
}

func TestOptionalParamsOmittedWhenZero(t *testing.T) {
	t.Parallel()

	var query map[string][]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[]`))
	}))

	_, err := c.IncomeStatement(context.Background(), "AAPL", "", 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "period")
	assert.NotContains(t, query, "limit")

	_, err = c.IncomeStatement(context.Background(), "AAPL", "quarter", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter"}, query["period"])
	assert.Equal(t, []string{"4"}, query["limit"])
}

func TestIntradayIntervalValidation(t *testing.T) {
	t.Parallel()

	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))

	_, err := c.IntradayChart(context.Background(), "7min", "AAPL", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "7min")

	_, err = c.IntradayChart(context.Background(), "5min", "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, "/historical-chart/5min", gotPath)
}

func TestNewsPathSelection(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotSymbols string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSymbols = r.URL.Query().Get("symbols")
		w.Write([]byte(`[]`))
	}))

	_, err := c.StockNews(context.Background(), nil, "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "/news/stock-latest", gotPath)
	assert.Empty(t, gotSymbols)

	_, err = c.StockNews(context.Background(), []string{"AAPL", "MSFT"}, "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "/news/stock", gotPath)
	assert.Equal(t, "AAPL,MSFT", gotSymbols)
}

func TestHasKey(t *testing.T) {
	t.Parallel()

	assert.True(t, New("k").HasKey())
	assert.False(t, New("").HasKey())
}

func TestTruncateBody(t *testing.T) {
	t.Parallel()

	long := make([]byte, errorBodyLimit+100)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateBody(long)
	assert.Len(t, got, errorBodyLimit+3)
	assert.Equal(t, "...", got[len(got)-3:])

	assert.Equal(t, "short", truncateBody([]byte("  short \n")))
}
