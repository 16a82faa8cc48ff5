package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"golang.org/x/net/http/httpguts"
)

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-Id"

// requestID tags each request with a correlation id, honoring one supplied
// by the client. The id is echoed on the response and written back onto the
// request headers so downstream middleware can log it.
func (s *Server) requestID() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV6()).String()
			r.Header.Set(RequestIDHeader, id)
		}
		rp.Writer().Header().Set(RequestIDHeader, id)
		rp.Next()
	}
}

// sessionRecency rejects malformed session id headers and refreshes the
// cache recency for requests that carry a valid one. An expired session is
// not resurrected here; the MCP transport answers with 404 and the client
// starts a fresh handshake.
func (s *Server) sessionRecency() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		sid := rp.Request().Header.Get(SessionHeader)
		if sid != "" {
			if !httpguts.ValidHeaderFieldValue(sid) {
				w := rp.Writer()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid session id header"}` + "\n"))
				rp.Abort()
				return
			}
			s.cfg.Cache.Get(sid)
		}
		rp.Next()
	}
}

// logRequests logs one line per request, with the level derived from the
// response status.
func (s *Server) logRequests() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.Int("bytes", rp.Writer().Size()),
		}
		if id := r.Header.Get(RequestIDHeader); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		if sid := r.Header.Get(SessionHeader); sid != "" {
			attrs = append(attrs, slog.String("session_id", sid))
		}

		s.logger.LogAttrs(r.Context(), level, "HTTP request", attrs...)
	}
}
