package fmp

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network I/O when the client
	// has no access token. The message tells the caller how to supply one.
	ErrMissingAPIKey = errors.New(
		"FMP access token not configured: provide FMP_ACCESS_TOKEN in the session config or start the server with --api-key",
	)

	// ErrMissingParam indicates a required request parameter was empty.
	ErrMissingParam = errors.New("missing required parameter")
)

// APIError is a non-2xx response from the FMP API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("FMP API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("FMP API returned status %d: %s", e.StatusCode, e.Body)
}

func missingParam(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParam, name)
}
