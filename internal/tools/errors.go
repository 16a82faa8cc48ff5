package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
)

// errorEnvelope is the structured payload a failed tool call returns, so
// model callers can branch on error_code and retryable instead of parsing
// prose.
type errorEnvelope struct {
	ErrorCode  string `json:"error_code"`
	Detail     string `json:"detail,omitempty"`
	Retryable  bool   `json:"retryable"`
	HTTPStatus int    `json:"http_status,omitempty"`
}

type toolError struct {
	envelope errorEnvelope
}

// invalidArgument builds a structured invalid_argument tool error.
func invalidArgument(format string, args ...any) error {
	return toolError{envelope: errorEnvelope{
		ErrorCode: "invalid_argument",
		Detail:    fmt.Sprintf(format, args...),
	}}
}

func (e toolError) Error() string {
	encoded, err := json.Marshal(map[string]any{"error": e.envelope})
	if err != nil {
		return `{"error":{"error_code":"tool_error","detail":"failed to encode error envelope"}}`
	}
	return string(encoded)
}

func classifyError(err error) errorEnvelope {
	env := errorEnvelope{ErrorCode: "tool_error", Detail: strings.TrimSpace(err.Error())}

	var apiErr *fmp.APIError
	switch {
	case errors.Is(err, fmp.ErrMissingAPIKey):
		env.ErrorCode = "missing_api_key"
	case errors.Is(err, fmp.ErrMissingParam):
		env.ErrorCode = "invalid_argument"
	case errors.As(err, &apiErr):
		env.HTTPStatus = apiErr.StatusCode
		env.ErrorCode = "upstream_" + strconv.Itoa(apiErr.StatusCode)
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			env.Retryable = true
		}
	case errors.Is(err, context.DeadlineExceeded):
		env.ErrorCode = "timeout"
		env.Retryable = true
	}
	return env
}
