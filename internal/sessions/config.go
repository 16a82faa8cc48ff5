package sessions

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SessionConfig carries the per-session settings a client supplies when it
// connects. Deployment platforms deliver it as a base64-encoded JSON object
// in the "config" query parameter of the MCP URL; the keys deliberately
// mirror the server's environment variable names.
type SessionConfig struct {
	// AccessToken is the session's FMP API key. It takes precedence over
	// the server-wide key for every upstream call made by this session.
	AccessToken string `json:"FMP_ACCESS_TOKEN"`

	// ToolSets is a comma-separated list of toolset names to expose.
	ToolSets string `json:"FMP_TOOL_SETS"`

	// Dynamic requests dynamic tool discovery mode. Clients send it as a
	// boolean or as a string spelling of one.
	Dynamic flexBool `json:"DYNAMIC_TOOL_DISCOVERY"`
}

// ParseSessionConfig decodes the raw value of the config query parameter.
// An empty value is a valid, empty session config.
func ParseSessionConfig(raw string) (SessionConfig, error) {
	var sc SessionConfig
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sc, nil
	}

	decoded, err := decodeBase64(raw)
	if err != nil {
		return SessionConfig{}, fmt.Errorf("%w: %w", ErrInvalidSessionConfig, err)
	}
	if err := json.Unmarshal(decoded, &sc); err != nil {
		return SessionConfig{}, fmt.Errorf("%w: %w", ErrInvalidSessionConfig, err)
	}
	return sc, nil
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not.
// Clients are inconsistent about which variant they produce.
func decodeBase64(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(s)
}

// flexBool decodes JSON booleans and their common string spellings.
// Strings that strconv.ParseBool rejects decode as false rather than
// failing the whole session config.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = flexBool(asBool)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("expected a boolean or string, got %s", string(data))
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(asString))
	if err != nil {
		*b = false
		return nil
	}
	*b = flexBool(parsed)
	return nil
}
