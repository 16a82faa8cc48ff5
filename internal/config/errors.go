package config

import (
	"errors"
	"fmt"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// Load and validation errors
var (
	ErrFailedToLoadConfig = errors.New("failed to load config")
	ErrInvalidListen      = errors.New("invalid listen address")
	ErrInvalidSessionTTL  = errors.New("session TTL must be positive")
	ErrInvalidMaxSessions = errors.New("max sessions must be positive")
	ErrInvalidBaseURL     = errors.New("invalid FMP base URL")
)

// InvalidToolsetsError reports toolset names that are not in the catalog.
// At startup this is fatal: serving with a misspelled toolset would silently
// expose the wrong operation set for the process lifetime.
type InvalidToolsetsError struct {
	Invalid []toolsets.Name
	Valid   []toolsets.Name
}

func (e *InvalidToolsetsError) Error() string {
	return fmt.Sprintf("invalid toolset name(s): %s (valid toolsets: %s)",
		toolsets.JoinNames(e.Invalid), toolsets.JoinNames(e.Valid))
}
