// Package sessions manages the per-session MCP server instances: the
// bounded LRU+TTL cache that holds them, the mode resolution that decides
// which tools each session sees, and the factory that builds them.
package sessions

import "github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"

// Mode is the tool access mode a session operates under.
type Mode string

const (
	// ModeAllTools exposes the entire tool catalog.
	ModeAllTools Mode = "ALL_TOOLS"

	// ModeStaticToolsets exposes a fixed subset of toolsets chosen at
	// session creation.
	ModeStaticToolsets Mode = "STATIC_TOOL_SETS"

	// ModeDynamicDiscovery starts with only the meta tools and lets the
	// client enable and disable toolsets during the session.
	ModeDynamicDiscovery Mode = "DYNAMIC_TOOL_DISCOVERY"
)

func (m Mode) String() string {
	return string(m)
}

// Resolution is the outcome of resolving a session's tool access mode.
// Toolsets is populated only for ModeStaticToolsets.
type Resolution struct {
	Mode     Mode
	Toolsets []toolsets.Name
}
