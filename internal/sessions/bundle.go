package sessions

import (
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/tools"
)

// Bundle holds everything the server keeps for one MCP session: the
// session's own MCP server instance with its registered tools, plus the
// live protocol session once the initialize handshake completes.
type Bundle struct {
	// Server is the per-session MCP server. Each session gets its own so
	// that tool registration can differ between sessions.
	Server *mcp.Server

	// Toolsets manages dynamic toolset discovery. It is non-nil only for
	// sessions in ModeDynamicDiscovery.
	Toolsets *tools.Manager

	Mode      Mode
	CreatedAt time.Time

	mu      sync.Mutex
	session *mcp.ServerSession
}

// bindSession records the live protocol session so that evicting the
// bundle can terminate the connection.
func (b *Bundle) bindSession(ss *mcp.ServerSession) {
	b.mu.Lock()
	b.session = ss
	b.mu.Unlock()
}

// Close terminates the bundle's live protocol session, if any. Safe to
// call any number of times and on bundles that never completed the
// handshake.
func (b *Bundle) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	ss := b.session
	b.session = nil
	b.mu.Unlock()

	if ss != nil {
		_ = ss.Close()
	}
}
