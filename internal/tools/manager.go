package tools

import (
	"context"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// Manager drives dynamic tool discovery for one session. It starts with
// only the meta tools registered and enables or disables whole toolsets as
// the client asks; the SDK notifies the client of tool list changes.
type Manager struct {
	srv    *mcp.Server
	client *fmp.Client
	logger *slog.Logger

	mu      sync.Mutex
	enabled map[toolsets.Name]bool
}

// NewManager creates a manager bound to srv and registers the meta tools.
func NewManager(srv *mcp.Server, client *fmp.Client, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default().WithGroup("tools.Manager")
	}
	m := &Manager{
		srv:     srv,
		client:  client,
		logger:  logger,
		enabled: make(map[toolsets.Name]bool),
	}
	m.registerMetaTools()
	return m
}

// Enabled returns the currently enabled toolsets in catalog order.
func (m *Manager) Enabled() []toolsets.Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabledLocked()
}

func (m *Manager) enabledLocked() []toolsets.Name {
	var out []toolsets.Name
	for _, name := range toolsets.Names() {
		if m.enabled[name] {
			out = append(out, name)
		}
	}
	return out
}

// Enable registers the named toolsets' tools. Already enabled names are
// skipped. It returns the names newly enabled.
func (m *Manager) Enable(names []toolsets.Name) []toolsets.Name {
	m.mu.Lock()
	defer m.mu.Unlock()

	var added []toolsets.Name
	for _, name := range names {
		if m.enabled[name] {
			continue
		}
		register, ok := registrars[name]
		if !ok {
			continue
		}
		register(m.srv, m.client)
		m.enabled[name] = true
		added = append(added, name)
	}
	if len(added) > 0 {
		m.logger.Debug("Enabled toolsets",
			"added", toolsets.JoinNames(added),
			"active", toolsets.JoinNames(m.enabledLocked()))
	}
	return added
}

// Disable removes the named toolsets' tools. Names not currently enabled
// are skipped. It returns the names actually disabled.
func (m *Manager) Disable(names []toolsets.Name) []toolsets.Name {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []toolsets.Name
	for _, name := range names {
		if !m.enabled[name] {
			continue
		}
		ts, ok := toolsets.Lookup(name)
		if !ok {
			continue
		}
		m.srv.RemoveTools(ts.Tools...)
		delete(m.enabled, name)
		removed = append(removed, name)
	}
	if len(removed) > 0 {
		m.logger.Debug("Disabled toolsets",
			"removed", toolsets.JoinNames(removed),
			"active", toolsets.JoinNames(m.enabledLocked()))
	}
	return removed
}

type toolsetSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	ToolCount   int    `json:"tool_count"`
}

type listToolsetsOutput struct {
	Toolsets []toolsetSummary `json:"toolsets"`
}

type describeToolsetInput struct {
	Name string `json:"name" jsonschema:"Toolset name from list_toolsets"`
}

type describeToolsetOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	Tools       []string `json:"tools"`
}

type toggleToolsetsInput struct {
	Toolsets []string `json:"toolsets" jsonschema:"Toolset names to change, as listed by list_toolsets"`
}

type toggleToolsetsOutput struct {
	Changed []string `json:"changed"`
	Invalid []string `json:"invalid,omitempty"`
	Active  []string `json:"active"`
}

func (m *Manager) registerMetaTools() {
	mcp.AddTool(m.srv, &mcp.Tool{
		Name:        "list_toolsets",
		Description: "List the available toolsets and whether each is currently enabled",
	}, m.handleListToolsets)

	mcp.AddTool(m.srv, &mcp.Tool{
		Name:        "describe_toolset",
		Description: "Show the description and tool names of one toolset",
	}, m.handleDescribeToolset)

	mcp.AddTool(m.srv, &mcp.Tool{
		Name:        "enable_toolsets",
		Description: "Enable toolsets, adding their tools to this session's tool list",
	}, m.handleEnableToolsets)

	mcp.AddTool(m.srv, &mcp.Tool{
		Name:        "disable_toolsets",
		Description: "Disable toolsets, removing their tools from this session's tool list",
	}, m.handleDisableToolsets)
}

func (m *Manager) handleListToolsets(_ context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, listToolsetsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := listToolsetsOutput{}
	for _, ts := range toolsets.All() {
		out.Toolsets = append(out.Toolsets, toolsetSummary{
			Name:        string(ts.Name),
			Description: ts.Description,
			Enabled:     m.enabled[ts.Name],
			ToolCount:   len(ts.Tools),
		})
	}
	return nil, out, nil
}

func (m *Manager) handleDescribeToolset(_ context.Context, _ *mcp.CallToolRequest, in describeToolsetInput) (*mcp.CallToolResult, describeToolsetOutput, error) {
	ts, ok := toolsets.Lookup(toolsets.Name(in.Name))
	if !ok {
		return nil, describeToolsetOutput{}, invalidArgument(
			"unknown toolset %q (valid toolsets: %s)", in.Name, toolsets.NamesString())
	}

	m.mu.Lock()
	enabled := m.enabled[ts.Name]
	m.mu.Unlock()

	return nil, describeToolsetOutput{
		Name:        string(ts.Name),
		Description: ts.Description,
		Enabled:     enabled,
		Tools:       ts.Tools,
	}, nil
}

func (m *Manager) handleEnableToolsets(_ context.Context, _ *mcp.CallToolRequest, in toggleToolsetsInput) (*mcp.CallToolResult, toggleToolsetsOutput, error) {
	valid, invalid, err := splitToggleInput(in)
	if err != nil {
		return nil, toggleToolsetsOutput{}, err
	}

	added := m.Enable(valid)
	return nil, toggleToolsetsOutput{
		Changed: nameStrings(added),
		Invalid: invalid,
		Active:  nameStrings(m.Enabled()),
	}, nil
}

func (m *Manager) handleDisableToolsets(_ context.Context, _ *mcp.CallToolRequest, in toggleToolsetsInput) (*mcp.CallToolResult, toggleToolsetsOutput, error) {
	valid, invalid, err := splitToggleInput(in)
	if err != nil {
		return nil, toggleToolsetsOutput{}, err
	}

	removed := m.Disable(valid)
	return nil, toggleToolsetsOutput{
		Changed: nameStrings(removed),
		Invalid: invalid,
		Active:  nameStrings(m.Enabled()),
	}, nil
}

// splitToggleInput partitions the requested names into catalog members and
// unknowns. An empty request and a request with no valid names at all are
// both errors; a partially wrong request proceeds and reports the rest.
func splitToggleInput(in toggleToolsetsInput) (valid []toolsets.Name, invalid []string, err error) {
	if len(in.Toolsets) == 0 {
		return nil, nil, invalidArgument(
			"no toolsets given (valid toolsets: %s)", toolsets.NamesString())
	}
	for _, raw := range in.Toolsets {
		name := toolsets.Name(raw)
		if toolsets.Valid(name) {
			valid = append(valid, name)
		} else {
			invalid = append(invalid, raw)
		}
	}
	if len(valid) == 0 {
		return nil, nil, invalidArgument(
			"no valid toolsets in %v (valid toolsets: %s)", in.Toolsets, toolsets.NamesString())
	}
	return valid, invalid, nil
}

func nameStrings(names []toolsets.Name) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}
