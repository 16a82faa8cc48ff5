package sessions

import (
	"log/slog"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// ResolveMode decides the tool access mode for one session. A server-wide
// override wins unconditionally; otherwise the session config is consulted,
// and a session that requests nothing usable gets the full catalog.
//
// Invalid toolset names in the session config are dropped with a warning
// rather than failing the session. The session still comes up, so a client
// with a typo in one name keeps access to the sets it spelled correctly.
func ResolveMode(override config.ModeOverride, sc SessionConfig, logger *slog.Logger) Resolution {
	if logger == nil {
		logger = slog.Default()
	}

	switch override.Kind {
	case config.OverrideDynamic:
		return Resolution{Mode: ModeDynamicDiscovery}
	case config.OverrideStatic:
		return Resolution{Mode: ModeStaticToolsets, Toolsets: override.Toolsets}
	}

	if sc.Dynamic {
		return Resolution{Mode: ModeDynamicDiscovery}
	}

	names := toolsets.SplitList(sc.ToolSets)
	if len(names) == 0 {
		return Resolution{Mode: ModeAllTools}
	}

	valid, invalid := partitionNames(names)
	if len(invalid) > 0 {
		logger.Warn("Ignoring unknown toolset names from session config",
			"invalid", toolsets.JoinNames(invalid),
			"valid", toolsets.JoinNames(valid))
	}
	if len(valid) == 0 {
		logger.Warn("Session config produced no usable toolsets, serving all tools")
		return Resolution{Mode: ModeAllTools}
	}
	return Resolution{Mode: ModeStaticToolsets, Toolsets: valid}
}

// partitionNames splits names into known and unknown, deduplicating while
// preserving order.
func partitionNames(names []toolsets.Name) (valid, invalid []toolsets.Name) {
	seen := make(map[toolsets.Name]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if toolsets.Valid(name) {
			valid = append(valid, name)
		} else {
			invalid = append(invalid, name)
		}
	}
	return valid, invalid
}
