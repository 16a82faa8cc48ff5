package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// OverrideKind is the shape of a server-level mode override.
type OverrideKind int

const (
	// OverrideNone leaves mode selection to each session.
	OverrideNone OverrideKind = iota

	// OverrideDynamic forces dynamic tool discovery for every session.
	OverrideDynamic

	// OverrideStatic forces a fixed toolset list for every session.
	OverrideStatic
)

func (k OverrideKind) String() string {
	switch k {
	case OverrideDynamic:
		return "dynamic"
	case OverrideStatic:
		return "static"
	default:
		return "none"
	}
}

// ModeOverride is the server-level operating mode enforcement, computed once
// at startup and immutable for the process lifetime. Toolsets is non-empty
// exactly when Kind is OverrideStatic.
type ModeOverride struct {
	Kind     OverrideKind
	Toolsets []toolsets.Name
}

func (o ModeOverride) String() string {
	if o.Kind != OverrideStatic {
		return o.Kind.String()
	}
	return fmt.Sprintf("static[%s]", toolsets.JoinNames(o.Toolsets))
}

// OverrideInputs carries the raw mode inputs with their origin preserved.
// CLI values must come only from flags and environment values only from the
// process environment; the resolution precedence depends on the distinction.
type OverrideInputs struct {
	CLIToolSets string
	CLIDynamic  bool
	EnvToolSets string
	EnvDynamic  string
}

// ResolveOverride computes the server-level mode override. Precedence,
// highest first: CLI dynamic flag, CLI toolset list, environment dynamic
// variable, environment toolset list. CLI sources dominate environment
// sources regardless of which fields each side sets. Toolset names from
// either source are validated against the catalog; any unknown name returns
// an *InvalidToolsetsError, which callers must treat as fatal. A list that
// parses to zero names is no override at all, never an empty static one.
func ResolveOverride(in OverrideInputs, logger *slog.Logger) (ModeOverride, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if in.CLIDynamic {
		return ModeOverride{Kind: OverrideDynamic}, nil
	}

	if names := toolsets.SplitList(in.CLIToolSets); len(names) > 0 {
		valid, err := validateNames(names)
		if err != nil {
			return ModeOverride{}, err
		}
		return ModeOverride{Kind: OverrideStatic, Toolsets: valid}, nil
	}

	if envDynamicTrue(in.EnvDynamic, logger) {
		return ModeOverride{Kind: OverrideDynamic}, nil
	}

	if names := toolsets.SplitList(in.EnvToolSets); len(names) > 0 {
		valid, err := validateNames(names)
		if err != nil {
			return ModeOverride{}, err
		}
		return ModeOverride{Kind: OverrideStatic, Toolsets: valid}, nil
	}

	return ModeOverride{Kind: OverrideNone}, nil
}

// validateNames deduplicates names preserving order and checks each against
// the catalog. All invalid names are collected before reporting.
func validateNames(names []toolsets.Name) ([]toolsets.Name, error) {
	valid := make([]toolsets.Name, 0, len(names))
	var invalid []toolsets.Name
	seen := make(map[toolsets.Name]bool, len(names))

	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		if toolsets.Valid(n) {
			valid = append(valid, n)
		} else {
			invalid = append(invalid, n)
		}
	}

	if len(invalid) > 0 {
		return nil, &InvalidToolsetsError{Invalid: invalid, Valid: toolsets.Names()}
	}
	return valid, nil
}

func envDynamicTrue(raw string, logger *slog.Logger) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("ignoring dynamic tool discovery value that is not a boolean",
			"value", raw)
		return false
	}
	return v
}
