package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// clearEnv blanks every variable Load reads so ambient environment cannot
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FMP_ACCESS_TOKEN", "FMP_TOOL_SETS", "DYNAMIC_TOOL_DISCOVERY",
		"PORT", "FMP_BASE_URL", "SESSION_TTL", "MAX_SESSIONS",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(FlagValues{}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultMaxSessions, cfg.MaxSessions)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, OverrideNone, cfg.Override.Kind)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadLayering(t *testing.T) {
	clearEnv(t)

	// File sets a base; environment overrides file; flags override both.
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen = ":7000"
api_key = "file-key"
session_ttl = "2h"
max_sessions = 50
log_level = "debug"
`), 0o644))

	t.Setenv("SESSION_TTL", "3h")
	t.Setenv("FMP_ACCESS_TOKEN", "env-key")

	cfg, err := Load(FlagValues{
		ConfigFile: path,
		APIKey:     "flag-key",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Listen, "file value survives when env and flag are silent")
	assert.Equal(t, 3*time.Hour, cfg.SessionTTL, "env overrides file")
	assert.Equal(t, "flag-key", cfg.APIKey, "flag overrides env")
	assert.Equal(t, 50, cfg.MaxSessions)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load(FlagValues{}, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)

	// An explicit listen flag still wins.
	cfg, err = Load(FlagValues{Listen: ":7777"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Listen)
}

func TestLoadOverrideFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DYNAMIC_TOOL_DISCOVERY", "true")
	t.Setenv("FMP_TOOL_SETS", "search")

	cfg, err := Load(FlagValues{}, nil)
	require.NoError(t, err)
	assert.Equal(t, OverrideDynamic, cfg.Override.Kind)

	// CLI static list dominates the env dynamic flag.
	cfg, err = Load(FlagValues{ToolSets: "company"}, nil)
	require.NoError(t, err)
	assert.Equal(t, OverrideStatic, cfg.Override.Kind)
	assert.Equal(t, []toolsets.Name{"company"}, cfg.Override.Toolsets)
}

func TestLoadInvalidToolsetsIsFatal(t *testing.T) {
	clearEnv(t)

	_, err := Load(FlagValues{ToolSets: "search,invalid"}, nil)
	require.Error(t, err)

	var invalidErr *InvalidToolsetsError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, []toolsets.Name{"invalid"}, invalidErr.Invalid)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`listen = [broken`), 0o644))

	_, err := Load(FlagValues{ConfigFile: path}, nil)
	require.ErrorIs(t, err, ErrFailedToLoadConfig)

	_, err = Load(FlagValues{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")}, nil)
	require.ErrorIs(t, err, ErrFailedToLoadConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty listen",
			mutate:  func(c *Config) { c.Listen = "" },
			wantErr: ErrInvalidListen,
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.SessionTTL = 0 },
			wantErr: ErrInvalidSessionTTL,
		},
		{
			name:    "negative max sessions",
			mutate:  func(c *Config) { c.MaxSessions = -1 },
			wantErr: ErrInvalidMaxSessions,
		},
		{
			name:    "base url without scheme",
			mutate:  func(c *Config) { c.BaseURL = "financialmodelingprep.com" },
			wantErr: ErrInvalidBaseURL,
		},
		{
			name:    "base url with bad scheme",
			mutate:  func(c *Config) { c.BaseURL = "ftp://example.com" },
			wantErr: ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{
				Listen:      DefaultListen,
				SessionTTL:  DefaultSessionTTL,
				MaxSessions: DefaultMaxSessions,
				LogLevel:    DefaultLogLevel,
				LogFormat:   DefaultLogFormat,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{Listen: "", SessionTTL: 0, MaxSessions: 0, LogFormat: "text"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidListen)
	assert.ErrorIs(t, err, ErrInvalidSessionTTL)
	assert.ErrorIs(t, err, ErrInvalidMaxSessions)
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Listen:      ":8080",
		APIKey:      "secret-token",
		SessionTTL:  time.Hour,
		MaxSessions: 1000,
		LogLevel:    "info",
		LogFormat:   "text",
		Override:    ModeOverride{Kind: OverrideDynamic},
	}

	out := cfg.String()
	assert.Contains(t, out, ":8080")
	assert.Contains(t, out, "dynamic")
	assert.Contains(t, out, "(set)")
	assert.NotContains(t, out, "secret-token")
}
