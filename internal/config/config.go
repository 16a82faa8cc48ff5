// Package config resolves the server configuration from defaults, an
// optional TOML file, environment variables, and CLI flags, and computes the
// server-level mode override that governs every session.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fancy"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/logging"
)

// Defaults for operational settings.
const (
	DefaultListen      = ":8080"
	DefaultSessionTTL  = time.Hour
	DefaultMaxSessions = 1000
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config is the resolved server configuration. Operational settings merge
// defaults < file < environment < flags. The mode override is computed only
// from CLI and environment inputs, with CLI strictly dominant; the file
// never participates in mode enforcement.
type Config struct {
	// Listen is the HTTP bind address.
	Listen string

	// APIKey is the server-default FMP access token. Sessions may supply
	// their own, which takes priority.
	APIKey string

	// BaseURL overrides the FMP API endpoint. Empty means production.
	BaseURL string

	// SessionTTL is the idle lifetime of a cached session.
	SessionTTL time.Duration

	// MaxSessions bounds the session cache.
	MaxSessions int

	// SweepInterval is the cache expiry sweep period. Zero selects the
	// cache's own default.
	SweepInterval time.Duration

	LogLevel  string
	LogFormat string
	LogOutput string

	// Override is the server-level mode enforcement, immutable after Load.
	Override ModeOverride
}

// FlagValues carries CLI flag inputs into the merge. Zero values mean the
// flag was not set.
type FlagValues struct {
	ConfigFile  string
	Listen      string
	APIKey      string
	BaseURL     string
	SessionTTL  time.Duration
	MaxSessions int
	LogLevel    string
	LogFormat   string
	LogOutput   string

	// ToolSets and Dynamic feed the mode override, never the merge.
	ToolSets string
	Dynamic  bool
}

// Load builds the configuration. A failed toolset validation surfaces as an
// *InvalidToolsetsError; callers must treat that as fatal and refuse to
// serve.
func Load(flags FlagValues, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := &Config{
		Listen:      DefaultListen,
		SessionTTL:  DefaultSessionTTL,
		MaxSessions: DefaultMaxSessions,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}

	if flags.ConfigFile != "" {
		fc, err := loadFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.applyFile(fc)
	}

	env, err := fromEnv()
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)
	cfg.applyFlags(flags)

	override, err := ResolveOverride(OverrideInputs{
		CLIToolSets: flags.ToolSets,
		CLIDynamic:  flags.Dynamic,
		EnvToolSets: env.ToolSets,
		EnvDynamic:  env.Dynamic,
	}, logger)
	if err != nil {
		return nil, err
	}
	cfg.Override = override

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc fileConfig) {
	if fc.Listen != "" {
		c.Listen = fc.Listen
	}
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.SessionTTL > 0 {
		c.SessionTTL = fc.SessionTTL.AsDuration()
	}
	if fc.MaxSessions > 0 {
		c.MaxSessions = fc.MaxSessions
	}
	if fc.SweepInterval > 0 {
		c.SweepInterval = fc.SweepInterval.AsDuration()
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.LogOutput != "" {
		c.LogOutput = fc.LogOutput
	}
}

func (c *Config) applyEnv(env envConfig) {
	if env.APIKey != "" {
		c.APIKey = env.APIKey
	}
	if env.Port != "" {
		c.Listen = ":" + env.Port
	}
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
	if env.SessionTTL > 0 {
		c.SessionTTL = env.SessionTTL
	}
	if env.MaxSessions > 0 {
		c.MaxSessions = env.MaxSessions
	}
	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.LogFormat != "" {
		c.LogFormat = env.LogFormat
	}
}

func (c *Config) applyFlags(flags FlagValues) {
	if flags.Listen != "" {
		c.Listen = flags.Listen
	}
	if flags.APIKey != "" {
		c.APIKey = flags.APIKey
	}
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.SessionTTL > 0 {
		c.SessionTTL = flags.SessionTTL
	}
	if flags.MaxSessions > 0 {
		c.MaxSessions = flags.MaxSessions
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.LogFormat = flags.LogFormat
	}
	if flags.LogOutput != "" {
		c.LogOutput = flags.LogOutput
	}
}

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.Listen == "" {
		errs = append(errs, ErrInvalidListen)
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSessionTTL, c.SessionTTL))
	}
	if c.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidMaxSessions, c.MaxSessions))
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL))
		}
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if c.Override.Kind == OverrideStatic && len(c.Override.Toolsets) == 0 {
		errs = append(errs, errors.New("static mode override carries no toolsets"))
	}

	return errors.Join(errs...)
}

// String returns a pretty-printed tree representation of the config. The
// API key is redacted.
func (c *Config) String() string {
	t := fancy.NewComponentTree(fancy.RootStyle.Render("FMP MCP Server Config"))

	t.AddChild(fmt.Sprintf("Listen: %s", c.Listen))
	t.AddChild(fmt.Sprintf("Mode Override: %s", c.Override))
	t.AddChild(fmt.Sprintf("API Key: %s", redact(c.APIKey)))
	if c.BaseURL != "" {
		t.AddChild(fmt.Sprintf("Base URL: %s", c.BaseURL))
	}

	sessions := t.AddBranch("Sessions")
	sessions.Child(fmt.Sprintf("TTL: %s", c.SessionTTL))
	sessions.Child(fmt.Sprintf("Max: %d", c.MaxSessions))
	if c.SweepInterval > 0 {
		sessions.Child(fmt.Sprintf("Sweep Interval: %s", c.SweepInterval))
	}

	logTree := t.AddBranch("Logging")
	logTree.Child(fmt.Sprintf("Level: %s", c.LogLevel))
	logTree.Child(fmt.Sprintf("Format: %s", c.LogFormat))
	if c.LogOutput != "" {
		logTree.Child(fmt.Sprintf("Output: %s", c.LogOutput))
	}

	return t.Tree().String()
}

func redact(key string) string {
	if key == "" {
		return "(unset)"
	}
	return "(set)"
}
