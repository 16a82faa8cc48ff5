package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/config"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/fmp"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/metrics"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/tools"
	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/toolsets"
)

// FactoryConfig carries everything a Factory needs to build session
// bundles.
type FactoryConfig struct {
	// Cache receives every bundle the factory builds.
	Cache *Cache

	// Override is the server-wide mode override resolved at startup.
	Override config.ModeOverride

	// APIKey is the server-default FMP credential. Sessions may supply
	// their own, which wins.
	APIKey string

	// BaseURL overrides the upstream FMP endpoint. Empty selects the
	// production endpoint.
	BaseURL string

	// ServerName and Version identify this server during the MCP
	// handshake.
	ServerName string
	Version    string

	// HTTPClient is shared by every session's upstream client.
	HTTPClient *http.Client

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Factory builds the per-session MCP server bundles. One factory serves
// the whole process; every new session passes through it.
type Factory struct {
	cfg    FactoryConfig
	logger *slog.Logger
}

// NewFactory creates a session factory.
func NewFactory(cfg FactoryConfig) (*Factory, error) {
	if cfg.Cache == nil {
		return nil, ErrNilCache
	}
	if cfg.ServerName == "" {
		cfg.ServerName = "fmp-mcp"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().WithGroup("sessions.Factory")
	}

	return &Factory{cfg: cfg, logger: logger}, nil
}

// GetOrCreate returns the cached bundle for id, or builds one from the
// session config, caches it under id and returns it.
func (f *Factory) GetOrCreate(id string, sc SessionConfig) *Bundle {
	if b, ok := f.cfg.Cache.Get(id); ok {
		return b
	}
	b := f.build(sc)
	f.cfg.Cache.Put(id, b)
	return b
}

// Create builds a bundle for a session whose id is not known yet. The
// streamable transport assigns session ids during the initialize
// handshake, so the bundle's server carries an initialized hook that
// inserts it into the cache under the id the handshake produced.
func (f *Factory) Create(sc SessionConfig) *Bundle {
	return f.build(sc)
}

func (f *Factory) build(sc SessionConfig) *Bundle {
	res := ResolveMode(f.cfg.Override, sc, f.logger)
	client := f.clientFor(sc)

	b := &Bundle{
		Mode:      res.Mode,
		CreatedAt: f.cfg.Cache.now(),
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    f.cfg.ServerName,
		Version: f.cfg.Version,
	}, &mcp.ServerOptions{
		Instructions: instructionsFor(res),
		InitializedHandler: func(_ context.Context, req *mcp.InitializedRequest) {
			f.adopt(b, req)
		},
	})

	switch res.Mode {
	case ModeDynamicDiscovery:
		b.Toolsets = tools.NewManager(srv, client, f.logger)
	case ModeStaticToolsets:
		tools.RegisterSets(srv, client, res.Toolsets)
	default:
		tools.RegisterAll(srv, client)
	}
	b.Server = srv

	f.cfg.Metrics.SessionCreated(res.Mode.String())
	f.logger.Debug("Built session server",
		"mode", res.Mode,
		"toolsets", toolsets.JoinNames(res.Toolsets),
		"has_key", client.HasKey())
	return b
}

// adopt runs when a session completes the initialize handshake. It binds
// the live protocol session to the bundle and caches the bundle under the
// transport-assigned session id.
func (f *Factory) adopt(b *Bundle, req *mcp.InitializedRequest) {
	if req == nil || req.Session == nil {
		return
	}
	b.bindSession(req.Session)

	id := req.Session.ID()
	if id == "" {
		return
	}
	f.cfg.Cache.Put(id, b)
	f.logger.Debug("Session initialized", "session_id", id, "mode", b.Mode)
}

// clientFor builds the session's upstream client. A key in the session
// config wins over the server default; a session with neither still gets
// a client, and its tool calls fail individually until a key is supplied.
func (f *Factory) clientFor(sc SessionConfig) *fmp.Client {
	key := strings.TrimSpace(sc.AccessToken)
	if key == "" {
		key = f.cfg.APIKey
	}

	opts := []fmp.Option{
		fmp.WithLogger(f.logger),
		fmp.WithMetrics(f.cfg.Metrics),
	}
	if f.cfg.BaseURL != "" {
		opts = append(opts, fmp.WithBaseURL(f.cfg.BaseURL))
	}
	if f.cfg.HTTPClient != nil {
		opts = append(opts, fmp.WithHTTPClient(f.cfg.HTTPClient))
	}
	return fmp.New(key, opts...)
}

func instructionsFor(res Resolution) string {
	switch res.Mode {
	case ModeDynamicDiscovery:
		return strings.TrimSpace(`
Financial Modeling Prep MCP server in dynamic tool discovery mode.
- Start with list_toolsets to see the available toolset catalog.
- Use describe_toolset to inspect the tools a toolset contains.
- Use enable_toolsets / disable_toolsets to shape the active tool list; the tool list changes take effect immediately.
- All data tools are read-only queries against Financial Modeling Prep.`)
	case ModeStaticToolsets:
		return strings.TrimSpace(fmt.Sprintf(`
Financial Modeling Prep MCP server exposing a fixed set of toolsets: %s.
- All tools are read-only queries against Financial Modeling Prep.
- Symbols are upper-case tickers such as AAPL; cryptocurrency pairs look like BTCUSD and forex pairs like EURUSD.`,
			toolsets.JoinNames(res.Toolsets)))
	default:
		return strings.TrimSpace(`
Financial Modeling Prep MCP server exposing the full tool catalog.
- All tools are read-only queries against Financial Modeling Prep.
- Symbols are upper-case tickers such as AAPL; cryptocurrency pairs look like BTCUSD and forex pairs like EURUSD.
- Statement tools accept period=annual|quarter and a limit for the number of reporting periods.`)
	}
}
