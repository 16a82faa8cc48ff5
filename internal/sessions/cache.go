package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/prajoria/Financial-Modeling-Prep-MCP-Server-sub001/internal/metrics"
)

var _ supervisor.Runnable = (*Cache)(nil)

// DefaultSweepInterval is how often the background sweeper scans for
// expired sessions when no interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// minSweepInterval keeps very short TTLs from turning the sweeper into a
// busy loop.
const minSweepInterval = time.Second

// CacheConfig bounds the session cache.
type CacheConfig struct {
	// MaxSessions caps how many session bundles are retained. Adding a
	// session beyond the cap evicts the least recently used one.
	MaxSessions int

	// TTL is the idle lifetime of a session. A session untouched for
	// longer than TTL is expired on next access or by the sweeper.
	TTL time.Duration

	// SweepInterval overrides the background sweep cadence. Zero selects
	// DefaultSweepInterval, clamped to TTL/2 for short TTLs.
	SweepInterval time.Duration
}

// entry wraps a bundle with the cache's own bookkeeping.
type entry struct {
	bundle     *Bundle
	lastAccess time.Time
}

// Cache is a bounded LRU cache of session bundles with idle expiry. It
// implements supervisor.Runnable: Run drives the background sweeper that
// removes sessions no access has touched within the TTL.
//
// All operations are total. Get, Put, Delete and Len never fail; they
// only ever mutate the cache's own contents.
type Cache struct {
	cfg     CacheConfig
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu    sync.Mutex
	store *lru.Cache[string, *entry]

	stopOnce sync.Once
	stopCh   chan struct{}
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets a custom logger for the cache and its sweeper.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. A nil recorder is a no-op.
func WithMetrics(rec *metrics.Recorder) CacheOption {
	return func(c *Cache) {
		c.metrics = rec
	}
}

// WithClock replaces the cache's time source, used by tests to control
// expiry.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a session cache bounded by cfg.
func NewCache(cfg CacheConfig, opts ...CacheOption) (*Cache, error) {
	if cfg.MaxSessions <= 0 {
		return nil, fmt.Errorf("max sessions must be positive, got %d", cfg.MaxSessions)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session TTL must be positive, got %s", cfg.TTL)
	}

	c := &Cache{
		cfg:    cfg,
		logger: slog.Default().WithGroup("sessions.Cache"),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	store, err := lru.New[string, *entry](cfg.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	c.store = store

	return c, nil
}

// Get returns the bundle for id if it is present and not expired. A hit
// refreshes the session's idle clock and marks it most recently used. An
// expired session is removed and reported absent.
func (c *Cache) Get(id string) (*Bundle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Get(id)
	if !ok {
		c.metrics.CacheMiss()
		return nil, false
	}

	now := c.now()
	if idle := now.Sub(ent.lastAccess); idle > c.cfg.TTL {
		c.remove(id, ent)
		c.metrics.SessionExpired()
		c.metrics.CacheMiss()
		c.logger.Debug("Session expired", "session_id", id, "idle", idle)
		return nil, false
	}

	ent.lastAccess = now
	c.metrics.CacheHit()
	return ent.bundle, true
}

// Put stores the bundle under id. When the cache is full and id is new,
// exactly the least recently used session is evicted first. Overwriting an
// existing id resets its recency and idle clock.
func (c *Cache) Put(id string, b *Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.Contains(id) && c.store.Len() >= c.cfg.MaxSessions {
		if oldID, old, ok := c.store.GetOldest(); ok {
			c.remove(oldID, old)
			c.metrics.SessionEvicted()
			c.logger.Debug("Session evicted", "session_id", oldID)
		}
	}

	c.store.Add(id, &entry{bundle: b, lastAccess: c.now()})
	c.metrics.SetActiveSessions(c.store.Len())
}

// Delete removes the session with id, terminating its live connection.
// Deleting an absent id is a no-op.
func (c *Cache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Peek(id)
	if !ok {
		return
	}
	c.remove(id, ent)
	c.logger.Debug("Session removed", "session_id", id)
}

// Len reports how many sessions are currently cached, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Sweep removes every session whose idle time exceeds the TTL and returns
// how many were removed. Run calls this on a ticker; it is exported so
// callers and tests can force a pass.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, id := range c.store.Keys() {
		ent, ok := c.store.Peek(id)
		if !ok {
			continue
		}
		if now.Sub(ent.lastAccess) > c.cfg.TTL {
			c.remove(id, ent)
			c.metrics.SessionExpired()
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("Swept expired sessions", "removed", removed, "remaining", c.store.Len())
	}
	return removed
}

// remove drops one entry and tears down its connection. Callers hold c.mu.
func (c *Cache) remove(id string, ent *entry) {
	c.store.Remove(id)
	c.metrics.SetActiveSessions(c.store.Len())
	// Closing can touch the network, so keep it off the cache's lock.
	go ent.bundle.Close()
}

// String implements the supervisor.Runnable interface.
func (c *Cache) String() string {
	return "sessions.Cache"
}

// Run drives the background sweeper until the context is canceled or Stop
// is called. It implements the supervisor.Runnable interface.
func (c *Cache) Run(ctx context.Context) error {
	interval := c.sweepInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Debug("Session sweeper started",
		"interval", interval,
		"ttl", c.cfg.TTL,
		"max_sessions", c.cfg.MaxSessions)

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("Session sweeper stopping", "reason", "context canceled")
			return nil
		case <-c.stopCh:
			c.logger.Debug("Session sweeper stopping", "reason", "stop requested")
			return nil
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Stop terminates the sweeper. Safe to call repeatedly and before Run.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// sweepInterval picks the effective sweep cadence. Short TTLs pull the
// default down so sessions do not long outlive their expiry.
func (c *Cache) sweepInterval() time.Duration {
	if c.cfg.SweepInterval > 0 {
		return c.cfg.SweepInterval
	}
	interval := DefaultSweepInterval
	if half := c.cfg.TTL / 2; half < interval {
		interval = half
	}
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	return interval
}
