package orgcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

// Config is the per-user organization context every computation needs: the
// org timezone and the department shift window.
type Config struct {
	Timezone string
	Location *time.Location
	Shift    department.ShiftConfig
}

// FetchFunc loads the config from upstream (company + department repos).
type FetchFunc func(ctx context.Context, userID string) (Config, error)

type entry struct {
	config    Config
	expiresAt time.Time
}

// Cache is a short-TTL cache of org config keyed by user. Concurrent misses
// for the same user share one upstream fetch via singleflight. Invalidate
// must be called whenever the organization's timezone or shift configuration
// changes; the TTL only masks the window between change and invalidation.
type Cache struct {
	ttl   time.Duration
	fetch FetchFunc

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration, fetch FetchFunc) *Cache {
	return &Cache{
		ttl:     ttl,
		fetch:   fetch,
		entries: make(map[string]entry),
	}
}

// Get returns the cached config for userID, fetching it at most once across
// concurrent callers when missing or expired.
func (c *Cache) Get(ctx context.Context, userID string) (Config, error) {
	c.mu.RLock()
	e, ok := c.entries[userID]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expiresAt) {
		return e.config, nil
	}

	v, err, _ := c.group.Do(userID, func() (interface{}, error) {
		// Another caller may have refreshed while we waited on the group.
		c.mu.RLock()
		e, ok := c.entries[userID]
		c.mu.RUnlock()
		if ok && time.Now().Before(e.expiresAt) {
			return e.config, nil
		}

		cfg, err := c.fetch(ctx, userID)
		if err != nil {
			return Config{}, err
		}

		c.mu.Lock()
		c.entries[userID] = entry{config: cfg, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()

		return cfg, nil
	})
	if err != nil {
		return Config{}, err
	}
	return v.(Config), nil
}

// Invalidate drops one user's cached config.
func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

// InvalidateAll drops every cached config, e.g. after an org-wide timezone
// change.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
