package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// CacheConfig sizes the user lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedUserEntry struct {
	Version  string
	User     domain.User
	CachedAt time.Time
}

// userCache keeps recently loaded users by id. Entries are copies, so callers
// may mutate what they get back.
type userCache struct {
	lru    *expirable.LRU[int64, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(config CacheConfig) *userCache {
	return &userCache{
		lru: expirable.NewLRU[int64, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get returns a copy of the cached user, dropping entries from an older schema
func (c *userCache) Get(id int64) (*domain.User, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	u := entry.User
	u.Roles = append([]string(nil), entry.User.Roles...)
	return &u, true
}

func (c *userCache) Set(user *domain.User) {
	entry := &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     *user,
		CachedAt: time.Now(),
	}
	entry.User.Roles = append([]string(nil), user.Roles...)
	c.lru.Add(user.ID, entry)
}

func (c *userCache) Invalidate(id int64) {
	c.lru.Remove(id)
}

func (c *userCache) Clear() {
	c.lru.Purge()
}

func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
