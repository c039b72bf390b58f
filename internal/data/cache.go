package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// CacheEntry is one memoised value.
type CacheEntry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// ResponseCache memoises rendered values by key for a fixed TTL.
//
// Caching is opt-in: with it enabled, repeated renders of the same page and
// parameters return the same synthetic numbers until the entry expires.
// A nil *ResponseCache is valid and never hits.
type ResponseCache[V any] struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry[V]
	ttl   time.Duration
	now   func() time.Time
}

func NewResponseCache[V any](ttl time.Duration) *ResponseCache[V] {
	return &ResponseCache[V]{
		store: make(map[string]*CacheEntry[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached value if available and not expired
func (c *ResponseCache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return zero, false
	}
	if c.now().After(entry.ExpiresAt) {
		return zero, false
	}
	return entry.Value, true
}

// Set stores a value in the cache
func (c *ResponseCache[V]) Set(key string, value V) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry[V]{
		Value:     value,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of stored entries, expired or not.
func (c *ResponseCache[V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ResponseCache[V]) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry[V])
}

// Evict drops expired entries and reports how many were removed.
func (c *ResponseCache[V]) Evict() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

// Run evicts expired entries every interval until ctx is cancelled.
func (c *ResponseCache[V]) Run(ctx context.Context, interval time.Duration) {
	if c == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Evict()
		}
	}
}

// GenerateCacheKey creates a fixed-size key from the given parts.
func GenerateCacheKey(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "%v|", p)
	}
	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}
