package cache

import "time"

// CacheEntry represents a single cached list with TTL metadata.
//
//nolint:revive // CacheEntry is the canonical name for this exported type.
type CacheEntry struct {
	// Key is the cache key (e.g. "countries", "groups").
	Key string

	// Values is the cached list in fetch order.
	Values []string

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time

	// ExpiresAt is the timestamp when the entry expires.
	ExpiresAt time.Time

	// TTLSeconds is the time-to-live in seconds (for reference).
	TTLSeconds int
}

// NewCacheEntry creates a new cache entry with the given TTL.
// The entry is created with the current time and calculates expiration based on TTL.
func NewCacheEntry(key string, values []string, ttlSeconds int) *CacheEntry {
	now := time.Now()
	return &CacheEntry{
		Key:        key,
		Values:     values,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// IsExpired checks if the cache entry has expired based on current time.
// Returns true if the current time is after the expiration time.
func (e *CacheEntry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// IsValid checks if the cache entry is valid (not expired).
// This is the inverse of IsExpired() and is provided for readability.
func (e *CacheEntry) IsValid() bool {
	return !e.IsExpired()
}

// Age returns the duration since the entry was created.
func (e *CacheEntry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}

// TimeUntilExpiration returns the duration until the entry expires.
// Returns 0 if already expired.
func (e *CacheEntry) TimeUntilExpiration() time.Duration {
	remaining := time.Until(e.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Touch updates the entry's expiration time by extending it by the original TTL.
func (e *CacheEntry) Touch() {
	now := time.Now()
	e.ExpiresAt = now.Add(time.Duration(e.TTLSeconds) * time.Second)
}
