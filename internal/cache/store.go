package cache

import "errors"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
)

// Store provides in-memory caching with TTL expiration.
// It is owned by exactly one consumer and performs no locking.
type Store struct {
	// ttlSeconds is the default TTL for cache entries.
	ttlSeconds int

	// entries maps keys to live cache entries.
	entries map[string]*CacheEntry
}

// NewStore creates a new in-memory cache store with the given TTL.
// TTL values outside the valid range are replaced with the default.
func NewStore(ttlSeconds int) *Store {
	if ttlSeconds < MinTTLSeconds || ttlSeconds > MaxTTLSeconds {
		ttlSeconds = DefaultTTLSeconds
	}
	return &Store{
		ttlSeconds: ttlSeconds,
		entries:    make(map[string]*CacheEntry),
	}
}

// Get retrieves a cached list by key.
// Returns ErrCacheNotFound if no entry exists.
// Returns ErrCacheExpired if the entry has expired; the entry is evicted
// before returning so a later Set starts fresh.
func (s *Store) Get(key string) ([]string, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrCacheNotFound
	}

	if entry.IsExpired() {
		delete(s.entries, key)
		return nil, ErrCacheExpired
	}

	// Copy so callers cannot alias the cached slice.
	values := make([]string, len(entry.Values))
	copy(values, entry.Values)
	return values, nil
}

// GetEntry retrieves the full cache entry by key, applying the same
// expiry and eviction rules as Get. Useful for reporting entry age.
func (s *Store) GetEntry(key string) (*CacheEntry, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrCacheNotFound
	}

	if entry.IsExpired() {
		delete(s.entries, key)
		return nil, ErrCacheExpired
	}

	return entry, nil
}

// Set stores a list under the given key with a fresh timestamp.
// An existing entry is overwritten, restarting its TTL.
func (s *Store) Set(key string, values []string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	stored := make([]string, len(values))
	copy(stored, values)
	s.entries[key] = NewCacheEntry(key, stored, s.ttlSeconds)
	return nil
}

// Delete removes a cache entry by key.
// Removing a missing key is a no-op (idempotent).
func (s *Store) Delete(key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}
	delete(s.entries, key)
	return nil
}

// Clear removes all cache entries from the store.
func (s *Store) Clear() {
	s.entries = make(map[string]*CacheEntry)
}

// Count returns the number of cache entries (including expired ones
// that have not yet been evicted by an access).
func (s *Store) Count() int {
	return len(s.entries)
}

// TTL returns the default TTL in seconds.
func (s *Store) TTL() int {
	return s.ttlSeconds
}
