package fscache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultCapacity is the result cache's default capacity per the
// engine's LRU result cache design.
const DefaultCapacity = 100

// SearchCache caches search results keyed by (query, maxResults,
// optionsHash). Results are stored as []interface{} so this package has
// no dependency on the root result type; callers type-assert on Get.
type SearchCache struct {
	cache     *LRUCache
	enabled   bool
	keyPrefix string
}

// NewSearchCache creates a result cache with the given capacity
// (0 uses DefaultCapacity).
func NewSearchCache(capacity int) *SearchCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SearchCache{
		cache:     NewLRUCache(capacity),
		enabled:   true,
		keyPrefix: "search:",
	}
}

// Get retrieves cached results for (query, maxResults, optionsDigest).
// optionsDigest should be a deterministic representation of every
// search option that affects results (the caller's options struct).
func (sc *SearchCache) Get(query string, maxResults int, optionsDigest interface{}) ([]interface{}, bool) {
	if !sc.enabled {
		return nil, false
	}
	key := sc.cacheKey(query, maxResults, optionsDigest)
	if value, found := sc.cache.Get(key); found {
		if results, ok := value.([]interface{}); ok {
			return results, true
		}
	}
	return nil, false
}

// Put stores results for (query, maxResults, optionsDigest). An empty
// result list is not stored.
func (sc *SearchCache) Put(query string, maxResults int, optionsDigest interface{}, results []interface{}) {
	if !sc.enabled || len(results) == 0 {
		return
	}
	key := sc.cacheKey(query, maxResults, optionsDigest)
	cached := make([]interface{}, len(results))
	copy(cached, results)
	sc.cache.Put(key, cached)
}

// Invalidate clears every cached result. Called whenever the
// underlying index mutates (add/remove/rebuild).
func (sc *SearchCache) Invalidate() {
	sc.cache.Clear()
}

// Enable turns caching on or off without discarding existing entries.
func (sc *SearchCache) Enable(enabled bool) { sc.enabled = enabled }

// IsEnabled reports whether caching is currently active.
func (sc *SearchCache) IsEnabled() bool { return sc.enabled }

// Stats returns the underlying cache's hit/miss/eviction counters.
func (sc *SearchCache) Stats() CacheStats { return sc.cache.Stats() }

// Size returns the current number of cached entries.
func (sc *SearchCache) Size() int { return sc.cache.Size() }

// cacheKey builds the (query, maxResults, optionsDigest) cache key. A
// normalized query plus maxResults plus a SHA256 of the JSON-encoded
// options digest keeps the key length constant regardless of how many
// options are set.
func (sc *SearchCache) cacheKey(query string, maxResults int, optionsDigest interface{}) string {
	normalizedQuery := strings.ToLower(strings.TrimSpace(query))

	keyData := struct {
		Query      string      `json:"query"`
		MaxResults int         `json:"max_results"`
		Options    interface{} `json:"options"`
	}{Query: normalizedQuery, MaxResults: maxResults, Options: optionsDigest}

	jsonData, err := json.Marshal(keyData)
	if err != nil {
		return fmt.Sprintf("%s%s:%d", sc.keyPrefix, normalizedQuery, maxResults)
	}

	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%s%x", sc.keyPrefix, hash)
}
