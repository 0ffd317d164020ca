// Package cache provides result caches for computed diffs.
//
// Values are opaque strings (the differ stores JSON-encoded hunk lists) keyed
// by content hashes, so identical document pairs are diffed once.
package cache

// ResultCache is the interface for diff result caching.
type ResultCache interface {
	// Get retrieves a cached value. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}

// EnumerableCache is a cache whose live entries can be listed for export.
type EnumerableCache interface {
	ResultCache
	Entries() (map[string]string, error)
}
