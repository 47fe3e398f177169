// Package cache provides translation caching implementations.
package cache

// DefaultTTLSeconds is how long translated copy stays valid. Translations of
// a given English text are deterministic, so a day-long window only bounds
// provider cost, never correctness.
const DefaultTTLSeconds = 24 * 60 * 60

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error
}
