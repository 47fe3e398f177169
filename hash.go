package salin

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key for a single translated string from its
// text hash and target locale.
func CacheKey(hash, locale string) string {
	return hash + ":" + locale
}

// SectionCacheKey generates a cache key for a whole translated UI section.
func SectionCacheKey(section, locale string) string {
	return "section:" + section + ":" + locale
}
