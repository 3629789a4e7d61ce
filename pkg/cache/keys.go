package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ArtifactKey derives the cache key for one rendered chart: the chart
// kind plus a hash over the serialized configuration and the raw data
// bytes. Any change to either input changes the key, so stale artifacts
// are never served. Config types are fixed at compile time, so a value
// that cannot be serialized is a bug and panics rather than silently
// collapsing every key to the same hash.
func ArtifactKey(kind string, config any, data []byte) string {
	cfg, err := json.Marshal(config)
	if err != nil {
		panic(fmt.Sprintf("cache: config for %s key not serializable: %v", kind, err))
	}
	h := sha256.New()
	h.Write(cfg)
	h.Write([]byte{0})
	h.Write(data)
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(h.Sum(nil)))
}

// ScopedKey prefixes a key with a namespace so separate deployments can
// share one Redis instance without collisions.
func ScopedKey(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + ":" + key
}
