// Package cache stores rendered chart artifacts keyed by their inputs.
//
// Rendering is deterministic: the same configuration and data always
// produce the same PostScript bytes. That makes rendered output safe to
// cache indefinitely under a hash of its inputs, which the server uses
// to skip re-rendering repeated requests and the CLI uses to keep a
// local artifact store.
package cache

import (
	"context"
	"time"
)

// Cache is the backend interface. Implementations must treat a missing
// key as (nil, false, nil) rather than an error.
type Cache interface {
	// Get retrieves the artifact stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the artifact stored under key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
