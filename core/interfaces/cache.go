// Package interfaces defines the contracts the core pipeline depends on.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache is the injected key-value store used for persisted records and the
// search-result cache. Implementations can be in-memory, Redis or SQLite.
//
// A ttl of 0 stores the value indefinitely; persisted records (feed list,
// bookmarks, settings) always use 0 and are removed only by Delete.
type Cache interface {
	// Get retrieves a value by key. Returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
