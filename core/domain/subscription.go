// ABOUTME: Subscription and category records the user keeps in the key-value store
// ABOUTME: Plain persisted records; the registry service owns their lifecycle

package domain

import "time"

// Subscription is a feed the user has registered, identified by URL.
type Subscription struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	AddedAt  time.Time `json:"addedAt"`
	Category string    `json:"category,omitempty"`
	Language string    `json:"language,omitempty"`
}

// Category is a user-defined grouping for subscriptions.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// SearchCacheEntry wraps a cached search result with its creation time.
// An entry is valid for one hour from Timestamp; stale entries are only
// replaced by overwrite, never evicted proactively.
type SearchCacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Data      FeedData  `json:"data"`
}
