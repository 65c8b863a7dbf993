// ABOUTME: FeedData domain model representing the result of one feed fetch
// ABOUTME: Immutable once produced; only the search cache persists it

package domain

// FeedMeta is the feed-level header of a fetch result.
type FeedMeta struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// FeedData is the normalized result of a single fetch. It is created fresh
// on every call and never mutated afterwards.
type FeedData struct {
	// Status is "ok" on any successful resolution
	Status string `json:"status"`

	// Feed carries the feed-level metadata
	Feed FeedMeta `json:"feed"`

	// Items are the normalized articles, capped at 20
	Items []Article `json:"items"`

	// Degraded marks a synthesized fallback result. The search resolver
	// sets it when every real source failed and it substituted demo
	// articles, so callers can tell fabricated results from real ones.
	Degraded bool `json:"degraded,omitempty"`
}
