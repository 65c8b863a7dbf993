// ABOUTME: Article domain model, the normalized unit produced by the fetch pipeline
// ABOUTME: Defines the identity and invariants every normalized article carries

package domain

import "time"

// Article is one normalized feed entry. Title and Link are never empty
// after normalization; GUID defaults to Link when the source omits it.
type Article struct {
	// Title is the article headline
	Title string `json:"title"`

	// Link is the article URL and, together with GUID, its stable identity
	Link string `json:"link"`

	// Description is the cleaned, truncated summary text
	Description string `json:"description"`

	// Content is the raw, untruncated body or summary text
	Content string `json:"content"`

	// PubDate is the publish date as reported by the source
	PubDate string `json:"pubDate"`

	// GUID is the source-provided identifier, defaulting to Link
	GUID string `json:"guid"`

	// FeedID and FeedName tag an article with its originating feed.
	// Set by the aggregator and on bookmarks; empty on plain fetches.
	FeedID   string `json:"feedId,omitempty"`
	FeedName string `json:"feedName,omitempty"`
}

// Bookmark is an article the user saved, annotated with where and when.
type Bookmark struct {
	Article

	FeedName     string    `json:"feedName"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}
