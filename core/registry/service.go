// ABOUTME: Registry of the user's persisted records: feeds, bookmarks, categories, settings
// ABOUTME: Plain record CRUD over the injected key-value store, with registration guards

package registry

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/urlutil"
)

// Store keys, shared with nothing else; the search cache derives its own.
const (
	feedsKey      = "rss-feeds"
	bookmarksKey  = "bookmarked-articles"
	categoriesKey = "feed-categories"
	settingsKey   = "app-settings"
)

// Prober checks that a URL actually serves a feed before it is registered.
type Prober interface {
	Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error)
}

// Service owns the user's persisted records.
type Service struct {
	deps   interfaces.Dependencies
	prober Prober
	now    func() time.Time
}

// NewService creates a new registry instance.
func NewService(deps interfaces.Dependencies, prober Prober) *Service {
	return &Service{deps: deps, prober: prober, now: time.Now}
}

// ListFeeds returns every registered subscription. A missing or unreadable
// record yields an empty list rather than an error.
func (s *Service) ListFeeds(ctx context.Context) ([]domain.Subscription, error) {
	var feeds []domain.Subscription
	if err := s.load(ctx, feedsKey, &feeds); err != nil {
		return nil, err
	}
	if feeds == nil {
		feeds = []domain.Subscription{}
	}
	return feeds, nil
}

// AddFeed validates and registers a new subscription. Exact-URL duplicates
// are rejected before any network call; the URL is then probed through the
// fetch pipeline so dead feeds never enter the list.
func (s *Service) AddFeed(ctx context.Context, name, feedURL, category, language string) (*domain.Subscription, error) {
	if !urlutil.IsFeedURL(feedURL) {
		return nil, &errors.ValidationError{Field: "url", Message: "must be a well-formed http or https URL"}
	}

	feeds, err := s.ListFeeds(ctx)
	if err != nil {
		return nil, err
	}
	for _, feed := range feeds {
		if feed.URL == feedURL {
			return nil, &errors.ValidationError{Field: "url", Message: "feed already registered"}
		}
	}

	data, err := s.prober.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = data.Feed.Title
	}

	sub := domain.Subscription{
		ID:       s.newID(),
		Name:     name,
		URL:      feedURL,
		AddedAt:  s.now(),
		Category: category,
		Language: language,
	}
	feeds = append(feeds, sub)
	if err := s.save(ctx, feedsKey, feeds); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RemoveFeed deletes a subscription by id.
func (s *Service) RemoveFeed(ctx context.Context, id string) error {
	feeds, err := s.ListFeeds(ctx)
	if err != nil {
		return err
	}

	kept := feeds[:0]
	for _, feed := range feeds {
		if feed.ID != id {
			kept = append(kept, feed)
		}
	}
	if len(kept) == len(feeds) {
		return &errors.ValidationError{Field: "id", Message: "no such feed"}
	}
	return s.save(ctx, feedsKey, kept)
}

// ListBookmarks returns the saved articles, newest saves last.
func (s *Service) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	var bookmarks []domain.Bookmark
	if err := s.load(ctx, bookmarksKey, &bookmarks); err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

// AddBookmark saves an article. Bookmarks are identified by article link;
// saving one that already exists is a no-op.
func (s *Service) AddBookmark(ctx context.Context, article domain.Article, feedName string) error {
	bookmarks, err := s.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	for _, b := range bookmarks {
		if b.Link == article.Link {
			return nil
		}
	}

	bookmarks = append(bookmarks, domain.Bookmark{
		Article:      article,
		FeedName:     feedName,
		BookmarkedAt: s.now(),
	})
	return s.save(ctx, bookmarksKey, bookmarks)
}

// RemoveBookmark deletes a bookmark by article link.
func (s *Service) RemoveBookmark(ctx context.Context, link string) error {
	bookmarks, err := s.ListBookmarks(ctx)
	if err != nil {
		return err
	}

	kept := bookmarks[:0]
	for _, b := range bookmarks {
		if b.Link != link {
			kept = append(kept, b)
		}
	}
	return s.save(ctx, bookmarksKey, kept)
}

// IsBookmarked reports whether an article link is saved.
func (s *Service) IsBookmarked(ctx context.Context, link string) (bool, error) {
	bookmarks, err := s.ListBookmarks(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range bookmarks {
		if b.Link == link {
			return true, nil
		}
	}
	return false, nil
}

// ListCategories returns the user's categories.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.load(ctx, categoriesKey, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// AddCategory creates a named category.
func (s *Service) AddCategory(ctx context.Context, name, color string) (*domain.Category, error) {
	if name == "" {
		return nil, &errors.ValidationError{Field: "name", Message: "cannot be empty"}
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Name == name {
			return nil, &errors.ValidationError{Field: "name", Message: "category already exists"}
		}
	}

	category := domain.Category{
		ID:        s.newID(),
		Name:      name,
		Color:     color,
		CreatedAt: s.now(),
	}
	categories = append(categories, category)
	if err := s.save(ctx, categoriesKey, categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// RemoveCategory deletes a category by id.
func (s *Service) RemoveCategory(ctx context.Context, id string) error {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.save(ctx, categoriesKey, kept)
}

// Settings returns the opaque settings blob, nil when unset.
func (s *Service) Settings(ctx context.Context) ([]byte, error) {
	return s.deps.Cache.Get(ctx, settingsKey)
}

// SaveSettings stores the opaque settings blob.
func (s *Service) SaveSettings(ctx context.Context, raw []byte) error {
	return s.deps.Cache.Set(ctx, settingsKey, raw, 0)
}

// load reads and unmarshals a record list. Unreadable records are treated
// as absent so one corrupted value cannot brick the whole registry.
func (s *Service) load(ctx context.Context, key string, out interface{}) error {
	raw, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("discarding unreadable record", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return nil
}

// save marshals and stores a record list with no expiry.
func (s *Service) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, key, raw, 0)
}

// newID issues a locally-unique record id.
func (s *Service) newID() string {
	return strconv.FormatInt(s.now().UnixNano(), 10)
}
