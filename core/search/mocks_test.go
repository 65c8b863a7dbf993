package search

import (
	"context"
	"sync"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// mockDirectFetcher serves canned feeds per URL and counts calls.
type mockDirectFetcher struct {
	feeds map[string]*domain.FeedData
	calls int
}

func (m *mockDirectFetcher) FetchDirect(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	m.calls++
	if feed, ok := m.feeds[feedURL]; ok {
		return feed, nil
	}
	return nil, &errors.FetchError{URL: feedURL, Reasons: []string{"no items found in feed"}}
}

// mockCache is an in-memory map store.
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger drops everything.
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
