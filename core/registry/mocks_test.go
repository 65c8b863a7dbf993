package registry

import (
	"context"
	"sync"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// mockCache is an in-memory store mirroring the Cache contract.
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockProber counts probe attempts and serves a canned feed title.
type mockProber struct {
	calls int
	title string
	fail  bool
}

func (m *mockProber) Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	m.calls++
	if m.fail {
		return nil, &errors.FetchError{URL: feedURL, Reasons: []string{"conversion API error: 500"}}
	}
	title := m.title
	if title == "" {
		title = "Probed Feed"
	}
	return &domain.FeedData{
		Status: "ok",
		Feed:   domain.FeedMeta{Title: title},
		Items:  []domain.Article{{Title: "hello"}},
	}, nil
}

type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.warnings++ }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
