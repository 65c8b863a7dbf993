package handlers

import (
	"context"
	"fmt"
	"sync"

	"feedreader-api/core/discover"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

type mockFetcher struct {
	mu    sync.Mutex
	feeds map[string]*domain.FeedData
	calls []string
}

func (m *mockFetcher) Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	m.mu.Lock()
	m.calls = append(m.calls, feedURL)
	m.mu.Unlock()
	if data, ok := m.feeds[feedURL]; ok {
		return data, nil
	}
	return nil, &errors.FetchError{URL: feedURL, Reasons: []string{"conversion API error: 500"}}
}

type mockResolver struct {
	mu      sync.Mutex
	queries []domain.SearchQuery
}

func (m *mockResolver) Resolve(ctx context.Context, q domain.SearchQuery) *domain.FeedData {
	m.mu.Lock()
	m.queries = append(m.queries, q)
	m.mu.Unlock()
	return &domain.FeedData{
		Status: "ok",
		Feed:   domain.FeedMeta{Title: fmt.Sprintf("%s - Search Results", q.Query), Link: "#"},
		Items:  []domain.Article{{Title: "search hit"}},
	}
}

type mockAggregator struct {
	articles []domain.Article
}

func (m *mockAggregator) SearchAllFeeds(ctx context.Context, feeds []domain.Subscription) []domain.Article {
	return m.articles
}

type mockLister struct {
	feeds []domain.Subscription
}

func (m *mockLister) ListFeeds(ctx context.Context) ([]domain.Subscription, error) {
	return m.feeds, nil
}

type mockDiscoverer struct {
	results []discover.Result
}

func (m *mockDiscoverer) Discover(ctx context.Context, pageURLs []string) []discover.Result {
	return m.results
}
