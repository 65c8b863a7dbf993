package aggregate

import (
	"context"
	"sync"
	"testing"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// mockFetcher serves canned data per URL, failing everything else.
type mockFetcher struct {
	mu    sync.Mutex
	feeds map[string]*domain.FeedData
	calls int
}

func (m *mockFetcher) Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if data, ok := m.feeds[feedURL]; ok {
		return data, nil
	}
	return nil, &errors.FetchError{URL: feedURL, Reasons: []string{"conversion API error: 500"}}
}

type mockLogger struct {
	mu       sync.Mutex
	warnings int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	m.warnings++
	m.mu.Unlock()
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func TestSearchAllFeeds_PartialFailure(t *testing.T) {
	fetcher := &mockFetcher{feeds: map[string]*domain.FeedData{
		"https://b.example.com/feed": {
			Status: "ok",
			Items: []domain.Article{
				{Title: "middle", PubDate: "2024-03-02T10:00:00Z"},
				{Title: "oldest", PubDate: "2024-03-01T10:00:00Z"},
				{Title: "newest", PubDate: "2024-03-03T10:00:00Z"},
			},
		},
	}}
	logger := &mockLogger{}
	svc := NewService(interfaces.Dependencies{Logger: logger}, fetcher)

	feeds := []domain.Subscription{
		{ID: "a", Name: "Feed A", URL: "https://a.example.com/feed"},
		{ID: "b", Name: "Feed B", URL: "https://b.example.com/feed"},
	}

	articles := svc.SearchAllFeeds(context.Background(), feeds)

	if len(articles) != 3 {
		t.Fatalf("len(articles) = %d, want the 3 items from the surviving feed", len(articles))
	}

	wantOrder := []string{"newest", "middle", "oldest"}
	for i, title := range wantOrder {
		if articles[i].Title != title {
			t.Errorf("articles[%d].Title = %q, want %q", i, articles[i].Title, title)
		}
		if articles[i].FeedName != "Feed B" || articles[i].FeedID != "b" {
			t.Errorf("articles[%d] not tagged with its feed: %+v", i, articles[i])
		}
	}

	if logger.warnings != 1 {
		t.Errorf("failed feed should be logged once, got %d warnings", logger.warnings)
	}
	if fetcher.calls != 2 {
		t.Errorf("every feed should be attempted, got %d calls", fetcher.calls)
	}
}

func TestSearchAllFeeds_MergesAcrossFeeds(t *testing.T) {
	fetcher := &mockFetcher{feeds: map[string]*domain.FeedData{
		"https://a.example.com/feed": {
			Status: "ok",
			Items:  []domain.Article{{Title: "from a", PubDate: "2024-03-01T10:00:00Z"}},
		},
		"https://b.example.com/feed": {
			Status: "ok",
			Items:  []domain.Article{{Title: "from b", PubDate: "2024-03-02T10:00:00Z"}},
		},
	}}
	svc := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, fetcher)

	articles := svc.SearchAllFeeds(context.Background(), []domain.Subscription{
		{ID: "a", Name: "A", URL: "https://a.example.com/feed"},
		{ID: "b", Name: "B", URL: "https://b.example.com/feed"},
	})

	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}
	if articles[0].Title != "from b" || articles[1].Title != "from a" {
		t.Errorf("merge order wrong: %q, %q", articles[0].Title, articles[1].Title)
	}
}

func TestSearchAllFeeds_EmptyInput(t *testing.T) {
	svc := NewService(interfaces.Dependencies{}, &mockFetcher{})

	articles := svc.SearchAllFeeds(context.Background(), nil)

	if articles == nil || len(articles) != 0 {
		t.Errorf("empty input should yield an empty, non-nil slice, got %v", articles)
	}
}
