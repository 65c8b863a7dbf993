// ABOUTME: Cross-feed aggregator fanning one fetch out per registered feed
// ABOUTME: Tolerates partial failure and re-establishes ordering by publish date

package aggregate

import (
	"context"
	"sort"
	"sync"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/timeutil"
)

// maxConcurrentFetches bounds the fan-out so a large feed list cannot open
// unbounded upstream connections.
const maxConcurrentFetches = 10

// Fetcher is the standard-mode fetch contract the aggregator fans out over.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error)
}

// Service merges articles across all of a user's registered feeds.
type Service struct {
	deps    interfaces.Dependencies
	fetcher Fetcher
}

// NewService creates a new aggregator instance.
func NewService(deps interfaces.Dependencies, fetcher Fetcher) *Service {
	return &Service{deps: deps, fetcher: fetcher}
}

// SearchAllFeeds fetches every subscription concurrently and returns the
// flattened articles tagged with their originating feed, sorted by publish
// date descending. A feed's failure is logged and contributes zero articles;
// the call returns only after every fetch has settled.
func (s *Service) SearchAllFeeds(ctx context.Context, feeds []domain.Subscription) []domain.Article {
	if len(feeds) == 0 {
		return []domain.Article{}
	}

	type fetchResult struct {
		feed domain.Subscription
		data *domain.FeedData
		err  error
	}

	results := make(chan fetchResult, len(feeds))
	semaphore := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for _, feed := range feeds {
		wg.Add(1)
		go func(feed domain.Subscription) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			data, err := s.fetcher.Fetch(ctx, feed.URL)
			results <- fetchResult{feed: feed, data: data, err: err}
		}(feed)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	articles := make([]domain.Article, 0)
	for result := range results {
		if result.err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("feed skipped during aggregation", map[string]interface{}{
					"feed":  result.feed.Name,
					"url":   result.feed.URL,
					"error": result.err.Error(),
				})
			}
			continue
		}
		for _, item := range result.data.Items {
			item.FeedID = result.feed.ID
			item.FeedName = result.feed.Name
			articles = append(articles, item)
		}
	}

	// Completion order is unconstrained; ordering is re-established here.
	sort.SliceStable(articles, func(i, j int) bool {
		return timeutil.Parse(articles[i].PubDate).After(timeutil.Parse(articles[j].PubDate))
	})

	return articles
}
