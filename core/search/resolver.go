// ABOUTME: Search virtual-feed resolver expanding a query into real feed fetches
// ABOUTME: Caches results for an hour and degrades to demo articles rather than failing

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/timeutil"
)

const (
	cacheTTL   = time.Hour
	maxResults = 20
)

// DirectFetcher is the recursion-safe fetch variant the resolver uses for
// candidate sources. It only ever accepts real URLs.
type DirectFetcher interface {
	FetchDirect(ctx context.Context, feedURL string) (*domain.FeedData, error)
}

// Resolver turns a virtual search locator into a merged, filtered result set.
type Resolver struct {
	deps    interfaces.Dependencies
	fetcher DirectFetcher
	now     func() time.Time
}

// NewResolver creates a new search resolver instance.
func NewResolver(deps interfaces.Dependencies, fetcher DirectFetcher) *Resolver {
	return &Resolver{deps: deps, fetcher: fetcher, now: time.Now}
}

// Resolve expands the query across its candidate sources. It never fails
// outward: any internal error yields a degraded demo result set instead,
// marked with FeedData.Degraded so callers can tell the difference.
func (r *Resolver) Resolve(ctx context.Context, q domain.SearchQuery) (data *domain.FeedData) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.deps.Logger != nil {
				r.deps.Logger.Error("search resolution panicked", map[string]interface{}{
					"query": q.Query,
					"panic": fmt.Sprint(rec),
				})
			}
			data = r.demoResults(q)
		}
	}()

	data, err := r.resolve(ctx, q)
	if err != nil {
		if r.deps.Logger != nil {
			r.deps.Logger.Error("search resolution failed", map[string]interface{}{
				"query": q.Query,
				"error": err.Error(),
			})
		}
		return r.demoResults(q)
	}
	return data
}

// resolve is the fallible inner path: cache check, candidate fan-out,
// relevance filter, dedup, sort, cap, cache write-through.
func (r *Resolver) resolve(ctx context.Context, q domain.SearchQuery) (*domain.FeedData, error) {
	if r.fetcher == nil {
		return nil, errors.New("direct fetcher not configured")
	}

	if cached := r.cached(ctx, q); cached != nil {
		return cached, nil
	}

	var matched []domain.Article
	for _, candidate := range CandidateURLs(q.Category, q.Country) {
		feed, err := r.fetcher.FetchDirect(ctx, candidate)
		if err != nil {
			if r.deps.Logger != nil {
				r.deps.Logger.Warn("search candidate failed", map[string]interface{}{
					"url":   candidate,
					"error": err.Error(),
				})
			}
			continue
		}
		for _, item := range feed.Items {
			if matchesQuery(item, q.Query) {
				matched = append(matched, item)
			}
		}
	}

	items := dedupeByTitle(matched)
	sort.SliceStable(items, func(i, j int) bool {
		return timeutil.Parse(items[i].PubDate).After(timeutil.Parse(items[j].PubDate))
	})
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	result := &domain.FeedData{
		Status: "ok",
		Feed: domain.FeedMeta{
			Title:       fmt.Sprintf("%s - Search Results", q.Query),
			Link:        "#",
			Description: fmt.Sprintf("Search results for %q", q.Query),
		},
		Items: items,
	}

	r.storeCache(ctx, q, result)
	return result, nil
}

// cacheKey derives the store key from all four query parameters.
func cacheKey(q domain.SearchQuery) string {
	return fmt.Sprintf("search-cache-%s-%s-%s-%s", q.Query, q.Language, q.Category, q.Country)
}

// cached returns a previously resolved result when it is younger than the
// TTL. Stale and unreadable entries are ignored; they get overwritten by the
// next successful resolution rather than evicted here.
func (r *Resolver) cached(ctx context.Context, q domain.SearchQuery) *domain.FeedData {
	if r.deps.Cache == nil {
		return nil
	}

	raw, err := r.deps.Cache.Get(ctx, cacheKey(q))
	if err != nil || raw == nil {
		return nil
	}

	var entry domain.SearchCacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil
	}
	if r.now().Sub(entry.Timestamp) >= cacheTTL {
		return nil
	}
	return &entry.Data
}

// storeCache writes the result through to the store. Failures are ignored;
// caching is best-effort.
func (r *Resolver) storeCache(ctx context.Context, q domain.SearchQuery, result *domain.FeedData) {
	if r.deps.Cache == nil {
		return
	}

	entry := domain.SearchCacheEntry{
		Timestamp: r.now(),
		Data:      *result,
	}
	if raw, err := json.Marshal(entry); err == nil {
		_ = r.deps.Cache.Set(ctx, cacheKey(q), raw, 0)
	}
}

// matchesQuery reports whether the article's title or description contains
// the query, case-insensitively.
func matchesQuery(a domain.Article, query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), needle) {
		return true
	}
	return a.Description != "" && strings.Contains(strings.ToLower(a.Description), needle)
}

// dedupeByTitle keeps the first occurrence of each title, preserving order.
func dedupeByTitle(items []domain.Article) []domain.Article {
	seen := make(map[string]bool, len(items))
	out := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if seen[item.Title] {
			continue
		}
		seen[item.Title] = true
		out = append(out, item)
	}
	return out
}

// demoResults fabricates a deterministic two-item result set from the query,
// dated now and one hour ago. This is the resolver's last-resort output.
func (r *Resolver) demoResults(q domain.SearchQuery) *domain.FeedData {
	now := r.now()
	return &domain.FeedData{
		Status:   "ok",
		Degraded: true,
		Feed: domain.FeedMeta{
			Title:       fmt.Sprintf("%s - Demo Results", q.Query),
			Link:        "#",
			Description: "Demo search results (feeds unavailable)",
		},
		Items: []domain.Article{
			{
				Title:       fmt.Sprintf("%s - Latest Breaking News", q.Query),
				Description: fmt.Sprintf("Recent developments about %s. This is a demo result showing how search would work.", q.Query),
				Link:        "#demo",
				PubDate:     now.Format(time.RFC3339),
				GUID:        fmt.Sprintf("demo-%s-1", q.Query),
			},
			{
				Title:       fmt.Sprintf("%s Analysis and Insights", q.Query),
				Description: fmt.Sprintf("In-depth analysis of %s trends and market implications.", q.Query),
				Link:        "#demo",
				PubDate:     now.Add(-time.Hour).Format(time.RFC3339),
				GUID:        fmt.Sprintf("demo-%s-2", q.Query),
			},
		},
	}
}
