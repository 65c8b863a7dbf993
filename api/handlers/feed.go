// ABOUTME: Feed fetch and aggregation endpoints
// ABOUTME: Dispatches each requested locator to the fetcher or the search resolver

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// Fetcher is the standard-mode fetch contract.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error)
}

// SearchResolver resolves virtual search locators.
type SearchResolver interface {
	Resolve(ctx context.Context, q domain.SearchQuery) *domain.FeedData
}

// Aggregator merges articles across registered feeds.
type Aggregator interface {
	SearchAllFeeds(ctx context.Context, feeds []domain.Subscription) []domain.Article
}

// SubscriptionLister exposes the registered feed list.
type SubscriptionLister interface {
	ListFeeds(ctx context.Context) ([]domain.Subscription, error)
}

// FeedHandler serves feed content endpoints.
type FeedHandler struct {
	fetcher    Fetcher
	resolver   SearchResolver
	aggregator Aggregator
	registry   SubscriptionLister
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(fetcher Fetcher, resolver SearchResolver, aggregator Aggregator, registry SubscriptionLister) *FeedHandler {
	return &FeedHandler{fetcher: fetcher, resolver: resolver, aggregator: aggregator, registry: registry}
}

type fetchRequest struct {
	URLs []string `json:"urls"`
}

// feedEnvelope wraps one locator's outcome so a single bad feed cannot fail
// the whole batch.
type feedEnvelope struct {
	URL   string           `json:"url"`
	Data  *domain.FeedData `json:"data,omitempty"`
	Error string           `json:"error,omitempty"`
}

// FetchFeeds handles POST /api/feeds/fetch. Each locator is parsed once and
// dispatched: plain URLs through the strategy chain, search locators through
// the resolver. Results keep the input order.
func (h *FeedHandler) FetchFeeds(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	if len(req.URLs) == 0 {
		writeError(w, &errors.ValidationError{Field: "urls", Message: "cannot be empty"})
		return
	}

	envelopes := make([]feedEnvelope, len(req.URLs))
	var wg sync.WaitGroup

	for i, raw := range req.URLs {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			envelopes[i] = h.fetchOne(r.Context(), raw)
		}(i, raw)
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string][]feedEnvelope{"feeds": envelopes})
}

func (h *FeedHandler) fetchOne(ctx context.Context, raw string) feedEnvelope {
	locator := domain.ParseLocator(raw)

	if locator.Kind == domain.LocatorSearch {
		return feedEnvelope{URL: raw, Data: h.resolver.Resolve(ctx, locator.Search)}
	}

	data, err := h.fetcher.Fetch(ctx, locator.URL)
	if err != nil {
		return feedEnvelope{URL: raw, Error: err.Error()}
	}
	return feedEnvelope{URL: raw, Data: data}
}

// AllArticles handles GET /api/articles: every registered feed fetched
// concurrently and merged into one date-sorted list.
func (h *FeedHandler) AllArticles(w http.ResponseWriter, r *http.Request) {
	feeds, err := h.registry.ListFeeds(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	articles := h.aggregator.SearchAllFeeds(r.Context(), feeds)
	writeJSON(w, http.StatusOK, map[string][]domain.Article{"articles": articles})
}
