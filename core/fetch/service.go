// ABOUTME: Feed fetcher implementing the ordered strategy chain of the pipeline
// ABOUTME: Tries a hosted conversion endpoint, then a content proxy plus local parsing

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	neturl "net/url"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/parse"
)

// requestItemCount is the item cap requested from the conversion endpoint.
const requestItemCount = 20

// Config holds the upstream endpoints and the direct-mode proxy timeout.
type Config struct {
	// ConversionEndpoint is the hosted feed-to-JSON conversion service
	ConversionEndpoint string

	// ProxyEndpoint is the generic content proxy used for raw XML retrieval
	ProxyEndpoint string

	// DirectTimeout bounds the proxy strategy in direct mode
	DirectTimeout time.Duration
}

// DefaultConfig returns the production endpoints.
func DefaultConfig() Config {
	return Config{
		ConversionEndpoint: "https://api.rss2json.com/v1/api.json",
		ProxyEndpoint:      "https://api.allorigins.win/get",
		DirectTimeout:      10 * time.Second,
	}
}

// Service fetches and normalizes feeds from real URLs. Virtual search
// locators are dispatched to the search resolver at the API boundary and
// never reach this service.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new fetch service instance.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	return &Service{deps: deps, cfg: cfg}
}

// strategyFn attempts one transport. It returns either a result or a short
// failure reason; a failure never aborts the chain.
type strategyFn func(ctx context.Context, feedURL string) (*domain.FeedData, string)

// Fetch resolves a feed URL through the standard strategy chain. When every
// strategy fails it returns a FetchError joining each recorded reason.
func (s *Service) Fetch(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	return s.run(ctx, feedURL, []strategyFn{
		s.fromConversionAPI,
		s.fromContentProxy,
	})
}

// run iterates the strategy chain, accumulating per-strategy reasons.
func (s *Service) run(ctx context.Context, feedURL string, strategies []strategyFn) (*domain.FeedData, error) {
	if s.deps.HTTPClient == nil {
		return nil, &errors.FetchError{URL: feedURL, Reasons: []string{"HTTP client not configured"}}
	}

	reasons := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		data, reason := strategy(ctx, feedURL)
		if data != nil {
			return data, nil
		}
		reasons = append(reasons, reason)
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("fetch strategy failed", map[string]interface{}{
				"url":    feedURL,
				"reason": reason,
			})
		}
	}

	return nil, &errors.FetchError{URL: feedURL, Reasons: reasons}
}

// conversionResponse is the JSON shape of the hosted conversion endpoint.
type conversionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Feed    struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
	} `json:"feed"`
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		Content     string `json:"content"`
		PubDate     string `json:"pubDate"`
		GUID        string `json:"guid"`
	} `json:"items"`
}

// fromConversionAPI asks the hosted conversion endpoint for the feed as
// structured JSON. Success requires an "ok" status and at least one item.
func (s *Service) fromConversionAPI(ctx context.Context, feedURL string) (*domain.FeedData, string) {
	reqURL := fmt.Sprintf("%s?rss_url=%s&count=%d",
		s.cfg.ConversionEndpoint, neturl.QueryEscape(feedURL), requestItemCount)

	resp, err := s.deps.HTTPClient.Get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Sprintf("conversion API unreachable: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode()/100 != 2 {
		return nil, fmt.Sprintf("conversion API error: %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Sprintf("conversion API read failed: %v", err)
	}

	var conv conversionResponse
	if err := json.Unmarshal(body, &conv); err != nil {
		return nil, fmt.Sprintf("conversion API returned invalid JSON: %v", err)
	}

	if conv.Status != "ok" || len(conv.Items) == 0 {
		if conv.Message != "" {
			return nil, conv.Message
		}
		return nil, "no items found in feed"
	}

	return convToFeedData(conv), ""
}

// convToFeedData maps the conversion response onto the domain model,
// preserving the article identity defaults.
func convToFeedData(conv conversionResponse) *domain.FeedData {
	items := make([]domain.Article, 0, len(conv.Items))
	for _, it := range conv.Items {
		guid := it.GUID
		if guid == "" {
			guid = it.Link
		}
		items = append(items, domain.Article{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Content:     it.Content,
			PubDate:     it.PubDate,
			GUID:        guid,
		})
	}

	return &domain.FeedData{
		Status: "ok",
		Feed: domain.FeedMeta{
			Title:       conv.Feed.Title,
			Link:        conv.Feed.Link,
			Description: conv.Feed.Description,
		},
		Items: items,
	}
}

// proxyResponse is the JSON envelope of the content proxy.
type proxyResponse struct {
	Contents string `json:"contents"`
}

// fromContentProxy retrieves the raw upstream bytes through the content
// proxy and hands them to the feed parser.
func (s *Service) fromContentProxy(ctx context.Context, feedURL string) (*domain.FeedData, string) {
	reqURL := fmt.Sprintf("%s?url=%s", s.cfg.ProxyEndpoint, neturl.QueryEscape(feedURL))

	resp, err := s.deps.HTTPClient.Get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Sprintf("content proxy unreachable: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode()/100 != 2 {
		return nil, fmt.Sprintf("content proxy error: %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Sprintf("content proxy read failed: %v", err)
	}

	var proxied proxyResponse
	if err := json.Unmarshal(body, &proxied); err != nil {
		return nil, fmt.Sprintf("content proxy returned invalid JSON: %v", err)
	}
	if proxied.Contents == "" {
		return nil, "no content received from content proxy"
	}

	data, err := parse.Parse(proxied.Contents, feedURL)
	if err != nil {
		return nil, err.Error()
	}
	return data, ""
}
