// ABOUTME: Feed discovery service that finds the RSS/Atom feed behind an ordinary web page
// ABOUTME: Scans the page head for alternate links and verifies candidates before reporting them

package discover

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"feedreader-api/core/interfaces"
)

const maxConcurrentScans = 5

var (
	errNoFeedLink      = errors.New("no RSS or Atom feed advertised on page")
	errUnparseableFeed = errors.New("advertised feed link does not serve a valid feed")
)

// Result is the discovery outcome for one page URL.
type Result struct {
	URL      string `json:"url"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	FeedLink string `json:"feedLink"`
}

// Service resolves page URLs to the feed URLs they advertise.
type Service struct {
	deps   interfaces.Dependencies
	parser *gofeed.Parser
}

// NewService creates a new discovery instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps, parser: gofeed.NewParser()}
}

// Discover scans every page concurrently. Results keep the input order; a
// page that yields no feed reports status "error" instead of failing the batch.
func (s *Service) Discover(ctx context.Context, pageURLs []string) []Result {
	results := make([]Result, len(pageURLs))
	semaphore := make(chan struct{}, maxConcurrentScans)
	var wg sync.WaitGroup

	for i, pageURL := range pageURLs {
		wg.Add(1)
		go func(i int, pageURL string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			feedLink, err := s.discoverOne(ctx, pageURL)
			if err != nil {
				results[i] = Result{URL: pageURL, Status: "error", Error: err.Error()}
				return
			}
			results[i] = Result{URL: pageURL, Status: "ok", FeedLink: feedLink}
		}(i, pageURL)
	}
	wg.Wait()

	return results
}

func (s *Service) discoverOne(ctx context.Context, pageURL string) (string, error) {
	// Some major sites never advertise their feeds in the page head.
	if shortcut, ok := wellKnownFeedURL(pageURL); ok {
		return shortcut, nil
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	feedLink, ok := alternateFeedLink(doc)
	if !ok {
		return "", errNoFeedLink
	}

	feedLink, err = absolutize(pageURL, feedLink)
	if err != nil {
		return "", err
	}

	if err := s.verify(ctx, feedLink); err != nil {
		return "", err
	}
	return feedLink, nil
}

// verify fetches the candidate and confirms it parses as a feed, so dead or
// mistyped alternate links never reach the caller.
func (s *Service) verify(ctx context.Context, feedURL string) error {
	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if _, err := s.parser.Parse(resp.Body()); err != nil {
		return errUnparseableFeed
	}
	return nil
}

func alternateFeedLink(doc *goquery.Document) (string, bool) {
	if href, ok := doc.Find(`link[type="application/rss+xml"]`).Attr("href"); ok {
		return href, true
	}
	return doc.Find(`link[type="application/atom+xml"]`).Attr("href")
}

func wellKnownFeedURL(pageURL string) (string, bool) {
	switch {
	case strings.Contains(pageURL, "github.com"):
		return strings.TrimRight(pageURL, "/") + "/commits/master.atom", true
	case strings.Contains(pageURL, "reddit.com"):
		return strings.TrimRight(pageURL, "/") + "/.rss", true
	}
	return "", false
}

func absolutize(baseURL, href string) (string, error) {
	u, err := url.Parse(href)
	if err == nil && u.IsAbs() {
		return href, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}
